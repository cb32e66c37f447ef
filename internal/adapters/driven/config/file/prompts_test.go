package file

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

const answerPromptFile = "answer_system.txt"

// newTestStore returns a store rooted in a fresh temp directory.
func newTestStore(t *testing.T) (*PromptStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)
	return store, dir
}

func writeAnswerPrompt(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, answerPromptFile), []byte(content), 0600))
}

func TestNewPromptStore_Dir(t *testing.T) {
	t.Run("custom directory", func(t *testing.T) {
		store, dir := newTestStore(t)
		assert.Equal(t, dir, store.Dir())
	})

	t.Run("defaults under home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("cannot determine home directory")
		}

		store, err := NewPromptStore("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".kvault", "prompts"), store.Dir())
	})
}

func TestPromptStore_SeedsDefaultsOnFirstLoad(t *testing.T) {
	store, dir := newTestStore(t)

	prompt, err := store.Load(driven.PromptAnswerSystem)
	require.NoError(t, err)

	// The default answer prompt grounds the model in vault content and
	// carries two %s slots: conversation first, retrieved chunks second.
	assert.Contains(t, prompt, "personal knowledge vault assistant")
	assert.Contains(t, prompt, "Previous conversation:")
	assert.Contains(t, prompt, "Context from documents:")
	assert.Equal(t, 2, strings.Count(prompt, "%s"))

	for _, f := range []string{answerPromptFile, "README.md"} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, "expected %s to be seeded", f)
	}
}

func TestPromptStore_UserFileWinsAndIsTrimmed(t *testing.T) {
	dir := t.TempDir()
	raw := "\n\n  vault answer prompt: %s %s  \n"
	writeAnswerPrompt(t, dir, raw)

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptAnswerSystem)
	require.NoError(t, err)
	assert.Equal(t, "vault answer prompt: %s %s", prompt)

	// Seeding must not clobber the user's file.
	data, err := os.ReadFile(filepath.Join(dir, answerPromptFile))
	require.NoError(t, err)
	assert.Equal(t, raw, string(data))
}

func TestPromptStore_FallsBackWhenFileRemoved(t *testing.T) {
	store, dir := newTestStore(t)

	_, err := store.Load(driven.PromptAnswerSystem)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(dir, answerPromptFile)))
	store.Reload()

	prompt, err := store.Load(driven.PromptAnswerSystem)
	require.NoError(t, err)
	assert.Contains(t, prompt, "personal knowledge vault assistant")
}

func TestPromptStore_UnknownName(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load("no_such_prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_prompt")
}

func TestPromptStore_CachesUntilReload(t *testing.T) {
	store, dir := newTestStore(t)

	first, err := store.Load(driven.PromptAnswerSystem)
	require.NoError(t, err)

	writeAnswerPrompt(t, dir, "edited: %s %s")

	cached, err := store.Load(driven.PromptAnswerSystem)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	store.Reload()

	fresh, err := store.Load(driven.PromptAnswerSystem)
	require.NoError(t, err)
	assert.Equal(t, "edited: %s %s", fresh)
}

func TestPromptStore_ConcurrentLoads(t *testing.T) {
	store, _ := newTestStore(t)

	const workers = 100
	results := make([]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = store.Load(driven.PromptAnswerSystem)
		}()
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
}
