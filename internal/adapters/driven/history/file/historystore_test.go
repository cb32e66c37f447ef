package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

func testTurn(question, answer string) domain.ChatTurn {
	page := 2
	return domain.ChatTurn{
		ID:        "turn-" + question,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Question:  question,
		Answer:    answer,
		Sources: []domain.SourceSnippet{
			{ContentPreview: "preview...", Source: "notes.pdf", Page: &page},
		},
	}
}

func TestNewHistoryStore(t *testing.T) {
	dir := t.TempDir()

	store, err := NewHistoryStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chat_history.json"), store.Path())
}

func TestNewHistoryStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "vault")

	_, err := NewHistoryStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestHistoryStore_Load_MissingFileIsEmpty(t *testing.T) {
	store, err := NewHistoryStore(t.TempDir())
	require.NoError(t, err)

	turns, err := store.Load()

	require.NoError(t, err)
	require.NotNil(t, turns)
	assert.Empty(t, turns)
}

func TestHistoryStore_ReplaceAndLoad_RoundTrip(t *testing.T) {
	store, err := NewHistoryStore(t.TempDir())
	require.NoError(t, err)

	saved := []domain.ChatTurn{testTurn("q1", "a1"), testTurn("q2", "a2")}
	require.NoError(t, store.Replace(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, saved[0].ID, loaded[0].ID)
	assert.Equal(t, saved[0].Question, loaded[0].Question)
	assert.Equal(t, saved[0].Answer, loaded[0].Answer)
	require.Len(t, loaded[0].Sources, 1)
	assert.Equal(t, "notes.pdf", loaded[0].Sources[0].Source)
	require.NotNil(t, loaded[0].Sources[0].Page)
	assert.Equal(t, 2, *loaded[0].Sources[0].Page)
	assert.True(t, saved[0].Timestamp.Equal(loaded[0].Timestamp))
}

func TestHistoryStore_Replace_OverwritesPrevious(t *testing.T) {
	store, err := NewHistoryStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Replace([]domain.ChatTurn{testTurn("q1", "a1"), testTurn("q2", "a2")}))
	require.NoError(t, store.Replace([]domain.ChatTurn{testTurn("q3", "a3")}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "q3", loaded[0].Question)
}

func TestHistoryStore_Replace_NilClearsFile(t *testing.T) {
	store, err := NewHistoryStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Replace([]domain.ChatTurn{testTurn("q1", "a1")}))

	require.NoError(t, store.Replace(nil))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// The file holds an empty JSON array, not the literal "null".
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestHistoryStore_Load_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewHistoryStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))

	_, err = store.Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageCorruption)
}

func TestHistoryStore_Replace_FilePermissions(t *testing.T) {
	store, err := NewHistoryStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Replace([]domain.ChatTurn{testTurn("q1", "a1")}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
