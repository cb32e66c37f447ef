package pdf

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

// mockRunner is a test double for CommandRunner.
type mockRunner struct {
	output []byte
	err    error
}

func (m *mockRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, error) {
	return m.output, m.err
}

func TestNew(t *testing.T) {
	loader := New()
	require.NotNil(t, loader)
	assert.IsType(t, &Loader{}, loader)
}

func TestNewWithRunner(t *testing.T) {
	runner := &mockRunner{output: []byte("test output")}
	loader := NewWithRunner(runner)
	require.NotNil(t, loader)
	assert.Equal(t, runner, loader.runner)
}

func TestFileTypes(t *testing.T) {
	loader := New()
	assert.Equal(t, []domain.FileType{domain.FileTypePDF}, loader.FileTypes())
}

func TestLoad_OneDocumentPerPage(t *testing.T) {
	runner := &mockRunner{
		output: []byte("Page one text.\f Page two text.\fPage three text.\n"),
	}
	loader := NewWithRunner(runner)

	docs, err := loader.Load(context.Background(), "/path/to/report.pdf")
	require.NoError(t, err)
	require.Len(t, docs, 3)

	for i, doc := range docs {
		assert.Equal(t, "report.pdf", doc.Name)
		require.NotNil(t, doc.Page)
		assert.Equal(t, i+1, *doc.Page)
	}
	assert.Equal(t, "Page one text.", docs[0].Text)
	assert.Equal(t, "Page three text.\n", docs[2].Text)
}

func TestLoad_SkipsBlankPages(t *testing.T) {
	runner := &mockRunner{
		output: []byte("Front matter.\f \n\f Conclusion."),
	}
	loader := NewWithRunner(runner)

	docs, err := loader.Load(context.Background(), "/path/to/thesis.pdf")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Page numbers stay true to position, not to the emitted count.
	assert.Equal(t, 1, *docs[0].Page)
	assert.Equal(t, 3, *docs[1].Page)
}

func TestLoad_RunnerError(t *testing.T) {
	runner := &mockRunner{err: errors.New("exit status 1")}
	loader := NewWithRunner(runner)

	docs, err := loader.Load(context.Background(), "/path/to/broken.pdf")
	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentLoad)
	assert.Contains(t, err.Error(), "pdftotext failed")
	assert.Nil(t, docs)
}

func TestLoad_ToolMissing(t *testing.T) {
	runner := &mockRunner{err: ErrPDFToolNotFound}
	loader := NewWithRunner(runner)

	docs, err := loader.Load(context.Background(), "/path/to/doc.pdf")
	assert.ErrorIs(t, err, ErrPDFToolNotFound)
	assert.Nil(t, docs)
}

func TestErrPDFToolNotFound(t *testing.T) {
	assert.Error(t, ErrPDFToolNotFound)
	assert.Contains(t, ErrPDFToolNotFound.Error(), "pdftotext")
}

func TestInstallInstructions(t *testing.T) {
	instructions := InstallInstructions()
	assert.Contains(t, instructions, "pdftotext")
	assert.Contains(t, instructions, "brew install poppler")
	assert.Contains(t, instructions, "apt install poppler-utils")
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Loader = (*Loader)(nil)
}
