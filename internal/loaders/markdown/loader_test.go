package markdown

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	loader := New()
	require.NotNil(t, loader)
	assert.IsType(t, &Loader{}, loader)
}

func TestFileTypes(t *testing.T) {
	loader := New()
	assert.Equal(t, []domain.FileType{domain.FileTypeMarkdown}, loader.FileTypes())
}

func TestLoad_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readme.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hello World\n\nThis is a test."), 0o644))

	loader := New()
	docs, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "readme.md", docs[0].Name)
	assert.Equal(t, "Hello World\n\nThis is a test.", docs[0].Text)
	assert.Nil(t, docs[0].Page)
}

func TestLoad_MissingFile(t *testing.T) {
	loader := New()
	docs, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.md"))

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentLoad)
	assert.Nil(t, docs)
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "headings removed",
			input:    "# Title\n## Subtitle\n### Third",
			expected: "Title\nSubtitle\nThird",
		},
		{
			name:     "bold removed",
			input:    "This is **bold** text",
			expected: "This is bold text",
		},
		{
			name:     "links converted",
			input:    "Click [here](https://example.com)",
			expected: "Click here",
		},
		{
			name:     "images removed",
			input:    "See ![alt text](image.png) here",
			expected: "See  here",
		},
		{
			name:     "code blocks removed",
			input:    "Before\n```go\ncode here\n```\nAfter",
			expected: "Before\n\nAfter",
		},
		{
			name:     "inline code removed",
			input:    "Use `code` here",
			expected: "Use  here",
		},
		{
			name:     "blockquotes cleaned",
			input:    "> This is a quote",
			expected: "This is a quote",
		},
		{
			name:     "list markers removed",
			input:    "- Item 1\n- Item 2",
			expected: "Item 1\nItem 2",
		},
		{
			name:     "numbered list markers removed",
			input:    "1. First\n2. Second",
			expected: "First\nSecond",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := stripMarkdown(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Loader = (*Loader)(nil)
}
