// Package markdown loads Markdown files, stripping formatting down to
// plain text before splitting.
package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles Markdown files.
type Loader struct{}

// New creates a new Markdown loader.
func New() *Loader {
	return &Loader{}
}

// FileTypes returns the file types this loader handles.
func (l *Loader) FileTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypeMarkdown}
}

// Load reads the file and returns a single document with markdown
// formatting simplified to plain text.
func (l *Loader) Load(_ context.Context, path string) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrDocumentLoad, path, err)
	}

	return []domain.Document{{
		Name: filepath.Base(path),
		Text: stripMarkdown(string(data)),
	}}, nil
}

// stripMarkdown removes common markdown formatting for plain text content.
// This is a simplified implementation that handles common cases.
func stripMarkdown(content string) string {
	// Remove code blocks (```...```)
	codeBlock := regexp.MustCompile("(?s)```[^`]*```")
	content = codeBlock.ReplaceAllString(content, "")

	// Remove inline code (`code`)
	inlineCode := regexp.MustCompile("`[^`]+`")
	content = inlineCode.ReplaceAllString(content, "")

	// Remove images ![alt](url)
	images := regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	content = images.ReplaceAllString(content, "")

	// Convert links [text](url) to just text
	links := regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	content = links.ReplaceAllString(content, "$1")

	// Remove heading markers (# ## ### etc)
	headings := regexp.MustCompile(`(?m)^#{1,6}\s+`)
	content = headings.ReplaceAllString(content, "")

	// Remove bold/italic markers
	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "__", "")
	content = strings.ReplaceAll(content, "*", "")
	content = strings.ReplaceAll(content, "_", " ")

	// Remove blockquote markers
	blockquote := regexp.MustCompile(`(?m)^>\s*`)
	content = blockquote.ReplaceAllString(content, "")

	// Remove horizontal rules
	hr := regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	content = hr.ReplaceAllString(content, "")

	// Remove list markers (- * + and numbered)
	listMarkers := regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	content = listMarkers.ReplaceAllString(content, "")
	numberedList := regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	content = numberedList.ReplaceAllString(content, "")

	// Collapse multiple newlines
	multiNewlines := regexp.MustCompile(`\n{3,}`)
	content = multiNewlines.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
