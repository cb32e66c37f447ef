// Package plaintext loads plain text files.
package plaintext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles plain text files.
type Loader struct{}

// New creates a new plain text loader.
func New() *Loader {
	return &Loader{}
}

// FileTypes returns the file types this loader handles.
func (l *Loader) FileTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypeText}
}

// Load reads the file as UTF-8 text and returns a single document.
func (l *Loader) Load(_ context.Context, path string) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrDocumentLoad, path, err)
	}

	return []domain.Document{{
		Name: filepath.Base(path),
		Text: string(data),
	}}, nil
}
