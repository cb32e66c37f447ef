// Package pdf loads PDF documents by shelling out to pdftotext from the
// poppler toolchain. Loading is delegated: the vault never parses PDF
// internals itself.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// ErrPDFToolNotFound indicates pdftotext is not installed or not in PATH.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// CommandRunner executes external commands. It exists so tests can
// substitute a fake pdftotext.
type CommandRunner interface {
	// Run executes the command and returns its combined stdout.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, ErrPDFToolNotFound
	}
	return exec.CommandContext(ctx, name, args...).Output()
}

// Loader handles PDF files via pdftotext.
type Loader struct {
	runner CommandRunner
}

// New creates a new PDF loader using the system pdftotext binary.
func New() *Loader {
	return &Loader{runner: execRunner{}}
}

// NewWithRunner creates a PDF loader with a custom command runner.
func NewWithRunner(runner CommandRunner) *Loader {
	return &Loader{runner: runner}
}

// FileTypes returns the file types this loader handles.
func (l *Loader) FileTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypePDF}
}

// Load converts the PDF to text and returns one document per non-empty
// page. Page numbers are 1-based. pdftotext separates pages with form
// feeds on stdout.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.Document, error) {
	output, err := l.runner.Run(ctx, "pdftotext", "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		if errors.Is(err, ErrPDFToolNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: pdftotext failed for %s: %v", domain.ErrDocumentLoad, path, err)
	}

	name := filepath.Base(path)
	pages := strings.Split(string(output), "\f")

	docs := make([]domain.Document, 0, len(pages))
	for i, text := range pages {
		if strings.TrimSpace(text) == "" {
			continue
		}
		page := i + 1
		docs = append(docs, domain.Document{
			Name: name,
			Text: text,
			Page: &page,
		})
	}

	return docs, nil
}

// CheckAvailable returns nil when pdftotext is installed and in PATH.
func CheckAvailable() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns platform-specific install guidance for the
// pdftotext dependency.
func InstallInstructions() string {
	return strings.Join([]string{
		"PDF support requires the pdftotext tool from poppler:",
		"  macOS:         brew install poppler",
		"  Debian/Ubuntu: sudo apt install poppler-utils",
		"  Fedora:        sudo dnf install poppler-utils",
	}, "\n")
}
