package driven

import (
	"context"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// Loader extracts text from one document format. Loading is a delegated
// capability: the PDF loader shells out to an external tool, the Word
// loader unpacks OOXML. The core never parses formats itself.
type Loader interface {
	// Load reads the file and returns its text as one or more Documents.
	// Paginated formats return one Document per page (Page set);
	// everything else returns a single Document.
	//
	// The returned Documents carry Name and Text only; the ingestor
	// stamps FileType and AddedAt.
	Load(ctx context.Context, path string) ([]domain.Document, error)

	// FileTypes returns the format variants this loader handles.
	FileTypes() []domain.FileType
}

// LoaderRegistry resolves the loader for a file type. The mapping is a
// closed lookup table: one loader per FileType variant, no fallback
// chains.
type LoaderRegistry interface {
	// LoaderFor returns the loader registered for the file type.
	// The boolean is false when no loader is registered.
	LoaderFor(ft domain.FileType) (Loader, bool)

	// Register adds a loader for every file type it declares.
	// Registering a second loader for the same type replaces the first.
	Register(loader Loader)
}
