package loaders

import (
	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
	"github.com/kvault-labs/kvault-cli/internal/loaders/docx"
	"github.com/kvault-labs/kvault-cli/internal/loaders/markdown"
	"github.com/kvault-labs/kvault-cli/internal/loaders/pdf"
	"github.com/kvault-labs/kvault-cli/internal/loaders/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.LoaderRegistry = (*Registry)(nil)

// Registry maps file types to their loaders. The mapping is a closed
// lookup table: exactly one loader per file type, no fallback chain.
type Registry struct {
	byType map[domain.FileType]driven.Loader
}

// NewRegistry creates an empty loader registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[domain.FileType]driven.Loader),
	}
}

// DefaultRegistry creates a registry with every built-in loader
// registered, one per supported file type.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(pdf.New())
	r.Register(docx.New())
	return r
}

// Register adds a loader for every file type it declares.
// Registering a second loader for the same type replaces the first.
func (r *Registry) Register(loader driven.Loader) {
	for _, ft := range loader.FileTypes() {
		r.byType[ft] = loader
	}
}

// LoaderFor returns the loader registered for the file type.
func (r *Registry) LoaderFor(ft domain.FileType) (driven.Loader, bool) {
	loader, ok := r.byType[ft]
	return loader, ok
}

// FileTypes returns the file types with a registered loader.
func (r *Registry) FileTypes() []domain.FileType {
	types := make([]domain.FileType, 0, len(r.byType))
	for ft := range r.byType {
		types = append(types, ft)
	}
	return types
}
