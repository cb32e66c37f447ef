// Package loaders provides implementations of the Loader interface for
// the supported document formats. Each loader knows how to extract text
// from a specific file type.
//
// Loaders are registered with the Registry at startup; the ingestor
// dispatches on the parsed FileType.
package loaders
