package domain

import (
	"path/filepath"
	"strings"
)

// FileType identifies a supported document format. The set is closed:
// adding a format means adding a variant and a loader registration, not
// branching logic at call sites.
type FileType string

// Supported file types.
const (
	// FileTypePDF is a PDF document, loaded page by page.
	FileTypePDF FileType = "pdf"

	// FileTypeText is a plain text file.
	FileTypeText FileType = "txt"

	// FileTypeWord is a Word document (.docx, and .doc by extension).
	FileTypeWord FileType = "docx"

	// FileTypeMarkdown is a Markdown file.
	FileTypeMarkdown FileType = "md"
)

// extensionTypes maps lowercased file extensions to their FileType.
// Both Word suffixes dispatch to the same loader.
var extensionTypes = map[string]FileType{
	".pdf":  FileTypePDF,
	".txt":  FileTypeText,
	".docx": FileTypeWord,
	".doc":  FileTypeWord,
	".md":   FileTypeMarkdown,
}

// ParseFileType determines the FileType for a file path by extension.
// Returns ErrUnsupportedFileType for anything outside the supported set.
func ParseFileType(path string) (FileType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	ft, ok := extensionTypes[ext]
	if !ok {
		return "", ErrUnsupportedFileType
	}
	return ft, nil
}

// IsValid returns true if the file type is recognised.
func (t FileType) IsValid() bool {
	switch t {
	case FileTypePDF, FileTypeText, FileTypeWord, FileTypeMarkdown:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t FileType) String() string {
	return string(t)
}

// SupportedExtensions returns the accepted file extensions, sorted.
func SupportedExtensions() []string {
	return []string{".doc", ".docx", ".md", ".pdf", ".txt"}
}

// IsSupportedFile reports whether the path has a supported extension.
func IsSupportedFile(path string) bool {
	_, err := ParseFileType(path)
	return err == nil
}
