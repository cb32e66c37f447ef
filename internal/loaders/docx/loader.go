// Package docx loads Word documents by unpacking the OOXML archive.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles Word documents. Only OOXML (.docx) archives parse;
// pre-OOXML binary .doc files dispatch here by extension and fail when
// the zip container cannot be opened.
type Loader struct{}

// New creates a new Word loader.
func New() *Loader {
	return &Loader{}
}

// FileTypes returns the file types this loader handles.
func (l *Loader) FileTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypeWord}
}

// Load unpacks the OOXML archive and returns a single document with the
// text of every paragraph in word/document.xml.
func (l *Loader) Load(_ context.Context, path string) ([]domain.Document, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s as OOXML archive: %v", domain.ErrDocumentLoad, path, err)
	}
	defer reader.Close()

	text, err := extractDocumentText(&reader.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrDocumentLoad, path, err)
	}

	return []domain.Document{{
		Name: filepath.Base(path),
		Text: text,
	}}, nil
}

// extractDocumentText extracts text from word/document.xml.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", err
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}

		return parseDocumentXML(content), nil
	}
	return "", nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts text content from the document XML.
func parseDocumentXML(content []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, run := range para.Runs {
			for _, text := range run.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(result.String())
}
