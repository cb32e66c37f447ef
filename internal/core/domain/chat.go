package domain

import "time"

// PreviewLength is the number of characters of chunk text kept in a
// source snippet. Truncation is literal: the first 200 runes plus an
// ellipsis, even mid-word.
const PreviewLength = 200

// SourceSnippet is a citation attached to an answer: a preview of the
// retrieved chunk plus where it came from.
type SourceSnippet struct {
	// ContentPreview is the first PreviewLength characters of the chunk
	// text with "..." appended.
	ContentPreview string `json:"content_preview"`

	// Source is the originating document name.
	Source string `json:"source"`

	// Page is the page number when the chunk came from a paginated
	// format, nil otherwise.
	Page *int `json:"page,omitempty"`
}

// NewSourceSnippet builds the snippet for a retrieved chunk.
func NewSourceSnippet(c Chunk) SourceSnippet {
	return SourceSnippet{
		ContentPreview: previewText(c.Text),
		Source:         c.Source,
		Page:           c.Page,
	}
}

// previewText truncates to PreviewLength runes and appends an ellipsis.
// The ellipsis is appended even when nothing was trimmed.
func previewText(s string) string {
	runes := []rune(s)
	if len(runes) > PreviewLength {
		runes = runes[:PreviewLength]
	}
	return string(runes) + "..."
}

// ChatTurn is one question/answer exchange plus the source snippets that
// grounded the answer. Turns are created exactly once per successful
// query and are immutable thereafter, except for full-history clearing.
type ChatTurn struct {
	// ID is the unique identifier for the turn.
	ID string `json:"id"`

	// Timestamp is when the turn was recorded.
	Timestamp time.Time `json:"timestamp"`

	// Question is the user's question, verbatim.
	Question string `json:"question"`

	// Answer is the generated answer, verbatim.
	Answer string `json:"answer"`

	// Sources lists the snippets that grounded the answer, in retrieval
	// order.
	Sources []SourceSnippet `json:"sources"`
}

// Snippets builds the citation list for a sequence of retrieved chunks,
// preserving retrieval order.
func Snippets(chunks []Chunk) []SourceSnippet {
	snippets := make([]SourceSnippet, 0, len(chunks))
	for _, c := range chunks {
		snippets = append(snippets, NewSourceSnippet(c))
	}
	return snippets
}
