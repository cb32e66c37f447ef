package domain

// IngestReport aggregates the outcome of one add_documents batch.
// Per-file failures never abort the batch; they are collected here in
// file-submission order.
type IngestReport struct {
	// Processed is the number of files fully ingested.
	Processed int `json:"processed"`

	// Failed is the number of files that could not be ingested.
	Failed int `json:"failed"`

	// Errors holds one human-readable message per failed file, in
	// submission order.
	Errors []string `json:"errors"`
}

// AddFailure records a failed file.
func (r *IngestReport) AddFailure(msg string) {
	r.Failed++
	r.Errors = append(r.Errors, msg)
}

// AddSuccess records a processed file.
func (r *IngestReport) AddSuccess() {
	r.Processed++
}

// QueryResult is the structured outcome of one question. Failures are
// carried in the result, never raised: Success is false, Answer holds a
// user-facing message embedding the error text, Sources is empty and
// ChatID absent.
type QueryResult struct {
	// Answer is the generated answer, or the failure message.
	Answer string `json:"answer"`

	// Sources lists the snippets that grounded the answer, in retrieval
	// order. Empty on failure.
	Sources []SourceSnippet `json:"sources"`

	// ChatID is the recorded turn's ID. Empty on failure: failed queries
	// are not recorded.
	ChatID string `json:"chat_id,omitempty"`

	// Success reports whether the query completed.
	Success bool `json:"success"`

	// Error is the underlying error text when Success is false.
	Error string `json:"error,omitempty"`
}
