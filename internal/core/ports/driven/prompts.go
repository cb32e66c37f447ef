package driven

// PromptStore hands out the prompt templates the query pipeline feeds the
// LLM. The file implementation keeps them user-editable under the vault
// directory and seeds defaults on first use.
type PromptStore interface {
	// Load returns the template for a well-known prompt name. Missing
	// user files fall back to the embedded default for that name.
	Load(name string) (string, error)

	// Reload drops cached templates so edited files take effect.
	Reload()
}

// Well-known prompt names.
const (
	// PromptAnswerSystem instructs the LLM to answer strictly from retrieved
	// document context and recent conversation. The template expects two %s
	// placeholders: conversation history first, retrieved chunks second.
	PromptAnswerSystem = "answer_system"
)

// PromptStoreAware marks services whose prompts can be swapped after
// construction. Services without an injected store use their embedded
// defaults.
type PromptStoreAware interface {
	// SetPromptStore replaces the source of prompt templates.
	SetPromptStore(store PromptStore)
}
