package driven

import "context"

// LLMService generates the vault's answers. The query pipeline drives it
// through Chat with a system prompt carrying the retrieved chunks and the
// recent conversation.
//
// Providers: Ollama for local models, OpenAI and Anthropic for hosted ones.
type LLMService interface {
	// Generate produces a completion for a single prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// Chat produces the next assistant message for a conversation.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName reports which model answers for this service.
	ModelName() string

	// Ping makes a lightweight request to confirm the provider is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures single-prompt generation.
type GenerateOptions struct {
	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls randomness. The answer pipeline runs low (0.1).
	Temperature float64

	// StopWords end generation when encountered.
	StopWords []string
}

// ChatMessage is a single message in a conversation.
type ChatMessage struct {
	// Role is one of RoleSystem, RoleUser, or RoleAssistant.
	Role string

	// Content is the message text.
	Content string
}

// Message role constants.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatOptions configures conversational generation.
type ChatOptions struct {
	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls randomness.
	Temperature float64
}
