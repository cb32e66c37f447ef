package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driving"
	"github.com/kvault-labs/kvault-cli/internal/logger"
)

// Ensure QueryService implements the interfaces.
var (
	_ driving.Querier         = (*QueryService)(nil)
	_ driven.PromptStoreAware = (*QueryService)(nil)
)

// queryState identifies the pipeline stage a question is in. A query
// moves Retrieving -> Composing -> Generating -> Recording -> Done;
// Failed is reachable from every non-terminal state and the failing
// stage is named in the error.
type queryState string

const (
	stateRetrieving queryState = "retrieving"
	stateComposing  queryState = "composing"
	stateGenerating queryState = "generating"
	stateRecording  queryState = "recording"
)

// answerTemperature keeps generation close to the retrieved material.
const answerTemperature = 0.1

// defaultAnswerSystemPrompt is the embedded answer instruction, used when
// no prompt store is set or the stored prompt cannot be loaded. The two
// placeholders are the recent conversation and the retrieved context.
const defaultAnswerSystemPrompt = `You are a personal knowledge vault assistant. Answer the question using ONLY the context provided from the user's documents.

If the context does not contain the answer, say you don't have that information in the vault.

Keep the answer to three sentences at most and name the source documents you drew on.

Previous conversation:
%s

Context from documents:
%s`

// QueryService answers questions grounded in the vault: retrieve relevant
// chunks, compose the prompt, generate, then record the exchange. It owns
// the conversation memory handle for the session.
type QueryService struct {
	index       Indexer
	llm         driven.LLMService
	memory      *ConversationMemory
	promptStore driven.PromptStore
	query       domain.QuerySettings
}

// NewQueryService creates a new query service.
func NewQueryService(
	index Indexer,
	llm driven.LLMService,
	memory *ConversationMemory,
	query domain.QuerySettings,
) *QueryService {
	return &QueryService{
		index:  index,
		llm:    llm,
		memory: memory,
		query:  query,
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the service uses the hardcoded default prompt.
func (s *QueryService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// Ask runs the full pipeline for one question. It never returns a Go
// error: every failure is folded into the result with Success false, and
// failed queries are never recorded in the conversation memory.
func (s *QueryService) Ask(ctx context.Context, question string) domain.QueryResult {
	logger.Section("Query")

	question = strings.TrimSpace(question)
	if question == "" {
		return failResult(fmt.Errorf("%w: question is empty", domain.ErrInvalidInput))
	}

	state := stateRetrieving
	logger.Debug("State: %s", state)
	chunks, err := s.index.Search(ctx, question, s.query.TopK)
	if err != nil {
		return failResult(fmt.Errorf("%s: %w", state, err))
	}

	// An empty index is not an error: the prompt just carries no context
	// and the model says it doesn't know.
	state = stateComposing
	logger.Debug("State: %s (%d chunks)", state, len(chunks))
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	contextText := strings.Join(texts, "\n\n")
	chatContext := s.memory.FormatRecent(s.query.HistoryWindow)

	state = stateGenerating
	logger.Debug("State: %s", state)
	system := fmt.Sprintf(s.loadPrompt(driven.PromptAnswerSystem, defaultAnswerSystemPrompt),
		chatContext, contextText)
	messages := []driven.ChatMessage{
		{Role: driven.RoleSystem, Content: system},
		{Role: driven.RoleUser, Content: question},
	}
	answer, err := s.llm.Chat(ctx, messages, driven.ChatOptions{Temperature: answerTemperature})
	if err != nil {
		return failResult(fmt.Errorf("%s: %w: %v", state, domain.ErrGenerationProvider, err))
	}

	state = stateRecording
	logger.Debug("State: %s", state)
	turn := domain.ChatTurn{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Question:  question,
		Answer:    answer,
		Sources:   domain.Snippets(chunks),
	}
	if err := s.memory.Append(turn); err != nil {
		return failResult(fmt.Errorf("%s: %w", state, err))
	}

	logger.Debug("State: done (turn %s)", turn.ID)
	return domain.QueryResult{
		Answer:  answer,
		Sources: turn.Sources,
		ChatID:  turn.ID,
		Success: true,
	}
}

// loadPrompt loads a prompt from the store, falling back to the default
// if unavailable.
func (s *QueryService) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}

// failResult folds an error into the structured failure shape. The turn
// is never recorded on failure.
func failResult(err error) domain.QueryResult {
	logger.Warn("Query failed: %v", err)
	return domain.QueryResult{
		Answer:  "I encountered an error: " + err.Error(),
		Sources: []domain.SourceSnippet{},
		Success: false,
		Error:   err.Error(),
	}
}
