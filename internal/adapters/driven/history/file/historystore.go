// Package file provides a JSON file-backed implementation of the
// conversation history store.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// historyFileName is the history file within the vault directory.
const historyFileName = "chat_history.json"

// HistoryStore persists the conversation history as one indented JSON
// array. Every Replace rewrites the whole file; the history is small
// (one entry per question asked) so partial updates never pay off.
type HistoryStore struct {
	mu       sync.Mutex
	filePath string
}

// NewHistoryStore creates a history store inside the vault directory.
// If vaultDir is empty, defaults to ~/.kvault.
func NewHistoryStore(vaultDir string) (*HistoryStore, error) {
	if vaultDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		vaultDir = filepath.Join(home, ".kvault")
	}

	// Ensure directory exists
	if err := os.MkdirAll(vaultDir, 0700); err != nil {
		return nil, err
	}

	return &HistoryStore{
		filePath: filepath.Join(vaultDir, historyFileName),
	}, nil
}

// Load reads the full persisted history in recorded order. A missing
// file is an empty history, not an error. Unparseable content is
// reported as storage corruption so the caller can degrade.
func (s *HistoryStore) Load() ([]domain.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.ChatTurn{}, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var turns []domain.ChatTurn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageCorruption, s.filePath, err)
	}
	if turns == nil {
		turns = []domain.ChatTurn{}
	}
	return turns, nil
}

// Replace overwrites the stored history with the given sequence.
func (s *HistoryStore) Replace(turns []domain.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if turns == nil {
		turns = []domain.ChatTurn{}
	}

	data, err := json.MarshalIndent(turns, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	// Write with restricted permissions
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}

// Path returns the history file path.
func (s *HistoryStore) Path() string {
	return s.filePath
}
