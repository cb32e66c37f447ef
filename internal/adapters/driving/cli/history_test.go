package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history", historyCmd.Use)
}

func TestHistoryCmd_ShowsTurns(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.history.turns = []domain.ChatTurn{
		{
			Timestamp: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
			Question:  "What is kvault?",
			Answer:    "A personal knowledge vault.",
			Sources: []domain.SourceSnippet{
				{Source: "guide.md"},
				{Source: "guide.md"},
				{Source: "notes.md"},
			},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "[2025-06-01 14:30] Q: What is kvault?")
	assert.Contains(t, output, "A: A personal knowledge vault.")
	assert.Contains(t, output, "Sources: guide.md, notes.md")
}

func TestHistoryCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No conversation history.")
}

func TestHistoryCmd_LimitFlag(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "--limit", "3"})
	defer func() {
		rootCmd.SetArgs(nil)
		historyLimit = 10
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 3, mocks.history.gotLimit)
}

func TestHistoryClearCmd_Executes(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.True(t, mocks.history.cleared)
	assert.Contains(t, buf.String(), "History cleared.")
}

func TestHistoryClearCmd_Error(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.history.clearErr = errors.New("disk full")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history", "clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "clear history")
}

func TestHistoryExportCmd_Stdout(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.history.exportText = "Q: What is kvault?\nA: A vault.\n"

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "export"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Q: What is kvault?")
}

func TestHistoryExportCmd_WritesFile(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.history.exportText = "transcript contents\n"
	outPath := filepath.Join(t.TempDir(), "transcript.txt")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "export", "--out", outPath})
	defer func() {
		rootCmd.SetArgs(nil)
		historyOut = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Transcript written to")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "transcript contents\n", string(data))
}

func TestHistoryCmd_ServiceNotConfigured(t *testing.T) {
	oldHistory := historyService
	historyService = nil
	defer func() { historyService = oldHistory }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "history service not configured")
}
