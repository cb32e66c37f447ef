package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_Short(t *testing.T) {
	assert.Equal(t, "Ask a question about your documents", askCmd.Short)
}

func TestAskCmd_Executes(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	page := 3
	mocks.querier.result = domain.QueryResult{
		Answer:  "The vault stores documents locally.",
		Success: true,
		Sources: []domain.SourceSnippet{
			{Source: "guide.pdf", Page: &page, ContentPreview: "local storage..."},
			{Source: "notes.md", ContentPreview: "documents..."},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "Where are documents stored?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "Where are documents stored?", mocks.querier.gotQuestion)

	output := buf.String()
	assert.Contains(t, output, "The vault stores documents locally.")
	assert.Contains(t, output, "Sources:")
	assert.Contains(t, output, "[1] guide.pdf (page 3)")
	assert.Contains(t, output, "[2] notes.md")
	assert.NotContains(t, output, "local storage...")
}

func TestAskCmd_SourcesFlagShowsPreviews(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.querier.result = domain.QueryResult{
		Answer:  "Answer.",
		Success: true,
		Sources: []domain.SourceSnippet{
			{Source: "notes.md", ContentPreview: "chunk preview text..."},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--sources", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
		askShowSources = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "chunk preview text...")
}

func TestAskCmd_NoSources(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.querier.result = domain.QueryResult{
		Answer:  "I couldn't find relevant information in your documents.",
		Success: true,
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.NotContains(t, buf.String(), "Sources:")
}

func TestAskCmd_FailureResultBecomesError(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.querier.result = domain.QueryResult{
		Answer:  "I encountered an error processing your question: generation failed",
		Success: false,
		Error:   "generation failed",
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed")
}

func TestAskCmd_ServiceNotConfigured(t *testing.T) {
	oldQuery := queryService
	oldSettings := settingsService
	queryService = nil
	settingsService = nil
	defer func() {
		queryService = oldQuery
		settingsService = oldSettings
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "query not configured")
}
