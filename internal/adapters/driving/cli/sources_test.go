package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourcesCmd_Use(t *testing.T) {
	assert.Equal(t, "sources", sourcesCmd.Use)
}

func TestSourcesCmd_ListsSources(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	mocks.index.sources = []string{"guide.md", "notes.pdf", "report.docx"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sources"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "guide.md")
	assert.Contains(t, output, "notes.pdf")
	assert.Contains(t, output, "report.docx")
}

func TestSourcesCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sources"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No documents indexed yet.")
}

func TestSourcesCmd_ServiceNotConfigured(t *testing.T) {
	oldIndex := indexService
	indexService = nil
	defer func() { indexService = oldIndex }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"sources"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "index service not configured")
}
