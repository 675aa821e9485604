package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketgen/models"
)

func TestAssembleDocument_Empty(t *testing.T) {
	assert.Equal(t, EmptyPlaceholder, AssembleDocument(nil))
}

func TestAssembleDocument_JoinsInOrder(t *testing.T) {
	tickets := []models.TicketDocument{
		{Title: "A — one", Body: "body-a"},
		{Title: "B — two", Body: "body-b"},
	}

	got := AssembleDocument(tickets)

	assert.Equal(t, "# A — one\n\nbody-a\n\n---\n\n# B — two\n\nbody-b\n\n---\n", got)
}

func TestWriteDocument_OverwritesAndCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker", "issues", "out.md")

	require.NoError(t, WriteDocument(path, "first content that is long\n"))
	require.NoError(t, WriteDocument(path, "second\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestWriteDocument_FailsWhenParentIsFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))

	err := WriteDocument(filepath.Join(parent, "out.md"), "content")

	assert.Error(t, err)
}

func TestWriteDocument_BareFileName(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, WriteDocument("tickets.md", "content\n"))

	data, err := os.ReadFile("tickets.md")
	require.NoError(t, err)
	assert.Equal(t, "content\n", string(data))
}
