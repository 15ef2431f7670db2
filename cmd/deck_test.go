package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduvision/internal/deck"
)

func runDeckFor(t *testing.T, content string, asJSON bool) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c := &cobra.Command{}
	c.Flags().Bool("json", asJSON, "")
	var out bytes.Buffer
	c.SetOut(&out)

	err := runDeck(c, []string{path})
	return out.String(), err
}

func TestDeck_Text(t *testing.T) {
	out, err := runDeckFor(t, "Mitochondria are the powerhouse of the cell.", false)
	require.NoError(t, err)

	assert.Contains(t, out, "Topic: Mitochondria are the powerhouse of the cell...")
	assert.Contains(t, out, "Slides: 1")
	assert.Contains(t, out, "── Topic 1 ──")
	assert.Contains(t, out, "Quiz: 3 questions")
	assert.Contains(t, out, "* 1) Basic fundamentals and core principles")
}

func TestDeck_JSON(t *testing.T) {
	out, err := runDeckFor(t, "Mitochondria are the powerhouse of the cell.", true)
	require.NoError(t, err)

	var sess deck.StudySession
	require.NoError(t, json.Unmarshal([]byte(out), &sess))
	assert.Len(t, sess.Slides, 1)
	assert.Len(t, sess.Quiz, 3)
	assert.NotEmpty(t, sess.ID)
}

func TestDeck_NoSentences(t *testing.T) {
	_, err := runDeckFor(t, "Too short.", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, deck.ErrNoSentences)
	assert.True(t, strings.HasPrefix(err.Error(), "build session"))
}
