package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryCmd(t *testing.T, configYAML, db string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configYAML), 0o644))

	c := &cobra.Command{}
	c.Flags().String("config", cfgPath, "")
	c.Flags().String("db", db, "")
	c.Flags().Int("limit", 20, "")
	c.Flags().String("session", "", "")
	c.SetContext(context.Background())

	var out bytes.Buffer
	c.SetOut(&out)
	return c, &out
}

func TestHistory_DisabledCreatesNoDatabase(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("EDUVISION_DB", "")

	c, out := newHistoryCmd(t, "history:\n  enabled: false\n", "")
	require.NoError(t, runHistory(c, nil))

	assert.Contains(t, out.String(), "History is disabled")
	_, err := os.Stat(filepath.Join(dataHome, "eduvision"))
	assert.True(t, os.IsNotExist(err), "no database directory should be created")
}

func TestHistory_DBFlagEnables(t *testing.T) {
	t.Setenv("EDUVISION_DB", "")
	db := filepath.Join(t.TempDir(), "hist", "eduvision.db")

	c, out := newHistoryCmd(t, "history:\n  enabled: false\n", db)
	require.NoError(t, runHistory(c, nil))

	assert.Contains(t, out.String(), "Sessions started: 0")
	assert.Contains(t, out.String(), "No quiz results yet.")
	assert.FileExists(t, db)
}
