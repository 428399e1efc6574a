package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// setupEnv isolates configuration and captures console output.
func setupEnv(t *testing.T) *bytes.Buffer {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	config.Load()

	var console bytes.Buffer
	colors.SetOutput(&console, &console)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return &console
}

func writeSegments(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "video123.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}
