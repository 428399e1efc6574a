package cmd

import (
	"bytes"
	"testing"

	"github.com/cristianoliveira/segbar/internal/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestPrintHelpText(t *testing.T) {
	root := &cobra.Command{Use: "segbar"}
	root.AddCommand(
		&cobra.Command{Use: "version", Short: "Show version information"},
		&cobra.Command{Use: "bar", Short: "Print the preview bar"},
		&cobra.Command{Use: "unlisted", Short: "Not in the help"},
	)
	var buf bytes.Buffer
	root.SetOut(&buf)

	printHelpText(root)

	out := buf.String()
	assert.Contains(t, out, "segbar v"+version.String())
	assert.Contains(t, out, "    bar              Print the preview bar")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("bar ")), bytes.Index(buf.Bytes(), []byte("version ")))
	assert.NotContains(t, out, "unlisted")
}

func TestRootCommandVersion(t *testing.T) {
	assert.Equal(t, version.String(), RootCmd.Version)
	assert.True(t, RootCmd.SilenceUsage)
}
