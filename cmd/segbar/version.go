package main

import (
	"fmt"

	"github.com/cristianoliveira/segbar/cmd"
	"github.com/cristianoliveira/segbar/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(current func() string) *cobra.Command {
	if current == nil {
		panic("NewVersionCmd: current dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of segbar.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Fprintf(c.OutOrStdout(), "segbar version %s\n", current())
			return nil
		},
	}
}

var versionCmd = NewVersionCmd(version.String)

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
