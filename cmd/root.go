// Package cmd holds the root command shared by the segbar binary.
package cmd

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/logging"
	"github.com/cristianoliveira/segbar/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "segbar",
	Short: "Segment overlays and skip notices for a media scrub bar.",
	Long:  `Segment overlays and skip notices for a media scrub bar.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if err := logging.InitGlobal(); err != nil {
			colors.Warning(fmt.Sprintf("logging disabled: %v", err))
		}
		logging.Debug("command started", "command", cmd.CommandPath())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	defaultHelp := RootCmd.HelpFunc()
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			defaultHelp(cmd, args)
			return
		}
		printHelpText(cmd)
	})
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"bar",
		"chapters",
		"tooltip",
		"watch",
		"pending",
		"votes",
		"config",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Name(), found.Short))
	}

	helpText := fmt.Sprintf(`segbar v%s

Segment overlays and skip notices for a media scrub bar.

USAGE:
    segbar [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, version.String(), strings.Join(cmdLines, "\n"))
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}
