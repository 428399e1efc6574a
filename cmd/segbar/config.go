package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/segbar/cmd"
	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	sampleCmd := &cobra.Command{
		Use:   "sample [path]",
		Short: "Write a sample configuration file",
		Long: `Write a TOML file with every setting at its default value.

Without a path the file is written to the configuration directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path := filepath.Join(config.Get("config_dir", ""), "config.toml")
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := config.WriteSample(path); err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("wrote %s", path))
			return nil
		},
	}
	sampleCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(sampleCmd)
	return configCmd
}

var configCmd = NewConfigCmd()

func init() {
	cmd.RootCmd.AddCommand(configCmd)
}
