package main

import (
	"fmt"

	"github.com/cristianoliveira/segbar/cmd"
	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/i18n"
	"github.com/cristianoliveira/segbar/internal/previewbar"
	"github.com/cristianoliveira/segbar/internal/tui/render"
	"github.com/spf13/cobra"
)

const barCommandLong = `Print the preview bar computed for a set of segments.

USAGE:
    segbar bar --duration <seconds> [OPTIONS]

OPTIONS:
    --segments <file>    JSON segments file, - for stdin (default)
    --duration <secs>    Media duration in seconds
    --width <n>          Width of the terminal rendering (default 80)
    --mobile             Compute bars as a mobile host does (no opacity)

Each bar is printed with its category, left offset and width as CSS values,
longest first, followed by a terminal rendering of the bar.`

// NewBarCmd creates the bar command.
func NewBarCmd() *cobra.Command {
	var flags engineFlags
	var mobile bool

	barCmd := &cobra.Command{
		Use:   "bar",
		Short: "Print the preview bar for segments",
		Long:  barCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			segments, err := flags.load(c)
			if err != nil {
				return err
			}
			cfg := config.Current()
			engine, msgs := newEngine(cfg, previewbar.Options{OnMobile: mobile}, segments, flags.duration)

			out := c.OutOrStdout()
			for _, b := range engine.Bars() {
				width := b.WidthCSS()
				if width == "" {
					width = "-"
				}
				fmt.Fprintf(out, "%-28s left=%-10s width=%-24s color=%s",
					i18n.CategoryName(msgs, b.Segment.Category), b.LeftCSS(), width, b.Color)
				if b.Opacity != "" {
					fmt.Fprintf(out, " opacity=%s", b.Opacity)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, render.ScrubBar(engine.Bars(), flags.width))
			return nil
		},
	}
	flags.bind(barCmd)
	barCmd.Flags().BoolVar(&mobile, "mobile", false, "Compute bars for a mobile host")
	return barCmd
}

var barCmd = NewBarCmd()

func init() {
	cmd.RootCmd.AddCommand(barCmd)
}
