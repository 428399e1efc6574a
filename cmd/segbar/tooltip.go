package main

import (
	"fmt"

	"github.com/cristianoliveira/segbar/cmd"
	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/previewbar"
	"github.com/cristianoliveira/segbar/internal/timefmt"
	"github.com/spf13/cobra"
)

// hostTooltipClass stands in for the host's own tooltip text element.
const hostTooltipClass = "seekbar-tooltip-text"

// NewTooltipCmd creates the tooltip command.
func NewTooltipCmd() *cobra.Command {
	var flags engineFlags
	var at string

	tooltipCmd := &cobra.Command{
		Use:   "tooltip",
		Short: "Resolve the hover tooltip at a time",
		Long: `Resolve the category tooltip shown when hovering the bar at a time.

When segments overlap, the shortest one wins. Chapters are reported separately.

USAGE:
    segbar tooltip --duration <seconds> --at <time> [--segments <file>]

EXAMPLES:
    segbar tooltip --segments video.json --duration 600 --at 1:23`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if _, ok := timefmt.ParseSeconds(at); !ok {
				return fmt.Errorf("invalid --at time %q", at)
			}
			segments, err := flags.load(c)
			if err != nil {
				return err
			}
			engine, _ := newEngine(config.Current(), previewbar.Options{TooltipWrapper: true}, segments, flags.duration)
			engine.SetPointerOverSeekBar(true)
			engine.ObserveTooltip(
				[]previewbar.Mutation{{TargetClasses: []string{hostTooltipClass}}},
				[]previewbar.TooltipText{{Text: at}},
			)

			tooltip := engine.Tooltip()
			if !tooltip.Visible {
				colors.Info(fmt.Sprintf("no segment at %s", at))
				return nil
			}
			out := c.OutOrStdout()
			if tooltip.Text != "" {
				fmt.Fprintf(out, "category: %s\n", tooltip.Text)
			}
			if tooltip.Chapter != "" {
				fmt.Fprintf(out, "chapter: %s\n", tooltip.Chapter)
			}
			return nil
		},
	}
	flags.bind(tooltipCmd)
	tooltipCmd.Flags().StringVar(&at, "at", "", "Hovered time, e.g. 1:23 or 1:02:03")
	_ = tooltipCmd.MarkFlagRequired("at")
	return tooltipCmd
}

var tooltipCmd = NewTooltipCmd()

func init() {
	cmd.RootCmd.AddCommand(tooltipCmd)
}
