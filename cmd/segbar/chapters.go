package main

import (
	"fmt"

	"github.com/cristianoliveira/segbar/cmd"
	"github.com/cristianoliveira/segbar/internal/previewbar"
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/cristianoliveira/segbar/internal/timefmt"
	"github.com/cristianoliveira/segbar/internal/tui/render"
	"github.com/spf13/cobra"
)

// NewChaptersCmd creates the chapters command.
func NewChaptersCmd() *cobra.Command {
	var flags engineFlags

	chaptersCmd := &cobra.Command{
		Use:   "chapters",
		Short: "Print the merged chapter strip",
		Long: `Merge segments into the chapter strip drawn in place of the native one.

Overlapping and touching segments are merged; the gaps between them become
blank sections. Highlight segments are ignored.

USAGE:
    segbar chapters --duration <seconds> [--segments <file>] [--width <n>]`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			segments, err := flags.load(c)
			if err != nil {
				return err
			}
			sections := previewbar.Merge(segment.PreviewBarSegments(segments), flags.duration)
			out := c.OutOrStdout()
			if len(sections) == 0 {
				fmt.Fprintln(out, "no chapters")
				return nil
			}
			for _, s := range sections {
				kind := "segment"
				if s.Blank {
					kind = "blank"
				}
				fmt.Fprintf(out, "%8s - %-8s %-8s %s\n",
					timefmt.Format(s.Start), timefmt.Format(s.End), kind, s.WidthCSS())
			}
			fmt.Fprintln(out, render.ChapterStrip(sections, flags.width, ""))
			return nil
		},
	}
	flags.bind(chaptersCmd)
	return chaptersCmd
}

var chaptersCmd = NewChaptersCmd()

func init() {
	cmd.RootCmd.AddCommand(chaptersCmd)
}
