package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/i18n"
	"github.com/cristianoliveira/segbar/internal/previewbar"
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/spf13/cobra"
)

const defaultWidth = 80

var errNoDuration = errors.New("--duration must be positive")

// engineFlags are the inputs shared by the commands that build a preview bar.
type engineFlags struct {
	segments string
	duration float64
	width    int
}

func (f *engineFlags) bind(c *cobra.Command) {
	c.Flags().StringVar(&f.segments, "segments", "-", "JSON segments file (- for stdin)")
	c.Flags().Float64Var(&f.duration, "duration", 0, "Media duration in seconds")
	c.Flags().IntVar(&f.width, "width", defaultWidth, "Bar width in columns")
}

// load reads the segments named by the flags.
func (f *engineFlags) load(c *cobra.Command) ([]*segment.Segment, error) {
	if f.duration <= 0 {
		return nil, errNoDuration
	}
	var r io.Reader = c.InOrStdin()
	if f.segments != "-" {
		file, err := os.Open(f.segments)
		if err != nil {
			return nil, fmt.Errorf("open segments: %w", err)
		}
		defer file.Close()
		r = file
	}
	return segment.Decode(r)
}

// newEngine builds an engine for the terminal host and fills it with segments.
func newEngine(cfg config.Context, opts previewbar.Options, segments []*segment.Segment, duration float64) (*previewbar.Engine, i18n.Messages) {
	msgs := i18n.New(cfg.Language)
	engine := previewbar.New(opts, cfg, msgs)
	engine.Set(segment.PreviewBarSegments(segments), duration)
	return engine, msgs
}
