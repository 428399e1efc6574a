package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/segbar/cmd"
	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/logging"
	"github.com/cristianoliveira/segbar/internal/player"
	"github.com/cristianoliveira/segbar/internal/segwatch"
	"github.com/cristianoliveira/segbar/internal/storage"
	"github.com/cristianoliveira/segbar/internal/tui/state"
	"github.com/spf13/cobra"
)

// programRunner runs a bubbletea model until it quits.
type programRunner func(m tea.Model) error

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewWatchCmd creates the watch command.
func NewWatchCmd(openStore func() (storage.Storage, error), run programRunner) *cobra.Command {
	if openStore == nil || run == nil {
		panic("NewWatchCmd: dependencies cannot be nil")
	}

	var flags engineFlags
	var videoID string
	var manual bool
	var noReload bool

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Play segments in an interactive player",
		Long: `Play a simulated video with its segments in the terminal.

Segments are skipped (or muted) as playback enters them and a skip notice
opens where you can unskip, vote or change the category. Votes and copied
segments are kept in the local database under the video ID.

USAGE:
    segbar watch --duration <seconds> [--segments <file>] [--video <id>] [--manual]

OPTIONS:
    --video <id>   Video ID for the local database (default: segments file name)
    --manual       Ask before skipping instead of skipping automatically
    --no-reload    Do not reload the segments file when it changes on disk`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if flags.segments == "-" {
				return fmt.Errorf("watch needs a --segments file")
			}
			segments, err := flags.load(c)
			if err != nil {
				return err
			}
			if videoID == "" {
				videoID = strings.TrimSuffix(filepath.Base(flags.segments), filepath.Ext(flags.segments))
			}

			cfg := config.Current()
			store, err := openStore()
			if err != nil {
				colors.Warning(fmt.Sprintf("local database unavailable: %v", err))
				store = nil
			}
			if store != nil {
				defer store.Close()
			}

			engine, msgs := newEngine(cfg, state.EngineOptions(), nil, flags.duration)
			session := player.NewSession(segments, player.New(flags.duration), engine, cfg, player.Options{
				VideoID:  videoID,
				AutoSkip: cfg.AutoSkip && !manual,
				Store:    store,
				OpenLink: func(url string) error {
					logging.Info("open link", "url", url)
					return nil
				},
			})
			defer session.Close()

			model := state.NewModel(session, cfg, msgs)
			if !noReload {
				w, err := segwatch.New(flags.segments, segwatch.DefaultDebounce)
				if err != nil {
					colors.Warning(fmt.Sprintf("segments file will not be reloaded: %v", err))
				} else {
					ctx := c.Context()
					if ctx == nil {
						ctx = context.Background()
					}
					ctx, cancel := context.WithCancel(ctx)
					defer cancel()
					w.Start(ctx)
					defer w.Close()
					model.WithReloads(w.Updates())
				}
			}

			if err := run(model); err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			for _, link := range session.Links() {
				colors.Info(link)
			}
			return nil
		},
	}
	flags.bind(watchCmd)
	watchCmd.Flags().StringVar(&videoID, "video", "", "Video ID for the local database")
	watchCmd.Flags().BoolVar(&manual, "manual", false, "Ask before skipping")
	watchCmd.Flags().BoolVar(&noReload, "no-reload", false, "Do not reload the segments file when it changes")
	return watchCmd
}

var watchCmd = NewWatchCmd(storage.NewFromConfig, runProgram)

func init() {
	cmd.RootCmd.AddCommand(watchCmd)
}
