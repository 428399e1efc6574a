package main

import (
	"fmt"

	"github.com/cristianoliveira/segbar/cmd"
	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/storage"
	"github.com/cristianoliveira/segbar/internal/timefmt"
	"github.com/spf13/cobra"
)

// NewPendingCmd creates the pending command group.
func NewPendingCmd(openStore func() (storage.Storage, error)) *cobra.Command {
	if openStore == nil {
		panic("NewPendingCmd: openStore dependency cannot be nil")
	}

	var videoID string

	withStore := func(fn func(storage.Storage) error) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		return fn(store)
	}

	pendingCmd := &cobra.Command{
		Use:   "pending",
		Short: "Manage segments waiting to be submitted",
		Long: `Manage locally created segments waiting to be submitted.

Segments are added here by the "copy and downvote" action of the skip notice.

USAGE:
    segbar pending list --video <id>
    segbar pending remove <id>
    segbar pending clear --video <id>`,
	}
	pendingCmd.PersistentFlags().StringVar(&videoID, "video", "", "Video ID")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pending segments of a video",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return withStore(func(store storage.Storage) error {
				pending, err := store.ListPending(videoID)
				if err != nil {
					return err
				}
				if len(pending) == 0 {
					colors.Info("no pending segments")
					return nil
				}
				out := c.OutOrStdout()
				for _, p := range pending {
					fmt.Fprintf(out, "%s\t%s - %s\t%s\t%s\n", p.ID,
						timefmt.Format(p.Segment.Start()), timefmt.Format(p.Segment.End()),
						p.Segment.Category, p.Segment.ActionType)
				}
				return nil
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove one pending segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withStore(func(store storage.Storage) error {
				if err := store.RemovePending(args[0]); err != nil {
					return err
				}
				colors.Success(fmt.Sprintf("removed %s", args[0]))
				return nil
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every pending segment of a video",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return withStore(func(store storage.Storage) error {
				n, err := store.ClearPending(videoID)
				if err != nil {
					return err
				}
				colors.Success(fmt.Sprintf("cleared %d pending segments", n))
				return nil
			})
		},
	}

	pendingCmd.AddCommand(listCmd, removeCmd, clearCmd)
	return pendingCmd
}

var pendingCmd = NewPendingCmd(storage.NewFromConfig)

func init() {
	cmd.RootCmd.AddCommand(pendingCmd)
}
