package main

import (
	"fmt"

	"github.com/cristianoliveira/segbar/cmd"
	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/storage"
	"github.com/spf13/cobra"
)

// NewVotesCmd creates the votes command.
func NewVotesCmd(openStore func() (storage.Storage, error)) *cobra.Command {
	if openStore == nil {
		panic("NewVotesCmd: openStore dependency cannot be nil")
	}

	var videoID string

	votesCmd := &cobra.Command{
		Use:   "votes",
		Short: "Show the votes cast on a video",
		Long: `Show the vote journal of a video, oldest first.

USAGE:
    segbar votes --video <id>`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			votes, err := store.ListVotes(videoID)
			if err != nil {
				return err
			}
			if len(votes) == 0 {
				colors.Info("no votes")
				return nil
			}
			out := c.OutOrStdout()
			for _, v := range votes {
				line := fmt.Sprintf("%s\t%s\t%s", v.CreatedAt, v.Direction, v.SegmentUUID)
				if v.Category != "" {
					line += "\t" + string(v.Category)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	votesCmd.Flags().StringVar(&videoID, "video", "", "Video ID")
	return votesCmd
}

var votesCmd = NewVotesCmd(storage.NewFromConfig)

func init() {
	cmd.RootCmd.AddCommand(votesCmd)
}
