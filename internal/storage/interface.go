// Package storage provides the storage interface for segbar.
package storage

import (
	"github.com/cristianoliveira/segbar/internal/ports"
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/cristianoliveira/segbar/internal/storage/sqlite"
)

// Storage keeps pending local submissions and the vote journal per video.
type Storage interface {
	AppendPending(videoID string, seg *segment.Segment) (string, error)
	ListPending(videoID string) ([]sqlite.PendingSegment, error)
	RemovePending(id string) error
	ClearPending(videoID string) (int, error)
	RecordVote(videoID, segmentUUID string, direction ports.VoteDirection, category segment.Category) (string, error)
	ListVotes(videoID string) ([]sqlite.VoteRecord, error)
	Close() error
}
