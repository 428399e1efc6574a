package sqlite

import (
	"fmt"

	"github.com/cristianoliveira/segbar/internal/ports"
	"github.com/cristianoliveira/segbar/internal/segment"
)

// VoteRecord is one vote kept in the journal.
type VoteRecord struct {
	ID          string
	VideoID     string
	SegmentUUID string
	Direction   string
	Category    segment.Category
	CreatedAt   string
}

// RecordVote appends a vote to the journal and returns its row ID.
func (s *SQLiteStorage) RecordVote(videoID, segmentUUID string, direction ports.VoteDirection, category segment.Category) (string, error) {
	if err := validateVideoID(videoID); err != nil {
		return "", err
	}
	if segmentUUID == "" {
		return "", fmt.Errorf("sqlite storage: record vote: %w: segment has no UUID", ErrSegmentNotFound)
	}

	id := newID()
	_, err := s.db.Exec(`INSERT INTO votes (id, video_id, segment_uuid, direction, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, videoID, segmentUUID, direction.String(), string(category), utcNow())
	if err != nil {
		return "", fmt.Errorf("sqlite storage: record vote: %w", err)
	}
	return id, nil
}

// ListVotes returns the votes cast on videoID, oldest first.
func (s *SQLiteStorage) ListVotes(videoID string) ([]VoteRecord, error) {
	if err := validateVideoID(videoID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT id, video_id, segment_uuid, direction, category, created_at
		FROM votes
		WHERE video_id = ?
		ORDER BY created_at, rowid`, videoID)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list votes: %w", err)
	}
	defer rows.Close()

	var out []VoteRecord
	for rows.Next() {
		var (
			v        VoteRecord
			category string
		)
		if err := rows.Scan(&v.ID, &v.VideoID, &v.SegmentUUID, &v.Direction, &category, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan vote: %w", err)
		}
		v.Category = segment.Category(category)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list votes: %w", err)
	}
	return out, nil
}
