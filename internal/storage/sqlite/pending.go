package sqlite

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/segbar/internal/segment"
)

// PendingSegment is a locally created segment waiting to be submitted.
type PendingSegment struct {
	ID        string
	VideoID   string
	Segment   *segment.Segment
	CreatedAt string
}

// AppendPending stores a local segment for videoID and returns its row ID.
func (s *SQLiteStorage) AppendPending(videoID string, seg *segment.Segment) (string, error) {
	if err := validateVideoID(videoID); err != nil {
		return "", err
	}
	if seg == nil {
		return "", fmt.Errorf("sqlite storage: append pending: %w: nil segment", ErrInvalidSegment)
	}
	local := *seg
	local.UUID = ""
	local.Source = segment.SourceLocal
	if err := local.Validate(); err != nil {
		return "", fmt.Errorf("sqlite storage: append pending: %w: %v", ErrInvalidSegment, err)
	}

	id := newID()
	_, err := s.db.Exec(`INSERT INTO pending_segments
		(id, video_id, start_time, end_time, category, action_type, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, videoID, local.Start(), local.End(), string(local.Category), string(local.ActionType), local.Description, utcNow())
	if err != nil {
		return "", fmt.Errorf("sqlite storage: append pending: %w", err)
	}
	return id, nil
}

// ListPending returns the pending segments of videoID ordered by start time.
func (s *SQLiteStorage) ListPending(videoID string) ([]PendingSegment, error) {
	if err := validateVideoID(videoID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT id, video_id, start_time, end_time, category, action_type, description, created_at
		FROM pending_segments
		WHERE video_id = ?
		ORDER BY start_time, created_at, rowid`, videoID)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list pending: %w", err)
	}
	defer rows.Close()

	var out []PendingSegment
	for rows.Next() {
		var (
			p                    PendingSegment
			start, end           float64
			category, actionType string
			description          string
		)
		if err := rows.Scan(&p.ID, &p.VideoID, &start, &end, &category, &actionType, &description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan pending: %w", err)
		}
		p.Segment = &segment.Segment{
			Segment:     [2]float64{start, end},
			Category:    segment.Category(category),
			ActionType:  segment.ActionType(actionType),
			Source:      segment.SourceLocal,
			Description: description,
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list pending: %w", err)
	}
	return out, nil
}

// RemovePending deletes one pending segment by row ID.
func (s *SQLiteStorage) RemovePending(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("sqlite storage: remove pending: %w: empty id", ErrSegmentNotFound)
	}
	res, err := s.db.Exec(`DELETE FROM pending_segments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: remove pending: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite storage: remove pending: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("sqlite storage: remove pending: %w: id %s", ErrSegmentNotFound, id)
	}
	return nil
}

// ClearPending deletes every pending segment of videoID and returns how many were removed.
func (s *SQLiteStorage) ClearPending(videoID string) (int, error) {
	if err := validateVideoID(videoID); err != nil {
		return 0, err
	}
	res, err := s.db.Exec(`DELETE FROM pending_segments WHERE video_id = ?`, videoID)
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: clear pending: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: clear pending: %w", err)
	}
	return int(n), nil
}
