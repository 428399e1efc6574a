package sqlite

import "errors"

var (
	// ErrInvalidVideoID indicates an empty video ID.
	ErrInvalidVideoID = errors.New("invalid video ID")
	// ErrSegmentNotFound indicates that a pending segment cannot be found.
	ErrSegmentNotFound = errors.New("segment not found")
	// ErrInvalidSegment indicates a segment that fails validation.
	ErrInvalidSegment = errors.New("invalid segment")
)
