// Package ports defines the boundary interfaces the overlay engines consume.
package ports

import "github.com/cristianoliveira/segbar/internal/segment"

// VoteDirection is the kind of vote submitted for a segment.
type VoteDirection int

const (
	// VoteDown reports a segment as incorrect.
	VoteDown VoteDirection = iota
	// VoteUp confirms a segment.
	VoteUp
	// VoteCategory proposes a different category for a segment.
	VoteCategory
)

// String returns the string representation of the direction.
func (d VoteDirection) String() string {
	switch d {
	case VoteDown:
		return "down"
	case VoteUp:
		return "up"
	case VoteCategory:
		return "category"
	default:
		return "unknown"
	}
}

// PlayerState is a snapshot of the media player.
type PlayerState struct {
	CurrentTime  float64
	PlaybackRate float64
	Volume       float64
}

// Rate returns the playback rate, treating a zero rate as normal speed.
func (p PlayerState) Rate() float64 {
	if p.PlaybackRate <= 0 {
		return 1
	}
	return p.PlaybackRate
}

// Collaborator is everything the skip notice needs from the host player.
// Results are not reported back; the notice trusts every call.
type Collaborator interface {
	// Vote submits a vote. category is only set for VoteCategory.
	Vote(direction VoteDirection, uuid string, category segment.Category)
	// Unskip returns playback to the segment. resumeTime overrides the seek target when set.
	Unskip(seg *segment.Segment, resumeTime *float64)
	// Reskip skips (or mutes) the segment again.
	Reskip(seg *segment.Segment)
	// Player returns the current player state.
	Player() PlayerState
	// UpdatePreviewBar asks the host to rebuild the overlay from its segments.
	UpdatePreviewBar()
	// AppendPendingSubmission appends a locally created segment to the submission list.
	AppendPendingSubmission(seg *segment.Segment)
	// OpenLink opens an informational page.
	OpenLink(url string)
	// DontShowNoticeAgain disables notices for auto skipped segments.
	DontShowNoticeAgain()
}
