// Package notice implements the skip notice shown when playback enters a segment.
//
// The notice is an explicit state machine. Transition is a pure function from
// (State, Event) to (State, []Effect); Notice executes the effects against a
// ports.Collaborator.
package notice

import (
	"fmt"

	"github.com/cristianoliveira/segbar/internal/segment"
)

// ActionKind is an action waiting for, or applied to, a candidate segment.
type ActionKind int

const (
	None ActionKind = iota
	Upvote
	Downvote
	CategoryVote
	CopyDownvote
	Unskip
)

// String returns the string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case None:
		return "none"
	case Upvote:
		return "upvote"
	case Downvote:
		return "downvote"
	case CategoryVote:
		return "category_vote"
	case CopyDownvote:
		return "copy_downvote"
	case Unskip:
		return "unskip"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Mode is the interaction mode derived from a State.
type Mode int

const (
	ModeIdle Mode = iota
	ModePendingAction
	ModeEditingOpen
	ModeChoosingCategory
	ModeThanksForVoting
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePendingAction:
		return "pending_action"
	case ModeEditingOpen:
		return "editing"
	case ModeChoosingCategory:
		return "choosing_category"
	case ModeThanksForVoting:
		return "thanks_for_voting"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// SkipMode tells whether the segment is currently skipped.
type SkipMode int

const (
	// Skipped shows an unskip (or unmute) control.
	Skipped SkipMode = iota
	// Unskipped shows a reskip (or mute) control.
	Unskipped
)

// SkipButton is the skip control: its mode and the message key of its label.
type SkipButton struct {
	Mode  SkipMode
	Label string
}

// CountdownKind selects how the countdown maximum is computed.
type CountdownKind int

const (
	// CountdownDefault uses the configured notice duration.
	CountdownDefault CountdownKind = iota
	// CountdownRemainingSegment lasts until the segment ends, at least the configured duration.
	CountdownRemainingSegment
)

// CountdownSource is the function computing the countdown maximum.
type CountdownSource struct {
	Kind  CountdownKind
	Index int
}

// State is everything the notice shows.
type State struct {
	Action           ActionKind
	Editing          bool
	ChoosingCategory bool
	ChosenCategory   segment.Category

	ThanksText  string
	Messages    []string
	MessageLink string

	Countdown       int
	CountdownSource CountdownSource

	SkipButton     SkipButton
	ShowSkipButton bool
	Title          string

	Smaller bool
	Faded   bool
	Paused  bool
	Closed  bool
}

// Mode derives the interaction mode.
func (s State) Mode() Mode {
	switch {
	case s.Action != None:
		return ModePendingAction
	case s.ChoosingCategory:
		return ModeChoosingCategory
	case s.Editing:
		return ModeEditingOpen
	case s.ThanksText != "":
		return ModeThanksForVoting
	default:
		return ModeIdle
	}
}

func (s State) clone() State {
	s.Messages = append([]string(nil), s.Messages...)
	return s
}
