package notice

import (
	"github.com/cristianoliveira/segbar/internal/ports"
	"github.com/cristianoliveira/segbar/internal/segment"
)

// Event is an input to the notice state machine.
type Event interface {
	isEvent()
}

// RequestAction asks for an action. With one candidate it runs immediately.
type RequestAction struct{ Kind ActionKind }

// SelectCandidate runs the pending action on candidate Index.
type SelectCandidate struct{ Index int }

// OpenEditing shows the voting options.
type OpenEditing struct{}

// CloseEditing hides the voting options.
type CloseEditing struct{}

// OpenCategoryChooser shows the category selector.
type OpenCategoryChooser struct{}

// ChooseCategory changes the value of the category selector.
type ChooseCategory struct{ Category segment.Category }

// ContinueVoting dismisses the thanks message.
type ContinueVoting struct{}

// Voted reports that the vote on candidate Index was submitted.
type Voted struct {
	Index     int
	Direction ports.VoteDirection
	Category  segment.Category
}

// OpenMessageLink follows the link attached to the notice messages.
type OpenMessageLink struct{}

// DontShowAgain disables notices for auto skipped segments and closes this one.
type DontShowAgain struct{}

// Tick is one second of countdown.
type Tick struct{}

// MouseEnter pauses the countdown and expands a smaller notice.
type MouseEnter struct{}

// MouseLeave resumes the countdown.
type MouseLeave struct{}

// PlaybackProgress reports the playback time moved.
type PlaybackProgress struct{}

// Close closes the notice, discarding anything in progress.
type Close struct{}

func (RequestAction) isEvent()       {}
func (SelectCandidate) isEvent()     {}
func (OpenEditing) isEvent()         {}
func (CloseEditing) isEvent()        {}
func (OpenCategoryChooser) isEvent() {}
func (ChooseCategory) isEvent()      {}
func (ContinueVoting) isEvent()      {}
func (Voted) isEvent()               {}
func (OpenMessageLink) isEvent()     {}
func (DontShowAgain) isEvent()       {}
func (Tick) isEvent()                {}
func (MouseEnter) isEvent()          {}
func (MouseLeave) isEvent()          {}
func (PlaybackProgress) isEvent()    {}
func (Close) isEvent()               {}

// Effect is a side effect requested by a transition.
type Effect interface {
	isEffect()
}

// VoteEffect submits a vote on candidate Index.
type VoteEffect struct {
	Index     int
	Direction ports.VoteDirection
	Category  segment.Category
}

// UnskipEffect returns playback to candidate Index.
type UnskipEffect struct {
	Index      int
	ResumeTime *float64
}

// ReskipEffect skips candidate Index again.
type ReskipEffect struct{ Index int }

// SetHidden writes the hidden state of candidate Index.
type SetHidden struct {
	Index int
	State segment.HiddenState
}

// SetCategory writes the category of candidate Index.
type SetCategory struct {
	Index    int
	Category segment.Category
}

// AppendSubmission adds a locally created segment to the pending submissions.
type AppendSubmission struct{ Segment *segment.Segment }

// RefreshOverlay asks the host to rebuild the preview bar.
type RefreshOverlay struct{}

// OpenLink opens an informational page.
type OpenLink struct{ URL string }

// DisableNotices turns notices off for auto skipped segments.
type DisableNotices struct{}

// CloseNotice tells the owner the notice closed.
type CloseNotice struct{}

func (VoteEffect) isEffect()       {}
func (UnskipEffect) isEffect()     {}
func (ReskipEffect) isEffect()     {}
func (SetHidden) isEffect()        {}
func (SetCategory) isEffect()      {}
func (AppendSubmission) isEffect() {}
func (RefreshOverlay) isEffect()   {}
func (OpenLink) isEffect()         {}
func (DisableNotices) isEffect()   {}
func (CloseNotice) isEffect()      {}
