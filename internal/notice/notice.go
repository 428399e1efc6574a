package notice

import (
	"fmt"

	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/ports"
	"github.com/cristianoliveira/segbar/internal/segment"
)

// Notice is one open skip notice bound to its candidate segments.
// It is not safe for concurrent use; events are processed one at a time.
type Notice struct {
	segments []*segment.Segment
	opts     Options
	cfg      config.Context
	collab   ports.Collaborator
	onClose  func()

	state State
}

// Open creates a notice over segments, which must be sorted by start time.
// The notice writes Hidden and Category on those segments in place.
// onClose, if set, runs once when the notice closes.
func Open(segments []*segment.Segment, opts Options, cfg config.Context, collab ports.Collaborator, onClose func()) *Notice {
	n := &Notice{
		segments: segments,
		opts:     opts,
		cfg:      cfg,
		collab:   collab,
		onClose:  onClose,
	}
	n.state = Initial(n.env())
	colors.Debug(fmt.Sprintf("notice opened with %d segment(s), auto skip %t", len(segments), opts.AutoSkip))
	return n
}

func (n *Notice) env() Env {
	return Env{
		Segments: n.segments,
		Options:  n.opts,
		Config:   n.cfg,
		Player:   n.collab.Player(),
	}
}

// State returns a copy of the current state.
func (n *Notice) State() State {
	return n.state.clone()
}

// Segments returns the candidate segments.
func (n *Notice) Segments() []*segment.Segment {
	return n.segments
}

// Closed reports whether the notice has closed.
func (n *Notice) Closed() bool {
	return n.state.Closed
}

// AutoSkip reports whether the notice was opened for an automatic skip.
func (n *Notice) AutoSkip() bool {
	return n.opts.AutoSkip
}

// Dispatch processes ev and every follow-up event it causes before returning.
func (n *Notice) Dispatch(ev Event) {
	queue := []Event{ev}
	for len(queue) > 0 {
		if n.state.Closed {
			return
		}
		next := queue[0]
		queue = queue[1:]

		state, effects := Transition(n.state, next, n.env())
		n.state = state
		queue = append(queue, n.execute(effects)...)
	}
}

// Tick advances the countdown by one second.
func (n *Notice) Tick() { n.Dispatch(Tick{}) }

// Close closes the notice. Closing twice does nothing.
func (n *Notice) Close() { n.Dispatch(Close{}) }

// execute runs effects and returns the events they produce.
func (n *Notice) execute(effects []Effect) []Event {
	var followUps []Event
	for _, effect := range effects {
		switch e := effect.(type) {
		case VoteEffect:
			seg := n.segments[e.Index]
			colors.Debug(fmt.Sprintf("notice: vote %s on %s", e.Direction, seg.UUID))
			n.collab.Vote(e.Direction, seg.UUID, e.Category)
			// Vote outcomes are trusted
			followUps = append(followUps, Voted(e))
		case UnskipEffect:
			n.collab.Unskip(n.segments[e.Index], e.ResumeTime)
		case ReskipEffect:
			n.collab.Reskip(n.segments[e.Index])
		case SetHidden:
			n.segments[e.Index].Hidden = e.State
		case SetCategory:
			n.segments[e.Index].Category = e.Category
		case AppendSubmission:
			n.collab.AppendPendingSubmission(e.Segment)
		case RefreshOverlay:
			n.collab.UpdatePreviewBar()
		case OpenLink:
			n.collab.OpenLink(e.URL)
		case DisableNotices:
			n.collab.DontShowNoticeAgain()
		case CloseNotice:
			colors.Debug("notice closed")
			if n.onClose != nil {
				n.onClose()
			}
		default:
			panic(fmt.Sprintf("notice: unknown effect %T", effect))
		}
	}
	return followUps
}
