package notice

import (
	"fmt"
	"math"

	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/i18n"
	"github.com/cristianoliveira/segbar/internal/ports"
	"github.com/cristianoliveira/segbar/internal/segment"
)

// Options are the per-notice inputs chosen by the caller.
type Options struct {
	AutoSkip bool
	// ResumeTime overrides where unskipping seeks to.
	ResumeTime *float64
	// Smaller notices start collapsed.
	Smaller bool
}

// Env is the read-only context of a transition.
type Env struct {
	// Segments are the candidates, sorted by start time.
	Segments []*segment.Segment
	Options  Options
	Config   config.Context
	Player   ports.PlayerState
}

func (env Env) candidate(index int) *segment.Segment {
	if index < 0 || index >= len(env.Segments) {
		panic(fmt.Sprintf("notice: candidate index %d out of range [0, %d)", index, len(env.Segments)))
	}
	return env.Segments[index]
}

// Initial returns the state of a freshly opened notice.
func Initial(env Env) State {
	if len(env.Segments) == 0 {
		panic("notice: no candidate segments")
	}
	first := env.Segments[0]
	s := State{
		ChosenCategory: first.Category,
		Title:          SkippingTextKey(env.Segments, env.Options.AutoSkip),
		ShowSkipButton: len(env.Segments) > 1 ||
			segment.ActionTypeOf(first.Category) != segment.POI ||
			env.Options.ResumeTime != nil,
		Smaller: env.Options.Smaller,
		Faded:   env.Config.StartFaded(env.Options.AutoSkip),
	}
	if env.Options.AutoSkip {
		s = skippedMode(s, env, 0)
	} else {
		// A manual notice offers to skip the first segment
		s = unskippedMode(s, env, 0, skipLabel(first))
	}
	return s
}

// Transition applies one event. It never mutates its inputs.
func Transition(s State, ev Event, env Env) (State, []Effect) {
	if s.Closed {
		return s, nil
	}
	s = s.clone()

	switch ev := ev.(type) {
	case RequestAction:
		if ev.Kind == None {
			return s, nil
		}
		if len(env.Segments) == 1 {
			return perform(s, env, ev.Kind, 0)
		}
		s.Action = ev.Kind
		s.Editing = false
		s.ChoosingCategory = ev.Kind == CategoryVote
		return s, nil

	case SelectCandidate:
		if s.Action == None {
			return s, nil
		}
		env.candidate(ev.Index)
		return perform(s, env, s.Action, ev.Index)

	case OpenEditing:
		s.Editing = true
		s.ChoosingCategory = false
		s.Action = None
		return s, nil

	case CloseEditing:
		s.Editing = false
		s.ChoosingCategory = false
		s.Action = None
		return s, nil

	case OpenCategoryChooser:
		s.ChoosingCategory = true
		s.Editing = false
		s.ChosenCategory = env.Segments[0].Category
		if len(env.Segments) > 1 {
			s.Action = CategoryVote
		}
		return s, nil

	case ChooseCategory:
		if s.ChoosingCategory && isCategoryOption(ev.Category) {
			s.ChosenCategory = ev.Category
		}
		return s, nil

	case ContinueVoting:
		s.ThanksText = ""
		s.Messages = nil
		s.MessageLink = ""
		return s, nil

	case Voted:
		return voted(s, env, ev)

	case OpenMessageLink:
		if s.MessageLink == "" {
			return s, nil
		}
		return s, []Effect{OpenLink{URL: s.MessageLink}}

	case DontShowAgain:
		// Only auto skips can be silenced
		if !env.Options.AutoSkip {
			return s, nil
		}
		return closed(), []Effect{DisableNotices{}, CloseNotice{}}

	case Tick:
		if s.Paused {
			return s, nil
		}
		s.Countdown--
		if s.Countdown <= 0 {
			return closed(), []Effect{CloseNotice{}}
		}
		return s, nil

	case MouseEnter:
		s.Smaller = false
		s.Faded = false
		s.Paused = true
		s.Countdown = maxCountdown(s.CountdownSource, env)
		return s, nil

	case MouseLeave:
		s.Paused = false
		s.Countdown = maxCountdown(s.CountdownSource, env)
		return s, nil

	case PlaybackProgress:
		if len(env.Segments) == 1 {
			seg := env.Segments[0]
			if seg.ActionType == segment.ActionMute && env.Player.CurrentTime >= seg.End() {
				s.ShowSkipButton = false
			}
		}
		return s, nil

	case Close:
		return closed(), []Effect{CloseNotice{}}

	default:
		return s, nil
	}
}

func closed() State {
	return State{Closed: true}
}

// perform runs kind against candidate index and clears the pending action.
func perform(s State, env Env, kind ActionKind, index int) (State, []Effect) {
	seg := env.candidate(index)
	s.Action = None

	switch kind {
	case Upvote:
		s.Editing = false
		s.ChoosingCategory = false
		// The local flag is written but the segment list is not resynchronised
		return s, []Effect{
			VoteEffect{Index: index, Direction: ports.VoteUp},
			SetHidden{Index: index, State: segment.Visible},
			RefreshOverlay{},
		}

	case Downvote:
		return s, []Effect{VoteEffect{Index: index, Direction: ports.VoteDown}}

	case CopyDownvote:
		return s, []Effect{
			AppendSubmission{Segment: seg.LocalCopy()},
			RefreshOverlay{},
			VoteEffect{Index: index, Direction: ports.VoteDown},
		}

	case CategoryVote:
		category := s.ChosenCategory
		if category == "" {
			category = seg.Category
		}
		return s, []Effect{VoteEffect{Index: index, Direction: ports.VoteCategory, Category: category}}

	case Unskip:
		if s.SkipButton.Mode == Skipped {
			s = unskippedMode(s, env, index, reskipLabel(seg))
			return s, []Effect{UnskipEffect{Index: index, ResumeTime: env.Options.ResumeTime}}
		}
		s = skippedMode(s, env, index)
		if !env.Options.AutoSkip {
			s.Title = i18n.KeyNoticeTitle
		}
		return s, []Effect{ReskipEffect{Index: index}}

	default:
		return s, nil
	}
}

func voted(s State, env Env, ev Voted) (State, []Effect) {
	seg := env.candidate(ev.Index)

	switch ev.Direction {
	case ports.VoteUp:
		s.Messages = append(s.Messages, i18n.KeyVoted)
		return s, nil

	case ports.VoteDown:
		s = clearVoting(s)
		s.ThanksText = i18n.KeyVoted
		s.Messages = []string{i18n.KeyOpenCategoryWikiPage}
		s.MessageLink = env.Config.WikiPages[seg.Category]
		return s, []Effect{
			SetHidden{Index: ev.Index, State: segment.Downvoted},
			RefreshOverlay{},
		}

	case ports.VoteCategory:
		s = clearVoting(s)
		s.ThanksText = i18n.KeyVoted
		return s, []Effect{
			SetCategory{Index: ev.Index, Category: ev.Category},
			RefreshOverlay{},
		}

	default:
		return s, nil
	}
}

func clearVoting(s State) State {
	s.Action = None
	s.Editing = false
	s.ChoosingCategory = false
	return s
}

// skippedMode shows the unskip control and re-arms the default countdown.
func skippedMode(s State, env Env, index int) State {
	s.SkipButton = SkipButton{Mode: Skipped, Label: unskipLabel(env.candidate(index))}
	s.CountdownSource = CountdownSource{Kind: CountdownDefault}
	s.Countdown = maxCountdown(s.CountdownSource, env)
	return s
}

// unskippedMode shows label and re-arms the countdown. Skippable segments keep
// the notice open until they end.
func unskippedMode(s State, env Env, index int, label string) State {
	s.SkipButton = SkipButton{Mode: Unskipped, Label: label}
	if segment.ActionTypeOf(env.candidate(index).Category) == segment.Skippable {
		s.CountdownSource = CountdownSource{Kind: CountdownRemainingSegment, Index: index}
	} else {
		s.CountdownSource = CountdownSource{Kind: CountdownDefault}
	}
	s.Countdown = maxCountdown(s.CountdownSource, env)
	return s
}

// maxCountdown evaluates a countdown source in seconds.
func maxCountdown(src CountdownSource, env Env) int {
	def := env.Config.SkipNoticeDuration
	if src.Kind != CountdownRemainingSegment {
		return def
	}
	seg := env.candidate(src.Index)
	remaining := int(math.Round((seg.End() - env.Player.CurrentTime) / env.Player.Rate()))
	if remaining > def {
		return remaining
	}
	return def
}

func isCategoryOption(c segment.Category) bool {
	for _, option := range CategoryOptions() {
		if option == c {
			return true
		}
	}
	return false
}
