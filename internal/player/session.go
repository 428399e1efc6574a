package player

import (
	"sort"
	"time"

	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/logging"
	"github.com/cristianoliveira/segbar/internal/notice"
	"github.com/cristianoliveira/segbar/internal/ports"
	"github.com/cristianoliveira/segbar/internal/previewbar"
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/cristianoliveira/segbar/internal/storage"
)

// Options configures a Session.
type Options struct {
	VideoID  string
	AutoSkip bool
	// Store persists pending submissions and votes. It may be nil.
	Store storage.Storage
	// OpenLink opens a URL. When nil, links are only recorded.
	OpenLink func(url string) error
}

// Session plays one video: it skips segments, opens notices and keeps the
// preview bar in sync. It implements ports.Collaborator.
type Session struct {
	opts     Options
	cfg      config.Context
	player   *Player
	bar      *previewbar.Engine
	segments []*segment.Segment
	pending  []*segment.Segment
	log      logging.Logger

	notice  *notice.Notice
	handled map[*segment.Segment]bool
	links   []string
	skips   int
}

var _ ports.Collaborator = (*Session)(nil)

// NewSession binds segments to a player and a preview bar.
// Pending submissions already in the store are loaded for the video.
func NewSession(segments []*segment.Segment, p *Player, bar *previewbar.Engine, cfg config.Context, opts Options) *Session {
	s := &Session{
		opts:     opts,
		cfg:      cfg,
		player:   p,
		bar:      bar,
		segments: segments,
		log:      logging.With("video", opts.VideoID),
		handled:  make(map[*segment.Segment]bool),
	}
	if opts.Store != nil {
		stored, err := opts.Store.ListPending(opts.VideoID)
		if err != nil {
			s.log.Warn("load pending submissions", "error", err)
		}
		for _, p := range stored {
			s.pending = append(s.pending, p.Segment)
		}
	}
	s.UpdatePreviewBar()
	return s
}

// Player returns the player state.
func (s *Session) Player() ports.PlayerState {
	return s.player.State()
}

// Clock returns the simulated player.
func (s *Session) Clock() *Player {
	return s.player
}

// Bar returns the preview bar engine.
func (s *Session) Bar() *previewbar.Engine {
	return s.bar
}

// Segments returns the server segments.
func (s *Session) Segments() []*segment.Segment {
	return s.segments
}

// Pending returns the locally created segments.
func (s *Session) Pending() []*segment.Segment {
	return s.pending
}

// Notice returns the open notice, or nil.
func (s *Session) Notice() *notice.Notice {
	return s.notice
}

// Links returns the links opened so far.
func (s *Session) Links() []string {
	return s.links
}

// Skips returns how many automatic skips happened.
func (s *Session) Skips() int {
	return s.skips
}

// Advance plays for d of wall time.
func (s *Session) Advance(d time.Duration) {
	s.player.Advance(d)
	s.sync()
}

// Seek jumps to t. Segments after t can trigger again.
func (s *Session) Seek(t float64) {
	s.player.Seek(t)
	for seg := range s.handled {
		if seg.Start() > t || seg.End() < t {
			delete(s.handled, seg)
		}
	}
	s.sync()
}

// Dispatch forwards ev to the open notice.
func (s *Session) Dispatch(ev notice.Event) {
	if s.notice == nil {
		return
	}
	s.notice.Dispatch(ev)
}

// Tick counts the open notice down by one second.
func (s *Session) Tick() {
	if s.notice == nil {
		return
	}
	s.notice.Tick()
}

// CloseNotice closes the open notice.
func (s *Session) CloseNotice() {
	if s.notice == nil {
		return
	}
	s.notice.Close()
}

// SetSegments replaces the server segments with a fresh copy.
// Segments already under the playhead are not skipped again.
func (s *Session) SetSegments(segments []*segment.Segment) {
	s.CloseNotice()
	s.segments = segments
	s.handled = make(map[*segment.Segment]bool)
	now := s.player.CurrentTime()
	for _, seg := range segments {
		if seg.Start() <= now && now < seg.End() {
			s.handled[seg] = true
		}
	}
	s.UpdatePreviewBar()
	s.log.Info("segments replaced", "count", len(segments))
}

// Close tears the session down.
func (s *Session) Close() {
	s.CloseNotice()
	s.bar.Remove()
}

func (s *Session) sync() {
	now := s.player.CurrentTime()
	s.bar.UpdateChapterText(s.segments, now)

	// Leaving a muted segment restores audio
	if s.player.Muted() && s.mutedSegmentAt(now) == nil {
		s.player.SetMuted(false)
	}

	if entered := s.enteredSegments(now); len(entered) > 0 {
		s.enter(entered)
	}
	s.Dispatch(notice.PlaybackProgress{})
}

func (s *Session) mutedSegmentAt(t float64) *segment.Segment {
	for _, seg := range s.segments {
		if seg.ActionType == segment.ActionMute && seg.Hidden == segment.Visible && seg.Start() <= t && t < seg.End() {
			return seg
		}
	}
	return nil
}

// enteredSegments returns the skippable segments playback just entered.
func (s *Session) enteredSegments(t float64) []*segment.Segment {
	var out []*segment.Segment
	for _, seg := range s.segments {
		if seg.Hidden != segment.Visible || s.handled[seg] {
			continue
		}
		if seg.ActionType != segment.ActionSkip && seg.ActionType != segment.ActionMute {
			continue
		}
		if seg.Start() <= t && t < seg.End() {
			out = append(out, seg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start() < out[j].Start() })
	return out
}

func (s *Session) enter(entered []*segment.Segment) {
	for _, seg := range entered {
		s.handled[seg] = true
	}
	if s.opts.AutoSkip {
		for _, seg := range entered {
			s.Reskip(seg)
		}
		s.skips++
		s.log.Info("auto skipped", "segments", len(entered))
		if s.cfg.DontShowNotice {
			return
		}
	}
	s.openNotice(entered)
}

func (s *Session) openNotice(segments []*segment.Segment) {
	s.CloseNotice()
	var n *notice.Notice
	n = notice.Open(segments, notice.Options{AutoSkip: s.opts.AutoSkip}, s.cfg, s, func() {
		if s.notice == n {
			s.notice = nil
		}
	})
	s.notice = n
}

// Vote implements ports.Collaborator.
func (s *Session) Vote(direction ports.VoteDirection, uuid string, category segment.Category) {
	s.log.Info("vote", "direction", direction.String(), "uuid", uuid, "category", string(category))
	if s.opts.Store == nil {
		return
	}
	if _, err := s.opts.Store.RecordVote(s.opts.VideoID, uuid, direction, category); err != nil {
		s.log.Warn("record vote", "error", err)
	}
}

// Unskip implements ports.Collaborator.
func (s *Session) Unskip(seg *segment.Segment, resumeTime *float64) {
	if seg.ActionType == segment.ActionMute {
		s.player.SetMuted(false)
		return
	}
	target := seg.Start()
	if resumeTime != nil {
		target = *resumeTime
	}
	s.player.Seek(target)
}

// Reskip implements ports.Collaborator.
func (s *Session) Reskip(seg *segment.Segment) {
	if seg.ActionType == segment.ActionMute {
		s.player.SetMuted(true)
		return
	}
	if s.player.CurrentTime() < seg.End() {
		s.player.Seek(seg.End())
	}
}

// UpdatePreviewBar implements ports.Collaborator.
func (s *Session) UpdatePreviewBar() {
	all := make([]*segment.Segment, 0, len(s.segments)+len(s.pending))
	all = append(all, s.segments...)
	all = append(all, s.pending...)
	s.bar.Set(segment.PreviewBarSegments(all), s.player.Duration())
	s.bar.UpdateChapterText(s.segments, s.player.CurrentTime())
}

// AppendPendingSubmission implements ports.Collaborator.
func (s *Session) AppendPendingSubmission(seg *segment.Segment) {
	s.pending = append(s.pending, seg)
	if s.opts.Store == nil {
		return
	}
	if _, err := s.opts.Store.AppendPending(s.opts.VideoID, seg); err != nil {
		s.log.Warn("append pending submission", "error", err)
	}
}

// OpenLink implements ports.Collaborator.
func (s *Session) OpenLink(url string) {
	s.links = append(s.links, url)
	if s.opts.OpenLink == nil {
		return
	}
	if err := s.opts.OpenLink(url); err != nil {
		s.log.Warn("open link", "url", url, "error", err)
	}
}

// DontShowNoticeAgain implements ports.Collaborator.
func (s *Session) DontShowNoticeAgain() {
	s.cfg.DontShowNotice = true
	config.Set("dont_show_notice", "true")
}
