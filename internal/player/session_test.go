package player

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/i18n"
	"github.com/cristianoliveira/segbar/internal/notice"
	"github.com/cristianoliveira/segbar/internal/previewbar"
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/cristianoliveira/segbar/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sponsor(uuid string, start, end float64) *segment.Segment {
	return &segment.Segment{
		Segment:    [2]float64{start, end},
		Category:   segment.CategorySponsor,
		ActionType: segment.ActionSkip,
		UUID:       uuid,
	}
}

func newTestSession(t *testing.T, segments []*segment.Segment, opts Options) *Session {
	t.Helper()
	cfg := config.DefaultContext()
	bar := previewbar.New(previewbar.Options{}, cfg, i18n.New("en"))
	return NewSession(segments, New(60), bar, cfg, opts)
}

func newTestStore(t *testing.T) storage.Storage {
	t.Helper()
	s, err := storage.Open(filepath.Join(t.TempDir(), "segbar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSessionAutoSkipOpensNotice(t *testing.T) {
	s := newTestSession(t, []*segment.Segment{sponsor("a", 10, 20)}, Options{VideoID: "vid", AutoSkip: true})
	require.Len(t, s.Bar().Bars(), 1)

	s.Advance(9 * time.Second)
	assert.Nil(t, s.Notice())

	s.Advance(2 * time.Second)

	assert.InDelta(t, 20, s.Player().CurrentTime, 1e-9)
	require.NotNil(t, s.Notice())
	assert.Equal(t, notice.Skipped, s.Notice().State().SkipButton.Mode)
	assert.Equal(t, 1, s.Skips())
}

func TestSessionUnskipDoesNotSkipAgain(t *testing.T) {
	s := newTestSession(t, []*segment.Segment{sponsor("a", 10, 20)}, Options{VideoID: "vid", AutoSkip: true})
	s.Advance(11 * time.Second)

	s.Dispatch(notice.RequestAction{Kind: notice.Unskip})
	assert.InDelta(t, 10, s.Player().CurrentTime, 1e-9)

	s.Advance(time.Second)
	assert.InDelta(t, 11, s.Player().CurrentTime, 1e-9)
	assert.Equal(t, 1, s.Skips())

	s.Dispatch(notice.RequestAction{Kind: notice.Unskip})
	assert.InDelta(t, 20, s.Player().CurrentTime, 1e-9)
}

func TestSessionManualSkip(t *testing.T) {
	s := newTestSession(t, []*segment.Segment{sponsor("a", 10, 20)}, Options{VideoID: "vid"})

	s.Advance(11 * time.Second)

	assert.InDelta(t, 11, s.Player().CurrentTime, 1e-9)
	require.NotNil(t, s.Notice())
	assert.Equal(t, notice.Unskipped, s.Notice().State().SkipButton.Mode)

	s.Dispatch(notice.RequestAction{Kind: notice.Unskip})
	assert.InDelta(t, 20, s.Player().CurrentTime, 1e-9)
}

func TestSessionMuteSegment(t *testing.T) {
	mute := &segment.Segment{
		Segment:    [2]float64{10, 20},
		Category:   segment.CategoryMusicOfftopic,
		ActionType: segment.ActionMute,
		UUID:       "m",
	}
	s := newTestSession(t, []*segment.Segment{mute}, Options{VideoID: "vid", AutoSkip: true})

	s.Advance(11 * time.Second)
	assert.True(t, s.Clock().Muted())
	assert.InDelta(t, 11, s.Player().CurrentTime, 1e-9)

	s.Advance(10 * time.Second)
	assert.False(t, s.Clock().Muted())
	assert.False(t, s.Notice().State().ShowSkipButton)
}

func TestSessionDownvoteHidesBarAndRecordsVote(t *testing.T) {
	store := newTestStore(t)
	segments := []*segment.Segment{sponsor("a", 10, 20), sponsor("b", 40, 45)}
	s := newTestSession(t, segments, Options{VideoID: "vid", AutoSkip: true, Store: store})
	require.Len(t, s.Bar().Bars(), 2)
	s.Advance(11 * time.Second)

	s.Dispatch(notice.RequestAction{Kind: notice.Downvote})

	assert.Equal(t, segment.Downvoted, segments[0].Hidden)
	require.Len(t, s.Bar().Bars(), 1)
	assert.Equal(t, [2]float64{40, 45}, s.Bar().Bars()[0].Segment.Segment)

	votes, err := store.ListVotes("vid")
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, "a", votes[0].SegmentUUID)

	s.Dispatch(notice.OpenMessageLink{})
	assert.Equal(t, []string{config.DefaultContext().WikiPages[segment.CategorySponsor]}, s.Links())
}

func TestSessionCopyDownvotePersistsPending(t *testing.T) {
	store := newTestStore(t)
	s := newTestSession(t, []*segment.Segment{sponsor("a", 10, 20)}, Options{VideoID: "vid", AutoSkip: true, Store: store})
	s.Advance(11 * time.Second)

	s.Dispatch(notice.RequestAction{Kind: notice.CopyDownvote})

	require.Len(t, s.Pending(), 1)
	bars := s.Bar().Bars()
	require.Len(t, bars, 1)
	assert.Equal(t, "preview-sponsor", bars[0].CategoryName)

	pending, err := store.ListPending("vid")
	require.NoError(t, err)
	require.Len(t, pending, 1)

	reopened := newTestSession(t, []*segment.Segment{sponsor("a", 10, 20)}, Options{VideoID: "vid", Store: store})
	assert.Len(t, reopened.Pending(), 1)
	assert.Len(t, reopened.Bar().Bars(), 2)
}

func TestSessionNoticeClosesAfterCountdown(t *testing.T) {
	s := newTestSession(t, []*segment.Segment{sponsor("a", 10, 20)}, Options{VideoID: "vid", AutoSkip: true})
	s.Advance(11 * time.Second)
	require.NotNil(t, s.Notice())

	for i := 0; i < config.DefaultContext().SkipNoticeDuration; i++ {
		s.Tick()
	}

	assert.Nil(t, s.Notice())
}

func TestSessionDontShowNoticeAgain(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	config.Load()

	s := newTestSession(t, []*segment.Segment{sponsor("a", 10, 20), sponsor("b", 30, 35)}, Options{VideoID: "vid", AutoSkip: true})
	s.Advance(11 * time.Second)
	s.Dispatch(notice.DontShowAgain{})
	assert.Nil(t, s.Notice())

	s.Advance(11 * time.Second)

	assert.InDelta(t, 35, s.Player().CurrentTime, 1e-9)
	assert.Equal(t, 2, s.Skips())
	assert.Nil(t, s.Notice())
}

func TestSessionSeekBackRearmsSegment(t *testing.T) {
	s := newTestSession(t, []*segment.Segment{sponsor("a", 10, 20)}, Options{VideoID: "vid", AutoSkip: true})
	s.Advance(11 * time.Second)

	s.Seek(5)
	s.Advance(6 * time.Second)

	assert.InDelta(t, 20, s.Player().CurrentTime, 1e-9)
	assert.Equal(t, 2, s.Skips())
}

func TestSessionCloseRemovesBar(t *testing.T) {
	s := newTestSession(t, []*segment.Segment{sponsor("a", 10, 20)}, Options{VideoID: "vid", AutoSkip: true})
	s.Advance(11 * time.Second)

	s.Close()
	s.Close()

	assert.Nil(t, s.Notice())
	assert.False(t, s.Bar().Attached())
}

func TestSessionSetSegments(t *testing.T) {
	s := newTestSession(t, []*segment.Segment{sponsor("a", 10, 20)}, Options{VideoID: "vid", AutoSkip: true})
	s.Advance(11 * time.Second)
	require.NotNil(t, s.Notice())

	s.Seek(35)
	s.SetSegments([]*segment.Segment{sponsor("b", 30, 40), sponsor("c", 45, 50)})

	assert.Nil(t, s.Notice())
	assert.Len(t, s.Bar().Bars(), 2)

	// Already inside b, so only c skips
	s.Advance(time.Second)
	assert.InDelta(t, 36, s.Player().CurrentTime, 1e-9)
	s.Advance(10 * time.Second)
	assert.InDelta(t, 50, s.Player().CurrentTime, 1e-9)
	assert.Equal(t, 2, s.Skips())
}
