package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/segbar/internal/ports"
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "segbar.db")
	s, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func localSegment(start, end float64, category segment.Category) *segment.Segment {
	return &segment.Segment{
		Segment:    [2]float64{start, end},
		Category:   category,
		ActionType: segment.ActionSkip,
		Source:     segment.SourceLocal,
	}
}

func TestNewSQLiteStorageRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.Error(t, err)
}

func TestAppendAndListPending(t *testing.T) {
	s := newTestStorage(t)

	id1, err := s.AppendPending("vid", localSegment(30, 40, segment.CategoryIntro))
	require.NoError(t, err)
	id2, err := s.AppendPending("vid", localSegment(5, 10, segment.CategorySponsor))
	require.NoError(t, err)
	_, err = s.AppendPending("other", localSegment(1, 2, segment.CategoryFiller))
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)

	pending, err := s.ListPending("vid")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, id2, pending[0].ID)
	require.Equal(t, [2]float64{5, 10}, pending[0].Segment.Segment)
	require.Equal(t, segment.CategorySponsor, pending[0].Segment.Category)
	require.Equal(t, segment.SourceLocal, pending[0].Segment.Source)
	require.Empty(t, pending[0].Segment.UUID)
	require.Equal(t, id1, pending[1].ID)
}

func TestAppendPendingStripsUUID(t *testing.T) {
	s := newTestStorage(t)
	seg := &segment.Segment{Segment: [2]float64{1, 2}, Category: segment.CategorySponsor, UUID: "server-uuid"}

	_, err := s.AppendPending("vid", seg)
	require.NoError(t, err)

	pending, err := s.ListPending("vid")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Empty(t, pending[0].Segment.UUID)
	require.Equal(t, "server-uuid", seg.UUID)
}

func TestAppendPendingValidation(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.AppendPending("", localSegment(1, 2, segment.CategorySponsor))
	require.True(t, errors.Is(err, ErrInvalidVideoID))

	_, err = s.AppendPending("vid", localSegment(5, 2, segment.CategorySponsor))
	require.True(t, errors.Is(err, ErrInvalidSegment))

	_, err = s.AppendPending("vid", nil)
	require.True(t, errors.Is(err, ErrInvalidSegment))
}

func TestRemoveAndClearPending(t *testing.T) {
	s := newTestStorage(t)
	id, err := s.AppendPending("vid", localSegment(1, 2, segment.CategorySponsor))
	require.NoError(t, err)
	_, err = s.AppendPending("vid", localSegment(3, 4, segment.CategorySponsor))
	require.NoError(t, err)

	require.NoError(t, s.RemovePending(id))
	err = s.RemovePending(id)
	require.True(t, errors.Is(err, ErrSegmentNotFound))

	n, err := s.ClearPending("vid")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	pending, err := s.ListPending("vid")
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestRecordAndListVotes(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.RecordVote("vid", "uuid-1", ports.VoteDown, "")
	require.NoError(t, err)
	_, err = s.RecordVote("vid", "uuid-2", ports.VoteCategory, segment.CategoryIntro)
	require.NoError(t, err)

	votes, err := s.ListVotes("vid")
	require.NoError(t, err)
	require.Len(t, votes, 2)
	require.Equal(t, "uuid-1", votes[0].SegmentUUID)
	require.Equal(t, "down", votes[0].Direction)
	require.Equal(t, "category", votes[1].Direction)
	require.Equal(t, segment.CategoryIntro, votes[1].Category)

	_, err = s.RecordVote("vid", "", ports.VoteUp, "")
	require.True(t, errors.Is(err, ErrSegmentNotFound))
}

func TestPendingSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "segbar.db")
	s, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	_, err = s.AppendPending("vid", localSegment(1, 2, segment.CategorySponsor))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer s.Close()

	pending, err := s.ListPending("vid")
	require.NoError(t, err)
	require.Len(t, pending, 1)
}
