package storage

import (
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfigUsesStateDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_STATE_HOME", tmp)
	config.Load()

	s, err := NewFromConfig()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.Equal(t, filepath.Join(tmp, "segbar", dbFileName), DBPath())
	assert.FileExists(t, DBPath())

	seg := &segment.Segment{Segment: [2]float64{1, 2}, Category: segment.CategorySponsor, ActionType: segment.ActionSkip}
	_, err = s.AppendPending("vid", seg)
	require.NoError(t, err)
	pending, err := s.ListPending("vid")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}
