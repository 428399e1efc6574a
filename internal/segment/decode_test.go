package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	input := `[
		{"segment": [10, 20.5], "category": "sponsor", "actionType": "skip", "UUID": "abc"},
		{"segment": [30, 40], "category": "music_offtopic", "actionType": "mute", "UUID": "def"},
		{"segment": [0, 60], "category": "chapter", "actionType": "chapter", "UUID": "ghi", "description": "Intro"},
		{"segment": [50, 55], "category": "filler"}
	]`

	segs, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, segs, 4)

	assert.Equal(t, [2]float64{10, 20.5}, segs[0].Segment)
	assert.Equal(t, CategorySponsor, segs[0].Category)
	assert.Equal(t, SourceServer, segs[0].Source)
	assert.Equal(t, ActionMute, segs[1].ActionType)
	assert.Equal(t, "Intro", segs[2].Description)
	assert.Equal(t, ActionSkip, segs[3].ActionType)
	assert.Equal(t, SourceLocal, segs[3].Source)
	assert.False(t, segs[3].IsSubmitted())
}

func TestDecodeRejectsInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"segment": [5, 1], "category": "sponsor", "UUID": "x"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "segment 0")

	_, err = Decode(strings.NewReader(`[{"segment": [1, 5], "category": "ads", "UUID": "x"}]`))
	require.Error(t, err)

	_, err = Decode(strings.NewReader(`{`))
	require.Error(t, err)
}

func TestDecodeFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"negative start", `[{"segment": [-1, 5], "category": "sponsor"}]`, "segment[0] must be greater than or equal to 0"},
		{"missing category", `[{"segment": [1, 5]}]`, "category is required"},
		{"unknown category", `[{"segment": [1, 5], "category": "ads"}]`, `category has unknown category "ads"`},
		{"unknown action", `[{"segment": [1, 5], "category": "sponsor", "actionType": "jump"}]`, `actionType has unknown action type "jump"`},
		{"long description", `[{"segment": [1, 5], "category": "chapter", "actionType": "chapter", "description": "` + strings.Repeat("a", 513) + `"}]`, "description must not exceed 512 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "segment 0: ")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
