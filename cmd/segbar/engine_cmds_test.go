package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sponsorJSON = `[{"segment": [10, 20], "category": "sponsor", "actionType": "skip", "UUID": "a"}]`

func TestBarCommand(t *testing.T) {
	setupEnv(t)
	path := writeSegments(t, sponsorJSON)

	out, err := execute(t, NewBarCmd(), "--segments", path, "--duration", "100", "--width", "10")

	require.NoError(t, err)
	assert.Contains(t, out, "Sponsor")
	assert.Contains(t, out, "left=10%")
	assert.Contains(t, out, "width=calc(10% - 2px)")
	assert.Contains(t, out, "color=#00d400")
	assert.Contains(t, out, "opacity=0.7")
}

func TestBarCommandMobileOmitsOpacity(t *testing.T) {
	setupEnv(t)
	path := writeSegments(t, sponsorJSON)

	out, err := execute(t, NewBarCmd(), "--segments", path, "--duration", "100", "--mobile")

	require.NoError(t, err)
	assert.NotContains(t, out, "opacity=")
}

func TestBarCommandReadsStdin(t *testing.T) {
	setupEnv(t)
	c := NewBarCmd()
	c.SetIn(strings.NewReader(sponsorJSON))

	out, err := execute(t, c, "--duration", "100")

	require.NoError(t, err)
	assert.Contains(t, out, "left=10%")
}

func TestBarCommandRequiresDuration(t *testing.T) {
	setupEnv(t)
	path := writeSegments(t, sponsorJSON)

	_, err := execute(t, NewBarCmd(), "--segments", path)

	assert.ErrorIs(t, err, errNoDuration)
}

func TestBarCommandMissingFile(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, NewBarCmd(), "--segments", "/nonexistent/segments.json", "--duration", "10")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open segments")
}

func TestChaptersCommand(t *testing.T) {
	setupEnv(t)
	path := writeSegments(t, `[
		{"segment": [0, 5], "category": "sponsor", "UUID": "a"},
		{"segment": [4, 10], "category": "intro", "UUID": "b"},
		{"segment": [20, 25], "category": "outro", "UUID": "c"}
	]`)

	out, err := execute(t, NewChaptersCmd(), "--segments", path, "--duration", "30")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "0:00 - 0:10")
	assert.Contains(t, lines[0], "segment")
	assert.Contains(t, lines[1], "0:10 - 0:20")
	assert.Contains(t, lines[1], "blank")
	assert.Contains(t, lines[2], "0:20 - 0:25")
	assert.Contains(t, lines[3], "0:25 - 0:30")
}

func TestChaptersCommandOnlyHighlights(t *testing.T) {
	setupEnv(t)
	path := writeSegments(t, `[{"segment": [5, 5], "category": "poi_highlight", "actionType": "poi", "UUID": "a"}]`)

	out, err := execute(t, NewChaptersCmd(), "--segments", path, "--duration", "30")

	require.NoError(t, err)
	assert.Equal(t, "no chapters\n", out)
}

func TestTooltipCommandPicksShortest(t *testing.T) {
	setupEnv(t)
	path := writeSegments(t, `[
		{"segment": [0, 100], "category": "sponsor", "UUID": "a"},
		{"segment": [40, 60], "category": "selfpromo", "UUID": "b"},
		{"segment": [0, 100], "category": "chapter", "actionType": "chapter", "UUID": "c", "description": "Main"}
	]`)

	out, err := execute(t, NewTooltipCmd(), "--segments", path, "--duration", "100", "--at", "0:50")

	require.NoError(t, err)
	assert.Contains(t, out, "category: Unpaid/Self Promotion")
	assert.NotContains(t, out, "chapter:")
}

func TestTooltipCommandShortChapterWins(t *testing.T) {
	setupEnv(t)
	path := writeSegments(t, `[
		{"segment": [0, 100], "category": "sponsor", "UUID": "a"},
		{"segment": [40, 60], "category": "chapter", "actionType": "chapter", "UUID": "c", "description": "Intro chat"}
	]`)

	out, err := execute(t, NewTooltipCmd(), "--segments", path, "--duration", "100", "--at", "0:50")

	require.NoError(t, err)
	assert.Contains(t, out, "category: Chapter\nchapter: Intro chat\n")
}

func TestTooltipCommandNothingHovered(t *testing.T) {
	console := setupEnv(t)
	path := writeSegments(t, sponsorJSON)

	out, err := execute(t, NewTooltipCmd(), "--segments", path, "--duration", "100", "--at", "0:50")

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, console.String(), "no segment at 0:50")
}

func TestTooltipCommandInvalidTime(t *testing.T) {
	setupEnv(t)
	path := writeSegments(t, sponsorJSON)

	_, err := execute(t, NewTooltipCmd(), "--segments", path, "--duration", "100", "--at", "soon")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --at time")
}
