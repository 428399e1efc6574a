package previewbar

import (
	"testing"

	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hoverAt(e *Engine, text string) {
	e.ObserveTooltip([]Mutation{{TargetClasses: []string{"ytp-tooltip-text"}}}, []TooltipText{{Text: text}})
}

func TestResolveAtPrefersShortestSegment(t *testing.T) {
	e := newTestEngine(t, Options{})
	e.Set([]segment.PreviewBarSegment{
		bar(0, 100, segment.CategorySponsor),
		bar(40, 60, segment.CategoryIntro),
	}, 100)

	seg, ok := e.ResolveAt(50)

	require.True(t, ok)
	assert.Equal(t, [2]float64{40, 60}, seg.Segment)

	seg, ok = e.ResolveAt(20)
	require.True(t, ok)
	assert.Equal(t, segment.CategorySponsor, seg.Category)
}

func TestResolveAtUsesMinimumSizeFloor(t *testing.T) {
	e := newTestEngine(t, Options{})
	poi := segment.PreviewBarSegment{
		Segment:    [2]float64{10.4, 10.4},
		Category:   segment.CategoryPOIHighlight,
		ActionType: segment.ActionPOI,
		ShowLarger: true,
	}
	e.Set([]segment.PreviewBarSegment{bar(100, 101, segment.CategorySponsor), poi}, 1000)

	seg, ok := e.ResolveAt(102.5)
	require.True(t, ok)
	assert.Equal(t, segment.CategorySponsor, seg.Category)

	seg, ok = e.ResolveAt(10)
	require.True(t, ok)
	assert.Equal(t, segment.CategoryPOIHighlight, seg.Category)

	seg, ok = e.ResolveAt(16.9)
	require.True(t, ok)
	assert.Equal(t, segment.CategoryPOIHighlight, seg.Category)

	_, ok = e.ResolveAt(17.5)
	assert.False(t, ok)
}

func TestObserveTooltipShowsCategory(t *testing.T) {
	e := newTestEngine(t, Options{TooltipWrapper: true})
	unsubmitted := bar(70, 80, segment.CategoryFiller)
	unsubmitted.Unsubmitted = true
	e.Set([]segment.PreviewBarSegment{bar(10, 20, segment.CategorySponsor), unsubmitted}, 100)
	e.SetPointerOverSeekBar(true)

	e.ObserveTooltip(nil, []TooltipText{{Text: "Chapter title", NoTitle: true}, {Text: "0:15"}})

	tip := e.Tooltip()
	assert.True(t, tip.Visible)
	assert.Equal(t, "Sponsor", tip.Text)
	assert.True(t, tip.NoTitle)
	assert.InDelta(t, 15, tip.Time, 1e-9)

	hoverAt(e, "1:15")
	assert.Equal(t, "Unsubmitted Filler", e.Tooltip().Text)

	hoverAt(e, "0:45")
	assert.False(t, e.Tooltip().Visible)
}

func TestObserveTooltipPicksShortestAcrossChapters(t *testing.T) {
	e := newTestEngine(t, Options{TooltipWrapper: true})
	chapter := segment.PreviewBarSegment{
		Segment:     [2]float64{40, 60},
		Category:    segment.CategoryChapter,
		ActionType:  segment.ActionChapter,
		Description: "Intro chat",
	}
	e.Set([]segment.PreviewBarSegment{bar(0, 100, segment.CategorySponsor), chapter}, 100)
	e.SetPointerOverSeekBar(true)

	hoverAt(e, "0:50")

	winner, ok := e.ResolveAt(50)
	require.True(t, ok)
	tip := e.Tooltip()
	assert.True(t, tip.Visible)
	assert.Equal(t, winner.Category, segment.CategoryChapter)
	assert.Equal(t, "Chapter", tip.Text)
	assert.Equal(t, "Intro chat", tip.Chapter)

	hoverAt(e, "0:20")

	tip = e.Tooltip()
	assert.Equal(t, "Sponsor", tip.Text)
	assert.Empty(t, tip.Chapter)
}

func TestObserveTooltipChapterOnlyHasText(t *testing.T) {
	e := newTestEngine(t, Options{TooltipWrapper: true})
	chapter := segment.PreviewBarSegment{
		Segment:     [2]float64{0, 50},
		Category:    segment.CategoryChapter,
		ActionType:  segment.ActionChapter,
		Description: "Opening",
	}
	e.Set([]segment.PreviewBarSegment{chapter}, 100)
	e.SetPointerOverSeekBar(true)

	hoverAt(e, "0:30")

	tip := e.Tooltip()
	assert.True(t, tip.Visible)
	assert.Equal(t, "Chapter", tip.Text)
	assert.Equal(t, "Opening", tip.Chapter)
}

func TestObserveTooltipIgnoresOwnMutation(t *testing.T) {
	e := newTestEngine(t, Options{TooltipWrapper: true})
	e.Set([]segment.PreviewBarSegment{bar(10, 20, segment.CategorySponsor)}, 100)
	e.SetPointerOverSeekBar(true)
	hoverAt(e, "0:15")
	require.True(t, e.Tooltip().Visible)

	e.ObserveTooltip([]Mutation{{TargetClasses: []string{"ytp-tooltip-text", TooltipClass}}}, []TooltipText{{Text: "0:50"}})

	assert.True(t, e.Tooltip().Visible)
	assert.InDelta(t, 15, e.Tooltip().Time, 1e-9)

	// Two mutations are not ours alone
	e.ObserveTooltip([]Mutation{{TargetClasses: []string{TooltipClass}}, {}}, []TooltipText{{Text: "0:50"}})
	assert.False(t, e.Tooltip().Visible)
}

func TestObserveTooltipUnparseableHides(t *testing.T) {
	e := newTestEngine(t, Options{TooltipWrapper: true})
	e.Set([]segment.PreviewBarSegment{bar(10, 20, segment.CategorySponsor)}, 100)
	e.SetPointerOverSeekBar(true)
	hoverAt(e, "0:15")

	hoverAt(e, "not a time")

	assert.False(t, e.Tooltip().Visible)
}

func TestObserveTooltipRequiresPointerAndWrapper(t *testing.T) {
	e := newTestEngine(t, Options{TooltipWrapper: true})
	e.Set([]segment.PreviewBarSegment{bar(10, 20, segment.CategorySponsor)}, 100)
	hoverAt(e, "0:15")
	assert.False(t, e.Tooltip().Visible)

	e = newTestEngine(t, Options{})
	e.Set([]segment.PreviewBarSegment{bar(10, 20, segment.CategorySponsor)}, 100)
	e.SetPointerOverSeekBar(true)
	hoverAt(e, "0:15")
	assert.False(t, e.Tooltip().Visible)
}

func TestLeavingSeekBarHidesTooltip(t *testing.T) {
	e := newTestEngine(t, Options{TooltipWrapper: true})
	e.Set([]segment.PreviewBarSegment{bar(10, 20, segment.CategorySponsor)}, 100)
	e.SetPointerOverSeekBar(true)
	hoverAt(e, "0:15")

	e.SetPointerOverSeekBar(false)

	assert.False(t, e.Tooltip().Visible)
}
