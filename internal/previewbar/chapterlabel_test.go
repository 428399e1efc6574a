package previewbar

import (
	"testing"

	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/stretchr/testify/assert"
)

func TestUpdateChapterText(t *testing.T) {
	e := newTestEngine(t, withChapters())
	segments := []*segment.Segment{
		{Segment: [2]float64{0, 20}, Category: segment.CategorySponsor, ActionType: segment.ActionSkip, UUID: "a"},
		{Segment: [2]float64{5, 15}, Category: segment.CategoryChapter, ActionType: segment.ActionChapter, UUID: "b", Description: "Part 1"},
		{Segment: [2]float64{16, 30}, Category: segment.CategoryFiller, ActionType: segment.ActionSkip, UUID: "c"},
	}

	e.UpdateChapterText(segments, 10)
	assert.Equal(t, ChapterLabel{Visible: true, Text: "Part 1"}, e.ChapterLabel())

	e.UpdateChapterText(segments, 18)
	assert.Equal(t, ChapterLabel{Visible: true, Text: "Sponsor"}, e.ChapterLabel())

	e.UpdateChapterText(segments, 25)
	assert.Equal(t, ChapterLabel{Visible: true, Text: "Filler"}, e.ChapterLabel())

	e.UpdateChapterText(segments, 45)
	assert.False(t, e.ChapterLabel().Visible)
}

func TestUpdateChapterTextWithoutNativeChapters(t *testing.T) {
	e := newTestEngine(t, Options{})
	segments := []*segment.Segment{
		{Segment: [2]float64{0, 20}, Category: segment.CategorySponsor, ActionType: segment.ActionSkip, UUID: "a"},
	}

	e.UpdateChapterText(segments, 10)

	assert.False(t, e.ChapterLabel().Visible)
}
