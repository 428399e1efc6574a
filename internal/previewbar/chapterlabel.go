package previewbar

import (
	"sort"

	"github.com/cristianoliveira/segbar/internal/i18n"
	"github.com/cristianoliveira/segbar/internal/segment"
)

// ChapterLabel is the chapter title shown next to the player time.
type ChapterLabel struct {
	Visible bool
	Text    string
}

// UpdateChapterText picks the segment labelling currentTime.
// Chapter segments win over any other kind, then the earliest start.
func (e *Engine) UpdateChapterText(segments []*segment.Segment, currentTime float64) {
	if !e.attached || e.opts.NativeChapters == nil {
		return
	}

	var active []*segment.Segment
	for _, seg := range segments {
		if seg != nil && seg.Contains(currentTime) {
			active = append(active, seg)
		}
	}
	if len(active) == 0 {
		e.chapterLabel = ChapterLabel{}
		return
	}

	sort.SliceStable(active, func(i, j int) bool {
		ci := active[i].ActionType == segment.ActionChapter
		cj := active[j].ActionType == segment.ActionChapter
		if ci != cj {
			return ci
		}
		return active[i].Start() < active[j].Start()
	})

	chosen := active[0]
	text := chosen.Description
	if text == "" {
		text = i18n.ShortCategoryName(e.msgs, chosen.Category)
	}
	e.chapterLabel = ChapterLabel{Visible: true, Text: text}
}

// ChapterLabel returns the current chapter label.
func (e *Engine) ChapterLabel() ChapterLabel {
	return e.chapterLabel
}
