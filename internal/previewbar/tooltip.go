package previewbar

import (
	"math"

	"github.com/cristianoliveira/segbar/internal/i18n"
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/cristianoliveira/segbar/internal/timefmt"
)

// TooltipClass is the class carried by the engine's own tooltip element.
const TooltipClass = "sponsorCategoryTooltip"

// Mutation is a change observed inside the host tooltip.
type Mutation struct {
	TargetClasses []string
}

func (m Mutation) hasClass(class string) bool {
	for _, c := range m.TargetClasses {
		if c == class {
			return true
		}
	}
	return false
}

// TooltipText is one text element of the host tooltip.
type TooltipText struct {
	Text string
	// NoTitle is set when the host shows the time without a chapter title.
	NoTitle bool
}

// Tooltip is the category tooltip shown while hovering the seek bar.
type Tooltip struct {
	Visible bool
	Text    string
	NoTitle bool
	// Chapter is the description of the hovered segment when it is a chapter.
	Chapter string
	Time    float64
}

// SetPointerOverSeekBar records whether the pointer is over the host seek bar.
func (e *Engine) SetPointerOverSeekBar(over bool) {
	e.pointerOverBar = over
	if !over {
		e.tooltip = Tooltip{}
	}
}

func (e *Engine) tooltipEnabled() bool {
	return e.attached && e.opts.TooltipWrapper && !e.opts.OnMobile && !e.opts.OnInvidious
}

// ObserveTooltip handles a batch of host tooltip mutations.
func (e *Engine) ObserveTooltip(mutations []Mutation, texts []TooltipText) {
	if !e.tooltipEnabled() || !e.pointerOverBar {
		return
	}
	// Our own text update
	if len(mutations) == 1 && mutations[0].hasClass(TooltipClass) {
		return
	}

	noTitle := false
	hovered, found := 0.0, false
	for _, text := range texts {
		if text.NoTitle {
			noTitle = true
		}
		if seconds, ok := timefmt.ParseSeconds(text.Text); ok {
			hovered, found = seconds, true
			break
		}
	}
	if !found {
		e.tooltip = Tooltip{}
		return
	}

	seg, ok := e.resolve(e.segments, hovered)
	if !ok {
		e.tooltip = Tooltip{}
		return
	}
	tooltip := Tooltip{
		Visible: true,
		Text:    e.categoryTooltipText(seg),
		NoTitle: noTitle,
		Time:    hovered,
	}
	if seg.ActionType == segment.ActionChapter {
		tooltip.Chapter = seg.Description
	}
	e.tooltip = tooltip
}

// Tooltip returns the current tooltip.
func (e *Engine) Tooltip() Tooltip {
	return e.tooltip
}

// ResolveAt returns the segment shown for a hover time: the shortest segment
// whose minimum-size span contains t.
func (e *Engine) ResolveAt(t float64) (segment.PreviewBarSegment, bool) {
	return e.resolve(e.segments, t)
}

func (e *Engine) resolve(segments []segment.PreviewBarSegment, t float64) (segment.PreviewBarSegment, bool) {
	var best segment.PreviewBarSegment
	found := false
	for _, seg := range segments {
		length := seg.Length()
		minSize := e.MinimumSize(seg.ShowLarger)

		start := seg.Segment[0]
		if length == 0 {
			start = math.Floor(start)
		}
		end := seg.Segment[1]
		if length <= minSize {
			end = math.Ceil(seg.Segment[0] + minSize)
		}

		if start <= t && end >= t && (!found || length < best.Length()) {
			best, found = seg, true
		}
	}
	return best, found
}

func (e *Engine) categoryTooltipText(seg segment.PreviewBarSegment) string {
	text := i18n.ShortCategoryName(e.msgs, seg.Category)
	if seg.Unsubmitted {
		text = i18n.Text(e.msgs, i18n.KeyUnsubmitted) + " " + text
	}
	return text
}
