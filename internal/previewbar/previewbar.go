// Package previewbar computes the segment overlay drawn on a player's scrub bar.
//
// The engine holds plain data: bar geometry, the hover tooltip, the merged
// chapter strip and the current chapter label. Front ends project that state;
// nothing here touches a screen.
package previewbar

import (
	"fmt"
	"math"
	"sort"

	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/i18n"
	"github.com/cristianoliveira/segbar/internal/segment"
)

// barInset is the gap, in px, subtracted from every bar and chapter section.
const barInset = 2

// unsubmittedPrefix marks the bar type of segments not yet submitted.
const unsubmittedPrefix = "preview-"

// Options describes the host anchors discovered before the engine was built.
type Options struct {
	OnMobile    bool
	OnInvidious bool
	// TooltipWrapper is set when the host seek bar has a hover tooltip.
	TooltipWrapper bool
	// NativeChapters is nil when the host has no chapter container.
	NativeChapters *ChapterTemplate
}

// Bar is one rendered segment on the scrub bar.
type Bar struct {
	Segment      segment.PreviewBarSegment
	CategoryName string
	// Left and Width are percentages of the duration.
	Left     float64
	Width    float64
	HasWidth bool
	Color    string
	Opacity  string
}

// LeftCSS returns the left offset as a CSS length.
func (b Bar) LeftCSS() string {
	return fmt.Sprintf("%g%%", b.Left)
}

// WidthCSS returns the width as a CSS length, or "" for point markers.
func (b Bar) WidthCSS() string {
	if !b.HasWidth {
		return ""
	}
	return fmt.Sprintf("calc(%g%% - %dpx)", b.Width, barInset)
}

// Engine is the preview bar state for one player.
type Engine struct {
	opts Options
	cfg  config.Context
	msgs i18n.Messages

	segments []segment.PreviewBarSegment
	duration float64
	bars     []Bar

	attached       bool
	hovered        bool
	pointerOverBar bool
	tooltip        Tooltip

	chapters     []Section
	chapterLabel ChapterLabel
}

// New creates an attached engine with no segments.
func New(opts Options, cfg config.Context, msgs i18n.Messages) *Engine {
	return &Engine{
		opts:     opts,
		cfg:      cfg,
		msgs:     msgs,
		attached: true,
	}
}

// Set replaces the rendered segments.
func (e *Engine) Set(segments []segment.PreviewBarSegment, duration float64) {
	e.Clear()
	if !e.attached {
		return
	}
	e.duration = duration
	if len(segments) == 0 {
		return
	}

	e.segments = append([]segment.PreviewBarSegment(nil), segments...)
	// Longer first so shorter segments paint on top
	sort.SliceStable(e.segments, func(i, j int) bool {
		return e.segments[i].Length() > e.segments[j].Length()
	})

	e.bars = make([]Bar, 0, len(e.segments))
	for _, seg := range e.segments {
		e.bars = append(e.bars, e.createBar(seg))
	}

	e.buildChapterStrip()
}

func (e *Engine) createBar(seg segment.PreviewBarSegment) Bar {
	length := seg.Length()
	name := string(seg.Category)
	if seg.Unsubmitted {
		name = unsubmittedPrefix + name
	}

	bar := Bar{
		Segment:      seg,
		CategoryName: name,
		Left:         e.Percentage(math.Min(e.duration-math.Max(0, length), seg.Segment[0])),
	}
	if length > 0 {
		bar.Width = e.Percentage(length)
		bar.HasWidth = true
	}
	if bt, ok := e.cfg.BarType(name); ok {
		bar.Color = bt.Color
		if !e.opts.OnMobile {
			bar.Opacity = bt.Opacity
		}
	}
	return bar
}

// Clear drops every bar and the chapter strip. Calling it twice is harmless.
func (e *Engine) Clear() {
	e.segments = nil
	e.bars = nil
	e.duration = 0
	e.chapters = nil
	e.tooltip = Tooltip{}
}

// Bars returns the rendered bars in paint order.
func (e *Engine) Bars() []Bar {
	return append([]Bar(nil), e.bars...)
}

// Duration returns the duration passed to the last Set.
func (e *Engine) Duration() float64 {
	return e.duration
}

// Percentage converts a time to a percentage of the duration, clamped to [0, 100].
func (e *Engine) Percentage(t float64) float64 {
	if e.duration <= 0 {
		return 0
	}
	return clamp(t/e.duration*100, 0, 100)
}

// DecimalFraction converts a time to a fraction of the duration, clamped to [0, 1].
func (e *Engine) DecimalFraction(t float64) float64 {
	if e.duration <= 0 {
		return 0
	}
	return clamp(t/e.duration, 0, 1)
}

// MinimumSize is the shortest span, in seconds, a segment occupies for hovering.
func (e *Engine) MinimumSize(showLarger bool) float64 {
	if showLarger {
		return e.duration * e.cfg.MinSizeRatioLarger
	}
	return e.duration * e.cfg.MinSizeRatio
}

// SetHovered records whether the pointer is over the bar container.
func (e *Engine) SetHovered(hovered bool) {
	if !e.attached || e.opts.OnMobile || e.opts.OnInvidious {
		return
	}
	e.hovered = hovered
}

// Hovered reports the container hover flag.
func (e *Engine) Hovered() bool {
	return e.hovered
}

// Remove detaches the engine. Later calls, including Remove itself, do nothing.
func (e *Engine) Remove() {
	if !e.attached {
		return
	}
	e.Clear()
	e.attached = false
	e.hovered = false
	e.pointerOverBar = false
	e.chapterLabel = ChapterLabel{}
}

// Attached reports whether the engine is still attached to the player.
func (e *Engine) Attached() bool {
	return e.attached
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
