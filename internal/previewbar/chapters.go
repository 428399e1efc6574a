package previewbar

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/cristianoliveira/segbar/internal/segment"
)

// ChapterTemplate is the structure of the host's native chapter strip.
type ChapterTemplate struct {
	// SectionClasses are copied onto every synthesized section.
	SectionClasses []string
	// ProgressClasses name the progress layers drawn inside a section,
	// e.g. play progress, load progress and hover progress.
	ProgressClasses []string
}

// Section is one synthesized chapter section.
type Section struct {
	Start, End float64
	// Blank sections fill the gaps between merged segments.
	Blank bool
	// Decimal is the section length as a fraction of the duration.
	Decimal float64
	Classes []string
	// Scales maps a progress layer class to its horizontal scale in [0, 1].
	Scales map[string]float64
}

// Length returns the section length in seconds.
func (s Section) Length() float64 { return s.End - s.Start }

// WidthCSS returns the section width as a CSS length.
func (s Section) WidthCSS() string {
	return fmt.Sprintf("calc(%g%% - %dpx)", s.Decimal*100, barInset)
}

// Merge builds the chapter sections for segments over duration.
// Point-of-interest segments are dropped, overlapping or touching segments
// merge into one section, and blank sections fill every gap.
func Merge(segments []segment.PreviewBarSegment, duration float64) []Section {
	intervals := make([][2]float64, 0, len(segments))
	for _, seg := range segments {
		if segment.ActionTypeOf(seg.Category) == segment.POI {
			continue
		}
		intervals = append(intervals, seg.Segment)
	}
	if len(intervals) == 0 {
		return nil
	}
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i][0] < intervals[j][0]
	})

	merged := [][2]float64{intervals[0]}
	for _, next := range intervals[1:] {
		cur := &merged[len(merged)-1]
		if next[0] <= cur[1] {
			if next[1] > cur[1] {
				cur[1] = next[1]
			}
			continue
		}
		merged = append(merged, next)
	}

	section := func(start, end float64, blank bool) Section {
		s := Section{Start: start, End: end, Blank: blank}
		if duration > 0 {
			s.Decimal = clamp((end-start)/duration, 0, 1)
		}
		return s
	}

	sections := make([]Section, 0, 2*len(merged)+1)
	prevEnd := 0.0
	for _, m := range merged {
		if m[0] > prevEnd {
			sections = append(sections, section(prevEnd, m[0], true))
		}
		sections = append(sections, section(m[0], m[1], false))
		prevEnd = m[1]
	}
	if prevEnd < duration {
		sections = append(sections, section(prevEnd, duration, true))
	}
	return sections
}

func (e *Engine) buildChapterStrip() {
	if e.opts.NativeChapters == nil || len(e.segments) == 0 {
		return
	}
	sections := Merge(e.segments, e.duration)
	for i := range sections {
		sections[i].Classes = append([]string(nil), e.opts.NativeChapters.SectionClasses...)
		sections[i].Scales = make(map[string]float64, len(e.opts.NativeChapters.ProgressClasses))
		for _, class := range e.opts.NativeChapters.ProgressClasses {
			sections[i].Scales[class] = 0
		}
	}
	e.chapters = sections
}

// Sections returns the synthesized chapter strip.
func (e *Engine) Sections() []Section {
	out := make([]Section, len(e.chapters))
	for i, s := range e.chapters {
		out[i] = s
		out[i].Scales = make(map[string]float64, len(s.Scales))
		for k, v := range s.Scales {
			out[i].Scales[k] = v
		}
	}
	return out
}

// NativeBarHidden reports whether the host's own chapter strip is replaced.
func (e *Engine) NativeBarHidden() bool {
	return e.attached && len(e.chapters) > 0
}

// ProgressMutation is a style change on one native progress layer.
type ProgressMutation struct {
	// InProgressList is set when the element's parent is the progress list.
	InProgressList bool
	Classes        []string
	// Transform is the element's CSS transform, e.g. "scaleX(0.25)".
	Transform string
}

var scaleX = regexp.MustCompile(`scaleX\(\s*([0-9.eE+-]+)\s*\)`)

// parseScaleX extracts the scaleX factor of a CSS transform.
func parseScaleX(transform string) (float64, bool) {
	m := scaleX.FindStringSubmatch(transform)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ObserveProgress rescales native progress updates into the chapter sections.
func (e *Engine) ObserveProgress(mutations []ProgressMutation) {
	if !e.attached || len(e.chapters) == 0 {
		return
	}

	changes := make(map[string]float64)
	for _, m := range mutations {
		if !m.InProgressList || len(m.Classes) == 0 {
			continue
		}
		scale, ok := parseScaleX(m.Transform)
		if !ok {
			continue
		}
		changes[m.Classes[0]] = clamp(scale, 0, 1)
	}
	if len(changes) == 0 {
		return
	}

	for class, scale := range changes {
		cursor := 0.0
		for i := range e.chapters {
			s := &e.chapters[i]
			s.Scales[class] = sectionScale(scale, cursor, s.Decimal)
			cursor += s.Decimal
		}
	}
}

func sectionScale(scale, cursor, width float64) float64 {
	if width <= 0 {
		if scale > cursor {
			return 1
		}
		return 0
	}
	return clamp((scale-cursor)/width, 0, 1)
}
