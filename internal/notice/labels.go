package notice

import (
	"fmt"

	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/i18n"
	"github.com/cristianoliveira/segbar/internal/segment"
)

func isMute(seg *segment.Segment) bool {
	return seg.ActionType == segment.ActionMute
}

func skipLabel(seg *segment.Segment) string {
	if isMute(seg) {
		return i18n.KeyMute
	}
	return i18n.KeySkip
}

func unskipLabel(seg *segment.Segment) string {
	if isMute(seg) {
		return i18n.KeyUnmute
	}
	return i18n.KeyUnskip
}

func reskipLabel(seg *segment.Segment) string {
	if isMute(seg) {
		return i18n.KeyMute
	}
	return i18n.KeyReskip
}

// SkippingTextKey returns the title key of a notice over segments.
func SkippingTextKey(segments []*segment.Segment, autoSkip bool) string {
	if !autoSkip {
		return i18n.KeySkipPrompt
	}
	for _, seg := range segments {
		if !isMute(seg) {
			return i18n.KeySkipped
		}
	}
	return i18n.KeyMuted
}

// Title renders the notice title.
func Title(s State, segments []*segment.Segment, msgs i18n.Messages) string {
	title := i18n.Text(msgs, s.Title)
	if s.Title == i18n.KeySkipPrompt && len(segments) > 0 {
		return i18n.CategoryName(msgs, segments[0].Category) + " - " + title
	}
	return title
}

// SkipButtonText renders the skip control label, with the keybind hint when enabled.
func SkipButtonText(s State, cfg config.Context, msgs i18n.Messages) string {
	text := i18n.Text(msgs, s.SkipButton.Label)
	if cfg.ShowKeybindHint && cfg.SkipKeybind != "" {
		text += " (" + cfg.SkipKeybind + ")"
	}
	return text
}

// CandidateLabels returns one chooser label per candidate, e.g. "1. Sponsor".
func CandidateLabels(segments []*segment.Segment, msgs i18n.Messages) []string {
	labels := make([]string, len(segments))
	for i, seg := range segments {
		labels[i] = fmt.Sprintf("%d. %s", i+1, i18n.CategoryName(msgs, seg.Category))
	}
	return labels
}

// CategoryOptions returns the categories offered by the category chooser.
func CategoryOptions() []segment.Category {
	return segment.SkippableCategories()
}

// MessageTexts renders the notice messages.
func MessageTexts(s State, msgs i18n.Messages) []string {
	out := make([]string, len(s.Messages))
	for i, key := range s.Messages {
		out[i] = i18n.Text(msgs, key)
	}
	return out
}
