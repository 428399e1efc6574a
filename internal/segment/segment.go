// Package segment provides the segment model shared by the preview bar and the skip notice.
// It contains the closed category and action type vocabularies and the derived views
// consumed by the overlay engine.
package segment

import (
	"fmt"
)

// Category is the content classification of a segment.
type Category string

const (
	CategorySponsor         Category = "sponsor"
	CategorySelfPromo       Category = "selfpromo"
	CategoryExclusiveAccess Category = "exclusive_access"
	CategoryInteraction     Category = "interaction"
	CategoryIntro           Category = "intro"
	CategoryOutro           Category = "outro"
	CategoryPreview         Category = "preview"
	CategoryMusicOfftopic   Category = "music_offtopic"
	CategoryFiller          Category = "filler"
	CategoryPOIHighlight    Category = "poi_highlight"
	CategoryChapter         Category = "chapter"
)

// Categories lists the category vocabulary in display order.
var Categories = []Category{
	CategorySponsor,
	CategorySelfPromo,
	CategoryExclusiveAccess,
	CategoryInteraction,
	CategoryIntro,
	CategoryOutro,
	CategoryPreview,
	CategoryMusicOfftopic,
	CategoryFiller,
	CategoryPOIHighlight,
	CategoryChapter,
}

// IsValid checks if the category belongs to the vocabulary.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// ActionType is the behavior bound to a segment.
type ActionType string

const (
	ActionSkip    ActionType = "skip"
	ActionMute    ActionType = "mute"
	ActionFull    ActionType = "full"
	ActionPOI     ActionType = "poi"
	ActionChapter ActionType = "chapter"
)

// IsValid checks if the action type belongs to the vocabulary.
func (a ActionType) IsValid() bool {
	switch a {
	case ActionSkip, ActionMute, ActionFull, ActionPOI, ActionChapter:
		return true
	default:
		return false
	}
}

// CategoryActionType groups categories by how the player treats them.
type CategoryActionType int

const (
	// Skippable categories cover a range of the media.
	Skippable CategoryActionType = iota
	// POI categories mark a single point of interest.
	POI
)

// ActionTypeOf returns the category action type for a category.
func ActionTypeOf(c Category) CategoryActionType {
	if c == CategoryPOIHighlight {
		return POI
	}
	return Skippable
}

// SkippableCategories returns the categories offered by the category chooser.
func SkippableCategories() []Category {
	out := make([]Category, 0, len(Categories))
	for _, c := range Categories {
		if ActionTypeOf(c) == Skippable {
			out = append(out, c)
		}
	}
	return out
}

// HiddenState records whether a segment is currently shown to the viewer.
type HiddenState int

const (
	Visible HiddenState = iota
	Downvoted
	MinimumDuration
	Hidden
)

// String returns the string representation of the hidden state.
func (h HiddenState) String() string {
	switch h {
	case Visible:
		return "visible"
	case Downvoted:
		return "downvoted"
	case MinimumDuration:
		return "minimum_duration"
	case Hidden:
		return "hidden"
	default:
		return fmt.Sprintf("hidden_state(%d)", int(h))
	}
}

// Source records where a segment came from.
type Source int

const (
	// SourceServer segments were submitted and carry a UUID.
	SourceServer Source = iota
	// SourceLocal segments were created on this device and not yet submitted.
	SourceLocal
)

// Segment is a classified time interval within a media item.
type Segment struct {
	Segment     [2]float64
	Category    Category
	ActionType  ActionType
	UUID        string
	Hidden      HiddenState
	Source      Source
	Description string
}

// Start returns the start of the interval in seconds.
func (s *Segment) Start() float64 { return s.Segment[0] }

// End returns the end of the interval in seconds.
func (s *Segment) End() float64 { return s.Segment[1] }

// Length returns the interval length in seconds.
func (s *Segment) Length() float64 { return s.Segment[1] - s.Segment[0] }

// Contains reports whether t falls inside the closed interval.
func (s *Segment) Contains(t float64) bool {
	return s.Segment[0] <= t && s.Segment[1] >= t
}

// IsSubmitted reports whether the segment has a server UUID.
func (s *Segment) IsSubmitted() bool {
	return s.UUID != ""
}

// LocalCopy returns an unsubmitted copy carrying the interval, category and action type.
func (s *Segment) LocalCopy() *Segment {
	return &Segment{
		Segment:    s.Segment,
		Category:   s.Category,
		ActionType: s.ActionType,
		Source:     SourceLocal,
	}
}

// Validate validates the segment and returns an error if invalid.
func (s *Segment) Validate() error {
	if s.Segment[0] < 0 || s.Segment[0] > s.Segment[1] {
		return fmt.Errorf("invalid segment interval: [%g, %g]", s.Segment[0], s.Segment[1])
	}
	if !s.Category.IsValid() {
		return fmt.Errorf("invalid segment category: %s", s.Category)
	}
	if s.ActionType != "" && !s.ActionType.IsValid() {
		return fmt.Errorf("invalid segment action type: %s", s.ActionType)
	}
	if s.UUID == "" && s.Source != SourceLocal {
		return fmt.Errorf("segment without UUID must be locally created")
	}
	return nil
}

// PreviewBarSegment is the view of a segment rendered on the preview bar.
type PreviewBarSegment struct {
	Segment     [2]float64
	Category    Category
	ActionType  ActionType
	Description string
	Unsubmitted bool
	ShowLarger  bool
}

// Length returns the interval length in seconds.
func (p PreviewBarSegment) Length() float64 { return p.Segment[1] - p.Segment[0] }

// FromSegment builds the preview bar view of a segment.
func FromSegment(s *Segment) PreviewBarSegment {
	return PreviewBarSegment{
		Segment:     s.Segment,
		Category:    s.Category,
		ActionType:  s.ActionType,
		Description: s.Description,
		Unsubmitted: s.Source == SourceLocal,
		ShowLarger:  s.ActionType == ActionPOI || ActionTypeOf(s.Category) == POI,
	}
}

// PreviewBarSegments builds the preview bar view for every segment that is not hidden.
func PreviewBarSegments(segments []*Segment) []PreviewBarSegment {
	out := make([]PreviewBarSegment, 0, len(segments))
	for _, s := range segments {
		if s == nil || s.Hidden != Visible {
			continue
		}
		out = append(out, FromSegment(s))
	}
	return out
}
