package config

import (
	"github.com/cristianoliveira/segbar/internal/segment"
)

// Notice visibility modes.
const (
	NoticeVisible          = "visible"
	NoticeFadedForAutoSkip = "faded-for-autoskip"
	NoticeFadedForAll      = "faded-for-all"
)

// BarType is the display colour and opacity of one bar category.
type BarType struct {
	Color   string `toml:"color"`
	Opacity string `toml:"opacity"`
}

// Context is the configuration consumed by the overlay engines.
// It is passed explicitly so engines never read global state.
type Context struct {
	SkipNoticeDuration      int
	SkipKeybind             string
	ShowKeybindHint         bool
	NoticeVisibility        string
	MinSizeRatio            float64
	MinSizeRatioLarger      float64
	AutoSkip                bool
	DontShowNotice          bool
	AudioNotificationOnSkip bool
	Language                string
	BarTypes                map[string]BarType
	WikiPages               map[segment.Category]string
}

// DefaultContext returns the context used when no configuration was loaded.
func DefaultContext() Context {
	wiki := make(map[segment.Category]string)
	for k, v := range defaultWikiPages() {
		wiki[segment.Category(k)] = v
	}
	return Context{
		SkipNoticeDuration: 4,
		SkipKeybind:        "enter",
		ShowKeybindHint:    true,
		NoticeVisibility:   NoticeVisible,
		MinSizeRatio:       0.003,
		MinSizeRatioLarger: 0.006,
		AutoSkip:           true,
		Language:           "en",
		BarTypes:           defaultBarTypes(),
		WikiPages:          wiki,
	}
}

// Current builds a Context from the loaded configuration.
func Current() Context {
	ctx := DefaultContext()
	ctx.SkipNoticeDuration = GetInt("skip_notice_duration", ctx.SkipNoticeDuration)
	ctx.SkipKeybind = Get("skip_keybind", ctx.SkipKeybind)
	ctx.ShowKeybindHint = GetBool("show_keybind_hint", ctx.ShowKeybindHint)
	ctx.NoticeVisibility = Get("notice_visibility_mode", ctx.NoticeVisibility)
	ctx.MinSizeRatio = GetFloat("min_size_ratio", ctx.MinSizeRatio)
	ctx.MinSizeRatioLarger = GetFloat("min_size_ratio_larger", ctx.MinSizeRatioLarger)
	ctx.AutoSkip = GetBool("auto_skip", ctx.AutoSkip)
	ctx.DontShowNotice = GetBool("dont_show_notice", ctx.DontShowNotice)
	ctx.AudioNotificationOnSkip = GetBool("audio_notification_on_skip", ctx.AudioNotificationOnSkip)
	ctx.Language = Get("language", ctx.Language)

	mu.RLock()
	defer mu.RUnlock()
	if barTypes != nil {
		ctx.BarTypes = make(map[string]BarType, len(barTypes))
		for k, v := range barTypes {
			ctx.BarTypes[k] = v
		}
	}
	for k, v := range wikiPages {
		ctx.WikiPages[segment.Category(k)] = v
	}
	return ctx
}

// StartFaded reports whether a notice should open faded.
func (c Context) StartFaded(autoSkip bool) bool {
	switch c.NoticeVisibility {
	case NoticeFadedForAll:
		return true
	case NoticeFadedForAutoSkip:
		return autoSkip
	default:
		return false
	}
}

// BarType returns the display settings for a full category name such as "preview-sponsor".
func (c Context) BarType(name string) (BarType, bool) {
	bt, ok := c.BarTypes[name]
	return bt, ok
}

func defaultBarTypes() map[string]BarType {
	return map[string]BarType{
		"sponsor":                  {Color: "#00d400", Opacity: "0.7"},
		"preview-sponsor":          {Color: "#007800", Opacity: "0.7"},
		"selfpromo":                {Color: "#ffff00", Opacity: "0.7"},
		"preview-selfpromo":        {Color: "#bfbf35", Opacity: "0.7"},
		"exclusive_access":         {Color: "#008a5c", Opacity: "0.7"},
		"preview-exclusive_access": {Color: "#005c3d", Opacity: "0.7"},
		"interaction":              {Color: "#cc00ff", Opacity: "0.7"},
		"preview-interaction":      {Color: "#6c0087", Opacity: "0.7"},
		"intro":                    {Color: "#00ffff", Opacity: "0.7"},
		"preview-intro":            {Color: "#008080", Opacity: "0.7"},
		"outro":                    {Color: "#0202ed", Opacity: "0.7"},
		"preview-outro":            {Color: "#000070", Opacity: "0.7"},
		"preview":                  {Color: "#008fd6", Opacity: "0.7"},
		"preview-preview":          {Color: "#005799", Opacity: "0.7"},
		"music_offtopic":           {Color: "#ff9900", Opacity: "0.7"},
		"preview-music_offtopic":   {Color: "#a6634a", Opacity: "0.7"},
		"filler":                   {Color: "#7300ff", Opacity: "0.9"},
		"preview-filler":           {Color: "#2e0066", Opacity: "0.9"},
		"poi_highlight":            {Color: "#ff1684", Opacity: "0.8"},
		"preview-poi_highlight":    {Color: "#9b044c", Opacity: "0.8"},
		"chapter":                  {Color: "#ffffff", Opacity: "0.3"},
		"preview-chapter":          {Color: "#aaaaaa", Opacity: "0.3"},
	}
}

func defaultWikiPages() map[string]string {
	const base = "https://wiki.sponsor.ajay.app/w/"
	return map[string]string{
		"sponsor":          base + "Sponsor",
		"selfpromo":        base + "Unpaid/Self_Promotion",
		"exclusive_access": base + "Exclusive_Access",
		"interaction":      base + "Interaction_Reminder_(Subscribe)",
		"intro":            base + "Intermission/Intro_Animation",
		"outro":            base + "Endcards/Credits",
		"preview":          base + "Preview/Recap",
		"music_offtopic":   base + "Music:_Non-Music_Section",
		"filler":           base + "Filler_Tangent",
		"poi_highlight":    base + "Highlight",
		"chapter":          base + "Chapter",
	}
}
