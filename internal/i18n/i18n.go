// Package i18n resolves user-visible message keys to localized text.
package i18n

import (
	"strings"

	"github.com/cristianoliveira/segbar/internal/segment"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Messages looks up localized strings by key.
type Messages interface {
	// Get returns the text for key, or "" when the key is unknown.
	Get(key string) string
}

// Message keys used by the overlay engines and the front end.
const (
	KeySkip                 = "skip"
	KeyUnskip               = "unskip"
	KeyReskip               = "reskip"
	KeyMute                 = "mute"
	KeyUnmute               = "unmute"
	KeySkipped              = "skipped"
	KeyMuted                = "muted"
	KeySkipPrompt           = "skip_category"
	KeyNoticeTitle          = "noticeTitle"
	KeyVoted                = "voted"
	KeyOpenCategoryWikiPage = "OpenCategoryWikiPage"
	KeyContinueVoting       = "ContinueVoting"
	KeyUnsubmitted          = "unsubmitted"
	KeyHide                 = "Hide"
	KeySubmit               = "submit"
	KeyCopyAndDownvote      = "CopyAndDownvote"
	KeyIncorrectCategory    = "incorrectCategory"
	KeyUpvoteInfo           = "upvoteButtonInfo"
	KeyDownvoteInfo         = "reportButtonInfo"
	KeyCopyDownvoteInfo     = "CopyDownvoteButtonInfo"
	KeyHitGoBack            = "hitGoBack"
)

// CategoryKey returns the key of the full category name.
func CategoryKey(c segment.Category) string {
	return "category_" + string(c)
}

// CategoryShortKey returns the key of the short category name.
func CategoryShortKey(c segment.Category) string {
	return "category_" + string(c) + "_short"
}

// Catalog is a Messages backed by a golang.org/x/text catalog.
type Catalog struct {
	tag      language.Tag
	printer  *message.Printer
	fallback *message.Printer
}

// New returns the catalog for lang, falling back to English for unknown
// languages and missing keys.
func New(lang string) *Catalog {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for _, tag := range supported {
		for key, text := range translations[tag] {
			// SetString only fails for malformed messages; the tables are static.
			_ = b.SetString(tag, key, text)
		}
	}

	tag, _, _ := language.NewMatcher(supported).Match(language.Make(strings.TrimSpace(lang)))
	base, _ := tag.Base()
	tag = language.Make(base.String())
	return &Catalog{
		tag:      tag,
		printer:  message.NewPrinter(tag, message.Catalog(b)),
		fallback: message.NewPrinter(supported[0], message.Catalog(b)),
	}
}

// Language returns the resolved language tag.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Get implements Messages.
func (c *Catalog) Get(key string) string {
	if _, ok := translations[c.tag][key]; ok {
		return c.printer.Sprintf(key)
	}
	if _, ok := translations[supported[0]][key]; ok {
		return c.fallback.Sprintf(key)
	}
	return ""
}

// CategoryName returns the full localized name of a category.
func CategoryName(m Messages, c segment.Category) string {
	if text := m.Get(CategoryKey(c)); text != "" {
		return text
	}
	return string(c)
}

// ShortCategoryName returns the short localized name of a category,
// falling back to the full name.
func ShortCategoryName(m Messages, c segment.Category) string {
	if text := m.Get(CategoryShortKey(c)); text != "" {
		return text
	}
	return CategoryName(m, c)
}

// Text returns the localized text for key, or key itself when unknown.
func Text(m Messages, key string) string {
	if text := m.Get(key); text != "" {
		return text
	}
	return key
}
