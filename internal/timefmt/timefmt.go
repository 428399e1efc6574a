// Package timefmt converts between player time labels ("1:02:03") and seconds.
package timefmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var formattedTime = regexp.MustCompile(`^(?:(?:(\d+):)?(\d+):)?(\d*(?:[.,]\d+)?)$`)

// ParseSeconds parses a formatted time label into seconds.
// It returns false when the label is not a time.
func ParseSeconds(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	fragments := formattedTime.FindStringSubmatch(text)
	if fragments == nil {
		return 0, false
	}

	var hours, minutes int
	var seconds float64
	if fragments[1] != "" {
		hours, _ = strconv.Atoi(fragments[1])
	}
	if fragments[2] != "" {
		minutes, _ = strconv.Atoi(fragments[2])
	}
	if fragments[3] != "" {
		s, err := strconv.ParseFloat(strings.Replace(fragments[3], ",", ".", 1), 64)
		if err != nil {
			return 0, false
		}
		seconds = s
	}

	return float64(hours*3600+minutes*60) + seconds, true
}

// Format renders seconds the way a player labels its seek bar: m:ss or h:mm:ss.
func Format(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
