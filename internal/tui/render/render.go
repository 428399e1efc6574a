// Package render draws the overlay engines' state as terminal text.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/previewbar"
)

const (
	barCell       = "█"
	emptyCell     = "░"
	markerCell    = "◆"
	sectionCell   = "━"
	blankCell     = "─"
	sectionGap    = " "
	playheadGlyph = "▲"
	cursorGlyph   = "^"
)

var (
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	playedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	unplayedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tooltipStyle  = lipgloss.NewStyle().Bold(true)
	chapterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Cyan)))
)

// cellRange returns the percentage span covered by column i of width columns.
func cellRange(i, width int) (lo, hi float64) {
	lo = float64(i) * 100 / float64(width)
	hi = float64(i+1) * 100 / float64(width)
	return lo, hi
}

// covers reports whether bar paints column i.
func covers(bar previewbar.Bar, i, width int) bool {
	lo, hi := cellRange(i, width)
	if !bar.HasWidth {
		if bar.Left >= 100 {
			return i == width-1
		}
		return bar.Left >= lo && bar.Left < hi
	}
	return bar.Left < hi && bar.Left+bar.Width > lo
}

// ScrubBar renders bars over width columns. Later bars paint over earlier ones.
func ScrubBar(bars []previewbar.Bar, width int) string {
	if width <= 0 {
		return ""
	}
	cells := make([]string, width)
	for i := range cells {
		cells[i] = emptyStyle.Render(emptyCell)
	}
	for _, bar := range bars {
		style := lipgloss.NewStyle()
		if bar.Color != "" {
			style = style.Foreground(lipgloss.Color(bar.Color))
		}
		glyph := barCell
		if !bar.HasWidth {
			glyph = markerCell
		}
		for i := range cells {
			if covers(bar, i, width) {
				cells[i] = style.Render(glyph)
			}
		}
	}
	return strings.Join(cells, "")
}

// ChapterStrip renders the merged chapter sections. Played cells follow the
// progress layer named progressClass.
func ChapterStrip(sections []previewbar.Section, width int, progressClass string) string {
	if width <= 0 || len(sections) == 0 {
		return ""
	}
	var b strings.Builder
	cursor := 0.0
	used := 0
	for i, s := range sections {
		cursor += s.Decimal
		end := int(math.Round(cursor * float64(width)))
		if i == len(sections)-1 {
			end = width
		}
		cols := end - used
		if cols <= 0 {
			continue
		}
		used = end

		glyph := sectionCell
		if s.Blank {
			glyph = blankCell
		}
		played := int(math.Round(s.Scales[progressClass] * float64(cols)))
		for c := 0; c < cols; c++ {
			switch {
			case c == cols-1 && i < len(sections)-1:
				b.WriteString(sectionGap)
			case c < played:
				b.WriteString(playedStyle.Render(glyph))
			default:
				b.WriteString(unplayedStyle.Render(glyph))
			}
		}
	}
	return b.String()
}

// Marker renders glyph at column col, followed by label when it fits.
func Marker(col, width int, glyph, label string) string {
	if width <= 0 || col < 0 {
		return ""
	}
	if col >= width {
		col = width - 1
	}
	line := strings.Repeat(" ", col) + glyph
	if label != "" {
		text := " " + label
		if col+1+lipgloss.Width(text) > width && col >= lipgloss.Width(text) {
			line = strings.Repeat(" ", col-lipgloss.Width(text)) + text + glyph
		} else {
			line += text
		}
	}
	return line
}

// Playhead renders the playback position marker.
func Playhead(fraction float64, width int) string {
	return Marker(Column(fraction, width), width, playheadGlyph, "")
}

// Tooltip renders the hover cursor with the tooltip text.
func Tooltip(col, width int, tooltip previewbar.Tooltip, timeLabel string) string {
	label := timeLabel
	if tooltip.Visible {
		parts := make([]string, 0, 2)
		if tooltip.Text != "" {
			parts = append(parts, tooltip.Text)
		}
		if tooltip.Chapter != "" {
			parts = append(parts, tooltip.Chapter)
		}
		label = tooltipStyle.Render(strings.Join(parts, " · ")) + " " + timeLabel
	}
	return Marker(col, width, cursorGlyph, label)
}

// ChapterLabel renders the current chapter title.
func ChapterLabel(label previewbar.ChapterLabel) string {
	if !label.Visible {
		return ""
	}
	return chapterStyle.Render("• " + label.Text)
}

// Column maps a fraction of the duration to a column.
func Column(fraction float64, width int) int {
	if width <= 0 {
		return 0
	}
	col := int(fraction * float64(width))
	if col >= width {
		col = width - 1
	}
	if col < 0 {
		col = 0
	}
	return col
}

// TimeLine renders "current / duration".
func TimeLine(current, duration string) string {
	return fmt.Sprintf("%s / %s", current, duration)
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
