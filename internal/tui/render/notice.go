package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/segbar/internal/colors"
)

// NoticeView is the display data of an open skip notice.
type NoticeView struct {
	Title          string
	SkipButton     string
	ShowSkipButton bool
	Countdown      int
	// Candidates lists the notice segments; it is shown when more than one.
	Candidates []string
	// Selected is the candidate index the next vote applies to.
	Selected int
	Editing  bool
	// Categories is non-empty while the category chooser is open.
	Categories []string
	Chosen     int
	Thanks     string
	Messages   []string
	Faded      bool
	Smaller    bool
	Paused     bool
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ansiColorNumber(colors.Blue))).
			Padding(0, 1)
	fadedPanelStyle = panelStyle.BorderForeground(lipgloss.Color("240"))
	titleStyle      = lipgloss.NewStyle().Bold(true)
	buttonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow)))
	messageStyle    = lipgloss.NewStyle().Italic(true)
)

// NoticePanel renders an open notice as a bordered panel.
func NoticePanel(v NoticeView) string {
	var lines []string

	header := titleStyle.Render(v.Title)
	countdown := fmt.Sprintf("(%ds)", v.Countdown)
	if v.Paused {
		countdown = "(paused)"
	}
	header += " " + dimStyle.Render(countdown)
	lines = append(lines, header)

	if v.Smaller {
		return fadedPanelStyle.Render(strings.Join(lines, "\n"))
	}

	if v.Thanks != "" {
		lines = append(lines, v.Thanks)
	}

	var controls []string
	if v.ShowSkipButton {
		controls = append(controls, buttonStyle.Render("["+v.SkipButton+"]"))
	}
	if v.Editing {
		controls = append(controls, dimStyle.Render("editing"))
	}
	if len(controls) > 0 {
		lines = append(lines, strings.Join(controls, "  "))
	}

	if len(v.Candidates) > 1 {
		for i, c := range v.Candidates {
			lines = append(lines, pick(c, i == v.Selected))
		}
	}

	if len(v.Categories) > 0 {
		row := make([]string, len(v.Categories))
		for i, c := range v.Categories {
			row[i] = pick(c, i == v.Chosen)
		}
		lines = append(lines, strings.Join(row, " "))
	}

	for _, m := range v.Messages {
		lines = append(lines, messageStyle.Render(m))
	}

	style := panelStyle
	if v.Faded {
		style = fadedPanelStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func pick(label string, selected bool) string {
	if selected {
		return selectedStyle.Render("> " + label)
	}
	return "  " + label
}
