package state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/i18n"
	"github.com/cristianoliveira/segbar/internal/notice"
	"github.com/cristianoliveira/segbar/internal/player"
	"github.com/cristianoliveira/segbar/internal/previewbar"
	"github.com/cristianoliveira/segbar/internal/segwatch"
	"github.com/cristianoliveira/segbar/internal/timefmt"
	"github.com/cristianoliveira/segbar/internal/tui/render"
)

const (
	defaultWidth     = 80
	seekStep         = 5.0
	hostTooltipClass = "seekbar-tooltip-text"
	// ProgressClass is the progress layer mirrored into the chapter strip.
	ProgressClass = "play-progress"
	// SectionClass is the class of the chapter strip sections.
	SectionClass = "chapter-section"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// EngineOptions describes the terminal host to the preview bar engine.
func EngineOptions() previewbar.Options {
	return previewbar.Options{
		TooltipWrapper: true,
		NativeChapters: &previewbar.ChapterTemplate{
			SectionClasses:  []string{SectionClass},
			ProgressClasses: []string{ProgressClass},
		},
	}
}

// Model represents the watch view for bubbletea.
type Model struct {
	session *player.Session
	cfg     config.Context
	msgs    i18n.Messages
	keys    keyMap
	help    help.Model

	width   int
	hover   int
	hovered bool
	holding bool
	// category is the chooser position within notice.CategoryOptions.
	category int

	status     string
	statusKind statusKind
	skips      int

	reloads <-chan segwatch.Update
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// NewModel creates the watch view over a running session.
func NewModel(session *player.Session, cfg config.Context, msgs i18n.Messages) *Model {
	return &Model{
		session: session,
		cfg:     cfg,
		msgs:    msgs,
		keys:    newKeyMap(cfg.SkipKeybind),
		help:    help.New(),
		width:   defaultWidth,
	}
}

// WithReloads makes the view replace its segments whenever reloads delivers a copy.
func (m *Model) WithReloads(reloads <-chan segwatch.Update) *Model {
	m.reloads = reloads
	return m
}

// Init starts the playback and countdown clocks.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{playbackTick(), countdownTick()}
	if m.reloads != nil {
		cmds = append(cmds, waitForReload(m.reloads))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case playbackTickMsg:
		m.session.Advance(playbackInterval)
		m.observeProgress()
		cmds := []tea.Cmd{playbackTick()}
		if skips := m.session.Skips(); skips != m.skips {
			m.skips = skips
			cmds = append(cmds, m.setStatus(statusInfo, fmt.Sprintf("skipped (%d so far)", skips)))
		}
		return m, tea.Batch(cmds...)
	case countdownTickMsg:
		m.session.Tick()
		return m, countdownTick()
	case statusClearMsg:
		m.status = ""
		return m, nil
	case segmentsReloadedMsg:
		cmd := m.handleReload(segwatch.Update(msg))
		if m.reloads != nil {
			cmd = tea.Batch(cmd, waitForReload(m.reloads))
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) barWidth() int {
	if m.width <= 2 {
		return 1
	}
	return m.width - 2
}

// observeProgress mirrors the playback position into the chapter strip.
func (m *Model) observeProgress() {
	bar := m.session.Bar()
	fraction := bar.DecimalFraction(m.session.Clock().CurrentTime())
	bar.ObserveProgress([]previewbar.ProgressMutation{{
		InProgressList: true,
		Classes:        []string{ProgressClass},
		Transform:      fmt.Sprintf("scaleX(%g)", fraction),
	}})
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Pause):
		m.session.Clock().TogglePause()
	case key.Matches(msg, m.keys.Forward):
		m.seek(seekStep)
	case key.Matches(msg, m.keys.Back):
		m.seek(-seekStep)
	case key.Matches(msg, m.keys.HoverLeft):
		m.moveHover(-1)
	case key.Matches(msg, m.keys.HoverRight):
		m.moveHover(1)
	case key.Matches(msg, m.keys.LeaveBar):
		m.hovered = false
		m.session.Bar().SetPointerOverSeekBar(false)
	default:
		return m, m.handleNoticeKey(msg)
	}
	return m, nil
}

func (m *Model) handleReload(u segwatch.Update) tea.Cmd {
	if u.Err != nil {
		return m.setStatus(statusError, fmt.Sprintf("reload failed: %v", u.Err))
	}
	m.session.SetSegments(u.Segments)
	m.holding = false
	return m.setStatus(statusSuccess, fmt.Sprintf("reloaded %d segments", len(u.Segments)))
}

// setStatus shows msg on the status line until it times out.
func (m *Model) setStatus(kind statusKind, msg string) tea.Cmd {
	m.status = msg
	m.statusKind = kind
	return statusClearAfter(statusClearDuration)
}

func (m *Model) seek(delta float64) {
	m.session.Seek(m.session.Clock().CurrentTime() + delta)
	m.observeProgress()
}

// moveHover moves the hover cursor and feeds the host tooltip text to the engine.
func (m *Model) moveHover(delta int) {
	width := m.barWidth()
	if !m.hovered {
		m.hover = render.Column(m.session.Bar().DecimalFraction(m.session.Clock().CurrentTime()), width)
		m.hovered = true
	} else {
		m.hover += delta
	}
	if m.hover < 0 {
		m.hover = 0
	}
	if m.hover >= width {
		m.hover = width - 1
	}
	m.observeHover()
}

func (m *Model) hoverTime() float64 {
	return float64(m.hover) / float64(m.barWidth()) * m.session.Clock().Duration()
}

func (m *Model) observeHover() {
	bar := m.session.Bar()
	bar.SetPointerOverSeekBar(true)
	bar.ObserveTooltip(
		[]previewbar.Mutation{{TargetClasses: []string{hostTooltipClass}}},
		[]previewbar.TooltipText{{Text: timefmt.Format(m.hoverTime())}},
	)
}

// handleNoticeKey routes notice keys to the open notice.
func (m *Model) handleNoticeKey(msg tea.KeyMsg) tea.Cmd {
	n := m.session.Notice()
	if n == nil {
		return nil
	}
	s := n.State()

	switch {
	case key.Matches(msg, m.keys.Skip):
		m.session.Dispatch(notice.RequestAction{Kind: notice.Unskip})
	case key.Matches(msg, m.keys.Upvote):
		m.session.Dispatch(notice.RequestAction{Kind: notice.Upvote})
	case key.Matches(msg, m.keys.Downvote):
		m.session.Dispatch(notice.RequestAction{Kind: notice.Downvote})
	case key.Matches(msg, m.keys.CopyDownvote):
		m.session.Dispatch(notice.RequestAction{Kind: notice.CopyDownvote})
	case key.Matches(msg, m.keys.Edit):
		if s.Editing {
			m.session.Dispatch(notice.CloseEditing{})
		} else {
			m.session.Dispatch(notice.OpenEditing{})
		}
	case key.Matches(msg, m.keys.Category):
		m.session.Dispatch(notice.OpenCategoryChooser{})
		m.category = m.categoryIndex(n.State())
	case key.Matches(msg, m.keys.NextCategory):
		if !s.ChoosingCategory {
			return nil
		}
		options := notice.CategoryOptions()
		m.category = (m.category + 1) % len(options)
		m.session.Dispatch(notice.ChooseCategory{Category: options[m.category]})
	case key.Matches(msg, m.keys.SubmitVote):
		if s.ChoosingCategory {
			m.session.Dispatch(notice.RequestAction{Kind: notice.CategoryVote})
		}
	case key.Matches(msg, m.keys.Candidate):
		index := int(msg.Runes[0] - '1')
		if s.Action == notice.None || index >= len(n.Segments()) {
			return nil
		}
		m.session.Dispatch(notice.SelectCandidate{Index: index})
	case key.Matches(msg, m.keys.Continue):
		m.session.Dispatch(notice.ContinueVoting{})
	case key.Matches(msg, m.keys.OpenLink):
		opened := len(m.session.Links())
		m.session.Dispatch(notice.OpenMessageLink{})
		if links := m.session.Links(); len(links) > opened {
			return m.setStatus(statusInfo, "opened "+links[len(links)-1])
		}
	case key.Matches(msg, m.keys.CloseNotice):
		m.session.CloseNotice()
	case key.Matches(msg, m.keys.DontShow):
		if !n.AutoSkip() {
			return nil
		}
		m.session.Dispatch(notice.DontShowAgain{})
		m.holding = false
		return m.setStatus(statusSuccess, "skip notices disabled")
	case key.Matches(msg, m.keys.Hold):
		m.holding = !m.holding
		if m.holding {
			m.session.Dispatch(notice.MouseEnter{})
		} else {
			m.session.Dispatch(notice.MouseLeave{})
		}
	}
	if m.session.Notice() == nil {
		m.holding = false
	}
	return nil
}

func (m *Model) categoryIndex(s notice.State) int {
	for i, c := range notice.CategoryOptions() {
		if c == s.ChosenCategory {
			return i
		}
	}
	return 0
}

// noticeView builds the display data of the open notice.
func (m *Model) noticeView(n *notice.Notice) render.NoticeView {
	s := n.State()
	segments := n.Segments()
	v := render.NoticeView{
		Title:          notice.Title(s, segments, m.msgs),
		SkipButton:     notice.SkipButtonText(s, m.cfg, m.msgs),
		ShowSkipButton: s.ShowSkipButton,
		Countdown:      s.Countdown,
		Selected:       -1,
		Editing:        s.Editing,
		Chosen:         -1,
		Messages:       notice.MessageTexts(s, m.msgs),
		Faded:          s.Faded,
		Smaller:        s.Smaller,
		Paused:         s.Paused,
	}
	if s.ThanksText != "" {
		v.Thanks = i18n.Text(m.msgs, s.ThanksText)
	}
	if s.Action != notice.None || s.Editing {
		v.Candidates = notice.CandidateLabels(segments, m.msgs)
	}
	if s.ChoosingCategory {
		for i, c := range notice.CategoryOptions() {
			v.Categories = append(v.Categories, i18n.ShortCategoryName(m.msgs, c))
			if c == s.ChosenCategory {
				v.Chosen = i
			}
		}
	}
	return v
}

// View renders the watch view.
func (m *Model) View() string {
	var b strings.Builder
	bar := m.session.Bar()
	clock := m.session.Clock()
	width := m.barWidth()

	status := render.TimeLine(timefmt.Format(clock.CurrentTime()), timefmt.Format(clock.Duration()))
	if clock.Paused() {
		status += " (paused)"
	}
	if clock.Muted() {
		status += " (muted)"
	}
	if label := render.ChapterLabel(bar.ChapterLabel()); label != "" {
		status += "  " + label
	}
	b.WriteString(status + "\n")

	if m.hovered {
		b.WriteString(render.Tooltip(m.hover, width, bar.Tooltip(), timefmt.Format(m.hoverTime())))
	}
	b.WriteString("\n")
	b.WriteString(render.ScrubBar(bar.Bars(), width) + "\n")
	if bar.NativeBarHidden() {
		b.WriteString(render.ChapterStrip(bar.Sections(), width, ProgressClass) + "\n")
	}
	b.WriteString(render.Playhead(bar.DecimalFraction(clock.CurrentTime()), width) + "\n")

	if n := m.session.Notice(); n != nil {
		b.WriteString(render.NoticePanel(m.noticeView(n)) + "\n")
	}

	if m.status != "" {
		style := infoStyle
		switch m.statusKind {
		case statusSuccess:
			style = successStyle
		case statusError:
			style = errorStyle
		}
		b.WriteString(style.Render(m.status) + "\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
