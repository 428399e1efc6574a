// Package state holds the bubbletea model of the watch view.
package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/segbar/internal/segwatch"
)

const (
	playbackInterval    = 100 * time.Millisecond
	countdownInterval   = time.Second
	statusClearDuration = 5 * time.Second
)

// playbackTickMsg advances the simulated player.
type playbackTickMsg time.Time

// countdownTickMsg counts the open notice down.
type countdownTickMsg time.Time

func playbackTick() tea.Cmd {
	return tea.Tick(playbackInterval, func(t time.Time) tea.Msg {
		return playbackTickMsg(t)
	})
}

func countdownTick() tea.Cmd {
	return tea.Tick(countdownInterval, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

// statusClearMsg clears the status line.
type statusClearMsg struct{}

func statusClearAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// segmentsReloadedMsg carries a fresh copy of the segments file.
type segmentsReloadedMsg segwatch.Update

// waitForReload blocks until the next reload. A closed channel ends the subscription.
func waitForReload(reloads <-chan segwatch.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-reloads
		if !ok {
			return nil
		}
		return segmentsReloadedMsg(u)
	}
}
