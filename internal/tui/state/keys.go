package state

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the watch view bindings.
type keyMap struct {
	Skip         key.Binding
	Upvote       key.Binding
	Downvote     key.Binding
	CopyDownvote key.Binding
	Edit         key.Binding
	Category     key.Binding
	NextCategory key.Binding
	SubmitVote   key.Binding
	Candidate    key.Binding
	Continue     key.Binding
	OpenLink     key.Binding
	CloseNotice  key.Binding
	DontShow     key.Binding
	Hold         key.Binding
	Pause        key.Binding
	HoverLeft    key.Binding
	HoverRight   key.Binding
	LeaveBar     key.Binding
	Forward      key.Binding
	Back         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap(skipKey string) keyMap {
	if skipKey == "" {
		skipKey = "enter"
	}
	return keyMap{
		Skip:         key.NewBinding(key.WithKeys(skipKey), key.WithHelp(skipKey, "skip/unskip")),
		Upvote:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upvote")),
		Downvote:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "downvote")),
		CopyDownvote: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy & downvote")),
		Edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Category:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "change category")),
		NextCategory: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
		SubmitVote:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit category")),
		Candidate:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick segment")),
		Continue:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "keep voting")),
		OpenLink:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
		CloseNotice:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close notice")),
		DontShow:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "never show")),
		Hold:         key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "hold notice")),
		Pause:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		HoverLeft:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "hover left")),
		HoverRight:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "hover right")),
		LeaveBar:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave bar")),
		Forward:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "+5s")),
		Back:         key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "-5s")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Skip, k.Upvote, k.Downvote, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Skip, k.Upvote, k.Downvote, k.CopyDownvote, k.Candidate},
		{k.Edit, k.Category, k.NextCategory, k.SubmitVote},
		{k.Continue, k.OpenLink, k.CloseNotice, k.DontShow, k.Hold},
		{k.Pause, k.Forward, k.Back, k.HoverLeft, k.HoverRight, k.LeaveBar},
		{k.Help, k.Quit},
	}
}
