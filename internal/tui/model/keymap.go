package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up               key.Binding
	Down             key.Binding
	Tab              key.Binding
	ShiftTab         key.Binding
	Enter            key.Binding
	Esc              key.Binding
	Quit             key.Binding
	Help             key.Binding
	ToggleLog        key.Binding
	ShowCourses      key.Binding
	ShowParticipants key.Binding
	NextTab          key.Binding
	PrevTab          key.Binding
	Refresh          key.Binding
	New              key.Binding
	Delete           key.Binding
	Lookup           key.Binding
	ClearLookup      key.Binding
	CopyID           key.Binding
	CopyLookup       key.Binding
}

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next row"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit form"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field/dismiss error"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ShowCourses: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "courses tab"),
		),
		ShowParticipants: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "participants tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous tab"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh list"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new record"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d/x", "delete selected"),
		),
		Lookup: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "lookup by id"),
		),
		ClearLookup: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear lookup"),
		),
		CopyID: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selected id"),
		),
		CopyLookup: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy lookup JSON"),
		),
	}
}

// FullHelp returns bindings for the help overlay, one column per slice.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.ShiftTab, k.ShowCourses, k.ShowParticipants, k.NextTab, k.PrevTab},
		{k.New, k.Enter, k.Delete, k.Refresh, k.Lookup, k.ClearLookup},
		{k.CopyID, k.CopyLookup, k.Esc, k.Help, k.ToggleLog, k.Quit},
	}
}

// ShortHelp returns a minimal set of bindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Delete, k.Refresh, k.Help, k.Quit}
}
