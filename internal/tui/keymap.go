package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings of the agenda screens.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Row actions
	ToggleStatus key.Binding
	Preview      key.Binding
	Edit         key.Binding
	Delete       key.Binding
	Create       key.Binding
	OpenEvent    key.Binding
	EventItems   key.Binding

	// Filters
	Sort          key.Binding
	Status        key.Binding
	Category      key.Binding
	ClearStatus   key.Binding
	ClearCategory key.Binding
	ClearAll      key.Binding

	// Categories screen
	ToggleCategory key.Binding

	// Global
	Refresh    key.Binding
	Categories key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next row"),
		),
		ToggleStatus: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle completion"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p/enter", "preview"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		OpenEvent: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open event in browser"),
		),
		EventItems: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "event agenda items"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "latest/earliest"),
		),
		Status: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "active/completed"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "filter by category"),
		),
		ClearStatus: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear status"),
		),
		ClearCategory: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear category"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all filters"),
		),
		ToggleCategory: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "enable/disable"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Categories: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "items/categories"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleStatus, k.Preview, k.Edit, k.Delete},
		{k.Create, k.OpenEvent, k.EventItems, k.Refresh, k.Categories},
		{k.Sort, k.Status, k.Category, k.ClearStatus, k.ClearCategory, k.ClearAll},
		{k.ToggleCategory, k.Submit, k.Cancel, k.Help, k.Quit},
	}
}
