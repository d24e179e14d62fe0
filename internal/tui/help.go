package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	// HelpOverlayStyle defines the style for the help overlay container.
	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		MarginTop(1)
)

// HelpModel renders the key bindings of the active screen.
type HelpModel struct {
	help   help.Model
	keymap help.KeyMap
}

// NewHelpModel creates a help overlay for keymap.
func NewHelpModel(keymap help.KeyMap) HelpModel {
	h := help.New()
	h.ShowAll = true

	return HelpModel{
		help:   h,
		keymap: keymap,
	}
}

// View renders the help overlay under a title.
func (m HelpModel) View(title string, width int) string {
	m.help.Width = width - 8 // Account for padding and border
	content := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(title),
		"",
		m.help.View(m.keymap),
		"",
		dimStyle.Render("press ? or esc to close"),
	)
	return HelpOverlayStyle.Render(content)
}
