package ui

import tea "github.com/charmbracelet/bubbletea"

// overlay is a modal drawn over a screen. Update returns nil once the
// overlay has closed.
type overlay interface {
	Update(msg tea.Msg) (overlay, tea.Cmd)
	View() string
}
