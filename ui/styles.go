// Package ui is the terminal dashboard: one screen per resource, each a
// searchable, pageable table with modal overlays for writes and details.
package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	Primary     = lipgloss.Color("#8BC34A")
	Foreground  = lipgloss.Color("#f2f2f2")
	Muted       = lipgloss.Color("#7a8699")
	Border      = lipgloss.Color("#2a3850")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
)

// Styles holds the rendered look of the dashboard.
type Styles struct {
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Content   lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Label     lipgloss.Style
	Overlay   lipgloss.Style
	Filter    lipgloss.Style
	Table     table.Styles
}

// DefaultStyles returns the dashboard styles.
func DefaultStyles() Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Border).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#101F38")).
		Background(Primary).
		Bold(false)

	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Tab:       lipgloss.NewStyle().Foreground(Muted).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(Primary).Bold(true).Underline(true).Padding(0, 1),
		Content:   lipgloss.NewStyle().Padding(0, 1),
		Muted:     lipgloss.NewStyle().Foreground(Muted),
		Error:     lipgloss.NewStyle().Foreground(Destructive),
		Success:   lipgloss.NewStyle().Foreground(Primary),
		Label:     lipgloss.NewStyle().Bold(true).Width(20),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2),
		Filter: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
		Table: ts,
	}
}
