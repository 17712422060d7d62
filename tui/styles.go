// Package tui is the terminal shop: listing, detail and cart views driven by
// the same storefront as the HTTP surfaces.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#2A59FE")
	Muted       = lipgloss.Color("#8A8F98")
	Destructive = lipgloss.Color("#E53935")
	Success     = lipgloss.Color("#8BC34A")
)

type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Price    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(Primary).Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Price:    lipgloss.NewStyle().Foreground(Primary),
		Muted:    lipgloss.NewStyle().Foreground(Muted),
		Error:    lipgloss.NewStyle().Foreground(Destructive),
		Status:   lipgloss.NewStyle().Foreground(Success),
		Help:     lipgloss.NewStyle().Foreground(Muted).Italic(true),
	}
}
