// Package tui provides the terminal date picker for calpick.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/calpick/internal/tui/theme"
)

// cellWidth is the rendered width of one day cell.
const cellWidth = 4

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg lipgloss.Color

	AppStyle lipgloss.Style

	// Month block
	MonthTitleStyle lipgloss.Style
	WeekdayStyle    lipgloss.Style
	WeekNumberStyle lipgloss.Style

	// Day cells
	DayStyle           lipgloss.Style
	PaddingStyle       lipgloss.Style
	DisabledStyle      lipgloss.Style
	TodayStyle         lipgloss.Style
	SelectedStyle      lipgloss.Style
	FocusStyle         lipgloss.Style
	FocusDisabledStyle lipgloss.Style

	// Footer
	HeaderStyle lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	PromptStyle lipgloss.Style
	Help        help.Styles
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	base := lipgloss.NewStyle().Background(p.Bg)
	cell := base.Width(cellWidth).Align(lipgloss.Right)

	s := &Styles{colorBg: p.Bg}

	s.AppStyle = base.Foreground(p.Fg)

	s.MonthTitleStyle = base.Foreground(p.Accent).Bold(true)
	s.WeekdayStyle = cell.Foreground(p.FgMuted)
	s.WeekNumberStyle = cell.Foreground(p.FgMuted).Background(p.BgHighlight).Italic(true)

	s.DayStyle = cell.Foreground(p.Fg)
	s.PaddingStyle = cell.Foreground(p.FgMuted)
	s.DisabledStyle = cell.Foreground(p.DisabledFg).Strikethrough(true)
	s.TodayStyle = cell.Foreground(p.Today).Bold(true).Underline(true)
	s.SelectedStyle = cell.Foreground(p.TextOnSelected).Background(p.SelectedBg).Bold(true)
	s.FocusStyle = cell.Foreground(p.TextOnAccent).Background(p.Accent).Bold(true)
	s.FocusDisabledStyle = cell.Foreground(p.TextOnWarning).Background(p.Warning)

	s.HeaderStyle = base.Foreground(p.Fg).Bold(true)
	s.StatusStyle = base.Foreground(p.FgMuted)
	s.ErrorStyle = base.Foreground(p.Warning).Bold(true)
	s.PromptStyle = base.Foreground(p.Fg)

	s.Help = help.Styles{
		ShortKey:       base.Foreground(p.Accent),
		ShortDesc:      base.Foreground(p.FgMuted),
		ShortSeparator: base.Foreground(p.FgMuted),
		Ellipsis:       base.Foreground(p.FgMuted),
		FullKey:        base.Foreground(p.Accent),
		FullDesc:       base.Foreground(p.FgMuted),
		FullSeparator:  base.Foreground(p.FgMuted),
	}

	return s
}
