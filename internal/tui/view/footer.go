package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW     int
	FooterH    int
	PromptLine string
	ShowPrompt bool
	StatusLine string
	HelpLine   string
	VAlign     lipgloss.Position
	Bg         lipgloss.Color
}

// RenderFooter renders the prompt, status and help lines.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}

	var s string
	if state.ShowPrompt {
		s += state.PromptLine + "\n"
	}
	s += state.StatusLine + "\n"
	s += state.HelpLine

	return PlaceBox(state.InnerW, state.FooterH, lipgloss.Left, state.VAlign, s, state.Bg)
}
