package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/tui/view"
)

const (
	monthGap  = 2
	maxWeeks  = 6
	headerH   = 2
	outOfView = "out of range"
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		EmptyPlaceholder: "Loading...",
	})
}

func (m Model) renderAppContent() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	footer := m.renderFooter()
	footerH := lipgloss.Height(footer)
	bodyH := m.height - headerH - footerH
	if bodyH < 1 {
		return "Terminal too small"
	}

	header := m.placeBox(m.width, headerH, lipgloss.Left, lipgloss.Top, m.renderHeader())
	body := m.placeBox(m.width, bodyH, lipgloss.Center, lipgloss.Top, m.renderCalendars(m.width))

	content := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, hAlign, vAlign lipgloss.Position, content string) string {
	return view.PlaceBox(w, h, hAlign, vAlign, content, m.styles.colorBg)
}

func (m Model) renderHeader() string {
	label := m.fmts.FullDate(m.focused)
	if !m.disabled().Disabled(m.focused) && m.rng.Contains(m.focused) {
		label = m.styles.HeaderStyle.Render(label)
	} else {
		label = m.styles.ErrorStyle.Render(label + " (unavailable)")
	}
	line := m.styles.MonthTitleStyle.Render("calpick") + m.styles.StatusStyle.Render("  focus: ") + label
	if !m.value.IsZero() {
		line += m.styles.StatusStyle.Render("  value: " + dateutil.FormatDate(m.value))
	}
	return line
}

// compose builds the grids around the visible month.
func (m Model) compose() calendar.Result {
	return m.composer.Compose(calendar.Options{
		Current:        m.selected,
		Count:          m.config.Picker.CalendarCount,
		Range:          m.rng,
		Disabled:       m.disabled(),
		FirstDayOfWeek: m.config.FirstDayOfWeek(),
		ShowWeekNumber: m.config.Picker.ShowWeekNumber,
		WeekLabel:      m.config.Picker.WeekLabel,
		WeekNumberType: m.config.WeekNumberType(),
		Formatters:     m.fmts,
	})
}

// renderCalendars lays out as many months as fit in width, centered on the
// visible month.
func (m Model) renderCalendars(width int) string {
	res := m.compose()
	offsets := calendar.Offsets(m.config.Picker.CalendarCount)
	anchor := dateutil.FirstOfMonth(m.selected)

	blocks := make([]string, len(res.Calendars))
	for i, month := range res.Calendars {
		first := dateutil.AddMonths(anchor, offsets[i])
		blocks[i] = m.renderMonth(month, first, res.Weekdays)
	}

	blockW := len(res.Weekdays) * cellWidth
	fit := (width + monthGap) / (blockW + monthGap)
	start, end := view.Window(len(blocks), len(blocks)/2, max(1, fit))
	out, _ := view.JoinColumns(blocks[start:end], width, monthGap, m.styles.colorBg)
	return out
}

// renderMonth renders one month block. A nil month renders as a placeholder
// of the same size.
func (m Model) renderMonth(month *calendar.Month, first time.Time, weekdays []calendar.Weekday) string {
	width := len(weekdays) * cellWidth
	lines := make([]string, 0, maxWeeks+2)
	lines = append(lines, m.styles.MonthTitleStyle.Width(width).Align(lipgloss.Center).Render(m.fmts.LongMonthYear(first)))

	cols := make([]string, len(weekdays))
	for i, wd := range weekdays {
		style := m.styles.WeekdayStyle
		if m.config.Picker.ShowWeekNumber && i == 0 {
			style = m.styles.WeekNumberStyle
		}
		cols[i] = style.Render(wd.Value + " ")
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cols...))

	blank := lipgloss.NewStyle().Background(m.styles.colorBg).Width(width).Render("")
	if month == nil {
		lines = append(lines, m.styles.StatusStyle.Width(width).Align(lipgloss.Center).Render(outOfView))
		for len(lines) < maxWeeks+2 {
			lines = append(lines, blank)
		}
		return strings.Join(lines, "\n")
	}

	today := dateutil.Today(m.now)
	for _, w := range month.Weeks {
		row := make([]string, 0, 8)
		if m.config.Picker.ShowWeekNumber {
			row = append(row, m.styles.WeekNumberStyle.Render(strconv.Itoa(w.Number)+" "))
		}
		for _, c := range w.Days {
			row = append(row, m.cellStyle(c, today).Render(c.Label+" "))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	for len(lines) < maxWeeks+2 {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func (m Model) cellStyle(c calendar.Cell, today time.Time) lipgloss.Style {
	switch {
	case !c.InMonth:
		return m.styles.PaddingStyle
	case dateutil.Equal(c.Date, m.focused):
		if c.Selectable {
			return m.styles.FocusStyle
		}
		return m.styles.FocusDisabledStyle
	case !m.value.IsZero() && dateutil.Equal(c.Date, m.value):
		return m.styles.SelectedStyle
	case !c.Selectable:
		return m.styles.DisabledStyle
	case dateutil.Equal(c.Date, today):
		return m.styles.TodayStyle
	default:
		return m.styles.DayStyle
	}
}

func (m Model) renderFooter() string {
	status := " "
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.statusErr {
			style = m.styles.ErrorStyle
		}
		status = style.Render(m.statusMsg)
	}
	helpLine := m.help.View(m.keys)

	state := view.FooterViewState{
		InnerW:     m.width,
		PromptLine: m.prompt.View(),
		ShowPrompt: m.mode == ModePrompt,
		StatusLine: status,
		HelpLine:   helpLine,
		VAlign:     lipgloss.Bottom,
		Bg:         m.styles.colorBg,
	}
	state.FooterH = 1 + lipgloss.Height(helpLine)
	if state.ShowPrompt {
		state.FooterH++
	}
	return view.RenderFooter(state)
}
