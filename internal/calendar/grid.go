// Package calendar builds month grids and composes multi-month views.
package calendar

import (
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/disabled"
	"github.com/javiermolinar/calpick/internal/format"
)

// Cell is one day slot of a month grid.
type Cell struct {
	Date       time.Time
	Label      string // day label, empty for padding cells
	FullLabel  string // full date label, empty for padding cells
	InMonth    bool   // false for leading/trailing padding from neighbour months
	Selectable bool
}

// Week is one row of a month grid, ordered from the first day of week.
type Week struct {
	Number int // 0 when week numbers are not shown
	Days   [7]Cell
}

// Month is the grid of a single month.
type Month struct {
	First    time.Time
	Weeks    []Week
	Disabled disabled.DateSet // in-month dates that are not selectable
}

// MonthOptions configures BuildMonth.
type MonthOptions struct {
	Range          dateutil.DateRange
	Disabled       disabled.State
	FirstDayOfWeek time.Weekday
	ShowWeekNumber bool
	WeekNumberType WeekNumberType
	Formatters     *format.Formatters
}

// Cells returns the grid cells row by row, padding included.
func (m *Month) Cells() []Cell {
	out := make([]Cell, 0, len(m.Weeks)*7)
	for _, w := range m.Weeks {
		out = append(out, w.Days[:]...)
	}
	return out
}

// Cell returns the in-month cell for t.
func (m *Month) Cell(t time.Time) (Cell, bool) {
	if !dateutil.SameMonth(m.First, t) {
		return Cell{}, false
	}
	for _, w := range m.Weeks {
		for _, c := range w.Days {
			if c.InMonth && dateutil.Equal(c.Date, t) {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// Selectable reports whether t is a selectable day of a valid range and
// disabled state.
func Selectable(t time.Time, r dateutil.DateRange, d disabled.State) bool {
	return r.Contains(t) && !d.Disabled(t)
}

// BuildMonth builds the grid of the month containing anchor.
// It returns nil when the whole month lies outside opts.Range.
func BuildMonth(anchor time.Time, opts MonthOptions) *Month {
	first := dateutil.FirstOfMonth(dateutil.ToUTC(anchor))
	if !opts.Range.OverlapsMonth(first) {
		return nil
	}
	fmts := opts.Formatters
	if fmts == nil {
		fmts = format.Default()
	}
	fdow := normalizeWeekday(opts.FirstDayOfWeek)

	lead := (int(first.Weekday()) - int(fdow) + 7) % 7
	days := dateutil.DaysInMonth(first.Year(), first.Month())
	rows := (lead + days + 6) / 7

	m := &Month{
		First:    first,
		Weeks:    make([]Week, rows),
		Disabled: make(disabled.DateSet),
	}

	start := dateutil.AddDays(first, -lead)
	for row := 0; row < rows; row++ {
		rowStart := dateutil.AddDays(start, row*7)
		w := Week{}
		if opts.ShowWeekNumber {
			w.Number = WeekNumber(opts.WeekNumberType, rowStart)
		}
		for col := 0; col < 7; col++ {
			d := dateutil.AddDays(rowStart, col)
			if !dateutil.SameMonth(d, first) {
				w.Days[col] = Cell{Date: d}
				continue
			}
			ok := Selectable(d, opts.Range, opts.Disabled)
			if !ok {
				m.Disabled[dateutil.Key(d)] = struct{}{}
			}
			w.Days[col] = Cell{
				Date:       d,
				Label:      fmts.Day(d),
				FullLabel:  fmts.FullDate(d),
				InMonth:    true,
				Selectable: ok,
			}
		}
		m.Weeks[row] = w
	}
	return m
}

// Weekday is one column header.
type Weekday struct {
	Label string // long name, or the week label for the week-number column
	Value string // narrow name shown in the header
}

// Weekdays returns the column headers starting at firstDayOfWeek. When
// showWeekNumber is set the first header is the week-number column.
func Weekdays(firstDayOfWeek time.Weekday, showWeekNumber bool, weekLabel string, fmts *format.Formatters) []Weekday {
	if fmts == nil {
		fmts = format.Default()
	}
	out := make([]Weekday, 0, 8)
	if showWeekNumber {
		out = append(out, Weekday{Label: weekLabel, Value: weekLabel})
	}
	// 2017-01-01 was a Sunday.
	sunday := dateutil.Date(2017, time.January, 1)
	fdow := normalizeWeekday(firstDayOfWeek)
	for i := 0; i < 7; i++ {
		d := dateutil.AddDays(sunday, (int(fdow)+i)%7)
		out = append(out, Weekday{
			Label: fmts.LongWeekday(d),
			Value: fmts.NarrowWeekday(d),
		})
	}
	return out
}

func normalizeWeekday(d time.Weekday) time.Weekday {
	return time.Weekday(((int(d) % 7) + 7) % 7)
}
