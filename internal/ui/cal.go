package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/format"
)

const (
	calCellWidth = 3
	calMonthGap  = 2
	calMaxRows   = 6
)

func (a *App) calCmd() *cobra.Command {
	var flags pickerFlags

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Print month calendars",
		Long: `Print the months around a date, laid out side by side to fit the terminal.

Selectable days are plain, disabled days are dimmed, today is highlighted
and --date is shown in reverse video.

Example:
  calpick cal --date 2020-02-14 --count 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.noColor {
				DisableColor()
			}
			cfg, initial, err := a.resolve(flags)
			if err != nil {
				return err
			}
			return printCal(cmd.OutOrStdout(), cfg, calOptions{
				Anchor:   initial,
				Selected: initial,
				Today:    dateutil.Today(a.now),
				Width:    termWidth(),
			})
		},
	}
	flags.register(cmd)
	return cmd
}

// calOptions configures printCal.
type calOptions struct {
	Anchor   time.Time // month in the middle; zero means Today
	Selected time.Time // highlighted date, may be zero
	Today    time.Time
	Width    int
}

func printCal(w io.Writer, cfg *config.Config, opts calOptions) error {
	r, err := cfg.Range()
	if err != nil {
		return fmt.Errorf("invalid range: %w", err)
	}
	fmts, err := format.New(cfg.Picker.Locale)
	if err != nil {
		return err
	}
	anchor := opts.Anchor
	if anchor.IsZero() {
		anchor = opts.Today
	}

	res := calendar.NewComposer().Compose(calendar.Options{
		Current:        anchor,
		Count:          cfg.Picker.CalendarCount,
		Range:          r,
		Disabled:       disabledState(cfg, r),
		FirstDayOfWeek: cfg.FirstDayOfWeek(),
		ShowWeekNumber: cfg.Picker.ShowWeekNumber,
		WeekLabel:      cfg.Picker.WeekLabel,
		WeekNumberType: cfg.WeekNumberType(),
		Formatters:     fmts,
	})

	first := dateutil.FirstOfMonth(dateutil.ToUTC(anchor))
	offsets := calendar.Offsets(cfg.Picker.CalendarCount)
	blocks := make([][]string, len(res.Calendars))
	for i, m := range res.Calendars {
		month := dateutil.AddMonths(first, offsets[i])
		blocks[i] = calBlock(m, month, res.Weekdays, fmts, opts)
	}

	for _, line := range layoutBlocks(blocks, len(res.Weekdays)*calCellWidth, opts.Width) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// calBlock renders one month as fixed-height lines of equal visible width.
func calBlock(m *calendar.Month, first time.Time, weekdays []calendar.Weekday, fmts *format.Formatters, opts calOptions) []string {
	width := len(weekdays) * calCellWidth
	lines := make([]string, 0, calMaxRows+2)
	lines = append(lines, formatHeader(center(fmts.LongMonthYear(first), width)))

	var header strings.Builder
	for _, wd := range weekdays {
		header.WriteString(padLeft(wd.Value, calCellWidth-1) + " ")
	}
	lines = append(lines, formatMuted(header.String()))

	blank := strings.Repeat(" ", width)
	if m == nil {
		lines = append(lines, formatMuted(center("out of range", width)))
	} else {
		for _, week := range m.Weeks {
			var row strings.Builder
			if len(weekdays) == 8 {
				row.WriteString(formatMuted(padLeft(strconv.Itoa(week.Number), calCellWidth-1)) + " ")
			}
			for _, c := range week.Days {
				row.WriteString(calCell(c, opts) + " ")
			}
			lines = append(lines, row.String())
		}
	}
	for len(lines) < calMaxRows+2 {
		lines = append(lines, blank)
	}
	return lines
}

func calCell(c calendar.Cell, opts calOptions) string {
	label := padLeft(c.Label, calCellWidth-1)
	switch {
	case !c.InMonth:
		return label
	case !opts.Selected.IsZero() && dateutil.Equal(c.Date, opts.Selected):
		return formatSelected(label)
	case !c.Selectable:
		return formatDisabled(label)
	case dateutil.Equal(c.Date, opts.Today):
		return formatToday(label)
	default:
		return label
	}
}

// layoutBlocks places blocks side by side, wrapping to a new band of months
// when the next one would not fit in width.
func layoutBlocks(blocks [][]string, blockWidth, width int) []string {
	perRow := (width + calMonthGap) / (blockWidth + calMonthGap)
	if perRow < 1 {
		perRow = 1
	}
	gap := strings.Repeat(" ", calMonthGap)

	var out []string
	for start := 0; start < len(blocks); start += perRow {
		end := min(start+perRow, len(blocks))
		if start > 0 {
			out = append(out, "")
		}
		for line := 0; line < calMaxRows+2; line++ {
			parts := make([]string, 0, end-start)
			for _, b := range blocks[start:end] {
				parts = append(parts, padRight(b[line], blockWidth))
			}
			out = append(out, strings.Join(parts, gap))
		}
	}
	return out
}
