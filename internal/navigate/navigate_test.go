package navigate

import (
	"testing"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/disabled"
)

func day(y int, m time.Month, d int) time.Time {
	return dateutil.Date(y, m, d)
}

func wideRange() dateutil.DateRange {
	return dateutil.DateRange{Min: day(2000, time.January, 1), Max: day(2030, time.December, 31)}
}

func TestNext_KeyDeltas(t *testing.T) {
	focused := day(2020, time.February, 2)
	tests := []struct {
		name string
		cmd  Command
		want time.Time
	}{
		{"arrow down", Command{Key: ArrowDown}, day(2020, time.February, 9)},
		{"arrow left", Command{Key: ArrowLeft}, day(2020, time.February, 1)},
		{"arrow right", Command{Key: ArrowRight}, day(2020, time.February, 3)},
		{"arrow up", Command{Key: ArrowUp}, day(2020, time.January, 26)},
		{"end", Command{Key: End}, day(2020, time.February, 29)},
		{"home", Command{Key: Home}, day(2020, time.February, 1)},
		{"page down", Command{Key: PageDown}, day(2020, time.March, 2)},
		{"page up", Command{Key: PageUp}, day(2020, time.January, 2)},
		{"alt page down", Command{Key: PageDown, Secondary: true}, day(2021, time.February, 2)},
		{"alt page up", Command{Key: PageUp, Secondary: true}, day(2019, time.February, 2)},
		{"enter", Command{Key: Enter}, focused},
		{"space", Command{Key: Space}, focused},
		{"tab", Command{Key: Tab}, focused},
		{"unknown", Command{Key: KeyNone}, focused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(Input{
				Focused:  focused,
				Selected: focused,
				Command:  tt.cmd,
				Range:    wideRange(),
			})
			if !got.Date.Equal(tt.want) {
				t.Errorf("got %s, want %s", dateutil.FormatDate(got.Date), dateutil.FormatDate(tt.want))
			}
			if !got.Selectable {
				t.Error("expected a selectable date")
			}
		})
	}
}

func TestNext_Commit(t *testing.T) {
	focused := day(2020, time.February, 2)
	tests := []struct {
		key  Key
		want bool
	}{
		{Enter, true},
		{Space, true},
		{Tab, false},
		{ArrowRight, false},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got := Next(Input{Focused: focused, Selected: focused, Command: Command{Key: tt.key}, Range: wideRange()})
			if got.Commit != tt.want {
				t.Errorf("Commit = %v, want %v", got.Commit, tt.want)
			}
		})
	}
}

func TestNext_MonthLengthEdges(t *testing.T) {
	tests := []struct {
		name    string
		focused time.Time
		cmd     Command
		want    time.Time
	}{
		{"jan 31 pages into leap february", day(2020, time.January, 31), Command{Key: PageDown}, day(2020, time.February, 29)},
		{"mar 31 pages back to leap february", day(2020, time.March, 31), Command{Key: PageUp}, day(2020, time.February, 29)},
		{"feb 29 pages a year forward", day(2020, time.February, 29), Command{Key: PageDown, Secondary: true}, day(2021, time.February, 28)},
		{"feb 29 pages a year back", day(2020, time.February, 29), Command{Key: PageUp, Secondary: true}, day(2019, time.February, 28)},
		{"end of non-leap february", day(2021, time.February, 10), Command{Key: End}, day(2021, time.February, 28)},
		{"right across a year", day(2020, time.December, 31), Command{Key: ArrowRight}, day(2021, time.January, 1)},
		{"up across a year", day(2021, time.January, 3), Command{Key: ArrowUp}, day(2020, time.December, 27)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(Input{Focused: tt.focused, Selected: tt.focused, Command: tt.cmd, Range: wideRange()})
			if !got.Date.Equal(tt.want) {
				t.Errorf("got %s, want %s", dateutil.FormatDate(got.Date), dateutil.FormatDate(tt.want))
			}
		})
	}
}

func TestNext_ResyncToDisplayedMonth(t *testing.T) {
	got := Next(Input{
		Focused:  day(2020, time.February, 2),
		Selected: day(2020, time.March, 3),
		Command:  Command{Key: ArrowDown},
		Range:    wideRange(),
	})
	if !got.Date.Equal(day(2020, time.March, 1)) {
		t.Errorf("got %s, want 2020-03-01", dateutil.FormatDate(got.Date))
	}

	// A disabled first day is skipped forward for forward keys.
	got = Next(Input{
		Focused:  day(2020, time.February, 2),
		Selected: day(2020, time.March, 3),
		Command:  Command{Key: ArrowRight},
		Disabled: disabled.Resolve("", "2020-03-01"),
		Range:    wideRange(),
	})
	if !got.Date.Equal(day(2020, time.March, 2)) {
		t.Errorf("got %s, want 2020-03-02", dateutil.FormatDate(got.Date))
	}
}

func TestNext_CommitKeysDuringResync(t *testing.T) {
	focused := day(2020, time.February, 3)
	for _, k := range []Key{Enter, Space} {
		t.Run(k.String(), func(t *testing.T) {
			got := Next(Input{
				Focused:  focused,
				Selected: day(2020, time.March, 1),
				Command:  Command{Key: k},
				Disabled: disabled.Resolve("0", ""),
				Range:    wideRange(),
			})
			if got.Commit {
				t.Error("a resync must not commit")
			}
			if !got.Date.Equal(day(2020, time.March, 2)) || !got.Selectable {
				t.Errorf("got %s, want 2020-03-02", dateutil.FormatDate(got.Date))
			}

			// Once focus is in the displayed month the same key commits in place.
			again := Next(Input{Focused: got.Date, Selected: got.Date, Command: Command{Key: k}, Range: wideRange()})
			if !again.Commit || !again.Date.Equal(got.Date) {
				t.Errorf("second press = %+v, want commit of %s", again, dateutil.FormatDate(got.Date))
			}
		})
	}
}

func TestNext_ZeroSelectedUsesFocused(t *testing.T) {
	got := Next(Input{Focused: day(2020, time.February, 2), Command: Command{Key: ArrowRight}, Range: wideRange()})
	if !got.Date.Equal(day(2020, time.February, 3)) {
		t.Errorf("got %s, want 2020-02-03", dateutil.FormatDate(got.Date))
	}
}

func TestNext_BoundaryShortCircuit(t *testing.T) {
	r := dateutil.DateRange{Min: day(2020, time.January, 2), Max: day(2020, time.March, 20)}
	tests := []struct {
		name    string
		focused time.Time
		key     Key
	}{
		{"left at min", r.Min, ArrowLeft},
		{"up at min", r.Min, ArrowUp},
		{"page up at min", r.Min, PageUp},
		{"home at min", r.Min, Home},
		{"right at max", r.Max, ArrowRight},
		{"down at max", r.Max, ArrowDown},
		{"page down at max", r.Max, PageDown},
		{"end at max", r.Max, End},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(Input{Focused: tt.focused, Selected: tt.focused, Command: Command{Key: tt.key}, Range: r})
			if !got.Date.Equal(tt.focused) {
				t.Errorf("got %s, want %s", dateutil.FormatDate(got.Date), dateutil.FormatDate(tt.focused))
			}
			if !got.Selectable {
				t.Error("boundary should stay selectable")
			}
		})
	}
}

func TestNext_RangeClamp(t *testing.T) {
	r := dateutil.DateRange{Min: day(2020, time.February, 5), Max: day(2020, time.February, 20)}
	tests := []struct {
		name     string
		focused  time.Time
		cmd      Command
		disabled disabled.State
		want     time.Time
	}{
		{"up below min clamps to min", day(2020, time.February, 6), Command{Key: ArrowUp}, disabled.State{}, r.Min},
		{"page up below min clamps to min", day(2020, time.February, 10), Command{Key: PageUp}, disabled.State{}, r.Min},
		{"down above max clamps to max", day(2020, time.February, 18), Command{Key: ArrowDown}, disabled.State{}, r.Max},
		{"alt page down above max clamps to max", day(2020, time.February, 10), Command{Key: PageDown, Secondary: true}, disabled.State{}, r.Max},
		{"end clamps to max", day(2020, time.February, 10), Command{Key: End}, disabled.State{}, r.Max},
		{"home clamps to min", day(2020, time.February, 10), Command{Key: Home}, disabled.State{}, r.Min},
		{
			"disabled max scans backward",
			day(2020, time.February, 18), Command{Key: ArrowDown},
			disabled.Resolve("", "2020-02-20,2020-02-19"),
			day(2020, time.February, 18),
		},
		{
			"disabled min scans forward",
			day(2020, time.February, 10), Command{Key: PageUp},
			disabled.Resolve("", "2020-02-05"),
			day(2020, time.February, 6),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(Input{
				Focused:  tt.focused,
				Selected: tt.focused,
				Command:  tt.cmd,
				Disabled: tt.disabled,
				Range:    r,
			})
			if !got.Date.Equal(tt.want) {
				t.Errorf("got %s, want %s", dateutil.FormatDate(got.Date), dateutil.FormatDate(tt.want))
			}
			if !got.Selectable {
				t.Error("expected a selectable date")
			}
		})
	}
}

func TestNext_SkipsDisabled(t *testing.T) {
	weekends := disabled.Resolve("0,6", "")
	tests := []struct {
		name     string
		focused  time.Time
		key      Key
		disabled disabled.State
		want     time.Time
	}{
		{"right over a weekend", day(2020, time.February, 7), ArrowRight, weekends, day(2020, time.February, 10)},
		{"left over a weekend", day(2020, time.February, 10), ArrowLeft, weekends, day(2020, time.February, 7)},
		{"up searches forward", day(2020, time.February, 12), ArrowUp, disabled.Resolve("", "2020-02-05"), day(2020, time.February, 6)},
		{"down searches backward", day(2020, time.February, 5), ArrowDown, disabled.Resolve("", "2020-02-12"), day(2020, time.February, 11)},
		{"home searches forward", day(2020, time.February, 20), Home, disabled.Resolve("6", ""), day(2020, time.February, 2)},
		{"end searches backward", day(2020, time.February, 20), End, disabled.Resolve("6", ""), day(2020, time.February, 28)},
		{"page down searches backward", day(2020, time.February, 7), PageDown, disabled.Resolve("6", ""), day(2020, time.March, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(Input{
				Focused:  tt.focused,
				Selected: tt.focused,
				Command:  Command{Key: tt.key},
				Disabled: tt.disabled,
				Range:    wideRange(),
			})
			if !got.Date.Equal(tt.want) {
				t.Errorf("got %s, want %s", dateutil.FormatDate(got.Date), dateutil.FormatDate(tt.want))
			}
			if tt.disabled.Disabled(got.Date) {
				t.Errorf("landed on disabled date %s", dateutil.FormatDate(got.Date))
			}
		})
	}
}

func TestNext_DisabledMinStartsForwardScan(t *testing.T) {
	// Sat Feb 8 is min; the weekend is skipped towards Monday.
	r := dateutil.DateRange{Min: day(2020, time.February, 8), Max: day(2020, time.February, 29)}
	got := Next(Input{
		Focused:  day(2020, time.February, 10),
		Selected: day(2020, time.February, 10),
		Command:  Command{Key: ArrowUp},
		Disabled: disabled.Resolve("0,6", ""),
		Range:    r,
	})
	if !got.Date.Equal(day(2020, time.February, 10)) || !got.Selectable {
		t.Errorf("got %+v, want selectable 2020-02-10", got)
	}
}

func TestNext_FullyDisabledRangeTerminates(t *testing.T) {
	r := dateutil.DateRange{Min: day(2020, time.February, 8), Max: day(2020, time.February, 9)}
	tests := []struct {
		name     string
		key      Key
		disabled disabled.State
	}{
		{"weekend range right", ArrowRight, disabled.Resolve("0,6", "")},
		{"weekend range left", ArrowLeft, disabled.Resolve("0,6", "")},
		{"every date disabled", ArrowDown, disabled.Resolve("", "2020-02-08,2020-02-09")},
		{"every weekday disabled", PageUp, disabled.Resolve("0,1,2,3,4,5,6", "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(Input{
				Focused:  r.Min,
				Selected: r.Min,
				Command:  Command{Key: tt.key},
				Disabled: tt.disabled,
				Range:    r,
			})
			if got.Selectable {
				t.Errorf("got selectable %s, want none", dateutil.FormatDate(got.Date))
			}
			if !r.Contains(got.Date) {
				t.Errorf("got %s outside the range", dateutil.FormatDate(got.Date))
			}
		})
	}
}

func TestNext_SingleDayRange(t *testing.T) {
	r := dateutil.DateRange{Min: day(2020, time.February, 8), Max: day(2020, time.February, 8)}
	got := Next(Input{Focused: r.Min, Selected: r.Min, Command: Command{Key: Tab}, Disabled: disabled.Resolve("6", ""), Range: r})
	if got.Selectable || !got.Date.Equal(r.Min) {
		t.Errorf("got %+v, want unselectable 2020-02-08", got)
	}
}

func TestNext_InvertedRange(t *testing.T) {
	focused := day(2020, time.February, 10)
	got := Next(Input{
		Focused:  focused,
		Selected: focused,
		Command:  Command{Key: ArrowRight},
		Range:    dateutil.DateRange{Min: day(2020, time.March, 1), Max: day(2020, time.January, 1)},
	})
	if got.Selectable || !got.Date.Equal(focused) {
		t.Errorf("got %+v, want unselectable focused date", got)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"ArrowUp", ArrowUp},
		{"ArrowDown", ArrowDown},
		{"Left", ArrowLeft},
		{"right", ArrowRight},
		{"PageUp", PageUp},
		{"pgdown", PageDown},
		{"Home", Home},
		{"End", End},
		{"Enter", Enter},
		{" ", Space},
		{"Spacebar", Space},
		{"Tab", Tab},
		{"Escape", KeyNone},
		{"", KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseKey(tt.in); got != tt.want {
				t.Errorf("ParseKey(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	if got := (Command{Key: PageDown, Secondary: true}).String(); got != "alt+PageDown" {
		t.Errorf("got %q", got)
	}
	if got := (Command{Key: Home}).String(); got != "Home" {
		t.Errorf("got %q", got)
	}
	if got := Key(99).String(); got != "None" {
		t.Errorf("got %q", got)
	}
}
