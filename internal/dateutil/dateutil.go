// Package dateutil provides UTC calendar-day arithmetic and date parsing.
//
// Every date handled by calpick is a time.Time at 00:00:00 UTC. Building and
// comparing dates through UTC fields keeps the local timezone out of the math.
package dateutil

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvertedRange     = errors.New("max date must be on or after min date")
)

// Layout is the canonical date layout used for input and output.
const Layout = "2006-01-02"

// Default range bounds used when min or max is not configured.
var (
	DefaultMin = Date(1970, time.January, 1)
	DefaultMax = Date(2100, time.December, 31)
)

// jsonDatePattern matches the UTC JSON form, e.g. 2020-01-03T00:00:00.000Z.
var jsonDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?Z$`)

// Date returns the UTC midnight of the given calendar fields.
// Month and day may be out of range and roll over like a calendar:
// month 13 is January of the next year, day 0 is the last day of the
// previous month.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ToUTC returns the calendar day of t, read in t's own location, as a UTC date.
func ToUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Today returns the current calendar day as a UTC date.
func Today(now func() time.Time) time.Time {
	if now == nil {
		now = time.Now
	}
	return ToUTC(now())
}

// Key returns the millisecond timestamp of the UTC day containing t.
// Two dates are equal when their keys are equal.
func Key(t time.Time) int64 {
	return ToUTC(t.UTC()).UnixMilli()
}

// FromKey is the inverse of Key.
func FromKey(k int64) time.Time {
	return time.UnixMilli(k).UTC()
}

// Equal reports whether a and b fall on the same UTC calendar day.
func Equal(a, b time.Time) bool {
	return Key(a) == Key(b)
}

// SameMonth reports whether a and b share year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of next month is last day of this month.
	return Date(year, month+1, 0).Day()
}

// FirstOfMonth returns day 1 of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 1)
}

// LastOfMonth returns the last day of t's month.
func LastOfMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month()+1, 0)
}

// AddDays shifts t by n days.
func AddDays(t time.Time, n int) time.Time {
	return Date(t.Year(), t.Month(), t.Day()+n)
}

// AddMonths shifts t by n months. A day that does not exist in the target
// month is clamped to that month's last day, so Jan 31 + 1 month is the last
// day of February.
func AddMonths(t time.Time, n int) time.Time {
	return clampedDate(t.Year(), t.Month()+time.Month(n), t.Day())
}

// AddYears shifts t by n years, clamping Feb 29 to Feb 28 in common years.
func AddYears(t time.Time, n int) time.Time {
	return clampedDate(t.Year()+n, t.Month(), t.Day())
}

func clampedDate(year int, month time.Month, day int) time.Time {
	first := Date(year, month, 1)
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return Date(first.Year(), first.Month(), day)
}

// ParseDate parses a date in YYYY-MM-DD format, or the UTC JSON form
// YYYY-MM-DDTHH:MM:SS.sssZ, into a UTC date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if jsonDatePattern.MatchString(s) {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, ErrInvalidDateFormat
		}
		return ToUTC(t), nil
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseDateOr parses s, returning fallback when s is empty.
func ParseDateOr(s string, fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return ParseDate(s)
}

// FormatDate formats t as YYYY-MM-DD using its UTC fields.
func FormatDate(t time.Time) string {
	return t.UTC().Format(Layout)
}

// DateRange is an inclusive range of UTC dates.
type DateRange struct {
	Min time.Time
	Max time.Time
}

// NewDateRange creates a DateRange, normalizing both ends to UTC dates.
// Returns ErrInvertedRange if max is before min.
func NewDateRange(min, max time.Time) (DateRange, error) {
	r := DateRange{Min: ToUTC(min), Max: ToUTC(max)}
	if r.Inverted() {
		return DateRange{}, ErrInvertedRange
	}
	return r, nil
}

// ParseDateRange parses min and max in YYYY-MM-DD format.
// An empty min defaults to DefaultMin and an empty max to DefaultMax.
func ParseDateRange(min, max string) (DateRange, error) {
	lo, err := ParseDateOr(min, DefaultMin)
	if err != nil {
		return DateRange{}, err
	}
	hi, err := ParseDateOr(max, DefaultMax)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(lo, hi)
}

// DefaultRange returns the range [DefaultMin, DefaultMax].
func DefaultRange() DateRange {
	return DateRange{Min: DefaultMin, Max: DefaultMax}
}

// Inverted reports whether Max is before Min. An inverted range contains
// no dates.
func (r DateRange) Inverted() bool {
	return r.Max.Before(r.Min)
}

// Contains reports whether t lies within the range, inclusive.
func (r DateRange) Contains(t time.Time) bool {
	k := Key(t)
	return k >= Key(r.Min) && k <= Key(r.Max)
}

// IsMin reports whether t is exactly the lower bound.
func (r DateRange) IsMin(t time.Time) bool {
	return Key(t) == Key(r.Min)
}

// IsMax reports whether t is exactly the upper bound.
func (r DateRange) IsMax(t time.Time) bool {
	return Key(t) == Key(r.Max)
}

// Clamp returns t limited to the range. Inverted ranges return t unchanged.
func (r DateRange) Clamp(t time.Time) time.Time {
	if r.Inverted() {
		return t
	}
	switch {
	case Key(t) < Key(r.Min):
		return r.Min
	case Key(t) > Key(r.Max):
		return r.Max
	default:
		return t
	}
}

// OverlapsMonth reports whether any day of month m falls inside the range.
func (r DateRange) OverlapsMonth(m time.Time) bool {
	if r.Inverted() {
		return false
	}
	return !LastOfMonth(m).Before(r.Min) && !FirstOfMonth(m).After(r.Max)
}
