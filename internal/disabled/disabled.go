// Package disabled resolves disabled-day and disabled-date configuration
// into immutable lookup sets.
package disabled

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

// listSeparator matches the separator of a comma-separated config list.
var listSeparator = regexp.MustCompile(`,\s*`)

// WeekdaySet is an immutable set of weekdays stored as a bitmask.
type WeekdaySet uint8

// allWeekdays has every weekday bit set.
const allWeekdays WeekdaySet = 1<<7 - 1

// Weekdays returns a set containing the given weekdays.
// Values outside Sunday..Saturday are ignored.
func Weekdays(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// With returns a copy of s that also contains d.
func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	if d < time.Sunday || d > time.Saturday {
		return s
	}
	return s | 1<<uint(d)
}

// Has reports whether d is in the set.
func (s WeekdaySet) Has(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}
	return s&(1<<uint(d)) != 0
}

// Full reports whether every weekday is in the set.
func (s WeekdaySet) Full() bool {
	return s&allWeekdays == allWeekdays
}

// Len returns the number of weekdays in the set.
func (s WeekdaySet) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// String returns the set as sorted comma-separated integers, e.g. "0,6".
func (s WeekdaySet) String() string {
	parts := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			parts = append(parts, strconv.Itoa(int(d)))
		}
	}
	return strings.Join(parts, ",")
}

// DateSet is a set of UTC-midnight timestamps (see dateutil.Key).
// A DateSet is never mutated after construction; use Union to combine sets.
type DateSet map[int64]struct{}

// NewDateSet returns a set containing the given dates.
func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[dateutil.Key(d)] = struct{}{}
	}
	return s
}

// Has reports whether t's calendar day is in the set. A nil set is empty.
func (s DateSet) Has(t time.Time) bool {
	_, ok := s[dateutil.Key(t)]
	return ok
}

// Len returns the number of dates in the set.
func (s DateSet) Len() int {
	return len(s)
}

// Union returns a new set holding the members of s and o.
func (s DateSet) Union(o DateSet) DateSet {
	out := make(DateSet, len(s)+len(o))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range o {
		out[k] = struct{}{}
	}
	return out
}

// Dates returns the members in ascending order.
func (s DateSet) Dates() []time.Time {
	keys := make([]int64, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]time.Time, len(keys))
	for i, k := range keys {
		out[i] = dateutil.FromKey(k)
	}
	return out
}

// String returns the members as sorted comma-separated YYYY-MM-DD dates.
func (s DateSet) String() string {
	dates := s.Dates()
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = dateutil.FormatDate(d)
	}
	return strings.Join(parts, ",")
}

// State is the resolved disabled configuration for one render cycle.
type State struct {
	Days  WeekdaySet
	Dates DateSet
}

// Resolve parses raw disabled-day and disabled-date lists into a State.
// Malformed entries are dropped; Resolve never fails.
func Resolve(days, dates string) State {
	return State{
		Days:  ParseDays(days),
		Dates: ParseDates(dates),
	}
}

// Disabled reports whether t is disabled by weekday or by date.
func (s State) Disabled(t time.Time) bool {
	return s.Days.Has(t.Weekday()) || s.Dates.Has(t)
}

// WithDates returns a copy of s whose date set also holds extra.
func (s State) WithDates(extra DateSet) State {
	return State{Days: s.Days, Dates: s.Dates.Union(extra)}
}

// String returns a canonical form of the state, stable across equal inputs.
func (s State) String() string {
	return "days=" + s.Days.String() + ";dates=" + s.Dates.String()
}

// ParseDays parses a comma-separated list of weekday numbers (0=Sunday).
// Entries that are not integers in 0..6 are dropped.
func ParseDays(s string) WeekdaySet {
	var set WeekdaySet
	for _, tok := range splitList(s) {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 || n > 6 {
			continue
		}
		set = set.With(time.Weekday(n))
	}
	return set
}

// ParseDates parses a comma-separated list of dates in YYYY-MM-DD (or UTC
// JSON) form. Entries that do not parse are dropped.
func ParseDates(s string) DateSet {
	set := make(DateSet)
	for _, tok := range splitList(s) {
		d, err := dateutil.ParseDate(tok)
		if err != nil {
			continue
		}
		set[dateutil.Key(d)] = struct{}{}
	}
	return set
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := listSeparator.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinDates formats dates as a comma-separated list accepted by ParseDates.
func JoinDates(dates []time.Time) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = dateutil.FormatDate(d)
	}
	return strings.Join(parts, ", ")
}
