package calendar

import (
	"sync"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/disabled"
	"github.com/javiermolinar/calpick/internal/format"
)

// Options configures a multi-month composition.
type Options struct {
	Current        time.Time // anchor date; its month is the center calendar
	Count          int       // number of months; even counts are rounded up
	Range          dateutil.DateRange
	Disabled       disabled.State
	FirstDayOfWeek time.Weekday
	ShowWeekNumber bool
	WeekLabel      string
	WeekNumberType WeekNumberType
	Formatters     *format.Formatters
}

// Key identifies one composed month (or a whole composition).
// Equal inputs produce equal keys.
type Key struct {
	Locale         string
	Month          int64 // dateutil.Key of the month's first day or the anchor
	DisabledDays   string
	DisabledDates  string
	FirstDayOfWeek time.Weekday
	Min            int64
	Max            int64
	ShowWeekNumber bool
	WeekLabel      string
	WeekNumberType WeekNumberType
}

// Result is a composed multi-month view.
type Result struct {
	Weekdays  []Weekday
	Calendars []*Month         // nil entries are months outside the range
	Disabled  disabled.DateSet // union of the non-nil months' disabled dates
	Key       Key
}

// Stats describes one Compose call.
type Stats struct {
	Months  int
	Hits    int
	Misses  int
	Elapsed time.Duration
}

// Observer receives Stats after each Compose call.
type Observer func(Stats)

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithObserver registers an observer for compose timings.
func WithObserver(o Observer) ComposerOption {
	return func(c *Composer) {
		c.observer = o
	}
}

// WithClock overrides the clock used for Stats.Elapsed.
func WithClock(now func() time.Time) ComposerOption {
	return func(c *Composer) {
		c.now = now
	}
}

// Composer builds consecutive month grids and memoizes each month by Key.
// The cache is never evicted.
type Composer struct {
	mu       sync.Mutex
	cache    map[Key]*Month
	observer Observer
	now      func() time.Time
}

// NewComposer creates a Composer with an empty cache.
func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{
		cache: make(map[Key]*Month),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CacheLen returns the number of memoized months.
func (c *Composer) CacheLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// CalendarCount returns the effective number of months for count: always odd
// and at least 1.
func CalendarCount(count int) int {
	if count < 1 {
		return 1
	}
	if count%2 == 0 {
		return count + 1
	}
	return count
}

// Offsets returns the month offsets, relative to the anchor month, for count.
func Offsets(count int) []int {
	n := CalendarCount(count)
	out := make([]int, n)
	for i := range out {
		out[i] = i - n/2
	}
	return out
}

// Compose builds the months around opts.Current.
func (c *Composer) Compose(opts Options) Result {
	started := c.now()
	if opts.Formatters == nil {
		opts.Formatters = format.Default()
	}
	current := dateutil.ToUTC(opts.Current)
	anchor := dateutil.FirstOfMonth(current)

	monthOpts := MonthOptions{
		Range:          opts.Range,
		Disabled:       opts.Disabled,
		FirstDayOfWeek: opts.FirstDayOfWeek,
		ShowWeekNumber: opts.ShowWeekNumber,
		WeekNumberType: opts.WeekNumberType,
		Formatters:     opts.Formatters,
	}

	var stats Stats
	offsets := Offsets(opts.Count)
	calendars := make([]*Month, len(offsets))
	merged := disabled.DateSet{}

	for i, off := range offsets {
		first := dateutil.Date(anchor.Year(), anchor.Month()+time.Month(off), 1)
		m, hit := c.month(keyFor(opts, first), first, monthOpts)
		if hit {
			stats.Hits++
		} else {
			stats.Misses++
		}
		calendars[i] = m
		if m != nil {
			merged = merged.Union(m.Disabled)
		}
	}

	stats.Months = len(calendars)
	stats.Elapsed = c.now().Sub(started)
	if c.observer != nil {
		c.observer(stats)
	}

	return Result{
		Weekdays:  Weekdays(opts.FirstDayOfWeek, opts.ShowWeekNumber, opts.WeekLabel, opts.Formatters),
		Calendars: calendars,
		Disabled:  merged,
		Key:       keyFor(opts, current),
	}
}

// month returns the cached grid for key, building it on a miss.
// Months outside the range are cached as nil.
func (c *Composer) month(key Key, first time.Time, opts MonthOptions) (*Month, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.cache[key]; ok {
		return m, true
	}
	m := BuildMonth(first, opts)
	c.cache[key] = m
	return m, false
}

func keyFor(opts Options, date time.Time) Key {
	return Key{
		Locale:         opts.Formatters.Locale,
		Month:          dateutil.Key(date),
		DisabledDays:   opts.Disabled.Days.String(),
		DisabledDates:  opts.Disabled.Dates.String(),
		FirstDayOfWeek: opts.FirstDayOfWeek,
		Min:            dateutil.Key(opts.Range.Min),
		Max:            dateutil.Key(opts.Range.Max),
		ShowWeekNumber: opts.ShowWeekNumber,
		WeekLabel:      opts.WeekLabel,
		WeekNumberType: opts.WeekNumberType,
	}
}
