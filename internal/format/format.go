// Package format provides locale-bound date label functions.
package format

import (
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed locales/*.toml
var embeddedLocales embed.FS

// ErrUnknownLocale is returned when a locale string is not a valid BCP 47 tag.
var ErrUnknownLocale = errors.New("unknown locale")

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// Func maps a date to a display string.
type Func func(time.Time) string

// Formatters is a bundle of locale-bound label functions.
// Calendar code treats it as an opaque capability.
type Formatters struct {
	Locale string

	Day           Func // day of month, e.g. "3"
	FullDate      Func // e.g. "Feb 3, 2020"
	LongWeekday   Func // e.g. "Monday"
	NarrowWeekday Func // e.g. "M"
	LongMonth     Func // e.g. "February"
	LongMonthYear Func // e.g. "February 2020"
	Date          Func // e.g. "Mon, Feb 3"
	Year          Func // e.g. "2020"
}

// table holds the strings of one embedded locale.
type table struct {
	Name           string   `toml:"name"`
	Months         []string `toml:"months"`
	MonthsShort    []string `toml:"months_short"`
	Weekdays       []string `toml:"weekdays"`
	WeekdaysShort  []string `toml:"weekdays_short"`
	WeekdaysNarrow []string `toml:"weekdays_narrow"`
	DayPattern     string   `toml:"day"`
	MonthYear      string   `toml:"month_year"`
	FullDate       string   `toml:"full_date"`
	Date           string   `toml:"date"`
	Year           string   `toml:"year"`
}

// supported lists the embedded locales; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Japanese,
}

var matcher = language.NewMatcher(supported)

// Available returns the base language codes with embedded tables.
func Available() []string {
	out := make([]string, len(supported))
	for i, t := range supported {
		base, _ := t.Base()
		out[i] = base.String()
	}
	return out
}

// New returns the formatters for locale. Locales without an embedded table
// fall back to English. Returns ErrUnknownLocale if locale does not parse.
func New(locale string) (*Formatters, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownLocale, locale, err)
	}

	_, idx, _ := matcher.Match(tag)
	base, _ := supported[idx].Base()
	t, err := loadTable(base.String())
	if err != nil {
		return nil, err
	}
	return t.formatters(locale, message.NewPrinter(tag)), nil
}

// Default returns the English formatters.
func Default() *Formatters {
	f, err := New(DefaultLocale)
	if err != nil {
		panic(fmt.Sprintf("format: embedded default locale: %v", err))
	}
	return f
}

func loadTable(name string) (*table, error) {
	data, err := embeddedLocales.ReadFile("locales/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading locale %q: %w", name, err)
	}
	var t table
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", name, err)
	}
	if len(t.Months) != 12 || len(t.MonthsShort) != 12 ||
		len(t.Weekdays) != 7 || len(t.WeekdaysShort) != 7 || len(t.WeekdaysNarrow) != 7 {
		return nil, fmt.Errorf("locale %q: incomplete name tables", name)
	}
	return &t, nil
}

func (t *table) formatters(locale string, p *message.Printer) *Formatters {
	fields := func(d time.Time) *strings.Replacer {
		d = d.UTC()
		return strings.NewReplacer(
			"{day}", p.Sprint(d.Day()),
			"{year}", strconv.Itoa(d.Year()),
			"{month}", t.Months[d.Month()-1],
			"{month_short}", t.MonthsShort[d.Month()-1],
			"{weekday}", t.Weekdays[d.Weekday()],
			"{weekday_short}", t.WeekdaysShort[d.Weekday()],
		)
	}
	pattern := func(p string) Func {
		return func(d time.Time) string {
			return fields(d).Replace(p)
		}
	}

	return &Formatters{
		Locale:        locale,
		Day:           pattern(t.DayPattern),
		FullDate:      pattern(t.FullDate),
		LongWeekday:   func(d time.Time) string { return t.Weekdays[d.UTC().Weekday()] },
		NarrowWeekday: func(d time.Time) string { return t.WeekdaysNarrow[d.UTC().Weekday()] },
		LongMonth:     func(d time.Time) string { return t.Months[d.UTC().Month()-1] },
		LongMonthYear: pattern(t.MonthYear),
		Date:          pattern(t.Date),
		Year:          pattern(t.Year),
	}
}
