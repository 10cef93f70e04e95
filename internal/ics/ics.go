// Package ics turns iCalendar files into disabled dates. Every day an event
// covers, including each expanded recurrence, becomes a blackout date.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/disabled"
	"github.com/javiermolinar/calpick/internal/log"
)

const (
	// maxOccurrences caps the expansion of a single recurring event.
	maxOccurrences = 5000
	// maxScanned caps the instances walked per event, including those
	// before the range.
	maxScanned = 100 * maxOccurrences
)

// ErrEmpty is returned for an empty calendar payload.
var ErrEmpty = errors.New("empty ICS body")

// Event is the part of a VEVENT that matters for blackouts.
type Event struct {
	UID     string
	Summary string
	Start   time.Time
	End     time.Time // exclusive
	AllDay  bool
	RRule   string
	ExDates []time.Time
}

// Load reads and parses the calendar at path.
func Load(path string) ([]Event, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calendar: %w", err)
	}
	events, err := Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return events, nil
}

// Parse reads the VEVENTs of a calendar. Events that cannot be read are
// logged and skipped.
func Parse(r io.Reader) ([]Event, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmpty
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var events []Event
	for _, ve := range cal.Events() {
		ev, err := parseEvent(ve)
		if err != nil {
			log.Error("ics event skipped", err, "uid", ev.UID)
			continue
		}
		events = append(events, ev)
	}
	log.Debug("ics parsed", "events", len(events))
	return events, nil
}

func parseEvent(ve *ical.VEvent) (Event, error) {
	var ev Event
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		ev.UID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Summary = p.Value
	}

	start := ve.GetProperty(ical.ComponentPropertyDtStart)
	if start == nil || strings.TrimSpace(start.Value) == "" {
		return ev, errors.New("missing DTSTART")
	}
	ev.AllDay = isDateValue(start)

	if ev.AllDay {
		t, err := parseDate(start.Value)
		if err != nil {
			return ev, fmt.Errorf("DTSTART: %w", err)
		}
		ev.Start = t
		ev.End = dateutil.AddDays(t, 1)
		if end := ve.GetProperty(ical.ComponentPropertyDtEnd); end != nil {
			if t, err := parseDate(end.Value); err == nil && t.After(ev.Start) {
				ev.End = t
			}
		}
	} else {
		t, err := ve.GetStartAt()
		if err != nil {
			return ev, fmt.Errorf("DTSTART: %w", err)
		}
		ev.Start = t
		ev.End = t
		if end, err := ve.GetEndAt(); err == nil && end.After(t) {
			ev.End = end
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		ev.RRule = p.Value
	}
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseTime(part, ev.AllDay, ev.Start.Location()); err == nil {
				ev.ExDates = append(ev.ExDates, t)
			}
		}
	}
	return ev, nil
}

// isDateValue reports a VALUE=DATE property or a bare YYYYMMDD value.
func isDateValue(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("20060102", strings.TrimSpace(v))
}

func parseTime(v string, allDay bool, loc *time.Location) (time.Time, error) {
	switch {
	case allDay || !strings.Contains(v, "T"):
		t, err := parseDate(v)
		if err != nil || allDay {
			return t, err
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	default:
		return time.ParseInLocation("20060102T150405", v, loc)
	}
}

// Dates returns every day within r that one of events covers.
func Dates(events []Event, r dateutil.DateRange) disabled.DateSet {
	var out []time.Time
	if r.Inverted() {
		return disabled.NewDateSet()
	}
	for _, ev := range events {
		for _, occ := range occurrences(ev, r) {
			out = append(out, days(occ, ev.End.Sub(ev.Start), r)...)
		}
	}
	return disabled.NewDateSet(out...)
}

// LoadDisabled loads the calendar at path and returns its blackout dates
// within r.
func LoadDisabled(path string, r dateutil.DateRange) (disabled.DateSet, error) {
	events, err := Load(path)
	if err != nil {
		return nil, err
	}
	set := Dates(events, r)
	log.Info("ics blackout loaded", "path", path, "events", len(events), "dates", set.Len())
	return set, nil
}

// occurrences returns the start of each instance of ev that may touch r.
func occurrences(ev Event, r dateutil.DateRange) []time.Time {
	if ev.RRule == "" {
		return []time.Time{ev.Start}
	}

	rule, err := rrule.StrToRRule(ev.RRule)
	if err != nil {
		log.Error("ics rrule skipped", err, "uid", ev.UID, "rrule", ev.RRule)
		return []time.Time{ev.Start}
	}
	rule.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(rule)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	// Widen the window by the event length so instances that start before
	// min but run into the range are kept.
	loc := ev.Start.Location()
	from := r.Min.Add(-ev.End.Sub(ev.Start)).In(loc)
	to := dateutil.AddDays(r.Max, 1).In(loc)

	var times []time.Time
	next := set.Iterator()
	for scanned := 0; ; scanned++ {
		t, ok := next()
		if !ok || t.After(to) {
			return times
		}
		if scanned == maxScanned || len(times) == maxOccurrences {
			log.Error("ics rrule truncated", errors.New("max occurrences reached"),
				"uid", ev.UID, "kept", len(times), "scanned", scanned)
			return times
		}
		if t.Before(from) {
			continue
		}
		times = append(times, t)
	}
}

// days lists the dates within r covered by an instance starting at start.
// The end is exclusive, so an event ending at midnight does not cover the
// following day.
func days(start time.Time, dur time.Duration, r dateutil.DateRange) []time.Time {
	first := dateutil.ToUTC(start)
	last := first
	if dur > 0 {
		end := start.Add(dur)
		last = dateutil.ToUTC(end)
		if end.Equal(time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())) {
			last = dateutil.AddDays(last, -1)
		}
	}
	if first.Before(r.Min) {
		first = r.Min
	}
	if last.After(r.Max) {
		last = r.Max
	}

	var out []time.Time
	for d := first; !d.After(last); d = dateutil.AddDays(d, 1) {
		out = append(out, d)
	}
	return out
}
