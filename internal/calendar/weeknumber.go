package calendar

import (
	"fmt"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

// WeekNumberType selects how week numbers are counted.
type WeekNumberType string

const (
	// FirstFourDayWeek counts week 1 as the first week with at least four
	// days in the new year. With a Monday start this is ISO-8601.
	FirstFourDayWeek WeekNumberType = "first-4-day-week"
	// FirstDayOfYear counts week 1 as the week containing January 1.
	FirstDayOfYear WeekNumberType = "first-day-of-year"
	// FirstFullWeek counts week 1 as the first week starting in the new year.
	FirstFullWeek WeekNumberType = "first-full-week"
)

// WeekNumberTypes lists the supported week number types.
func WeekNumberTypes() []WeekNumberType {
	return []WeekNumberType{FirstFourDayWeek, FirstDayOfYear, FirstFullWeek}
}

// ParseWeekNumberType validates s. Empty selects FirstFourDayWeek.
func ParseWeekNumberType(s string) (WeekNumberType, error) {
	if s == "" {
		return FirstFourDayWeek, nil
	}
	for _, t := range WeekNumberTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid week number type %q", s)
}

// pivotOffset is the column, counted from the first day of a row, whose year
// owns the row.
func (t WeekNumberType) pivotOffset() int {
	switch t {
	case FirstDayOfYear:
		return 6
	case FirstFullWeek:
		return 0
	default:
		return 3
	}
}

// WeekNumber returns the week number of the row that starts on rowStart.
// rowStart is the date in the first column, so the result follows the
// configured first day of week.
func WeekNumber(t WeekNumberType, rowStart time.Time) int {
	pivot := dateutil.AddDays(dateutil.ToUTC(rowStart), t.pivotOffset())
	jan1 := dateutil.Date(pivot.Year(), time.January, 1)
	dayOfYear := int(pivot.Sub(jan1).Hours() / 24)
	return (dayOfYear + 7) / 7
}
