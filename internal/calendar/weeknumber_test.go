package calendar

import (
	"testing"
	"time"
)

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		name     string
		typ      WeekNumberType
		rowStart time.Time
		want     int
	}{
		{"iso week 53", FirstFourDayWeek, day(2020, time.December, 28), 53},
		{"iso week 1", FirstFourDayWeek, day(2021, time.January, 4), 1},
		{"iso week 1 starting in december", FirstFourDayWeek, day(2025, time.December, 29), 1},
		{"sunday start four day week", FirstFourDayWeek, day(2019, time.December, 29), 1},
		{"first day of year owns the row", FirstDayOfYear, day(2019, time.December, 29), 1},
		{"first day of year late december", FirstDayOfYear, day(2020, time.December, 27), 1},
		{"full week still belongs to old year", FirstFullWeek, day(2019, time.December, 29), 52},
		{"first full week", FirstFullWeek, day(2020, time.January, 5), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekNumber(tt.typ, tt.rowStart); got != tt.want {
				t.Errorf("WeekNumber(%s, %s) = %d, want %d", tt.typ, tt.rowStart.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestWeekNumber_MatchesISOWithMondayStart(t *testing.T) {
	for d := day(2000, time.January, 3); d.Year() < 2031; d = d.AddDate(0, 0, 7) {
		_, want := d.ISOWeek()
		if got := WeekNumber(FirstFourDayWeek, d); got != want {
			t.Fatalf("WeekNumber(%s) = %d, want ISO week %d", d.Format("2006-01-02"), got, want)
		}
	}
}

func TestParseWeekNumberType(t *testing.T) {
	got, err := ParseWeekNumberType("")
	if err != nil || got != FirstFourDayWeek {
		t.Errorf("ParseWeekNumberType(\"\") = %q, %v; want default", got, err)
	}
	for _, typ := range WeekNumberTypes() {
		got, err := ParseWeekNumberType(string(typ))
		if err != nil || got != typ {
			t.Errorf("ParseWeekNumberType(%q) = %q, %v", typ, got, err)
		}
	}
	if _, err := ParseWeekNumberType("iso"); err == nil {
		t.Error("expected error for unknown type")
	}
}
