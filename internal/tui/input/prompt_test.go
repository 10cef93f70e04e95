package input

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

func TestParseGoTo(t *testing.T) {
	base := dateutil.Date(2020, time.January, 31)
	today := time.Date(2024, time.March, 5, 18, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "iso", input: "2021-07-04", want: dateutil.Date(2021, time.July, 4)},
		{name: "iso_spaces", input: "  2021-07-04 ", want: dateutil.Date(2021, time.July, 4)},
		{name: "today", input: "Today", want: dateutil.Date(2024, time.March, 5)},
		{name: "days", input: "+3d", want: dateutil.Date(2020, time.February, 3)},
		{name: "weeks_back", input: "-2w", want: dateutil.Date(2020, time.January, 17)},
		{name: "month_clamps", input: "+1m", want: dateutil.Date(2020, time.February, 29)},
		{name: "year", input: "+1y", want: dateutil.Date(2021, time.January, 31)},
		{name: "bad_unit", input: "+1q", wantErr: true},
		{name: "bad_number", input: "+xd", wantErr: true},
		{name: "too_short", input: "+d", wantErr: true},
		{name: "bad_date", input: "2021-13-01", wantErr: true},
		{name: "words", input: "next friday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGoTo(tt.input, base, today)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseGoTo(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGoTo(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("ParseGoTo(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseGoTo_Empty(t *testing.T) {
	_, err := ParseGoTo("   ", time.Now(), time.Now())
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want %v", err, ErrEmptyInput)
	}
}
