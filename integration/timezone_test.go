package integration

import (
	"testing"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/disabled"
	"github.com/javiermolinar/calpick/internal/navigate"
)

func TestLocalTimesKeepTheirCalendarDay(t *testing.T) {
	zones := []*time.Location{
		time.FixedZone("UTC+14", 14*3600),
		time.FixedZone("UTC-11", -11*3600),
		time.FixedZone("UTC+5:45", 5*3600+45*60),
		time.UTC,
	}
	r := dateutil.DateRange{Min: dateutil.Date(2020, time.January, 1), Max: dateutil.Date(2020, time.December, 31)}
	state := disabled.Resolve("", "2020-02-29")

	for _, loc := range zones {
		t.Run(loc.String(), func(t *testing.T) {
			for _, hour := range []int{0, 12, 23} {
				local := time.Date(2020, time.February, 28, hour, 59, 0, 0, loc)

				if got := dateutil.ToUTC(local); !got.Equal(dateutil.Date(2020, time.February, 28)) {
					t.Fatalf("ToUTC(%v) = %v, want 2020-02-28", local, got)
				}

				f := navigate.Next(navigate.Input{
					Focused:  local,
					Command:  navigate.Command{Key: navigate.ArrowRight},
					Disabled: state,
					Range:    r,
				})
				if want := dateutil.Date(2020, time.March, 1); !f.Date.Equal(want) {
					t.Fatalf("Next from %v = %v, want %v", local, f.Date, want)
				}
				if f.Date.Location() != time.UTC || f.Date.Hour() != 0 {
					t.Fatalf("Next returned %v, want UTC midnight", f.Date)
				}
			}
		})
	}
}
