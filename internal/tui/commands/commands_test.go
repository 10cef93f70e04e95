package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

const blackout = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//calpick//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:leave@test\r\n" +
	"DTSTART;VALUE=DATE:20200302\r\n" +
	"DTEND;VALUE=DATE:20200304\r\n" +
	"SUMMARY:Leave\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestLoadBlackout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leave.ics")
	if err := os.WriteFile(path, []byte(blackout), 0o644); err != nil {
		t.Fatalf("writing ics: %v", err)
	}
	r := dateutil.DateRange{Min: dateutil.Date(2020, time.January, 1), Max: dateutil.Date(2020, time.December, 31)}

	msg := LoadBlackout(path, r)()
	loaded, ok := msg.(BlackoutLoadedMsg)
	if !ok {
		t.Fatalf("msg = %T, want BlackoutLoadedMsg", msg)
	}
	if loaded.Path != path {
		t.Errorf("Path = %q, want %q", loaded.Path, path)
	}
	if loaded.Dates.Len() != 2 {
		t.Fatalf("dates = %d, want 2", loaded.Dates.Len())
	}
	for _, d := range []int{2, 3} {
		if !loaded.Dates.Has(dateutil.Date(2020, time.March, d)) {
			t.Errorf("March %d should be disabled", d)
		}
	}
}

func TestLoadBlackout_MissingFile(t *testing.T) {
	msg := LoadBlackout(filepath.Join(t.TempDir(), "missing.ics"), dateutil.DefaultRange())()
	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("msg = %T, want ErrMsg", msg)
	}
}

func TestCopyDate(t *testing.T) {
	var copied string
	msg := CopyDate(dateutil.Date(2021, time.July, 4), func(s string) error {
		copied = s
		return nil
	})()

	status, ok := msg.(StatusMsgCmd)
	if !ok {
		t.Fatalf("msg = %T, want StatusMsgCmd", msg)
	}
	if copied != "2021-07-04" {
		t.Errorf("copied %q, want 2021-07-04", copied)
	}
	if status.Msg != "Copied 2021-07-04" {
		t.Errorf("status = %q", status.Msg)
	}
}

func TestCopyDate_Error(t *testing.T) {
	boom := errors.New("no clipboard")
	msg := CopyDate(time.Now(), func(string) error { return boom })()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Errorf("err = %v, want wrapping %v", errMsg.Err, boom)
	}
}
