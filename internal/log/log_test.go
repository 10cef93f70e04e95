package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(nopWriter{})
		SetLevel(LevelInfo)
	})
	return &buf
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestLevels(t *testing.T) {
	buf := capture(t)

	SetLevel(LevelInfo)
	Debug("hidden")
	Info("shown", "month", "2020-02")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(buf.String(), "month=2020-02") {
		t.Errorf("missing key/value in %q", buf.String())
	}

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("now shown")
	if !strings.Contains(buf.String(), "now shown") {
		t.Error("debug line missing at debug level")
	}

	buf.Reset()
	SetLevel(LevelError)
	Info("quiet")
	Error("failed", errors.New("boom"), "path", "x.ics")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Error("info line written at error level")
	}
	if !strings.Contains(out, "err=boom") || !strings.Contains(out, "path=x.ics") {
		t.Errorf("unexpected error line %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"", LevelInfo, false},
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" error ", LevelError, false},
		{"trace", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
