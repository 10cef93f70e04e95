package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/dateutil"
)

// fixedNow is a Monday.
var fixedNow = time.Date(2020, time.February, 3, 15, 4, 5, 0, time.UTC)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Picker.Min = "2020-01-01"
	cfg.Picker.Max = "2020-12-31"
	return cfg
}

func newTestModel(t *testing.T, cfg *config.Config, opts ...ModelOption) Model {
	t.Helper()
	opts = append([]ModelOption{WithClock(func() time.Time { return fixedNow })}, opts...)
	m, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return *m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(k)
		var ok bool
		m, ok = updated.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", updated)
		}
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func day(y int, mo time.Month, d int) time.Time {
	return dateutil.Date(y, mo, d)
}
