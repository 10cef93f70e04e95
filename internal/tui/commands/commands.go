// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/disabled"
	"github.com/javiermolinar/calpick/internal/ics"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// BlackoutLoadedMsg is sent when an ICS blackout calendar has been expanded.
type BlackoutLoadedMsg struct {
	Path  string
	Dates disabled.DateSet
}

// LoadBlackout expands the events of the .ics file at path into disabled
// dates within r.
func LoadBlackout(path string, r dateutil.DateRange) tea.Cmd {
	return func() tea.Msg {
		dates, err := ics.LoadDisabled(path, r)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading blackout calendar: %w", err)}
		}
		return BlackoutLoadedMsg{Path: path, Dates: dates}
	}
}

// Copier writes text to the system clipboard.
type Copier func(string) error

// CopyDate copies t as YYYY-MM-DD using copy, or the system clipboard when
// copy is nil.
func CopyDate(t time.Time, copy Copier) tea.Cmd {
	if copy == nil {
		copy = clipboard.WriteAll
	}
	return func() tea.Msg {
		text := dateutil.FormatDate(t)
		if err := copy(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied " + text}
	}
}
