package tui

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/navigate"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "calpick-debug.log"

// DebugLogger writes TUI keystrokes and focus events as JSON lines.
type DebugLogger struct {
	mu     sync.Mutex
	file   *os.File
	logger *slog.Logger
	seq    int
}

var debugLog *DebugLogger

// InitDebugLogger starts the debug trace when enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = nil
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugLog = &DebugLogger{
		file:   f,
		logger: slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	debugLog.log("DEBUG_START", "log_file", DebugLogPath, "time", time.Now().Format(time.RFC3339))
	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil {
		return
	}
	debugLog.log("DEBUG_END", "time", time.Now().Format(time.RFC3339))
	_ = debugLog.file.Close()
	debugLog = nil
}

func (d *DebugLogger) log(event string, kv ...any) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	d.logger.Info(event, append([]any{"seq", d.seq}, kv...)...)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.log("KEY_PRESS", "key", msg.String(), "alt", msg.Alt)
}

// LogFocusMove logs the outcome of a navigation command.
func LogFocusMove(cmd navigate.Command, from time.Time, to navigate.Focus) {
	debugLog.log("FOCUS_MOVE",
		"command", cmd.String(),
		"from", dateutil.FormatDate(from),
		"to", dateutil.FormatDate(to.Date),
		"selectable", to.Selectable,
		"commit", to.Commit,
	)
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	debugLog.log("MODE_CHANGE", "from", from.String(), "to", to.String(), "reason", reason)
}

// LogCompose is a calendar.Observer recording compose timings.
func LogCompose(s calendar.Stats) {
	debugLog.log("COMPOSE", "months", s.Months, "hits", s.Hits, "misses", s.Misses, "elapsed", s.Elapsed.String())
}

// LogError logs an error surfaced to the status line.
func LogError(context string, err error) {
	if err == nil {
		return
	}
	debugLog.log("ERROR", "context", context, "error", err.Error())
}
