package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/disabled"
	"github.com/javiermolinar/calpick/internal/format"
	"github.com/javiermolinar/calpick/internal/navigate"
	"github.com/javiermolinar/calpick/internal/tui/commands"
	"github.com/javiermolinar/calpick/internal/tui/input"
	"github.com/javiermolinar/calpick/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // go-to-date input is focused
)

func (m Mode) String() string {
	switch m {
	case ModePrompt:
		return "prompt"
	default:
		return "normal"
	}
}

// Result is the outcome of a picker session.
type Result struct {
	Date      time.Time
	Committed bool // false when the user quit without picking
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config   *config.Config
	fmts     *format.Formatters
	composer *calendar.Composer
	rng      dateutil.DateRange
	base     disabled.State   // disabled days and dates from config
	blackout disabled.DateSet // dates loaded from the ICS calendar
	now      func() time.Time
	copier   commands.Copier

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	focused  time.Time
	selected time.Time // its month is the anchor of the visible calendars
	value    time.Time // committed or initial value, zero when unset
	result   Result
	mode     Mode

	// Components
	keys   keyMap
	help   help.Model
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time
	statusErr  bool
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock overrides the clock used for "today".
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithInitialDate sets the initial value and focus.
func WithInitialDate(t time.Time) ModelOption {
	return func(m *Model) {
		if !t.IsZero() {
			m.value = dateutil.ToUTC(t)
		}
	}
}

// WithCopier replaces the system clipboard.
func WithCopier(c commands.Copier) ModelOption {
	return func(m *Model) {
		m.copier = c
	}
}

// WithComposer shares a calendar composer between models.
func WithComposer(c *calendar.Composer) ModelOption {
	return func(m *Model) {
		m.composer = c
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) (*Model, error) {
	rng, err := cfg.Range()
	if err != nil {
		return nil, fmt.Errorf("invalid range: %w", err)
	}
	fmts, err := format.New(cfg.Picker.Locale)
	if err != nil {
		return nil, err
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Prompt = "go to: "
	ti.Placeholder = input.GoToHint
	ti.CharLimit = 32
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.PromptStyle
	ti.PlaceholderStyle = styles.StatusStyle

	h := help.New()
	h.Styles = styles.Help

	m := &Model{
		config: cfg,
		fmts:   fmts,
		rng:    rng,
		base:   cfg.Disabled(),
		now:    time.Now,
		theme:  t,
		styles: styles,
		mode:   ModeNormal,
		keys:   defaultKeyMap(),
		help:   h,
		prompt: ti,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.composer == nil {
		m.composer = calendar.NewComposer(calendar.WithObserver(LogCompose))
	}

	start := m.value
	if start.IsZero() {
		start = dateutil.Today(m.now)
	}
	m.goTo(start)
	return m, nil
}

// Init loads the ICS blackout calendar when one is configured.
func (m Model) Init() tea.Cmd {
	if m.config.Picker.DisabledICS == "" {
		return nil
	}
	return commands.LoadBlackout(m.config.Picker.DisabledICS, m.rng)
}

// Result returns the outcome of the session.
func (m Model) Result() Result {
	return m.result
}

// Focused returns the focused date.
func (m Model) Focused() time.Time {
	return m.focused
}

// selection returns the picked value, falling back to the focused date
// before anything has been picked.
func (m Model) selection() time.Time {
	if m.value.IsZero() {
		return m.focused
	}
	return m.value
}

// disabled returns the config state merged with the blackout dates.
func (m Model) disabled() disabled.State {
	if m.blackout.Len() == 0 {
		return m.base
	}
	return m.base.WithDates(m.blackout)
}

// move applies a navigation command and commits on enter/space.
func (m Model) move(cmd navigate.Command) (tea.Model, tea.Cmd) {
	m.clearError()
	from := m.focused
	f := navigate.Next(navigate.Input{
		Focused:  m.focused,
		Selected: m.selected,
		Command:  cmd,
		Disabled: m.disabled(),
		Range:    m.rng,
	})
	LogFocusMove(cmd, from, f)

	m.focused = f.Date
	m.selected = f.Date
	if !f.Selectable {
		m.setStatus("No selectable date in range", true)
		return m, nil
	}
	if f.Commit {
		m.value = f.Date
		m.result = Result{Date: f.Date, Committed: true}
		return m, tea.Quit
	}
	return m, nil
}

// goTo focuses the nearest selectable date to t.
func (m *Model) goTo(t time.Time) {
	t = dateutil.ToUTC(t)
	f := navigate.Next(navigate.Input{
		Focused:  t,
		Selected: t,
		Disabled: m.disabled(),
		Range:    m.rng,
	})
	m.focused = f.Date
	m.selected = f.Date
	if !f.Selectable {
		m.setStatus("No selectable date in range", true)
	}
}

// showMonth shifts the visible month without moving focus. The next
// navigation key brings focus into the shown month.
func (m *Model) showMonth(delta int) {
	next := dateutil.AddMonths(dateutil.FirstOfMonth(m.selected), delta)
	if !m.rng.OverlapsMonth(next) {
		m.setStatus("Month is outside the allowed range", true)
		return
	}
	m.clearError()
	m.selected = next
}

func (m *Model) clearError() {
	if m.statusErr {
		m.statusMsg = ""
		m.statusErr = false
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = m.now().Add(3 * time.Second)
}

// Run starts the TUI.
func Run(cfg *config.Config, opts ...ModelOption) (Result, error) {
	return RunWithDebug(cfg, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool, opts ...ModelOption) (Result, error) {
	if err := InitDebugLogger(debug); err != nil {
		return Result{}, err
	}
	defer CloseDebugLogger()

	model, err := New(cfg, opts...)
	if err != nil {
		return Result{}, err
	}
	p := tea.NewProgram(*model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.Result(), nil
	}
	return Result{}, nil
}
