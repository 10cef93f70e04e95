package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/navigate"
	"github.com/javiermolinar/calpick/internal/tui/commands"
	"github.com/javiermolinar/calpick/internal/tui/input"
)

// keyMap holds the picker key bindings.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Home      key.Binding
	End       key.Binding
	Select    key.Binding
	ShowPrev  key.Binding
	ShowNext  key.Binding
	Today     key.Binding
	GoTo      key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup/[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn/]", "next month")),
		PrevYear:  key.NewBinding(key.WithKeys("alt+pgup", "{"), key.WithHelp("alt+pgup/{", "prev year")),
		NextYear:  key.NewBinding(key.WithKeys("alt+pgdown", "}"), key.WithHelp("alt+pgdn/}", "next year")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "month start")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "month end")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "pick")),
		ShowPrev:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "show prev month")),
		ShowNext:  key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "show next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		GoTo:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "go to date")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy selection")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.PrevMonth, k.NextMonth, k.GoTo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear},
		{k.Home, k.End, k.ShowPrev, k.ShowNext},
		{k.Select, k.Today, k.GoTo, k.Copy},
		{k.Help, k.Quit},
	}
}

// command maps a key press to a navigation command.
func (k keyMap) command(msg tea.KeyMsg) (navigate.Command, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return navigate.Command{Key: navigate.ArrowUp}, true
	case key.Matches(msg, k.Down):
		return navigate.Command{Key: navigate.ArrowDown}, true
	case key.Matches(msg, k.Left):
		return navigate.Command{Key: navigate.ArrowLeft}, true
	case key.Matches(msg, k.Right):
		return navigate.Command{Key: navigate.ArrowRight}, true
	case key.Matches(msg, k.PrevYear):
		return navigate.Command{Key: navigate.PageUp, Secondary: true}, true
	case key.Matches(msg, k.NextYear):
		return navigate.Command{Key: navigate.PageDown, Secondary: true}, true
	case key.Matches(msg, k.PrevMonth):
		return navigate.Command{Key: navigate.PageUp}, true
	case key.Matches(msg, k.NextMonth):
		return navigate.Command{Key: navigate.PageDown}, true
	case key.Matches(msg, k.Home):
		return navigate.Command{Key: navigate.Home}, true
	case key.Matches(msg, k.End):
		return navigate.Command{Key: navigate.End}, true
	case msg.Type == tea.KeyEnter:
		return navigate.Command{Key: navigate.Enter}, true
	case key.Matches(msg, k.Select):
		return navigate.Command{Key: navigate.Space}, true
	}
	return navigate.Command{}, false
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.keys.command(msg); ok {
		return m.move(cmd)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.ShowPrev):
		m.showMonth(-1)
	case key.Matches(msg, m.keys.ShowNext):
		m.showMonth(1)
	case key.Matches(msg, m.keys.Today):
		m.goTo(dateutil.Today(m.now))
	case key.Matches(msg, m.keys.GoTo):
		LogModeChange(m.mode, ModePrompt, "go to date")
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Copy):
		return m, commands.CopyDate(m.selection(), m.copier)
	}
	return m, nil
}

// handlePromptKeys handles keys while the go-to-date prompt is open.
// Other keys are forwarded to the text input by Update.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt("cancel")
		return m, nil
	case "enter":
		value := m.prompt.Value()
		m.closePrompt("submit")
		t, err := input.ParseGoTo(value, m.focused, dateutil.Today(m.now))
		if err != nil {
			LogError("go to date", err)
			return m, statusCmd(fmt.Sprintf("Invalid date %q", value))
		}
		m.goTo(t)
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt(reason string) {
	LogModeChange(m.mode, ModeNormal, reason)
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return commands.StatusMsgCmd{Msg: msg}
	}
}
