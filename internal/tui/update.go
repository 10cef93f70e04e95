package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/log"
	"github.com/javiermolinar/calpick/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prompt.Width = max(10, msg.Width-len(m.prompt.Prompt)-2)
		return m, nil

	case commands.BlackoutLoadedMsg:
		m.blackout = msg.Dates
		log.Debug("blackout applied", "path", msg.Path, "dates", msg.Dates.Len())
		// Focus may now sit on a blacked-out day.
		if m.disabled().Disabled(m.focused) {
			m.goTo(m.focused)
		}
		return m, statusCmd(fmt.Sprintf("Blocked %d dates from %s", msg.Dates.Len(), msg.Path))

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)
		m.statusTime = m.now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg, false)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}
