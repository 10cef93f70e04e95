package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/navigate"
)

func TestKeyMap_Command(t *testing.T) {
	keys := defaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want navigate.Command
		ok   bool
	}{
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: navigate.Command{Key: navigate.ArrowUp}, ok: true},
		{name: "k", msg: runes("k"), want: navigate.Command{Key: navigate.ArrowUp}, ok: true},
		{name: "j", msg: runes("j"), want: navigate.Command{Key: navigate.ArrowDown}, ok: true},
		{name: "h", msg: runes("h"), want: navigate.Command{Key: navigate.ArrowLeft}, ok: true},
		{name: "right", msg: tea.KeyMsg{Type: tea.KeyRight}, want: navigate.Command{Key: navigate.ArrowRight}, ok: true},
		{name: "pgup", msg: tea.KeyMsg{Type: tea.KeyPgUp}, want: navigate.Command{Key: navigate.PageUp}, ok: true},
		{name: "bracket", msg: runes("]"), want: navigate.Command{Key: navigate.PageDown}, ok: true},
		{name: "alt_pgup", msg: tea.KeyMsg{Type: tea.KeyPgUp, Alt: true}, want: navigate.Command{Key: navigate.PageUp, Secondary: true}, ok: true},
		{name: "brace", msg: runes("}"), want: navigate.Command{Key: navigate.PageDown, Secondary: true}, ok: true},
		{name: "home", msg: tea.KeyMsg{Type: tea.KeyHome}, want: navigate.Command{Key: navigate.Home}, ok: true},
		{name: "end", msg: tea.KeyMsg{Type: tea.KeyEnd}, want: navigate.Command{Key: navigate.End}, ok: true},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: navigate.Command{Key: navigate.Enter}, ok: true},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, want: navigate.Command{Key: navigate.Space}, ok: true},
		{name: "unknown", msg: runes("x"), ok: false},
		{name: "today_is_not_navigation", msg: runes("t"), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.command(tt.msg)
			if ok != tt.ok {
				t.Fatalf("command(%q) ok = %v, want %v", tt.msg.String(), ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("command(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMap_HelpCoversBindings(t *testing.T) {
	keys := defaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help is empty")
	}
	count := 0
	for _, col := range keys.FullHelp() {
		count += len(col)
	}
	if count != 18 {
		t.Fatalf("full help lists %d bindings, want 18", count)
	}
}
