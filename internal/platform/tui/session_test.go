package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, testConfig(), "alice")

	m = updateSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if m.game.opts.Player != "alice" || !m.game.opts.Record {
		t.Errorf("game options = %+v", m.game.opts)
	}

	m = updateSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = updateSession(m, TickMsg{})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after back", m.screen)
	}

	m = updateSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenRuns {
		t.Fatalf("screen = %v, want runs", m.screen)
	}
	m = updateSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after runs", m.screen)
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
