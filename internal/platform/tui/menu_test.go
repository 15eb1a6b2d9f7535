package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/storm-runner/internal/core"
	"github.com/vovakirdan/storm-runner/internal/games/runner"
	"github.com/vovakirdan/storm-runner/internal/storage"
)

func updateMenu(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	view := m.View()
	for _, want := range []string{"Storm Runner", "Storm Runner Classic"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu missing %q", want)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyDown}) // clamps at the last item
	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.result()
	if res.Quit || res.WantsRuns {
		t.Fatalf("result = %+v", res)
	}
	if res.GameID != runner.IDStormClassic {
		t.Errorf("selected %q, want %q", res.GameID, runner.IDStormClassic)
	}
}

func TestMenuRunsAndQuit(t *testing.T) {
	m := updateMenu(NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.result().WantsRuns {
		t.Error("tab should open the run browser")
	}

	m = updateMenu(NewMenuModel(nil, testConfig()), runeKey('q'))
	if !m.result().Quit {
		t.Error("q should quit")
	}
}

func TestMenuShowsBest(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: runner.IDStorm, Score: 321, Steps: 1}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewMenuModel(store, testConfig())
	if !strings.Contains(m.View(), "best 321") {
		t.Error("menu should show the best recorded score")
	}
}

func TestMenuResize(t *testing.T) {
	m := updateMenu(NewMenuModel(nil, core.DefaultConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
