package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/marble-maze/internal/core"
)

func testMenuItems() []MenuItem {
	return []MenuItem{
		{Name: "level1", Title: "First Roll", Detail: "12x9, 3 stars"},
		{Name: "level2", Title: "Vortex Alley"},
		{Name: "extra", Title: "Extra"},
	}
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestMenuStartsOnCurrentLevel(t *testing.T) {
	m := NewMenuModel(testMenuItems(), "level2", core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("selecting a level should quit the menu program")
	}
	if sel := m.Selected(); sel == nil || sel.Name != "level2" {
		t.Errorf("Selected() = %+v, expected level2", sel)
	}
}

func TestMenuNavigationClamps(t *testing.T) {
	m := NewMenuModel(testMenuItems(), "", core.RuntimeConfig{ScreenW: 60, ScreenH: 20})

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor after up at top = %d, expected 0", m.cursor)
	}
	for range 5 {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != 2 {
		t.Errorf("cursor after many downs = %d, expected 2", m.cursor)
	}
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if m.cursor != 1 {
		t.Errorf("cursor after k = %d, expected 1", m.cursor)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(testMenuItems(), "", core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	if !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
	if m.Selected() != nil {
		t.Error("quitting should not select a level")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestMenuViewAndResize(t *testing.T) {
	m := NewMenuModel(testMenuItems(), "", core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("Config() = %dx%d, expected 100x30", cfg.ScreenW, cfg.ScreenH)
	}
	view := m.View()
	for _, want := range []string{"First Roll", "Vortex Alley", "12x9, 3 stars", "Select a level"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestMenuEmpty(t *testing.T) {
	m := NewMenuModel(nil, "", core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.Selected() != nil {
		t.Error("enter on an empty menu should do nothing")
	}
	if !strings.Contains(m.View(), "No levels available.") {
		t.Error("empty menu should say so")
	}
}
