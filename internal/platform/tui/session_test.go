package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordblocks/internal/core"
	"github.com/vovakirdan/wordblocks/internal/registry"
)

var lastScripted *scriptedGame

func init() {
	registry.Register("scripted", func() registry.Game {
		lastScripted = &scriptedGame{steps: []core.StepResult{{}}}
		return lastScripted
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, "science")
	if m.menu.Topic() != "science" {
		t.Fatalf("menu topic = %q, want science", m.menu.Topic())
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateGame {
		t.Fatalf("state = %v, want game", m.state)
	}
	if lastScripted.topic != "science" {
		t.Errorf("game topic = %q, want science", lastScripted.topic)
	}

	// Back is ignored while the game runs
	m = sessionUpdate(t, m, runeKey('b'))
	if m.state != stateGame {
		t.Fatal("left the game while running")
	}

	lastScripted.steps = []core.StepResult{{State: core.GameState{GameOver: true}}}
	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, runeKey('b'))
	if m.state != stateMenu {
		t.Errorf("state = %v, want menu", m.state)
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, "")

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateScores {
		t.Fatalf("state = %v, want scores", m.state)
	}
	if m.View() == "" {
		t.Error("scoreboard view is empty")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Errorf("state = %v, want menu", m.state)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "")
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.(SessionModel).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSessionModel(nil, core.RuntimeConfig{}, "")
	b := NewSessionModel(nil, core.RuntimeConfig{}, "")
	if a.ID() == "" {
		t.Fatal("empty session id")
	}
	if a.ID() == b.ID() {
		t.Errorf("two sessions share id %s", a.ID())
	}
}
