package tui

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/game"
)

func newTestModel() Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	logger := log.New(io.Discard)
	session := game.NewSession(config.DefaultCannonConfig(), cfg, logger)
	return NewModel(session, cfg, 80, 61, logger)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelFireSequence(t *testing.T) {
	m := newTestModel()
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m, _ = send(t, m, space)
	for range 5 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	m, _ = send(t, m, TickMsg{})

	if !m.state.Charging || m.state.Power != 15 {
		t.Fatalf("State = %+v, expected charging at power 15", m.state)
	}

	m, _ = send(t, m, space)
	m, _ = send(t, m, TickMsg{})

	if m.state.Charging || m.state.Power != 10 {
		t.Errorf("State = %+v, expected idle at power 10", m.state)
	}
	if n := len(m.session.Shells()); n != 1 {
		t.Errorf("Shells = %d, expected 1", n)
	}
}

func TestModelDoubleFireWithinTick(t *testing.T) {
	m := newTestModel()
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m, _ = send(t, m, space)
	m, _ = send(t, m, space)
	m, _ = send(t, m, TickMsg{})

	if n := len(m.session.Shells()); n != 1 {
		t.Errorf("Shells = %d, expected press then release within one tick", n)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, runeKey('q'))
	m, cmd := send(t, m, TickMsg{})

	if !m.quitting {
		t.Error("Model should be quitting after terminate")
	}
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Command after terminate should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty while quitting")
	}
}

func TestModelTickContinues(t *testing.T) {
	m := newTestModel()
	m, cmd := send(t, m, TickMsg{})

	if cmd == nil {
		t.Error("Tick should schedule the next tick")
	}
	if m.session.Tick() != 1 {
		t.Errorf("Session tick = %d, expected 1", m.session.Tick())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("Screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 10, Height: 1})
	if m.screen.Height() != 1 {
		t.Errorf("Screen height = %d, expected at least 1", m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	view := m.View()

	if !strings.Contains(view, "Score: 0") {
		t.Error("View() should contain the score HUD")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should contain the help footer")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel()
	m.screenshotDir = t.TempDir()

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("Screenshot should contain the score HUD")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hi", core.Red)
	s.DrawText(2, 0, "yo", core.Yellow)

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "yo") {
		t.Errorf("RenderScreen() = %q, expected both runs", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
}

func TestModelScreenshotKey(t *testing.T) {
	m := newTestModel()
	m.screenshotDir = t.TempDir()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("ctrl+s wrote %d files, expected 1", len(entries))
	}
	if events := m.queue.Drain(); len(events) != 0 {
		t.Errorf("Screenshot key queued %d events, expected none", len(events))
	}
}

func TestModelScreenshotFollowsBinding(t *testing.T) {
	m := newTestModel()
	m.screenshotDir = t.TempDir()
	m.keys.keys.Screenshot = key.NewBinding(key.WithKeys("p"))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = send(t, m, runeKey('p'))

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Rebound screenshot key wrote %d files, expected 1", len(entries))
	}
}
