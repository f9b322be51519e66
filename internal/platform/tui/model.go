package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/game"
)

// footerHeight is the number of rows reserved below the playfield for help.
const footerHeight = 1

// Model is the Bubble Tea model running one cannon session.
type Model struct {
	session *game.Session
	queue   *core.EventQueue
	screen  *core.Screen
	canvas  *core.Canvas
	keys    *KeyMapper
	help    help.Model
	styles  styleCache
	logger  *log.Logger
	config  core.RuntimeConfig

	// charging tracks the cannon state including fire presses queued
	// since the last tick, so two quick presses charge then release.
	charging bool
	state    core.GameState
	quitting bool

	screenshotDir string
}

// NewModel creates a Bubble Tea model for session on a width x height terminal.
func NewModel(session *game.Session, cfg core.RuntimeConfig, width, height int, logger *log.Logger) Model {
	screen := core.NewScreen(width, playfieldHeight(height))
	state := session.State()
	return Model{
		session:       session,
		queue:         &core.EventQueue{},
		screen:        screen,
		canvas:        core.NewCanvas(screen, cfg.WorldW, cfg.WorldH),
		keys:          NewKeyMapper(),
		help:          help.New(),
		styles:        styleCache{},
		logger:        logger,
		config:        cfg,
		charging:      state.Charging,
		state:         state,
		screenshotDir: filepath.Join(os.Getenv("HOME"), ".cannon", "screenshots"),
	}
}

func playfieldHeight(h int) int {
	return max(h-footerHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the session event for a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	ev, ok := m.keys.MapKey(msg, m.charging)
	if !ok {
		return m, nil
	}
	m.queue.Push(ev)

	if ev.Key == core.KeySpace {
		m.charging = ev.Kind == core.EventKeyDown
	}
	return m, nil
}

// handleResize rescales the playfield. The world size never changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick feeds the queued events to the session and advances it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.session.Step(m.queue.Drain())
	m.state = result.State
	m.charging = result.State.Charging

	if m.state.Finished {
		m.quitting = true
		m.logger.Info("session finished", "score", m.state.Score, "ticks", m.session.Tick())
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.session.Render(m.canvas)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("cannon_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.canvas)
	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program for session and blocks until it ends.
func Run(session *game.Session, cfg core.RuntimeConfig, width, height int, logger *log.Logger) error {
	model := NewModel(session, cfg, width, height, logger)

	logger.Info("starting terminal frontend", "width", width, "height", height, "tps", cfg.TickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal frontend: %w", err)
	}
	return nil
}
