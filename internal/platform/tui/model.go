package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rapid-runner/internal/core"
	"github.com/vovakirdan/rapid-runner/internal/registry"
)

// Default hold windows, used when Options leave them zero.
const (
	DefaultHoldInitial = 550 * time.Millisecond
	DefaultHoldRepeat  = 120 * time.Millisecond
)

// Options tune the host loop.
type Options struct {
	HoldInitial time.Duration
	HoldRepeat  time.Duration
	Renderer    *lipgloss.Renderer // Per-output renderer; nil means stdout
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	hold       *HoldTracker
	lastTick   time.Time
	jumpHeld   bool // Held state sent on the previous tick
	freshPress bool // A fresh press is waiting to reach the game
	status     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.HoldInitial <= 0 {
		opts.HoldInitial = DefaultHoldInitial
	}
	if opts.HoldRepeat <= 0 {
		opts.HoldRepeat = DefaultHoldRepeat
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		renderer:   NewScreenRenderer(opts.Renderer),
		keys:       NewKeyMapper(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		hold:       NewHoldTracker(opts.HoldInitial, opts.HoldRepeat),
	}
}

// playfieldHeight leaves the last terminal row for the help footer.
func playfieldHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		path, err := m.saveScreenshot(now)
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		if m.hold.Press(now) {
			m.freshPress = true
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps its state:
// the world is scaled to whatever size the screen has.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// jumpInput resolves the held state to send this tick. A fresh press while
// the previous tick was already held is split into one released tick and a
// held tick, so the game sees a new press edge. The tracker is never reset
// on phase changes: a key held from the title screen stays one press.
func (m *Model) jumpInput(now time.Time) bool {
	if m.hold.Tapped(now) {
		m.freshPress = true
	}
	held := m.hold.Held(now)
	if m.freshPress {
		if m.jumpHeld {
			held = false
		} else {
			held = true
			m.freshPress = false
		}
	}
	m.jumpHeld = held
	return held
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	if m.jumpInput(now) {
		m.inputFrame.Hold(core.ActionJump)
	}

	result := m.game.Step(m.inputFrame, dt)
	if result.State.GameOver && !m.gameState.GameOver {
		m.status = ""
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot(now time.Time) (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := m.help.View(m.keys.Keys())
	if m.status != "" {
		footer = m.status
	}
	return m.renderer.Render(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
