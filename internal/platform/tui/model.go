package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/storm-runner/internal/core"
	"github.com/vovakirdan/storm-runner/internal/registry"
	"github.com/vovakirdan/storm-runner/internal/replay"
	"github.com/vovakirdan/storm-runner/internal/storage"
)

// Options controls run recording for a game model.
type Options struct {
	Store  *storage.Store // Nil disables recording
	Player string         // Stored with each recorded run
	Record bool
}

// Model is the Bubble Tea model for a single game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	recorder   *replay.Recorder
	gameState  core.GameState
	saved      []int64 // IDs of runs recorded this session
	saveErr    error
	quitting   bool
	goingBack  bool
}

// NewModel creates a new Bubble Tea model and resets the game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	var preset string
	if tunable, ok := game.(registry.Tunable); ok {
		preset = tunable.Preset()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		recorder:   replay.NewRecorder(game.ID(), opts.Player, cfg.Seed, preset),
		gameState:  game.State(),
	}
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The simulation works in
// world units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionBack) {
		m.goingBack = true
		return m, tea.Quit
	}

	m.recorder.Record(m.inputFrame)
	result := m.game.Step(m.inputFrame)
	wasOver := m.gameState.GameOver
	m.gameState = result.State
	m.inputFrame.Clear()

	// Record the run once per game over
	if m.gameState.GameOver && !wasOver {
		m.saveRun()
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the session so far as a replayable run.
func (m *Model) saveRun() {
	if !m.opts.Record || m.opts.Store == nil {
		return
	}
	replayable, ok := m.game.(registry.Replayable)
	if !ok {
		return
	}

	id, err := m.opts.Store.SaveRun(m.recorder.Run(m.gameState, replayable.Digest()))
	if err != nil {
		m.saveErr = err
		return
	}
	m.saved = append(m.saved, id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".stormrunner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// SavedRuns returns the IDs of runs recorded during this session.
func (m Model) SavedRuns() []int64 {
	return m.saved
}

// SaveErr returns the last error from recording a run.
func (m Model) SaveErr() error {
	return m.saveErr
}

// IsGoingBack returns true if the player asked to leave the game.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// Run starts the Bubble Tea program for game and returns the IDs of the
// runs it recorded.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) ([]int64, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return nil, nil
	}
	return m.SavedRuns(), m.SaveErr()
}
