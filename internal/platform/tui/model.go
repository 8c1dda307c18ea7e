package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/audio"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

const footerText = "arrows/wasd: hop  p: pause  r: restart  m: mute  esc: back  q: quit"

// GameOptions configures a GameModel beyond the runtime config.
type GameOptions struct {
	// Player is stored with every finished run.
	Player string

	// Sounds plays event cues; nil runs silent.
	Sounds *audio.SoundManager

	// HoldWindow overrides DefaultHoldWindow.
	HoldWindow time.Duration

	// Standalone makes Back quit instead of returning to a menu.
	Standalone bool
}

// GameModel is the Bubble Tea model that hosts one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	clock      frameClock
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(opts.HoldWindow),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		// The board is re-centered on every render, so a resize keeps the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "m":
		if m.opts.Sounds != nil {
			m.opts.Sounds.SetMuted(!m.opts.Sounds.Muted())
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, now) {
		m.saveRun(m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.saveRun(m.gameState.Score)
		if m.opts.Standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleTick runs one frame: synthesized releases, the game step, score
// persistence and sound cues.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// A restart abandons the current run.
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun(m.gameState.Score)
		m.keyMapper.ReleaseAll(&m.inputFrame)
	}

	m.keyMapper.Expire(&m.inputFrame, now)
	dt := m.clock.Advance(now)

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if result.RunEnded {
		m.saveRun(result.RunScore)
	}
	if m.opts.Sounds != nil {
		m.opts.Sounds.PlayAll(result.Events)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Zero scores are not kept.
func (m *GameModel) saveRun(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.opts.Player, score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".frogger", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if h := m.screen.Height(); h > 0 {
		m.screen.DrawTextCentered(h-1, footerText, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// State returns the game state after the last frame.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.Standalone = true
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
