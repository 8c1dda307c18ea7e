// Package frogger implements a Frogger-style lane-crossing game.
// The player hops tile by tile from the grass to the water while enemies
// cross the stone lanes from left to right.
package frogger

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Registered game IDs.
const (
	GameID        = "frogger"
	ClassicGameID = "frogger_classic"
)

// maxFrameDelta caps the time a single Step may simulate, so a stalled
// terminal does not teleport enemies across the lanes.
const maxFrameDelta = 250 * time.Millisecond

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the
// config file's own difficulty block.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a GameSession to the registry's fixed-interface game loop.
type Game struct {
	id        string
	title     string
	collision string // Forced collision mode, empty to use the config

	session *GameSession
	runtime core.RuntimeConfig
	images  ImageLoader
	paused  bool
	best    int // Best score carried across Reset
	cfgErr  error
}

// New creates the standard game.
func New() *Game {
	return &Game{id: GameID, title: "Frogger", images: DefaultAtlas()}
}

// NewClassic creates the variant that uses the sampled collision test.
func NewClassic() *Game {
	return &Game{
		id:        ClassicGameID,
		title:     "Frogger (classic collisions)",
		collision: core.CollisionSampled.String(),
		images:    DefaultAtlas(),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
	registry.Register(ClassicGameID, func() registry.Game { return NewClassic() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Session returns the running session, nil before Reset.
func (g *Game) Session() *GameSession { return g.session }

// ConfigError returns the error that made the last Reset fall back to the
// built-in defaults, if any.
func (g *Game) ConfigError() error { return g.cfgErr }

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.cfgErr = nil
	if g.session != nil {
		g.best = max(g.best, g.session.Best())
	}

	cfg, err := config.LoadFrogger(configPath)
	if err != nil {
		g.cfgErr = err
		cfg = config.DefaultFroggerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFroggerPreset(&cfg, difficultyPreset)
	}
	if g.collision != "" {
		cfg.Collision = g.collision
	}

	session, err := NewGameSession(cfg, runtime.Seed)
	if err != nil {
		g.cfgErr = fmt.Errorf("frogger: %w", err)
		session, err = NewGameSession(config.DefaultFroggerConfig(), runtime.Seed)
		if err != nil {
			panic(fmt.Sprintf("frogger: default config rejected: %v", err))
		}
	}
	g.session = session
}

// Step delivers the frame's input and advances the session by dt.
// While paused only key releases are processed.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.session.Restart()
		g.paused = false
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	for _, ev := range in.Keys {
		switch {
		case !ev.Down:
			g.session.KeyUp(ev.Code)
		case !g.paused:
			g.session.KeyDown(ev.Code)
		}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt = min(max(dt, 0), maxFrameDelta)
	report := g.session.Tick(dt.Seconds())
	return core.StepResult{
		State:    g.State(),
		Events:   report.Events,
		RunEnded: report.RunEnded,
		RunScore: report.RunScore,
	}
}

// State returns the current game state. The game never ends on its own.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Best: g.best, Paused: g.paused}
	}
	return core.GameState{
		Score:  g.session.Score(),
		Best:   max(g.best, g.session.Best()),
		Paused: g.paused,
	}
}

// Render draws the board, the entities and the HUD centered on dst.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	layout := g.session.Layout()
	bw, bh := BoardSize(layout)
	x := max((dst.Width()-bw)/2, 0)
	y := max((dst.Height()-bh)/2, 1)
	surface := NewScreenSurface(dst, layout, x, y)

	for row := range layout.Rows {
		img := g.images.Get(layout.TileImage(row))
		for col := range layout.Cols {
			at := layout.TilePosition(col, row)
			surface.DrawImage(img, at.X, at.Y)
		}
	}

	for _, e := range g.session.Entities() {
		e.Render(g.images, surface)
	}

	if g.runtime.Hitboxes {
		g.strokeHitboxes(surface)
	}

	state := g.State()
	hud := fmt.Sprintf("Score: %d  Best: %d", state.Score, state.Best)
	if d := g.session.Difficulty(); d.IsEnabled() {
		hud += fmt.Sprintf("  Level: %d%%", int(math.Round(d.Level(state.Score, g.session.Ticks())*100)))
	}
	top := layout.Border.TopLeft()
	surface.FillText(hud, top.X, top.Y-surface.cell.Y)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to continue")
	}
}

func (g *Game) strokeHitboxes(surface *ScreenSurface) {
	stroke := func(r core.Rect) {
		tl, size := r.TopLeft(), r.Size()
		surface.StrokeRect(tl.X, tl.Y, size.X, size.Y)
	}
	for _, e := range g.session.Enemies() {
		if e.Spawned {
			stroke(e.Rect())
		}
	}
	stroke(g.session.Player().Rect())
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextColored(boxX+(boxW-len(line1))/2, boxY+1, line1, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-len(line2))/2, boxY+2, line2, core.ColorWhite)
}

var _ registry.Game = (*Game)(nil)
