package frogger

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// TickReport describes what happened during one Tick.
type TickReport struct {
	Events []core.Event

	// RunEnded is set when a squash reset a positive score.
	RunEnded bool
	RunScore int
}

// GameSession owns all mutable game state: the keyboard, the player, the
// enemy pool, the score and the spawn timer.
type GameSession struct {
	cfg        config.FroggerConfig
	layout     *Layout
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	keyboard   *core.Keyboard

	player  *Player
	enemies []Enemy // Fixed pool; never grows

	score int
	best  int
	ticks int

	// Milliseconds until the next spawn attempt. Starts at 0 so the first
	// tick schedules a spawn.
	timeUntilNextSpawn float64
}

// NewGameSession builds a session from a validated config.
// The same seed and the same sequence of inputs and deltas always produce
// the same session state.
func NewGameSession(cfg config.FroggerConfig, seed int64) (*GameSession, error) {
	layout, err := NewLayout(cfg)
	if err != nil {
		return nil, err
	}
	playerSprite, err := NewSprite(cfg.Player.Image, layout.RenderOffset)
	if err != nil {
		return nil, err
	}
	enemySprite, err := NewSprite(cfg.Enemies.Image, layout.RenderOffset)
	if err != nil {
		return nil, err
	}

	s := &GameSession{
		cfg:        cfg,
		layout:     layout,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		keyboard:   core.NewKeyboard(),
		player:     &Player{Sprite: playerSprite, Position: layout.Start, layout: layout},
		enemies:    make([]Enemy, cfg.Enemies.PoolSize),
	}
	for i := range s.enemies {
		s.enemies[i] = Enemy{Sprite: enemySprite, layout: layout}
	}
	return s, nil
}

// Layout returns the session's map geometry.
func (s *GameSession) Layout() *Layout { return s.layout }

// Player returns the player entity.
func (s *GameSession) Player() *Player { return s.player }

// Enemies returns the enemy pool, spawned or not.
func (s *GameSession) Enemies() []Enemy { return s.enemies }

// Score returns the current score.
func (s *GameSession) Score() int { return s.score }

// Best returns the highest score reached since the session was created.
func (s *GameSession) Best() int { return s.best }

// Ticks returns the number of ticks processed.
func (s *GameSession) Ticks() int { return s.ticks }

// Keyboard exposes the held-key state.
func (s *GameSession) Keyboard() *core.Keyboard { return s.keyboard }

// Difficulty returns the difficulty manager.
func (s *GameSession) Difficulty() *config.DifficultyManager { return s.difficulty }

// KeyDown handles a host key-down. Auto-repeat is filtered out: only the
// transition from released to pressed reaches the player.
func (s *GameSession) KeyDown(code core.KeyCode) {
	if s.keyboard.IsPressed(code) {
		return
	}
	s.keyboard.PressKey(code)
	s.player.HandleInput(code)
}

// KeyUp handles a host key-up.
func (s *GameSession) KeyUp(code core.KeyCode) {
	s.keyboard.ReleaseKey(code)
}

// Entities returns every entity in draw order: enemies first, player on top.
func (s *GameSession) Entities() []Entity {
	out := make([]Entity, 0, len(s.enemies)+1)
	for i := range s.enemies {
		out = append(out, &s.enemies[i])
	}
	return append(out, s.player)
}

// Tick advances the session by dt seconds.
//
// Order: spawn timer, enemy movement, player movement, enemy collisions,
// then the water check.
func (s *GameSession) Tick(dt float64) TickReport {
	var report TickReport
	s.ticks++

	s.timeUntilNextSpawn -= dt * 1000
	if s.timeUntilNextSpawn < 0 {
		s.timeUntilNextSpawn = s.nextSpawnDelay()
		if s.spawnEnemy() {
			report.Events = append(report.Events, core.EventSpawned)
		}
	}

	for i := range s.enemies {
		s.enemies[i].Update(dt)
	}

	moving := s.player.Pending != (core.Vector{})
	prev := s.player.Position
	s.player.Update(dt)
	if moving {
		if s.player.Position == prev {
			report.Events = append(report.Events, core.EventBlocked)
		} else {
			report.Events = append(report.Events, core.EventHop)
		}
	}

	mode := s.layout.Collision
	for i := range s.enemies {
		e := &s.enemies[i]
		if !e.Spawned || !mode.Collides(s.player.Rect(), e.Rect(), true) {
			continue
		}
		if s.score > 0 {
			report.RunEnded = true
			report.RunScore = s.score
		}
		s.score = 0
		s.Respawn()
		report.Events = append(report.Events, core.EventSquashed)
		break
	}

	if mode.Collides(s.player.Rect(), s.layout.Water, false) {
		s.score++
		if s.score > s.best {
			s.best = s.score
		}
		s.Respawn()
		report.Events = append(report.Events, core.EventScored)
	}

	return report
}

// Respawn puts the player back on its start tile and drops any pending move.
func (s *GameSession) Respawn() {
	s.player.Position = s.layout.Start
	s.player.Pending = core.Vector{}
}

// Restart returns the session to its initial state, keeping the best score
// and the random stream.
func (s *GameSession) Restart() {
	s.score = 0
	s.ticks = 0
	s.timeUntilNextSpawn = 0
	s.keyboard.ReleaseAll()
	for i := range s.enemies {
		s.enemies[i].Spawned = false
	}
	s.Respawn()
}

// nextSpawnDelay draws the next countdown in whole milliseconds.
func (s *GameSession) nextSpawnDelay() float64 {
	lo := float64(s.cfg.Enemies.SpawnMinMS)
	hi := float64(s.cfg.Enemies.SpawnMaxMS)
	delay := math.Floor(s.rng.Float64()*(hi-lo) + lo)
	return s.difficulty.SpawnDelay(delay, lo/2, s.score, s.ticks)
}

// spawnEnemy activates the first pooled enemy on a random lane.
// It reports false when the whole pool is already on the map.
func (s *GameSession) spawnEnemy() bool {
	for i := range s.enemies {
		e := &s.enemies[i]
		if e.Spawned {
			continue
		}
		lane := s.rng.Intn(s.layout.Lanes)
		speed := s.rng.Float64()*(s.cfg.Enemies.MaxSpeed-s.cfg.Enemies.MinSpeed) + s.cfg.Enemies.MinSpeed
		e.Position = core.Vec(-s.layout.Tile.X, s.layout.LaneY(lane))
		e.Speed = s.difficulty.Speed(speed, s.score, s.ticks)
		e.Spawned = true
		return true
	}
	return false
}
