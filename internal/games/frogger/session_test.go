package frogger

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

func newTestSession(t *testing.T, mutate func(*config.FroggerConfig)) *GameSession {
	t.Helper()
	cfg := config.DefaultFroggerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewGameSession(cfg, 42)
	if err != nil {
		t.Fatalf("NewGameSession() failed: %v", err)
	}
	return s
}

// hop presses and releases a key with a zero-length tick in between.
// A zero delta never fires the spawn timer, so the lanes stay empty.
func hop(s *GameSession, code core.KeyCode) TickReport {
	s.KeyDown(code)
	r := s.Tick(0)
	s.KeyUp(code)
	return r
}

func TestLayoutGeometry(t *testing.T) {
	s := newTestSession(t, nil)
	l := s.Layout()

	if got := l.Border; got.TopLeft() != core.Vec(0, 54) || got.Size() != core.Vec(505, 498) {
		t.Errorf("border = %v, expected [(0, 54) (505, 498)]", got)
	}
	if got := l.Water; got.TopLeft() != core.Vec(0, 54) || got.Size() != core.Vec(505, 83) {
		t.Errorf("water = %v, expected [(0, 54) (505, 83)]", got)
	}
	if l.Start != core.Vec(202, 332) {
		t.Errorf("start = %v, expected (202, 332)", l.Start)
	}

	hit := s.Player().Rect()
	if hit.TopLeft() != core.Vec(220, 469) || hit.Size() != core.Vec(64, 76) {
		t.Errorf("player hitbox = %v, expected [(220, 469) (64, 76)]", hit)
	}
	if s.Player().Position != l.Start {
		t.Errorf("player should start at %v, got %v", l.Start, s.Player().Position)
	}
}

func TestNewSpriteRejectsEmptyPath(t *testing.T) {
	if _, err := NewSprite("", core.Vec(0, 64)); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	sp, err := NewSprite("images/enemy-bug.png", core.Vec(0, 64))
	if err != nil {
		t.Fatal(err)
	}
	if sp.Path() != "images/enemy-bug.png" || sp.RenderOffset() != core.Vec(0, 64) {
		t.Errorf("sprite = %+v", sp)
	}
}

func TestNewGameSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	cfg.Enemies.PoolSize = 0
	if _, err := NewGameSession(cfg, 1); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestPlayerHopsOneTile(t *testing.T) {
	s := newTestSession(t, nil)
	p := s.Player()

	s.KeyDown(core.KeyUp)
	if p.Pending != core.Vec(0, -83) {
		t.Fatalf("pending = %v, expected (0, -83)", p.Pending)
	}

	r := s.Tick(0)
	if p.Position != core.Vec(202, 249) {
		t.Errorf("position = %v, expected (202, 249)", p.Position)
	}
	if p.Pending != (core.Vector{}) {
		t.Errorf("pending should be cleared, got %v", p.Pending)
	}
	if !hasEvent(r, core.EventHop) {
		t.Errorf("expected Hop event, got %v", r.Events)
	}

	s.Tick(0)
	if p.Position != core.Vec(202, 249) {
		t.Errorf("player moved without input: %v", p.Position)
	}
}

func TestHeldKeyMovesOnce(t *testing.T) {
	s := newTestSession(t, nil)
	p := s.Player()

	s.KeyDown(core.KeyLeft)
	s.Tick(0)
	s.KeyDown(core.KeyLeft) // auto-repeat
	s.Tick(0)
	if p.Position != core.Vec(101, 332) {
		t.Errorf("held key should move once, position = %v", p.Position)
	}

	s.KeyUp(core.KeyLeft)
	s.KeyDown(core.KeyLeft)
	s.Tick(0)
	if p.Position != core.Vec(0, 332) {
		t.Errorf("re-pressed key should move again, position = %v", p.Position)
	}
}

func TestLastKeyBeforeUpdateWins(t *testing.T) {
	s := newTestSession(t, nil)

	s.KeyDown(core.KeyUp)
	s.KeyDown(core.KeyRight)
	if got := s.Player().Pending; got != core.Vec(101, 0) {
		t.Errorf("pending = %v, expected (101, 0)", got)
	}

	s.KeyDown(core.KeyCode(65)) // not an arrow
	if got := s.Player().Pending; got != core.Vec(101, 0) {
		t.Errorf("non-arrow key changed pending to %v", got)
	}
}

func TestMoveOffBorderIsReverted(t *testing.T) {
	tests := []struct {
		name string
		keys []core.KeyCode
		want core.Vector
	}{
		{"down from start", []core.KeyCode{core.KeyDown}, core.Vec(202, 332)},
		{"left edge", []core.KeyCode{core.KeyLeft, core.KeyLeft, core.KeyLeft}, core.Vec(0, 332)},
		{"right edge", []core.KeyCode{core.KeyRight, core.KeyRight, core.KeyRight}, core.Vec(404, 332)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			var last TickReport
			for _, k := range tc.keys {
				last = hop(s, k)
			}
			if got := s.Player().Position; got != tc.want {
				t.Errorf("position = %v, expected %v", got, tc.want)
			}
			if !hasEvent(last, core.EventBlocked) {
				t.Errorf("expected Blocked event, got %v", last.Events)
			}
			if s.Player().Pending != (core.Vector{}) {
				t.Error("pending should be cleared after a blocked move")
			}
		})
	}
}

func TestReachingWaterScores(t *testing.T) {
	for _, mode := range []string{"aabb", "sampled"} {
		t.Run(mode, func(t *testing.T) {
			s := newTestSession(t, func(c *config.FroggerConfig) { c.Collision = mode })

			for i := 0; i < 4; i++ {
				if r := hop(s, core.KeyUp); hasEvent(r, core.EventScored) {
					t.Fatalf("scored early on hop %d", i+1)
				}
			}
			if s.Player().Position != core.Vec(202, 0) {
				t.Fatalf("expected top lane, got %v", s.Player().Position)
			}

			r := hop(s, core.KeyUp)
			if !hasEvent(r, core.EventScored) {
				t.Errorf("expected Scored event, got %v", r.Events)
			}
			if s.Score() != 1 || s.Best() != 1 {
				t.Errorf("score/best = %d/%d, expected 1/1", s.Score(), s.Best())
			}
			if s.Player().Position != core.Vec(202, 332) {
				t.Errorf("player should respawn at start, got %v", s.Player().Position)
			}
		})
	}
}

func TestEnemyCollisionResetsScore(t *testing.T) {
	s := newTestSession(t, nil)
	s.score, s.best = 3, 3

	s.enemies[0].Position = core.Vec(0, 166)
	s.enemies[0].Speed = 150
	s.enemies[0].Spawned = true
	s.Player().Position = core.Vec(0, 166)

	r := s.Tick(0.016)
	if !hasEvent(r, core.EventSquashed) {
		t.Fatalf("expected Squashed event, got %v", r.Events)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0", s.Score())
	}
	if s.Best() != 3 {
		t.Errorf("best = %d, expected 3", s.Best())
	}
	if !r.RunEnded || r.RunScore != 3 {
		t.Errorf("run ended = %v/%d, expected true/3", r.RunEnded, r.RunScore)
	}
	if s.Player().Position != core.Vec(202, 332) {
		t.Errorf("player should respawn at (202, 332), got %v", s.Player().Position)
	}
}

func TestSquashWithZeroScoreDoesNotEndRun(t *testing.T) {
	s := newTestSession(t, nil)
	s.enemies[0].Position = s.Player().Position
	s.enemies[0].Spawned = true

	r := s.Tick(0)
	if !hasEvent(r, core.EventSquashed) {
		t.Fatalf("expected Squashed event, got %v", r.Events)
	}
	if r.RunEnded {
		t.Error("a zero-score squash should not end a run")
	}
}

func TestParkedEnemyDoesNotCollide(t *testing.T) {
	s := newTestSession(t, nil)
	s.enemies[0].Position = s.Player().Position

	if r := s.Tick(0); hasEvent(r, core.EventSquashed) {
		t.Error("an enemy in the pool should not collide")
	}
}

func TestEnemyDespawnsPastRightEdge(t *testing.T) {
	s := newTestSession(t, nil)
	e := &s.enemies[0]
	e.Spawned = true
	e.Speed = 20

	e.Position = core.Vec(495, 0)
	e.Update(0.5)
	if !e.Spawned || e.Position.X != 505 {
		t.Errorf("enemy at the edge should stay spawned: %+v", e.Position)
	}

	e.Update(0.5)
	if e.Spawned {
		t.Error("enemy past the edge should return to the pool")
	}

	// Parked enemies do not move.
	before := e.Position
	e.Update(10)
	if e.Position != before {
		t.Errorf("parked enemy moved to %v", e.Position)
	}
}

func TestSpawnFillsPoolThenStops(t *testing.T) {
	s := newTestSession(t, nil)

	for i := 0; i < 5; i++ {
		if !s.spawnEnemy() {
			t.Fatalf("spawn %d failed with free slots", i+1)
		}
	}
	if s.spawnEnemy() {
		t.Error("spawn should fail with a full pool")
	}

	for i, e := range s.Enemies() {
		if e.Position.X != -101 {
			t.Errorf("enemy %d x = %v, expected -101", i, e.Position.X)
		}
		if y := e.Position.Y; y != 0 && y != 83 && y != 166 {
			t.Errorf("enemy %d y = %v, expected a lane", i, y)
		}
		if e.Speed < 101 || e.Speed >= 303 {
			t.Errorf("enemy %d speed = %v, out of [101, 303)", i, e.Speed)
		}
	}

	// The first free slot is reused.
	s.enemies[2].Spawned = false
	if !s.spawnEnemy() || !s.enemies[2].Spawned {
		t.Error("freed slot should be reused")
	}
}

func TestLanesSitOnStoneRows(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.FroggerConfig)
	}{
		{"default map", nil},
		{"two water rows", func(c *config.FroggerConfig) {
			c.Map.Rows = 7
			c.Map.WaterRows = 2
			c.Player.Start.Row = 5
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, tc.mutate)
			l := s.Layout()

			for lane := 0; lane < l.Lanes; lane++ {
				y := l.LaneY(lane)
				hit := l.EnemyHitbox(core.Vec(0, y))
				if hit.Intersects(l.Water, false) {
					t.Errorf("lane %d hitbox %v overlaps water %v", lane, hit, l.Water)
				}
				// Entity row r occupies map row r+1.
				row := int(y/l.Tile.Y) + 1
				if img := l.TileImage(row); img != StoneImage {
					t.Errorf("lane %d is drawn on map row %d as %s, expected stone", lane, row, img)
				}
			}

			for s.spawnEnemy() {
			}
			// Spawned enemies start left of the map; check them in the first column.
			for i, e := range s.Enemies() {
				if l.EnemyHitbox(core.Vec(0, e.Position.Y)).Intersects(l.Water, false) {
					t.Errorf("spawned enemy %d at %v is in the water", i, e.Position)
				}
			}
		})
	}
}

func TestSpawnTimer(t *testing.T) {
	s := newTestSession(t, nil)

	// The countdown starts at zero, so a zero delta does not fire it.
	if r := s.Tick(0); hasEvent(r, core.EventSpawned) {
		t.Error("zero delta should not spawn")
	}

	r := s.Tick(0.001)
	if !hasEvent(r, core.EventSpawned) {
		t.Fatalf("first positive delta should spawn, got %v", r.Events)
	}
	if s.timeUntilNextSpawn < 500 || s.timeUntilNextSpawn >= 3000 {
		t.Errorf("next spawn in %vms, expected [500, 3000)", s.timeUntilNextSpawn)
	}
	if s.timeUntilNextSpawn != float64(int(s.timeUntilNextSpawn)) {
		t.Errorf("countdown should be whole milliseconds, got %v", s.timeUntilNextSpawn)
	}

	// Draining just short of the countdown does not spawn again.
	wait := s.timeUntilNextSpawn - 1
	if r := s.Tick(wait / 1000); hasEvent(r, core.EventSpawned) {
		t.Error("spawned before the countdown went negative")
	}
}

func TestSessionsAreDeterministic(t *testing.T) {
	a := newTestSession(t, nil)
	b := newTestSession(t, nil)

	for i := 0; i < 600; i++ {
		if i%40 == 0 {
			a.KeyDown(core.KeyUp)
			b.KeyDown(core.KeyUp)
		}
		ra, rb := a.Tick(1.0/60), b.Tick(1.0/60)
		if len(ra.Events) != len(rb.Events) {
			t.Fatalf("tick %d: events diverged: %v vs %v", i, ra.Events, rb.Events)
		}
		if i%40 == 1 {
			a.KeyUp(core.KeyUp)
			b.KeyUp(core.KeyUp)
		}
	}

	for i := range a.Enemies() {
		ea, eb := a.enemies[i], b.enemies[i]
		if ea.Position != eb.Position || ea.Spawned != eb.Spawned || ea.Speed != eb.Speed {
			t.Errorf("enemy %d diverged: %+v vs %+v", i, ea.Position, eb.Position)
		}
	}
	if a.Player().Position != b.Player().Position || a.Score() != b.Score() {
		t.Error("player state diverged")
	}
}

func TestRestartKeepsBest(t *testing.T) {
	s := newTestSession(t, nil)
	for i := 0; i < 5; i++ {
		hop(s, core.KeyUp)
	}
	s.spawnEnemy()
	s.KeyDown(core.KeyLeft)

	s.Restart()

	if s.Score() != 0 || s.Best() != 1 {
		t.Errorf("score/best = %d/%d, expected 0/1", s.Score(), s.Best())
	}
	for i, e := range s.Enemies() {
		if e.Spawned {
			t.Errorf("enemy %d still spawned after restart", i)
		}
	}
	if s.Keyboard().IsPressed(core.KeyLeft) {
		t.Error("keys should be released on restart")
	}
	if s.Player().Position != s.Layout().Start || s.Player().Pending != (core.Vector{}) {
		t.Error("player should be back at start with no pending move")
	}
}

func TestDifficultyScalesSpawnedSpeed(t *testing.T) {
	s := newTestSession(t, func(c *config.FroggerConfig) {
		c.Difficulty.Enabled = true
		c.Enemies.MinSpeed = 100
		c.Enemies.MaxSpeed = 100.5
	})
	s.score = 20 // max_at: level 1.0

	s.spawnEnemy()
	if got := s.enemies[0].Speed; got < 200 || got >= 201 {
		t.Errorf("speed at max difficulty = %v, expected about double", got)
	}
}

func TestEntitiesDrawOrder(t *testing.T) {
	s := newTestSession(t, nil)
	ents := s.Entities()
	if len(ents) != 6 {
		t.Fatalf("expected 5 enemies and the player, got %d", len(ents))
	}
	if _, ok := ents[len(ents)-1].(*Player); !ok {
		t.Error("player should be drawn last")
	}
}

func hasEvent(r TickReport, ev core.Event) bool {
	for _, e := range r.Events {
		if e == ev {
			return true
		}
	}
	return false
}
