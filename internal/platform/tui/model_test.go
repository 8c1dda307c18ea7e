package tui

import (
	"path/filepath"
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// fakeGame records every frame it is stepped with.
type fakeGame struct {
	resets  int
	frames  []core.InputFrame
	dts     []time.Duration
	score   int
	endRun  int // Score reported as a finished run on the next step
	events  []core.Event
	renders int
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState    { return core.GameState{Score: g.score} }

func (g *fakeGame) Render(dst *core.Screen) {
	g.renders++
	dst.DrawText(0, 0, "board")
}

func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	frame := core.NewInputFrame()
	frame.Keys = slices.Clone(in.Keys)
	for a, ok := range in.Actions {
		if ok {
			frame.Set(a)
		}
	}
	g.frames = append(g.frames, frame)
	g.dts = append(g.dts, dt)

	result := core.StepResult{State: g.State(), Events: g.events}
	if g.endRun > 0 {
		result.RunEnded, result.RunScore = true, g.endRun
		g.endRun = 0
	}
	return result
}

func newTestModel(t *testing.T, game *fakeGame, store *storage.Store, opts GameOptions) GameModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewGameModel(game, store, cfg, opts)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should schedule a tick")
	}
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGameModelDeliversKeysOnTick(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, GameOptions{})
	if game.resets != 1 {
		t.Fatalf("Init should reset the game once, got %d", game.resets)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	now := time.Now()
	m, cmd := update(t, m, TickMsg(now))
	if cmd == nil {
		t.Error("a tick should schedule the next tick")
	}

	if len(game.frames) != 1 {
		t.Fatalf("expected 1 step, got %d", len(game.frames))
	}
	keys := game.frames[0].Keys
	if len(keys) != 1 || keys[0] != (core.KeyEvent{Code: core.KeyUp, Down: true}) {
		t.Errorf("first frame keys = %v, want key-down Up", keys)
	}
	if game.dts[0] != 0 {
		t.Errorf("first frame dt = %v, want 0", game.dts[0])
	}

	// Frame input is cleared between ticks.
	m, _ = update(t, m, TickMsg(now.Add(16*time.Millisecond)))
	if len(game.frames[1].Keys) != 0 {
		t.Errorf("second frame keys = %v, want none", game.frames[1].Keys)
	}
	if game.dts[1] != 16*time.Millisecond {
		t.Errorf("second frame dt = %v, want 16ms", game.dts[1])
	}
}

func TestGameModelReleasesQuietKeys(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, GameOptions{HoldWindow: 50 * time.Millisecond})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg(time.Now().Add(time.Second)))

	want := []core.KeyEvent{
		{Code: core.KeyLeft, Down: true},
		{Code: core.KeyLeft, Down: false},
	}
	got := game.frames[0].Keys
	if !slices.Equal(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestGameModelRestartReleasesKeys(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, GameOptions{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m, _ = update(t, m, TickMsg(time.Now()))

	frame := game.frames[1]
	if !frame.Has(core.ActionRestart) {
		t.Error("restart should reach the game")
	}
	if !slices.Contains(frame.Keys, core.KeyEvent{Code: core.KeyRight, Down: false}) {
		t.Errorf("restart should release held keys, got %v", frame.Keys)
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	t.Run("back returns to menu", func(t *testing.T) {
		m := newTestModel(t, &fakeGame{}, nil, GameOptions{})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
		if !m.BackToMenu() || m.IsQuitting() {
			t.Errorf("BackToMenu=%v IsQuitting=%v, want true false", m.BackToMenu(), m.IsQuitting())
		}
		if m.View() != "" {
			t.Error("view should be empty after leaving")
		}
	})

	t.Run("standalone back quits", func(t *testing.T) {
		m := newTestModel(t, &fakeGame{}, nil, GameOptions{Standalone: true})
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
		if !m.IsQuitting() || cmd == nil {
			t.Error("standalone back should quit")
		}
	})

	t.Run("quit key", func(t *testing.T) {
		m := newTestModel(t, &fakeGame{}, nil, GameOptions{})
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		if !m.IsQuitting() || cmd == nil {
			t.Error("q should quit")
		}
	})
}

func TestGameModelSavesFinishedRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	game := &fakeGame{endRun: 3}
	m := newTestModel(t, game, store, GameOptions{Player: "ana"})
	m, _ = update(t, m, TickMsg(time.Now()))

	// Leaving mid-run stores the current score too.
	game.score = 2
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 stored runs, got %d", len(scores))
	}
	if scores[0].Score != 3 || scores[0].Player != "ana" {
		t.Errorf("best run = %+v, want score 3 by ana", scores[0])
	}
	if scores[1].Score != 2 {
		t.Errorf("second run score = %d, want 2", scores[1].Score)
	}
}

func TestGameModelViewDrawsFooter(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, GameOptions{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 10})

	view := m.View()
	if game.renders == 0 {
		t.Fatal("View should render the game")
	}
	if !containsLine(view, "board") || !containsLine(view, "p: pause") {
		t.Errorf("view missing board or footer:\n%s", view)
	}
}
