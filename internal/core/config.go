package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host clock (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Hitboxes bool  // Draw collision rectangles over sprites
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score reached this session
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is something observable that happened during a tick.
type Event int

const (
	EventHop      Event = iota // Player moved one tile
	EventBlocked               // Player move was reverted at the map border
	EventSquashed              // Player collided with an enemy
	EventScored                // Player reached the water
	EventSpawned               // An enemy left the pool
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventHop:
		return "Hop"
	case EventBlocked:
		return "Blocked"
	case EventSquashed:
		return "Squashed"
	case EventScored:
		return "Scored"
	case EventSpawned:
		return "Spawned"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event

	// RunEnded is set when a positive score was reset this tick.
	// RunScore holds the score the run finished with.
	RunEnded bool
	RunScore int
}

// Has reports whether ev occurred during the tick.
func (r StepResult) Has(ev Event) bool {
	for _, e := range r.Events {
		if e == ev {
			return true
		}
	}
	return false
}
