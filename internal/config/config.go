// Package config provides YAML-based game configuration loading and
// difficulty management for the frogger platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// FroggerConfig contains all configuration for the Frogger game.
// Distances are map pixels, times are milliseconds, speeds are pixels per second.
type FroggerConfig struct {
	Tile       TileConfig       `yaml:"tile"`
	Sprite     SpriteConfig     `yaml:"sprite"`
	Map        MapConfig        `yaml:"map"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Collision  string           `yaml:"collision"` // "aabb" or "sampled"
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Vec is a YAML-friendly 2D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vector converts to the core vector type.
func (v Vec) Vector() core.Vector {
	return core.Vec(v.X, v.Y)
}

// TileConfig is the size of one grid tile; one key press moves one tile.
type TileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpriteConfig describes the character sprite metrics shared by the player
// and the enemies.
type SpriteConfig struct {
	Size              Vec `yaml:"size"`                // Hitbox size
	RenderOffset      Vec `yaml:"render_offset"`       // Draw position correction
	BoundingBoxOffset Vec `yaml:"bounding_box_offset"` // Hitbox position relative to entity position
}

// MapConfig is the playfield in tiles. The first WaterRows rows are water.
type MapConfig struct {
	Cols      int `yaml:"cols"`
	Rows      int `yaml:"rows"`
	WaterRows int `yaml:"water_rows"`
}

// PlayerConfig defines the player sprite, hitbox and start tile.
type PlayerConfig struct {
	Image       string     `yaml:"image"`
	HitboxInset float64    `yaml:"hitbox_inset"` // Horizontal inset applied on both sides
	Start       TileCoords `yaml:"start"`
}

// TileCoords addresses a tile by column and row.
type TileCoords struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// EnemyConfig defines the enemy pool and spawn policy.
type EnemyConfig struct {
	Image      string  `yaml:"image"`
	PoolSize   int     `yaml:"pool_size"`
	Lanes      int     `yaml:"lanes"` // Lanes start at y=0, one tile apart
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	SpawnMinMS int     `yaml:"spawn_min_ms"`
	SpawnMaxMS int     `yaml:"spawn_max_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`   // Multiplier added to enemy speed at max difficulty
	SpawnReductionMS int     `yaml:"spawn_reduction_ms"` // Spawn delay reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the configuration for values the game cannot run with.
// Errors wrap core.ErrInvalidArgument.
func (c FroggerConfig) Validate() error {
	if c.Tile.Width <= 0 || c.Tile.Height <= 0 {
		return invalid("tile size must be positive, got %vx%v", c.Tile.Width, c.Tile.Height)
	}
	if _, err := core.NewRect(c.Sprite.BoundingBoxOffset.Vector(), c.Sprite.Size.Vector()); err != nil {
		return fmt.Errorf("config: sprite size: %w", err)
	}
	if c.Player.HitboxInset < 0 || 2*c.Player.HitboxInset >= c.Sprite.Size.X {
		return invalid("player hitbox inset %v leaves no hitbox", c.Player.HitboxInset)
	}
	if c.Map.Cols <= 0 || c.Map.Rows <= 0 {
		return invalid("map must have positive cols and rows, got %dx%d", c.Map.Cols, c.Map.Rows)
	}
	if c.Map.WaterRows <= 0 || c.Map.WaterRows >= c.Map.Rows {
		return invalid("water_rows %d must be within 1..%d", c.Map.WaterRows, c.Map.Rows-1)
	}
	if c.Player.Start.Col < 0 || c.Player.Start.Col >= c.Map.Cols {
		return invalid("player start col %d outside map", c.Player.Start.Col)
	}
	// Entity row r occupies map row r+1; the water rows are above the start.
	if c.Player.Start.Row+1 < c.Map.WaterRows || c.Player.Start.Row+1 >= c.Map.Rows {
		return invalid("player start row %d outside land rows", c.Player.Start.Row)
	}
	if c.Enemies.PoolSize <= 0 {
		return invalid("enemy pool_size must be positive, got %d", c.Enemies.PoolSize)
	}
	if c.Enemies.Lanes <= 0 {
		return invalid("enemy lanes must be positive, got %d", c.Enemies.Lanes)
	}
	if c.Map.WaterRows+c.Enemies.Lanes >= c.Map.Rows {
		return invalid("%d lanes below %d water rows leave no grass in %d rows",
			c.Enemies.Lanes, c.Map.WaterRows, c.Map.Rows)
	}
	if c.Enemies.MinSpeed <= 0 || c.Enemies.MaxSpeed < c.Enemies.MinSpeed {
		return invalid("enemy speed range [%v, %v] is invalid", c.Enemies.MinSpeed, c.Enemies.MaxSpeed)
	}
	if c.Enemies.SpawnMinMS < 0 || c.Enemies.SpawnMaxMS < c.Enemies.SpawnMinMS {
		return invalid("spawn range [%d, %d] is invalid", c.Enemies.SpawnMinMS, c.Enemies.SpawnMaxMS)
	}
	if _, err := core.ParseCollisionMode(c.Collision); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", core.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
