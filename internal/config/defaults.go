package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the built-in Frogger configuration.
// It matches defaults/frogger.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Tile: TileConfig{
			Width:  101,
			Height: 83,
		},
		Sprite: SpriteConfig{
			Size:              Vec{X: 100, Y: 76},
			RenderOffset:      Vec{X: 0, Y: 64},
			BoundingBoxOffset: Vec{X: 0, Y: 137},
		},
		Map: MapConfig{
			Cols:      5,
			Rows:      6,
			WaterRows: 1,
		},
		Player: PlayerConfig{
			Image:       "images/char-cat-girl.png",
			HitboxInset: 18,
			Start:       TileCoords{Col: 2, Row: 4},
		},
		Enemies: EnemyConfig{
			Image:      "images/enemy-bug.png",
			PoolSize:   5,
			Lanes:      3,
			MinSpeed:   101,
			MaxSpeed:   303,
			SpawnMinMS: 500,
			SpawnMaxMS: 3000,
		},
		Collision: "aabb",
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpawnReductionMS: 1500,
			},
		},
	}
}
