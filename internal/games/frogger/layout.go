package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Layout is the fixed map geometry derived from a FroggerConfig.
// It is shared read-only by every entity of a session.
type Layout struct {
	Tile         core.Vector // Tile width/height
	RenderOffset core.Vector // Sprite draw correction
	Cols, Rows   int         // Map size in tiles
	WaterRows    int         // Rows of water at the top of the map
	Lanes        int         // Enemy lanes below the water

	Border core.Rect // Area the player hitbox must stay in
	Water  core.Rect // Area that scores when the player enters it
	Start  core.Vector

	Collision core.CollisionMode

	enemyBox  core.Rect // Enemy hitbox at position (0, 0)
	playerBox core.Rect // Player hitbox at position (0, 0)
}

// NewLayout derives the map geometry. The border and water rectangles start
// one tile above the sprite bounding box offset, so that entity row 0 is the
// first row below the water.
func NewLayout(cfg config.FroggerConfig) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := core.ParseCollisionMode(cfg.Collision)
	if err != nil {
		return nil, err
	}

	tile := core.Vec(cfg.Tile.Width, cfg.Tile.Height)
	bbox := cfg.Sprite.BoundingBoxOffset.Vector()
	size := cfg.Sprite.Size.Vector()
	origin := bbox.Add(core.Vec(0, -tile.Y))
	width := tile.X * float64(cfg.Map.Cols)

	border, err := core.NewRect(origin, core.Vec(width, tile.Y*float64(cfg.Map.Rows)))
	if err != nil {
		return nil, fmt.Errorf("frogger: border: %w", err)
	}
	water, err := core.NewRect(origin, core.Vec(width, tile.Y*float64(cfg.Map.WaterRows)))
	if err != nil {
		return nil, fmt.Errorf("frogger: water: %w", err)
	}
	enemyBox, err := core.NewRect(bbox, size)
	if err != nil {
		return nil, fmt.Errorf("frogger: enemy hitbox: %w", err)
	}

	// The player's hitbox is narrower than the sprite on both sides.
	inset := core.Vec(cfg.Player.HitboxInset, 0)
	playerBox, err := core.NewRect(bbox.Add(inset), size.Add(inset.Scale(-2)))
	if err != nil {
		return nil, fmt.Errorf("frogger: player hitbox: %w", err)
	}

	return &Layout{
		Tile:         tile,
		RenderOffset: cfg.Sprite.RenderOffset.Vector(),
		Cols:         cfg.Map.Cols,
		Rows:         cfg.Map.Rows,
		WaterRows:    cfg.Map.WaterRows,
		Lanes:        cfg.Enemies.Lanes,
		Border:       border,
		Water:        water,
		Start:        core.Vec(tile.X*float64(cfg.Player.Start.Col), tile.Y*float64(cfg.Player.Start.Row)),
		Collision:    mode,
		enemyBox:     enemyBox,
		playerBox:    playerBox,
	}, nil
}

// EnemyHitbox returns the hitbox of an enemy at pos.
func (l *Layout) EnemyHitbox(pos core.Vector) core.Rect {
	return l.enemyBox.Translate(pos)
}

// PlayerHitbox returns the hitbox of the player at pos.
func (l *Layout) PlayerHitbox(pos core.Vector) core.Rect {
	return l.playerBox.Translate(pos)
}

// LaneY returns the y position of an entity in the given lane. Lane 0 is
// the stone row right below the water.
func (l *Layout) LaneY(lane int) float64 {
	return l.Tile.Y * float64(lane+l.WaterRows-1)
}
