package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Image is an opaque drawable handle produced by an ImageLoader.
type Image any

// ImageLoader resolves an image path to a drawable handle.
// Implementations are expected to cache and never fail; a missing image is
// the loader's concern.
type ImageLoader interface {
	Get(path string) Image
}

// Surface is the drawing target. Coordinates are map pixels.
type Surface interface {
	DrawImage(img Image, x, y float64)
	FillText(text string, x, y float64)
	StrokeRect(x, y, w, h float64)
}

// Entity is anything the session advances and draws each frame.
type Entity interface {
	Update(dt float64)
	Render(images ImageLoader, dst Surface)
}

// Sprite associates an entity with an image and the offset between the
// entity position and where the image is drawn.
type Sprite struct {
	path         string
	renderOffset core.Vector
}

// NewSprite creates a sprite. The image path must not be empty.
func NewSprite(path string, renderOffset core.Vector) (Sprite, error) {
	if path == "" {
		return Sprite{}, fmt.Errorf("frogger: sprite: %w: empty image path", core.ErrInvalidArgument)
	}
	return Sprite{path: path, renderOffset: renderOffset}, nil
}

// Path returns the image path.
func (s Sprite) Path() string { return s.path }

// RenderOffset returns the draw offset.
func (s Sprite) RenderOffset() core.Vector { return s.renderOffset }

func (s Sprite) draw(images ImageLoader, dst Surface, pos core.Vector) {
	at := pos.Add(s.renderOffset)
	dst.DrawImage(images.Get(s.path), at.X, at.Y)
}

// Enemy is a pooled obstacle moving right along a lane.
// An enemy that is not spawned is parked in the pool and does nothing.
type Enemy struct {
	Sprite   Sprite
	Position core.Vector
	Spawned  bool
	Speed    float64 // Pixels per second

	layout *Layout
}

// Rect returns the enemy hitbox.
func (e *Enemy) Rect() core.Rect {
	return e.layout.EnemyHitbox(e.Position)
}

// Update moves a spawned enemy and returns it to the pool once it has
// passed the right edge of the map.
func (e *Enemy) Update(dt float64) {
	if !e.Spawned {
		return
	}
	e.Position = e.Position.Add(core.Vec(e.Speed*dt, 0))
	if e.Position.X > e.layout.Border.Right() {
		e.Spawned = false
	}
}

// Render draws a spawned enemy.
func (e *Enemy) Render(images ImageLoader, dst Surface) {
	if !e.Spawned {
		return
	}
	e.Sprite.draw(images, dst, e.Position)
}

// moves maps arrow keys to a direction in tiles.
var moves = map[core.KeyCode]core.Vector{
	core.KeyLeft:  core.Vec(-1, 0),
	core.KeyUp:    core.Vec(0, -1),
	core.KeyRight: core.Vec(1, 0),
	core.KeyDown:  core.Vec(0, 1),
}

// Player is the controlled character. It moves one tile per accepted key press.
type Player struct {
	Sprite   Sprite
	Position core.Vector
	Pending  core.Vector // Displacement applied on the next Update

	layout *Layout
}

// Rect returns the player hitbox.
func (p *Player) Rect() core.Rect {
	return p.layout.PlayerHitbox(p.Position)
}

// HandleInput queues a one-tile move for an arrow key. Other keys are ignored.
// A later key before the next Update replaces the earlier one.
func (p *Player) HandleInput(code core.KeyCode) {
	dir, ok := moves[code]
	if !ok {
		return
	}
	p.Pending = core.Vec(dir.X*p.layout.Tile.X, dir.Y*p.layout.Tile.Y)
}

// Update applies the pending move. A move that takes the hitbox off the map
// border is undone entirely. The pending move is always cleared.
func (p *Player) Update(dt float64) {
	prev := p.Position
	p.Position = p.Position.Add(p.Pending)
	if !p.layout.Collision.Collides(p.Rect(), p.layout.Border, false) {
		p.Position = prev
	}
	p.Pending = core.Vector{}
}

// Render draws the player.
func (p *Player) Render(images ImageLoader, dst Surface) {
	p.Sprite.draw(images, dst, p.Position)
}

var (
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Player)(nil)
)
