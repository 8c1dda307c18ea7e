// Package core provides fundamental types and utilities for the frogger platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidArgument reports a value of the wrong shape passed to a
// geometry or entity constructor. It indicates a programmer error.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidGeometry reports a rectangle with a non-positive size.
// errors.Is matches both ErrInvalidGeometry and ErrInvalidArgument.
var ErrInvalidGeometry = fmt.Errorf("%w: invalid geometry", ErrInvalidArgument)

// Vector is an immutable 2D point or size in map pixels.
type Vector struct {
	X, Y float64
}

// Vec creates a new vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// IsIn reports whether v lies inside r. With includeSides the test uses
// the closed extents of r, otherwise the open extents.
func (v Vector) IsIn(r Rect, includeSides bool) bool {
	br := r.BottomRight()
	if includeSides {
		return v.X >= r.topLeft.X && v.X <= br.X &&
			v.Y >= r.topLeft.Y && v.Y <= br.Y
	}
	return v.X > r.topLeft.X && v.X < br.X &&
		v.Y > r.topLeft.Y && v.Y < br.Y
}

// String returns the vector as "(x, y)".
func (v Vector) String() string {
	return "(" + strconv.FormatFloat(v.X, 'g', -1, 64) + ", " +
		strconv.FormatFloat(v.Y, 'g', -1, 64) + ")"
}

// Rect is an axis-aligned rectangle described by its top-left corner and size.
// A Rect built by NewRect always has a positive size. The zero Rect is empty:
// it contains no area and collides with nothing.
type Rect struct {
	topLeft Vector
	size    Vector
}

// NewRect creates a rectangle. It fails with ErrInvalidGeometry when either
// size component is not positive and finite.
func NewRect(topLeft, size Vector) (Rect, error) {
	if !(size.X > 0 && size.Y > 0) {
		return Rect{}, fmt.Errorf("%w: size %s must be positive", ErrInvalidGeometry, size)
	}
	if math.IsInf(size.X, 1) || math.IsInf(size.Y, 1) {
		return Rect{}, fmt.Errorf("%w: size %s must be finite", ErrInvalidGeometry, size)
	}
	return Rect{topLeft: topLeft, size: size}, nil
}

// MustRect is like NewRect but panics on invalid geometry.
// Use it only for constant layouts.
func MustRect(topLeft, size Vector) Rect {
	r, err := NewRect(topLeft, size)
	if err != nil {
		panic(err)
	}
	return r
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Vector { return r.topLeft }

// Size returns the width and height.
func (r Rect) Size() Vector { return r.size }

// BottomRight returns topLeft + size.
func (r Rect) BottomRight() Vector { return r.topLeft.Add(r.size) }

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.topLeft.X }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.topLeft.Y }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.topLeft.X + r.size.X }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.topLeft.Y + r.size.Y }

// Empty reports whether r has no area (the zero Rect).
func (r Rect) Empty() bool {
	return !(r.size.X > 0 && r.size.Y > 0)
}

// Translate returns r moved by d. The size is unchanged.
func (r Rect) Translate(d Vector) Rect {
	return Rect{topLeft: r.topLeft.Add(d), size: r.size}
}

// String returns the rectangle as "[topLeft size]".
func (r Rect) String() string {
	return "[" + r.topLeft.String() + " " + r.size.String() + "]"
}

// Intersects reports whether the areas of r and other overlap, using the
// exact AABB test. With includeSides, touching edges count as overlap.
// The result is symmetric in r and other.
func (r Rect) Intersects(other Rect, includeSides bool) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if includeSides {
		return r.Left() <= other.Right() && r.Right() >= other.Left() &&
			r.Top() <= other.Bottom() && r.Bottom() >= other.Top()
	}
	return r.Left() < other.Right() && r.Right() > other.Left() &&
		r.Top() < other.Bottom() && r.Bottom() > other.Top()
}

// SampledCollides is the grid-sampling collision test: it walks points of r
// at other's size as stride on both axes and tests each with IsIn, then
// tests the four corners of r. It is not symmetric and can miss overlaps
// that fall between samples.
func (r Rect) SampledCollides(other Rect, includeSides bool) bool {
	if r.Empty() || other.Empty() {
		return false
	}

	br := r.BottomRight()
	for x := r.topLeft.X; x < br.X; x += other.size.X {
		for y := r.topLeft.Y; y < br.Y; y += other.size.Y {
			if Vec(x, y).IsIn(other, includeSides) {
				return true
			}
		}
	}

	corners := [4]Vector{
		r.topLeft,
		br,
		Vec(r.topLeft.X, br.Y),
		Vec(br.X, r.topLeft.Y),
	}
	for _, c := range corners {
		if c.IsIn(other, includeSides) {
			return true
		}
	}
	return false
}

// CollisionMode selects the rectangle collision algorithm.
type CollisionMode int

const (
	// CollisionAABB is the exact axis-aligned overlap test.
	CollisionAABB CollisionMode = iota
	// CollisionSampled is the legacy grid-sampling test.
	CollisionSampled
)

// ParseCollisionMode parses "aabb" or "sampled". The empty string is "aabb".
func ParseCollisionMode(s string) (CollisionMode, error) {
	switch s {
	case "", "aabb":
		return CollisionAABB, nil
	case "sampled":
		return CollisionSampled, nil
	default:
		return CollisionAABB, fmt.Errorf("%w: unknown collision mode %q", ErrInvalidArgument, s)
	}
}

// String returns the config name of the mode.
func (m CollisionMode) String() string {
	switch m {
	case CollisionAABB:
		return "aabb"
	case CollisionSampled:
		return "sampled"
	default:
		return "unknown"
	}
}

// Collides tests a against b with the selected algorithm.
func (m CollisionMode) Collides(a, b Rect, includeSides bool) bool {
	if m == CollisionSampled {
		return a.SampledCollides(b, includeSides)
	}
	return a.Intersects(b, includeSides)
}
