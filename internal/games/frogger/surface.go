package frogger

import (
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Terminal cells per map tile.
const (
	TileCols = 10
	TileRows = 3
)

// Image paths for the map rows.
const (
	WaterImage = "images/water-block.png"
	StoneImage = "images/stone-block.png"
	GrassImage = "images/grass-block.png"
)

// Glyph is the terminal rendition of an image. Spaces are transparent.
// DX/DY shift the glyph in cells, standing in for the transparent padding
// around the body of the original artwork.
type Glyph struct {
	Rows   []string
	Color  core.Color
	DX, DY int
}

// Atlas is an ImageLoader backed by glyphs. Unknown paths resolve to a
// placeholder so a bad image path is visible rather than fatal.
type Atlas map[string]Glyph

var missingGlyph = Glyph{Rows: []string{"??"}, Color: core.ColorBrightRed}

// Get returns the glyph for path.
func (a Atlas) Get(path string) Image {
	if g, ok := a[path]; ok {
		return g
	}
	return missingGlyph
}

func fullTile(r rune) []string {
	row := make([]rune, TileCols)
	for i := range row {
		row[i] = r
	}
	rows := make([]string, TileRows)
	for i := range rows {
		rows[i] = string(row)
	}
	return rows
}

// DefaultAtlas returns glyphs for the map tiles and the stock characters.
func DefaultAtlas() Atlas {
	return Atlas{
		WaterImage: {Rows: fullTile('≈'), Color: core.ColorBrightBlue, DY: 2},
		StoneImage: {Rows: fullTile('▒'), Color: core.ColorGray, DY: 2},
		GrassImage: {Rows: fullTile('░'), Color: core.ColorGreen, DY: 2},
		"images/enemy-bug.png": {
			Rows: []string{
				"  ______  ",
				" /o  o  \\>",
				" `-^--^-' ",
			},
			Color: core.ColorRed,
			DY:    3,
		},
		"images/char-cat-girl.png": {
			Rows: []string{
				"   /\\_/\\  ",
				"  ( o.o ) ",
				"   /| |\\  ",
			},
			Color: core.ColorBrightYellow,
			DY:    3,
		},
		"images/char-boy.png": {
			Rows: []string{
				"    @@    ",
				"   /[]\\   ",
				"    /\\    ",
			},
			Color: core.ColorBrightYellow,
			DY:    3,
		},
	}
}

// ScreenSurface draws map pixels onto a core.Screen. Cell (X, Y) of the
// screen holds the top-left of the map border.
type ScreenSurface struct {
	screen *core.Screen
	origin core.Vector // Map pixel at the board's top-left cell
	cell   core.Vector // Map pixels per cell
	X, Y   int         // Board offset on screen

	// Colors for text and rectangle strokes
	TextColor   core.Color
	StrokeColor core.Color
}

// NewScreenSurface maps layout pixels onto dst with the board at (x, y).
func NewScreenSurface(dst *core.Screen, layout *Layout, x, y int) *ScreenSurface {
	return &ScreenSurface{
		screen:      dst,
		origin:      layout.Border.TopLeft(),
		cell:        core.Vec(layout.Tile.X/TileCols, layout.Tile.Y/TileRows),
		X:           x,
		Y:           y,
		TextColor:   core.ColorWhite,
		StrokeColor: core.ColorMagenta,
	}
}

// BoardSize returns the board size in cells.
func BoardSize(layout *Layout) (w, h int) {
	return layout.Cols * TileCols, layout.Rows * TileRows
}

// CellAt converts a map pixel to a screen cell.
func (s *ScreenSurface) CellAt(x, y float64) (int, int) {
	// The epsilon absorbs float error on exact tile boundaries.
	const eps = 1e-6
	col := int(math.Floor((x-s.origin.X)/s.cell.X + eps))
	row := int(math.Floor((y-s.origin.Y)/s.cell.Y + eps))
	return s.X + col, s.Y + row
}

// DrawImage draws a Glyph at map pixel (x, y). Other image types are ignored.
func (s *ScreenSurface) DrawImage(img Image, x, y float64) {
	g, ok := img.(Glyph)
	if !ok {
		return
	}
	cx, cy := s.CellAt(x, y)
	cx += g.DX
	cy += g.DY
	for dy, line := range g.Rows {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				s.screen.SetColored(cx+dx, cy+dy, r, g.Color)
			}
			dx++
		}
	}
}

// FillText draws text starting at map pixel (x, y).
func (s *ScreenSurface) FillText(text string, x, y float64) {
	cx, cy := s.CellAt(x, y)
	s.screen.DrawTextColored(cx, cy, text, s.TextColor)
}

// StrokeRect outlines the map-pixel rectangle.
func (s *ScreenSurface) StrokeRect(x, y, w, h float64) {
	x0, y0 := s.CellAt(x, y)
	x1, y1 := s.CellAt(x+w, y+h)
	s.screen.DrawBox(x0, y0, max(x1-x0, 1), max(y1-y0, 1), s.StrokeColor)
}

// TileImage returns the image for a map row: water first, then the enemy
// lanes, then grass.
func (l *Layout) TileImage(row int) string {
	switch {
	case row < l.WaterRows:
		return WaterImage
	case row < l.WaterRows+l.Lanes:
		return StoneImage
	default:
		return GrassImage
	}
}

// TilePosition returns the map pixel where the image of tile (col, row) is drawn.
func (l *Layout) TilePosition(col, row int) core.Vector {
	return core.Vec(l.Tile.X*float64(col), l.Tile.Y*float64(row))
}

var _ Surface = (*ScreenSurface)(nil)
