package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func TestCellAtTileGrid(t *testing.T) {
	s := newTestSession(t, nil)
	scr := core.NewScreen(60, 20)
	surf := NewScreenSurface(scr, s.Layout(), 5, 1)

	tests := []struct {
		x, y         float64
		wantX, wantY int
	}{
		{0, 54, 5, 1},      // border top-left
		{101, 54, 15, 1},   // one tile right
		{0, 137, 5, 4},     // one tile down
		{505, 552, 55, 19}, // border bottom-right
		{-101, 54, -5, 1},  // off-board enemy spawn column
	}
	for _, tc := range tests {
		x, y := surf.CellAt(tc.x, tc.y)
		if x != tc.wantX || y != tc.wantY {
			t.Errorf("CellAt(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
		}
	}

	if w, h := BoardSize(s.Layout()); w != 50 || h != 18 {
		t.Errorf("BoardSize() = %dx%d, expected 50x18", w, h)
	}
}

func TestTileImages(t *testing.T) {
	l := newTestSession(t, nil).Layout()
	want := []string{WaterImage, StoneImage, StoneImage, StoneImage, GrassImage, GrassImage}
	for row, img := range want {
		if got := l.TileImage(row); got != img {
			t.Errorf("row %d image = %s, expected %s", row, got, img)
		}
	}
}

func TestDrawImageTransparency(t *testing.T) {
	s := newTestSession(t, nil)
	scr := core.NewScreen(20, 10)
	scr.FillRect(0, 0, 20, 10, '.', core.ColorDefault)
	surf := NewScreenSurface(scr, s.Layout(), 0, 0)

	img := Glyph{Rows: []string{"a b"}, Color: core.ColorRed, DX: 1, DY: 2}
	surf.DrawImage(img, 0, 54)

	if scr.Get(1, 2) != 'a' || scr.Get(3, 2) != 'b' {
		t.Errorf("glyph not drawn at offset: %q", scr.Row(2))
	}
	if scr.Get(2, 2) != '.' {
		t.Error("spaces should be transparent")
	}

	surf.DrawImage("not a glyph", 0, 54)
	if scr.Get(0, 0) != '.' {
		t.Error("unknown image types should be ignored")
	}
}

func TestAtlasMissingImage(t *testing.T) {
	atlas := DefaultAtlas()
	g, ok := atlas.Get("images/nope.png").(Glyph)
	if !ok || g.Rows[0] != "??" {
		t.Errorf("missing image should resolve to the placeholder, got %+v", g)
	}
	for _, path := range []string{WaterImage, StoneImage, GrassImage, "images/enemy-bug.png", "images/char-cat-girl.png"} {
		g := atlas.Get(path).(Glyph)
		for i, row := range g.Rows {
			if n := len([]rune(row)); n != TileCols {
				t.Errorf("%s row %d is %d cells wide, expected %d", path, i, n, TileCols)
			}
		}
	}
}

func TestStrokeRect(t *testing.T) {
	s := newTestSession(t, nil)
	scr := core.NewScreen(60, 20)
	surf := NewScreenSurface(scr, s.Layout(), 0, 0)

	surf.StrokeRect(0, 54, 101, 83)
	if scr.Get(0, 0) != '┌' || scr.Get(9, 2) != '┘' {
		t.Errorf("box corners wrong:\n%s", scr.String())
	}

	// A rectangle narrower than a cell still leaves a mark.
	surf.StrokeRect(303, 54, 1, 1)
	if scr.Get(30, 0) != '□' {
		t.Errorf("tiny rect = %q, expected □", scr.Get(30, 0))
	}
}
