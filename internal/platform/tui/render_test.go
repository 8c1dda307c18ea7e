package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(1, 1, "go")

	got := RenderScreen(s)
	want := "hello\n go  "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenColoredKeepsText(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(3, 0, "cd", core.ColorGreen)

	got := RenderScreen(s)
	if strings.Count(got, "\n") != 0 {
		t.Errorf("one row should render without newlines: %q", got)
	}
	for _, part := range []string{"ab", "cd"} {
		if !strings.Contains(got, part) {
			t.Errorf("rendered row %q lost %q", got, part)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(core.Color(250)).Render("x")
	if !strings.Contains(got, "x") {
		t.Errorf("fallback style dropped text: %q", got)
	}
}
