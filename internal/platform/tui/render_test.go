package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorDefault)
	s.SetColored(3, 1, '#', core.ColorRed)

	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.Ascii)
	out := NewPalette(r).Render(s)

	expected := "ab    \n   #  "
	if out != expected {
		t.Errorf("Render() = %q, expected %q", out, expected)
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'x', core.ColorPurple)
	s.SetColored(1, 0, 'y', core.ColorPurple)

	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.ANSI256)
	out := NewPalette(r).Render(s)

	if !strings.Contains(out, "xy") {
		t.Errorf("same-color cells should render as one run: %q", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("colored cells should carry escape codes: %q", out)
	}
}

func TestPaletteCoversEveryColor(t *testing.T) {
	p := NewPalette(nil)
	for c := core.ColorRed; c <= core.ColorPurple; c++ {
		if _, ok := p.styles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
}
