package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/retro-rocket/internal/core"
)

func TestFitCells(t *testing.T) {
	s := core.NewSurface(600, 800)

	tests := []struct {
		name             string
		maxCols, maxRows int
		wantCols, wantRs int
	}{
		{"height bound", 200, 40, 60, 40},
		{"width bound", 60, 100, 60, 40},
		{"tiny terminal", 1, 1, 1, 1},
		{"no room", 0, 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := FitCells(s, tc.maxCols, tc.maxRows)
			if cols != tc.wantCols || rows != tc.wantRs {
				t.Errorf("FitCells(%d, %d) = %dx%d, expected %dx%d",
					tc.maxCols, tc.maxRows, cols, rows, tc.wantCols, tc.wantRs)
			}
		})
	}

	if cols, rows := FitCells(nil, 80, 24); cols != 0 || rows != 0 {
		t.Errorf("FitCells(nil) = %dx%d, expected 0x0", cols, rows)
	}
}

func TestSampleKeepsBrightestPixel(t *testing.T) {
	s := core.NewSurface(8, 8)
	// One star in the bottom half of the top-left cell
	s.Set(1, 2, core.ColorStar)
	// Dim and bright pixels sharing the top half of the top-right cell
	s.Set(4, 0, core.ColorAsteroid)
	s.Set(5, 1, core.ColorGround)

	cells := Sample(s, 2, 2)
	if len(cells) != 4 {
		t.Fatalf("len(cells) = %d, expected 4", len(cells))
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"star cell top", cells[0].Top, core.ColorBlack},
		{"star cell bottom", cells[0].Bottom, core.ColorStar},
		{"mixed cell top", cells[1].Top, core.ColorGround},
		{"empty cell", cells[2], Cell{Top: core.ColorBlack, Bottom: core.ColorBlack}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, expected %v", tc.got, tc.want)
			}
		})
	}
}

func TestSampleUpscalesSmallSurface(t *testing.T) {
	s := core.NewSurface(2, 2)
	s.Set(0, 0, core.ColorLaser)

	cells := Sample(s, 4, 2)
	if len(cells) != 8 {
		t.Fatalf("len(cells) = %d, expected 8", len(cells))
	}
	if cells[0].Top != core.ColorLaser || cells[1].Top != core.ColorLaser {
		t.Error("Each pixel should cover the cells mapped onto it")
	}
	if cells[2].Top != core.ColorBlack {
		t.Error("Cells past the lit pixel should stay black")
	}
}

func TestPainterRender(t *testing.T) {
	s := core.NewSurface(60, 80)
	s.FillRect(0, 76, 60, 2, core.ColorGround)
	p := NewPainter()

	out := p.Render(s, 30, 20)
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("Render produced %d lines, expected 20", len(lines))
	}
	if n := strings.Count(out, halfBlock); n != 30*20 {
		t.Errorf("Render produced %d cells, expected %d", n, 30*20)
	}

	if p.Render(nil, 30, 20) != "" {
		t.Error("Render of a missing surface should be empty")
	}
}
