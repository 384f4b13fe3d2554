package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-rocket/internal/core"
)

// halfBlock shows the top pixel as foreground and the bottom one as background.
const halfBlock = "▀"

// Cell is one terminal cell holding two vertically stacked pixels.
type Cell struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// Painter converts a surface into styled half-block text.
// Styles are cached per colour pair since the palette is small.
type Painter struct {
	styles map[Cell]lipgloss.Style
}

// NewPainter creates a painter with an empty style cache.
func NewPainter() *Painter {
	return &Painter{styles: make(map[Cell]lipgloss.Style)}
}

// FitCells returns the largest cols x rows cell area within maxCols x maxRows
// that keeps the surface's aspect ratio. A cell covers one pixel column and
// two pixel rows, which is roughly square on a terminal.
func FitCells(s *core.Surface, maxCols, maxRows int) (int, int) {
	if !s.Valid() || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	cols := maxCols
	rows := cols * s.Height() / s.Width() / 2
	if rows > maxRows {
		rows = maxRows
		cols = rows * 2 * s.Width() / s.Height()
	}
	return max(cols, 1), max(rows, 1)
}

// Sample downsamples s into cols x rows cells, row-major.
// Each half-cell takes the brightest pixel of the area it covers so that
// single-pixel stars and thin lasers survive the reduction.
func Sample(s *core.Surface, cols, rows int) []Cell {
	if !s.Valid() || cols <= 0 || rows <= 0 {
		return nil
	}
	cells := make([]Cell, 0, cols*rows)
	w, h := s.Width(), s.Height()
	halves := rows * 2

	for cy := 0; cy < rows; cy++ {
		topY0, topY1 := span(2*cy, halves, h)
		botY0, botY1 := span(2*cy+1, halves, h)
		for cx := 0; cx < cols; cx++ {
			x0, x1 := span(cx, cols, w)
			cells = append(cells, Cell{
				Top:    brightest(s, x0, topY0, x1, topY1),
				Bottom: brightest(s, x0, botY0, x1, botY1),
			})
		}
	}
	return cells
}

// span maps slot i of n onto [0, size), always covering at least one pixel.
func span(i, n, size int) (int, int) {
	lo := i * size / n
	hi := (i + 1) * size / n
	if hi <= lo {
		hi = lo + 1
	}
	return lo, min(hi, size)
}

func brightest(s *core.Surface, x0, y0, x1, y1 int) color.RGBA {
	best := core.ColorBlack
	bestLuma := -1
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := s.At(x, y)
			if l := core.Luma(c); l > bestLuma {
				best, bestLuma = c, l
			}
		}
	}
	return best
}

// Render draws s into cols x rows half-block cells.
// Runs of identical cells share one styled segment to keep escape codes down.
func (p *Painter) Render(s *core.Surface, cols, rows int) string {
	cells := Sample(s, cols, rows)
	if len(cells) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(cols*rows*4 + rows)

	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := cells[y*cols : (y+1)*cols]
		for x := 0; x < len(row); {
			start := row[x]
			n := 0
			for x < len(row) && row[x] == start {
				n++
				x++
			}
			sb.WriteString(p.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func (p *Painter) style(c Cell) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(c.Top))).
		Background(lipgloss.Color(hex(c.Bottom)))
	p.styles[c] = st
	return st
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
