package main

import (
	"github.com/automoto/tickblend/shared/fixmath"
	"github.com/automoto/tickblend/shared/leveldata"
	"github.com/automoto/tickblend/shared/view"
	"github.com/gdamore/tcell/v2"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2

type cell struct {
	ch    rune
	style tcell.Style
}

// grid is one frame of the level rasterized to character cells.
type grid struct {
	cols, rows int
	cellPx     int
	scale      int32
	cells      []cell
}

func newGrid(level *leveldata.ArenaData, scale int32, cellPx int) *grid {
	if cellPx <= 0 {
		cellPx = 1
	}
	cols := (level.MapWidth + cellPx - 1) / cellPx
	rows := (level.MapHeight + cellPx*cellAspect - 1) / (cellPx * cellAspect)
	g := &grid{
		cols:   cols,
		rows:   rows,
		cellPx: cellPx,
		scale:  scale,
		cells:  make([]cell, cols*rows),
	}
	g.clear()
	return g
}

func (g *grid) clear() {
	for i := range g.cells {
		g.cells[i] = cell{ch: ' ', style: tcell.StyleDefault}
	}
}

func (g *grid) at(col, row int) (cell, bool) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return cell{}, false
	}
	return g.cells[row*g.cols+col], true
}

func (g *grid) set(col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = cell{ch: ch, style: style}
}

// plotWalls fills every cell a wall rectangle touches.
func (g *grid) plotWalls(walls []leveldata.WallRect, style tcell.Style) {
	rowPx := float64(g.cellPx * cellAspect)
	for _, w := range walls {
		c0, c1 := int(w.X)/g.cellPx, int(w.X+w.W-1)/g.cellPx
		r0, r1 := int(w.Y/rowPx), int((w.Y+w.H-1)/rowPx)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				g.set(c, r, '#', style)
			}
		}
	}
}

// plot draws ch at the cell holding world position p.
func (g *grid) plot(p fixmath.Vector, ch rune, style tcell.Style) {
	col, _ := view.Cell(p, g.scale, g.cellPx)
	_, row := view.Cell(p, g.scale, g.cellPx*cellAspect)
	g.set(col, row, ch, style)
}

// draw copies the grid to the screen at the given offset.
func (g *grid) draw(screen tcell.Screen, x0, y0 int) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			screen.SetContent(x0+col, y0+row, c.ch, nil, c.style)
		}
	}
}
