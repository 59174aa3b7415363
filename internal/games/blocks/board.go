package blocks

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/wordblocks/internal/core"
)

// Default board size.
const (
	DefaultWidth  = 20
	DefaultHeight = 20
)

// Cell is one settled grid position.
type Cell struct {
	Filled     bool
	Color      core.Color
	Word       string
	Definition string
}

// ClearResult reports what a row clear removed.
type ClearResult struct {
	Rows        int
	Words       []string          // sorted, each word once
	Definitions map[string]string // word -> definition for Words
}

// Board is the grid of settled cells, row 0 at the top.
type Board struct {
	w, h   int
	bounds core.Rect
	cells  [][]Cell
}

// NewBoard creates an empty board. It panics on a non-positive size.
func NewBoard(w, h int) *Board {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("blocks: invalid board size %dx%d", w, h))
	}
	b := &Board{w: w, h: h, bounds: core.NewRect(0, 0, w, h)}
	b.Reset()
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = make([][]Cell, b.h)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.w)
	}
}

// Cell returns the cell at (x, y). Out of range positions are empty.
func (b *Board) Cell(x, y int) Cell {
	if !b.bounds.Contains(x, y) {
		return Cell{}
	}
	return b.cells[y][x]
}

// Set writes a settled cell directly. Intended for building test fixtures.
func (b *Board) Set(x, y int, c Cell) {
	if !b.bounds.Contains(x, y) {
		return
	}
	b.cells[y][x] = c
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.h)
	for y := range b.cells {
		out[y] = append([]Cell(nil), b.cells[y]...)
	}
	return out
}

// Collides reports whether p translated by (dx, dy) would leave the board
// sideways, pass the floor, or overlap a settled cell. Cells above the top
// edge are only checked against the side walls.
func (b *Board) Collides(p *Piece, dx, dy int) bool {
	for _, pt := range p.cellsAt(dx, dy) {
		if pt.X < 0 || pt.X >= b.w || pt.Y >= b.h {
			return true
		}
		if pt.Y >= 0 && b.cells[pt.Y][pt.X].Filled {
			return true
		}
	}
	return false
}

// Merge settles p into the grid. Cells above the top edge are dropped.
func (b *Board) Merge(p *Piece) {
	for _, pt := range p.Cells() {
		if !b.bounds.ContainsPoint(pt) {
			continue
		}
		b.cells[pt.Y][pt.X] = Cell{
			Filled:     true,
			Color:      p.Archetype.Color,
			Word:       p.Content.Word,
			Definition: p.Content.Definition,
		}
	}
}

// ClearFullRows removes every full row at once and drops the rows above to
// fill the gap, adding empty rows at the top.
func (b *Board) ClearFullRows() ClearResult {
	kept := make([][]Cell, 0, b.h)
	seen := make(map[string]string)
	cleared := 0

	for y := b.h - 1; y >= 0; y-- {
		row := b.cells[y]
		if !rowFull(row) {
			kept = append(kept, row)
			continue
		}
		cleared++
		for _, c := range row {
			if c.Word != "" {
				seen[c.Word] = c.Definition
			}
		}
	}

	if cleared == 0 {
		return ClearResult{}
	}

	// kept is bottom-up; rebuild top-down with empty rows first.
	next := make([][]Cell, b.h)
	for y := range cleared {
		next[y] = make([]Cell, b.w)
	}
	for i, row := range kept {
		next[b.h-1-i] = row
	}
	b.cells = next

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)

	return ClearResult{Rows: cleared, Words: words, Definitions: seen}
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}
