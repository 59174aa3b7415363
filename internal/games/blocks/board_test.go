package blocks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/wordblocks/internal/content"
	"github.com/vovakirdan/wordblocks/internal/core"
)

func filled(word string) Cell {
	return Cell{Filled: true, Color: core.ColorBlue, Word: word, Definition: word + " def"}
}

func fillRow(b *Board, y int, word string) {
	for x := 0; x < b.Width(); x++ {
		b.Set(x, y, filled(word))
	}
}

func pieceOf(tag string, x, y int) *Piece {
	for _, a := range StandardArchetypes() {
		if a.Tag == tag {
			return &Piece{Archetype: a, Shape: a.Shape.Clone(), X: x, Y: y}
		}
	}
	panic("unknown tag " + tag)
}

// collidesOracle restates the collision rule cell by cell.
func collidesOracle(b *Board, p *Piece, dx, dy int) bool {
	for y, row := range p.Shape {
		for x, on := range row {
			if !on {
				continue
			}
			px, py := p.X+x+dx, p.Y+y+dy
			if px < 0 || px >= b.Width() || py >= b.Height() {
				return true
			}
			if py >= 0 && b.Cell(px, py).Filled {
				return true
			}
		}
	}
	return false
}

func TestCollidesMatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	set := StandardArchetypes()

	for round := 0; round < 200; round++ {
		b := NewBoard(10, 12)
		n := rng.Intn(60)
		for i := 0; i < n; i++ {
			b.Set(rng.Intn(10), rng.Intn(12), filled(""))
		}
		for i := 0; i < 20; i++ {
			a := set[rng.Intn(len(set))]
			p := &Piece{Archetype: a, Shape: a.Shape.Clone(), X: rng.Intn(16) - 4, Y: rng.Intn(18) - 5}
			for r := rng.Intn(4); r > 0; r-- {
				p.Shape = p.Shape.Rotate()
			}
			dx, dy := rng.Intn(3)-1, rng.Intn(2)
			require.Equal(t, collidesOracle(b, p, dx, dy), b.Collides(p, dx, dy),
				"piece %s at (%d,%d) moved (%d,%d)", a.Tag, p.X, p.Y, dx, dy)
		}
	}
}

func TestCollidesAboveTop(t *testing.T) {
	b := NewBoard(10, 10)
	fillRow(b, 0, "")

	// Entirely above the grid: only side walls matter
	p := pieceOf("O", 4, -2)
	assert.False(t, b.Collides(p, 0, 0))
	assert.True(t, b.Collides(p, 0, 1), "lower row reaches the filled row 0")
	assert.True(t, b.Collides(pieceOf("O", -1, -3), 0, 0), "left wall applies above the top")
	assert.True(t, b.Collides(pieceOf("O", 9, -3), 0, 0), "right wall applies above the top")
}

func TestCollidesFloor(t *testing.T) {
	b := NewBoard(10, 10)
	p := pieceOf("O", 0, 8)
	assert.False(t, b.Collides(p, 0, 0))
	assert.True(t, b.Collides(p, 0, 1))
}

func TestMergeDropsCellsAboveTop(t *testing.T) {
	b := NewBoard(6, 6)
	p := pieceOf("I", 0, 0)
	p.Shape = p.Shape.Rotate() // vertical, 4 tall
	p.Y = -2
	p.Content = content.Pair{Word: "ion", Definition: "charged atom"}

	b.Merge(p)

	assert.Equal(t, 2, b.Filled())
	c := b.Cell(0, 1)
	assert.True(t, c.Filled)
	assert.Equal(t, "ion", c.Word)
	assert.Equal(t, "charged atom", c.Definition)
	assert.Equal(t, core.ColorCyan, c.Color)
}

func TestClearFullRowsTetris(t *testing.T) {
	const w, h = 10, 20
	b := NewBoard(w, h)
	for y := h - 4; y < h; y++ {
		fillRow(b, y, "")
	}

	// 12 scattered cells above the full rows
	scattered := []core.Point{
		{X: 0, Y: 15}, {X: 3, Y: 15}, {X: 9, Y: 15},
		{X: 1, Y: 14}, {X: 2, Y: 14}, {X: 8, Y: 14},
		{X: 4, Y: 12}, {X: 5, Y: 12},
		{X: 6, Y: 10}, {X: 7, Y: 9},
		{X: 0, Y: 5}, {X: 9, Y: 4},
	}
	for _, pt := range scattered {
		b.Set(pt.X, pt.Y, filled(""))
	}
	before := b.Filled()
	require.Equal(t, 4*w+12, before)

	res := b.ClearFullRows()

	assert.Equal(t, 4, res.Rows)
	assert.Empty(t, res.Words)
	assert.Equal(t, before-4*w, b.Filled())
	for _, pt := range scattered {
		assert.True(t, b.Cell(pt.X, pt.Y+4).Filled, "cell %v should move down by 4", pt)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < w; x++ {
			assert.False(t, b.Cell(x, y).Filled, "top row %d should be empty", y)
		}
	}
}

func TestClearFullRowsNonContiguous(t *testing.T) {
	b := NewBoard(4, 6)
	fillRow(b, 5, "beta")
	b.Set(0, 4, filled("keep-low"))
	fillRow(b, 3, "alpha")
	b.Set(2, 2, filled("keep-high"))
	fillRow(b, 1, "beta")
	b.Set(1, 1, filled("gamma"))

	res := b.ClearFullRows()

	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, res.Words)
	assert.Equal(t, "gamma def", res.Definitions["gamma"])

	// Survivors keep their order: keep-high above keep-low, both settled at the bottom
	assert.Equal(t, "keep-low", b.Cell(0, 5).Word)
	assert.Equal(t, "keep-high", b.Cell(2, 4).Word)
	assert.Equal(t, 2, b.Filled())
}

func TestClearFullRowsNothingFull(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(0, 3, filled("x"))
	res := b.ClearFullRows()
	assert.Equal(t, 0, res.Rows)
	assert.Empty(t, res.Words)
	assert.Equal(t, 1, b.Filled())
}

func TestBoardRowsIsDeepCopy(t *testing.T) {
	b := NewBoard(3, 3)
	rows := b.Rows()
	rows[0][0].Filled = true
	assert.False(t, b.Cell(0, 0).Filled)
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(3, 3)
	fillRow(b, 2, "x")
	b.Reset()
	assert.Equal(t, 0, b.Filled())
}
