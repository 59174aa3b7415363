package blocks

import (
	"github.com/vovakirdan/wordblocks/internal/content"
	"github.com/vovakirdan/wordblocks/internal/core"
)

// Piece is the active falling piece. Shape holds the current rotation and
// (X, Y) is the board position of its top-left corner.
type Piece struct {
	Archetype Archetype
	Shape     Shape
	X, Y      int
	Content   content.Pair
}

// Cells returns the board coordinates of every occupied cell.
func (p *Piece) Cells() []core.Point {
	return p.cellsAt(0, 0)
}

func (p *Piece) cellsAt(dx, dy int) []core.Point {
	origin := core.Point{X: p.X, Y: p.Y}.Add(dx, dy)
	pts := make([]core.Point, 0, 4)
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				pts = append(pts, origin.Add(x, y))
			}
		}
	}
	return pts
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}
