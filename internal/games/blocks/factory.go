package blocks

import (
	"fmt"

	"github.com/vovakirdan/wordblocks/internal/content"
)

// Factory turns bag draws and deck pairs into spawned pieces.
type Factory struct {
	bag        *Bag
	deck       *content.Deck
	boardWidth int
}

// NewFactory creates a factory spawning onto a board of the given width.
// It panics if any archetype is wider than the board.
func NewFactory(bag *Bag, deck *content.Deck, boardWidth int) *Factory {
	for _, a := range bag.set {
		if a.Shape.Width() > boardWidth {
			panic(fmt.Sprintf("blocks: archetype %s is wider than the board (%d > %d)",
				a.Tag, a.Shape.Width(), boardWidth))
		}
	}
	if deck == nil {
		deck = content.PlaceholderDeck()
	}
	return &Factory{bag: bag, deck: deck, boardWidth: boardWidth}
}

// Next materializes the next piece, centered at the top of the board.
// Whether it fits is up to the caller (Board.Collides(p, 0, 0)).
func (f *Factory) Next() *Piece {
	a := f.bag.Draw()
	shape := a.Shape.Clone()
	return &Piece{
		Archetype: a,
		Shape:     shape,
		X:         f.boardWidth/2 - shape.Width()/2,
		Y:         0,
		Content:   f.deck.Next(),
	}
}
