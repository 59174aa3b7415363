package content

// Deck is a cyclic cursor over vocabulary pairs.
// An empty deck yields Placeholder forever.
type Deck struct {
	pairs []Pair
	pos   int
}

// NewDeck creates a deck over a copy of pairs.
func NewDeck(pairs []Pair) *Deck {
	d := &Deck{pairs: make([]Pair, len(pairs))}
	copy(d.pairs, pairs)
	return d
}

// PlaceholderDeck returns a deck that only yields Placeholder.
func PlaceholderDeck() *Deck {
	return NewDeck(nil)
}

// Next returns the next pair, wrapping around at the end.
func (d *Deck) Next() Pair {
	if len(d.pairs) == 0 {
		return Placeholder
	}
	p := d.pairs[d.pos]
	d.pos = (d.pos + 1) % len(d.pairs)
	return p
}

// Len returns the number of distinct pairs in the deck.
func (d *Deck) Len() int {
	return len(d.pairs)
}

// Rewind moves the cursor back to the first pair.
func (d *Deck) Rewind() {
	d.pos = 0
}

// Lookup returns the definition for word, if the deck holds it.
func (d *Deck) Lookup(word string) (string, bool) {
	for _, p := range d.pairs {
		if p.Word == word {
			return p.Definition, true
		}
	}
	return "", false
}
