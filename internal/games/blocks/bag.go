package blocks

import "math/rand"

// Bag hands out archetypes so that every run of len(set) draws, starting at a
// refill, contains each archetype exactly once.
type Bag struct {
	set   []Archetype
	queue []Archetype
	rng   *rand.Rand
}

// NewBag creates an empty bag over set. The first Draw fills it.
func NewBag(set []Archetype, rng *rand.Rand) *Bag {
	if len(set) == 0 {
		panic("blocks: bag needs at least one archetype")
	}
	return &Bag{
		set: append([]Archetype(nil), set...),
		rng: rng,
	}
}

// Refill replaces the bag contents with a fresh uniform permutation of the
// full set and returns a copy of it.
func (b *Bag) Refill() []Archetype {
	b.queue = append(b.queue[:0], b.set...)
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
	return append([]Archetype(nil), b.queue...)
}

// Draw removes and returns the next archetype, refilling when empty.
func (b *Bag) Draw() Archetype {
	if len(b.queue) == 0 {
		b.Refill()
	}
	a := b.queue[0]
	b.queue = b.queue[1:]
	return a
}

// Remaining returns how many draws are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.queue)
}

// Size returns the number of archetypes in the full set.
func (b *Bag) Size() int {
	return len(b.set)
}
