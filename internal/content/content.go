// Package content supplies the vocabulary pairs that ride on falling pieces.
// Providers may be slow or unreliable; Resolve turns any of them into a Deck
// that is safe to hand to a running game.
package content

import (
	"context"
	"strings"
)

// Pair is one vocabulary entry attached to a piece.
type Pair struct {
	Word       string `yaml:"word" json:"word"`
	Definition string `yaml:"definition" json:"definition"`
}

// Empty reports whether the pair carries no word.
func (p Pair) Empty() bool {
	return strings.TrimSpace(p.Word) == ""
}

// Placeholder is used whenever no real content is available.
var Placeholder = Pair{Word: "word", Definition: "no vocabulary loaded"}

// DefaultTopic is used when a caller does not name a topic.
const DefaultTopic = "general"

// Provider fetches vocabulary for a topic.
type Provider interface {
	Fetch(ctx context.Context, topic string) ([]Pair, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, topic string) ([]Pair, error)

// Fetch calls f.
func (f ProviderFunc) Fetch(ctx context.Context, topic string) ([]Pair, error) {
	return f(ctx, topic)
}

// clean trims whitespace and drops entries without a word.
func clean(pairs []Pair) []Pair {
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		p.Word = strings.TrimSpace(p.Word)
		p.Definition = strings.TrimSpace(p.Definition)
		if p.Word == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
