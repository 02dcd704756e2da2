package engine

import "math/rand"

// DealStrategy selects how a variant lays out a new game.
type DealStrategy string

const (
	// DealStandard is a plain Fisher-Yates shuffle and deal.
	DealStandard DealStrategy = "standard"
	// DealWinnable is a constructive deal with a known solution path.
	DealWinnable DealStrategy = "winnable"
	// DealHard is a standard deal biased to bury low cards.
	DealHard DealStrategy = "hard"
)

// Suits lists the four suits in a fixed order used by deck building
// and by foundation indexing (foundation i holds Suits[i]).
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

// NewDeck builds an unshuffled face-down pool containing one card of
// each rank for every listed suit, repeated sets times. A single set of
// all four suits is the standard 52-card deck.
func NewDeck(suits []Suit, sets int) []Card {
	cards := make([]Card, 0, len(suits)*sets*13)
	for range sets {
		for _, s := range suits {
			for r := Ace; r <= King; r++ {
				cards = append(cards, Card{Suit: s, Rank: r})
			}
		}
	}
	return cards
}

// Shuffle permutes the pool in place (Fisher-Yates via rand.Shuffle).
func Shuffle(cards []Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// SinkLowRanks stably reorders a face-down stock so that every card of
// rank maxRank or below ends up beneath the rest. Draw order pops from
// the end of the slice, so "beneath" means the front. Relative order
// within each group is preserved.
func SinkLowRanks(stock []Card, maxRank Rank) []Card {
	low := make([]Card, 0, len(stock))
	rest := make([]Card, 0, len(stock))
	for _, c := range stock {
		if c.Rank <= maxRank {
			low = append(low, c)
		} else {
			rest = append(rest, c)
		}
	}
	return append(low, rest...)
}

// BuryLowTopCards relocates any face-up card of rank maxRank or below
// found within reach positions of a column top deeper into that column,
// turning it face down and re-exposing whatever becomes the new top.
func BuryLowTopCards(tableau [][]Card, maxRank Rank, reach int, rng *rand.Rand) {
	for col, pile := range tableau {
		if len(pile) < 2 {
			continue
		}
		start := len(pile) - reach
		if start < 0 {
			start = 0
		}
		for i := len(pile) - 1; i >= start; i-- {
			c := pile[i]
			if !c.FaceUp || c.Rank > maxRank {
				continue
			}
			// Move the low card to a random position in the
			// face-down region of the column.
			pile = append(pile[:i], pile[i+1:]...)
			c.FaceUp = false
			pos := rng.Intn(len(pile))
			pile = append(pile[:pos], append([]Card{c}, pile[pos:]...)...)
		}
		for i := range pile {
			pile[i].FaceUp = i == len(pile)-1
		}
		tableau[col] = pile
	}
}

// CloneCards returns a deep copy of a pile.
func CloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

// ClonePiles returns a deep copy of a pile collection.
func ClonePiles(piles [][]Card) [][]Card {
	if piles == nil {
		return nil
	}
	out := make([][]Card, len(piles))
	for i, p := range piles {
		out[i] = CloneCards(p)
	}
	return out
}
