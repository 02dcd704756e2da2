// Package engine implements the solitaire rules and deal engine: the
// card/pile data model, move legality and execution, undo-by-snapshot,
// win and auto-complete detection, deal generation and the hint system.
// The engine contains pure logic with no external dependencies; the
// platform handles input mapping, rendering and persistence.
package engine

import "fmt"

// Suit identifies one of the four french suits.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns a human-readable name for the suit.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-rune suit symbol used by the TUI.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Rank is a card rank: 1 = Ace through 13 = King.
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// String returns the short rank label (A, 2..10, J, Q, K).
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card is a playing card. Suit and rank are fixed at creation; only the
// face orientation changes during play. Cards are never created or
// destroyed mid-game, only relocated between piles.
type Card struct {
	Suit   Suit `json:"suit"`
	Rank   Rank `json:"rank"`
	FaceUp bool `json:"faceUp"`
}

// Red reports whether the card is a red suit (hearts or diamonds).
func (c Card) Red() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// Is reports suit/rank identity, ignoring orientation.
func (c Card) Is(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// CanPlaceOnFoundation reports whether the card may be placed on the
// given foundation pile: an empty pile accepts only an ace, otherwise
// the card must match the pile's suit and extend the run by one.
func (c Card) CanPlaceOnFoundation(pile []Card) bool {
	if len(pile) == 0 {
		return c.Rank == Ace
	}
	top := pile[len(pile)-1]
	return c.Suit == top.Suit && c.Rank == top.Rank+1
}

// String returns a short label like "A♠" or "10♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}
