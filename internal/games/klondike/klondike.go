// Package klondike implements the Klondike rule strategy: seven
// tableau columns built down in alternating colors, four per-suit
// foundations, and a stock that deals through a waste pile.
package klondike

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-solitaire/internal/engine"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
)

const columns = 7

// Klondike is the classic single-deck solitaire variant.
type Klondike struct{}

// New creates the Klondike rule strategy.
func New() *Klondike {
	return &Klondike{}
}

func init() {
	registry.Register("klondike", func() engine.Variant {
		return New()
	})
}

// ID returns the variant identifier.
func (k *Klondike) ID() string {
	return "klondike"
}

// Title returns the display name.
func (k *Klondike) Title() string {
	return "Klondike"
}

// Columns returns the tableau column count.
func (k *Klondike) Columns() int {
	return columns
}

// FoundationCount returns the number of foundation piles.
func (k *Klondike) FoundationCount() int {
	return 4
}

// Deal lays out a new game using the requested strategy.
func (k *Klondike) Deal(g *engine.Game, strategy engine.DealStrategy, rng *rand.Rand) {
	switch strategy {
	case engine.DealWinnable:
		k.dealWinnable(g, rng)
	case engine.DealHard:
		k.dealStandard(g, rng)
		g.Stock = engine.SinkLowRanks(g.Stock, 3)
		engine.BuryLowTopCards(g.Tableau, 2, 2, rng)
	default:
		k.dealStandard(g, rng)
	}
}

// dealStandard shuffles one deck and deals the triangular layout:
// column i receives i+1 cards with only the last face-up, remainder to
// the stock face-down.
func (k *Klondike) dealStandard(g *engine.Game, rng *rand.Rand) {
	deck := engine.NewDeck(engine.Suits[:], 1)
	engine.Shuffle(deck, rng)

	for col := range columns {
		for n := 0; n <= col; n++ {
			c := deck[len(deck)-1]
			deck = deck[:len(deck)-1]
			c.FaceUp = n == col
			g.Tableau[col] = append(g.Tableau[col], c)
		}
	}
	g.Stock = deck
}

// dealWinnable builds four complete foundations and reverses a bounded
// random sequence of foundation-to-tableau moves, so the deal is
// reachable by replaying the recorded moves backwards. The cards left
// on the foundations (the lower prefix of each suit) are shuffled into
// the stock; with recycling they can always be drained onto the
// foundations before the tableau replay begins.
func (k *Klondike) dealWinnable(g *engine.Game, rng *rand.Rand) {
	foundations := make([][]engine.Card, 4)
	for i, s := range engine.Suits {
		for r := engine.Ace; r <= engine.King; r++ {
			foundations[i] = append(foundations[i], engine.Card{Suit: s, Rank: r, FaceUp: true})
		}
	}

	steps := 15 + rng.Intn(11)
	var recorded []engine.ScatterMove
	for range steps {
		var candidates []int
		for i, f := range foundations {
			if len(f) > 0 {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			break
		}
		fi := candidates[rng.Intn(len(candidates))]
		count := 1 + rng.Intn(3)
		if count > len(foundations[fi]) {
			count = len(foundations[fi])
		}
		col := rng.Intn(columns)
		// Append in pop order: the lowest-ranked card of the chunk
		// ends up on top, which is exactly what the reverse replay
		// needs to rebuild the foundation one card at a time.
		for range count {
			c := foundations[fi][len(foundations[fi])-1]
			foundations[fi] = foundations[fi][:len(foundations[fi])-1]
			c.FaceUp = false
			g.Tableau[col] = append(g.Tableau[col], c)
		}
		recorded = append(recorded, engine.ScatterMove{Column: col, Count: count})
	}

	for col := range g.Tableau {
		if n := len(g.Tableau[col]); n > 0 {
			g.Tableau[col][n-1].FaceUp = true
		}
	}

	var stock []engine.Card
	for _, f := range foundations {
		for _, c := range f {
			c.FaceUp = false
			stock = append(stock, c)
		}
	}
	engine.Shuffle(stock, rng)
	g.Stock = stock
	g.Solution = recorded
}

// CanPlaceOnTableau: an empty column accepts only a king; otherwise
// colors must alternate and the rank descend by one.
func (k *Klondike) CanPlaceOnTableau(c engine.Card, target *engine.Card) bool {
	if target == nil {
		return c.Rank == engine.King
	}
	if !target.FaceUp {
		return false
	}
	return c.Red() != target.Red() && c.Rank == target.Rank-1
}

// ValidRun requires every adjacent pair in the move-set to alternate
// colors and descend by exactly one; a broken sequence cannot move
// together even when its anchor is legal.
func (k *Klondike) ValidRun(run []engine.Card) bool {
	for i, c := range run {
		if !c.FaceUp {
			return false
		}
		if i == 0 {
			continue
		}
		prev := run[i-1]
		if c.Red() == prev.Red() || c.Rank != prev.Rank-1 {
			return false
		}
	}
	return true
}

// Draw pops DrawCount cards from the stock onto the waste face-up,
// recycling the waste back into the stock when the stock is empty.
func (k *Klondike) Draw(g *engine.Game) bool {
	if len(g.Stock) == 0 {
		if len(g.Waste) == 0 {
			return false
		}
		stock := make([]engine.Card, 0, len(g.Waste))
		for i := len(g.Waste) - 1; i >= 0; i-- {
			c := g.Waste[i]
			c.FaceUp = false
			stock = append(stock, c)
		}
		g.Stock = stock
		g.Waste = []engine.Card{}
		g.StockCycles++
		return true
	}

	n := g.DrawCount
	if n < 1 {
		n = 1
	}
	if n > len(g.Stock) {
		n = len(g.Stock)
	}
	for range n {
		c := g.Stock[len(g.Stock)-1]
		g.Stock = g.Stock[:len(g.Stock)-1]
		c.FaceUp = true
		g.Waste = append(g.Waste, c)
	}
	return true
}

// AfterTableauChange is a no-op; Klondike has no sequence extraction.
func (k *Klondike) AfterTableauChange(g *engine.Game, col int) {}

// CheckWin: all 52 cards on the foundations.
func (k *Klondike) CheckWin(g *engine.Game) bool {
	total := 0
	for _, f := range g.Foundations {
		total += len(f)
	}
	return total == 52
}

// AutoCompleteAvailable: every tableau card face-up, stock empty, and
// the remaining cards clear under the auto-complete scan loop. The
// scan is simulated on copies so buried waste cards are accounted for.
func (k *Klondike) AutoCompleteAvailable(g *engine.Game) bool {
	if g.GameWon || len(g.Stock) != 0 {
		return false
	}
	for _, pile := range g.Tableau {
		for _, c := range pile {
			if !c.FaceUp {
				return false
			}
		}
	}

	tableau := engine.ClonePiles(g.Tableau)
	waste := engine.CloneCards(g.Waste)
	foundations := engine.ClonePiles(g.Foundations)

	for {
		moved := false
		for col, pile := range tableau {
			if len(pile) == 0 {
				continue
			}
			c := pile[len(pile)-1]
			fi := engine.FoundationIndex(c.Suit)
			if c.CanPlaceOnFoundation(foundations[fi]) {
				tableau[col] = pile[:len(pile)-1]
				foundations[fi] = append(foundations[fi], c)
				moved = true
			}
		}
		if len(waste) > 0 {
			c := waste[len(waste)-1]
			fi := engine.FoundationIndex(c.Suit)
			if c.CanPlaceOnFoundation(foundations[fi]) {
				waste = waste[:len(waste)-1]
				foundations[fi] = append(foundations[fi], c)
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	if len(waste) > 0 {
		return false
	}
	for _, pile := range tableau {
		if len(pile) > 0 {
			return false
		}
	}
	return true
}

// Hint priorities.
const (
	prioTableauToFoundation = 10
	prioWasteToFoundation   = 9
	prioWasteToEmptyColumn  = 7
	prioWasteToTableau      = 5
	prioTableauToTableau    = 3
	prioRevealBonus         = 3
	prioEmptyColumnBonus    = 2
	prioDraw                = 1
)

// FindMoves enumerates every legal Klondike move with its heuristic
// priority. Discovery order is the tie-break for equal priorities.
func (k *Klondike) FindMoves(g *engine.Game) []engine.Move {
	var moves []engine.Move

	// Tableau tops to foundations.
	for col, pile := range g.Tableau {
		if len(pile) == 0 {
			continue
		}
		c := pile[len(pile)-1]
		fi := engine.FoundationIndex(c.Suit)
		if c.CanPlaceOnFoundation(g.Foundations[fi]) {
			moves = append(moves, engine.Move{
				From: engine.AreaTableau, FromIndex: col,
				To: engine.AreaFoundation, ToIndex: fi,
				Count: 1, Priority: prioTableauToFoundation,
				Description: fmt.Sprintf("Move %s to its foundation", c),
			})
		}
	}

	// Waste top to foundation and tableau.
	if len(g.Waste) > 0 {
		c := g.Waste[len(g.Waste)-1]
		fi := engine.FoundationIndex(c.Suit)
		if c.CanPlaceOnFoundation(g.Foundations[fi]) {
			moves = append(moves, engine.Move{
				From: engine.AreaWaste,
				To:   engine.AreaFoundation, ToIndex: fi,
				Count: 1, Priority: prioWasteToFoundation,
				Description: fmt.Sprintf("Move %s from the waste to its foundation", c),
			})
		}
		for col, pile := range g.Tableau {
			var target *engine.Card
			if len(pile) > 0 {
				target = &pile[len(pile)-1]
			}
			if !k.CanPlaceOnTableau(c, target) {
				continue
			}
			prio := prioWasteToTableau
			if target == nil {
				prio = prioWasteToEmptyColumn
			}
			moves = append(moves, engine.Move{
				From: engine.AreaWaste,
				To:   engine.AreaTableau, ToIndex: col,
				Count: 1, Priority: prio,
				Description: fmt.Sprintf("Move %s from the waste to column %d", c, col+1),
			})
		}
	}

	// Movable face-up suffixes between tableau columns.
	for col, pile := range g.Tableau {
		for start := movableStart(k, pile); start >= 0 && start < len(pile); start++ {
			anchor := pile[start]
			count := len(pile) - start
			for dst, dstPile := range g.Tableau {
				if dst == col {
					continue
				}
				var target *engine.Card
				if len(dstPile) > 0 {
					target = &dstPile[len(dstPile)-1]
				}
				if !k.CanPlaceOnTableau(anchor, target) {
					continue
				}
				if target == nil && start == 0 {
					// Shuffling a whole column onto another
					// empty column reveals nothing.
					continue
				}
				prio := prioTableauToTableau
				if start > 0 && !pile[start-1].FaceUp {
					prio += prioRevealBonus
				}
				if target == nil && anchor.Rank == engine.King {
					prio += prioEmptyColumnBonus
				}
				moves = append(moves, engine.Move{
					From: engine.AreaTableau, FromIndex: col,
					To: engine.AreaTableau, ToIndex: dst,
					Count: count, Priority: prio,
					Description: fmt.Sprintf("Move %s (%d cards) to column %d", anchor, count, dst+1),
				})
			}
		}
	}

	// Stock draw fallback: only meaningful when nothing better exists.
	if len(g.Stock) > 0 || len(g.Waste) > 0 {
		moves = append(moves, engine.Move{
			From: engine.AreaStock,
			To:   engine.AreaWaste,
			Count: g.DrawCount, Priority: prioDraw,
			Description: "Draw from the stock",
		})
	}

	return moves
}

// movableStart returns the first index of the maximal movable face-up
// suffix of a column, or -1 for an empty column.
func movableStart(k *Klondike, pile []engine.Card) int {
	if len(pile) == 0 {
		return -1
	}
	start := len(pile) - 1
	for start > 0 {
		above := pile[start-1]
		cur := pile[start]
		if !above.FaceUp || above.Red() == cur.Red() || cur.Rank != above.Rank-1 {
			break
		}
		start--
	}
	return start
}

// Analyze derives Klondike position counters and suggestions.
func (k *Klondike) Analyze(g *engine.Game) engine.Analysis {
	a := engine.Analysis{}

	foundationCards := 0
	for _, f := range g.Foundations {
		foundationCards += len(f)
	}
	a.Progress = float64(foundationCards) / 52 * 100

	for _, pile := range g.Tableau {
		if len(pile) == 0 {
			a.EmptyColumns++
			continue
		}
		top := pile[len(pile)-1]
		if top.FaceUp && top.Rank == engine.King {
			a.ExposedKings++
		}
		for _, c := range pile[:len(pile)-1] {
			if c.Rank == engine.Ace {
				a.BuriedAces++
			}
		}
	}

	if a.BuriedAces > 0 {
		a.Suggestions = append(a.Suggestions,
			fmt.Sprintf("%d ace(s) are still buried; uncover them before building long runs.", a.BuriedAces))
	}
	if a.EmptyColumns > 0 && a.ExposedKings == 0 {
		a.Suggestions = append(a.Suggestions,
			"An empty column is open; free a king to fill it.")
	}
	if a.Progress >= 50 && foundationCards < 52 {
		a.Suggestions = append(a.Suggestions,
			"Over half the deck is home; look for safe foundation moves before rearranging the tableau.")
	}
	if len(g.Waste)+len(g.Stock) > 30 {
		a.Suggestions = append(a.Suggestions,
			"Most cards are still in the stock; keep cycling to find playable cards.")
	}

	return a
}
