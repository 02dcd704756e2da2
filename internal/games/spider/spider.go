// Package spider implements the Spider rule strategy: ten tableau
// columns built down regardless of suit, same-suit runs required for
// multi-card moves, and completed King-to-Ace suit sequences removed
// from play. There are no foundation piles.
package spider

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-solitaire/internal/engine"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
)

const (
	columns        = 10
	sequenceLength = 13
)

// Spider is the multi-deck variant driven by SuitCount: 1 suit plays
// with 52 cards, 2 and 4 suits with 104.
type Spider struct{}

// New creates the Spider rule strategy.
func New() *Spider {
	return &Spider{}
}

func init() {
	registry.Register("spider", func() engine.Variant {
		return New()
	})
}

// ID returns the variant identifier.
func (s *Spider) ID() string {
	return "spider"
}

// Title returns the display name.
func (s *Spider) Title() string {
	return "Spider"
}

// Columns returns the tableau column count.
func (s *Spider) Columns() int {
	return columns
}

// FoundationCount is zero: Spider removes finished sequences into the
// completed pile instead of building foundations.
func (s *Spider) FoundationCount() int {
	return 0
}

// deckFor builds the draw pile for the configured suit count.
func deckFor(suitCount int) []engine.Card {
	switch suitCount {
	case 1:
		return engine.NewDeck([]engine.Suit{engine.Spades}, 4)
	case 2:
		return engine.NewDeck([]engine.Suit{engine.Spades, engine.Hearts}, 4)
	default:
		return engine.NewDeck(engine.Suits[:], 2)
	}
}

// expectedSequences returns how many King-to-Ace runs finish the game.
func expectedSequences(g *engine.Game) int {
	if g.SuitCount == 1 {
		return 4
	}
	return 8
}

// Deal lays out a new game using the requested strategy.
func (s *Spider) Deal(g *engine.Game, strategy engine.DealStrategy, rng *rand.Rand) {
	if g.SuitCount != 1 && g.SuitCount != 2 {
		g.SuitCount = 4
	}
	s.dealStandard(g, rng)

	switch strategy {
	case engine.DealWinnable:
		// Best-effort bias rather than a constructed solution: order
		// each column's face-down cards so higher ranks sit deeper,
		// which means uncovered cards tend to continue a build.
		for col := range g.Tableau {
			pile := g.Tableau[col]
			if len(pile) < 2 {
				continue
			}
			hidden := pile[:len(pile)-1]
			sort.SliceStable(hidden, func(i, j int) bool {
				return hidden[i].Rank > hidden[j].Rank
			})
		}
	case engine.DealHard:
		g.Stock = engine.SinkLowRanks(g.Stock, 3)
		engine.BuryLowTopCards(g.Tableau, 2, 2, rng)
	}
}

// dealStandard shuffles the deck and deals the opening layout: with 104
// cards the first four columns get six cards and the rest five, with 52
// cards four and three. Only column tops are face-up; the remainder
// forms the stock.
func (s *Spider) dealStandard(g *engine.Game, rng *rand.Rand) {
	deck := deckFor(g.SuitCount)
	engine.Shuffle(deck, rng)

	big, small := 6, 5
	if len(deck) == 52 {
		big, small = 4, 3
	}
	for col := range columns {
		n := small
		if col < 4 {
			n = big
		}
		for i := 0; i < n; i++ {
			c := deck[len(deck)-1]
			deck = deck[:len(deck)-1]
			c.FaceUp = i == n-1
			g.Tableau[col] = append(g.Tableau[col], c)
		}
	}
	g.Stock = deck
}

// CanPlaceOnTableau: empty columns accept any card; otherwise only the
// rank must descend by one, regardless of suit.
func (s *Spider) CanPlaceOnTableau(c engine.Card, target *engine.Card) bool {
	if target == nil {
		return true
	}
	return target.FaceUp && c.Rank == target.Rank-1
}

// ValidRun requires a face-up same-suit strictly descending sequence;
// mixed-suit builds can exist on a column but cannot move together.
func (s *Spider) ValidRun(run []engine.Card) bool {
	for i, c := range run {
		if !c.FaceUp {
			return false
		}
		if i == 0 {
			continue
		}
		prev := run[i-1]
		if c.Suit != prev.Suit || c.Rank != prev.Rank-1 {
			return false
		}
	}
	return true
}

// Draw deals one face-up card from the stock onto each column left to
// right. A short stock produces a partial deal; empty columns still
// receive a card. Fails only when the stock is empty.
func (s *Spider) Draw(g *engine.Game) bool {
	if len(g.Stock) == 0 {
		return false
	}
	for col := 0; col < columns && len(g.Stock) > 0; col++ {
		c := g.Stock[len(g.Stock)-1]
		g.Stock = g.Stock[:len(g.Stock)-1]
		c.FaceUp = true
		g.Tableau[col] = append(g.Tableau[col], c)
		s.AfterTableauChange(g, col)
	}
	return true
}

// AfterTableauChange extracts a finished King-to-Ace same-suit run from
// the tail of the column, moves it to the completed pile, awards the
// sequence bonus and flips the newly exposed top.
func (s *Spider) AfterTableauChange(g *engine.Game, col int) {
	pile := g.Tableau[col]
	if len(pile) < sequenceLength {
		return
	}
	run := pile[len(pile)-sequenceLength:]
	if run[0].Rank != engine.King || !s.ValidRun(run) {
		return
	}
	g.Completed = append(g.Completed, engine.CloneCards(run))
	g.Tableau[col] = pile[:len(pile)-sequenceLength]
	if n := len(g.Tableau[col]); n > 0 {
		g.Tableau[col][n-1].FaceUp = true
	}
	g.AddScore(100)
}

// CheckWin: every sequence assembled and removed.
func (s *Spider) CheckWin(g *engine.Game) bool {
	return len(g.Completed) == expectedSequences(g)
}

// AutoCompleteAvailable is always false; Spider has no foundation
// endgame to fast-forward.
func (s *Spider) AutoCompleteAvailable(g *engine.Game) bool {
	return false
}

const (
	prioTableauToTableau = 3
	prioRevealBonus      = 3
	prioEmptyColumnBonus = 2
	prioContinuityBonus  = 1
	prioDeal             = 1
)

// FindMoves enumerates movable same-suit suffixes between columns plus
// the stock-deal fallback.
func (s *Spider) FindMoves(g *engine.Game) []engine.Move {
	var moves []engine.Move

	for col, pile := range g.Tableau {
		for start := movableStart(s, pile); start >= 0 && start < len(pile); start++ {
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
				if !s.CanPlaceOnTableau(anchor, target) {
					continue
				}
				if target == nil && start == 0 {
					// Relocating a whole column to another empty
					// column reveals nothing.
					continue
				}
				prio := prioTableauToTableau
				if start > 0 && !pile[start-1].FaceUp {
					prio += prioRevealBonus
				}
				if target == nil {
					prio += prioEmptyColumnBonus
				} else if target.Suit == anchor.Suit {
					prio += prioContinuityBonus
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

	if len(g.Stock) > 0 {
		moves = append(moves, engine.Move{
			From: engine.AreaStock,
			To:   engine.AreaTableau,
			Count: columns, Priority: prioDeal,
			Description: "Deal a card onto every column",
		})
	}

	return moves
}

// movableStart returns the first index of the maximal same-suit movable
// suffix of a column, or -1 for an empty column.
func movableStart(s *Spider, pile []engine.Card) int {
	if len(pile) == 0 {
		return -1
	}
	start := len(pile) - 1
	for start > 0 {
		above := pile[start-1]
		cur := pile[start]
		if !above.FaceUp || above.Suit != cur.Suit || cur.Rank != above.Rank-1 {
			break
		}
		start--
	}
	return start
}

// Analyze derives Spider position counters and suggestions.
func (s *Spider) Analyze(g *engine.Game) engine.Analysis {
	a := engine.Analysis{}
	a.Progress = float64(len(g.Completed)) / float64(expectedSequences(g)) * 100

	for _, pile := range g.Tableau {
		if len(pile) == 0 {
			a.EmptyColumns++
			continue
		}
		if runLen := len(pile) - movableStart(s, pile); runLen >= 4 {
			a.PotentialRuns++
		}
	}

	if a.EmptyColumns > 0 {
		a.Suggestions = append(a.Suggestions,
			"Use the empty column as a staging area to reorder suits before the next deal.")
	}
	if a.PotentialRuns > 0 {
		a.Suggestions = append(a.Suggestions,
			fmt.Sprintf("%d long same-suit run(s) are forming; extend them before breaking columns apart.", a.PotentialRuns))
	}
	if len(g.Stock) > 0 && a.EmptyColumns > 0 {
		a.Suggestions = append(a.Suggestions,
			"Dealing from the stock covers every column; fill empty columns first.")
	}

	return a
}
