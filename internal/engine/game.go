package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Area tags a pile group addressable by the move protocol.
type Area string

const (
	AreaTableau    Area = "tableau"
	AreaFoundation Area = "foundation"
	AreaWaste      Area = "waste"
	AreaStock      Area = "stock"
)

// maxHistory bounds the undo snapshot ring.
const maxHistory = 100

// ScatterMove records one construction step of a winnable deal: count
// cards were moved from a foundation onto tableau column Column.
// Replaying the recorded steps in reverse order solves the deal.
type ScatterMove struct {
	Column int `json:"column"`
	Count  int `json:"count"`
}

// Game owns the full pile layout and play state for one session. Pile
// fields are exported for rendering and for the variant strategies;
// callers must treat them as read-only and mutate only through the
// command surface (MoveCards, DrawFromStock, UndoLastMove,
// AutoComplete). One Game belongs to exactly one session; there is no
// internal locking.
type Game struct {
	Tableau     [][]Card
	Foundations [][]Card
	Completed   [][]Card // Spider: assembled King-to-Ace runs
	Stock       []Card
	Waste       []Card

	Moves               int
	Score               int
	StockCycles         int
	EmptyColumnsCreated int
	UndosUsed           int

	StartTime time.Time
	EndTime   time.Time

	GameWon               bool
	GameLost              bool
	AutoCompleteAvailable bool

	DrawCount int
	SuitCount int

	// Solution holds the recorded construction steps of a winnable
	// deal, most recent step last. Empty for other strategies.
	Solution []ScatterMove

	variant    Variant
	multiplier float64
	rng        *rand.Rand
	history    []Snapshot
}

// NewGame creates and deals a fresh game for the given variant.
func NewGame(v Variant, opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mult := opts.ScoreMultiplier
	if mult == 0 {
		mult = 1.0
	}
	g := &Game{
		Tableau:     make([][]Card, v.Columns()),
		Foundations: make([][]Card, v.FoundationCount()),
		Completed:   [][]Card{},
		Stock:       []Card{},
		Waste:       []Card{},
		DrawCount:   opts.DrawCount,
		SuitCount:   opts.SpiderSuits,
		StartTime:   time.Now(),
		variant:     v,
		multiplier:  mult,
		rng:         rand.New(rand.NewSource(seed)),
	}
	for i := range g.Tableau {
		g.Tableau[i] = []Card{}
	}
	for i := range g.Foundations {
		g.Foundations[i] = []Card{}
	}
	v.Deal(g, opts.Strategy, g.rng)
	g.AutoCompleteAvailable = v.AutoCompleteAvailable(g)
	return g
}

// Variant returns the rule strategy this game was created with.
func (g *Game) Variant() Variant {
	return g.variant
}

// pileFor resolves an area tag and index to a pile, or nil when the
// address does not exist for this variant.
func (g *Game) pileFor(area Area, index int) *[]Card {
	switch area {
	case AreaTableau:
		if index >= 0 && index < len(g.Tableau) {
			return &g.Tableau[index]
		}
	case AreaFoundation:
		if index >= 0 && index < len(g.Foundations) {
			return &g.Foundations[index]
		}
	case AreaWaste:
		return &g.Waste
	}
	return nil
}

// MoveCards validates and executes a move of count cards from the tail
// of the source pile onto the target pile. It returns false with no
// state change when the move is illegal; a false return never consumes
// a turn, a snapshot or score.
func (g *Game) MoveCards(from Area, fromIndex int, to Area, toIndex int, count int) bool {
	if g.GameWon || count <= 0 {
		return false
	}
	src := g.pileFor(from, fromIndex)
	if src == nil || from == AreaStock || len(*src) < count {
		return false
	}
	// Only tableau columns expose more than their top card.
	if from != AreaTableau && count != 1 {
		return false
	}
	moving := (*src)[len(*src)-count:]
	anchor := moving[0]
	if !anchor.FaceUp {
		return false
	}

	switch to {
	case AreaFoundation:
		if count != 1 {
			return false
		}
		dst := g.pileFor(to, toIndex)
		if dst == nil {
			return false
		}
		// A foundation pile is bound to one suit; the anchor may
		// only land on its own suit's pile, even when empty.
		if Suits[toIndex] != anchor.Suit {
			return false
		}
		if !anchor.CanPlaceOnFoundation(*dst) {
			return false
		}
	case AreaTableau:
		dst := g.pileFor(to, toIndex)
		if dst == nil {
			return false
		}
		if count > 1 && !g.variant.ValidRun(moving) {
			return false
		}
		var target *Card
		if len(*dst) > 0 {
			target = &(*dst)[len(*dst)-1]
		}
		if !g.variant.CanPlaceOnTableau(anchor, target) {
			return false
		}
	default:
		return false
	}

	g.pushSnapshot()

	dst := g.pileFor(to, toIndex)
	moved := CloneCards(moving)
	*src = (*src)[:len(*src)-count]
	*dst = append(*dst, moved...)

	if from == AreaTableau {
		if len(*src) == 0 {
			g.EmptyColumnsCreated++
		} else if top := &(*src)[len(*src)-1]; !top.FaceUp {
			// The sole reveal trigger: a face-down card became
			// the new top of its column.
			top.FaceUp = true
		}
	}

	switch {
	case to == AreaFoundation:
		g.AddScore(10 * count)
	case from == AreaFoundation && to == AreaTableau:
		// Disincentive against ping-ponging cards off foundations.
		g.AddScore(-15 * count)
	case from == AreaWaste && to == AreaTableau:
		g.AddScore(5 * count)
	}

	g.Moves++
	if to == AreaTableau {
		g.variant.AfterTableauChange(g, toIndex)
	}
	g.refreshOutcome()
	return true
}

// DrawFromStock performs the variant's stock action. Returns false with
// no state change and no history entry when the stock is exhausted.
func (g *Game) DrawFromStock() bool {
	if g.GameWon {
		return false
	}
	// Capture before mutating, but commit to the ring only on success;
	// a push-then-pop would drop the oldest entry when the ring is full.
	snap := g.Snapshot()
	if !g.variant.Draw(g) {
		return false
	}
	g.pushHistory(snap)
	g.Moves++
	g.refreshOutcome()
	return true
}

// UndoLastMove restores the state recorded before the most recent
// successful mutation. It is full-state rollback, not inverse replay.
// Depth gating against the difficulty profile is the caller's job.
func (g *Game) UndoLastMove() bool {
	if len(g.history) == 0 {
		return false
	}
	snap := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.applyPiles(snap)
	g.UndosUsed++
	return true
}

// AutoComplete repeatedly moves foundation-eligible cards from tableau
// tops and the waste top until no move applies, returning the ordered
// moves performed for replay or animation by the caller.
func (g *Game) AutoComplete() []Move {
	if !g.AutoCompleteAvailable {
		return nil
	}
	var performed []Move
	for {
		m, ok := g.nextAutoMove()
		if !ok {
			break
		}
		if !g.MoveCards(m.From, m.FromIndex, m.To, m.ToIndex, 1) {
			break
		}
		performed = append(performed, m)
	}
	return performed
}

// nextAutoMove scans tableau tops then the waste top for a card that
// can reach its foundation.
func (g *Game) nextAutoMove() (Move, bool) {
	for col, pile := range g.Tableau {
		if len(pile) == 0 {
			continue
		}
		c := pile[len(pile)-1]
		fi := FoundationIndex(c.Suit)
		if fi < len(g.Foundations) && c.CanPlaceOnFoundation(g.Foundations[fi]) {
			return Move{From: AreaTableau, FromIndex: col, To: AreaFoundation, ToIndex: fi, Count: 1}, true
		}
	}
	if len(g.Waste) > 0 {
		c := g.Waste[len(g.Waste)-1]
		fi := FoundationIndex(c.Suit)
		if fi < len(g.Foundations) && c.CanPlaceOnFoundation(g.Foundations[fi]) {
			return Move{From: AreaWaste, To: AreaFoundation, ToIndex: fi, Count: 1}, true
		}
	}
	return Move{}, false
}

// AddScore adds a base amount through the difficulty multiplier. The
// running score may go negative transiently.
func (g *Game) AddScore(base int) {
	g.Score += int(math.Floor(float64(base) * g.multiplier))
}

// FoundationIndex returns the fixed foundation pile index for a suit.
func FoundationIndex(s Suit) int {
	for i, fs := range Suits {
		if fs == s {
			return i
		}
	}
	return -1
}

// refreshOutcome re-runs win and auto-complete detection after a
// successful mutation.
func (g *Game) refreshOutcome() {
	if !g.GameWon && g.variant.CheckWin(g) {
		g.GameWon = true
		g.EndTime = time.Now()
		g.AddScore(g.timeBonus())
	}
	g.AutoCompleteAvailable = g.variant.AutoCompleteAvailable(g)
}

// timeBonus is 1000 for wins within two minutes, decaying by 10 points
// per additional minute, floored at zero.
func (g *Game) timeBonus() int {
	minutes := int(g.EndTime.Sub(g.StartTime).Minutes())
	bonus := 1000
	if minutes > 2 {
		bonus -= (minutes - 2) * 10
	}
	if bonus < 0 {
		bonus = 0
	}
	return bonus
}

// StockExhausted reports whether no further draw can produce cards.
func (g *Game) StockExhausted() bool {
	return len(g.Stock) == 0 && len(g.Waste) == 0
}

// CardCount returns the total number of cards across all piles. It is
// invariant for the lifetime of a game.
func (g *Game) CardCount() int {
	n := len(g.Stock) + len(g.Waste)
	for _, p := range g.Tableau {
		n += len(p)
	}
	for _, p := range g.Foundations {
		n += len(p)
	}
	for _, p := range g.Completed {
		n += len(p)
	}
	return n
}

// Elapsed returns the play duration, frozen at EndTime once the game
// is decided.
func (g *Game) Elapsed() time.Duration {
	if !g.EndTime.IsZero() {
		return g.EndTime.Sub(g.StartTime)
	}
	return time.Since(g.StartTime)
}

// GetFormattedTime returns the elapsed time as MM:SS.
func (g *Game) GetFormattedTime() string {
	d := g.Elapsed()
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Stats summarizes a game for display and persistence.
type Stats struct {
	Variant             string
	Moves               int
	Score               int
	StockCycles         int
	EmptyColumnsCreated int
	Duration            time.Duration
	Won                 bool
}

// GetGameStats returns the current summary counters.
func (g *Game) GetGameStats() Stats {
	return Stats{
		Variant:             g.variant.ID(),
		Moves:               g.Moves,
		Score:               g.Score,
		StockCycles:         g.StockCycles,
		EmptyColumnsCreated: g.EmptyColumnsCreated,
		Duration:            g.Elapsed(),
		Won:                 g.GameWon,
	}
}

// HistoryLen returns the number of undo snapshots currently held.
func (g *Game) HistoryLen() int {
	return len(g.history)
}

// pushSnapshot records the pre-mutation state, dropping the oldest
// entry beyond the ring cap.
func (g *Game) pushSnapshot() {
	g.pushHistory(g.Snapshot())
}

// pushHistory appends an already-captured snapshot to the undo ring.
func (g *Game) pushHistory(s Snapshot) {
	g.history = append(g.history, s)
	if len(g.history) > maxHistory {
		g.history = g.history[1:]
	}
}
