package engine

import (
	"sort"
	"time"
)

// Move describes one legal move, either as a hint candidate or as a
// record of a performed auto-complete step.
type Move struct {
	From        Area   `json:"from"`
	FromIndex   int    `json:"fromIndex"`
	To          Area   `json:"to"`
	ToIndex     int    `json:"toIndex"`
	Count       int    `json:"count"`
	Priority    int    `json:"priority"`
	Description string `json:"description,omitempty"`
}

// IsDraw reports whether the move is the stock/deal fallback rather
// than a card relocation.
func (m Move) IsDraw() bool {
	return m.From == AreaStock
}

// Analysis summarizes the strategic shape of a position.
type Analysis struct {
	BuriedAces    int      // Aces under face-down or blocking cards (Klondike)
	EmptyColumns  int      // Empty tableau columns
	ExposedKings  int      // Face-up kings on top of columns (Klondike)
	PotentialRuns int      // Long same-suit descending runs (Spider)
	Progress      float64  // Completion percentage, 0..100
	Suggestions   []string // Threshold-triggered natural-language tips
}

// hintCooldown throttles repeated hint requests from the UI.
const hintCooldown = 2 * time.Second

// HintSystem enumerates and ranks legal moves for the current state.
// It only reads the game; it never mutates it. One instance belongs to
// one session (the cooldown is per-session state).
type HintSystem struct {
	lastHint time.Time
	now      func() time.Time
}

// NewHintSystem creates a hint system with the wall clock.
func NewHintSystem() *HintSystem {
	return &HintSystem{now: time.Now}
}

// FindAvailableMoves returns every legal move sorted by descending
// priority. Ties keep discovery order (stable sort) so hint output is
// deterministic for a given state.
func (h *HintSystem) FindAvailableMoves(g *Game) []Move {
	moves := g.Variant().FindMoves(g)
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Priority > moves[j].Priority
	})
	return moves
}

// GetBestMove returns the top-priority move, or nil when no move
// exists or a hint was requested within the cooldown window. The
// cooldown is a UI-facing throttle, not a legality concern.
func (h *HintSystem) GetBestMove(g *Game) *Move {
	now := h.now()
	if !h.lastHint.IsZero() && now.Sub(h.lastHint) < hintCooldown {
		return nil
	}
	moves := h.FindAvailableMoves(g)
	if len(moves) == 0 {
		return nil
	}
	h.lastHint = now
	best := moves[0]
	return &best
}

// GetAllMoves is the ranked full list, without cooldown.
func (h *HintSystem) GetAllMoves(g *Game) []Move {
	return h.FindAvailableMoves(g)
}

// IsGameStuck reports whether no non-trivial move remains: after
// filtering out the stock/deal fallback, zero moves are left and the
// stock is exhausted as well.
func (h *HintSystem) IsGameStuck(g *Game) bool {
	if !g.StockExhausted() {
		return false
	}
	for _, m := range h.FindAvailableMoves(g) {
		if !m.IsDraw() {
			return false
		}
	}
	return true
}

// AnalyzeGameState derives summary counters and suggestions for the
// current position.
func (h *HintSystem) AnalyzeGameState(g *Game) Analysis {
	return g.Variant().Analyze(g)
}
