package engine

import "math/rand"

// Variant is the closed set of rule strategies (Klondike, Spider). A
// variant is selected once at game creation; all variant-specific rules
// live behind this interface so the shared mutating code carries no
// per-variant branches.
type Variant interface {
	// ID returns a unique identifier (e.g. "klondike").
	// Used for CLI commands, registry lookup and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Columns returns the number of tableau columns.
	Columns() int

	// FoundationCount returns the number of foundation piles
	// (4 for Klondike, 0 for Spider).
	FoundationCount() int

	// Deal lays out a new game on g using the given strategy.
	Deal(g *Game, strategy DealStrategy, rng *rand.Rand)

	// CanPlaceOnTableau reports whether c may be placed on target,
	// where target is nil for an empty column.
	CanPlaceOnTableau(c Card, target *Card) bool

	// ValidRun reports whether a multi-card move-set may be moved
	// together as one unit.
	ValidRun(run []Card) bool

	// Draw performs the variant's stock action (Klondike: draw to
	// waste with recycle; Spider: deal one card per column).
	// Returns false with no mutation when the stock is exhausted.
	Draw(g *Game) bool

	// AfterTableauChange runs after cards were appended to a tableau
	// column (Spider extracts completed sequences here).
	AfterTableauChange(g *Game, col int)

	// CheckWin reports whether the game is won.
	CheckWin(g *Game) bool

	// AutoCompleteAvailable reports whether the remaining game can be
	// finished automatically.
	AutoCompleteAvailable(g *Game) bool

	// FindMoves enumerates all legal moves with heuristic priorities.
	// Order within equal priorities is the discovery order.
	FindMoves(g *Game) []Move

	// Analyze derives summary counters and strategic suggestions.
	Analyze(g *Game) Analysis
}

// Options configures a new game. Values are resolved from the selected
// difficulty profile by the caller.
type Options struct {
	Strategy        DealStrategy
	DrawCount       int     // Klondike stock draw size (1 or 3)
	SpiderSuits     int     // Spider suit count (1, 2 or 4)
	ScoreMultiplier float64 // Difficulty score multiplier (0 means 1.0)
	Seed            int64   // RNG seed (0 means time-based)
}

// DefaultOptions returns options for a standard single-draw game.
func DefaultOptions() Options {
	return Options{
		Strategy:        DealStandard,
		DrawCount:       1,
		SpiderSuits:     2,
		ScoreMultiplier: 1.0,
	}
}
