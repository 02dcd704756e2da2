package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
)

// Snapshot is the complete serialized play state: every pile as plain
// nested records plus all counters and flags. It backs both the undo
// ring and save/restore, and must round-trip losslessly.
type Snapshot struct {
	Variant     string   `json:"variant"`
	Tableau     [][]Card `json:"tableau"`
	Foundations [][]Card `json:"foundation"`
	Completed   [][]Card `json:"completedSequences"`
	Stock       []Card   `json:"stock"`
	Waste       []Card   `json:"waste"`

	Moves               int `json:"moves"`
	Score               int `json:"score"`
	StockCycles         int `json:"stockCycles"`
	EmptyColumnsCreated int `json:"emptyColumnsCreated"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	GameWon               bool `json:"gameWon"`
	GameLost              bool `json:"gameLost"`
	AutoCompleteAvailable bool `json:"autoCompleteAvailable"`

	DrawCount       int           `json:"drawCount"`
	SuitCount       int           `json:"suitCount"`
	ScoreMultiplier float64       `json:"scoreMultiplier"`
	Solution        []ScatterMove `json:"solution,omitempty"`
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	var solution []ScatterMove
	if len(g.Solution) > 0 {
		solution = make([]ScatterMove, len(g.Solution))
		copy(solution, g.Solution)
	}
	return Snapshot{
		Variant:               g.variant.ID(),
		Tableau:               ClonePiles(g.Tableau),
		Foundations:           ClonePiles(g.Foundations),
		Completed:             ClonePiles(g.Completed),
		Stock:                 CloneCards(g.Stock),
		Waste:                 CloneCards(g.Waste),
		Moves:                 g.Moves,
		Score:                 g.Score,
		StockCycles:           g.StockCycles,
		EmptyColumnsCreated:   g.EmptyColumnsCreated,
		StartTime:             g.StartTime,
		EndTime:               g.EndTime,
		GameWon:               g.GameWon,
		GameLost:              g.GameLost,
		AutoCompleteAvailable: g.AutoCompleteAvailable,
		DrawCount:             g.DrawCount,
		SuitCount:             g.SuitCount,
		ScoreMultiplier:       g.multiplier,
		Solution:              solution,
	}
}

// applyPiles restores every pile, counter and flag from a snapshot.
// The undo ring and UndosUsed are deliberately left untouched.
func (g *Game) applyPiles(s Snapshot) {
	g.Tableau = ClonePiles(s.Tableau)
	g.Foundations = ClonePiles(s.Foundations)
	g.Completed = ClonePiles(s.Completed)
	g.Stock = CloneCards(s.Stock)
	g.Waste = CloneCards(s.Waste)
	g.Moves = s.Moves
	g.Score = s.Score
	g.StockCycles = s.StockCycles
	g.EmptyColumnsCreated = s.EmptyColumnsCreated
	g.StartTime = s.StartTime
	g.EndTime = s.EndTime
	g.GameWon = s.GameWon
	g.GameLost = s.GameLost
	g.AutoCompleteAvailable = s.AutoCompleteAvailable
	g.DrawCount = s.DrawCount
	g.SuitCount = s.SuitCount
	if s.ScoreMultiplier != 0 {
		g.multiplier = s.ScoreMultiplier
	}
	if len(s.Solution) > 0 {
		g.Solution = make([]ScatterMove, len(s.Solution))
		copy(g.Solution, s.Solution)
	} else {
		g.Solution = nil
	}
}

// ApplySnapshot replaces the full play state and clears the undo ring.
func (g *Game) ApplySnapshot(s Snapshot) {
	g.applyPiles(s)
	g.history = nil
	g.UndosUsed = 0
}

// SaveJSON serializes the full state for the persistence layer.
func (g *Game) SaveJSON() ([]byte, error) {
	return json.Marshal(g.Snapshot())
}

// RestoreGame rebuilds a game from serialized state produced by
// SaveJSON. The snapshot's variant must match v. Foreign data is not
// deep-validated; a malformed but well-formed-JSON save is restored
// as-is and the caller must guard deserialization.
func RestoreGame(v Variant, data []byte) (*Game, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("engine: cannot decode saved game: %w", err)
	}
	if s.Variant != v.ID() {
		return nil, fmt.Errorf("engine: saved game is %q, not %q", s.Variant, v.ID())
	}
	g := &Game{
		variant:    v,
		multiplier: 1.0,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.ApplySnapshot(s)
	return g, nil
}
