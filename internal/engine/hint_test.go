package engine

import (
	"testing"
	"time"
)

func TestFindAvailableMovesOrdering(t *testing.T) {
	g, v := newStubGame(Options{})
	v.moves = []Move{
		{From: AreaTableau, FromIndex: 0, To: AreaTableau, ToIndex: 1, Count: 1, Priority: 3, Description: "first low"},
		{From: AreaTableau, FromIndex: 1, To: AreaFoundation, Count: 1, Priority: 10, Description: "first high"},
		{From: AreaWaste, To: AreaTableau, ToIndex: 2, Count: 1, Priority: 5, Description: "middle"},
		{From: AreaTableau, FromIndex: 2, To: AreaFoundation, Count: 1, Priority: 10, Description: "second high"},
	}

	h := NewHintSystem()
	moves := h.FindAvailableMoves(g)

	if len(moves) != 4 {
		t.Fatalf("Expected 4 moves, got %d", len(moves))
	}

	wantOrder := []string{"first high", "second high", "middle", "first low"}
	for i, w := range wantOrder {
		if moves[i].Description != w {
			t.Errorf("Position %d: got %q, want %q", i, moves[i].Description, w)
		}
	}

	// Same state, same order.
	again := h.FindAvailableMoves(g)
	for i := range moves {
		if moves[i] != again[i] {
			t.Fatal("Move ordering must be deterministic for a given state")
		}
	}
}

func TestGetBestMoveCooldown(t *testing.T) {
	g, v := newStubGame(Options{})
	v.moves = []Move{
		{From: AreaTableau, To: AreaFoundation, Count: 1, Priority: 10, Description: "best"},
	}

	now := time.Unix(1000, 0)
	h := NewHintSystem()
	h.now = func() time.Time { return now }

	first := h.GetBestMove(g)
	if first == nil || first.Description != "best" {
		t.Fatalf("First hint should return the best move, got %v", first)
	}

	// Within the cooldown window: suppressed.
	now = now.Add(500 * time.Millisecond)
	if h.GetBestMove(g) != nil {
		t.Error("Hints within the cooldown window must be suppressed")
	}

	// After the window: served again.
	now = now.Add(2 * time.Second)
	if h.GetBestMove(g) == nil {
		t.Error("Hints after the cooldown window must be served")
	}

	// The full list ignores the cooldown.
	now = now.Add(time.Millisecond)
	if len(h.GetAllMoves(g)) != 1 {
		t.Error("GetAllMoves must not be throttled")
	}
}

func TestGetBestMoveEmpty(t *testing.T) {
	g, _ := newStubGame(Options{})
	h := NewHintSystem()

	if h.GetBestMove(g) != nil {
		t.Error("No moves should yield a nil hint")
	}

	// A nil result must not arm the cooldown.
	g.variant.(*stubVariant).moves = []Move{
		{From: AreaTableau, To: AreaFoundation, Count: 1, Priority: 10},
	}
	if h.GetBestMove(g) == nil {
		t.Error("A hint should be served right after an empty result")
	}
}

func TestIsGameStuck(t *testing.T) {
	g, v := newStubGame(Options{})

	// Stock still holds cards: not stuck.
	g.Stock = []Card{down(Hearts, 2)}
	v.moves = []Move{{From: AreaStock, To: AreaWaste, Count: 1, Priority: 1}}
	h := NewHintSystem()
	if h.IsGameStuck(g) {
		t.Error("A game with stock cards is not stuck")
	}

	// Exhausted stock, only the draw fallback: stuck.
	g.Stock = nil
	g.Waste = nil
	if !h.IsGameStuck(g) {
		t.Error("Exhausted stock with only draw moves is stuck")
	}

	// A real move exists: not stuck.
	v.moves = append(v.moves, Move{From: AreaTableau, To: AreaTableau, ToIndex: 1, Count: 1, Priority: 3})
	if h.IsGameStuck(g) {
		t.Error("A game with a non-draw move is not stuck")
	}

	// No moves at all and nothing to draw: stuck.
	v.moves = nil
	if !h.IsGameStuck(g) {
		t.Error("No moves and no stock is stuck")
	}
}
