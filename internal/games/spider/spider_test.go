package spider

import (
	"testing"

	"github.com/vovakirdan/tui-solitaire/internal/engine"
)

func up(s engine.Suit, r engine.Rank) engine.Card {
	return engine.Card{Suit: s, Rank: r, FaceUp: true}
}

func down(s engine.Suit, r engine.Rank) engine.Card {
	return engine.Card{Suit: s, Rank: r}
}

// descRun builds a face-up same-suit run from hi down to lo.
func descRun(s engine.Suit, hi, lo engine.Rank) []engine.Card {
	var run []engine.Card
	for r := hi; r >= lo; r-- {
		run = append(run, up(s, r))
	}
	return run
}

// newEmptyGame deals a game and then clears every pile so tests can
// lay out positions by hand.
func newEmptyGame(suits int) *engine.Game {
	g := engine.NewGame(New(), engine.Options{Seed: 1, SpiderSuits: suits})
	for i := range g.Tableau {
		g.Tableau[i] = nil
	}
	g.Stock = nil
	g.Completed = nil
	return g
}

func TestDealShapes(t *testing.T) {
	tests := []struct {
		name      string
		suits     int
		bigCols   int
		big       int
		small     int
		stockSize int
		total     int
	}{
		{"one suit", 1, 4, 4, 3, 18, 52},
		{"two suits", 2, 4, 6, 5, 50, 104},
		{"four suits", 4, 4, 6, 5, 50, 104},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := engine.NewGame(New(), engine.Options{Seed: 3, SpiderSuits: tt.suits})

			for col, pile := range g.Tableau {
				want := tt.small
				if col < tt.bigCols {
					want = tt.big
				}
				if len(pile) != want {
					t.Errorf("Column %d should hold %d cards, got %d", col, want, len(pile))
				}
				for i, c := range pile {
					wantUp := i == len(pile)-1
					if c.FaceUp != wantUp {
						t.Errorf("Column %d card %d: FaceUp = %v, want %v", col, i, c.FaceUp, wantUp)
					}
				}
			}
			if len(g.Stock) != tt.stockSize {
				t.Errorf("Stock should hold %d cards, got %d", tt.stockSize, len(g.Stock))
			}
			if g.CardCount() != tt.total {
				t.Errorf("Deal should use %d cards, got %d", tt.total, g.CardCount())
			}
		})
	}
}

func TestSuitCountNormalized(t *testing.T) {
	g := engine.NewGame(New(), engine.Options{Seed: 3, SpiderSuits: 7})
	if g.SuitCount != 4 {
		t.Errorf("Unsupported suit counts should normalize to 4, got %d", g.SuitCount)
	}
	if g.CardCount() != 104 {
		t.Errorf("Four-suit game should use 104 cards, got %d", g.CardCount())
	}
}

func TestCanPlaceOnTableau(t *testing.T) {
	s := New()
	sixHearts := up(engine.Hearts, 6)
	faceDownSix := down(engine.Hearts, 6)

	tests := []struct {
		name   string
		card   engine.Card
		target *engine.Card
		want   bool
	}{
		{"any card on empty", up(engine.Hearts, 4), nil, true},
		{"descending other suit", up(engine.Spades, 5), &sixHearts, true},
		{"descending same suit", up(engine.Hearts, 5), &sixHearts, true},
		{"rank gap", up(engine.Spades, 4), &sixHearts, false},
		{"ascending", up(engine.Spades, 7), &sixHearts, false},
		{"onto face-down card", up(engine.Spades, 5), &faceDownSix, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.CanPlaceOnTableau(tt.card, tt.target); got != tt.want {
				t.Errorf("CanPlaceOnTableau() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidRunRequiresSameSuit(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		run  []engine.Card
		want bool
	}{
		{"single card", []engine.Card{up(engine.Spades, 5)}, true},
		{"same suit descending", descRun(engine.Spades, 7, 5), true},
		{"mixed suit descending", []engine.Card{up(engine.Spades, 7), up(engine.Hearts, 6)}, false},
		{"rank gap", []engine.Card{up(engine.Spades, 7), up(engine.Spades, 5)}, false},
		{"contains face-down", []engine.Card{up(engine.Spades, 7), down(engine.Spades, 6)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ValidRun(tt.run); got != tt.want {
				t.Errorf("ValidRun() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawDealsOnePerColumn(t *testing.T) {
	g := newEmptyGame(1)
	g.Tableau[0] = []engine.Card{down(engine.Spades, 9), up(engine.Spades, 8)}
	for i := 0; i < 12; i++ {
		g.Stock = append(g.Stock, down(engine.Spades, engine.Rank(i%13+1)))
	}

	if !g.DrawFromStock() {
		t.Fatal("Draw with stock cards should succeed")
	}
	if len(g.Stock) != 2 {
		t.Errorf("Stock should shrink by 10, got %d left", len(g.Stock))
	}
	for col, pile := range g.Tableau {
		top := pile[len(pile)-1]
		if !top.FaceUp {
			t.Errorf("Column %d dealt card must be face-up", col)
		}
	}
	if len(g.Tableau[0]) != 3 {
		t.Errorf("Column 0 should have grown to 3 cards, got %d", len(g.Tableau[0]))
	}

	// Two cards remain: a partial deal covers the first two columns.
	if !g.DrawFromStock() {
		t.Fatal("Partial draw should succeed")
	}
	if len(g.Stock) != 0 {
		t.Errorf("Stock should be empty, got %d", len(g.Stock))
	}
	if len(g.Tableau[0]) != 4 || len(g.Tableau[1]) != 2 || len(g.Tableau[2]) != 1 {
		t.Errorf("Partial deal should cover columns left to right: %d/%d/%d",
			len(g.Tableau[0]), len(g.Tableau[1]), len(g.Tableau[2]))
	}

	if g.DrawFromStock() {
		t.Error("Draw from an empty stock must fail")
	}
}

func TestSequenceExtraction(t *testing.T) {
	g := newEmptyGame(1)
	g.Tableau[0] = append([]engine.Card{down(engine.Spades, 5)}, descRun(engine.Spades, engine.King, engine.Ace)...)

	s := New()
	s.AfterTableauChange(g, 0)

	if len(g.Completed) != 1 {
		t.Fatalf("Expected 1 completed sequence, got %d", len(g.Completed))
	}
	seq := g.Completed[0]
	if len(seq) != 13 || seq[0].Rank != engine.King || seq[12].Rank != engine.Ace {
		t.Errorf("Completed sequence should run King to Ace, got %v", seq)
	}
	if len(g.Tableau[0]) != 1 || !g.Tableau[0][0].FaceUp {
		t.Errorf("Exposed card beneath the sequence must be flipped: %v", g.Tableau[0])
	}
	if g.Score != 100 {
		t.Errorf("Sequence bonus should be 100, got %d", g.Score)
	}
}

func TestSequenceExtractionIgnoresPartialRuns(t *testing.T) {
	g := newEmptyGame(1)
	// Thirteen descending cards but the tail starts at Queen.
	g.Tableau[0] = append(descRun(engine.Spades, engine.King, engine.King), descRun(engine.Spades, engine.Queen, engine.Ace)...)
	g.Tableau[1] = descRun(engine.Spades, engine.Queen, engine.Ace)

	s := New()
	s.AfterTableauChange(g, 1)
	if len(g.Completed) != 0 {
		t.Error("A 12-card run must not be extracted")
	}

	// Mixed-suit tail of the right length is not extracted either.
	g.Tableau[2] = append(descRun(engine.Spades, engine.King, 2), up(engine.Hearts, engine.Ace))
	s.AfterTableauChange(g, 2)
	if len(g.Completed) != 0 {
		t.Error("A mixed-suit tail must not be extracted")
	}
}

func TestMoveCompletesSequence(t *testing.T) {
	g := newEmptyGame(1)
	g.Tableau[0] = descRun(engine.Spades, engine.King, 2)
	g.Tableau[1] = []engine.Card{down(engine.Spades, 9), up(engine.Spades, engine.Ace)}

	if !g.MoveCards(engine.AreaTableau, 1, engine.AreaTableau, 0, 1) {
		t.Fatal("Placing the ace should be legal")
	}

	if len(g.Completed) != 1 {
		t.Fatalf("Completing a run through a move should extract it, got %d", len(g.Completed))
	}
	if len(g.Tableau[0]) != 0 {
		t.Errorf("Column 0 should be empty after extraction: %v", g.Tableau[0])
	}
	if !g.Tableau[1][0].FaceUp {
		t.Error("Source column must flip its exposed card")
	}
}

func TestDrawCompletesSequence(t *testing.T) {
	g := newEmptyGame(1)
	g.Tableau[0] = descRun(engine.Spades, engine.King, 2)
	// The last stock card is dealt to column 0 first.
	for i := 0; i < 9; i++ {
		g.Stock = append(g.Stock, down(engine.Spades, 9))
	}
	g.Stock = append(g.Stock, down(engine.Spades, engine.Ace))

	if !g.DrawFromStock() {
		t.Fatal("Draw should succeed")
	}
	if len(g.Completed) != 1 {
		t.Errorf("A deal that finishes a run should extract it, got %d completed", len(g.Completed))
	}
}

func TestCheckWin(t *testing.T) {
	s := New()

	g := newEmptyGame(1)
	for i := 0; i < 4; i++ {
		g.Completed = append(g.Completed, descRun(engine.Spades, engine.King, engine.Ace))
	}
	if !s.CheckWin(g) {
		t.Error("Four sequences win a one-suit game")
	}

	g4 := newEmptyGame(4)
	for i := 0; i < 4; i++ {
		g4.Completed = append(g4.Completed, descRun(engine.Spades, engine.King, engine.Ace))
	}
	if s.CheckWin(g4) {
		t.Error("Four sequences do not win a four-suit game")
	}
	for i := 0; i < 4; i++ {
		g4.Completed = append(g4.Completed, descRun(engine.Hearts, engine.King, engine.Ace))
	}
	if !s.CheckWin(g4) {
		t.Error("Eight sequences win a four-suit game")
	}
}

func TestFoundationMovesRejected(t *testing.T) {
	g := newEmptyGame(1)
	g.Tableau[0] = []engine.Card{up(engine.Spades, engine.Ace)}

	if g.MoveCards(engine.AreaTableau, 0, engine.AreaFoundation, 0, 1) {
		t.Error("Spider has no foundations; the move must be rejected")
	}
}

func TestFindMovesPriorities(t *testing.T) {
	s := New()
	g := newEmptyGame(1)
	g.Tableau[0] = []engine.Card{down(engine.Spades, 2), up(engine.Spades, 7)}
	g.Tableau[1] = []engine.Card{up(engine.Spades, 8)}
	g.Tableau[2] = []engine.Card{up(engine.Hearts, 8)}
	g.Tableau[3] = []engine.Card{down(engine.Spades, 4), up(engine.Spades, engine.King)}
	// Column 4 stays empty.
	g.Stock = []engine.Card{down(engine.Spades, 9)}

	moves := s.FindMoves(g)

	type expectation struct {
		name     string
		match    func(m engine.Move) bool
		priority int
	}
	expectations := []expectation{
		{
			"reveal with suit continuity",
			func(m engine.Move) bool { return m.FromIndex == 0 && m.ToIndex == 1 },
			3 + 3 + 1, // base, reveal, same suit
		},
		{
			"reveal without continuity",
			func(m engine.Move) bool { return m.FromIndex == 0 && m.ToIndex == 2 },
			3 + 3,
		},
		{
			"king to empty column",
			func(m engine.Move) bool { return m.FromIndex == 3 && m.ToIndex == 4 },
			3 + 3 + 2,
		},
		{
			"deal fallback",
			func(m engine.Move) bool { return m.IsDraw() },
			1,
		},
	}

	for _, want := range expectations {
		found := false
		for _, m := range moves {
			if want.match(m) {
				found = true
				if m.Priority != want.priority {
					t.Errorf("%s: priority = %d, want %d", want.name, m.Priority, want.priority)
				}
			}
		}
		if !found {
			t.Errorf("%s: move not found in %v", want.name, moves)
		}
	}
}

func TestFindMovesSkipsPointlessColumnShuffle(t *testing.T) {
	s := New()
	g := newEmptyGame(1)
	g.Tableau[0] = descRun(engine.Spades, 9, 7)
	// Every other column empty.

	for _, m := range s.FindMoves(g) {
		if m.From == engine.AreaTableau && m.Count == 3 {
			t.Errorf("Whole-column shuffle to an empty column should be filtered: %v", m)
		}
	}
}

func TestMovableStart(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		pile []engine.Card
		want int
	}{
		{"empty", nil, -1},
		{"single", []engine.Card{up(engine.Spades, 5)}, 0},
		{"same-suit run", descRun(engine.Spades, 7, 5), 0},
		{"suit break", append(descRun(engine.Hearts, 8, 8), descRun(engine.Spades, 7, 5)...), 1},
		{"face-down break", append([]engine.Card{down(engine.Spades, 8)}, descRun(engine.Spades, 7, 5)...), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := movableStart(s, tt.pile); got != tt.want {
				t.Errorf("movableStart() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnalyzeCounters(t *testing.T) {
	s := New()
	g := newEmptyGame(1)
	g.Tableau[0] = descRun(engine.Spades, 8, 4) // 5-card run
	g.Tableau[1] = []engine.Card{up(engine.Hearts, 3)}
	// Columns 2..9 empty.
	g.Completed = append(g.Completed, descRun(engine.Spades, engine.King, engine.Ace))

	a := s.Analyze(g)

	if a.EmptyColumns != 8 {
		t.Errorf("Expected 8 empty columns, got %d", a.EmptyColumns)
	}
	if a.PotentialRuns != 1 {
		t.Errorf("Expected 1 potential run, got %d", a.PotentialRuns)
	}
	if a.Progress != 25 {
		t.Errorf("Expected 25%% progress, got %.2f", a.Progress)
	}
	if len(a.Suggestions) == 0 {
		t.Error("Expected suggestions for a position with empty columns")
	}
}
