package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-solitaire/internal/engine"
)

func TestDifficultyValid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	for _, d := range []Difficulty{"", "extreme", "EASY"} {
		if d.Valid() {
			t.Errorf("%q should not be valid", d)
		}
	}
}

func TestProfileFor(t *testing.T) {
	p := DefaultProfiles()

	if got := p.ProfileFor(DifficultyEasy); got.Deal != "winnable" {
		t.Errorf("Easy deal = %q, want winnable", got.Deal)
	}
	if got := p.ProfileFor(DifficultyHard); got.Deal != "hard" {
		t.Errorf("Hard deal = %q, want hard", got.Deal)
	}
	// Unknown tiers fall back to normal.
	if got := p.ProfileFor("mystery"); got.Deal != "standard" {
		t.Errorf("Unknown tier should map to normal, got deal %q", got.Deal)
	}
}

func TestLoadProfilesCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `easy:
  draw_count: 2
  deal: winnable
  show_hints: true
  auto_complete: true
  undo_limit: -1
  score_multiplier: 0.25
  spider_suits: 1
normal:
  draw_count: 3
  deal: standard
  undo_limit: 10
  score_multiplier: 1.0
  spider_suits: 2
hard:
  draw_count: 3
  deal: hard
  undo_limit: 0
  score_multiplier: 3.0
  spider_suits: 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles() failed: %v", err)
	}
	if p.Easy.DrawCount != 2 || p.Easy.ScoreMultiplier != 0.25 {
		t.Errorf("Custom easy profile not applied: %+v", p.Easy)
	}
	if p.Hard.ScoreMultiplier != 3.0 || p.Hard.UndoLimit != 0 {
		t.Errorf("Custom hard profile not applied: %+v", p.Hard)
	}
}

func TestLoadProfilesMissingCustomPath(t *testing.T) {
	_, err := LoadProfiles(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("A missing explicit config path must be an error")
	}
}

func TestLoadProfilesMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("easy: [not, a, profile"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProfiles(path); err == nil {
		t.Error("Malformed explicit config must be an error")
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if len(GetDefaultYAML()) == 0 {
		t.Fatal("Embedded default YAML must not be empty")
	}

	// The embedded file and the hardcoded fallback must agree; they
	// guard each other against drift.
	fromYAML, err := LoadProfiles("")
	if err != nil {
		t.Fatalf("LoadProfiles() failed: %v", err)
	}

	// The search order may pick up a user or local config on a dev
	// machine; only compare when the defaults were actually used.
	if _, err := os.Stat("configs/difficulty.yaml"); err == nil {
		t.Skip("local configs/difficulty.yaml present")
	}
	if home, err := os.UserHomeDir(); err == nil {
		if _, err := os.Stat(filepath.Join(home, ".solitaire", "configs", "difficulty.yaml")); err == nil {
			t.Skip("user difficulty.yaml present")
		}
	}

	want := DefaultProfiles()
	if fromYAML != want {
		t.Errorf("Embedded defaults drifted from hardcoded:\n got %+v\nwant %+v", fromYAML, want)
	}
}

func TestDifficultyManagerGating(t *testing.T) {
	p := DefaultProfiles()

	tests := []struct {
		tier         Difficulty
		canHint      bool
		canAuto      bool
		drawCount    int
		spiderSuits  int
		dealStrategy engine.DealStrategy
	}{
		{DifficultyEasy, true, true, 1, 1, engine.DealWinnable},
		{DifficultyNormal, true, true, 3, 2, engine.DealStandard},
		{DifficultyHard, false, false, 3, 4, engine.DealHard},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			m := NewDifficultyManager(tt.tier, p)

			if m.Difficulty() != tt.tier {
				t.Errorf("Difficulty() = %q", m.Difficulty())
			}
			if m.CanShowHints() != tt.canHint {
				t.Errorf("CanShowHints() = %v, want %v", m.CanShowHints(), tt.canHint)
			}
			if m.CanAutoComplete() != tt.canAuto {
				t.Errorf("CanAutoComplete() = %v, want %v", m.CanAutoComplete(), tt.canAuto)
			}
			if m.DrawCount() != tt.drawCount {
				t.Errorf("DrawCount() = %d, want %d", m.DrawCount(), tt.drawCount)
			}
			if m.SpiderSuits() != tt.spiderSuits {
				t.Errorf("SpiderSuits() = %d, want %d", m.SpiderSuits(), tt.spiderSuits)
			}
			if m.DealStrategy() != tt.dealStrategy {
				t.Errorf("DealStrategy() = %v, want %v", m.DealStrategy(), tt.dealStrategy)
			}
		})
	}
}

func TestCanUndo(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		used  int
		want  bool
	}{
		{"unlimited", -1, 9999, true},
		{"under limit", 5, 4, true},
		{"at limit", 5, 5, false},
		{"over limit", 5, 6, false},
		{"zero limit", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &DifficultyManager{profile: Profile{UndoLimit: tt.limit}}
			if got := m.CanUndo(tt.used); got != tt.want {
				t.Errorf("CanUndo(%d) = %v, want %v", tt.used, got, tt.want)
			}
		})
	}
}

func TestCalculateScoreFloors(t *testing.T) {
	m := &DifficultyManager{profile: Profile{ScoreMultiplier: 0.5}}

	if got := m.CalculateScore(10); got != 5 {
		t.Errorf("CalculateScore(10) = %d, want 5", got)
	}
	// Rounding toward negative infinity keeps penalties at least as
	// harsh as their halved value.
	if got := m.CalculateScore(-15); got != -8 {
		t.Errorf("CalculateScore(-15) = %d, want -8", got)
	}
}

func TestProfileNormalization(t *testing.T) {
	m := &DifficultyManager{profile: Profile{DrawCount: 0, SpiderSuits: 3, Deal: "unknown"}}

	if m.DrawCount() != 1 {
		t.Errorf("Zero draw count should normalize to 1, got %d", m.DrawCount())
	}
	if m.SpiderSuits() != 4 {
		t.Errorf("Unsupported suit count should normalize to 4, got %d", m.SpiderSuits())
	}
	if m.DealStrategy() != engine.DealStandard {
		t.Errorf("Unknown deal name should map to standard, got %v", m.DealStrategy())
	}
}

func TestEngineOptions(t *testing.T) {
	m := NewDifficultyManager(DifficultyHard, DefaultProfiles())
	opts := m.EngineOptions(42)

	want := engine.Options{
		Strategy:        engine.DealHard,
		DrawCount:       3,
		SpiderSuits:     4,
		ScoreMultiplier: 2.0,
		Seed:            42,
	}
	if opts != want {
		t.Errorf("EngineOptions(42) = %+v, want %+v", opts, want)
	}
}
