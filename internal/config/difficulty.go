package config

import (
	"math"

	"github.com/vovakirdan/tui-solitaire/internal/engine"
)

// DifficultyManager gates gameplay features against one tier's profile.
// The engine stays permissive; every tier restriction is enforced here
// by the callers that own the session.
type DifficultyManager struct {
	difficulty Difficulty
	profile    Profile
}

// NewDifficultyManager creates a manager for one tier.
func NewDifficultyManager(d Difficulty, p Profiles) *DifficultyManager {
	return &DifficultyManager{
		difficulty: d,
		profile:    p.ProfileFor(d),
	}
}

// Difficulty returns the tier name.
func (d *DifficultyManager) Difficulty() Difficulty {
	return d.difficulty
}

// Profile returns the underlying profile values.
func (d *DifficultyManager) Profile() Profile {
	return d.profile
}

// CanUndo reports whether another undo is allowed after used undos.
// A limit of -1 means unlimited.
func (d *DifficultyManager) CanUndo(used int) bool {
	if d.profile.UndoLimit < 0 {
		return true
	}
	return used < d.profile.UndoLimit
}

// CanShowHints reports whether hint requests are honored on this tier.
func (d *DifficultyManager) CanShowHints() bool {
	return d.profile.ShowHints
}

// CanAutoComplete reports whether auto-complete may be offered.
func (d *DifficultyManager) CanAutoComplete() bool {
	return d.profile.AutoComplete
}

// DrawCount returns the cards drawn per stock action.
func (d *DifficultyManager) DrawCount() int {
	if d.profile.DrawCount < 1 {
		return 1
	}
	return d.profile.DrawCount
}

// SpiderSuits returns the suit count for Spider deals.
func (d *DifficultyManager) SpiderSuits() int {
	switch d.profile.SpiderSuits {
	case 1, 2, 4:
		return d.profile.SpiderSuits
	}
	return 4
}

// DealStrategy maps the profile's deal name onto an engine strategy.
func (d *DifficultyManager) DealStrategy() engine.DealStrategy {
	switch d.profile.Deal {
	case "winnable":
		return engine.DealWinnable
	case "hard":
		return engine.DealHard
	default:
		return engine.DealStandard
	}
}

// CalculateScore applies the tier multiplier to a base amount, rounding
// toward negative infinity so penalties stay penalties.
func (d *DifficultyManager) CalculateScore(base int) int {
	return int(math.Floor(float64(base) * d.profile.ScoreMultiplier))
}

// EngineOptions builds the engine options for a new game on this tier.
func (d *DifficultyManager) EngineOptions(seed int64) engine.Options {
	return engine.Options{
		Strategy:        d.DealStrategy(),
		DrawCount:       d.DrawCount(),
		SpiderSuits:     d.SpiderSuits(),
		ScoreMultiplier: d.profile.ScoreMultiplier,
		Seed:            seed,
	}
}
