// Package config provides YAML-based difficulty profiles and gameplay
// gating for the solitaire platform.
package config

// Profile bundles every gameplay knob one difficulty tier controls.
type Profile struct {
	DrawCount       int     `yaml:"draw_count"`       // Cards per stock draw (Klondike)
	Deal            string  `yaml:"deal"`             // "standard", "winnable" or "hard"
	ShowHints       bool    `yaml:"show_hints"`       // Whether hint requests are honored
	AutoComplete    bool    `yaml:"auto_complete"`    // Whether auto-complete may be offered
	UndoLimit       int     `yaml:"undo_limit"`       // Undos per game, -1 = unlimited
	ScoreMultiplier float64 `yaml:"score_multiplier"` // Applied to every score delta
	SpiderSuits     int     `yaml:"spider_suits"`     // Distinct suits in a Spider deal
}

// Profiles holds the three built-in tiers.
type Profiles struct {
	Easy   Profile `yaml:"easy"`
	Normal Profile `yaml:"normal"`
	Hard   Profile `yaml:"hard"`
}

// Difficulty names a tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d names a known tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ProfileFor returns the profile for a tier, defaulting to normal for
// unknown names.
func (p Profiles) ProfileFor(d Difficulty) Profile {
	switch d {
	case DifficultyEasy:
		return p.Easy
	case DifficultyHard:
		return p.Hard
	default:
		return p.Normal
	}
}
