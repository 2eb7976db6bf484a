package engine

import (
	"strings"
	"time"
)

// Mode selects what a search is for. Strength mode plays at the configured
// difficulty, weaknesses included; hint mode always answers with the
// engine's honest best effort at a fixed budget.
type Mode uint8

const (
	ModeStrength Mode = iota
	ModeHint
)

// Difficulty is a playing-strength policy. MaxDepth caps the deepening loop,
// TimeBudget bounds wall-clock time (zero means unbounded), RandomMoveChance
// short-circuits the search with a uniformly random legal move, and
// NoiseTolerance widens the final pick to any root move scoring within that
// many centipieces of the best.
type Difficulty struct {
	MaxDepth         int
	TimeBudget       time.Duration
	RandomMoveChance float64
	NoiseTolerance   int
}

func Easy() Difficulty {
	return Difficulty{
		MaxDepth:         4,
		TimeBudget:       500 * time.Millisecond,
		RandomMoveChance: 0.25,
		NoiseTolerance:   120,
	}
}

func Medium() Difficulty {
	return Difficulty{
		MaxDepth:         7,
		TimeBudget:       1500 * time.Millisecond,
		RandomMoveChance: 0.08,
		NoiseTolerance:   40,
	}
}

func Hard() Difficulty {
	return Difficulty{
		MaxDepth:   12,
		TimeBudget: 4 * time.Second,
	}
}

// HintBudget is the policy hint mode runs under regardless of the game's
// difficulty. It carries no randomization fields on purpose.
func HintBudget() Difficulty {
	return Difficulty{
		MaxDepth:   12,
		TimeBudget: 5 * time.Second,
	}
}

// ByName resolves a tier name, case-insensitively.
func ByName(tier string) (Difficulty, bool) {
	switch strings.ToLower(tier) {
	case "easy":
		return Easy(), true
	case "medium":
		return Medium(), true
	case "hard":
		return Hard(), true
	default:
		return Difficulty{}, false
	}
}
