package engine

import (
	"github.com/elijahg12/checkers-studio/internal/checkers"
)

const (
	vulnerableBonus  = 30
	onlyKingsPenalty = 60
)

// evalGiveaway inverts the material incentives: shedding pieces wins, so own
// material counts against us. Pieces one enemy capture away from removal are
// assets, and being left with nothing but kings while the opponent still has
// men is a liability since kings are hard to force into capture.
func evalGiveaway(pos *checkers.Position, perspective checkers.Color) int {
	opponent := checkers.Opponent(perspective)

	score := 0
	var men, kings [2]int
	for sq := 0; sq < checkers.NumSquares; sq++ {
		pc := pos.Board.Squares[sq]
		if pc == 0 {
			continue
		}
		val := manValue
		if pc.IsKing() {
			val = kingValue
			kings[pc.Color()]++
		} else {
			men[pc.Color()]++
		}
		if pc.Color() == perspective {
			score -= val
		} else {
			score += val
		}
	}

	score += vulnerableBonus * vulnerableCount(pos, perspective)
	score -= vulnerableBonus * vulnerableCount(pos, opponent)

	if men[perspective] == 0 && kings[perspective] > 0 && men[opponent] > 0 {
		score -= onlyKingsPenalty
	}
	if men[opponent] == 0 && kings[opponent] > 0 && men[perspective] > 0 {
		score += onlyKingsPenalty
	}
	return score
}

// vulnerableCount counts distinct pieces of a color the enemy could capture
// right now.
func vulnerableCount(pos *checkers.Position, c checkers.Color) int {
	captures := pos.CaptureMovesFor(checkers.Opponent(c))
	if len(captures) == 0 {
		return 0
	}
	seen := make(map[int]struct{}, len(captures))
	for _, mv := range captures {
		for _, sq := range mv.Captured {
			seen[sq] = struct{}{}
		}
	}
	return len(seen)
}
