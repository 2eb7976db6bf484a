package engine

import (
	"github.com/elijahg12/checkers-studio/internal/checkers"
)

const (
	manValue        = 100
	kingValue       = 275
	advanceWeight   = 4
	supportBonus    = 6
	edgeKingPenalty = 18
	mobilityWeight  = 2
)

// Evaluate scores a position from perspective's point of view: positive
// favors perspective, and Evaluate(p, Light) == -Evaluate(p, Dark). legal
// must be the mover's legal moves; when it is empty the position is terminal
// and the score is the win/loss magnitude shrunk by ply, so a faster win
// scores strictly higher and a faster loss strictly lower. Never mutates.
func Evaluate(pos *checkers.Position, perspective checkers.Color, legal []checkers.Move, ply int) int {
	if len(legal) == 0 {
		// A mover with no moves has lost in classic and won in giveaway.
		moverWins := pos.Variant == checkers.Giveaway
		if (pos.SideToMove == perspective) == moverWins {
			return scoreWin - ply
		}
		return -scoreWin + ply
	}
	if pos.Variant == checkers.Giveaway {
		return evalGiveaway(pos, perspective)
	}
	return evalClassic(pos, perspective, legal)
}

func evalClassic(pos *checkers.Position, perspective checkers.Color, legal []checkers.Move) int {
	score := 0
	for sq := 0; sq < checkers.NumSquares; sq++ {
		pc := pos.Board.Squares[sq]
		if pc == 0 {
			continue
		}
		color := pc.Color()
		r, c := checkers.RowOf(sq), checkers.ColOf(sq)

		var val int
		if pc.IsKing() {
			val = kingValue
			if r == 0 || r == checkers.Rows-1 || c == 0 || c == checkers.Cols-1 {
				val -= edgeKingPenalty
			}
		} else {
			val = manValue + advanceWeight*advance(color, r)
		}

		val += (14 - centerDistance(sq)) / 2
		val += supportBonus * supporters(pos, sq, color)

		if color == perspective {
			score += val
		} else {
			score -= val
		}
	}

	mobility := mobilityWeight * len(legal)
	if pos.SideToMove == perspective {
		score += mobility
	} else {
		score -= mobility
	}
	return score
}

// advance counts rows traveled toward the promotion rank.
func advance(c checkers.Color, row int) int {
	if c == checkers.Light {
		return row
	}
	return checkers.Rows - 1 - row
}

// supporters counts same-color pieces on the two diagonals behind a piece,
// where behind means toward its own back rank.
func supporters(pos *checkers.Position, sq int, color checkers.Color) int {
	r, c := checkers.RowOf(sq), checkers.ColOf(sq)
	back := -1
	if color == checkers.Dark {
		back = 1
	}
	n := 0
	for _, dc := range [2]int{-1, 1} {
		bsq := checkers.Square(r+back, c+dc)
		if bsq == checkers.NoSquare {
			continue
		}
		if bpc := pos.Board.Squares[bsq]; bpc != 0 && bpc.Color() == color {
			n++
		}
	}
	return n
}
