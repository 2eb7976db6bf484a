package engine

import (
	"sort"

	"github.com/elijahg12/checkers-studio/internal/checkers"
)

// Ordering preference, best first: the table's preferred move, captures
// (more captured pieces first), promotions, king moves, then proximity of
// the landing square to the board center.
func orderMoves(pos *checkers.Position, moves []checkers.Move, hint *checkers.Move) []checkers.Move {
	ordered := make([]checkers.Move, len(moves))
	copy(ordered, moves)
	for i := range ordered {
		ordered[i].Score = orderScore(pos, ordered[i], hint)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})
	return ordered
}

func orderScore(pos *checkers.Position, m checkers.Move, hint *checkers.Move) int {
	if hint != nil && m.Equal(*hint) {
		return 1 << 20
	}
	s := 0
	if m.IsCapture() {
		s += 10_000 + 1_000*len(m.Captured)
	}
	pc := pos.Board.Squares[m.From]
	if !pc.IsKing() && checkers.RowOf(m.To) == backRank(checkers.Opponent(pc.Color())) {
		s += 800
	}
	if pc.IsKing() {
		s += 200
	}
	s -= centerDistance(m.To)
	return s
}

// centerDistance is the doubled Manhattan distance of a square from the
// board's center point (3.5, 3.5), an integer in [2, 14].
func centerDistance(sq int) int {
	r, c := checkers.RowOf(sq), checkers.ColOf(sq)
	return abs(2*r-7) + abs(2*c-7)
}

// backRank is the home row of a color, which is the promotion row of its
// opponent.
func backRank(c checkers.Color) int {
	if c == checkers.Light {
		return 0
	}
	return checkers.Rows - 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
