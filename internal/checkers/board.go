package checkers

import (
	"strings"
	"unicode"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

// RowOf and ColOf expose square coordinates to callers outside the package.
func RowOf(sq int) int { return rowOf(sq) }
func ColOf(sq int) int { return colOf(sq) }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Square returns the index for (row, col), or NoSquare when off the board.
func Square(row, col int) int {
	if !onBoard(row, col) {
		return NoSquare
	}
	return indexOf(row, col)
}

// Playable reports whether a square is one of the dark squares pieces live
// on. Only setup and notation care: diagonal movement preserves parity, so
// the generator never has to re-check it.
func Playable(row, col int) bool {
	return onBoard(row, col) && (row+col)%2 == 1
}

func opposite(c Color) Color {
	if c == Light {
		return Dark
	}
	if c == Dark {
		return Light
	}
	return NoColor
}

// Opponent is the exported form of opposite for callers outside the package.
func Opponent(c Color) Color { return opposite(c) }

// forwardDir is the row direction a man advances in: light toward row 7,
// dark toward row 0.
func forwardDir(c Color) int {
	if c == Light {
		return +1
	}
	if c == Dark {
		return -1
	}
	return 0
}

// promotionRow is the opponent's back rank.
func promotionRow(c Color) int {
	if c == Light {
		return Rows - 1
	}
	return 0
}

var letterToKind = map[rune]Kind{
	'm': Man,
	'k': King,
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	var base rune
	switch p.Kind() {
	case Man:
		base = 'm'
	case King:
		base = 'k'
	default:
		return '.'
	}
	if p.Color() == Light {
		return unicode.ToUpper(base)
	}
	return base
}

// Light men on rows 0-2 advancing down the grid, dark men on rows 5-7
// advancing up, twelve each on the dark squares.
const initialBoardString = `.M.M.M.M
M.M.M.M.
.M.M.M.M
........
........
m.m.m.m.
.m.m.m.m
m.m.m.m.`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString must have 8 rows")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString must have 8 cols")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			isUpper := unicode.IsUpper(ch)
			base := unicode.ToLower(ch)
			kind, ok := letterToKind[base]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			color := Dark
			if isUpper {
				color = Light
			}
			b.Squares[indexOf(r, c)] = makePiece(color, kind)
		}
	}
	return b
}

// NewInitialPosition sets up the standard twelve-a-side start with light to
// move.
func NewInitialPosition(v Variant) *Position {
	pos := &Position{
		Board:      parseInitialBoard(),
		SideToMove: Light,
		ForcedFrom: NoSquare,
		Variant:    v,
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

// NewEmptyPosition returns an empty board the caller populates with Place.
func NewEmptyPosition(v Variant, sideToMove Color) *Position {
	pos := &Position{
		SideToMove: sideToMove,
		ForcedFrom: NoSquare,
		Variant:    v,
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

// Place drops a piece on a square and keeps the hash current. Intended for
// building test and setup positions, not for play; use Apply for moves.
func (p *Position) Place(row, col int, c Color, k Kind) {
	sq := indexOf(row, col)
	if old := p.Board.Squares[sq]; old != 0 {
		p.Hash ^= pieceHashKey(old, sq)
	}
	pc := makePiece(c, k)
	p.Board.Squares[sq] = pc
	if pc != 0 {
		p.Hash ^= pieceHashKey(pc, sq)
	}
}

// PieceCount returns how many pieces of the color remain.
func (p *Position) PieceCount(c Color) int {
	n := 0
	for _, pc := range p.Board.Squares {
		if pc != 0 && pc.Color() == c {
			n++
		}
	}
	return n
}

// WinnerOnNoMoves resolves the game-over rule when the mover has no legal
// move: the mover loses in classic and wins in giveaway.
func WinnerOnNoMoves(v Variant, mover Color) Color {
	if v == Giveaway {
		return mover
	}
	return opposite(mover)
}
