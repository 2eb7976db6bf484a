package checkers

import (
	"errors"
	"fmt"
)

// ErrIllegalMove flags a programming-contract violation: the caller tried to
// apply a move that cannot exist on this board. The position is left
// untouched when Apply fails.
var ErrIllegalMove = errors.New("illegal move")

type capturedPiece struct {
	sq int
	pc Piece
}

// Undo records exactly what Apply mutated so UndoMove can restore the
// position bit for bit: the mover's pre-move piece (king flag included),
// every removed piece with its square, and the prior hash/side/forced state.
type Undo struct {
	move       Move
	moved      Piece
	captured   []capturedPiece
	prevHash   uint64
	prevSide   Color
	prevForced int
}

// Apply plays one ply in place and returns the token that reverses it.
// Promotion happens here: a man landing on the opponent's back rank becomes
// a king as part of the move. After a capturing hop the turn only passes
// when the same piece has no further capture; otherwise ForcedFrom pins the
// continuation to its new square and the mover keeps the turn.
func (p *Position) Apply(m Move) (Undo, error) {
	if m.From < 0 || m.From >= NumSquares || m.To < 0 || m.To >= NumSquares {
		return Undo{}, fmt.Errorf("%w: square out of range (%d -> %d)", ErrIllegalMove, m.From, m.To)
	}
	pc := p.Board.Squares[m.From]
	if pc == 0 {
		return Undo{}, fmt.Errorf("%w: no piece on square %d", ErrIllegalMove, m.From)
	}
	if pc.Color() != p.SideToMove {
		return Undo{}, fmt.Errorf("%w: piece on %d belongs to %s", ErrIllegalMove, m.From, pc.Color())
	}
	if p.Board.Squares[m.To] != 0 {
		return Undo{}, fmt.Errorf("%w: landing square %d occupied", ErrIllegalMove, m.To)
	}
	for _, sq := range m.Captured {
		if sq < 0 || sq >= NumSquares {
			return Undo{}, fmt.Errorf("%w: captured square %d out of range", ErrIllegalMove, sq)
		}
		victim := p.Board.Squares[sq]
		if victim == 0 || victim.Color() != opposite(p.SideToMove) {
			return Undo{}, fmt.Errorf("%w: square %d holds no enemy piece", ErrIllegalMove, sq)
		}
	}

	u := Undo{
		move:       m,
		moved:      pc,
		prevHash:   p.EnsureHash(),
		prevSide:   p.SideToMove,
		prevForced: p.ForcedFrom,
	}

	h := u.prevHash
	h ^= pieceHashKey(pc, m.From)
	p.Board.Squares[m.From] = 0

	for _, sq := range m.Captured {
		victim := p.Board.Squares[sq]
		u.captured = append(u.captured, capturedPiece{sq: sq, pc: victim})
		h ^= pieceHashKey(victim, sq)
		p.Board.Squares[sq] = 0
	}

	landed := pc
	if !pc.IsKing() && rowOf(m.To) == promotionRow(pc.Color()) {
		landed = makePiece(pc.Color(), King)
	}
	p.Board.Squares[m.To] = landed
	h ^= pieceHashKey(landed, m.To)

	if u.prevForced != NoSquare {
		h ^= forcedHashKey(u.prevForced)
	}

	if m.IsCapture() && p.HasCaptureFrom(m.To) {
		// Same side stays on the move, locked to this piece.
		p.ForcedFrom = m.To
		h ^= forcedHashKey(m.To)
	} else {
		p.ForcedFrom = NoSquare
		p.SideToMove = opposite(p.SideToMove)
		h ^= zobristSide
	}

	p.Hash = h
	return u, nil
}

// UndoMove restores board contents, king flags, hash, side to move, and the
// forced-continuation square exactly as they were before the matching Apply.
func (p *Position) UndoMove(u Undo) {
	p.Board.Squares[u.move.To] = 0
	p.Board.Squares[u.move.From] = u.moved
	for _, cap := range u.captured {
		p.Board.Squares[cap.sq] = cap.pc
	}
	p.Hash = u.prevHash
	p.SideToMove = u.prevSide
	p.ForcedFrom = u.prevForced
}
