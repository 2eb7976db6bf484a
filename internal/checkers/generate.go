package checkers

var diagDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// LegalMoves generates the moves available to the side to move, honoring an
// outstanding forced continuation.
func (p *Position) LegalMoves() []Move {
	return p.LegalMovesFor(p.SideToMove, p.ForcedFrom)
}

// LegalMovesFor generates moves for a side. If forced is a square, only
// capture moves of the piece on it are returned: a piece that just captured
// must keep capturing. Otherwise the mandatory-capture rule applies: when
// any piece of the side can capture, every non-capturing move is excluded.
func (p *Position) LegalMovesFor(side Color, forced int) []Move {
	if forced != NoSquare {
		pc := p.Board.Squares[forced]
		if pc == 0 || pc.Color() != side {
			return nil
		}
		var moves []Move
		p.genCaptures(forced, pc, &moves)
		return moves
	}

	var captures []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Color() != side {
			continue
		}
		p.genCaptures(sq, pc, &captures)
	}
	if len(captures) > 0 {
		return captures
	}

	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Color() != side {
			continue
		}
		p.genSteps(sq, pc, &moves)
	}
	return moves
}

// CaptureMovesFor generates only the capture moves of a side, whether or not
// any exist. The evaluator uses it to measure capture exposure without the
// mandatory-capture fallback to quiet moves.
func (p *Position) CaptureMovesFor(side Color) []Move {
	var captures []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Color() != side {
			continue
		}
		p.genCaptures(sq, pc, &captures)
	}
	return captures
}

// HasCaptureFrom reports whether the piece on sq has at least one capture.
// Apply uses it to decide whether the turn passes after a capturing hop.
func (p *Position) HasCaptureFrom(sq int) bool {
	pc := p.Board.Squares[sq]
	if pc == 0 {
		return false
	}
	var moves []Move
	p.genCaptures(sq, pc, &moves)
	return len(moves) > 0
}

func (p *Position) genSteps(from int, pc Piece, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	if pc.IsKing() {
		// Flying king: slide any distance to the first occupied square.
		for _, d := range diagDirs {
			r, c := row+d[0], col+d[1]
			for onBoard(r, c) && p.Board.Squares[indexOf(r, c)] == 0 {
				*moves = append(*moves, Move{From: from, To: indexOf(r, c)})
				r += d[0]
				c += d[1]
			}
		}
		return
	}

	dir := forwardDir(pc.Color())
	for _, dc := range [2]int{-1, 1} {
		r, c := row+dir, col+dc
		if onBoard(r, c) && p.Board.Squares[indexOf(r, c)] == 0 {
			*moves = append(*moves, Move{From: from, To: indexOf(r, c)})
		}
	}
}

func (p *Position) genCaptures(from int, pc Piece, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := pc.Color()

	if pc.IsKing() {
		// Slide to the first piece on the diagonal; if it is an enemy, every
		// empty square beyond it up to the next piece is a landing square.
		// Two pieces can never be jumped in one hop.
		for _, d := range diagDirs {
			r, c := row+d[0], col+d[1]
			for onBoard(r, c) && p.Board.Squares[indexOf(r, c)] == 0 {
				r += d[0]
				c += d[1]
			}
			if !onBoard(r, c) {
				continue
			}
			target := indexOf(r, c)
			if p.Board.Squares[target].Color() == side {
				continue
			}
			r += d[0]
			c += d[1]
			for onBoard(r, c) && p.Board.Squares[indexOf(r, c)] == 0 {
				*moves = append(*moves, Move{From: from, To: indexOf(r, c), Captured: []int{target}})
				r += d[0]
				c += d[1]
			}
		}
		return
	}

	// Men capture forward only: adjacent enemy, empty square beyond.
	dir := forwardDir(side)
	for _, dc := range [2]int{-1, 1} {
		mr, mc := row+dir, col+dc
		lr, lc := row+2*dir, col+2*dc
		if !onBoard(lr, lc) {
			continue
		}
		over := p.Board.Squares[indexOf(mr, mc)]
		if over == 0 || over.Color() == side {
			continue
		}
		if p.Board.Squares[indexOf(lr, lc)] != 0 {
			continue
		}
		*moves = append(*moves, Move{From: from, To: indexOf(lr, lc), Captured: []int{indexOf(mr, mc)}})
	}
}
