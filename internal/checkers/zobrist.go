package checkers

import "sync"

const zobristKinds = 3 // Kind range [1..2], 0 reserved for empty

var (
	zobristOnce sync.Once

	zobristPieces  [2][zobristKinds][NumSquares]uint64
	zobristForced  [NumSquares]uint64
	zobristVariant [2]uint64
	zobristSide    uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for color := 0; color < 2; color++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[color][k][sq] = next()
				}
			}
		}
		for sq := 0; sq < NumSquares; sq++ {
			zobristForced[sq] = next()
		}
		zobristVariant[Classic] = next()
		zobristVariant[Giveaway] = next()
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq int) uint64 {
	initZobrist()
	if pc == 0 || sq < 0 || sq >= NumSquares {
		return 0
	}

	var colorIdx int
	switch pc.Color() {
	case Light:
		colorIdx = 0
	case Dark:
		colorIdx = 1
	default:
		return 0
	}

	k := int(pc.Kind())
	if k <= 0 || k >= zobristKinds {
		return 0
	}
	return zobristPieces[colorIdx][k][sq]
}

func forcedHashKey(sq int) uint64 {
	initZobrist()
	if sq < 0 || sq >= NumSquares {
		return 0
	}
	return zobristForced[sq]
}

// CalculateHash recomputes the Zobrist hash of board + side + forced
// continuation + variant from scratch. Apply keeps Hash in sync
// incrementally; the two must always agree between mutations.
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 {
			continue
		}
		h ^= pieceHashKey(pc, sq)
	}
	if p.SideToMove == Dark {
		h ^= zobristSide
	}
	if p.ForcedFrom != NoSquare {
		h ^= forcedHashKey(p.ForcedFrom)
	}
	h ^= zobristVariant[p.Variant]
	return h
}

// EnsureHash initializes Position.Hash if unset and returns it.
func (p *Position) EnsureHash() uint64 {
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}
