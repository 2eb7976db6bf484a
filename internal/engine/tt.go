package engine

import (
	"github.com/elijahg12/checkers-studio/internal/checkers"
)

type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

type ttEntry struct {
	Depth   int
	Score   int
	Move    checkers.Move
	HasMove bool
	Bound   Bound
}

// Keys are the position hash folded with a per-variant constant so entries
// from the two rule sets can never alias. The table itself lives for exactly
// one top-level Search call.
var variantSalt = [2]uint64{
	checkers.Classic:  0x9ddfea08eb382d69,
	checkers.Giveaway: 0x517cc1b727220a95,
}

func ttKey(p *checkers.Position) uint64 {
	return p.EnsureHash() ^ variantSalt[p.Variant]
}

// storeTT overwrites unconditionally: most-recent-write-wins per key. An
// aborted node never reaches here, so no partial result pollutes the table.
func (e *Engine) storeTT(key uint64, depth, score int, mv checkers.Move, hasMove bool, bound Bound) {
	e.tt[key] = ttEntry{
		Depth:   depth,
		Score:   score,
		Move:    mv,
		HasMove: hasMove,
		Bound:   bound,
	}
}
