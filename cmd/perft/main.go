package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/elijahg12/checkers-studio/internal/checkers"
)

// perft walks the move tree to a fixed depth over apply/undo, counting leaf
// nodes. Useful both as a generator regression check and as a mutator
// stress test: any apply/undo asymmetry shows up as a count drift.
func main() {
	depth := flag.Int("depth", 6, "tree depth in plies")
	variantName := flag.String("variant", "classic", "rule variant: classic or giveaway")
	notation := flag.String("pos", "", "optional position in Encode notation (defaults to the initial position)")
	flag.Parse()

	variant := checkers.Classic
	if *variantName == "giveaway" {
		variant = checkers.Giveaway
	}

	var pos *checkers.Position
	if *notation == "" {
		pos = checkers.NewInitialPosition(variant)
	} else {
		var err error
		pos, err = checkers.DecodePosition(*notation)
		if err != nil {
			log.Fatal().Err(err).Msg("decoding position")
		}
	}

	start := time.Now()
	var total uint64
	for _, mv := range pos.LegalMoves() {
		u, err := pos.Apply(mv)
		if err != nil {
			log.Fatal().Err(err).Msg("apply failed")
		}
		n := perft(pos, *depth-1)
		pos.UndoMove(u)
		fmt.Printf("%d-%d: %d\n", mv.From, mv.To, n)
		total += n
	}
	elapsed := time.Since(start)

	fmt.Printf("perft(%d) = %d in %v (%.0f nodes/s)\n", *depth, total, elapsed, float64(total)/elapsed.Seconds())

	if got, want := pos.Hash, pos.CalculateHash(); got != want {
		log.Fatal().Uint64("got", got).Uint64("want", want).Msg("hash drifted across the walk")
	}
}

func perft(pos *checkers.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, mv := range pos.LegalMoves() {
		u, err := pos.Apply(mv)
		if err != nil {
			log.Fatal().Err(err).Msg("apply failed")
		}
		nodes += perft(pos, depth-1)
		pos.UndoMove(u)
	}
	return nodes
}
