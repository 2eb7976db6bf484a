package engine

import (
	"time"

	"github.com/elijahg12/checkers-studio/internal/checkers"
)

const (
	// A value safely beyond any reachable score, used as the open window.
	scoreInf = 1_000_000_000
	// Terminal scores start here and shrink by one per ply, so a forced win
	// found sooner always outranks one found later.
	scoreWin = 1_000_000
)

// forcedWinThreshold separates terminal scores from heuristic ones; no
// search goes anywhere near this many plies deep.
const forcedWinThreshold = scoreWin - 1024

// Result is what a search produces. Move is nil when the position is
// terminal (no legal move), with Score carrying the terminal value from the
// mover's perspective.
type Result struct {
	Move    *checkers.Move
	Score   int
	Depth   int
	Nodes   int64
	Elapsed time.Duration
}

type rootMove struct {
	move  checkers.Move
	score int
}

// Search picks a move for the side to move in pos. The engine works on a
// private copy, so pos is never mutated. Hint mode always runs at the fixed
// hint budget with no randomization; strength mode applies the policy's
// random short-circuit and post-search noise.
func (e *Engine) Search(pos *checkers.Position, mode Mode, policy Difficulty) Result {
	start := time.Now()
	e.work = *pos
	e.work.EnsureHash()
	e.rootSide = e.work.SideToMove
	e.tt = make(map[uint64]ttEntry, 1<<16)
	e.nodes = 0
	e.stopped = false

	if mode == ModeHint {
		policy = HintBudget()
	}

	moves := e.work.LegalMoves()
	if len(moves) == 0 {
		return Result{Score: Evaluate(&e.work, e.rootSide, nil, 0), Elapsed: time.Since(start)}
	}

	if mode == ModeStrength && policy.RandomMoveChance > 0 && e.rng.Float64() < policy.RandomMoveChance {
		mv := moves[e.rng.Intn(len(moves))]
		return Result{
			Move:    &mv,
			Score:   Evaluate(&e.work, e.rootSide, moves, 0),
			Nodes:   1,
			Elapsed: time.Since(start),
		}
	}

	maxDepth := policy.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 1
	}
	e.deadline = time.Time{}
	if policy.TimeBudget > 0 {
		e.deadline = start.Add(policy.TimeBudget)
	}

	// With noise in play every root move needs a comparable score, so the
	// root window stays open instead of narrowing behind the best move.
	fullWindow := mode == ModeStrength && policy.NoiseTolerance > 0

	var best Result
	var lastScored []rootMove
	for depth := 1; depth <= maxDepth; depth++ {
		if !e.deadline.IsZero() && time.Now().After(e.deadline) {
			break
		}
		scored, aborted := e.searchRoot(moves, depth, fullWindow)
		if aborted {
			// Timed out mid-depth: the last completed depth stands.
			break
		}

		bi := 0
		for i := 1; i < len(scored); i++ {
			if scored[i].score > scored[bi].score {
				bi = i
			}
		}
		mv := scored[bi].move
		best = Result{Move: &mv, Score: scored[bi].score, Depth: depth}
		lastScored = scored

		e.log.Debug().
			Int("depth", depth).
			Int("score", best.Score).
			Int64("nodes", e.nodes).
			Dur("elapsed", time.Since(start)).
			Msg("depth completed")

		if best.Score >= forcedWinThreshold || best.Score <= -forcedWinThreshold {
			break
		}
	}

	if best.Move == nil {
		// Not even depth 1 finished inside the budget; any legal move beats
		// no answer at all.
		mv := moves[0]
		best = Result{Move: &mv, Score: Evaluate(&e.work, e.rootSide, moves, 0)}
	}

	if mode == ModeStrength && policy.NoiseTolerance > 0 && len(lastScored) > 1 {
		pick := e.pickWithNoise(lastScored, best.Score, policy.NoiseTolerance)
		best.Move = &pick.move
		best.Score = pick.score
	}

	best.Nodes = e.nodes
	best.Elapsed = time.Since(start)
	return best
}

// pickWithNoise chooses uniformly among root moves within tolerance of the
// best score. This, more than raw depth, is what separates the lower tiers
// from hard play.
func (e *Engine) pickWithNoise(scored []rootMove, bestScore, tolerance int) rootMove {
	candidates := scored[:0:0]
	for _, rm := range scored {
		if rm.score >= bestScore-tolerance {
			candidates = append(candidates, rm)
		}
	}
	return candidates[e.rng.Intn(len(candidates))]
}

// searchRoot runs one full-depth iteration and scores every root move.
// The boolean result reports abortion by the deadline; a completed iteration
// is never partially reported.
func (e *Engine) searchRoot(moves []checkers.Move, depth int, fullWindow bool) ([]rootMove, bool) {
	key := ttKey(&e.work)
	var hint *checkers.Move
	if entry, ok := e.tt[key]; ok && entry.HasMove {
		hint = &entry.Move
	}
	ordered := orderMoves(&e.work, moves, hint)

	alpha, beta := -scoreInf, scoreInf
	scored := make([]rootMove, 0, len(ordered))
	bestScore := -scoreInf
	var bestMove checkers.Move
	hasBest := false

	for _, mv := range ordered {
		u, err := e.work.Apply(mv)
		if err != nil {
			// The generator produced this move; failing to apply it is a
			// defect, not a runtime condition.
			panic(err)
		}
		score, aborted := e.alphaBeta(depth-1, 1, alpha, beta)
		e.work.UndoMove(u)
		if aborted {
			return nil, true
		}
		scored = append(scored, rootMove{move: mv, score: score})
		if !hasBest || score > bestScore {
			bestScore = score
			bestMove = mv
			hasBest = true
		}
		if !fullWindow && score > alpha {
			alpha = score
		}
	}

	e.storeTT(key, depth, bestScore, bestMove, hasBest, BoundExact)
	return scored, false
}

// alphaBeta is plain minimax with alpha-beta pruning: it maximizes when the
// side to move is the root's searching side and minimizes otherwise. The
// second return value reports deadline abortion; callers unwind without
// using the score and only the depth loop acts on it.
func (e *Engine) alphaBeta(depth, ply, alpha, beta int) (int, bool) {
	e.nodes++
	// Amortize the wall-clock read over 64 nodes.
	if e.nodes&63 == 0 && !e.deadline.IsZero() && time.Now().After(e.deadline) {
		e.stopped = true
	}
	if e.stopped {
		return 0, true
	}

	moves := e.work.LegalMoves()
	if len(moves) == 0 {
		return Evaluate(&e.work, e.rootSide, nil, ply), false
	}
	if depth <= 0 {
		return Evaluate(&e.work, e.rootSide, moves, ply), false
	}

	key := ttKey(&e.work)
	var hint *checkers.Move
	if entry, ok := e.tt[key]; ok {
		if entry.HasMove {
			hint = &entry.Move
		}
		if entry.Depth >= depth {
			switch entry.Bound {
			case BoundExact:
				return entry.Score, false
			case BoundLower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case BoundUpper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score, false
			}
		}
	}

	ordered := orderMoves(&e.work, moves, hint)
	origAlpha, origBeta := alpha, beta
	maximizing := e.work.SideToMove == e.rootSide

	var bestScore int
	var bestMove checkers.Move
	hasBest := false

	if maximizing {
		bestScore = -scoreInf
		for _, mv := range ordered {
			u, err := e.work.Apply(mv)
			if err != nil {
				panic(err)
			}
			score, aborted := e.alphaBeta(depth-1, ply+1, alpha, beta)
			e.work.UndoMove(u)
			if aborted {
				return 0, true
			}
			if !hasBest || score > bestScore {
				bestScore = score
				bestMove = mv
				hasBest = true
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				break
			}
		}
	} else {
		bestScore = scoreInf
		for _, mv := range ordered {
			u, err := e.work.Apply(mv)
			if err != nil {
				panic(err)
			}
			score, aborted := e.alphaBeta(depth-1, ply+1, alpha, beta)
			e.work.UndoMove(u)
			if aborted {
				return 0, true
			}
			if !hasBest || score < bestScore {
				bestScore = score
				bestMove = mv
				hasBest = true
			}
			if score < beta {
				beta = score
			}
			if alpha >= beta {
				break
			}
		}
	}

	bound := BoundExact
	if bestScore <= origAlpha {
		bound = BoundUpper
	} else if bestScore >= origBeta {
		bound = BoundLower
	}
	e.storeTT(key, depth, bestScore, bestMove, hasBest, bound)
	return bestScore, false
}
