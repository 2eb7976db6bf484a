package checkers

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyUndoRoundTrip(t *testing.T) {
	pos := NewInitialPosition(Classic)
	for ply := 0; ply < 50; ply++ {
		moves := pos.LegalMoves()
		if len(moves) == 0 {
			break
		}
		before := *pos
		mv := moves[ply%len(moves)]
		u, err := pos.Apply(mv)
		if err != nil {
			t.Fatalf("apply failed at ply %d: %v", ply, err)
		}
		pos.UndoMove(u)
		if diff := cmp.Diff(before, *pos); diff != "" {
			t.Fatalf("apply/undo not a round trip at ply %d, move %+v:\n%s", ply, mv, diff)
		}
		// Walk forward for the next iteration.
		if _, err := pos.Apply(mv); err != nil {
			t.Fatalf("re-apply failed at ply %d: %v", ply, err)
		}
	}
}

func TestMultiCaptureKeepsTurnAndSetsForcedSquare(t *testing.T) {
	pos := NewEmptyPosition(Classic, Light)
	pos.Place(2, 2, Light, Man)
	pos.Place(3, 3, Dark, Man)
	pos.Place(5, 5, Dark, Man)

	moves := pos.LegalMoves()
	if len(moves) != 1 || !moves[0].IsCapture() {
		t.Fatalf("expected the single mandatory capture, got %+v", moves)
	}
	if _, err := pos.Apply(moves[0]); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if pos.SideToMove != Light {
		t.Fatal("turn passed although a further capture was available")
	}
	if pos.ForcedFrom != indexOf(4, 4) {
		t.Fatalf("forced square: got %d want %d", pos.ForcedFrom, indexOf(4, 4))
	}

	cont := pos.LegalMoves()
	if len(cont) != 1 || cont[0].Captured[0] != indexOf(5, 5) {
		t.Fatalf("continuation moves: %+v", cont)
	}
	if _, err := pos.Apply(cont[0]); err != nil {
		t.Fatalf("apply continuation: %v", err)
	}

	if pos.ForcedFrom != NoSquare {
		t.Fatal("forced square survived the end of the jump sequence")
	}
	if pos.SideToMove != Dark {
		t.Fatal("turn did not pass after the jump sequence ended")
	}
}

func TestPromotionOnApplyAndUndo(t *testing.T) {
	pos := NewEmptyPosition(Classic, Light)
	pos.Place(6, 1, Light, Man)

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		t.Fatal("no moves for the promoting man")
	}
	u, err := pos.Apply(moves[0])
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !pos.Board.Squares[moves[0].To].IsKing() {
		t.Fatal("man reaching the back rank did not promote")
	}
	pos.UndoMove(u)
	if pos.Board.Squares[indexOf(6, 1)].Kind() != Man {
		t.Fatal("undo did not restore the man")
	}
}

func TestPromotionMidJumpContinuesAsKing(t *testing.T) {
	// The capturing man promotes on landing and the new king has a capture
	// available, so the turn must not pass.
	pos := NewEmptyPosition(Classic, Light)
	pos.Place(5, 2, Light, Man)
	pos.Place(6, 3, Dark, Man)
	pos.Place(6, 5, Dark, Man)

	moves := pos.LegalMoves()
	if len(moves) != 1 || moves[0].To != indexOf(7, 4) {
		t.Fatalf("expected the jump to (7,4), got %+v", moves)
	}
	if _, err := pos.Apply(moves[0]); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !pos.Board.Squares[indexOf(7, 4)].IsKing() {
		t.Fatal("no promotion on the back rank")
	}
	if pos.SideToMove != Light || pos.ForcedFrom != indexOf(7, 4) {
		t.Fatalf("king continuation not forced: side=%v forced=%d", pos.SideToMove, pos.ForcedFrom)
	}
}

func TestApplyRejectsContractViolations(t *testing.T) {
	pos := NewInitialPosition(Classic)
	before := *pos

	cases := []Move{
		{From: indexOf(3, 4), To: indexOf(4, 5)},                                // empty source
		{From: indexOf(5, 0), To: indexOf(4, 1)},                                // opponent's piece
		{From: indexOf(2, 1), To: indexOf(1, 0)},                                // occupied landing
		{From: indexOf(2, 1), To: indexOf(3, 0), Captured: []int{indexOf(3, 2)}}, // captured square empty
		{From: -1, To: indexOf(3, 0)},                                           // out of range
	}
	for _, mv := range cases {
		if _, err := pos.Apply(mv); !errors.Is(err, ErrIllegalMove) {
			t.Fatalf("move %+v: want ErrIllegalMove, got %v", mv, err)
		}
	}
	if diff := cmp.Diff(before, *pos); diff != "" {
		t.Fatalf("failed Apply mutated the position:\n%s", diff)
	}
}
