package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elijahg12/checkers-studio/internal/checkers"
)

func TestTableKeySeparatesVariants(t *testing.T) {
	classic := checkers.NewInitialPosition(checkers.Classic)
	giveaway := checkers.NewInitialPosition(checkers.Giveaway)

	require.NotEqual(t, ttKey(classic), ttKey(giveaway),
		"identical boards under different rule sets must not share entries")
}

func TestTableOverwriteIsUnconditional(t *testing.T) {
	eng := New(1)
	eng.tt = make(map[uint64]ttEntry)
	mv := checkers.Move{From: checkers.Square(2, 1), To: checkers.Square(3, 0)}

	eng.storeTT(42, 6, 120, mv, true, BoundExact)
	eng.storeTT(42, 2, -50, checkers.Move{}, false, BoundUpper)

	got := eng.tt[42]
	require.Equal(t, 2, got.Depth, "a shallower later write still replaces the entry")
	require.Equal(t, -50, got.Score)
	require.False(t, got.HasMove)
	require.Equal(t, BoundUpper, got.Bound)
}

func TestTableIsRebuiltPerSearch(t *testing.T) {
	pos := checkers.NewInitialPosition(checkers.Classic)
	eng := New(9)

	eng.Search(pos, ModeStrength, Difficulty{MaxDepth: 3})
	first := len(eng.tt)
	require.Greater(t, first, 0, "a depth-3 search must populate the table")

	// A trivial follow-up search must not inherit the deep entries.
	sparse := checkers.NewEmptyPosition(checkers.Classic, checkers.Light)
	sparse.Place(0, 1, checkers.Light, checkers.King)
	sparse.Place(7, 0, checkers.Dark, checkers.King)
	eng.Search(sparse, ModeStrength, Difficulty{MaxDepth: 1})

	require.Less(t, len(eng.tt), first, "the table must be fresh for each call")
}
