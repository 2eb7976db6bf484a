package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elijahg12/checkers-studio/internal/checkers"
)

func TestEvaluateIsSignSymmetric(t *testing.T) {
	for _, v := range []checkers.Variant{checkers.Classic, checkers.Giveaway} {
		pos := checkers.NewEmptyPosition(v, checkers.Light)
		pos.Place(2, 3, checkers.Light, checkers.Man)
		pos.Place(4, 1, checkers.Light, checkers.King)
		pos.Place(5, 4, checkers.Dark, checkers.Man)
		pos.Place(6, 1, checkers.Dark, checkers.Man)
		legal := pos.LegalMoves()

		light := Evaluate(pos, checkers.Light, legal, 0)
		dark := Evaluate(pos, checkers.Dark, legal, 0)
		require.Equal(t, light, -dark, "%s evaluation must be symmetric in sign", v)
	}
}

func TestTerminalScoreShrinksWithPly(t *testing.T) {
	pos := checkers.NewEmptyPosition(checkers.Classic, checkers.Dark)

	winAt1 := Evaluate(pos, checkers.Light, nil, 1)
	winAt3 := Evaluate(pos, checkers.Light, nil, 3)
	require.Greater(t, winAt1, winAt3, "shallower forced win must score strictly higher")

	lossAt1 := Evaluate(pos, checkers.Dark, nil, 1)
	lossAt3 := Evaluate(pos, checkers.Dark, nil, 3)
	require.Less(t, lossAt1, lossAt3, "shallower forced loss must score strictly lower")
}

func TestGiveawayStuckSideWithLastPieceWins(t *testing.T) {
	// Light's one remaining man is pinned in the corner with no step and no
	// capture: in giveaway that is the win, at full magnitude.
	pos := checkers.NewEmptyPosition(checkers.Giveaway, checkers.Light)
	pos.Place(6, 7, checkers.Light, checkers.Man)
	pos.Place(7, 6, checkers.Dark, checkers.Man)

	legal := pos.LegalMoves()
	require.Empty(t, legal)
	require.Equal(t, scoreWin, Evaluate(pos, checkers.Light, legal, 0))
	require.Equal(t, -scoreWin, Evaluate(pos, checkers.Dark, legal, 0))
}

func TestGiveawayRewardsCapturablePieces(t *testing.T) {
	// Light's man can be taken by dark; light's own capture is blocked.
	vulnerable := checkers.NewEmptyPosition(checkers.Giveaway, checkers.Light)
	vulnerable.Place(3, 3, checkers.Light, checkers.Man)
	vulnerable.Place(4, 4, checkers.Dark, checkers.Man)
	vulnerable.Place(5, 5, checkers.Dark, checkers.Man)

	// Same material, nobody is capturable.
	safe := checkers.NewEmptyPosition(checkers.Giveaway, checkers.Light)
	safe.Place(3, 1, checkers.Light, checkers.Man)
	safe.Place(4, 4, checkers.Dark, checkers.Man)
	safe.Place(6, 5, checkers.Dark, checkers.Man)

	require.Greater(t,
		evalGiveaway(vulnerable, checkers.Light),
		evalGiveaway(safe, checkers.Light),
		"a piece one enemy capture from removal is an asset in giveaway")
}

func TestGiveawayPenalizesKingsOnlyAgainstMen(t *testing.T) {
	base := checkers.NewEmptyPosition(checkers.Giveaway, checkers.Light)
	base.Place(0, 1, checkers.Light, checkers.King)
	base.Place(7, 0, checkers.Dark, checkers.King)

	withMan := checkers.NewEmptyPosition(checkers.Giveaway, checkers.Light)
	withMan.Place(0, 1, checkers.Light, checkers.King)
	withMan.Place(7, 0, checkers.Dark, checkers.King)
	withMan.Place(5, 0, checkers.Dark, checkers.Man)

	got := evalGiveaway(withMan, checkers.Light) - evalGiveaway(base, checkers.Light)
	require.Equal(t, manValue-onlyKingsPenalty, got,
		"an extra enemy man is worth its material minus the kings-only penalty")
}

func TestClassicPrefersKingsAndAdvancement(t *testing.T) {
	kingPos := checkers.NewEmptyPosition(checkers.Classic, checkers.Light)
	kingPos.Place(3, 4, checkers.Light, checkers.King)
	kingPos.Place(4, 1, checkers.Dark, checkers.Man)

	manPos := checkers.NewEmptyPosition(checkers.Classic, checkers.Light)
	manPos.Place(3, 4, checkers.Light, checkers.Man)
	manPos.Place(4, 1, checkers.Dark, checkers.Man)

	require.Greater(t,
		Evaluate(kingPos, checkers.Light, kingPos.LegalMoves(), 0),
		Evaluate(manPos, checkers.Light, manPos.LegalMoves(), 0),
		"a king must outweigh a man on the same square")

	far := checkers.NewEmptyPosition(checkers.Classic, checkers.Light)
	far.Place(5, 4, checkers.Light, checkers.Man)
	far.Place(1, 0, checkers.Dark, checkers.Man)

	near := checkers.NewEmptyPosition(checkers.Classic, checkers.Light)
	near.Place(1, 4, checkers.Light, checkers.Man)
	near.Place(1, 0, checkers.Dark, checkers.Man)

	require.Greater(t,
		Evaluate(far, checkers.Light, far.LegalMoves(), 0),
		Evaluate(near, checkers.Light, near.LegalMoves(), 0),
		"advancement toward promotion must pay")
}

func TestClassicEdgeKingPenalty(t *testing.T) {
	edge := checkers.NewEmptyPosition(checkers.Classic, checkers.Light)
	edge.Place(3, 0, checkers.Light, checkers.King)
	edge.Place(6, 5, checkers.Dark, checkers.Man)

	center := checkers.NewEmptyPosition(checkers.Classic, checkers.Light)
	center.Place(3, 4, checkers.Light, checkers.King)
	center.Place(6, 5, checkers.Dark, checkers.Man)

	require.Less(t,
		Evaluate(edge, checkers.Light, edge.LegalMoves(), 0),
		Evaluate(center, checkers.Light, center.LegalMoves(), 0),
		"a king stuck on the rim must score below a centralized one")
}
