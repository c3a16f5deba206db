package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrift(t *testing.T) {
	seven := card(7, SuitClubs)
	g := twoPlayerState(t, []Card{seven, card(2, SuitHearts)}, cards(5), cards(9))

	after, err := g.Drift(seven)
	require.NoError(t, err)

	assert.Len(t, after.Players[0].Hand, 1)
	assert.Len(t, after.Table, 2)
	assert.Equal(t, seven, after.Table[1])
	assert.Equal(t, ActionDrift, after.Log.Entries[len(after.Log.Entries)-1].Type)

	// Input snapshot unchanged.
	assert.Len(t, g.Players[0].Hand, 2)
	assert.Len(t, g.Table, 1)
}

func TestDriftRejectsCardNotInHand(t *testing.T) {
	g := twoPlayerState(t, cards(7), cards(5), nil)

	_, err := g.Drift(card(7, SuitSpades))
	assert.ErrorIs(t, err, ErrCardNotInHand)
}

func TestDriftRejectsBuildOwner(t *testing.T) {
	five := card(5, SuitHearts)
	three := card(3, SuitClubs)
	g := twoPlayerState(t, cards(8, 8, 2), cards(4), []Card{five, three})

	mid, err := g.CreateBuild(nil, []Card{five, three}, 8, nil)
	require.NoError(t, err)

	deuce := mid.Players[0].Hand[2]
	_, err = mid.Drift(deuce)
	assert.ErrorIs(t, err, ErrOwnsBuild)

	// The restriction lifts during the second half of a 2-player hand.
	mid.Phase = PhasePlayingSecond
	after, err := mid.Drift(deuce)
	require.NoError(t, err)
	assert.Len(t, after.Table, 1)
}

func TestNextTurnAdvances(t *testing.T) {
	g := twoPlayerState(t, cards(7), cards(5), nil)

	after, err := g.NextTurn()
	require.NoError(t, err)
	assert.Equal(t, 1, after.CurrentPlayer)

	after, err = after.NextTurn()
	require.NoError(t, err)
	assert.Equal(t, 0, after.CurrentPlayer)
	assert.Equal(t, PhasePlaying, after.Phase)
}

func TestNextTurnTriggersSecondDeal(t *testing.T) {
	g := twoPlayerState(t, nil, nil, cards(9))
	g.Stock = cards(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	after, err := g.NextTurn()
	require.NoError(t, err)

	assert.Equal(t, PhasePlayingSecond, after.Phase)
	assert.True(t, after.SecondDealt)
	assert.Equal(t, 0, after.CurrentPlayer)
	assert.Len(t, after.Players[0].Hand, handSizeTwoPlayer)
	assert.Len(t, after.Players[1].Hand, handSizeTwoPlayer)
	assert.Empty(t, after.Stock)
	// The table carries over untouched.
	assert.Len(t, after.Table, 1)
}

func TestNextTurnSweepsToLastCapturer(t *testing.T) {
	five := card(5, SuitHearts)
	three := card(3, SuitClubs)
	g := twoPlayerState(t, nil, nil, []Card{five, three, card(9, SuitDiamonds)})
	g.SecondDealt = true
	g.LastCapturer = 1
	g.Builds = []Build{{Owner: 0, Value: 8, Groups: [][]Card{{card(6, SuitHearts), card(2, SuitSpades)}}}}
	g.Players[1].Pile = pileOf(4, 7)

	after, err := g.NextTurn()
	require.NoError(t, err)

	assert.Equal(t, PhaseScoring, after.Phase)
	assert.Empty(t, after.Table)
	assert.Empty(t, after.Builds)
	assert.Len(t, after.Players[1].Pile, 4+3+2)
	assert.Empty(t, after.Players[0].Pile)
	assert.Equal(t, ActionSweep, after.Log.Entries[len(after.Log.Entries)-1].Type)
}

func TestNextTurnNoCapturerLeavesTable(t *testing.T) {
	g := twoPlayerState(t, nil, nil, cards(9, 4))
	g.SecondDealt = true

	after, err := g.NextTurn()
	require.NoError(t, err)

	assert.Equal(t, PhaseScoring, after.Phase)
	assert.Len(t, after.Table, 2)
	assert.Empty(t, after.Players[0].Pile)
	assert.Empty(t, after.Players[1].Pile)
}

func TestNextTurnWrongPhase(t *testing.T) {
	g := twoPlayerState(t, cards(7), cards(5), nil)
	g.Phase = PhaseScoring

	_, err := g.NextTurn()
	assert.ErrorIs(t, err, ErrWrongPhase)
}
