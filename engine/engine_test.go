package engine

import (
	"testing"

	"github.com/google/uuid"
)

// card mints a test card with a fresh ID.
func card(rank int, suit Suit) Card {
	return Card{ID: uuid.New(), Rank: rank, Suit: suit}
}

// cards mints one card per rank, all hearts, for fixtures where suit
// is irrelevant.
func cards(ranks ...int) []Card {
	out := make([]Card, len(ranks))
	for i, r := range ranks {
		out[i] = card(r, SuitHearts)
	}
	return out
}

// twoPlayerState builds a playing-phase fixture with the given hands
// and table. The card set need not be a full deck; tests that exercise
// the conservation invariant use NewGame instead.
func twoPlayerState(t *testing.T, hand0, hand1, table []Card) GameState {
	t.Helper()
	return GameState{
		Players: []Player{
			{ID: uuid.New(), Name: "ann", Hand: hand0},
			{ID: uuid.New(), Name: "ben", Hand: hand1},
		},
		Table:        table,
		LastCapturer: -1,
		Phase:        PhasePlaying,
		HandNumber:   1,
		Rules:        DefaultRules(),
		Log:          ActionLog{Cap: 50},
	}
}

// pileOf fills a capture pile with n plain hearts of the given rank.
func pileOf(n, rank int) []Card {
	out := make([]Card, n)
	for i := range out {
		out[i] = card(rank, SuitHearts)
	}
	return out
}
