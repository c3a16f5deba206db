package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Hand sizes per player count. Two-player games hold back a 20-card
// draw pile for the forced second deal; three-player games turn one
// card face-up onto the table.
const (
	handSizeTwoPlayer   = 10
	handSizeThreePlayer = 13
	handSizeFourPlayer  = 10
)

// NewGame shuffles a fresh deck and deals the first hand of a match.
// Player count outside [2,4] is a caller error.
func NewGame(names []string, rules Rules) (GameState, error) {
	n := len(names)
	if n < 2 || n > 4 {
		return GameState{}, fmt.Errorf("%w: got %d", ErrPlayerCount, n)
	}
	if rules.Seed == 0 {
		rules.Seed = time.Now().UnixNano()
	}

	players := make([]Player, n)
	for i, name := range names {
		players[i] = Player{ID: uuid.New(), Name: name}
	}

	g := GameState{
		Players:      players,
		LastCapturer: -1,
		HandNumber:   1,
		Rules:        rules,
		Log:          ActionLog{Cap: rules.ActionLogCap},
	}
	g.dealInto(rules.Seed)
	return g, nil
}

// NewHand deals the next hand of an unfinished match, carrying the
// players and their cumulative scores forward. Legal only once the
// previous hand has reached the scoring phase.
func (g GameState) NewHand() (GameState, error) {
	if g.Phase != PhaseScoring {
		return g, g.reject("newHand", ErrWrongPhase)
	}
	out := g.clone()
	for i := range out.Players {
		out.Players[i].Hand = nil
		out.Players[i].Pile = nil
	}
	out.HandNumber++
	out.Table = nil
	out.Builds = nil
	out.Stock = nil
	out.LastCapturer = -1
	out.SecondDealt = false
	out.dealInto(out.Rules.Seed + int64(out.HandNumber))
	return out, nil
}

// dealInto shuffles a fresh deck with the given seed and partitions it
// by player count. The receiver must already hold reset players.
func (g *GameState) dealInto(seed int64) {
	deck := NewDeck()
	shuffle(deck, rand.New(rand.NewSource(seed)))

	n := len(g.Players)
	handSize := handSizeTwoPlayer
	if n == 3 {
		handSize = handSizeThreePlayer
	}
	for i := range g.Players {
		g.Players[i].Hand = append([]Card(nil), deck[:handSize]...)
		deck = deck[handSize:]
	}
	switch n {
	case 2:
		g.Stock = append([]Card(nil), deck...)
	case 3:
		g.Table = append([]Card(nil), deck[:1]...)
	}

	g.CurrentPlayer = 0
	g.Phase = PhasePlaying
	g.Log.append(ActionDeal, -1, fmt.Sprintf("hand %d dealt to %d players", g.HandNumber, n))
}
