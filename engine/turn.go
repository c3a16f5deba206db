package engine

import "fmt"

// Drift plays a hand card face-up onto the table without capturing.
// A player who owns a build may not drift, except during the forced
// second-deal phase.
func (g GameState) Drift(handCard Card) (GameState, error) {
	if g.Phase != PhasePlaying && g.Phase != PhasePlayingSecond {
		return g, g.reject("drift", ErrWrongPhase)
	}
	if !containsCard(g.CurrentHand(), handCard.ID) {
		return g, g.reject("drift", ErrCardNotInHand)
	}
	if g.Phase != PhasePlayingSecond && g.buildOwnedBy(g.CurrentPlayer) >= 0 {
		return g, g.reject("drift", ErrOwnsBuild)
	}

	out := g.clone()
	me := &out.Players[out.CurrentPlayer]
	me.Hand, _ = removeCard(me.Hand, handCard.ID)
	out.Table = append(out.Table, handCard)
	out.Log.append(ActionDrift, out.CurrentPlayer,
		fmt.Sprintf("%s drifts %s", me.Name, handCard))
	return out, nil
}

// NextTurn advances the turn pointer. When every hand has been played
// out it either triggers the 2-player second deal or ends the hand:
// the last capturer sweeps the remaining loose and build cards, and
// the state moves to the scoring phase.
func (g GameState) NextTurn() (GameState, error) {
	if g.Phase != PhasePlaying && g.Phase != PhasePlayingSecond {
		return g, g.reject("nextTurn", ErrWrongPhase)
	}

	out := g.clone()
	out.CurrentPlayer = (out.CurrentPlayer + 1) % len(out.Players)
	if !out.handsEmpty() {
		return out, nil
	}

	if len(out.Players) == 2 && !out.SecondDealt && len(out.Stock) > 0 {
		out.dealSecond()
		return out, nil
	}

	out.sweep()
	return out, nil
}

// dealSecond deals the held-back draw pile for the second half of a
// 2-player hand. The turn returns to player 0.
func (g *GameState) dealSecond() {
	for i := range g.Players {
		g.Players[i].Hand = append([]Card(nil), g.Stock[:handSizeTwoPlayer]...)
		g.Stock = g.Stock[handSizeTwoPlayer:]
	}
	g.SecondDealt = true
	g.CurrentPlayer = 0
	g.Phase = PhasePlayingSecond
	g.Log.append(ActionSecondDeal, -1, "second deal")
}

// sweep ends the hand: remaining loose and build cards go to the last
// capturer's pile, then the table clears and scoring begins. With no
// capturer the whole hand (nobody ever captured), the table cards stay
// where they are so no card is lost.
func (g *GameState) sweep() {
	if g.LastCapturer >= 0 {
		p := &g.Players[g.LastCapturer]
		swept := len(g.Table)
		p.Pile = append(p.Pile, g.Table...)
		for _, b := range g.Builds {
			cards := b.Cards()
			swept += len(cards)
			p.Pile = append(p.Pile, cards...)
		}
		g.Table = nil
		g.Builds = nil
		g.Log.append(ActionSweep, g.LastCapturer,
			fmt.Sprintf("%s sweeps %d remaining cards", p.Name, swept))
	}
	g.Phase = PhaseScoring
}
