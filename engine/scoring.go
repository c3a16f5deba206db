package engine

import "fmt"

// Hand-score point values.
const (
	pointsMostCards     = 2
	pointsMostCardsTie  = 1
	pointsSpades        = 1
	pointsSpadesSix     = 2
	pointsSpyTwo        = 1
	pointsBigTen        = 2
	pointsAce           = 1
	spadesThreshold     = 5
	spadesSixThreshold  = 6
	tiebreakPileMinimum = 21
)

// CalculateScores computes each player's points for the completed hand
// from their capture piles: most cards 2 (1 each when tied for most),
// five spades 1 or six-plus spades 2, the two of spades 1, the ten of
// diamonds 2, and 1 per ace.
func (g GameState) CalculateScores() []int {
	scores := make([]int, len(g.Players))

	counts := g.CapturedCounts()
	most := 0
	for _, n := range counts {
		if n > most {
			most = n
		}
	}
	leaders := 0
	for _, n := range counts {
		if n == most && most > 0 {
			leaders++
		}
	}

	for i, p := range g.Players {
		if counts[i] == most && most > 0 {
			if leaders > 1 {
				scores[i] += pointsMostCardsTie
			} else {
				scores[i] += pointsMostCards
			}
		}

		spades := 0
		for _, c := range p.Pile {
			if c.IsSpade() {
				spades++
			}
			if c.IsSpyTwo() {
				scores[i] += pointsSpyTwo
			}
			if c.IsBigTen() {
				scores[i] += pointsBigTen
			}
			if c.IsAce() {
				scores[i] += pointsAce
			}
		}
		// Threshold, not additive: six or more spades supersedes five.
		if spades >= spadesSixThreshold {
			scores[i] += pointsSpadesSix
		} else if spades >= spadesThreshold {
			scores[i] += pointsSpades
		}
	}
	return scores
}

// ApplyScores folds the hand scores into the cumulative match totals.
// When both the hand scores and the resulting match totals are fully
// tied across all players, every player who captured at least 21 cards
// receives one tiebreak point. The match ends once any cumulative
// score reaches the target.
func (g GameState) ApplyScores() (GameState, error) {
	if g.Phase != PhaseScoring {
		return g, g.reject("applyScores", ErrWrongPhase)
	}

	out := g.clone()
	handScores := out.CalculateScores()
	for i := range out.Players {
		out.Players[i].MatchScore += handScores[i]
	}

	if allEqual(handScores) && matchScoresEqual(out.Players) {
		for i, p := range out.Players {
			if len(p.Pile) >= tiebreakPileMinimum {
				out.Players[i].MatchScore++
			}
		}
	}

	finished := false
	for _, p := range out.Players {
		if p.MatchScore >= out.Rules.TargetScore {
			finished = true
			break
		}
	}
	if finished {
		out.Phase = PhaseGameOver
	}

	out.Log.append(ActionScore, -1, fmt.Sprintf("hand %d scored %v", out.HandNumber, handScores))
	return out, nil
}

// Winner returns the index of the player with the highest cumulative
// score once the match is over.
func (g GameState) Winner() (int, bool) {
	if g.Phase != PhaseGameOver {
		return 0, false
	}
	best := 0
	for i := range g.Players {
		if g.Players[i].MatchScore > g.Players[best].MatchScore {
			best = i
		}
	}
	return best, true
}

func allEqual(xs []int) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

func matchScoresEqual(players []Player) bool {
	for _, p := range players[1:] {
		if p.MatchScore != players[0].MatchScore {
			return false
		}
	}
	return true
}
