package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playGreedyHand drives one full hand with a trivial policy: take the
// biggest capture on offer for the first playable card, otherwise drift
// the first card. Conservation is checked after every move.
func playGreedyHand(t *testing.T, g GameState) GameState {
	t.Helper()
	for g.Phase == PhasePlaying || g.Phase == PhasePlayingSecond {
		hand := g.CurrentHand()
		if len(hand) > 0 {
			played := false
			for _, c := range hand {
				opts := g.FindCaptures(c)
				if len(opts) == 0 {
					continue
				}
				best := opts[0]
				for _, o := range opts[1:] {
					if o.Count() > best.Count() {
						best = o
					}
				}
				next, err := g.ExecuteCapture(c, best)
				require.NoError(t, err)
				g = next
				played = true
				break
			}
			if !played {
				next, err := g.Drift(hand[0])
				require.NoError(t, err)
				g = next
			}
			require.NoError(t, g.Check())
		}
		next, err := g.NextTurn()
		require.NoError(t, err)
		g = next
		require.NoError(t, g.Check())
	}
	return g
}

func TestFullHandConservation(t *testing.T) {
	for players := 2; players <= 4; players++ {
		t.Run(fmt.Sprintf("%d players", players), func(t *testing.T) {
			names := []string{"ann", "ben", "cat", "dan"}[:players]
			g, err := NewGame(names, seededRules(7))
			require.NoError(t, err)
			require.NoError(t, g.Check())

			g = playGreedyHand(t, g)

			require.Equal(t, PhaseScoring, g.Phase)
			require.NoError(t, g.Check())
			if players == 2 {
				assert.True(t, g.SecondDealt)
				assert.Empty(t, g.Stock)
			}
			for i := range g.Players {
				assert.Empty(t, g.Players[i].Hand)
			}

			g, err = g.ApplyScores()
			require.NoError(t, err)
			require.NoError(t, g.Check())
		})
	}
}

func TestMultiHandMatch(t *testing.T) {
	g, err := NewGame([]string{"ann", "ben"}, seededRules(11))
	require.NoError(t, err)

	for hand := 0; hand < 20 && g.Phase != PhaseGameOver; hand++ {
		g = playGreedyHand(t, g)
		g, err = g.ApplyScores()
		require.NoError(t, err)
		if g.Phase == PhaseGameOver {
			break
		}
		g, err = g.NewHand()
		require.NoError(t, err)
		require.NoError(t, g.Check())
		require.Equal(t, PhasePlaying, g.Phase)
	}

	require.Equal(t, PhaseGameOver, g.Phase, "a greedy match must reach the target score")
	winner, over := g.Winner()
	require.True(t, over)
	assert.GreaterOrEqual(t, g.Players[winner].MatchScore, g.Rules.TargetScore)
}
