package engine

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Phase tracks where a hand is in its lifecycle.
type Phase uint8

const (
	PhaseDealing Phase = iota
	PhasePlaying
	PhasePlayingSecond // 2-player forced second deal
	PhaseScoring
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhasePlaying:
		return "playing"
	case PhasePlayingSecond:
		return "playingSecond"
	case PhaseScoring:
		return "scoring"
	case PhaseGameOver:
		return "gameOver"
	}
	return "unknown"
}

// Player holds one seat's cards and running match score. Hand contents
// are visible only to the owner by convention; the capture pile is
// public and append-ordered, its last element being the top.
type Player struct {
	ID         uuid.UUID
	Name       string
	Hand       []Card
	Pile       []Card
	MatchScore int
}

// Build is an owned table construct declaring a capture value. Each
// group's cards sum exactly to Value; a build with more than one group
// is augmented.
type Build struct {
	ID     uuid.UUID
	Owner  int // player index
	Value  int
	Groups [][]Card
}

// Augmented reports whether the build holds more than one group.
func (b Build) Augmented() bool { return len(b.Groups) > 1 }

// Cards returns the build's cards flattened in group order.
func (b Build) Cards() []Card {
	var out []Card
	for _, g := range b.Groups {
		out = append(out, g...)
	}
	return out
}

func (b Build) String() string {
	return fmt.Sprintf("build of %d (%s)", b.Value, describeCards(b.Cards()))
}

// buildIDNamespace seeds content-derived build IDs.
var buildIDNamespace = uuid.MustParse("9f2b7a64-3c1e-4ab8-9d6f-5e8c01b7d2a4")

// deriveBuildID computes a build's ID from the sorted IDs of its
// member cards, so the same cards always produce the same build ID
// with no global counter involved.
func deriveBuildID(cards []Card) uuid.UUID {
	ids := make([][]byte, len(cards))
	for i, c := range cards {
		id := c.ID
		ids[i] = id[:]
	}
	sort.Slice(ids, func(a, b int) bool { return bytes.Compare(ids[a], ids[b]) < 0 })
	var joined []byte
	for _, id := range ids {
		joined = append(joined, id...)
	}
	return uuid.NewSHA1(buildIDNamespace, joined)
}

// GameState is an immutable snapshot of a hand in progress. Operations
// never modify a snapshot; they deep-copy it and return the copy.
type GameState struct {
	Players       []Player
	CurrentPlayer int
	Table         []Card // loose table cards
	Builds        []Build
	Stock         []Card // undealt cards held for the 2-player second deal
	LastCapturer  int    // -1 until the first capture of the hand
	Phase         Phase
	HandNumber    int
	SecondDealt   bool
	Rules         Rules
	Log           ActionLog
}

// clone deep-copies the snapshot. Every operation starts here.
func (g GameState) clone() GameState {
	out := g
	out.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		out.Players[i] = p
		out.Players[i].Hand = append([]Card(nil), p.Hand...)
		out.Players[i].Pile = append([]Card(nil), p.Pile...)
	}
	out.Table = append([]Card(nil), g.Table...)
	out.Stock = append([]Card(nil), g.Stock...)
	out.Builds = make([]Build, len(g.Builds))
	for i, b := range g.Builds {
		out.Builds[i] = b
		out.Builds[i].Groups = make([][]Card, len(b.Groups))
		for j, grp := range b.Groups {
			out.Builds[i].Groups[j] = append([]Card(nil), grp...)
		}
	}
	out.Log = g.Log.clone()
	return out
}

// ---------------------------------------------------------------------------
// Query accessors (read-only views for the AI and presentation layers)
// ---------------------------------------------------------------------------

// CurrentHand returns the current player's hand.
func (g GameState) CurrentHand() []Card {
	return g.Players[g.CurrentPlayer].Hand
}

// PileTop returns the top card of a player's capture pile.
func (g GameState) PileTop(player int) (Card, bool) {
	pile := g.Players[player].Pile
	if len(pile) == 0 {
		return Card{}, false
	}
	return pile[len(pile)-1], true
}

// OpponentPileTops returns the exposed top capture-pile card of every
// player other than the given one, keyed by player index.
func (g GameState) OpponentPileTops(player int) map[int]Card {
	tops := make(map[int]Card)
	for i := range g.Players {
		if i == player {
			continue
		}
		if top, ok := g.PileTop(i); ok {
			tops[i] = top
		}
	}
	return tops
}

// CapturedCounts returns the number of captured cards per player.
func (g GameState) CapturedCounts() []int {
	counts := make([]int, len(g.Players))
	for i, p := range g.Players {
		counts[i] = len(p.Pile)
	}
	return counts
}

// BuildByID looks up an active build.
func (g GameState) BuildByID(id uuid.UUID) (Build, bool) {
	for _, b := range g.Builds {
		if b.ID == id {
			return b, true
		}
	}
	return Build{}, false
}

// buildOwnedBy returns the index into Builds of the build owned by the
// player, or -1. At most one build per (owner, value) exists, and a
// player resolves an owned build before starting another, so a single
// owned build is the normal case.
func (g GameState) buildOwnedBy(player int) int {
	for i, b := range g.Builds {
		if b.Owner == player {
			return i
		}
	}
	return -1
}

// ownedBuildAt returns the index of the player's build of the given
// value, or -1.
func (g GameState) ownedBuildAt(player, value int) int {
	for i, b := range g.Builds {
		if b.Owner == player && b.Value == value {
			return i
		}
	}
	return -1
}

// handsEmpty reports whether every hand has been played out.
func (g GameState) handsEmpty() bool {
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// Check verifies the conservation invariant: hands, capture piles,
// table, builds and the draw pile together hold the full deck with no
// duplicate IDs. Engine operations preserve this; it is exposed for
// tests and callers that persist state externally.
func (g GameState) Check() error {
	seen := make(map[uuid.UUID]bool, DeckSize)
	count := 0
	add := func(cards []Card) error {
		for _, c := range cards {
			if seen[c.ID] {
				return fmt.Errorf("engine: duplicate card %s (%s)", c, c.ID)
			}
			seen[c.ID] = true
			count++
		}
		return nil
	}
	for _, p := range g.Players {
		if err := add(p.Hand); err != nil {
			return err
		}
		if err := add(p.Pile); err != nil {
			return err
		}
	}
	if err := add(g.Table); err != nil {
		return err
	}
	for _, b := range g.Builds {
		if err := add(b.Cards()); err != nil {
			return err
		}
	}
	if err := add(g.Stock); err != nil {
		return err
	}
	if count != DeckSize {
		return fmt.Errorf("engine: %d cards accounted for, want %d", count, DeckSize)
	}
	if g.CurrentPlayer >= len(g.Players) {
		return fmt.Errorf("engine: current player %d out of range", g.CurrentPlayer)
	}
	return nil
}
