package engine

import (
	"fmt"
	"strings"

	"github.com/MeetRandy/kasino-core/engine/search"
)

// CaptureOption is one legal way to capture with a hand card. Singles
// (loose cards matching the played value) and builds of that value are
// always captured in full; Combinations is one maximal non-overlapping
// set of multi-card groups summing to the played value.
type CaptureOption struct {
	Singles      []Card
	Builds       []Build
	Combinations [][]Card
}

// Cards returns every captured card flattened: singles, then build
// groups in order, then combination groups. The played hand card is
// not included.
func (o CaptureOption) Cards() []Card {
	var out []Card
	out = append(out, o.Singles...)
	for _, b := range o.Builds {
		out = append(out, b.Cards()...)
	}
	for _, combo := range o.Combinations {
		out = append(out, combo...)
	}
	return out
}

// Count returns the number of cards the option captures.
func (o CaptureOption) Count() int { return len(o.Cards()) }

func (o CaptureOption) String() string {
	var parts []string
	if len(o.Singles) > 0 {
		parts = append(parts, describeCards(o.Singles))
	}
	for _, b := range o.Builds {
		parts = append(parts, b.String())
	}
	for _, combo := range o.Combinations {
		parts = append(parts, fmt.Sprintf("{%s}", describeCards(combo)))
	}
	return fmt.Sprintf("capture %s (%d cards)", strings.Join(parts, " + "), o.Count())
}

// FindCaptures enumerates every legal capture for the given hand card.
// An empty result means the card captures nothing. When overlapping
// multi-card combinations exist, only maximal non-overlapping
// combination sets are offered, each option additionally carrying all
// matching singles and builds.
func (g GameState) FindCaptures(handCard Card) []CaptureOption {
	v := handCard.Value()

	var singles, rest []Card
	for _, c := range g.Table {
		if c.Value() == v {
			singles = append(singles, c)
		} else {
			rest = append(rest, c)
		}
	}
	var builds []Build
	for _, b := range g.Builds {
		if b.Value == v {
			builds = append(builds, b)
		}
	}

	combos := search.Combinations(cardValues(rest), v)
	if len(combos) == 0 {
		if len(singles) == 0 && len(builds) == 0 {
			return nil
		}
		return []CaptureOption{{Singles: singles, Builds: builds}}
	}

	var options []CaptureOption
	for _, sel := range search.MaximalDisjoint(combos) {
		opt := CaptureOption{Singles: singles, Builds: builds}
		for _, comboIdx := range sel {
			group := make([]Card, 0, len(combos[comboIdx]))
			for _, cardIdx := range combos[comboIdx] {
				group = append(group, rest[cardIdx])
			}
			opt.Combinations = append(opt.Combinations, group)
		}
		options = append(options, opt)
	}
	return options
}

// ExecuteCapture applies an option obtained from FindCaptures against
// this same snapshot. Captured cards are deposited on the mover's
// capture pile in option order with the played card on top, and the
// mover becomes the last capturer.
func (g GameState) ExecuteCapture(handCard Card, opt CaptureOption) (GameState, error) {
	if g.Phase != PhasePlaying && g.Phase != PhasePlayingSecond {
		return g, g.reject("capture", ErrWrongPhase)
	}
	if !containsCard(g.CurrentHand(), handCard.ID) {
		return g, g.reject("capture", ErrCardNotInHand)
	}

	out := g.clone()
	me := &out.Players[out.CurrentPlayer]

	// Loose table cards: singles and combination members.
	loose := append(append([]Card(nil), opt.Singles...), flatten(opt.Combinations)...)
	table, ok := removeCards(out.Table, loose)
	if !ok {
		return g, g.reject("capture", ErrCardNotOnTable)
	}
	out.Table = table

	// Captured builds leave the table whole.
	for _, b := range opt.Builds {
		idx := -1
		for i := range out.Builds {
			if out.Builds[i].ID == b.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return g, g.reject("capture", ErrNoSuchBuild)
		}
		out.Builds = append(out.Builds[:idx], out.Builds[idx+1:]...)
	}

	me.Hand, _ = removeCard(me.Hand, handCard.ID)
	me.Pile = append(me.Pile, opt.Cards()...)
	me.Pile = append(me.Pile, handCard)

	out.LastCapturer = out.CurrentPlayer
	out.Log.append(ActionCapture, out.CurrentPlayer,
		fmt.Sprintf("%s played %s: %s", me.Name, handCard, opt))
	return out, nil
}

func flatten(groups [][]Card) []Card {
	var out []Card
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
