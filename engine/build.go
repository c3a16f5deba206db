package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/MeetRandy/kasino-core/engine/search"
)

// CreateBuild starts or extends a build owned by the current player.
// The contributing cards (selected table cards, the optional played
// hand card, and any stolen opponent pile tops) are partitioned into
// the fewest groups each summing exactly to declaredValue. Any loose
// table card of exactly that value is absorbed as its own singleton
// group. If the player already owns a build of the same value the new
// groups merge into it; otherwise a new build with a content-derived
// ID is created.
func (g GameState) CreateBuild(handCard *Card, tableCards []Card, declaredValue int, stolen []Card) (GameState, error) {
	if g.Phase != PhasePlaying && g.Phase != PhasePlayingSecond {
		return g, g.reject("buildCreate", ErrWrongPhase)
	}
	if len(stolen) > 0 && handCard == nil {
		return g, g.reject("buildCreate", ErrStealRequiresHandCard)
	}
	me := g.CurrentPlayer
	if i := g.buildOwnedBy(me); i >= 0 && g.Builds[i].Value != declaredValue {
		return g, g.reject("buildCreate", ErrUnresolvedBuild)
	}

	exclude := uuid.Nil
	if handCard != nil {
		if !containsCard(g.CurrentHand(), handCard.ID) {
			return g, g.reject("buildCreate", ErrCardNotInHand)
		}
		exclude = handCard.ID
	}
	if !holdsValue(g.CurrentHand(), declaredValue, exclude) {
		return g, g.reject("buildCreate", ErrNoCaptureCard)
	}
	for _, c := range tableCards {
		if !containsCard(g.Table, c.ID) {
			return g, g.reject("buildCreate", ErrCardNotOnTable)
		}
	}

	contributing := append([]Card(nil), tableCards...)
	if handCard != nil {
		contributing = append(contributing, *handCard)
	}
	contributing = append(contributing, stolen...)

	idxGroups, ok := search.Partition(cardValues(contributing), declaredValue)
	if !ok {
		return g, g.reject("buildCreate", ErrNoExactPartition)
	}
	groups := make([][]Card, len(idxGroups))
	for i, idxs := range idxGroups {
		groups[i] = make([]Card, len(idxs))
		for j, idx := range idxs {
			groups[i][j] = contributing[idx]
		}
	}

	// A stray single matching the build value may not be left beside
	// the build: absorb each as its own group.
	var absorbed []Card
	for _, c := range g.Table {
		if c.Value() == declaredValue && !containsCard(tableCards, c.ID) {
			absorbed = append(absorbed, c)
			groups = append(groups, []Card{c})
		}
	}

	out := g.clone()
	if err := out.popStolen(stolen); err != nil {
		return g, g.reject("buildCreate", err)
	}
	table, ok := removeCards(out.Table, append(append([]Card(nil), tableCards...), absorbed...))
	if !ok {
		return g, g.reject("buildCreate", ErrCardNotOnTable)
	}
	out.Table = table
	if handCard != nil {
		out.Players[me].Hand, _ = removeCard(out.Players[me].Hand, handCard.ID)
	}

	action := ActionBuildCreate
	if existing := out.ownedBuildAt(me, declaredValue); existing >= 0 {
		out.Builds[existing].Groups = append(out.Builds[existing].Groups, groups...)
		action = ActionBuildAugment
	} else {
		b := Build{Owner: me, Value: declaredValue, Groups: groups}
		b.ID = deriveBuildID(b.Cards())
		out.Builds = append(out.Builds, b)
	}
	if len(stolen) > 0 {
		action = ActionStealAndBuild
	}
	out.Log.append(action, me,
		fmt.Sprintf("%s builds %d (%d groups)", out.Players[me].Name, declaredValue, len(groups)))
	return out, nil
}

// AugmentBuild appends one exact-sum group to a build the current
// player owns. The group's cards must sum to the build's declared
// value, stealing again requires a simultaneous hand card, and after
// the play the player must still hold a card capturing the build.
func (g GameState) AugmentBuild(buildID uuid.UUID, tableCards []Card, handCard *Card, stolen []Card) (GameState, error) {
	if g.Phase != PhasePlaying && g.Phase != PhasePlayingSecond {
		return g, g.reject("buildAugment", ErrWrongPhase)
	}
	b, ok := g.BuildByID(buildID)
	if !ok {
		return g, g.reject("buildAugment", ErrNoSuchBuild)
	}
	me := g.CurrentPlayer
	if b.Owner != me {
		return g, g.reject("buildAugment", ErrNotYourBuild)
	}
	if len(stolen) > 0 && handCard == nil {
		return g, g.reject("buildAugment", ErrStealRequiresHandCard)
	}

	exclude := uuid.Nil
	if handCard != nil {
		if !containsCard(g.CurrentHand(), handCard.ID) {
			return g, g.reject("buildAugment", ErrCardNotInHand)
		}
		exclude = handCard.ID
	}
	if !holdsValue(g.CurrentHand(), b.Value, exclude) {
		return g, g.reject("buildAugment", ErrNoCaptureCard)
	}

	group := append([]Card(nil), tableCards...)
	if handCard != nil {
		group = append(group, *handCard)
	}
	group = append(group, stolen...)
	if len(group) == 0 || sumValues(group) != b.Value {
		return g, g.reject("buildAugment", ErrNoExactPartition)
	}

	out := g.clone()
	if err := out.popStolen(stolen); err != nil {
		return g, g.reject("buildAugment", err)
	}
	table, ok := removeCards(out.Table, tableCards)
	if !ok {
		return g, g.reject("buildAugment", ErrCardNotOnTable)
	}
	out.Table = table
	if handCard != nil {
		out.Players[me].Hand, _ = removeCard(out.Players[me].Hand, handCard.ID)
	}

	for i := range out.Builds {
		if out.Builds[i].ID == buildID {
			out.Builds[i].Groups = append(out.Builds[i].Groups, group)
			break
		}
	}

	action := ActionBuildAugment
	if len(stolen) > 0 {
		action = ActionStealAndBuild
	}
	out.Log.append(action, me,
		fmt.Sprintf("%s augments build of %d with {%s}", out.Players[me].Name, b.Value, describeCards(group)))
	return out, nil
}

// IncreaseBuild raises an opponent's single-group build by playing one
// hand card onto it, transferring ownership to the current player. The
// new value must not exceed 10 and the increaser must hold another
// card matching it. If the increaser already owns a build at the new
// value the two merge.
func (g GameState) IncreaseBuild(buildID uuid.UUID, handCard Card) (GameState, error) {
	if g.Phase != PhasePlaying && g.Phase != PhasePlayingSecond {
		return g, g.reject("buildIncrease", ErrWrongPhase)
	}
	b, ok := g.BuildByID(buildID)
	if !ok {
		return g, g.reject("buildIncrease", ErrNoSuchBuild)
	}
	me := g.CurrentPlayer
	if b.Owner == me {
		return g, g.reject("buildIncrease", ErrOwnBuild)
	}
	if b.Augmented() {
		return g, g.reject("buildIncrease", ErrBuildAugmented)
	}
	if !containsCard(g.CurrentHand(), handCard.ID) {
		return g, g.reject("buildIncrease", ErrCardNotInHand)
	}
	newValue := b.Value + handCard.Value()
	if newValue > 10 {
		return g, g.reject("buildIncrease", ErrValueTooHigh)
	}
	if !holdsValue(g.CurrentHand(), newValue, handCard.ID) {
		return g, g.reject("buildIncrease", ErrNoCaptureCard)
	}

	out := g.clone()
	out.Players[me].Hand, _ = removeCard(out.Players[me].Hand, handCard.ID)
	newGroup := append(append([]Card(nil), b.Groups[0]...), handCard)

	oldIdx := -1
	for i := range out.Builds {
		if out.Builds[i].ID == buildID {
			oldIdx = i
			break
		}
	}
	if surviving := out.ownedBuildAt(me, newValue); surviving >= 0 {
		out.Builds[surviving].Groups = append(out.Builds[surviving].Groups, newGroup)
		out.Builds = append(out.Builds[:oldIdx], out.Builds[oldIdx+1:]...)
	} else {
		out.Builds[oldIdx] = Build{ID: b.ID, Owner: me, Value: newValue, Groups: [][]Card{newGroup}}
	}

	out.Log.append(ActionBuildIncrease, me,
		fmt.Sprintf("%s increases build of %d to %d with %s", out.Players[me].Name, b.Value, newValue, handCard))
	return out, nil
}

// popStolen removes each stolen card from the top of the opponent pile
// exposing it. Mutates the receiver, which must be a cloned state.
func (g *GameState) popStolen(stolen []Card) error {
	for _, s := range stolen {
		found := false
		for i := range g.Players {
			if i == g.CurrentPlayer {
				continue
			}
			pile := g.Players[i].Pile
			if len(pile) > 0 && pile[len(pile)-1].ID == s.ID {
				g.Players[i].Pile = pile[:len(pile)-1]
				found = true
				break
			}
		}
		if !found {
			return ErrNotPileTop
		}
	}
	return nil
}
