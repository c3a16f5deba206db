package engine

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// DeckSize is the number of cards in a Casino deck: ranks 1–10 in four
// suits, no picture cards.
const DeckSize = 40

// NewDeck builds an unshuffled 40-card deck. Each card is minted with
// a fresh unique ID.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for suit := SuitSpades; suit <= SuitClubs; suit++ {
		for rank := 1; rank <= 10; rank++ {
			deck = append(deck, Card{ID: uuid.New(), Rank: rank, Suit: suit})
		}
	}
	return deck
}

// shuffle performs a Fisher-Yates shuffle in place.
func shuffle(cards []Card, r *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// ---------------------------------------------------------------------------
// ID-keyed card set helpers
// ---------------------------------------------------------------------------

func indexOfCard(cards []Card, id uuid.UUID) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func containsCard(cards []Card, id uuid.UUID) bool {
	return indexOfCard(cards, id) >= 0
}

// removeCard returns cards without the card carrying id. The input
// slice is never modified.
func removeCard(cards []Card, id uuid.UUID) ([]Card, bool) {
	i := indexOfCard(cards, id)
	if i < 0 {
		return cards, false
	}
	out := make([]Card, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	out = append(out, cards[i+1:]...)
	return out, true
}

// removeCards removes every listed card, failing if any is absent.
func removeCards(cards []Card, remove []Card) ([]Card, bool) {
	out := cards
	for _, c := range remove {
		var ok bool
		out, ok = removeCard(out, c.ID)
		if !ok {
			return cards, false
		}
	}
	return out, true
}

func sumValues(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}

func cardValues(cards []Card) []int {
	vals := make([]int, len(cards))
	for i, c := range cards {
		vals[i] = c.Value()
	}
	return vals
}

// holdsValue reports whether cards contain a card of the given capture
// value other than the excluded card.
func holdsValue(cards []Card, value int, exclude uuid.UUID) bool {
	for _, c := range cards {
		if c.ID != exclude && c.Value() == value {
			return true
		}
	}
	return false
}

func describeCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
