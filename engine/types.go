// Package engine implements the South African Casino rules engine.
//
// The engine is a pure state-transition library: every operation takes
// a GameState snapshot and returns a new snapshot, leaving the input
// untouched. Illegal moves return the input state together with a
// typed rejection error. The engine performs no I/O beyond optional
// debug tracing via SetLogger.
package engine

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Suit identifies one of the four French suits. The 40-card Casino
// deck has no picture cards, so suit only matters for scoring flags.
type Suit uint8

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitDiamonds
	SuitClubs
)

func (s Suit) String() string {
	switch s {
	case SuitSpades:
		return "♠"
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	case SuitClubs:
		return "♣"
	}
	return "?"
}

// Card is an immutable value object. Identity is by ID, never by
// position; all removal and membership checks in the engine are
// ID-keyed so a card's identity round-trips any representation.
type Card struct {
	ID   uuid.UUID
	Rank int // 1–10, ace = 1
	Suit Suit
}

// Value returns the capture value used for matching. Ace counts 1.
func (c Card) Value() int { return c.Rank }

// IsAce reports whether the card scores an ace point.
func (c Card) IsAce() bool { return c.Rank == 1 }

// IsSpade reports whether the card counts toward the spades threshold.
func (c Card) IsSpade() bool { return c.Suit == SuitSpades }

// IsSpyTwo reports whether the card is the two of spades.
func (c Card) IsSpyTwo() bool { return c.Rank == 2 && c.Suit == SuitSpades }

// IsBigTen reports whether the card is the ten of diamonds.
func (c Card) IsBigTen() bool { return c.Rank == 10 && c.Suit == SuitDiamonds }

func (c Card) String() string {
	r := strconv.Itoa(c.Rank)
	if c.Rank == 1 {
		r = "A"
	}
	return fmt.Sprintf("%s%s", r, c.Suit)
}
