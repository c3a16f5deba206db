package engine

import "errors"

// Rejection errors. Every engine operation given a precondition it
// cannot satisfy returns its input state unchanged together with one
// of these, so callers can surface the reason instead of diffing
// snapshots.
var (
	ErrPlayerCount           = errors.New("engine: player count must be between 2 and 4")
	ErrWrongPhase            = errors.New("engine: operation not legal in this phase")
	ErrCardNotInHand         = errors.New("engine: card is not in the current player's hand")
	ErrCardNotOnTable        = errors.New("engine: card is not on the table")
	ErrStealRequiresHandCard = errors.New("engine: stealing requires playing a hand card at the same time")
	ErrNotPileTop            = errors.New("engine: stolen card is not on top of an opponent's capture pile")
	ErrUnresolvedBuild       = errors.New("engine: player already owns a build of a different value")
	ErrNoCaptureCard         = errors.New("engine: no card matching the build value remains in hand")
	ErrNoExactPartition      = errors.New("engine: cards cannot be grouped to the declared value")
	ErrNoSuchBuild           = errors.New("engine: build not found")
	ErrNotYourBuild          = errors.New("engine: build is owned by another player")
	ErrOwnBuild              = errors.New("engine: cannot increase your own build")
	ErrBuildAugmented        = errors.New("engine: cannot increase an augmented build")
	ErrValueTooHigh          = errors.New("engine: build value cannot exceed 10")
	ErrOwnsBuild             = errors.New("engine: cannot drift while owning a build")
)
