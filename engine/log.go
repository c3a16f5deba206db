package engine

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ActionType names an executed move in the action log.
type ActionType string

const (
	ActionDeal          ActionType = "deal"
	ActionCapture       ActionType = "capture"
	ActionDrift         ActionType = "drift"
	ActionBuildCreate   ActionType = "buildCreate"
	ActionBuildAugment  ActionType = "buildAugment"
	ActionStealAndBuild ActionType = "stealAndBuild"
	ActionBuildIncrease ActionType = "buildIncrease"
	ActionSecondDeal    ActionType = "secondDeal"
	ActionSweep         ActionType = "sweep"
	ActionScore         ActionType = "score"
)

// ActionRecord is one executed move, kept for display and replay.
type ActionRecord struct {
	Index  int // monotonically increasing across the hand
	Type   ActionType
	Player int // acting player index, -1 for game events
	Detail string
}

// ActionLog is a bounded append-only record of executed moves. Once
// Cap entries are held, appending drops the oldest entry; Index keeps
// counting so truncation is observable.
type ActionLog struct {
	Cap     int
	Entries []ActionRecord
}

func (l ActionLog) clone() ActionLog {
	out := l
	out.Entries = append([]ActionRecord(nil), l.Entries...)
	return out
}

// append adds a record, enforcing the retention cap. The receiver is
// expected to be an already-cloned log owned by the caller.
func (l *ActionLog) append(t ActionType, player int, detail string) {
	next := 0
	if n := len(l.Entries); n > 0 {
		next = l.Entries[n-1].Index + 1
	}
	l.Entries = append(l.Entries, ActionRecord{Index: next, Type: t, Player: player, Detail: detail})
	if l.Cap > 0 && len(l.Entries) > l.Cap {
		l.Entries = l.Entries[len(l.Entries)-l.Cap:]
	}

	logger.WithFields(logrus.Fields{
		"action": t,
		"player": player,
		"index":  next,
	}).Debug(detail)
}

// ---------------------------------------------------------------------------
// Package trace logger
// ---------------------------------------------------------------------------

var logger logrus.FieldLogger = newDefaultLogger()

// newDefaultLogger builds a logger that stays silent unless a caller
// raises the level: move tracing is emitted at Debug.
func newDefaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger installs a logger for engine move tracing. Executed moves
// and rejections are logged at Debug level with structured fields.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		logger = l
	}
}

// reject traces a refused move and hands the error back unchanged.
func (g GameState) reject(op string, err error) error {
	logger.WithFields(logrus.Fields{
		"op":     op,
		"player": g.CurrentPlayer,
		"phase":  g.Phase.String(),
	}).WithError(err).Debug("move rejected")
	return err
}
