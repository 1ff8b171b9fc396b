// Package engine wraps the pure game core with session bookkeeping: the
// per-turn state machine, a manager for concurrent independent sessions,
// and a local self-play driver used by the experiment harness.
package engine

import (
	"fmt"

	"gungi/experiments/metrics"
)

// MaxMoves stops a self-play game that never reaches a decisive result.
const MaxMoves = 500

// Engine drives a full game.
type Engine interface {
	// Run starts a game till there's a winner or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Status tracks where a session is inside one turn. Between Accepted
// (Applying) and TurnAdvanced no other caller may observe the session; the
// session mutex enforces that atomicity.
type Status int

const (
	WaitingForMove Status = iota
	Validating
	Applying
	TurnAdvanced
)

func (s Status) String() string {
	switch s {
	case WaitingForMove:
		return "WaitingForMove"
	case Validating:
		return "Validating"
	case Applying:
		return "Applying"
	case TurnAdvanced:
		return "TurnAdvanced"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// validTransitions is the session turn state machine: a rejection falls
// back to WaitingForMove from Validating, acceptance walks the full cycle.
var validTransitions = map[Status][]Status{
	WaitingForMove: {Validating},
	Validating:     {Applying, WaitingForMove},
	Applying:       {TurnAdvanced},
	TurnAdvanced:   {WaitingForMove},
}

func canTransition(from, to Status) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
