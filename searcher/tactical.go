package searcher

import (
	"time"

	"gungi/game"
)

const (
	tacticalGoroutines = 4
	tacticalCutoff     = 30 // Rollout depth before falling back to evaluation
	tacticalMinBudget  = 100 * time.Millisecond
	tacticalMaxBudget  = 2 * time.Second
)

// tacticalStrategy spends real computation: a time-bounded parallel UCT
// search over a snapshot of the state, with the budget scaled by the
// agent's skill. The hard ceiling keeps the response inside the caller's
// latency SLA.
type tacticalStrategy struct{}

func (tacticalStrategy) Name() string { return "tactical" }

func (tacticalStrategy) SelectMove(profile *AgentProfile, gs *game.GameState) (*game.MoveDescriptor, error) {
	legal := legalDescriptors(gs)
	if len(legal) == 0 {
		return nil, game.ErrNoLegalMoves
	}
	if len(legal) == 1 {
		return legal[0], nil
	}

	uct := NewUCT(
		WithGoroutines(tacticalGoroutines),
		WithDuration(tacticalBudget(profile)),
		WithCutoff(tacticalCutoff),
		WithEvaluation(game.EvaluateMaterialAdvance),
	)

	// Search on a copy: rollouts must never touch the caller's snapshot
	move := uct.FindNextMove(gs.Copy())
	descriptor, ok := move.(*game.MoveDescriptor)
	if !ok {
		panic("unexpected move type")
	}
	return descriptor, nil
}

// tacticalBudget maps skill 1000..3000 to half a millisecond per point,
// clamped to the allowed window.
func tacticalBudget(profile *AgentProfile) time.Duration {
	budget := time.Duration(profile.ClampedSkill()) * time.Millisecond / 2
	if budget < tacticalMinBudget {
		return tacticalMinBudget
	}
	if budget > tacticalMaxBudget {
		return tacticalMaxBudget
	}
	return budget
}
