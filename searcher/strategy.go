package searcher

import (
	"gungi/game"
	"gungi/utils"
)

// Strategy selects one move for an agent. Implementations must not mutate
// the state; the returned move is advisory and the caller re-validates it
// before committing.
type Strategy interface {
	Name() string
	SelectMove(profile *AgentProfile, gs *game.GameState) (*game.MoveDescriptor, error)
}

var strategies = map[Personality]Strategy{
	Aggressive: aggressiveStrategy{},
	Defensive:  defensiveStrategy{},
	Balanced:   balancedStrategy{},
	Tactical:   tacticalStrategy{},
	Blitz:      blitzStrategy{},
}

// StrategyFor returns the strategy backing a personality. Unknown
// personalities fall back to Balanced.
func StrategyFor(p Personality) Strategy {
	if s, ok := strategies[p]; ok {
		return s
	}
	return strategies[Balanced]
}

// CalculateMove computes the agent's move for the current player of gs.
// It fails with game.ErrNoLegalMoves when the player cannot move.
func CalculateMove(profile *AgentProfile, gs *game.GameState) (*game.MoveDescriptor, error) {
	return StrategyFor(profile.Personality).SelectMove(profile, gs)
}

// legalDescriptors generates all candidates for the current player and
// filters them through full validation.
func legalDescriptors(gs *game.GameState) []*game.MoveDescriptor {
	player := gs.Board.CurrentPlayer
	candidates := game.GenerateMoves(gs.Reg, gs.Board, player)
	return utils.Filter(candidates, func(candidate *game.MoveDescriptor) bool {
		return game.Validate(gs.Reg, gs.Board, candidate, player) == nil
	})
}
