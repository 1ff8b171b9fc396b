package searcher

import "gungi/game"

// aggressiveStrategy takes the first capture on offer, otherwise the first
// legal move. Single pass over the candidates, no search.
type aggressiveStrategy struct{}

func (aggressiveStrategy) Name() string { return "aggressive" }

func (aggressiveStrategy) SelectMove(_ *AgentProfile, gs *game.GameState) (*game.MoveDescriptor, error) {
	legal := legalDescriptors(gs)
	if len(legal) == 0 {
		return nil, game.ErrNoLegalMoves
	}
	for _, move := range legal {
		if move.MoveType == game.CaptureMove {
			return move, nil
		}
	}
	return legal[0], nil
}

// defensiveStrategy prefers moves that stay out of the opponent's half of
// the board, otherwise the first legal move.
type defensiveStrategy struct{}

func (defensiveStrategy) Name() string { return "defensive" }

func (defensiveStrategy) SelectMove(_ *AgentProfile, gs *game.GameState) (*game.MoveDescriptor, error) {
	legal := legalDescriptors(gs)
	if len(legal) == 0 {
		return nil, game.ErrNoLegalMoves
	}
	for _, move := range legal {
		if !inOpponentHalf(move.Player, move.To) {
			return move, nil
		}
	}
	return legal[0], nil
}

// inOpponentHalf reports whether a destination lies past the middle row
// from the player's perspective.
func inOpponentHalf(player int, to game.Coord) bool {
	middle := game.BoardSize / 2
	if player == 1 {
		return to.Y < middle
	}
	return to.Y > middle
}

// balancedStrategy is the deliberate baseline: the first legal candidate.
// The legality filter is its sanity check.
type balancedStrategy struct{}

func (balancedStrategy) Name() string { return "balanced" }

func (balancedStrategy) SelectMove(_ *AgentProfile, gs *game.GameState) (*game.MoveDescriptor, error) {
	legal := legalDescriptors(gs)
	if len(legal) == 0 {
		return nil, game.ErrNoLegalMoves
	}
	return legal[0], nil
}

// blitzStrategy returns the first legal candidate without enumerating the
// rest of the move set.
type blitzStrategy struct{}

func (blitzStrategy) Name() string { return "blitz" }

func (blitzStrategy) SelectMove(_ *AgentProfile, gs *game.GameState) (*game.MoveDescriptor, error) {
	player := gs.Board.CurrentPlayer
	first := game.GenerateFirstMove(gs.Reg, gs.Board, player)
	if first != nil && game.Validate(gs.Reg, gs.Board, first, player) == nil {
		return first, nil
	}

	// Rare fallback: the shortcut candidate failed validation
	legal := legalDescriptors(gs)
	if len(legal) == 0 {
		return nil, game.ErrNoLegalMoves
	}
	return legal[0], nil
}
