package searcher

import (
	"math"

	"gungi/game"
)

// Hyperparameters for the Tactical search

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for a winning outcome
const Loss = 0.0  // Virtual/actual loss reward

// Node is one search-tree node. Gungi moves are deterministic, so the tree
// holds decision nodes only.
type Node interface {
	SelectOrExpand(state game.State) (child Node, childState game.State, selected bool)
	Backup(rewarder func(string) float64) Node
	Value() int
	applyLoss()
	score(player string, normalizer float64) float64
}

func rewarder(winner string) func(player string) float64 {
	return func(player string) float64 {
		if player == winner {
			return Win
		}
		return Loss
	}
}

// scorer turns a cutoff evaluation into a per-player reward. The score is
// from the evaluated player's perspective in [-1, 1]; map it into [0, 1]
// and mirror it for the opponent.
func scorer(player string, score float64) func(string) float64 {
	return func(p string) float64 {
		if p == player {
			return (score + 1) / 2
		}
		return (1 - score) / 2
	}
}

// ucb1 scores a child for selection. Rewards must already be expressed from
// the selecting player's perspective.
func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}
