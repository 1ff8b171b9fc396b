package searcher

import (
	"math"
	"sync"

	"gungi/game"
)

// decision is a search-tree node under tree parallelization with virtual
// loss: a goroutine descending through a node charges it a loss up front and
// reverses it during backup, discouraging other goroutines from piling onto
// the same line.
type decision struct {
	sync.RWMutex
	parent   Node
	player   string
	moves    []game.Move
	children []Node
	rewards  float64
	visits   int
}

func newDecision(parent Node, state game.State) *decision {
	return &decision{
		parent:   parent,
		player:   state.Player(),
		moves:    state.LegalMoves(),
		children: make([]Node, 0),
	}
}

// SelectOrExpand descends one level. The selected flag reports that an
// existing child was chosen and the walk should continue; expansion and
// terminal nodes end the walk.
func (d *decision) SelectOrExpand(state game.State) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.moves) > len(d.children) { // Expandable node: stop the descent here
		child, childState := d.addChild(state)
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node: descend through the best child
	ith := d.pickChild()
	child := d.children[ith]
	child.applyLoss()
	return child, state.Play(d.moves[ith]), true
}

func (d *decision) addChild(state game.State) (Node, game.State) {
	move := d.moves[len(d.children)]
	childState := state.Play(move)
	child := newDecision(d, childState)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) pickChild() int {
	if d.visits == 0 {
		panic("node has children but no visits")
	}

	normalizer := CSquared * math.Log(float64(d.visits))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(d.player, normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

// score values this node for its parent. Rewards are banked from this
// node's own player's perspective; flip them when the parent moves for the
// other side.
func (d *decision) score(player string, normalizer float64) float64 {
	d.RLock()
	defer d.RUnlock()

	rewards := d.rewards
	if d.player != player {
		rewards = float64(d.visits)*Win - rewards
	}
	return ucb1(rewards, d.visits, normalizer)
}

func (d *decision) Backup(rewarder func(string) float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += rewarder(d.player)
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) Value() int {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// findBestMove follows the robust-child rule: the most visited move wins.
func (d *decision) findBestMove() game.Move {
	if len(d.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxValue := d.children[0].Value()
	for i, child := range d.children[1:] {
		if v := child.Value(); v > maxValue {
			maxValue = v
			bestIndex = i + 1
		}
	}
	return d.moves[bestIndex]
}
