package game

import (
	"encoding/binary"
	"hash/fnv"

	"gungi/utils"
)

// Cell addresses one square of the 9x9 board.
type Cell struct {
	X int
	Y int
}

// StateHash is a position fingerprint used by the searcher to detect
// stale snapshots.
type StateHash uint64

// BoardState holds the per-cell occupancy, the live stacks, the captured
// list and the turn bookkeeping for one session. The grid stores the
// top-of-stack entity per cell; Stacks keeps the full bottom-to-top order.
type BoardState struct {
	Grid          [BoardSize][BoardSize]EntityID
	Stacks        map[Cell][]EntityID
	Captured      []EntityID
	MoveCount     int
	CurrentPlayer int
	GamePhase     Phase
}

func NewBoardState() *BoardState {
	return &BoardState{
		Stacks:        make(map[Cell][]EntityID),
		CurrentPlayer: 1,
		GamePhase:     Opening,
	}
}

// StackAt returns the bottom-to-top stack at a cell. The returned slice is
// owned by the board and must not be mutated by callers.
func (b *BoardState) StackAt(x, y int) []EntityID {
	return b.Stacks[Cell{X: x, Y: y}]
}

// TopAt returns the top-of-stack entity at a cell, or NoEntity.
func (b *BoardState) TopAt(x, y int) EntityID {
	stack := b.Stacks[Cell{X: x, Y: y}]
	if len(stack) == 0 {
		return NoEntity
	}
	return stack[len(stack)-1]
}

// Occupied reports whether any active piece sits at a cell.
func (b *BoardState) Occupied(x, y int) bool {
	return len(b.Stacks[Cell{X: x, Y: y}]) > 0
}

// place appends an entity to a cell's stack and refreshes the grid.
func (b *BoardState) place(id EntityID, x, y int) {
	cell := Cell{X: x, Y: y}
	b.Stacks[cell] = append(b.Stacks[cell], id)
	b.Grid[x][y] = b.TopAt(x, y)
}

// placeBelow inserts an entity one slot above the bottom of a cell's stack.
func (b *BoardState) placeBelow(id EntityID, x, y int) {
	cell := Cell{X: x, Y: y}
	stack := b.Stacks[cell]
	if len(stack) == 0 {
		b.place(id, x, y)
		return
	}
	stack = append(stack[:1], append([]EntityID{id}, stack[1:]...)...)
	b.Stacks[cell] = stack
	b.Grid[x][y] = b.TopAt(x, y)
}

// remove deletes an entity from a cell's stack and refreshes the grid.
func (b *BoardState) remove(id EntityID, x, y int) {
	cell := Cell{X: x, Y: y}
	stack := b.Stacks[cell]
	i := utils.FindIndex(stack, id)
	if i < 0 {
		return
	}
	stack = append(stack[:i], stack[i+1:]...)
	if len(stack) == 0 {
		delete(b.Stacks, cell)
	} else {
		b.Stacks[cell] = stack
	}
	b.Grid[x][y] = b.TopAt(x, y)
}

// AdvanceTurn flips the current player and counts the accepted move. The
// game phase is recomputed from the move count and remaining material.
func (b *BoardState) AdvanceTurn(reg *Registry) {
	b.MoveCount++
	b.CurrentPlayer = Opponent(b.CurrentPlayer)
	b.GamePhase = b.computePhase(reg)
}

const (
	openingMoves     = 20 // Moves before the opening is considered over
	endgameThreshold = 6  // Active pieces below which a side is in the endgame
)

func (b *BoardState) computePhase(reg *Registry) Phase {
	counts := map[int]int{}
	reg.Each(func(_ EntityID, pc *Piece, _ *Position) {
		if !pc.Captured {
			counts[pc.Owner]++
		}
	})
	if counts[1] < endgameThreshold || counts[2] < endgameThreshold {
		return Endgame
	}
	if b.MoveCount < openingMoves {
		return Opening
	}
	return Midgame
}

// Copy deep-copies the board state.
func (b *BoardState) Copy() *BoardState {
	stacksCopy := make(map[Cell][]EntityID, len(b.Stacks))
	for cell, stack := range b.Stacks {
		stackCopy := make([]EntityID, len(stack))
		copy(stackCopy, stack)
		stacksCopy[cell] = stackCopy
	}
	capturedCopy := make([]EntityID, len(b.Captured))
	copy(capturedCopy, b.Captured)

	return &BoardState{
		Grid:          b.Grid,
		Stacks:        stacksCopy,
		Captured:      capturedCopy,
		MoveCount:     b.MoveCount,
		CurrentPlayer: b.CurrentPlayer,
		GamePhase:     b.GamePhase,
	}
}

// Hash fingerprints the board plus every active piece position.
func (b *BoardState) Hash(reg *Registry) StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(b.MoveCount))
	binary.Write(hasher, binary.LittleEndian, int64(b.GamePhase))

	reg.Each(func(id EntityID, pc *Piece, pos *Position) {
		binary.Write(hasher, binary.LittleEndian, int64(id))
		binary.Write(hasher, binary.LittleEndian, int64(pc.Type))
		binary.Write(hasher, binary.LittleEndian, int64(pc.Owner))
		if pc.Captured {
			binary.Write(hasher, binary.LittleEndian, int64(-1))
			return
		}
		binary.Write(hasher, binary.LittleEndian, int64(pos.X))
		binary.Write(hasher, binary.LittleEndian, int64(pos.Y))
		binary.Write(hasher, binary.LittleEndian, int64(pos.Level))
	})

	return StateHash(hasher.Sum64())
}
