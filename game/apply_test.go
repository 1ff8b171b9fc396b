package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplyNormalMove(t *testing.T) {
	reg, board := testBoard()
	id := addPiece(reg, board, Marshal, 1, 4, 4)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	move := moveFor(reg, id, 4, 5)
	require.NoError(t, Validate(reg, board, move, 1))

	Apply(reg, board, move, now)

	pos := reg.Position(id)
	require.Equal(t, 4, pos.X)
	require.Equal(t, 5, pos.Y)
	require.Equal(t, 0, pos.Level)
	require.Equal(t, now, pos.LastUpdated)

	pc := reg.Piece(id)
	require.True(t, pc.HasMoved)
	require.Equal(t, 1, pc.LastMoveTurn)
	require.Equal(t, 0, pc.StackLevel)

	require.Equal(t, NoEntity, board.TopAt(4, 4), "origin cell should be vacated")
	require.Equal(t, id, board.TopAt(4, 5), "destination cell should hold the mover")
}

func TestApplyCapture(t *testing.T) {
	reg, board := testBoard()
	attacker := addPiece(reg, board, Marshal, 1, 4, 4)
	defender := addPiece(reg, board, Shinobi, 2, 4, 5)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	move := moveFor(reg, attacker, 4, 5)
	move.MoveType = CaptureMove
	move.CaptureEntity = defender
	require.NoError(t, Validate(reg, board, move, 1))

	Apply(reg, board, move, now)

	require.True(t, reg.Piece(defender).Captured)
	require.False(t, reg.Position(defender).IsActive)
	require.Contains(t, board.Captured, defender)

	require.Equal(t, attacker, board.TopAt(4, 5))
	require.False(t, reg.Piece(attacker).Captured, "the attacker stays in play")
}

func TestApplyStackPlacements(t *testing.T) {
	t.Run("place on top of a lone piece", func(t *testing.T) {
		reg, board := testBoard()
		addPiece(reg, board, Shinobi, 1, 4, 4)
		mover := addPiece(reg, board, Captain, 1, 5, 5)

		move := moveFor(reg, mover, 4, 4)
		move.MoveType = StackMove
		move.StackOperation = PlaceOnTop
		require.NoError(t, Validate(reg, board, move, 1))

		Apply(reg, board, move, time.Time{})

		require.Equal(t, 1, reg.Piece(mover).StackLevel,
			"the top of a two-high stack is level 1, not the stack ceiling")
		require.Equal(t, 1, reg.Position(mover).Level)
		require.Equal(t, mover, board.TopAt(4, 4))
		require.Len(t, board.StackAt(4, 4), 2)
		assertStackInvariant(t, reg, board)
	})

	t.Run("place on top of a two-high stack", func(t *testing.T) {
		reg, board := testBoard()
		addPiece(reg, board, Shinobi, 1, 4, 4)
		addPiece(reg, board, Samurai, 1, 4, 4)
		mover := addPiece(reg, board, Captain, 1, 5, 5)

		move := moveFor(reg, mover, 4, 4)
		move.MoveType = StackMove
		move.StackOperation = PlaceOnTop
		require.NoError(t, Validate(reg, board, move, 1))

		Apply(reg, board, move, time.Time{})

		require.Equal(t, MaxStack-1, reg.Piece(mover).StackLevel)
		require.Equal(t, mover, board.TopAt(4, 4))
		require.Len(t, board.StackAt(4, 4), MaxStack)
		assertStackInvariant(t, reg, board)
	})

	t.Run("place in middle", func(t *testing.T) {
		reg, board := testBoard()
		bottom := addPiece(reg, board, Shinobi, 1, 4, 4)
		top := addPiece(reg, board, Samurai, 1, 4, 4)
		mover := addPiece(reg, board, Spy, 1, 5, 5)

		move := moveFor(reg, mover, 4, 4)
		move.MoveType = StackMove
		move.StackOperation = PlaceInMiddle
		require.NoError(t, Validate(reg, board, move, 1))

		Apply(reg, board, move, time.Time{})

		require.Equal(t, 1, reg.Piece(mover).StackLevel)
		require.Equal(t, []EntityID{bottom, mover, top}, board.StackAt(4, 4))
		assertStackInvariant(t, reg, board)
	})

	t.Run("remove from stack", func(t *testing.T) {
		reg, board := testBoard()
		addPiece(reg, board, Shinobi, 1, 4, 4)
		addPiece(reg, board, Samurai, 1, 4, 4)
		top := addPiece(reg, board, Spy, 1, 4, 4)

		move := moveFor(reg, top, 5, 5)
		move.MoveType = UnstackMove
		move.StackOperation = RemoveFromStack
		require.NoError(t, Validate(reg, board, move, 1))

		Apply(reg, board, move, time.Time{})

		require.Equal(t, 0, reg.Piece(top).StackLevel)
		require.Equal(t, top, board.TopAt(5, 5))
		require.Len(t, board.StackAt(4, 4), 2)
		assertStackInvariant(t, reg, board)
	})
}

// assertStackInvariant checks that at every cell the set of active levels
// is gap-free: never level 1 without level 0, never level 2 without level 1.
func assertStackInvariant(t *testing.T, reg *Registry, board *BoardState) {
	t.Helper()

	active := make(map[Cell]map[int]bool)
	reg.Each(func(_ EntityID, pc *Piece, pos *Position) {
		if pc.Captured || !pos.IsActive {
			return
		}
		cell := Cell{X: pos.X, Y: pos.Y}
		if active[cell] == nil {
			active[cell] = make(map[int]bool)
		}
		require.True(t, ValidLevel(pos.Level), "level out of range at %v", cell)
		active[cell][pos.Level] = true
	})

	for cell, levels := range active {
		require.LessOrEqual(t, len(board.StackAt(cell.X, cell.Y)), MaxStack,
			"cell %v exceeds the stack cap", cell)
		for level := MaxStack - 1; level > 0; level-- {
			if levels[level] {
				require.True(t, levels[level-1],
					"level %d active at %v while level %d is vacant", level, cell, level-1)
			}
		}
	}
}

func TestTurnAlternation(t *testing.T) {
	gs := NewStandardGame(time.Time{})

	state := State(gs)
	lastPlayer := gs.Board.CurrentPlayer
	for i := 0; i < 12; i++ {
		moves := state.LegalMoves()
		require.NotEmpty(t, moves, "standard formation should always offer moves early on")

		state = state.Play(moves[0])
		next := state.(*GameState)

		require.Equal(t, i+1, next.Board.MoveCount, "move count should increase by exactly 1")
		require.Equal(t, Opponent(lastPlayer), next.Board.CurrentPlayer, "players should strictly alternate")
		assertStackInvariant(t, next.Reg, next.Board)
		lastPlayer = next.Board.CurrentPlayer
	}
}
