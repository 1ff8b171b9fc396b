package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateMovesBounds(t *testing.T) {
	reg, board := testBoard()
	addPiece(reg, board, Marshal, 1, 0, 0)
	addPiece(reg, board, Minor, 1, 8, 8)
	addPiece(reg, board, General, 1, 4, 4)

	for _, move := range GenerateMoves(reg, board, 1) {
		require.True(t, InBounds(move.To.X, move.To.Y), "candidate %v leaves the board", move)
	}
}

func TestGenerateMovesCaptureTagging(t *testing.T) {
	reg, board := testBoard()
	marshal := addPiece(reg, board, Marshal, 1, 4, 4)
	friend := addPiece(reg, board, Shinobi, 1, 4, 5)
	enemy := addPiece(reg, board, Shinobi, 2, 5, 4)

	moves := GenerateMoves(reg, board, 1)

	var sawCapture bool
	for _, move := range moves {
		if move.To.X == 4 && move.To.Y == 5 {
			require.NotEqual(t, marshal, move.Entity, "no candidate may land on a friendly piece")
		}
		if move.MoveType == CaptureMove {
			require.NotEqual(t, NoEntity, move.CaptureEntity, "capture candidates must name their target")
			require.NotEqual(t, friend, move.CaptureEntity)
		}
		if move.Entity == marshal && move.To.X == 5 && move.To.Y == 4 {
			sawCapture = true
			require.Equal(t, CaptureMove, move.MoveType)
			require.Equal(t, enemy, move.CaptureEntity)
		}
	}
	require.True(t, sawCapture, "the marshal should see the adjacent enemy")
}

func TestSliderBlocking(t *testing.T) {
	t.Run("lieutenant stops at a blocker", func(t *testing.T) {
		reg, board := testBoard()
		slider := addPiece(reg, board, Lieutenant, 1, 4, 4)
		addPiece(reg, board, Shinobi, 1, 4, 6)

		for _, move := range GenerateMoves(reg, board, 1) {
			if move.Entity != slider {
				continue
			}
			if move.To.X == 4 {
				require.Less(t, move.To.Y, 7, "the ray must stop before passing the blocker")
			}
		}
	})

	t.Run("bow jumps over a blocker", func(t *testing.T) {
		reg, board := testBoard()
		bow := addPiece(reg, board, Bow, 1, 4, 4)
		addPiece(reg, board, Shinobi, 1, 4, 6)

		var beyond bool
		for _, move := range GenerateMoves(reg, board, 1) {
			if move.Entity == bow && move.To.X == 4 && move.To.Y > 6 {
				beyond = true
			}
		}
		require.True(t, beyond, "the bow should reach cells past an occupied one")
	})
}

func TestGenerateMovesSkipsInactivePieces(t *testing.T) {
	reg, board := testBoard()
	id := addPiece(reg, board, Marshal, 1, 4, 4)
	addPiece(reg, board, Shinobi, 2, 0, 0)

	reg.Piece(id).Captured = true
	reg.Position(id).IsActive = false
	board.remove(id, 4, 4)

	require.Empty(t, GenerateMoves(reg, board, 1))
	require.NotEmpty(t, GenerateMoves(reg, board, 2))
}

func TestGenerateFirstMove(t *testing.T) {
	reg, board := testBoard()
	addPiece(reg, board, Marshal, 1, 4, 4)

	first := GenerateFirstMove(reg, board, 1)
	require.NotNil(t, first)
	require.NoError(t, Validate(reg, board, first, 1))

	full := GenerateMoves(reg, board, 1)
	require.Equal(t, full[0], first, "the shortcut must agree with the full enumeration")

	require.Nil(t, GenerateFirstMove(reg, board, 2), "a player with no pieces has no first move")
}
