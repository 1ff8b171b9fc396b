package game

import "time"

// Apply commits a validated move to the snapshot. It assumes the move
// already passed Validate and never re-checks it: a violated precondition
// here is a caller bug, not a runtime condition. Only the mover, the
// captured entity (if any) and the board bookkeeping are touched. The turn
// itself is advanced separately via BoardState.AdvanceTurn.
func Apply(reg *Registry, board *BoardState, move *MoveDescriptor, now time.Time) {
	if move.CaptureEntity != NoEntity && move.MoveType == CaptureMove {
		capture(reg, board, move.CaptureEntity, now)
	}

	pos := reg.Position(move.Entity)
	piece := reg.Piece(move.Entity)

	board.remove(move.Entity, pos.X, pos.Y)

	level := placementLevel(board, move)
	pos.X = move.To.X
	pos.Y = move.To.Y
	pos.Level = level
	pos.LastUpdated = now

	piece.HasMoved = true
	piece.LastMoveTurn++
	piece.StackLevel = level

	if move.StackOperation == PlaceInMiddle {
		board.placeBelow(move.Entity, move.To.X, move.To.Y)
	} else {
		board.place(move.Entity, move.To.X, move.To.Y)
	}
}

// placementLevel synchronizes the mover's stack level with the requested
// stack operation. PlaceOnTop lands on the current height of the target
// stack, so a piece on a two-high stack sits at level 2 but on a lone piece
// at level 1; the levels in use at a cell stay gap-free.
func placementLevel(board *BoardState, move *MoveDescriptor) int {
	switch move.StackOperation {
	case PlaceOnTop:
		return len(board.StackAt(move.To.X, move.To.Y))
	case PlaceInMiddle:
		return 1
	case RemoveFromStack:
		return 0
	default:
		return move.To.Level
	}
}

func capture(reg *Registry, board *BoardState, id EntityID, now time.Time) {
	capturedPiece := reg.Piece(id)
	capturedPos := reg.Position(id)

	board.remove(id, capturedPos.X, capturedPos.Y)
	board.Captured = append(board.Captured, id)

	capturedPiece.Captured = true
	capturedPos.IsActive = false
	capturedPos.LastUpdated = now
}
