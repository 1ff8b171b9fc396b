package game

// Validate checks a candidate move against the full rule set. Checks run in
// a fixed order and short-circuit on the first failure; the snapshot is
// never mutated, so validating the same move twice yields the same result.
func Validate(reg *Registry, board *BoardState, move *MoveDescriptor, currentPlayer int) error {
	// 1. Turn ownership
	if move.Player != currentPlayer {
		return ErrNotYourTurn
	}

	// 2. Bounds
	if !InBounds(move.From.X, move.From.Y) || !InBounds(move.To.X, move.To.Y) {
		return ErrInvalidPosition
	}
	if !ValidLevel(move.From.Level) || !ValidLevel(move.To.Level) {
		return ErrInvalidLevel
	}

	// 3. Mover existence and ownership
	piece := reg.Piece(move.Entity)
	if piece == nil || piece.Type != move.PieceType {
		return ErrPieceNotFound
	}
	if piece.Captured {
		return ErrPieceAlreadyCaptured
	}
	if piece.Owner != currentPlayer {
		return ErrNotYourPiece
	}

	// 4. Position consistency
	pos := reg.Position(move.Entity)
	if pos == nil || !pos.IsActive {
		return ErrPieceNotFound
	}
	if pos.X != move.From.X || pos.Y != move.From.Y || pos.Level != move.From.Level {
		return ErrPositionMismatch
	}

	// 5. Piece-type movement pattern, then path blocking for sliders
	if err := checkMovementPattern(piece.Type, piece.Owner, move.From, move.To); err != nil {
		return err
	}
	if rule := movementRules[piece.Type]; rule.pathChecked {
		if pathBlocked(board, move.From, move.To) {
			return rule.err
		}
	}

	// 6. Destination occupancy and capture tagging
	if err := checkDestination(reg, board, move, currentPlayer); err != nil {
		return err
	}

	// 7. Stacking rule
	if move.StackOperation != StackNone {
		if err := checkStackOperation(board, move); err != nil {
			return err
		}
	}

	return nil
}

// checkDestination enforces capture semantics at the target cell. Moving
// onto one's own stack is only legal as an explicit stack placement, and a
// capture must name exactly the piece on top of the destination: anything
// else would let the applicator remove an uninvolved entity.
func checkDestination(reg *Registry, board *BoardState, move *MoveDescriptor, currentPlayer int) error {
	occupant := board.TopAt(move.To.X, move.To.Y)
	if occupant == NoEntity {
		if move.MoveType == CaptureMove {
			return ErrCaptureTargetMismatch
		}
		return nil
	}

	occupantPiece := reg.Piece(occupant)
	if occupantPiece.Owner == currentPlayer {
		if move.MoveType == CaptureMove {
			return ErrCannotCaptureOwnPiece
		}
		if move.StackOperation == PlaceOnTop || move.StackOperation == PlaceInMiddle {
			return nil
		}
		return ErrCannotCaptureOwnPiece
	}
	if move.MoveType != CaptureMove {
		return ErrMustBeCaptureMove
	}
	if move.CaptureEntity != occupant {
		return ErrCaptureTargetMismatch
	}
	return nil
}

func checkStackOperation(board *BoardState, move *MoveDescriptor) error {
	switch move.StackOperation {
	case PlaceOnTop:
		if len(board.StackAt(move.To.X, move.To.Y)) >= MaxStack {
			return ErrStackTooHigh
		}
	case PlaceInMiddle:
		if !board.Occupied(move.To.X, move.To.Y) {
			return ErrCannotPlaceInMiddleWithoutBottom
		}
		if len(board.StackAt(move.To.X, move.To.Y)) >= MaxStack {
			return ErrStackTooHigh
		}
	case RemoveFromStack:
		if move.From.Level != MaxStack-1 {
			return ErrCanOnlyRemoveFromTop
		}
	}
	return nil
}
