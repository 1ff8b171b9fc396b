package game

// movementRule captures one piece type's movement pattern. dx and dy are
// absolute deltas; forward is the signed y delta from the owner's
// perspective (positive means toward the opponent).
type movementRule struct {
	pattern     func(dx, dy, forward int) bool
	pathChecked bool // Blocked by the first occupied cell between from and to
	err         error
}

// movementRules is the full per-piece rule table. Keeping it in one place
// makes the rule set auditable against the game's movement charts.
//
// Catapult, Spy, Samurai and Captain fall back to "any non-zero delta",
// matching the rule subset this engine reproduces. TODO: replace the
// fallback with the real movement charts for these four types.
var movementRules = map[PieceType]movementRule{
	Marshal: {
		pattern: func(dx, dy, _ int) bool { return dx <= 1 && dy <= 1 },
		err:     ErrInvalidMarshalMove,
	},
	General: {
		pattern:     func(dx, dy, _ int) bool { return dx == 0 || dy == 0 || dx == dy },
		pathChecked: true,
		err:         ErrInvalidGeneralMove,
	},
	Lieutenant: {
		pattern:     func(dx, dy, _ int) bool { return dx == 0 || dy == 0 },
		pathChecked: true,
		err:         ErrInvalidLieutenantMove,
	},
	Major: {
		pattern:     func(dx, dy, _ int) bool { return dx == dy && dx > 0 },
		pathChecked: true,
		err:         ErrInvalidMajorMove,
	},
	Minor: {
		pattern: func(dx, dy, _ int) bool { return (dx == 2 && dy == 1) || (dx == 1 && dy == 2) },
		err:     ErrInvalidMinorMove,
	},
	Shinobi: {
		pattern: func(dx, _, forward int) bool { return dx <= 1 && forward == 1 },
		err:     ErrInvalidShinobiMove,
	},
	Bow: {
		// Same lines as the Lieutenant, but a Bow may jump over occupied
		// intermediate cells, so its path is never checked.
		pattern: func(dx, dy, _ int) bool { return dx == 0 || dy == 0 },
		err:     ErrInvalidBowMove,
	},
	Lance: {
		pattern:     func(dx, _, forward int) bool { return dx == 0 && forward > 0 },
		pathChecked: true,
		err:         ErrInvalidLanceMove,
	},
	Catapult: {
		pattern: anyNonZeroDelta,
		err:     ErrInvalidCatapultMove,
	},
	Spy: {
		pattern: anyNonZeroDelta,
		err:     ErrInvalidSpyMove,
	},
	Samurai: {
		pattern: anyNonZeroDelta,
		err:     ErrInvalidSamuraiMove,
	},
	Captain: {
		pattern: anyNonZeroDelta,
		err:     ErrInvalidCaptainMove,
	},
}

func anyNonZeroDelta(dx, dy, _ int) bool {
	return dx+dy > 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// checkMovementPattern applies the rule table to a move's geometry. The
// Fortress has no table entry: it can never move.
func checkMovementPattern(pt PieceType, owner int, from, to Coord) error {
	if pt == Fortress {
		return ErrFortressCannotMove
	}

	dx := abs(to.X - from.X)
	dy := abs(to.Y - from.Y)
	if dx == 0 && dy == 0 {
		return ErrNoSelfMove
	}

	rule, ok := movementRules[pt]
	if !ok {
		return ErrPieceNotFound
	}
	forward := (to.Y - from.Y) * forwardSign(owner)
	if !rule.pattern(dx, dy, forward) {
		return rule.err
	}
	return nil
}

// pathBlocked scans the cells strictly between from and to along the
// movement line. Only straight and diagonal lines have intermediate cells.
func pathBlocked(board *BoardState, from, to Coord) bool {
	stepX := sign(to.X - from.X)
	stepY := sign(to.Y - from.Y)

	x, y := from.X+stepX, from.Y+stepY
	for InBounds(x, y) && (x != to.X || y != to.Y) {
		if board.Occupied(x, y) {
			return true
		}
		x += stepX
		y += stepY
	}
	return false
}
