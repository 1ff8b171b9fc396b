package game

// Candidate generation for the decision system. Candidates carry either
// NormalMove or CaptureMove tags; stack placements are an explicit caller
// request and are not enumerated here.

var (
	kingOffsets = [][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	knightOffsets = [][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	orthogonalDirs = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonalDirs   = [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	allDirs        = [][2]int{
		{0, -1}, {0, 1}, {-1, 0}, {1, 0},
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	}
)

// GenerateMoves returns every movement candidate for one player, in
// deterministic entity-id order.
func GenerateMoves(reg *Registry, board *BoardState, player int) []*MoveDescriptor {
	var moves []*MoveDescriptor
	reg.Each(func(id EntityID, pc *Piece, pos *Position) {
		if pc.Captured || pc.Owner != player || !pos.IsActive {
			return
		}
		moves = append(moves, generatePieceMoves(reg, board, id, pc, pos)...)
	})
	return moves
}

// GenerateFirstMove returns the first movement candidate for one player, or
// nil if none exists. The Blitz strategy uses it to avoid enumerating the
// full candidate set.
func GenerateFirstMove(reg *Registry, board *BoardState, player int) *MoveDescriptor {
	var first *MoveDescriptor
	reg.Each(func(id EntityID, pc *Piece, pos *Position) {
		if first != nil || pc.Captured || pc.Owner != player || !pos.IsActive {
			return
		}
		if candidates := generatePieceMoves(reg, board, id, pc, pos); len(candidates) > 0 {
			first = candidates[0]
		}
	})
	return first
}

func generatePieceMoves(reg *Registry, board *BoardState, id EntityID, pc *Piece, pos *Position) []*MoveDescriptor {
	switch pc.Type {
	case Marshal:
		return stepMoves(reg, board, id, pc, pos, kingOffsets)
	case Minor:
		return stepMoves(reg, board, id, pc, pos, knightOffsets)
	case Shinobi:
		f := forwardSign(pc.Owner)
		return stepMoves(reg, board, id, pc, pos, [][2]int{{-1, f}, {0, f}, {1, f}})
	case General:
		return slideMoves(reg, board, id, pc, pos, allDirs, false)
	case Lieutenant:
		return slideMoves(reg, board, id, pc, pos, orthogonalDirs, false)
	case Bow:
		return slideMoves(reg, board, id, pc, pos, orthogonalDirs, true)
	case Major:
		return slideMoves(reg, board, id, pc, pos, diagonalDirs, false)
	case Lance:
		return slideMoves(reg, board, id, pc, pos, [][2]int{{0, forwardSign(pc.Owner)}}, false)
	case Fortress:
		return nil
	default:
		// Catapult, Spy, Samurai, Captain: any other cell on the board
		return floodMoves(reg, board, id, pc, pos)
	}
}

func stepMoves(reg *Registry, board *BoardState, id EntityID, pc *Piece, pos *Position, offsets [][2]int) []*MoveDescriptor {
	var moves []*MoveDescriptor
	for _, off := range offsets {
		x, y := pos.X+off[0], pos.Y+off[1]
		if !InBounds(x, y) {
			continue
		}
		if move := candidateAt(reg, board, id, pc, pos, x, y); move != nil {
			moves = append(moves, move)
		}
	}
	return moves
}

// slideMoves walks each ray until blocked. A jumping piece (the Bow) keeps
// walking past occupied cells but still cannot land on its own pieces.
func slideMoves(reg *Registry, board *BoardState, id EntityID, pc *Piece, pos *Position, dirs [][2]int, jumps bool) []*MoveDescriptor {
	var moves []*MoveDescriptor
	for _, dir := range dirs {
		for x, y := pos.X+dir[0], pos.Y+dir[1]; InBounds(x, y); x, y = x+dir[0], y+dir[1] {
			occupied := board.Occupied(x, y)
			if move := candidateAt(reg, board, id, pc, pos, x, y); move != nil {
				moves = append(moves, move)
			}
			if occupied && !jumps {
				break
			}
		}
	}
	return moves
}

func floodMoves(reg *Registry, board *BoardState, id EntityID, pc *Piece, pos *Position) []*MoveDescriptor {
	var moves []*MoveDescriptor
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if x == pos.X && y == pos.Y {
				continue
			}
			if move := candidateAt(reg, board, id, pc, pos, x, y); move != nil {
				moves = append(moves, move)
			}
		}
	}
	return moves
}

// candidateAt builds the move descriptor for a landing cell, or nil when
// the cell is held by a friendly piece.
func candidateAt(reg *Registry, board *BoardState, id EntityID, pc *Piece, pos *Position, x, y int) *MoveDescriptor {
	from := Coord{X: pos.X, Y: pos.Y, Level: pos.Level}

	occupant := board.TopAt(x, y)
	if occupant == NoEntity {
		return &MoveDescriptor{
			Entity:    id,
			From:      from,
			To:        Coord{X: x, Y: y, Level: 0},
			PieceType: pc.Type,
			Player:    pc.Owner,
			MoveType:  NormalMove,
		}
	}

	occupantPiece := reg.Piece(occupant)
	if occupantPiece.Owner == pc.Owner {
		return nil
	}
	return &MoveDescriptor{
		Entity:        id,
		From:          from,
		To:            Coord{X: x, Y: y, Level: reg.Position(occupant).Level},
		PieceType:     pc.Type,
		Player:        pc.Owner,
		MoveType:      CaptureMove,
		CaptureEntity: occupant,
	}
}
