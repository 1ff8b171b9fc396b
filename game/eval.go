package game

// Material weights per piece type. The Marshal dominates every other value
// so losing it always evaluates as decisive.
var pieceValues = map[PieceType]float64{
	Marshal:    1000,
	General:    9,
	Lieutenant: 5,
	Major:      5,
	Minor:      3,
	Shinobi:    1,
	Bow:        4,
	Lance:      3,
	Fortress:   2,
	Catapult:   6,
	Spy:        4,
	Samurai:    4,
	Captain:    6,
}

// PieceValue returns the material weight of a piece type.
func PieceValue(pt PieceType) float64 {
	return pieceValues[pt]
}

// EvaluateMaterial tallies both players' remaining material to a relative
// score between -1 and 1 from the current player's perspective.
func EvaluateMaterial(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	material := gs.materialByPlayer()

	current := gs.Board.CurrentPlayer
	return normalize(material[current], material[Opponent(current)])
}

// EvaluateMaterialAdvance adds a small board-advancement term to the
// material score, rewarding pieces pushed toward the opponent's half.
func EvaluateMaterialAdvance(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	material := gs.materialByPlayer()
	advance := gs.advanceByPlayer()

	current := gs.Board.CurrentPlayer
	opponent := Opponent(current)
	materialScore := normalize(material[current], material[opponent])
	advanceScore := normalize(advance[current], advance[opponent])

	// Material dominates; advancement only breaks near-equal positions
	return (3*materialScore + advanceScore) / 4
}

func (gs *GameState) materialByPlayer() map[int]float64 {
	material := make(map[int]float64)
	gs.Reg.Each(func(_ EntityID, pc *Piece, _ *Position) {
		if !pc.Captured {
			material[pc.Owner] += pieceValues[pc.Type]
		}
	})
	return material
}

func (gs *GameState) advanceByPlayer() map[int]float64 {
	advance := make(map[int]float64)
	gs.Reg.Each(func(_ EntityID, pc *Piece, pos *Position) {
		if pc.Captured || pc.Type == Fortress {
			return
		}
		rows := pos.Y
		if pc.Owner == 1 { // Player 1 advances toward decreasing y
			rows = BoardSize - 1 - pos.Y
		}
		advance[pc.Owner] += float64(rows)
	})
	return advance
}

// normalize converts two values into a single score between -1 and 1.
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
