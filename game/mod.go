package game

// Move is what the searcher plays against a State. Gungi moves are always
// deterministic; the method is kept so the search tree can assert it.
type Move interface {
	IsDeterministic() bool
}

// State should be immutable - operations on State always return a new copy.
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
}

// Evaluate scores a game state between -1 and 1 indicating how favorable
// the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64
