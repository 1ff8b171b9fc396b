package game

import (
	"fmt"
	"time"
)

// GameState bundles one session's registry and board into the immutable
// State contract the searcher plays against. Mutating entry points
// (Validate/Apply) remain usable directly for the submit-move path; Play
// always works on a deep copy.
type GameState struct {
	Reg   *Registry
	Board *BoardState
	Now   time.Time // Explicit clock; zero in speculative search
	Won   string
}

// Standard formation, listed left to right. Player 1 occupies the bottom
// three rows moving toward decreasing y; player 2 mirrors at the top.
var (
	backRank  = []PieceType{Lance, Minor, Major, General, Marshal, General, Major, Minor, Lance}
	innerRank = []PieceType{Catapult, Bow, Samurai, Lieutenant, Spy, Lieutenant, Captain, Bow, Fortress}
	frontRank = []PieceType{Shinobi, Shinobi, Shinobi, Shinobi, Shinobi, Shinobi, Shinobi, Shinobi, Shinobi}
)

// NewStandardGame sets up a fresh game with both armies in the standard
// formation. Piece creation timestamps use the supplied clock value.
func NewStandardGame(now time.Time) *GameState {
	reg := NewRegistry()
	board := NewBoardState()

	ranks := [][]PieceType{backRank, innerRank, frontRank}
	for i, rank := range ranks {
		for x, pt := range rank {
			spawnAt(reg, board, pt, 2, x, i, now)
			spawnAt(reg, board, pt, 1, x, BoardSize-1-i, now)
		}
	}

	return &GameState{Reg: reg, Board: board, Now: now}
}

func spawnAt(reg *Registry, board *BoardState, pt PieceType, owner, x, y int, now time.Time) {
	id := reg.Spawn(pt, owner, x, y, 0, now)
	board.place(id, x, y)
}

// Copy deep-copies the whole game state.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		Reg:   gs.Reg.Copy(),
		Board: gs.Board.Copy(),
		Now:   gs.Now,
		Won:   gs.Won,
	}
}

// Player returns the identifier of the current player.
func (gs *GameState) Player() string {
	return fmt.Sprintf("Player%d", gs.Board.CurrentPlayer)
}

// LegalMoves returns every candidate for the current player that passes
// full validation.
func (gs *GameState) LegalMoves() []Move {
	candidates := GenerateMoves(gs.Reg, gs.Board, gs.Board.CurrentPlayer)
	var moves []Move
	for _, candidate := range candidates {
		if Validate(gs.Reg, gs.Board, candidate, gs.Board.CurrentPlayer) == nil {
			moves = append(moves, candidate)
		}
	}
	return moves
}

// Play applies a legal move to a copy of the state and advances the turn.
// The move must already be legal; Play does not re-validate.
func (gs *GameState) Play(move Move) State {
	descriptor, ok := move.(*MoveDescriptor)
	if !ok {
		panic("unexpected move type")
	}

	next := gs.Copy()
	Apply(next.Reg, next.Board, descriptor, next.Now)
	next.Board.AdvanceTurn(next.Reg)
	next.Won = next.CheckWinner()
	return next
}

// Hash fingerprints the state for stale-snapshot detection.
func (gs *GameState) Hash() StateHash {
	return gs.Board.Hash(gs.Reg)
}

// Winner returns "Player1" or "Player2" once decided, "" while the game is
// still open.
func (gs *GameState) Winner() string {
	return gs.Won
}

// CheckWinner declares the opponent of a captured Marshal the winner.
func (gs *GameState) CheckWinner() string {
	winner := ""
	gs.Reg.Each(func(_ EntityID, pc *Piece, _ *Position) {
		if pc.Type == Marshal && pc.Captured {
			winner = fmt.Sprintf("Player%d", Opponent(pc.Owner))
		}
	})
	return winner
}
