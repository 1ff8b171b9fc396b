package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gungi/game"
	"gungi/searcher"
)

// ErrStaleSnapshot reports that the board changed while an AI move was
// being computed; the caller should simply request a new move.
var ErrStaleSnapshot = errors.New("board changed during move computation")

// Session owns exactly one board-state instance. All access is serialized
// through the session mutex; the game core below it performs no locking of
// its own.
type Session struct {
	ID uuid.UUID

	mu     sync.Mutex
	state  *game.GameState
	status Status
}

func NewSession(now time.Time) *Session {
	return &Session{
		ID:     uuid.New(),
		state:  game.NewStandardGame(now),
		status: WaitingForMove,
	}
}

// Snapshot returns a deep copy of the session state for speculative use.
func (s *Session) Snapshot() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Copy()
}

// Hash fingerprints the live state.
func (s *Session) Hash() game.StateHash {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Hash()
}

// Winner returns the decided winner, or "" while the game is open.
func (s *Session) Winner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Winner()
}

// MoveCount returns the number of accepted moves so far.
func (s *Session) MoveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Board.MoveCount
}

// CurrentPlayer returns the player to move.
func (s *Session) CurrentPlayer() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Board.CurrentPlayer
}

// SubmitMove runs one full turn of the session state machine: Validating,
// then on acceptance Applying and TurnAdvanced. A rejection returns the
// specific validation error and leaves the state untouched.
func (s *Session) SubmitMove(move *game.MoveDescriptor, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transition(Validating)
	if err := game.Validate(s.state.Reg, s.state.Board, move, s.state.Board.CurrentPlayer); err != nil {
		s.transition(WaitingForMove)
		log.Debug().
			Stringer("session", s.ID).
			Stringer("move", move).
			Err(err).
			Msg("move rejected")
		return err
	}

	s.transition(Applying)
	game.Apply(s.state.Reg, s.state.Board, move, now)

	s.transition(TurnAdvanced)
	s.state.Board.AdvanceTurn(s.state.Reg)
	s.state.Won = s.state.CheckWinner()
	s.state.Now = now

	s.transition(WaitingForMove)
	return nil
}

// RequestAIMove computes a move for the current player on a snapshot of
// the session. The result is advisory: if the board changed while the
// strategy ran, the computation is discarded with ErrStaleSnapshot.
func (s *Session) RequestAIMove(profile *searcher.AgentProfile) (*game.MoveDescriptor, error) {
	snapshot := s.Snapshot()
	before := snapshot.Hash()

	move, err := searcher.CalculateMove(profile, snapshot)
	if err != nil {
		return nil, err
	}

	if s.Hash() != before {
		return nil, ErrStaleSnapshot
	}
	return move, nil
}

// PlayAIMove computes and commits a move for the current player. The
// returned move has already been re-validated by SubmitMove (defense in
// depth: strategy output is advisory).
func (s *Session) PlayAIMove(profile *searcher.AgentProfile, now time.Time) (*game.MoveDescriptor, error) {
	move, err := s.RequestAIMove(profile)
	if err != nil {
		return nil, err
	}
	if err := s.SubmitMove(move, now); err != nil {
		return nil, err
	}
	return move, nil
}

// transition asserts the turn state machine. A bad transition is a
// programming error, not a game condition.
func (s *Session) transition(to Status) {
	if !canTransition(s.status, to) {
		panic("invalid session transition: " + s.status.String() + " -> " + to.String())
	}
	s.status = to
}
