package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gungi/experiments/metrics"
	"gungi/game"
	"gungi/searcher"
)

// LocalEngine plays two AI agents against each other on one session until
// a winner is decided or MaxMoves is reached.
type LocalEngine struct {
	session  *Session
	profiles [2]*searcher.AgentProfile
}

func NewLocalEngine(profile1, profile2 *searcher.AgentProfile) *LocalEngine {
	if profile1 == nil || profile2 == nil {
		panic("need two agent profiles")
	}
	return &LocalEngine{
		session:  NewSession(time.Now()),
		profiles: [2]*searcher.AgentProfile{profile1, profile2},
	}
}

// Session exposes the underlying session, mainly for tests.
func (e *LocalEngine) Session() *Session {
	return e.session
}

// Run executes the entire game loop until a winner is found or the move
// cap is hit. A player left without legal moves loses; hitting the cap is
// a draw (empty winner).
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	startingPlayer := e.session.CurrentPlayer()
	var moveMetrics []metrics.MoveMetric

	log.Info().
		Stringer("session", e.session.ID).
		Int("player", startingPlayer).
		Msg("starting local game")

	winner := ""
	for e.session.Winner() == "" && e.session.MoveCount() < MaxMoves {
		player := e.session.CurrentPlayer()
		profile := e.profiles[player-1]

		candidates, captures := e.countCandidates()

		selectStart := time.Now()
		move, err := e.session.PlayAIMove(profile, time.Now())
		if err != nil {
			if errors.Is(err, game.ErrNoLegalMoves) {
				winner = fmt.Sprintf("Player%d", game.Opponent(player))
				break
			}
			// Advisory move failed re-validation: a strategy bug worth
			// surfacing loudly in self-play
			panic(fmt.Sprintf("agent %s produced an illegal move: %v", profile.Personality, err))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:   e.session.MoveCount(),
			Player: player,
			DecisionMetric: metrics.DecisionMetric{
				Personality:   profile.Personality.String(),
				Candidates:    candidates,
				Captures:      captures,
				CaptureChosen: move.MoveType == game.CaptureMove,
				Duration:      time.Since(selectStart),
			},
		})
	}

	if winner == "" {
		winner = e.session.Winner()
	}

	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: startingPlayer,
		Winner:         winner,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     e.session.MoveCount(),
	}

	log.Info().
		Stringer("session", e.session.ID).
		Str("winner", winner).
		Int("moves", gameMetric.TotalMoves).
		Msg("local game finished")

	return winner, gameMetric, moveMetrics
}

func (e *LocalEngine) countCandidates() (candidates, captures int) {
	snapshot := e.session.Snapshot()
	for _, move := range snapshot.LegalMoves() {
		candidates++
		if descriptor, ok := move.(*game.MoveDescriptor); ok && descriptor.MoveType == game.CaptureMove {
			captures++
		}
	}
	return candidates, captures
}
