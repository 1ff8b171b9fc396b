// Package metrics defines measurement records for self-play experiments
// and a thread-safe collector for accumulating them across games.
package metrics

import (
	"sync"
	"time"
)

// AgentConfig describes one experiment agent.
type AgentConfig struct {
	ID          int
	Personality string
	SkillLevel  int
}

// DecisionMetric measures a single move selection.
type DecisionMetric struct {
	Personality   string
	Candidates    int // Legal moves available
	Captures      int // Capture candidates available
	CaptureChosen bool
	Duration      time.Duration
}

// MoveMetric ties a decision to its position in a game.
type MoveMetric struct {
	Step   int
	Player int // Player ID
	DecisionMetric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	StartingPlayer int
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// GameRecord associates a game result with the agents that played it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

// MoveRecord associates a move metric with its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Collector accumulates records from concurrently running games.
type Collector struct {
	mu    sync.Mutex
	games []GameRecord
	moves []MoveRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

// AddGame records one finished game and its per-move metrics, assigning
// the game id. It is safe to call from multiple goroutines.
func (c *Collector) AddGame(agent1, agent2 int, gameMetric GameMetric, moveMetrics []MoveMetric) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := len(c.games) + 1
	c.games = append(c.games, GameRecord{
		ID:         id,
		Agent1:     agent1,
		Agent2:     agent2,
		GameMetric: gameMetric,
	})
	for _, mm := range moveMetrics {
		c.moves = append(c.moves, MoveRecord{Game: id, MoveMetric: mm})
	}
	return id
}

// Records returns copies of everything collected so far.
func (c *Collector) Records() ([]GameRecord, []MoveRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	games := make([]GameRecord, len(c.games))
	copy(games, c.games)
	moves := make([]MoveRecord, len(c.moves))
	copy(moves, c.moves)
	return games, moves
}
