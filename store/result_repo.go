package store

import (
	"context"
	"fmt"

	"gungi/experiments/metrics"
)

// SaveAgentConfigs records the agents participating in a run.
func (s *Store) SaveAgentConfigs(ctx context.Context, runID string, configs []metrics.AgentConfig) error {
	const q = `INSERT INTO agents (run_id, agent_id, personality, skill_level)
VALUES (?, ?, ?, ?)`
	for _, config := range configs {
		_, err := s.db.ExecContext(ctx, q, runID, config.ID, config.Personality, config.SkillLevel)
		if err != nil {
			return fmt.Errorf("save agent config: %w", err)
		}
	}
	return nil
}

// SaveGameRecords persists finished games for a run.
func (s *Store) SaveGameRecords(ctx context.Context, runID string, records []metrics.GameRecord) error {
	const q = `INSERT INTO games (run_id, game_id, agent1, agent2, starting_player, winner, started_at, duration_ms, total_moves)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, record := range records {
		_, err := s.db.ExecContext(ctx, q,
			runID,
			record.ID,
			record.Agent1,
			record.Agent2,
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Unix(),
			record.Duration.Milliseconds(),
			record.TotalMoves,
		)
		if err != nil {
			return fmt.Errorf("save game record: %w", err)
		}
	}
	return nil
}

// SaveMoveRecords persists per-decision metrics for a run.
func (s *Store) SaveMoveRecords(ctx context.Context, runID string, records []metrics.MoveRecord) error {
	const q = `INSERT INTO game_moves (run_id, game_id, step, player, personality, candidates, captures, capture_chosen, duration_us)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, record := range records {
		captureChosen := 0
		if record.CaptureChosen {
			captureChosen = 1
		}
		_, err := s.db.ExecContext(ctx, q,
			runID,
			record.Game,
			record.Step,
			record.Player,
			record.Personality,
			record.Candidates,
			record.Captures,
			captureChosen,
			record.Duration.Microseconds(),
		)
		if err != nil {
			return fmt.Errorf("save move record: %w", err)
		}
	}
	return nil
}

// WinCounts tallies wins per winner label for one run.
func (s *Store) WinCounts(ctx context.Context, runID string) (map[string]int, error) {
	const q = `SELECT winner, COUNT(*) FROM games WHERE run_id = ? GROUP BY winner`

	rows, err := s.db.QueryContext(ctx, q, runID)
	if err != nil {
		return nil, fmt.Errorf("query win counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var winner string
		var count int
		if err := rows.Scan(&winner, &count); err != nil {
			return nil, fmt.Errorf("scan win count: %w", err)
		}
		counts[winner] = count
	}
	return counts, rows.Err()
}

// GameCount returns how many games are stored for a run.
func (s *Store) GameCount(ctx context.Context, runID string) (int, error) {
	const q = `SELECT COUNT(*) FROM games WHERE run_id = ?`

	var count int
	if err := s.db.QueryRowContext(ctx, q, runID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return count, nil
}
