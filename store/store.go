// Package store provides SQLite-backed persistence for self-play
// experiment results. It is development tooling around the engine, not
// part of the pure game core.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schemaV1 = `
CREATE TABLE IF NOT EXISTS agents (
	run_id      TEXT NOT NULL,
	agent_id    INTEGER NOT NULL,
	personality TEXT NOT NULL,
	skill_level INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (run_id, agent_id)
);

CREATE TABLE IF NOT EXISTS games (
	run_id          TEXT NOT NULL,
	game_id         INTEGER NOT NULL,
	agent1          INTEGER NOT NULL,
	agent2          INTEGER NOT NULL,
	starting_player INTEGER NOT NULL,
	winner          TEXT NOT NULL DEFAULT '',
	started_at      INTEGER NOT NULL,
	duration_ms     INTEGER NOT NULL DEFAULT 0,
	total_moves     INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (run_id, game_id)
);

CREATE TABLE IF NOT EXISTS game_moves (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id         TEXT NOT NULL,
	game_id        INTEGER NOT NULL,
	step           INTEGER NOT NULL,
	player         INTEGER NOT NULL,
	personality    TEXT NOT NULL,
	candidates     INTEGER NOT NULL DEFAULT 0,
	captures       INTEGER NOT NULL DEFAULT 0,
	capture_chosen INTEGER NOT NULL DEFAULT 0,
	duration_us    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_moves_run_game ON game_moves(run_id, game_id, step);
`

// Store wraps the experiment results database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// modernc sqlite serializes writes itself; one connection avoids
	// SQLITE_BUSY under concurrent game recording
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
