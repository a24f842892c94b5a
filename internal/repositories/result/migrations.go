package result

import (
	"context"
	"database/sql"
	"fmt"
)

// migration is one schema step, applied once in ID order
type migration struct {
	ID          int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		ID:          1,
		Description: "results and standings",
		SQL: `
CREATE TABLE IF NOT EXISTS results (
	game_id     TEXT PRIMARY KEY,
	seed        INTEGER NOT NULL,
	rounds      INTEGER NOT NULL,
	winner_id   INTEGER NOT NULL,
	winner_name TEXT NOT NULL,
	finished_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS standings (
	game_id TEXT NOT NULL REFERENCES results(game_id) ON DELETE CASCADE,
	seat    INTEGER NOT NULL,
	name    TEXT NOT NULL,
	cash    INTEGER NOT NULL,
	wealth  INTEGER NOT NULL,
	lost    INTEGER NOT NULL,
	PRIMARY KEY (game_id, seat)
);`,
	},
	{
		ID:          2,
		Description: "index results by finish time",
		SQL:         `CREATE INDEX IF NOT EXISTS idx_results_finished_at ON results (finished_at DESC);`,
	},
}

// migrate applies every migration newer than the recorded schema version
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_version (
	version    INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, m := range migrations {
		if m.ID <= current {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.ID, m.Description, err)
		}
	}
	return nil
}

func apply(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, m.ID); err != nil {
		return err
	}
	return tx.Commit()
}
