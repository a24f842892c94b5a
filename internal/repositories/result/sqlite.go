package result

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/monosim/internal/models"
	_ "modernc.org/sqlite"
)

// ErrResultNotFound is returned when no result is stored for a game
var ErrResultNotFound = errors.New("result not found")

// Config holds configuration for the SQLite result repository
type Config struct {
	// DB is an open database, see Open
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// Open opens the SQLite database at path. Pragmas go through the DSN so
// every pooled connection gets them.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := "file:" + path +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// NewSQLite creates a SQLite-backed result repository and migrates the schema
func NewSQLite(ctx context.Context, cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	if err := migrate(ctx, cfg.DB); err != nil {
		return nil, err
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// SaveResult stores a result and its standings in one transaction
func (r *sqliteRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}
	res := input.Result
	if res.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM standings WHERE game_id = ?`, res.GameID); err != nil {
		return fmt.Errorf("failed to clear standings: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO results (game_id, seed, rounds, winner_id, winner_name, finished_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (game_id) DO UPDATE SET
	seed = excluded.seed,
	rounds = excluded.rounds,
	winner_id = excluded.winner_id,
	winner_name = excluded.winner_name,
	finished_at = excluded.finished_at`,
		res.GameID, res.Seed, res.Rounds, int(res.WinnerID), res.WinnerName, res.FinishedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	for _, st := range res.Standings {
		_, err := tx.ExecContext(ctx, `
INSERT INTO standings (game_id, seat, name, cash, wealth, lost)
VALUES (?, ?, ?, ?, ?, ?)`,
			res.GameID, int(st.PlayerID), st.Name, st.Cash, st.Wealth, st.Lost)
		if err != nil {
			return fmt.Errorf("failed to save standing %d: %w", st.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit result: %w", err)
	}
	return nil
}

// GetResult retrieves a result and its standings
func (r *sqliteRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, `
SELECT game_id, seed, rounds, winner_id, winner_name, finished_at
FROM results WHERE game_id = ?`, input.GameID)

	res, err := scanResult(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	if err := r.loadStandings(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ListResults retrieves results ordered by finish time, newest first
func (r *sqliteRepository) ListResults(ctx context.Context, input *ListResultsInput) ([]*models.GameResult, error) {
	limit := -1
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT game_id, seed, rounds, winner_id, winner_name, finished_at
FROM results ORDER BY finished_at DESC, game_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	results := []*models.GameResult{}
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	for _, res := range results {
		if err := r.loadStandings(ctx, res); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// CountWins tallies wins by winner name
func (r *sqliteRepository) CountWins(ctx context.Context, input *CountWinsInput) (*CountWinsOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT winner_id, winner_name, COUNT(*) FROM results GROUP BY winner_id, winner_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to count wins: %w", err)
	}
	defer rows.Close()

	output := &CountWinsOutput{Wins: make(map[string]int)}
	for rows.Next() {
		var (
			winnerID int
			name     string
			count    int
		)
		if err := rows.Scan(&winnerID, &name, &count); err != nil {
			return nil, fmt.Errorf("failed to scan win count: %w", err)
		}
		if models.PlayerID(winnerID) == models.NoOwner {
			output.Undecided += count
			continue
		}
		output.Wins[name] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to count wins: %w", err)
	}
	return output, nil
}

// DeleteResult removes a result and its standings; a missing result is not an error
func (r *sqliteRepository) DeleteResult(ctx context.Context, input *DeleteResultInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("game ID is required")
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM results WHERE game_id = ?`, input.GameID); err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	return nil
}

func (r *sqliteRepository) loadStandings(ctx context.Context, res *models.GameResult) error {
	rows, err := r.db.QueryContext(ctx, `
SELECT seat, name, cash, wealth, lost FROM standings WHERE game_id = ? ORDER BY seat`, res.GameID)
	if err != nil {
		return fmt.Errorf("failed to get standings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			st   models.Standing
			seat int
		)
		if err := rows.Scan(&seat, &st.Name, &st.Cash, &st.Wealth, &st.Lost); err != nil {
			return fmt.Errorf("failed to scan standing: %w", err)
		}
		st.PlayerID = models.PlayerID(seat)
		res.Standings = append(res.Standings, st)
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (*models.GameResult, error) {
	var (
		res        models.GameResult
		winnerID   int
		finishedAt int64
	)
	if err := row.Scan(&res.GameID, &res.Seed, &res.Rounds, &winnerID, &res.WinnerName, &finishedAt); err != nil {
		return nil, err
	}
	res.WinnerID = models.PlayerID(winnerID)
	res.FinishedAt = time.Unix(0, finishedAt).UTC()
	return &res, nil
}
