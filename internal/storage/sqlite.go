// Package storage provides SQLite-based persistence for tournament results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/match3-arena/internal/game"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// TournamentMeta describes one stored tournament run.
type TournamentMeta struct {
	ID        int64
	Policy    string
	Games     int
	Rows      int
	Cols      int
	Colors    int
	Target    int
	Seed      int64
	CreatedAt time.Time
}

// OutcomeRecord is one stored game outcome.
type OutcomeRecord struct {
	ID           int64
	TournamentID int64
	Outcome      game.Outcome
}

// AggStats contains aggregated statistics for one tournament.
type AggStats struct {
	TournamentID int64
	GamesCount   int
	AvgPoints    float64
	MaxPoints    int
	AvgSwaps     float64
	ReachedCount int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tournaments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			policy TEXT NOT NULL,
			games INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			colors INTEGER NOT NULL,
			target INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS outcomes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tournament_id INTEGER NOT NULL REFERENCES tournaments(id),
			game_id INTEGER NOT NULL,
			points INTEGER NOT NULL,
			swaps INTEGER NOT NULL,
			cascades INTEGER NOT NULL,
			reached_target INTEGER NOT NULL,
			stopping_reason TEXT NOT NULL,
			swaps_to_target INTEGER
		);
		CREATE INDEX IF NOT EXISTS idx_outcomes_tournament ON outcomes(tournament_id);
		CREATE INDEX IF NOT EXISTS idx_outcomes_points ON outcomes(tournament_id, points DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveTournament stores a tournament and its outcomes in one transaction.
// Returns the ID of the inserted tournament.
func (s *Store) SaveTournament(meta TournamentMeta, outcomes []game.Outcome) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO tournaments (policy, games, rows, cols, colors, target, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.Policy, meta.Games, meta.Rows, meta.Cols, meta.Colors, meta.Target, meta.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save tournament: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO outcomes
		 (tournament_id, game_id, points, swaps, cascades, reached_target, stopping_reason, swaps_to_target)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare outcome insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range outcomes {
		var milestone any
		if o.SwapsToTarget != game.MilestoneAbsent {
			milestone = o.SwapsToTarget
		}
		if _, err := stmt.Exec(
			id, o.GameID, o.Points, o.Swaps, o.Cascades,
			boolToInt(o.ReachedTarget), string(o.Reason), milestone,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save outcome for game %d: %w", o.GameID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return id, nil
}

// RecentTournaments retrieves the most recent tournament runs.
func (s *Store) RecentTournaments(limit int) ([]TournamentMeta, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, policy, games, rows, cols, colors, target, seed, created_at
		 FROM tournaments
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tournaments: %w", err)
	}
	defer rows.Close()

	var metas []TournamentMeta
	for rows.Next() {
		var m TournamentMeta
		var createdAt any
		if err := rows.Scan(&m.ID, &m.Policy, &m.Games, &m.Rows, &m.Cols,
			&m.Colors, &m.Target, &m.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseTimestamp(createdAt)
		metas = append(metas, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return metas, nil
}

// Outcomes retrieves every stored outcome of a tournament, ordered by game id.
func (s *Store) Outcomes(tournamentID int64) ([]OutcomeRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, tournament_id, game_id, points, swaps, cascades,
		        reached_target, stopping_reason, swaps_to_target
		 FROM outcomes
		 WHERE tournament_id = ?
		 ORDER BY game_id`,
		tournamentID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query outcomes: %w", err)
	}
	defer rows.Close()

	var records []OutcomeRecord
	for rows.Next() {
		var rec OutcomeRecord
		var reached int
		var reason string
		var milestone sql.NullInt64
		if err := rows.Scan(&rec.ID, &rec.TournamentID, &rec.Outcome.GameID,
			&rec.Outcome.Points, &rec.Outcome.Swaps, &rec.Outcome.Cascades,
			&reached, &reason, &milestone); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Outcome.ReachedTarget = reached != 0
		rec.Outcome.Reason = game.StoppingReason(reason)
		if milestone.Valid {
			rec.Outcome.SwapsToTarget = int(milestone.Int64)
		} else {
			rec.Outcome.SwapsToTarget = game.MilestoneAbsent
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// TournamentStats retrieves aggregated statistics for one tournament.
func (s *Store) TournamentStats(tournamentID int64) (*AggStats, error) {
	stats := &AggStats{TournamentID: tournamentID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(points), 0), COALESCE(MAX(points), 0),
		        COALESCE(AVG(swaps), 0), COALESCE(SUM(reached_target), 0)
		 FROM outcomes WHERE tournament_id = ?`,
		tournamentID,
	).Scan(&stats.GamesCount, &stats.AvgPoints, &stats.MaxPoints,
		&stats.AvgSwaps, &stats.ReachedCount)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get tournament stats: %w", err)
	}

	return stats, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTimestamp handles both time.Time and string values from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
