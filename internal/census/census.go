// Package census records per-checkpoint faction statistics for simulation
// runs in SQLite. Records are append-only and never used to restore a world.
package census

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"territory-ca/internal/sims/territory"
)

// Store wraps a SQLite connection holding run and census tables.
type Store struct {
	conn *sqlx.DB
}

// RunInfo describes a run when it starts.
type RunInfo struct {
	Seed       int64 `db:"seed"`
	BoardSize  int   `db:"board_size"`
	Factions   int   `db:"factions"`
	Iterations int   `db:"iterations"`
}

// RunRecord is a stored run.
type RunRecord struct {
	ID        string `db:"id"`
	StartedAt int64  `db:"started_at"`
	RunInfo
	Ticks     int   `db:"ticks"`
	ElapsedMS int64 `db:"elapsed_ms"`
	Finished  bool  `db:"finished"`
}

// Row is one faction's census at one checkpoint.
type Row struct {
	RunID    string `db:"run_id"`
	Tick     int    `db:"tick"`
	Year     int    `db:"year"`
	Faction  int    `db:"faction"`
	Owned    int    `db:"owned"`
	Frontier int    `db:"frontier"`
	CapitalX *int   `db:"capital_x"`
	CapitalY *int   `db:"capital_y"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open census db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate census db: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		board_size INTEGER NOT NULL,
		factions INTEGER NOT NULL,
		iterations INTEGER NOT NULL,
		ticks INTEGER NOT NULL DEFAULT 0,
		elapsed_ms INTEGER NOT NULL DEFAULT 0,
		finished INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS census (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		tick INTEGER NOT NULL,
		year INTEGER NOT NULL,
		faction INTEGER NOT NULL,
		owned INTEGER NOT NULL,
		frontier INTEGER NOT NULL,
		capital_x INTEGER,
		capital_y INTEGER
	);

	CREATE INDEX IF NOT EXISTS idx_census_run_tick ON census(run_id, tick);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Run records checkpoints for a single simulation run. It satisfies the
// engine's Renderer interface.
type Run struct {
	store *Store
	id    string
}

// StartRun registers a new run under a fresh identifier.
func (s *Store) StartRun(info RunInfo) (*Run, error) {
	id := uuid.New().String()
	_, err := s.conn.Exec(`
		INSERT INTO runs (id, started_at, seed, board_size, factions, iterations)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, time.Now().UnixMilli(), info.Seed, info.BoardSize, info.Factions, info.Iterations)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return &Run{store: s, id: id}, nil
}

// ID returns the run identifier.
func (r *Run) ID() string { return r.id }

// Render appends one census row per faction for the snapshot's tick.
func (r *Run) Render(snap territory.Snapshot) error {
	tx, err := r.store.conn.Beginx()
	if err != nil {
		return fmt.Errorf("begin census tx: %w", err)
	}
	defer tx.Rollback()

	for _, fc := range snap.Factions {
		var cx, cy *int
		if fc.HasCapital {
			x, y := fc.Capital.X, fc.Capital.Y
			cx, cy = &x, &y
		}
		if _, err := tx.Exec(`
			INSERT INTO census (run_id, tick, year, faction, owned, frontier, capital_x, capital_y)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, r.id, snap.Tick, snap.Years, int(fc.Faction), fc.Owned, fc.Frontier, cx, cy); err != nil {
			return fmt.Errorf("insert census row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit census: %w", err)
	}
	slog.Debug("census recorded", "run", r.id, "tick", snap.Tick, "factions", len(snap.Factions))
	return nil
}

// Finish marks the run complete.
func (r *Run) Finish(ticks int, elapsed time.Duration) error {
	_, err := r.store.conn.Exec(`
		UPDATE runs SET ticks = ?, elapsed_ms = ?, finished = 1 WHERE id = ?
	`, ticks, elapsed.Milliseconds(), r.id)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// GetRun loads a run by identifier.
func (s *Store) GetRun(id string) (*RunRecord, error) {
	var rec RunRecord
	err := s.conn.Get(&rec, `
		SELECT id, started_at, seed, board_size, factions, iterations, ticks, elapsed_ms, finished
		FROM runs WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return &rec, nil
}

// History returns a run's census rows ordered by tick, then faction.
func (s *Store) History(runID string) ([]Row, error) {
	var rows []Row
	err := s.conn.Select(&rows, `
		SELECT run_id, tick, year, faction, owned, frontier, capital_x, capital_y
		FROM census
		WHERE run_id = ?
		ORDER BY tick ASC, faction ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("census history: %w", err)
	}
	return rows, nil
}

// Runs lists stored runs, most recent first.
func (s *Store) Runs() ([]RunRecord, error) {
	var recs []RunRecord
	err := s.conn.Select(&recs, `
		SELECT id, started_at, seed, board_size, factions, iterations, ticks, elapsed_ms, finished
		FROM runs
		ORDER BY started_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return recs, nil
}
