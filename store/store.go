// Package store persists harness reports in a SQLite database so results
// can be aggregated across repeated trial runs.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/katalvlaran/stablematch/harness"
	"github.com/katalvlaran/stablematch/matching"
)

// ErrCorrupt reports a stored value that cannot be decoded.
var ErrCorrupt = errors.New("store: corrupt row")

var schema = []string{`
CREATE TABLE IF NOT EXISTS runs (
	id              TEXT PRIMARY KEY,
	started_at      TEXT    NOT NULL,
	n               INTEGER NOT NULL,
	rounds          INTEGER NOT NULL,
	seed            INTEGER NOT NULL,
	concurrent      INTEGER NOT NULL,
	successes       INTEGER NOT NULL,
	failures        INTEGER NOT NULL,
	mean_elapsed_ns INTEGER NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS trials (
	run_id     TEXT    NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	round      INTEGER NOT NULL,
	seed       INTEGER NOT NULL,
	ok         INTEGER NOT NULL,
	proposals  INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	engine     TEXT    NOT NULL,
	reference  TEXT    NOT NULL,
	PRIMARY KEY (run_id, round)
)`}

// Store is a SQLite-backed harness.Recorder.
type Store struct {
	db *sql.DB
}

var _ harness.Recorder = (*Store)(nil)

// RunSummary is one row of the runs table.
type RunSummary struct {
	ID          uuid.UUID
	StartedAt   time.Time
	N           int
	Rounds      int
	Seed        int64
	Concurrent  bool
	Successes   int
	Failures    int
	MeanElapsed time.Duration
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// - journal_mode=WAL: readers do not block the single writer
	// - foreign_keys=ON: trials are removed with their run
	// - busy_timeout=5000: wait on lock instead of failing immediately
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a report and all of its trials in one transaction.
func (s *Store) Record(ctx context.Context, r harness.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, n, rounds, seed, concurrent, successes, failures, mean_elapsed_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID.String(), r.StartedAt.UTC().Format(time.RFC3339Nano), r.N, r.Rounds, r.Seed,
		boolInt(r.Concurrent), r.Successes, r.Failures, int64(r.MeanElapsed))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO trials (run_id, round, seed, ok, proposals, elapsed_ns, engine, reference)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, tr := range r.Trials {
		_, err = stmt.ExecContext(ctx, r.RunID.String(), tr.Round, tr.Seed, boolInt(tr.OK),
			tr.Proposals, int64(tr.Elapsed), encodeMatching(tr.Engine), encodeMatching(tr.Reference))
		if err != nil {
			return fmt.Errorf("insert trial %d: %w", tr.Round, err)
		}
	}

	return tx.Commit()
}

// Runs lists stored runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, n, rounds, seed, concurrent, successes, failures, mean_elapsed_ns
		 FROM runs ORDER BY started_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			rs               RunSummary
			id, started      string
			concurrent, mean int64
		)
		if err := rows.Scan(&id, &started, &rs.N, &rs.Rounds, &rs.Seed, &concurrent,
			&rs.Successes, &rs.Failures, &mean); err != nil {
			return nil, err
		}
		if rs.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("%w: run id %q: %v", ErrCorrupt, id, err)
		}
		if rs.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("%w: run %s started_at: %v", ErrCorrupt, id, err)
		}
		rs.Concurrent = concurrent != 0
		rs.MeanElapsed = time.Duration(mean)
		out = append(out, rs)
	}

	return out, rows.Err()
}

// Trials returns the stored trials of runID ordered by round. An unknown
// run yields an empty slice.
func (s *Store) Trials(ctx context.Context, runID uuid.UUID) ([]harness.Trial, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT round, seed, ok, proposals, elapsed_ns, engine, reference
		 FROM trials WHERE run_id = ? ORDER BY round`, runID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []harness.Trial
	for rows.Next() {
		var (
			tr            harness.Trial
			ok, elapsed   int64
			engine, refer string
		)
		if err := rows.Scan(&tr.Round, &tr.Seed, &ok, &tr.Proposals, &elapsed, &engine, &refer); err != nil {
			return nil, err
		}
		tr.OK = ok != 0
		tr.Elapsed = time.Duration(elapsed)
		if tr.Engine, err = decodeMatching(engine); err != nil {
			return nil, err
		}
		if tr.Reference, err = decodeMatching(refer); err != nil {
			return nil, err
		}
		out = append(out, tr)
	}

	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// encodeMatching renders m as space-separated reviewer indices.
func encodeMatching(m matching.Matching) string {
	parts := make([]string, len(m))
	for i, r := range m {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, " ")
}

func decodeMatching(s string) (matching.Matching, error) {
	fields := strings.Fields(s)
	m := make(matching.Matching, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: matching %q", ErrCorrupt, s)
		}
		m[i] = v
	}
	return m, nil
}
