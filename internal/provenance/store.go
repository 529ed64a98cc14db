package provenance

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/satyasetu/go-engine/internal/pipeline"
	"github.com/satyasetu/go-engine/internal/state"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS run_log (
	run_id        TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	language      TEXT NOT NULL,
	query_text    TEXT NOT NULL,
	intent        TEXT NOT NULL,
	is_safe       INTEGER NOT NULL,
	risk_flags    TEXT,
	sources       TEXT,
	response_text TEXT NOT NULL,
	confidence    REAL NOT NULL,
	outcome       TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	completed_at  TEXT
);

CREATE TABLE IF NOT EXISTS stage_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	stage       TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	ended_at    TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES run_log(run_id)
);

CREATE INDEX IF NOT EXISTS idx_run_log_created ON run_log(created_at);
CREATE INDEX IF NOT EXISTS idx_stage_log_run ON stage_log(run_id);
`

// #endregion schema

// #region run-entry
// RunEntry is one logged run as read back from the store.
type RunEntry struct {
	RunID        string
	UserID       string
	Language     string
	QueryText    string
	Intent       string
	IsSafe       bool
	RiskFlags    []string
	Sources      []string
	ResponseText string
	Confidence   float32
	Outcome      string
	CreatedAt    time.Time
	CompletedAt  time.Time
}

// StageEntry is one logged stage transition.
type StageEntry struct {
	RunID     string
	Stage     string
	Outcome   string
	StartedAt time.Time
	EndedAt   time.Time
}

// #endregion run-entry

// #region store-struct
// Store persists finished runs in SQLite for audit and replay. Writes are
// best-effort and happen off the request path.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by inspection tools.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region log-run
// LogRun writes a finished run and its stage transitions atomically.
func (s *Store) LogRun(rec *state.Record, transitions []pipeline.Transition, outcome pipeline.Outcome) error {
	flagsJSON, err := json.Marshal(rec.RiskFlags)
	if err != nil {
		return fmt.Errorf("marshal risk flags: %w", err)
	}
	sourcesJSON, err := json.Marshal(rec.Sources)
	if err != nil {
		return fmt.Errorf("marshal sources: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var completedPtr interface{}
	if !rec.CompletedAt.IsZero() {
		completedPtr = rec.CompletedAt.Format(time.RFC3339Nano)
	}

	_, err = tx.Exec(
		`INSERT INTO run_log (run_id, user_id, language, query_text, intent, is_safe,
		                      risk_flags, sources, response_text, confidence, outcome,
		                      created_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.UserID, string(rec.Language), rec.QueryText, string(rec.Intent),
		boolToInt(rec.IsSafe), string(flagsJSON), string(sourcesJSON),
		rec.ResponseText, rec.Confidence, string(outcome),
		rec.CreatedAt.Format(time.RFC3339Nano), completedPtr,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, tr := range transitions {
		_, err = tx.Exec(
			`INSERT INTO stage_log (run_id, stage, outcome, started_at, ended_at)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.RunID, tr.Stage, string(tr.Outcome),
			tr.Start.Format(time.RFC3339Nano), tr.End.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert stage: %w", err)
		}
	}

	return tx.Commit()
}

// #endregion log-run

// #region get-run
// GetRun reads one logged run by ID.
func (s *Store) GetRun(runID string) (RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT run_id, user_id, language, query_text, intent, is_safe, risk_flags,
		        sources, response_text, confidence, outcome, created_at, completed_at
		 FROM run_log WHERE run_id = ?`, runID,
	)
	entry, err := scanRun(row)
	if err != nil {
		return RunEntry{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	return entry, nil
}

// #endregion get-run

// #region list-runs
// ListRuns returns the most recent runs.
func (s *Store) ListRuns(limit int) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, user_id, language, query_text, intent, is_safe, risk_flags,
		        sources, response_text, confidence, outcome, created_at, completed_at
		 FROM run_log ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		entry, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// #endregion list-runs

// #region stages-for-run
// StagesForRun returns the ordered stage transitions of one run.
func (s *Store) StagesForRun(runID string) ([]StageEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, stage, outcome, started_at, ended_at
		 FROM stage_log WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()

	var entries []StageEntry
	for rows.Next() {
		var e StageEntry
		var startedStr, endedStr string
		if err := rows.Scan(&e.RunID, &e.Stage, &e.Outcome, &startedStr, &endedStr); err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		e.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		e.EndedAt, _ = time.Parse(time.RFC3339Nano, endedStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion stages-for-run

// #region summary
// Summary aggregates run counts per outcome.
type Summary struct {
	Total      int
	ByOutcome  map[string]int
	ByIntent   map[string]int
	UnsafeRuns int
}

// Summarize computes aggregate counts over the run log.
func (s *Store) Summarize() (Summary, error) {
	sum := Summary{
		ByOutcome: make(map[string]int),
		ByIntent:  make(map[string]int),
	}

	rows, err := s.db.Query(`SELECT outcome, intent, is_safe, COUNT(*) FROM run_log GROUP BY outcome, intent, is_safe`)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var outcome, intent string
		var isSafe, n int
		if err := rows.Scan(&outcome, &intent, &isSafe, &n); err != nil {
			return Summary{}, fmt.Errorf("scan summary: %w", err)
		}
		sum.Total += n
		sum.ByOutcome[outcome] += n
		sum.ByIntent[intent] += n
		if isSafe == 0 {
			sum.UnsafeRuns += n
		}
	}
	return sum, rows.Err()
}

// #endregion summary

// #region helpers
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (RunEntry, error) {
	var e RunEntry
	var isSafe int
	var flagsJSON, sourcesJSON string
	var createdStr string
	var completedStr sql.NullString

	err := row.Scan(&e.RunID, &e.UserID, &e.Language, &e.QueryText, &e.Intent, &isSafe,
		&flagsJSON, &sourcesJSON, &e.ResponseText, &e.Confidence, &e.Outcome,
		&createdStr, &completedStr)
	if err != nil {
		return RunEntry{}, err
	}

	e.IsSafe = isSafe != 0
	if err := json.Unmarshal([]byte(flagsJSON), &e.RiskFlags); err != nil {
		return RunEntry{}, fmt.Errorf("unmarshal risk flags: %w", err)
	}
	if err := json.Unmarshal([]byte(sourcesJSON), &e.Sources); err != nil {
		return RunEntry{}, fmt.Errorf("unmarshal sources: %w", err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	if completedStr.Valid {
		e.CompletedAt, _ = time.Parse(time.RFC3339Nano, completedStr.String)
	}
	return e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
