// Package transcript stores concluded campaign runs in SQLite so results
// screens and replays can be served later. A run is fully described by its
// seed plus the per-turn records; the simulation's determinism makes the
// stored transcript replayable.
package transcript

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jdmills/campaigncraft/internal/sim"
)

// Store wraps a SQLite connection for run persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
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
		seed INTEGER NOT NULL,
		turns INTEGER NOT NULL,
		player TEXT NOT NULL,
		winner TEXT NOT NULL,
		tie_break TEXT NOT NULL,
		standings_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS turns (
		run_id TEXT NOT NULL,
		idx INTEGER NOT NULL,
		player_action TEXT NOT NULL,
		event TEXT NOT NULL,
		snapshot_json TEXT NOT NULL,
		PRIMARY KEY (run_id, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_turns_run ON turns(run_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Run is a stored campaign run.
type Run struct {
	ID        uuid.UUID
	Seed      int64
	Turns     int
	Player    string
	Winner    string
	TieBreak  string
	Standings []sim.Standing
	CreatedAt time.Time
}

// TurnRecord is one stored turn of a run.
type TurnRecord struct {
	Index        int
	PlayerAction string
	Event        string
	Standings    []sim.Standing
}

// SaveRun persists a concluded simulation's full history. The caller owns
// the run ID so replays can reference it.
func (s *Store) SaveRun(id uuid.UUID, seed int64, player string, history []sim.Turn, result *sim.Result) error {
	if result == nil {
		return fmt.Errorf("transcript: run has no result yet")
	}

	standings, err := json.Marshal(result.Standings)
	if err != nil {
		return err
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, seed, turns, player, winner, tie_break, standings_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), seed, len(history), player, result.Winner, result.TieBreak,
		string(standings), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	for _, turn := range history {
		snapshot, err := json.Marshal(turn.Standings)
		if err != nil {
			return err
		}
		event := ""
		if turn.Event != nil {
			event = turn.Event.Headline
		}
		_, err = tx.Exec(
			`INSERT INTO turns (run_id, idx, player_action, event, snapshot_json)
			 VALUES (?, ?, ?, ?, ?)`,
			id.String(), turn.Index, turn.Player.Action.String(), event, string(snapshot),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadRun returns a stored run and its turn records.
func (s *Store) LoadRun(id uuid.UUID) (*Run, []TurnRecord, error) {
	var row struct {
		ID            string `db:"id"`
		Seed          int64  `db:"seed"`
		Turns         int    `db:"turns"`
		Player        string `db:"player"`
		Winner        string `db:"winner"`
		TieBreak      string `db:"tie_break"`
		StandingsJSON string `db:"standings_json"`
		CreatedAt     string `db:"created_at"`
	}
	err := s.conn.Get(&row, `SELECT * FROM runs WHERE id = ?`, id.String())
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("transcript: run %s not found", id)
	}
	if err != nil {
		return nil, nil, err
	}

	run := &Run{
		ID:       id,
		Seed:     row.Seed,
		Turns:    row.Turns,
		Player:   row.Player,
		Winner:   row.Winner,
		TieBreak: row.TieBreak,
	}
	if err := json.Unmarshal([]byte(row.StandingsJSON), &run.Standings); err != nil {
		return nil, nil, err
	}
	if t, perr := time.Parse(time.RFC3339, row.CreatedAt); perr == nil {
		run.CreatedAt = t
	}

	var turnRows []struct {
		Idx          int    `db:"idx"`
		PlayerAction string `db:"player_action"`
		Event        string `db:"event"`
		SnapshotJSON string `db:"snapshot_json"`
		RunID        string `db:"run_id"`
	}
	if err := s.conn.Select(&turnRows, `SELECT * FROM turns WHERE run_id = ? ORDER BY idx`, id.String()); err != nil {
		return nil, nil, err
	}

	records := make([]TurnRecord, 0, len(turnRows))
	for _, tr := range turnRows {
		rec := TurnRecord{Index: tr.Idx, PlayerAction: tr.PlayerAction, Event: tr.Event}
		if err := json.Unmarshal([]byte(tr.SnapshotJSON), &rec.Standings); err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	return run, records, nil
}

// ListRuns returns stored runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []struct {
		ID            string `db:"id"`
		Seed          int64  `db:"seed"`
		Turns         int    `db:"turns"`
		Player        string `db:"player"`
		Winner        string `db:"winner"`
		TieBreak      string `db:"tie_break"`
		StandingsJSON string `db:"standings_json"`
		CreatedAt     string `db:"created_at"`
	}
	err := s.conn.Select(&rows, `SELECT * FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	runs := make([]Run, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, err
		}
		run := Run{
			ID:       id,
			Seed:     row.Seed,
			Turns:    row.Turns,
			Player:   row.Player,
			Winner:   row.Winner,
			TieBreak: row.TieBreak,
		}
		if err := json.Unmarshal([]byte(row.StandingsJSON), &run.Standings); err != nil {
			return nil, err
		}
		if t, perr := time.Parse(time.RFC3339, row.CreatedAt); perr == nil {
			run.CreatedAt = t
		}
		runs = append(runs, run)
	}
	return runs, nil
}
