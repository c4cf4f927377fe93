// Package store persists monitoring sessions and app usage to SQLite.
// The timer is the single source of truth for productive time; callers
// flush whole-second deltas of the timer's elapsed total rather than
// recomputing time from tick intervals.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Recorder is the subset of Store the tick loop writes through.
type Recorder interface {
	// AddSessionTime adds whole-second deltas to the session counters.
	AddSessionTime(sessionID, productiveSec, unproductiveSec int64) error

	// LogAppStart opens an app-usage span for the active window and
	// returns its id.
	LogAppStart(sessionID int64, title, classification string, now time.Time) (int64, error)

	// LogAppEnd closes a previously opened app-usage span.
	LogAppEnd(usageID int64, now time.Time) error
}

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Session is one punch-in/punch-out row.
type Session struct {
	ID              int64
	PunchIn         time.Time
	PunchOut        sql.NullTime
	Active          bool
	ProductiveSec   int64
	UnproductiveSec int64
}

// AppUsage is one active-window span within a session.
type AppUsage struct {
	ID             int64
	SessionID      int64
	WindowTitle    string
	Classification string
	StartTime      time.Time
	EndTime        sql.NullTime
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id                     INTEGER PRIMARY KEY AUTOINCREMENT,
		punch_in               DATETIME NOT NULL,
		punch_out              DATETIME,
		is_active              BOOLEAN NOT NULL DEFAULT 1,
		total_productive_sec   INTEGER NOT NULL DEFAULT 0,
		total_unproductive_sec INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_active ON sessions(is_active);

	CREATE TABLE IF NOT EXISTS app_usage (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id     INTEGER NOT NULL,
		window_title   TEXT NOT NULL,
		classification TEXT NOT NULL,
		start_time     DATETIME NOT NULL,
		end_time       DATETIME
	);
	CREATE INDEX IF NOT EXISTS idx_app_usage_session ON app_usage(session_id);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// StartSession creates a new active session (punch in) and returns its id.
// Any session left active by a crash is closed first.
func (s *Store) StartSession(now time.Time) (int64, error) {
	if _, err := s.db.Exec(
		`UPDATE sessions SET is_active = 0, punch_out = ? WHERE is_active = 1`, now,
	); err != nil {
		return 0, fmt.Errorf("close stale sessions: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO sessions (punch_in, is_active) VALUES (?, 1)`, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	return res.LastInsertId()
}

// EndSession marks the session ended (punch out).
func (s *Store) EndSession(sessionID int64, now time.Time) error {
	_, err := s.db.Exec(
		`UPDATE sessions SET punch_out = ?, is_active = 0 WHERE id = ?`,
		now, sessionID,
	)
	return err
}

// AddSessionTime adds whole-second deltas to the session counters.
func (s *Store) AddSessionTime(sessionID, productiveSec, unproductiveSec int64) error {
	if productiveSec == 0 && unproductiveSec == 0 {
		return nil
	}
	_, err := s.db.Exec(
		`UPDATE sessions
		 SET total_productive_sec = total_productive_sec + ?,
		     total_unproductive_sec = total_unproductive_sec + ?
		 WHERE id = ?`,
		productiveSec, unproductiveSec, sessionID,
	)
	return err
}

// LogAppStart opens an app-usage span and returns its id.
func (s *Store) LogAppStart(sessionID int64, title, classification string, now time.Time) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO app_usage (session_id, window_title, classification, start_time)
		 VALUES (?, ?, ?, ?)`,
		sessionID, title, classification, now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// LogAppEnd closes an app-usage span.
func (s *Store) LogAppEnd(usageID int64, now time.Time) error {
	_, err := s.db.Exec(
		`UPDATE app_usage SET end_time = ? WHERE id = ?`, now, usageID,
	)
	return err
}

// Session returns one session row.
func (s *Store) Session(sessionID int64) (Session, error) {
	var sess Session
	err := s.db.QueryRow(
		`SELECT id, punch_in, punch_out, is_active, total_productive_sec, total_unproductive_sec
		 FROM sessions WHERE id = ?`, sessionID,
	).Scan(&sess.ID, &sess.PunchIn, &sess.PunchOut, &sess.Active,
		&sess.ProductiveSec, &sess.UnproductiveSec)
	return sess, err
}

// AppUsageForSession returns the app-usage spans of a session, oldest first.
func (s *Store) AppUsageForSession(sessionID int64) ([]AppUsage, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, window_title, classification, start_time, end_time
		 FROM app_usage WHERE session_id = ? ORDER BY id`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AppUsage
	for rows.Next() {
		var u AppUsage
		if err := rows.Scan(&u.ID, &u.SessionID, &u.WindowTitle, &u.Classification,
			&u.StartTime, &u.EndTime); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
