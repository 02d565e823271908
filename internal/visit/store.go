package visit

import (
	"database/sql"
	"fmt"
	"time"
)

// Session is one completed drill or timed challenge.
type Session struct {
	ID           int
	Deck         string
	Mode         string
	Answered     int
	Correct      int
	DurationSecs int
	CreatedAt    time.Time
}

// Store handles visit and session persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new visit store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordVisit marks the given day as visited. Repeat visits within a day are
// deduplicated by the primary key.
func (s *Store) RecordVisit(day time.Time) error {
	date := day.UTC().Format(DateFormat)
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO visits (date) VALUES (?)`, date); err != nil {
		return fmt.Errorf("recording visit for %s: %w", date, err)
	}
	return nil
}

// RecordSession stores a finished study session and records the day's visit.
// Returns the new session ID.
func (s *Store) RecordSession(deck, mode string, answered, correct int, duration time.Duration, now time.Time) (int, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions (deck, mode, answered, correct, duration_secs) VALUES (?, ?, ?, ?, ?)`,
		deck, mode, answered, correct, int(duration.Seconds()),
	)
	if err != nil {
		return 0, fmt.Errorf("recording session: %w", err)
	}
	id, _ := res.LastInsertId()

	if err := s.RecordVisit(now); err != nil {
		return int(id), err
	}
	return int(id), nil
}

// VisitDatesDesc returns all visit dates, most recent first.
// Used for streak computation.
func (s *Store) VisitDatesDesc() ([]string, error) {
	rows, err := s.db.Query(`SELECT date FROM visits ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// VisitSet returns visit dates as a lookup set for grid rendering.
func (s *Store) VisitSet() (map[string]bool, error) {
	dates, err := s.VisitDatesDesc()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set, nil
}

// SessionsSince returns sessions created on or after since (by date), ordered DESC.
// since must be in UTC to match the UTC dates stored by SQLite's CURRENT_TIMESTAMP.
func (s *Store) SessionsSince(since time.Time) ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT id, deck, mode, answered, correct, duration_secs, created_at
		 FROM sessions WHERE DATE(created_at) >= ? ORDER BY created_at DESC`,
		since.Format(DateFormat),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessionRows(rows)
}

// SessionCount returns the total number of recorded sessions.
func (s *Store) SessionCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n)
	return n, err
}

func scanSessionRows(rows *sql.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdStr string
		if err := rows.Scan(&sess.ID, &sess.Deck, &sess.Mode, &sess.Answered, &sess.Correct, &sess.DurationSecs, &createdStr); err != nil {
			return nil, err
		}
		sess.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdStr)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
