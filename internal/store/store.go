package store

import (
	"database/sql"
	"fmt"

	"github.com/renshuapp/renshu/internal/config"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the renshu database.
func Open() (*DB, error) {
	paths := config.GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("creating data dirs: %w", err)
	}

	conn, err := sql.Open("sqlite", paths.DBFile+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Performance pragmas
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the raw sql.DB for direct queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// migrate runs all schema migrations.
func (db *DB) migrate() error {
	migrations := []string{
		// One row per calendar day the user showed up. The PRIMARY KEY
		// is what deduplicates repeat visits within a day.
		`CREATE TABLE IF NOT EXISTS visits (
			date TEXT PRIMARY KEY
		)`,
		// Individual study sessions (drills, timed challenges).
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			deck TEXT NOT NULL,
			mode TEXT NOT NULL DEFAULT 'drill',
			answered INTEGER DEFAULT 0,
			correct INTEGER DEFAULT 0,
			duration_secs INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		// User-created theme templates.
		`CREATE TABLE IF NOT EXISTS custom_themes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			background TEXT NOT NULL,
			main TEXT NOT NULL,
			secondary TEXT NOT NULL,
			light INTEGER DEFAULT 0,
			wallpaper_id TEXT DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		// User-created wallpapers referenced by themes.
		`CREATE TABLE IF NOT EXISTS custom_wallpapers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			image_ref TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		// Key-value store for preferences and misc state.
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}
