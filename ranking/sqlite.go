package ranking

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the ranking in a SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path. A leading ~ expands to
// the home directory and missing parent directories are created.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("ranking: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ranking: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ranking: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ranking: cannot connect to database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ranking: migration failed: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS ranking (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			game_time TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_ranking_top ON ranking(score DESC, game_time ASC);
	`)
	return err
}

// Add inserts r.
func (s *SQLiteStore) Add(r Record) error {
	_, err := s.db.Exec(
		"INSERT INTO ranking (username, game_time, score) VALUES (?, ?, ?)",
		r.Username, r.GameTime, r.Score,
	)
	if err != nil {
		return fmt.Errorf("ranking: cannot save record: %w", err)
	}
	return nil
}

// All returns every record, best first.
func (s *SQLiteStore) All() ([]Record, error) {
	rows, err := s.db.Query(
		"SELECT username, game_time, score FROM ranking ORDER BY score DESC, length(game_time) ASC, game_time ASC, id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("ranking: cannot query records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Username, &r.GameTime, &r.Score); err != nil {
			return nil, fmt.Errorf("ranking: cannot scan record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
