// internal/storage/sqlite.go
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store — хранилище пройденных сессий
type Store struct {
	db *sql.DB
}

// SessionRecord — итог одной игровой сессии
type SessionRecord struct {
	ID          string
	Seed        int64
	StartedAt   time.Time
	Elapsed     float64 // секунды игрового времени
	BallsThrown int
	PinsKnocked int
	Cleared     bool
}

// Open открывает или создаёт базу. "~" в начале пути раскрывается в домашний каталог.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			elapsed REAL NOT NULL,
			balls_thrown INTEGER NOT NULL DEFAULT 0,
			pins_knocked INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_best ON sessions(cleared, elapsed);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession записывает итог сессии. Повторная запись с тем же ID заменяет старую.
func (s *Store) SaveSession(rec SessionRecord) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO sessions
		 (id, seed, started_at, elapsed, balls_thrown, pins_knocked, cleared)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Seed, rec.StartedAt.UnixMilli(), rec.Elapsed,
		rec.BallsThrown, rec.PinsKnocked, rec.Cleared,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session %s: %w", rec.ID, err)
	}
	return nil
}

// RecentSessions — последние сессии, новые первыми
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, seed, started_at, elapsed, balls_thrown, pins_knocked, cleared
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// BestClear — самая быстрая пройденная сессия. ok=false, если таких нет.
func (s *Store) BestClear() (SessionRecord, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, started_at, elapsed, balls_thrown, pins_knocked, cleared
		 FROM sessions
		 WHERE cleared = 1
		 ORDER BY elapsed ASC
		 LIMIT 1`,
	)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, false, nil
	}
	if err != nil {
		return SessionRecord{}, false, err
	}
	return rec, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (SessionRecord, error) {
	var rec SessionRecord
	var startedAt int64
	if err := row.Scan(&rec.ID, &rec.Seed, &startedAt, &rec.Elapsed,
		&rec.BallsThrown, &rec.PinsKnocked, &rec.Cleared); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("storage: cannot scan session: %w", err)
	}
	rec.StartedAt = time.UnixMilli(startedAt)
	return rec, nil
}
