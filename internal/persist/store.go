package persist

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles persistence of newsletter subscribers using SQLite
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a new SQLite-backed persistence store at the given path
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &Store{db: db}

	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return s, nil
}

// init creates the necessary tables if they don't exist
func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS subscribers (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			email       TEXT NOT NULL UNIQUE,
			created_at  TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_subscribers_created ON subscribers(created_at);
	`)
	return err
}

// AddSubscriber records a signup. It reports false when the email is
// already subscribed.
func (s *Store) AddSubscriber(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Format(time.RFC3339)

	result, err := s.db.Exec(`
		INSERT INTO subscribers (email, created_at)
		VALUES (?, ?)
		ON CONFLICT(email) DO NOTHING
	`, email, now)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// CountSubscribers returns the number of stored subscribers.
func (s *Store) CountSubscribers() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM subscribers`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// RecentSubscribers lists the most recent signups, newest first.
func (s *Store) RecentSubscribers(limit int) ([]Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, email, created_at
		FROM subscribers
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Subscriber
	for rows.Next() {
		var sub Subscriber
		var createdAt string
		if err := rows.Scan(&sub.ID, &sub.Email, &createdAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			sub.CreatedAt = t
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
