package state

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	// sqlite driver for the history database.
	_ "modernc.org/sqlite"
)

// SQLiteStore implements HistoryStore on a local SQLite file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the history database at path and runs pending
// migrations. Use ":memory:" for an ephemeral store.
func Open(path string) (*SQLiteStore, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(on)&_pragma=journal_mode(WAL)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BeginSession registers a new session and returns its UUID.
func (s *SQLiteStore) BeginSession(source string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(`INSERT INTO sessions (id, source) VALUES (?, ?)`, id, source)
	if err != nil {
		return "", fmt.Errorf("failed to begin session: %w", err)
	}
	return id, nil
}

// Append records one evaluated expression.
func (s *SQLiteStore) Append(entry Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO entries (session_id, input, resolver, output, failure_kind)
		VALUES (?, ?, ?, ?, ?)`,
		entry.SessionID, entry.Input, entry.Resolver, entry.Output, entry.FailureKind)
	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (s *SQLiteStore) Recent(limit int, sessionID string) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, session_id, input, resolver, output, failure_kind, created_at
		FROM entries`
	args := []any{}
	if sessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, sessionID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Input, &e.Resolver,
			&e.Output, &e.FailureKind, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
