// Package state persists evaluation history to a local SQLite database.
// The history store is strictly observational: resolution never depends on
// it, and callers treat open or write failures as warnings.
package state

import "time"

// Entry is one evaluated expression as recorded in history.
type Entry struct {
	ID          int64
	SessionID   string
	Input       string
	Resolver    string
	Output      string
	FailureKind string
	CreatedAt   time.Time
}

// Session identifies one run of the CLI (a REPL session, one eval
// invocation, one batch file run).
type Session struct {
	ID        string
	Source    string // "repl", "eval", "run", "serve"
	StartedAt time.Time
}

// HistoryStore records sessions and their evaluated expressions.
type HistoryStore interface {
	// BeginSession registers a new session and returns its ID.
	BeginSession(source string) (string, error)

	// Append records one evaluated expression.
	Append(entry Entry) error

	// Recent returns the most recent entries, newest first. A non-empty
	// sessionID restricts the listing to that session.
	Recent(limit int, sessionID string) ([]Entry, error)

	Close() error
}
