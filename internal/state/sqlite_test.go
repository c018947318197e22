package state

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SessionAndEntries(t *testing.T) {
	store := openTestStore(t)

	sessionID, err := store.BeginSession("repl")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	require.NoError(t, store.Append(Entry{
		SessionID: sessionID,
		Input:     "2 + 2",
		Resolver:  "math",
		Output:    "4",
	}))
	require.NoError(t, store.Append(Entry{
		SessionID:   sessionID,
		Input:       "1 / 0",
		Resolver:    "math",
		FailureKind: "division-by-zero",
	}))

	entries, err := store.Recent(10, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "1 / 0", entries[0].Input)
	assert.Equal(t, "division-by-zero", entries[0].FailureKind)
	assert.Equal(t, "2 + 2", entries[1].Input)
	assert.Equal(t, "4", entries[1].Output)
}

func TestStore_RecentFiltersBySession(t *testing.T) {
	store := openTestStore(t)

	first, err := store.BeginSession("eval")
	require.NoError(t, err)
	second, err := store.BeginSession("eval")
	require.NoError(t, err)

	require.NoError(t, store.Append(Entry{SessionID: first, Input: "1 + 1", Output: "2"}))
	require.NoError(t, store.Append(Entry{SessionID: second, Input: "2 + 2", Output: "4"}))

	entries, err := store.Recent(10, first)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1 + 1", entries[0].Input)
}

func TestStore_RecentLimit(t *testing.T) {
	store := openTestStore(t)

	sessionID, err := store.BeginSession("run")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(Entry{SessionID: sessionID, Input: "x", Output: "1"}))
	}

	entries, err := store.Recent(3, "")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestStore_Version(t *testing.T) {
	store := openTestStore(t)

	version, err := store.Version()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, version, int64(1))
}

func TestStore_AppendPropagatesDBErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("INSERT INTO entries").WillReturnError(errors.New("disk full"))

	store := &SQLiteStore{db: db}
	err = store.Append(Entry{SessionID: "s", Input: "2 + 2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}
