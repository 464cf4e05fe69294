package engine_test

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"db-shuttle/internal/dialect"
	"db-shuttle/internal/engine"
	"db-shuttle/internal/schema"

	// sqlite driver for test databases.
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedSource creates a users table with n generated rows and returns the
// source handle.
func seedSource(t *testing.T, n int) *sql.DB {
	t.Helper()
	src := newTestDB(t, "source.db")

	_, err := src.Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, email TEXT)`)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		_, err := src.Exec(`INSERT INTO users (name, email) VALUES (?, ?)`,
			gofakeit.Name(), gofakeit.Email())
		require.NoError(t, err)
	}
	return src
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table)).Scan(&n))
	return n
}

func TestRun_MigratesAllTables(t *testing.T) {
	src := seedSource(t, 3)
	_, err := src.Exec(`CREATE TABLE tags (id INTEGER, label TEXT)`)
	require.NoError(t, err)
	_, err = src.Exec(`INSERT INTO tags VALUES (1, 'a'), (2, 'b')`)
	require.NoError(t, err)

	target := newTestDB(t, "target.db")
	d := &dialect.SQLiteDialect{}

	tables, err := schema.ListTables(src)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	progress := 0
	results := engine.Run(src, target, d, tables, func(schema.MigrationResult) { progress++ })

	require.Len(t, results, 2)
	assert.Equal(t, 2, progress)
	for _, r := range results {
		assert.Equal(t, schema.StatusSucceeded, r.Status, "table %s: %s", r.TableName, r.ErrorMsg)
		assert.Empty(t, r.ErrorMsg)
	}

	assert.Equal(t, 3, countRows(t, target, "users"))
	assert.Equal(t, 2, countRows(t, target, "tags"))

	// Values survive the copy intact.
	var srcName, dstName string
	require.NoError(t, src.QueryRow(`SELECT name FROM users WHERE id = 1`).Scan(&srcName))
	require.NoError(t, target.QueryRow(`SELECT name FROM users WHERE id = 1`).Scan(&dstName))
	assert.Equal(t, srcName, dstName)
}

func TestRun_FailureDoesNotStopOtherTables(t *testing.T) {
	src := seedSource(t, 2)
	target := newTestDB(t, "target.db")
	d := &dialect.SQLiteDialect{}

	tables := []schema.SourceTable{
		{Name: "broken", RawSQL: `CREATE TABLE broken (`},
		{Name: "users", RawSQL: `CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, email TEXT)`},
	}

	results := engine.Run(src, target, d, tables, nil)
	require.Len(t, results, 2, "one outcome per source table, always")

	assert.Equal(t, schema.StatusFailed, results[0].Status)
	assert.NotEmpty(t, results[0].ErrorMsg)
	assert.Equal(t, schema.StatusSucceeded, results[1].Status)
	assert.Equal(t, 2, results[1].RowsCopied)

	// The failed table left nothing behind in the target.
	var n int
	err := target.QueryRow(`SELECT COUNT(*) FROM broken`).Scan(&n)
	assert.Error(t, err)
	assert.Equal(t, 2, countRows(t, target, "users"))
}

func TestMigrateTable_ReplacesExistingTable(t *testing.T) {
	src := seedSource(t, 4)
	target := newTestDB(t, "target.db")
	d := &dialect.SQLiteDialect{}

	// Stale table from a previous run, different shape and contents.
	_, err := target.Exec(`CREATE TABLE users (stale TEXT); INSERT INTO users VALUES ('old')`)
	require.NoError(t, err)

	tables, err := schema.ListTables(src)
	require.NoError(t, err)

	r := engine.MigrateTable(src, target, d, tables[0])
	require.Equal(t, schema.StatusSucceeded, r.Status, r.ErrorMsg)
	assert.Equal(t, 4, r.RowsCopied)
	assert.Equal(t, 4, countRows(t, target, "users"))

	var email string
	require.NoError(t, target.QueryRow(`SELECT email FROM users WHERE id = 1`).Scan(&email))
	assert.NotEqual(t, "old", email)
}

func TestMigrateTable_RollsBackOnCopyFailure(t *testing.T) {
	src := newTestDB(t, "source.db")
	_, err := src.Exec(`
		CREATE TABLE items (id INTEGER, val TEXT);
		INSERT INTO items VALUES (1, 'x'), (1, 'y');
	`)
	require.NoError(t, err)

	target := newTestDB(t, "target.db")
	d := &dialect.SQLiteDialect{}

	// The copy violates the stricter target DDL, the whole table must roll back.
	bad := schema.SourceTable{Name: "items", RawSQL: `CREATE TABLE items (id INTEGER PRIMARY KEY, val TEXT)`}
	r := engine.MigrateTable(src, target, d, bad)

	assert.Equal(t, schema.StatusFailed, r.Status)
	assert.Contains(t, r.ErrorMsg, "copy data")

	// No half-created table for that name.
	var n int
	err = target.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n)
	assert.Error(t, err)
}

func TestCopyData_EmptyTable(t *testing.T) {
	src := newTestDB(t, "source.db")
	_, err := src.Exec(`CREATE TABLE empty (id INTEGER, name TEXT)`)
	require.NoError(t, err)

	target := newTestDB(t, "target.db")
	_, err = target.Exec(`CREATE TABLE empty (id INTEGER, name TEXT)`)
	require.NoError(t, err)

	tx, err := target.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	copied, err := engine.CopyData(src, tx, &dialect.SQLiteDialect{}, "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, copied)
}

func TestCopyData_MatchesColumnsByName(t *testing.T) {
	src := newTestDB(t, "source.db")
	_, err := src.Exec(`
		CREATE TABLE pairs (a TEXT, b TEXT);
		INSERT INTO pairs VALUES ('a1', 'b1'), ('a2', 'b2'), ('a3', 'b3');
	`)
	require.NoError(t, err)

	// Target declares the columns in the opposite order.
	target := newTestDB(t, "target.db")
	_, err = target.Exec(`CREATE TABLE pairs (b TEXT, a TEXT)`)
	require.NoError(t, err)

	tx, err := target.Begin()
	require.NoError(t, err)
	copied, err := engine.CopyData(src, tx, &dialect.SQLiteDialect{}, "pairs")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 3, copied)

	var a, b string
	require.NoError(t, target.QueryRow(`SELECT a, b FROM pairs WHERE a = 'a2'`).Scan(&a, &b))
	assert.Equal(t, "a2", a)
	assert.Equal(t, "b2", b)
}
