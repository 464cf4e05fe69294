package engine

import (
	"database/sql"
	"fmt"

	"db-shuttle/internal/dialect"
	"db-shuttle/internal/schema"
)

// MigrateTable moves one table into the target under a single fresh
// transaction: drop if exists, create, copy rows. The transaction commits
// only when all three steps succeed; any failure rolls it back and is
// captured in the result, so the target never keeps a half-created table
// and other tables are unaffected.
func MigrateTable(source, target *sql.DB, d dialect.Dialect, t schema.SourceTable) schema.MigrationResult {
	result := schema.MigrationResult{TableName: t.Name}

	fail := func(step string, err error) schema.MigrationResult {
		result.Status = schema.StatusFailed
		result.ErrorMsg = fmt.Sprintf("%s: %v", step, err)
		return result
	}

	tx, err := target.Begin()
	if err != nil {
		return fail("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(d.DropTableQuery(t.Name)); err != nil {
		return fail("drop table", err)
	}

	createSQL := schema.Transpile(t, d)
	if _, ok := d.(*dialect.SQLiteDialect); ok {
		// SQLite to SQLite needs no rewriting, reuse the source DDL as-is.
		createSQL = t.RawSQL
	}
	if _, err := tx.Exec(createSQL); err != nil {
		return fail("create table", err)
	}

	copied, err := CopyData(source, tx, d, t.Name)
	if err != nil {
		return fail("copy data", err)
	}

	if err := tx.Commit(); err != nil {
		return fail("commit", err)
	}

	result.Status = schema.StatusSucceeded
	result.RowsCopied = copied
	return result
}
