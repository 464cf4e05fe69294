package dialect

import (
	"fmt"
)

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string {
	return "postgresql"
}

func (d *PostgresDialect) MapType(sourceType string) string {
	return mapType(sourceType, "BYTEA")
}

func (d *PostgresDialect) AutoIncrementColumn(name string) string {
	// SERIAL carries identity semantics, superseding the declared base type.
	return fmt.Sprintf(`"%s" SERIAL PRIMARY KEY`, name)
}

func (d *PostgresDialect) DropTableQuery(table string) string {
	// CASCADE removes dependent objects left over from a previous run.
	return fmt.Sprintf(`DROP TABLE IF EXISTS "%s" CASCADE`, table)
}

func (d *PostgresDialect) InsertQuery(table string, cols []string, rows int) string {
	return buildInsert(table, cols, rows, d.Placeholder)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) TablesQuery() string {
	return `SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_type = 'BASE TABLE' ORDER BY table_name`
}

func (d *PostgresDialect) ColumnsQuery() string {
	// Subquery fetches the PRIMARY KEY marker so the result shape matches
	// SQLite's pragma_table_info output.
	return `SELECT
    c.column_name,
    c.data_type,
    c.is_nullable,
    (SELECT 'PRI' FROM information_schema.table_constraints tc
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name
     WHERE tc.constraint_type = 'PRIMARY KEY'
     AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1) AS column_key
FROM information_schema.columns c
WHERE c.table_schema = 'public' AND c.table_name = $1
ORDER BY c.ordinal_position`
}

func (d *PostgresDialect) RowCountQuery(table string) string {
	return fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table)
}
