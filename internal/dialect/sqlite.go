package dialect

import (
	"fmt"
)

type SQLiteDialect struct{}

func (d *SQLiteDialect) Name() string {
	return "sqlite"
}

func (d *SQLiteDialect) MapType(sourceType string) string {
	return mapType(sourceType, "BLOB")
}

func (d *SQLiteDialect) AutoIncrementColumn(name string) string {
	return fmt.Sprintf(`"%s" INTEGER PRIMARY KEY AUTOINCREMENT`, name)
}

func (d *SQLiteDialect) DropTableQuery(table string) string {
	// SQLite has no CASCADE drop.
	return fmt.Sprintf(`DROP TABLE IF EXISTS "%s"`, table)
}

func (d *SQLiteDialect) InsertQuery(table string, cols []string, rows int) string {
	return buildInsert(table, cols, rows, d.Placeholder)
}

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) TablesQuery() string {
	return `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
}

func (d *SQLiteDialect) ColumnsQuery() string {
	// Shaped to match the Postgres query: name, type, YES/NO nullable,
	// 'PRI' key marker.
	return `SELECT name, type, CASE "notnull" WHEN 0 THEN 'YES' ELSE 'NO' END, CASE WHEN pk > 0 THEN 'PRI' ELSE NULL END FROM pragma_table_info(?) ORDER BY cid`
}

func (d *SQLiteDialect) RowCountQuery(table string) string {
	return fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table)
}
