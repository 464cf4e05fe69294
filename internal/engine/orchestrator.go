package engine

import (
	"database/sql"

	"db-shuttle/internal/dialect"
	"db-shuttle/internal/schema"
)

// Run migrates every given source table into the target, strictly
// sequentially, one isolated transaction per table. A failing table is
// recorded and the run moves on to the next; the returned slice always has
// exactly one entry per source table, in catalog order.
func Run(source, target *sql.DB, d dialect.Dialect, tables []schema.SourceTable, onProgress func(schema.MigrationResult)) []schema.MigrationResult {
	results := make([]schema.MigrationResult, 0, len(tables))
	for _, t := range tables {
		r := MigrateTable(source, target, d, t)
		results = append(results, r)
		if onProgress != nil {
			onProgress(r)
		}
	}
	return results
}
