package schema

import (
	"database/sql"
	"fmt"
)

// ListTables returns every user table and its creation statement from the
// source catalog, in catalog order. Internal sqlite_* tables are excluded.
// Read-only: the source is never modified.
func ListTables(db *sql.DB) ([]SourceTable, error) {
	rows, err := db.Query(`SELECT name, sql FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return nil, fmt.Errorf("failed to query source catalog: %w", err)
	}
	defer rows.Close()

	var tables []SourceTable
	for rows.Next() {
		var name string
		var raw sql.NullString
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		tables = append(tables, SourceTable{Name: name, RawSQL: raw.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog: %w", err)
	}

	return tables, nil
}
