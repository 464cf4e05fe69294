package engine

import (
	"database/sql"
	"fmt"

	"db-shuttle/internal/dialect"
)

// CopyData reads every row of the named table from the source and inserts
// them into the target inside the caller's transaction as one parameterized
// multi-row insert. Columns are matched by name, not position, so a column
// order difference between source and target is harmless. Zero source rows
// is not an error.
func CopyData(source *sql.DB, tx *sql.Tx, d dialect.Dialect, table string) (int, error) {
	rows, err := source.Query(fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		// Some source engines reject identifier quoting here, retry bare.
		rows, err = source.Query(fmt.Sprintf(`SELECT * FROM %s`, table))
		if err != nil {
			return 0, fmt.Errorf("failed to read source rows: %w", err)
		}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return 0, fmt.Errorf("failed to read source columns: %w", err)
	}

	var values []interface{}
	count := 0
	for rows.Next() {
		row := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range row {
			ptrs[i] = &row[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return 0, fmt.Errorf("failed to scan source row: %w", err)
		}
		values = append(values, row...)
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating source rows: %w", err)
	}

	if count == 0 {
		return 0, nil
	}

	if _, err := tx.Exec(d.InsertQuery(table, cols, count), values...); err != nil {
		return 0, fmt.Errorf("bulk insert failed: %w", err)
	}

	return count, nil
}
