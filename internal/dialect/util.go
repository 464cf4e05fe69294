package dialect

import (
	"fmt"
	"strings"
)

// GeneratePlaceholders builds the VALUES placeholder groups for a multi-row
// insert: "($1, $2), ($3, $4)" for Postgres, "(?, ?), (?, ?)" for SQLite.
// placeholderFunc returns the placeholder for a given zero-based index.
func GeneratePlaceholders(rows, cols int, placeholderFunc func(int) string) string {
	groups := make([]string, rows)
	idx := 0
	for r := 0; r < rows; r++ {
		ph := make([]string, cols)
		for c := 0; c < cols; c++ {
			ph[c] = placeholderFunc(idx)
			idx++
		}
		groups[r] = "(" + strings.Join(ph, ", ") + ")"
	}
	return strings.Join(groups, ", ")
}

// buildInsert generates one parameterized multi-row INSERT keyed by column
// name. Every identifier is double-quoted for exact-match resolution.
func buildInsert(table string, cols []string, rows int, placeholderFunc func(int) string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = `"` + c + `"`
	}
	return fmt.Sprintf(`INSERT INTO "%s" (%s) VALUES %s`,
		table, strings.Join(quoted, ", "), GeneratePlaceholders(rows, len(cols), placeholderFunc))
}

// mapType applies the shared source-to-target type rewrite rules. Matching
// is case-insensitive substring, first match wins; a token matching no rule
// passes through unchanged.
func mapType(sourceType, binaryType string) string {
	t := strings.ToUpper(sourceType)
	switch {
	case strings.Contains(t, "DECIMAL") || strings.Contains(t, "NUMERIC"):
		// Unconstrained NUMERIC: narrow source declarations such as
		// DECIMAL(1,1) overflow on real data if precision is carried over.
		return "NUMERIC"
	case strings.Contains(t, "INT"):
		return "INTEGER"
	case strings.Contains(t, "CHAR"), strings.Contains(t, "TEXT"), strings.Contains(t, "CLOB"):
		return "TEXT"
	case strings.Contains(t, "BLOB"):
		return binaryType
	case strings.Contains(t, "REAL"), strings.Contains(t, "DOUBLE"), strings.Contains(t, "FLOAT"):
		return "DOUBLE PRECISION"
	default:
		return sourceType
	}
}
