package dialect

import (
	"fmt"
	"strings"
)

// GetDialect returns the Dialect implementation for the requested target.
// Anything other than the two supported engines is an error.
func GetDialect(target string) (Dialect, error) {
	switch strings.ToLower(target) {
	case "postgresql", "postgres":
		return &PostgresDialect{}, nil
	case "sqlite":
		return &SQLiteDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported target database: %q (use postgresql or sqlite)", target)
	}
}

// Ensure interface implementation
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*SQLiteDialect)(nil)
