package schema

// SourceTable is one user table read from the source catalog: its name and
// the verbatim CREATE TABLE statement the source engine stored for it.
type SourceTable struct {
	Name   string
	RawSQL string
}

// ColumnSpec is one column definition recovered from a CREATE TABLE body.
// TypeToken holds the raw type and constraint text following the name,
// exactly as written in the source DDL.
type ColumnSpec struct {
	Name          string
	TypeToken     string
	PrimaryKey    bool
	AutoIncrement bool
	HasDefault    bool
}

// Migration statuses
const (
	StatusSucceeded = "OK"
	StatusFailed    = "FAILED"
)

// MigrationResult is the per-table outcome collected into the run report.
type MigrationResult struct {
	TableName  string
	Status     string
	RowsCopied int
	ErrorMsg   string
}
