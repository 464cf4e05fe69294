package dialect

// Dialect abstracts target-database-specific SQL generation and metadata
// lookups for the two supported engines.
type Dialect interface {
	Name() string

	// Type Mapping (DDL Transpilation)
	MapType(sourceType string) string
	AutoIncrementColumn(name string) string

	// Query Generation
	DropTableQuery(table string) string
	InsertQuery(table string, cols []string, rows int) string
	Placeholder(index int) string

	// Metadata Queries (Schema Introspection)
	TablesQuery() string
	ColumnsQuery() string // takes the table name as its single parameter
	RowCountQuery(table string) string
}
