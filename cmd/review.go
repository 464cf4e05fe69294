package cmd

import (
	"database/sql"
	"fmt"
	"strings"

	"db-shuttle/internal/dialect"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var reviewCmd = &cobra.Command{
	Use:   "review [postgresql|sqlite]",
	Short: "Inspect target tables, columns and row counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := viper.GetString("target.dialect")
		if len(args) > 0 {
			name = args[0]
		}

		d, err := dialect.GetDialect(name)
		if err != nil {
			return err
		}

		db, err := openTarget(d)
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Printf("🔌 Connected to %s\n", strings.ToUpper(d.Name()))

		tables, err := listTableNames(db, d)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			fmt.Println("⚠ No tables found in the database.")
			return nil
		}

		fmt.Printf("\n📊 Found %d Tables:\n", len(tables))
		fmt.Println(strings.Repeat("=", 60))

		for _, table := range tables {
			if err := reviewTable(db, d, table); err != nil {
				return err
			}
		}

		return nil
	},
}

func listTableNames(db *sql.DB, d dialect.Dialect) ([]string, error) {
	rows, err := db.Query(d.TablesQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func reviewTable(db *sql.DB, d dialect.Dialect, table string) error {
	rowCount := "?"
	var n int
	if err := db.QueryRow(d.RowCountQuery(table)).Scan(&n); err == nil {
		rowCount = fmt.Sprintf("%d", n)
	}

	fmt.Printf("\n📁 TABLE: %s (Rows: %s)\n", table, rowCount)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-30s %-20s %-5s %s\n", "Column Name", "Type", "PK", "Nullable")
	fmt.Println(strings.Repeat("-", 60))

	cols, err := db.Query(d.ColumnsQuery(), table)
	if err != nil {
		return fmt.Errorf("failed to query columns for %s: %w", table, err)
	}
	defer cols.Close()

	for cols.Next() {
		var name, dtype, nullable string
		var key sql.NullString
		if err := cols.Scan(&name, &dtype, &nullable, &key); err != nil {
			return fmt.Errorf("failed to scan column (table: %s): %w", table, err)
		}

		pk := ""
		if key.Valid {
			pk = "✅"
		}
		nullDisplay := "❌"
		if nullable == "YES" {
			nullDisplay = "✅"
		}
		fmt.Printf("%-30s %-20s %-5s %s\n", name, dtype, pk, nullDisplay)
	}
	return cols.Err()
}

func init() {
	RootCmd.AddCommand(reviewCmd)
}
