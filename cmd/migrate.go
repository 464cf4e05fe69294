package cmd

import (
	"fmt"
	"log"
	"strings"
	"time"

	"db-shuttle/internal/dialect"
	"db-shuttle/internal/engine"
	"db-shuttle/internal/schema"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the source SQLite database into the target",
	RunE: func(cmd *cobra.Command, args []string) error {
		source := viper.GetString("source.path")
		if source == "" {
			return fmt.Errorf("source.path is required (via flag or config)")
		}

		// Fatal before any table is touched: unknown dialect or
		// unreachable source ends the run with a non-zero exit.
		d, err := dialect.GetDialect(viper.GetString("target.dialect"))
		if err != nil {
			return err
		}

		sourceDB, sourcePath, err := openSource(source)
		if err != nil {
			return err
		}
		defer sourceDB.Close()

		targetDB, err := openTarget(d)
		if err != nil {
			return err
		}
		defer targetDB.Close()

		fmt.Printf("Source: %s\n", sourcePath)
		fmt.Printf("Target: %s\n", strings.ToUpper(d.Name()))

		log.Println("Reading source catalog...")
		tables, err := schema.ListTables(sourceDB)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			log.Println("No tables found.")
			return nil
		}
		log.Printf("Found %d tables.", len(tables))

		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(len(tables)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Migrating: "
		})

		results := engine.Run(sourceDB, targetDB, d, tables, func(r schema.MigrationResult) {
			bar.Incr()
		})

		uiprogress.Stop()

		elapsed := time.Since(start)

		// Final Report
		fmt.Println("\n📊 Migration Report:")
		succeeded := 0
		totalRows := 0
		for i, r := range results {
			icon := "✓"
			if r.Status != schema.StatusSucceeded {
				icon = "✗"
			}
			fmt.Printf("[%s] [%02d/%02d] %-20s : %d rows - %s\n",
				icon, i+1, len(results), r.TableName, r.RowsCopied, r.Status)
			if r.ErrorMsg != "" {
				fmt.Printf("    └ Error: %s\n", r.ErrorMsg)
			}
			if r.Status == schema.StatusSucceeded {
				succeeded++
				totalRows += r.RowsCopied
			}
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Tables migrated: %d/%d, rows copied: %d\n", succeeded, len(results), totalRows)
		log.Printf("Migration done! Time Elapsed: %s", elapsed)

		// Per-table failures are reported, not escalated to exit status.
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
