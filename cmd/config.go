package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"db-shuttle/internal/dialect"

	"github.com/spf13/viper"
)

// PostgresConfig holds target connection settings for a PostgreSQL run.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetPostgresConfig returns the PostgreSQL target configuration with
// defaults applied for anything the config file leaves out.
func GetPostgresConfig() (*PostgresConfig, error) {
	cfg := &PostgresConfig{
		Host:    "localhost",
		Port:    5432,
		User:    "postgres",
		DBName:  "postgres",
		SSLMode: "disable",
	}
	if err := viper.UnmarshalKey("target.postgres", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse target.postgres config: %w", err)
	}
	return cfg, nil
}

// resolveSourcePath locates the source database file. A bare dataset name
// is probed with .sqlite/.db extensions under datasets/, data/ and the
// current directory before giving up with the full list of checked paths.
func resolveSourcePath(name string) (string, error) {
	candidates := []string{name}
	if !strings.HasSuffix(name, ".sqlite") && !strings.HasSuffix(name, ".db") {
		candidates = []string{name + ".sqlite", name + ".db", name}
	}

	var checked []string
	for _, c := range candidates {
		for _, dir := range []string{"datasets", "data", "."} {
			p := filepath.Join(dir, c)
			if _, err := os.Stat(p); err == nil {
				return p, nil
			}
			checked = append(checked, p)
		}
	}
	return "", fmt.Errorf("source SQLite file not found, checked: %v", checked)
}

// openSource opens the source SQLite database read path.
func openSource(name string) (*sql.DB, string, error) {
	path, err := resolveSourcePath(name)
	if err != nil {
		return nil, "", err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open source database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("failed to connect to source database: %w", err)
	}
	return db, path, nil
}

// openTarget opens the target handle for the resolved dialect.
func openTarget(d dialect.Dialect) (*sql.DB, error) {
	switch d.(type) {
	case *dialect.PostgresDialect:
		cfg, err := GetPostgresConfig()
		if err != nil {
			return nil, err
		}
		db, err := sql.Open("postgres", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open target database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to target database: %w", err)
		}
		return db, nil
	default:
		path := viper.GetString("target.sqlite_path")
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create target directory: %w", err)
			}
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, fmt.Errorf("failed to open target database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to target database: %w", err)
		}
		return db, nil
	}
}
