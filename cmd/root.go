package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	sourceName string
	targetName string
)

var RootCmd = &cobra.Command{
	Use:   "db-shuttle",
	Short: "A SQLite schema-and-data migrator",
	Long: `
  ____  ____    ____  _   _ _   _ _____ _____ _     _____
 |  _ \| __ )  / ___|| | | | | | |_   _|_   _| |   | ____|
 | | | |  _ \  \___ \| |_| | | | | | |   | | | |   |  _|
 | |_| | |_) |  ___) |  _  | |_| | | |   | | | |___| |___
 |____/|____/  |____/|_| |_|\___/  |_|   |_| |_____|_____|

DB SHUTTLE 🚚 - SQLite -> PostgreSQL/SQLite Migrator
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-shuttle.yaml)")
	RootCmd.PersistentFlags().StringVar(&sourceName, "source", "", "Source SQLite database file or dataset name")
	RootCmd.PersistentFlags().StringVar(&targetName, "target", "", "Target dialect (postgresql or sqlite)")

	// Bind flags to viper (Flag > Config > Default)
	viper.BindPFlag("source.path", RootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("target.dialect", RootCmd.PersistentFlags().Lookup("target"))

	viper.SetDefault("target.dialect", "postgresql")
	viper.SetDefault("target.sqlite_path", "./data/shuttle.db")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("db-shuttle")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
