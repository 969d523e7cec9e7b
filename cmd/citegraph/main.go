// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citegraph CLI.
// Implements: prd001-ingestion, prd002-analytics, prd003-query (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the citegraph CLI.
var rootCmd = &cobra.Command{
	Use:   "citegraph",
	Short: "Citation graph analytics and query engine",
	Long: `citegraph builds a citation graph from bibliographic records and answers
analytical and search queries over it: impact factor, co-citation and
bibliographic-coupling counts, time-window networks, graph merging, and
wildcard/comparison queries against citation attributes.

Each stage is a subcommand: ingest builds and stores the graph, analyze
computes metrics over it, query searches and filters it, and export
writes it out as YAML or JSON.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citegraph.yaml or ~/.config/citegraph/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "path to the graph database (default: <index_dir>/citations.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citegraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citegraph"))
		}
	}

	viper.SetEnvPrefix("CITEGRAPH")
	viper.AutomaticEnv()

	viper.SetDefault("store.index_dir", "index")
	viper.SetDefault("ingest.data_dir", "data")
	viper.SetDefault("query.queries_dir", "queries")
	viper.SetDefault("query.max_rows", 0)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dbPath resolves the database location: the --db flag wins, then the
// configured index directory.
func dbPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		return path
	}
	return filepath.Join(viper.GetString("store.index_dir"), "citations.db")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
