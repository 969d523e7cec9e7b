// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citegraph/internal/ingest"
	"github.com/pdiddy/citegraph/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [records.csv]",
	Short: "Build the citation graph from a CSV of citation records",
	Long: `Ingest reads 4-field citation records (citing, cited, creation,
timespan) from a CSV file, derives each cited document's date from the
citing date and the timespan, and stores the resulting graph in the
SQLite database. Malformed rows are skipped and counted, not fatal.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = filepath.Join(viper.GetString("ingest.data_dir"), path)
		}
	}

	records, err := ingest.ReadCSVFile(path)
	if err != nil {
		return err
	}

	g, summary := ingest.Build(records, os.Stdout)

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if !dryRun {
		s, err := store.OpenPath(dbPath(cmd))
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.SaveGraph(context.Background(), g); err != nil {
			return err
		}
		fmt.Printf("Stored %d nodes, %d edges in %s\n", g.NodeCount(), g.EdgeCount(), dbPath(cmd))
	}

	if summary.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d record(s) skipped\n", summary.Skipped)
	}
	return nil
}

func init() {
	ingestCmd.Flags().Bool("dry-run", false, "build the graph without storing it")

	rootCmd.AddCommand(ingestCmd)
}
