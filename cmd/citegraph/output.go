// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/internal/store"
)

// printEdgeTable writes a result graph as a human-readable citation
// table to stdout. Query.max_rows from the config caps the row count;
// zero prints everything.
func printEdgeTable(g *graph.Graph) {
	edges := g.Edges()
	if len(edges) == 0 {
		fmt.Println("No citations found.")
		return
	}

	fmt.Fprintf(os.Stdout, "%-45s  %-45s  %-10s  %s\n", "Citing", "Cited", "Creation", "Timespan")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 115))

	maxRows := viper.GetInt("query.max_rows")
	shown := 0
	for _, e := range edges {
		if maxRows > 0 && shown >= maxRows {
			break
		}
		creation, _ := g.Creation(e.Citing)
		ts, _ := g.Timespan(e.Citing, e.Cited)
		fmt.Fprintf(os.Stdout, "%-45s  %-45s  %-10s  %s\n",
			truncate(e.Citing, 45), truncate(e.Cited, 45), creation, ts)
		shown++
	}

	fmt.Fprintf(os.Stdout, "\n%d citations, %d documents\n", g.EdgeCount(), g.NodeCount())
	if maxRows > 0 && len(edges) > maxRows {
		fmt.Fprintf(os.Stdout, "(%d rows not shown)\n", len(edges)-maxRows)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// exportToFile writes a graph to path, choosing YAML or JSON from the
// file extension.
func exportToFile(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		err = store.ExportYAML(g, f)
	case ".json":
		err = store.ExportJSON(g, f)
	default:
		return fmt.Errorf("unsupported export format %q: use .yaml or .json", ext)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d citations to %s\n", g.EdgeCount(), path)
	return nil
}
