// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citegraph/internal/analytics"
	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/internal/store"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <a.db> <b.db>",
	Short: "Merge two stored citation graphs into one",
	Long: `Merge unions the node and edge sets of two stored graphs; where both
graphs hold the same node or citation, the second database's attributes
win. Graphs of different variants (directed with undirected) do not
merge. The result is written to the database given by --out, or printed
when --out is omitted.`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	g1, err := loadGraphFrom(ctx, args[0])
	if err != nil {
		return err
	}
	g2, err := loadGraphFrom(ctx, args[1])
	if err != nil {
		return err
	}

	merged := analytics.Merge(g1, g2)
	if merged == nil {
		return fmt.Errorf("cannot merge %s and %s: the graphs are different variants", args[0], args[1])
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		printEdgeTable(merged)
		return nil
	}

	s, err := store.OpenPath(out)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.SaveGraph(ctx, merged); err != nil {
		return err
	}
	fmt.Printf("Merged %d nodes, %d edges into %s\n", merged.NodeCount(), merged.EdgeCount(), out)
	return nil
}

func loadGraphFrom(ctx context.Context, path string) (*graph.Graph, error) {
	s, err := store.OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.LoadGraph(ctx)
}

func init() {
	mergeCmd.Flags().String("out", "", "database path for the merged graph")

	rootCmd.AddCommand(mergeCmd)
}
