// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citegraph/internal/analytics"
	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute citation metrics over the stored graph",
	Long: `Analyze runs read-only analytics over the stored citation graph:
impact factor for a document set, co-citation and bibliographic-coupling
counts for a document pair, and time-window citation networks.`,
}

// loadStoredGraph opens the database behind the --db flag and loads the
// graph once; every analyze and query subcommand starts here.
func loadStoredGraph(cmd *cobra.Command) (*graph.Graph, error) {
	s, err := store.OpenPath(dbPath(cmd))
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.LoadGraph(context.Background())
}

// --- impact-factor subcommand ---

var impactFactorCmd = &cobra.Command{
	Use:   "impact-factor [id...]",
	Short: "Pooled impact factor of a document set for a year",
	Long: `Impact-factor counts the citations the document set received from
documents created in the target year, divided by the number of documents
in the set created in the two preceding years. Identifiers missing from
the graph are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImpactFactor,
}

func runImpactFactor(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		return fmt.Errorf("--year is required")
	}

	g, err := loadStoredGraph(cmd)
	if err != nil {
		return err
	}

	factor, ok := analytics.ImpactFactor(g, args, year)
	if !ok {
		fmt.Printf("No documents in the set were created in %d or %d: no impact factor.\n", year-1, year-2)
		return nil
	}
	fmt.Printf("Impact factor (%d): %.4f\n", year, factor)
	return nil
}

// --- co-citations subcommand ---

var coCitationsCmd = &cobra.Command{
	Use:   "co-citations <id-a> <id-b>",
	Short: "How many documents cite both of two documents",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadStoredGraph(cmd)
		if err != nil {
			return err
		}
		fmt.Println(analytics.CoCitations(g, args[0], args[1]))
		return nil
	},
}

// --- coupling subcommand ---

var couplingCmd = &cobra.Command{
	Use:   "coupling <id-a> <id-b>",
	Short: "How many documents are cited by both of two documents",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadStoredGraph(cmd)
		if err != nil {
			return err
		}
		fmt.Println(analytics.BibliographicCoupling(g, args[0], args[1]))
		return nil
	},
}

// --- network subcommand ---

var networkCmd = &cobra.Command{
	Use:   "network <start-year> <end-year>",
	Short: "Extract the citation network for an inclusive year window",
	Long: `Network extracts the subgraph of citations whose citing and cited
documents were both created within the start-end window (inclusive).
Both bounds are 4-digit years; an inverted or malformed window yields
an empty network.`,
	Args: cobra.ExactArgs(2),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	start, end := args[0], args[1]
	for _, bound := range []string{start, end} {
		if _, err := strconv.Atoi(bound); err != nil || len(bound) != 4 {
			fmt.Fprintf(os.Stderr, "warning: %q is not a 4-digit year\n", bound)
		}
	}

	g, err := loadStoredGraph(cmd)
	if err != nil {
		return err
	}

	net := analytics.CitationNetwork(g, start, end)
	return writeGraphOutput(cmd, net)
}

// writeGraphOutput prints a result graph as a table, or as YAML/JSON to
// a file when --output is set.
func writeGraphOutput(cmd *cobra.Command, g *graph.Graph) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		return exportToFile(g, output)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return store.ExportJSON(g, os.Stdout)
	}

	printEdgeTable(g)
	return nil
}

func init() {
	networkCmd.Flags().String("output", "", "write the network to a YAML or JSON file instead of stdout")
	networkCmd.Flags().Bool("json", false, "print the network as JSON")
	impactFactorCmd.Flags().Int("year", 0, "target year (required)")

	analyzeCmd.AddCommand(impactFactorCmd)
	analyzeCmd.AddCommand(coCitationsCmd)
	analyzeCmd.AddCommand(couplingCmd)
	analyzeCmd.AddCommand(networkCmd)

	rootCmd.AddCommand(analyzeCmd)
}
