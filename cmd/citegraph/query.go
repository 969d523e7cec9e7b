// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/internal/query"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search and filter citations in the stored graph",
	Long: `Query evaluates a search or filter expression against one citation
field (citing, cited, creation, timespan) and returns the matching
sub-network. Search queries support "*" wildcards and the boolean
operators and/or/not; filter queries compose string comparisons
(<=, >=, ==, !=, <, >) with the same operators.`,
}

// --- search subcommand ---

var querySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Wildcard search over a citation field",
	Long: `Search matches a field value against the whole query term: "ab*"
matches "abc" but not "xab", and a term with no wildcard must match the
entire value. Terms are case-folded.

Example: citegraph query search "10.1234* and not *corrigendum" --field citing`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, "search", strings.Join(args, " "))
	},
}

// --- filter subcommand ---

var queryFilterCmd = &cobra.Command{
	Use:   "filter <query>",
	Short: "Comparison filter over a citation field",
	Long: `Filter compares a field value against string literals. The field is
the implicit left-hand side of every comparison.

Example: citegraph query filter ">= 2015 and <= 2018" --field creation`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, "filter", strings.Join(args, " "))
	},
}

func runQuery(cmd *cobra.Command, kind, text string) error {
	fieldName, _ := cmd.Flags().GetString("field")
	field, ok := query.ParseField(fieldName)
	if !ok {
		return fmt.Errorf("unknown field %q: use citing, cited, creation, or timespan", fieldName)
	}

	var expr query.Expr
	var err error
	if kind == "search" {
		expr, err = query.CompileSearch(text)
	} else {
		expr, err = query.CompileFilter(text)
	}
	if err != nil {
		return err
	}

	g, err := loadStoredGraph(cmd)
	if err != nil {
		return err
	}

	result := query.Evaluate(g, expr, field)

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if !filepath.IsAbs(save) && filepath.Dir(save) == "." {
			dir := viper.GetString("query.queries_dir")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
			save = filepath.Join(dir, save)
		}
		if err := query.WriteQueryFile(save, kind, text, field, result); err != nil {
			return err
		}
		fmt.Printf("Saved %d citations to %s\n", result.EdgeCount(), save)
		return nil
	}

	return writeGraphOutput(cmd, result)
}

// --- prefix subcommand ---

var queryPrefixCmd = &cobra.Command{
	Use:   "prefix <registrant>",
	Short: "Select citations by DOI registrant prefix",
	Long: `Prefix selects citations whose citing (or, with --cited, cited)
identifier belongs to a DOI registrant: the identifier starts with the
prefix and its "/" sits exactly at the end of it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadStoredGraph(cmd)
		if err != nil {
			return err
		}
		cited, _ := cmd.Flags().GetBool("cited")
		result := query.SearchByPrefix(g, args[0], !cited)
		return writeGraphOutput(cmd, result)
	},
}

// --- load subcommand ---

var queryLoadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Reload a saved query file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); os.IsNotExist(err) && filepath.Dir(path) == "." {
			path = filepath.Join(viper.GetString("query.queries_dir"), path)
		}
		qf, err := query.ReadQueryFile(path)
		if err != nil {
			return err
		}

		fmt.Printf("%s query %q on field %s (%d citations, saved %s)\n",
			qf.Query.Kind, qf.Query.Text, qf.Query.Field,
			qf.Summary.Edges, qf.Summary.Timestamp.Format("2006-01-02 15:04"))

		g := graph.NewDirected()
		for _, r := range qf.Results {
			g.AddNode(r.Citing, r.Creation)
			if !g.HasNode(r.Cited) {
				g.AddNode(r.Cited, "")
			}
			g.AddEdge(r.Citing, r.Cited, r.Timespan)
		}
		printEdgeTable(g)
		return nil
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	for _, c := range []*cobra.Command{querySearchCmd, queryFilterCmd} {
		c.Flags().String("field", "citing", "field to query: citing, cited, creation, or timespan")
		c.Flags().String("save", "", "save the query and its results to a YAML file")
	}
	for _, c := range []*cobra.Command{querySearchCmd, queryFilterCmd, queryPrefixCmd} {
		c.Flags().String("output", "", "write matches to a YAML or JSON file instead of stdout")
		c.Flags().Bool("json", false, "print matches as JSON")
	}
	queryPrefixCmd.Flags().Bool("cited", false, "match the cited identifier instead of the citing one")

	queryCmd.AddCommand(querySearchCmd)
	queryCmd.AddCommand(queryFilterCmd)
	queryCmd.AddCommand(queryPrefixCmd)
	queryCmd.AddCommand(queryLoadCmd)

	rootCmd.AddCommand(queryCmd)
}
