// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citegraph/internal/graph"
)

// QueryFile is the on-disk representation of a query and the citations
// it matched. A researcher can save a query run to a file and reload the
// result set later without re-evaluating the graph.
type QueryFile struct {
	Query   QueryParams  `yaml:"query"`
	Results []EdgeResult `yaml:"results"`
	Summary QuerySummary `yaml:"summary"`
}

// QueryParams stores the query in a serializable form. Kind is "search"
// or "filter".
type QueryParams struct {
	Kind  string `yaml:"kind"`
	Text  string `yaml:"text"`
	Field string `yaml:"field"`
}

// EdgeResult is one matching citation.
type EdgeResult struct {
	Citing   string `yaml:"citing"`
	Cited    string `yaml:"cited"`
	Creation string `yaml:"creation,omitempty"`
	Timespan string `yaml:"timespan,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Nodes     int       `yaml:"nodes"`
	Edges     int       `yaml:"edges"`
	Timestamp time.Time `yaml:"timestamp"`
}

// EdgeResults flattens a result graph into serializable citations, in
// the graph's deterministic edge order.
func EdgeResults(g *graph.Graph) []EdgeResult {
	results := make([]EdgeResult, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		creation, _ := g.Creation(e.Citing)
		ts, _ := g.Timespan(e.Citing, e.Cited)
		results = append(results, EdgeResult{
			Citing:   e.Citing,
			Cited:    e.Cited,
			Creation: creation,
			Timespan: ts,
		})
	}
	return results
}

// WriteQueryFile saves a query and its result graph to a YAML file.
func WriteQueryFile(path, kind, text string, field Field, result *graph.Graph) error {
	qf := QueryFile{
		Query:   QueryParams{Kind: kind, Text: text, Field: string(field)},
		Results: EdgeResults(result),
		Summary: QuerySummary{
			Nodes:     result.NodeCount(),
			Edges:     result.EdgeCount(),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
