// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citegraph/internal/graph"
)

// GraphExport is the serializable form of a citation graph (R4.5).
type GraphExport struct {
	Directed bool         `json:"directed" yaml:"directed"`
	Nodes    []NodeExport `json:"nodes" yaml:"nodes"`
	Edges    []EdgeExport `json:"edges" yaml:"edges"`
}

// NodeExport is one document node.
type NodeExport struct {
	ID       string `json:"id" yaml:"id"`
	Creation string `json:"creation" yaml:"creation"`
}

// EdgeExport is one citation edge.
type EdgeExport struct {
	Citing   string `json:"citing" yaml:"citing"`
	Cited    string `json:"cited" yaml:"cited"`
	Timespan string `json:"timespan" yaml:"timespan"`
}

// NewGraphExport flattens g into its serializable form, in deterministic
// node and edge order.
func NewGraphExport(g *graph.Graph) GraphExport {
	ex := GraphExport{Directed: g.Directed()}
	for _, id := range g.Nodes() {
		creation, _ := g.Creation(id)
		ex.Nodes = append(ex.Nodes, NodeExport{ID: id, Creation: creation})
	}
	for _, e := range g.Edges() {
		ts, _ := g.Timespan(e.Citing, e.Cited)
		ex.Edges = append(ex.Edges, EdgeExport{Citing: e.Citing, Cited: e.Cited, Timespan: ts})
	}
	return ex
}

// ToGraph rebuilds an in-memory graph from its exported form.
func (ex GraphExport) ToGraph() *graph.Graph {
	g := graph.NewDirected()
	if !ex.Directed {
		g = graph.NewUndirected()
	}
	for _, n := range ex.Nodes {
		g.AddNode(n.ID, n.Creation)
	}
	for _, e := range ex.Edges {
		g.AddEdge(e.Citing, e.Cited, e.Timespan)
	}
	return g
}

// ExportYAML writes g to w as YAML.
func ExportYAML(g *graph.Graph, w io.Writer) error {
	data, err := yaml.Marshal(NewGraphExport(g))
	if err != nil {
		return fmt.Errorf("marshaling graph: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes g to w as indented JSON.
func ExportJSON(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewGraphExport(g))
}
