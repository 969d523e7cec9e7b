// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analytics computes citation metrics over a frozen citation
// graph: impact factor, co-citation and bibliographic-coupling counts,
// time-window networks, and graph merging. Every function is a pure read;
// identifiers absent from the graph are skipped, never an error, so that
// one unknown document cannot abort a batch computation.
// Implements: prd002-analytics (R1-R5);
//
//	docs/ARCHITECTURE § Analytics.
package analytics

import (
	"strconv"

	"github.com/pdiddy/citegraph/internal/graph"
)

// ImpactFactor returns the pooled impact factor of the document set for
// the given year: citations the set received from documents created in
// year, divided by the number of documents in the set created in year-1
// or year-2. The second return is false when no document in the set was
// created in those two years (the no-data outcome, not a fault).
//
// Identifiers not in the graph and creation dates whose year prefix does
// not parse are skipped.
func ImpactFactor(g *graph.Graph, ids []string, year int) (float64, bool) {
	citing := 0
	previous := 0

	for _, id := range ids {
		if !g.HasNode(id) {
			continue
		}

		for _, from := range g.Predecessors(id) {
			if y, ok := creationYear(g, from); ok && y == year {
				citing++
			}
		}

		if y, ok := creationYear(g, id); ok && (y == year-1 || y == year-2) {
			previous++
		}
	}

	if previous == 0 {
		return 0, false
	}
	return float64(citing) / float64(previous), true
}

// creationYear extracts the numeric year from the first four characters
// of a node's creation date.
func creationYear(g *graph.Graph, id string) (int, bool) {
	c, ok := g.Creation(id)
	if !ok || len(c) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(c[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}

// CoCitations returns how many documents cite both a and b. Returns 0
// when either identifier is absent from the graph.
func CoCitations(g *graph.Graph, a, b string) int {
	if !g.HasNode(a) || !g.HasNode(b) {
		return 0
	}
	return intersectionSize(g.Predecessors(a), g.Predecessors(b))
}

// BibliographicCoupling returns how many documents are cited by both a
// and b. Returns 0 when either identifier is absent from the graph.
func BibliographicCoupling(g *graph.Graph, a, b string) int {
	if !g.HasNode(a) || !g.HasNode(b) {
		return 0
	}
	return intersectionSize(g.Successors(a), g.Successors(b))
}

func intersectionSize(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	n := 0
	for _, id := range b {
		if set[id] {
			n++
		}
	}
	return n
}

// CitationNetwork returns a new directed graph holding every citation
// whose endpoints were both created within [start, end]. Both bounds are
// 4-character year strings compared lexicographically against the first
// four characters of each creation date; fixed-width string comparison is
// the contract, not a numeric one. Bounds of any other length, or
// start > end, yield an empty graph.
func CitationNetwork(g *graph.Graph, start, end string) *graph.Graph {
	result := graph.NewDirected()
	if len(start) != 4 || len(end) != 4 || start > end {
		return result
	}

	var eligible []graph.Edge
	for _, e := range g.Edges() {
		if inWindow(g, e.Citing, start, end) && inWindow(g, e.Cited, start, end) {
			eligible = append(eligible, e)
		}
	}
	return g.EdgeSubgraph(eligible)
}

func inWindow(g *graph.Graph, id, start, end string) bool {
	c, ok := g.Creation(id)
	if !ok || len(c) < 4 {
		return false
	}
	year := c[:4]
	return start <= year && year <= end
}

// Merge returns a new graph holding the node and edge union of g1 and
// g2, with g2's attributes winning on collision. Merging graphs of
// different variants (directed with undirected) returns nil so callers
// can branch without error handling.
func Merge(g1, g2 *graph.Graph) *graph.Graph {
	if g1.Directed() != g2.Directed() {
		return nil
	}

	merged := graph.NewDirected()
	if !g1.Directed() {
		merged = graph.NewUndirected()
	}

	for _, g := range []*graph.Graph{g1, g2} {
		for _, id := range g.Nodes() {
			c, _ := g.Creation(id)
			merged.AddNode(id, c)
		}
		for _, e := range g.Edges() {
			ts, _ := g.Timespan(e.Citing, e.Cited)
			merged.AddEdge(e.Citing, e.Cited, ts)
		}
	}
	return merged
}
