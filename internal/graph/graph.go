// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph holds the in-memory citation graph: document nodes keyed
// by identifier carrying a creation date, and citation edges citing→cited
// carrying an elapsed-time descriptor.
//
// A graph is populated once during ingestion and frozen; every consumer
// (analytics, queries) reads it without coordination, and every derived
// graph is a fresh value that owns its own storage. There is no locking
// here on purpose: mutation must not be concurrent with reads.
// Implements: prd001-ingestion (R1, R3);
//
//	docs/ARCHITECTURE § Graph Model.
package graph

import "sort"

// Edge identifies a single citation by its ordered endpoints.
type Edge struct {
	Citing string
	Cited  string
}

// Graph is a simple graph with string node and edge attributes. The zero
// value is not usable; construct with NewDirected or NewUndirected.
type Graph struct {
	directed bool
	creation map[string]string            // node id → creation date
	succ     map[string]map[string]string // citing → cited → timespan
	pred     map[string]map[string]bool   // cited → citing set
}

// NewDirected returns an empty directed graph.
func NewDirected() *Graph {
	return &Graph{
		directed: true,
		creation: make(map[string]string),
		succ:     make(map[string]map[string]string),
		pred:     make(map[string]map[string]bool),
	}
}

// NewUndirected returns an empty undirected graph. Undirected graphs
// exist only so that merging can distinguish graph variants; edges are
// stored in both directions.
func NewUndirected() *Graph {
	g := NewDirected()
	g.directed = false
	return g
}

// Directed reports the graph variant.
func (g *Graph) Directed() bool { return g.directed }

// AddNode inserts or updates a document node. The last write wins, which
// is what merge relies on; ingestion checks HasNode first so that the
// first observed creation date sticks.
func (g *Graph) AddNode(id, creation string) {
	g.creation[id] = creation
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.creation[id]
	return ok
}

// Creation returns the node's creation date string.
func (g *Graph) Creation(id string) (string, bool) {
	c, ok := g.creation[id]
	return c, ok
}

// AddEdge inserts or overwrites the citation citing→cited. Endpoints
// missing from the graph are added with an empty creation date; callers
// that care about dates add nodes first. Undirected graphs store the
// mirror edge as well.
func (g *Graph) AddEdge(citing, cited, timespan string) {
	if _, ok := g.creation[citing]; !ok {
		g.creation[citing] = ""
	}
	if _, ok := g.creation[cited]; !ok {
		g.creation[cited] = ""
	}
	g.link(citing, cited, timespan)
	if !g.directed {
		g.link(cited, citing, timespan)
	}
}

func (g *Graph) link(from, to, timespan string) {
	if g.succ[from] == nil {
		g.succ[from] = make(map[string]string)
	}
	g.succ[from][to] = timespan
	if g.pred[to] == nil {
		g.pred[to] = make(map[string]bool)
	}
	g.pred[to][from] = true
}

// HasEdge reports whether the citation citing→cited exists.
func (g *Graph) HasEdge(citing, cited string) bool {
	_, ok := g.succ[citing][cited]
	return ok
}

// Timespan returns the elapsed-time descriptor on the edge citing→cited.
func (g *Graph) Timespan(citing, cited string) (string, bool) {
	ts, ok := g.succ[citing][cited]
	return ts, ok
}

// Successors returns the identifiers cited by id, sorted.
func (g *Graph) Successors(id string) []string {
	return sortedKeys(g.succ[id])
}

// Predecessors returns the identifiers citing id, sorted.
func (g *Graph) Predecessors(id string) []string {
	out := make([]string, 0, len(g.pred[id]))
	for from := range g.pred[id] {
		out = append(out, from)
	}
	sort.Strings(out)
	return out
}

// Nodes returns all node identifiers, sorted.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.creation))
	for id := range g.creation {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Edges returns all edges sorted by (citing, cited). For undirected
// graphs each edge appears once, with its endpoints in sorted order.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for from, nbrs := range g.succ {
		for to := range nbrs {
			if !g.directed && from > to {
				continue // mirror half of an undirected edge
			}
			out = append(out, Edge{Citing: from, Cited: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Citing != out[j].Citing {
			return out[i].Citing < out[j].Citing
		}
		return out[i].Cited < out[j].Cited
	})
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.creation) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range g.succ {
		n += len(nbrs)
	}
	if !g.directed {
		n /= 2
	}
	return n
}

// EdgeSubgraph returns a fresh graph of the same variant containing
// exactly the given edges and their endpoint nodes, with attributes
// copied from g. Edges absent from g are ignored. The result shares no
// storage with g.
func (g *Graph) EdgeSubgraph(edges []Edge) *Graph {
	sub := NewDirected()
	sub.directed = g.directed
	for _, e := range edges {
		ts, ok := g.succ[e.Citing][e.Cited]
		if !ok {
			continue
		}
		if c, ok := g.creation[e.Citing]; ok {
			sub.AddNode(e.Citing, c)
		}
		if c, ok := g.creation[e.Cited]; ok {
			sub.AddNode(e.Cited, c)
		}
		sub.AddEdge(e.Citing, e.Cited, ts)
	}
	return sub
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
