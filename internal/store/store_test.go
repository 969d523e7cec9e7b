// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/pkg/types"
	"go.yaml.in/yaml/v3"
)

func sampleGraph() *graph.Graph {
	g := graph.NewDirected()
	g.AddNode("10.1234/a", "2020-06-15")
	g.AddNode("10.9999/x", "2018-06-15")
	g.AddNode("10.9999/y", "2019")
	g.AddEdge("10.1234/a", "10.9999/x", "P2Y")
	g.AddEdge("10.1234/a", "10.9999/y", "P1Y")
	return g
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{IndexDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	g := sampleGraph()
	require.NoError(t, s.SaveGraph(ctx, g))

	loaded, err := s.LoadGraph(ctx)
	require.NoError(t, err)

	assert.True(t, loaded.Directed())
	assert.Equal(t, g.Nodes(), loaded.Nodes())
	assert.Equal(t, g.Edges(), loaded.Edges())

	c, ok := loaded.Creation("10.9999/x")
	require.True(t, ok)
	assert.Equal(t, "2018-06-15", c)

	ts, ok := loaded.Timespan("10.1234/a", "10.9999/y")
	require.True(t, ok)
	assert.Equal(t, "P1Y", ts)
}

func TestSaveGraphReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SaveGraph(ctx, sampleGraph()))

	small := graph.NewDirected()
	small.AddNode("only", "2021")
	require.NoError(t, s.SaveGraph(ctx, small))

	loaded, err := s.LoadGraph(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, loaded.Nodes())
	assert.Equal(t, 0, loaded.EdgeCount())
}

func TestSaveLoadUndirected(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	g := graph.NewUndirected()
	g.AddNode("a", "2020")
	g.AddNode("b", "2019")
	g.AddEdge("a", "b", "P1Y")
	require.NoError(t, s.SaveGraph(ctx, g))

	loaded, err := s.LoadGraph(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.Directed())
	assert.Equal(t, 1, loaded.EdgeCount())
	assert.True(t, loaded.HasEdge("b", "a"))
}

func TestLoadEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	loaded, err := s.LoadGraph(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Directed())
	assert.Equal(t, 0, loaded.NodeCount())
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.SaveGraph(ctx, sampleGraph()))

	nodes, edges, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, nodes)
	assert.Equal(t, 2, edges)
}

func TestOpenPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.db")
	s, err := OpenPath(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveGraph(context.Background(), sampleGraph()))
	assert.FileExists(t, path)
}

func TestExportYAMLRoundTrip(t *testing.T) {
	g := sampleGraph()

	var buf bytes.Buffer
	require.NoError(t, ExportYAML(g, &buf))

	var ex GraphExport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &ex))

	rebuilt := ex.ToGraph()
	assert.Equal(t, g.Nodes(), rebuilt.Nodes())
	assert.Equal(t, g.Edges(), rebuilt.Edges())
	ts, _ := rebuilt.Timespan("10.1234/a", "10.9999/x")
	assert.Equal(t, "P2Y", ts)
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportJSON(sampleGraph(), &buf))
	assert.Contains(t, buf.String(), `"citing": "10.1234/a"`)
	assert.Contains(t, buf.String(), `"directed": true`)
}
