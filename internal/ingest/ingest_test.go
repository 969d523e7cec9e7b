// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/citegraph/pkg/types"
)

const sampleCSV = `citing,cited,creation,timespan
10.1234/a,10.9999/x,2020-06-15,P2Y
10.1234/b,10.9999/x,2019,P1Y
bad-row-with,three-fields,only
10.1234/a,10.9999/y,2020-06-15,P0Y3M10D
`

func TestReadCSV(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	// The header and the three-field row are dropped.
	require.Len(t, records, 3)
	assert.Equal(t, types.CitationRecord{
		Citing:   "10.1234/a",
		Cited:    "10.9999/x",
		Creation: "2020-06-15",
		Timespan: "P2Y",
	}, records[0])
}

func TestReadCSVEmptyInput(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBuild(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var out bytes.Buffer
	g, summary := Build(records, &out)

	assert.Equal(t, 3, summary.Loaded)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 3, g.EdgeCount())

	// Citing nodes carry the record's creation date.
	c, ok := g.Creation("10.1234/a")
	require.True(t, ok)
	assert.Equal(t, "2020-06-15", c)

	// The cited node's date is derived from the first record naming it,
	// at the citing date's precision: 2020-06-15 minus P2Y.
	c, ok = g.Creation("10.9999/x")
	require.True(t, ok)
	assert.Equal(t, "2018-06-15", c)

	c, ok = g.Creation("10.9999/y")
	require.True(t, ok)
	assert.Equal(t, "2020-03-05", c)

	assert.Contains(t, out.String(), "loaded: 3, skipped: 0")
}

func TestBuildFirstCreationWins(t *testing.T) {
	records := []types.CitationRecord{
		{Citing: "a", Cited: "x", Creation: "2020", Timespan: "P1Y"},
		{Citing: "b", Cited: "x", Creation: "2015", Timespan: "P1Y"},
		{Citing: "a", Cited: "y", Creation: "1999", Timespan: "P1Y"},
	}

	var out bytes.Buffer
	g, _ := Build(records, &out)

	// x keeps the date derived from the first record that cited it.
	c, _ := g.Creation("x")
	assert.Equal(t, "2019", c)

	// a keeps the creation from its first appearance as a citing node.
	c, _ = g.Creation("a")
	assert.Equal(t, "2020", c)
}

func TestBuildOverwritesDuplicateEdge(t *testing.T) {
	records := []types.CitationRecord{
		{Citing: "a", Cited: "x", Creation: "2020", Timespan: "P1Y"},
		{Citing: "a", Cited: "x", Creation: "2020", Timespan: "P3Y"},
	}

	var out bytes.Buffer
	g, summary := Build(records, &out)

	assert.Equal(t, 2, summary.Loaded)
	assert.Equal(t, 1, g.EdgeCount())
	ts, _ := g.Timespan("a", "x")
	assert.Equal(t, "P3Y", ts)
}

func TestBuildSkipsBadTimespan(t *testing.T) {
	records := []types.CitationRecord{
		{Citing: "a", Cited: "x", Creation: "2020", Timespan: "P1Y"},
		{Citing: "b", Cited: "y", Creation: "2020", Timespan: "huh"},
	}

	var out bytes.Buffer
	g, summary := Build(records, &out)

	assert.Equal(t, 1, summary.Loaded)
	assert.Equal(t, 1, summary.Skipped)
	assert.True(t, g.HasEdge("a", "x"))
	assert.False(t, g.HasNode("y"))
	assert.Contains(t, out.String(), "skipped b -> y")
}
