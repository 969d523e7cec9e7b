// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest reads delimited citation records and builds the
// citation graph. Malformed rows and unresolvable timespans are skipped
// and counted, never fatal; the graph that comes out is complete for
// every record that parsed.
// Implements: prd001-ingestion (R1-R3);
//
//	docs/ARCHITECTURE § Ingestion.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/internal/timespan"
	"github.com/pdiddy/citegraph/pkg/types"
)

// recordFields is the expected CSV arity: citing, cited, creation, timespan.
const recordFields = 4

// Summary holds counts from an ingestion run (R3.3).
type Summary struct {
	Loaded  int
	Skipped int
}

// Total returns the number of records processed.
func (s Summary) Total() int { return s.Loaded + s.Skipped }

// ReadCSV reads citation records from r. The first row is the column
// header and is discarded; rows with a field count other than four are
// skipped (R1.2). Rows are consumed in a single pass.
func ReadCSV(r io.Reader) ([]types.CitationRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // arity is checked per row, not fatal

	var records []types.CitationRecord
	header := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(row) != recordFields {
			continue
		}
		records = append(records, types.CitationRecord{
			Citing:   row[0],
			Cited:    row[1],
			Creation: row[2],
			Timespan: row[3],
		})
	}
	return records, nil
}

// ReadCSVFile reads citation records from a file on disk.
func ReadCSVFile(path string) ([]types.CitationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// Build populates a directed citation graph from records (R2, R3).
//
// The citing node takes the record's creation date; the cited node's
// date is derived from it through the timespan resolver. The first
// creation date observed for a node sticks; re-ingesting a (citing,
// cited) pair overwrites the edge's timespan. Records whose timespan
// fails to resolve are reported to w and skipped.
func Build(records []types.CitationRecord, w io.Writer) (*graph.Graph, Summary) {
	g := graph.NewDirected()
	var summary Summary

	for _, rec := range records {
		if !g.HasNode(rec.Citing) {
			g.AddNode(rec.Citing, rec.Creation)
		}
		if !g.HasNode(rec.Cited) {
			cited, err := timespan.Resolve(rec.Creation, rec.Timespan)
			if err != nil {
				fmt.Fprintf(w, "skipped %s -> %s: %v\n", rec.Citing, rec.Cited, err)
				summary.Skipped++
				continue
			}
			g.AddNode(rec.Cited, cited)
		}
		g.AddEdge(rec.Citing, rec.Cited, rec.Timespan)
		summary.Loaded++
	}

	fmt.Fprintf(w, "\nloaded: %d, skipped: %d\n", summary.Loaded, summary.Skipped)
	return g, summary
}
