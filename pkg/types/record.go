// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds domain types shared across citegraph stages.
package types

// CitationRecord is one raw ingestion row: a citing document, the
// document it cites, the citing document's creation date, and the
// elapsed time between the two.
// Per prd001-ingestion R1.1.
type CitationRecord struct {
	// Citing is the citing document's identifier (e.g. a DOI).
	Citing string `json:"citing" yaml:"citing"`

	// Cited is the cited document's identifier.
	Cited string `json:"cited" yaml:"cited"`

	// Creation is the citing document's creation date at year,
	// year-month, or full-date precision.
	Creation string `json:"creation" yaml:"creation"`

	// Timespan is the signed elapsed-time descriptor between the citing
	// and cited documents (e.g. "P2Y6M", "-P1Y").
	Timespan string `json:"timespan" yaml:"timespan"`
}
