package types

// StoreConfig holds settings for the graph store.
// Per prd001-ingestion R4.1.
type StoreConfig struct {
	// IndexDir is the directory holding the SQLite database (default "index").
	IndexDir string `json:"index_dir" yaml:"index_dir"`
}

// IngestConfig holds settings for the ingestion stage.
// Per prd001-ingestion R1.3.
type IngestConfig struct {
	// DataDir is the directory CSV record files are resolved against
	// (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// QueryConfig holds settings for the query stage.
// Per prd003-query R5.1.
type QueryConfig struct {
	// QueriesDir is the directory saved query files are written to
	// (default "queries").
	QueriesDir string `json:"queries_dir" yaml:"queries_dir"`

	// MaxRows caps the number of rows printed in table output; zero
	// means unlimited. Saved files always hold the full result.
	MaxRows int `json:"max_rows" yaml:"max_rows"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Store  StoreConfig  `json:"store" yaml:"store"`
	Ingest IngestConfig `json:"ingest" yaml:"ingest"`
	Query  QueryConfig  `json:"query" yaml:"query"`
}
