// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists citation graphs in a SQLite database so that an
// ingested graph can be analyzed and queried across invocations without
// re-reading the raw records.
// Implements: prd001-ingestion (R4);
//
//	docs/ARCHITECTURE § Graph Store.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/pkg/types"
)

const dbFile = "citations.db"

// Store manages the citation graph SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the graph database at indexDir/citations.db,
// creating the schema if it does not exist (R4.1, R4.2).
func Open(cfg types.StoreConfig) (*Store, error) {
	indexDir := cfg.IndexDir
	if indexDir == "" {
		indexDir = "index"
	}
	if err := os.MkdirAll(indexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(indexDir, dbFile)
	return OpenPath(dbPath)
}

// OpenPath opens or creates the graph database at an explicit path.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY,
			creation TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS edges (
			citing TEXT NOT NULL REFERENCES nodes(id),
			cited TEXT NOT NULL REFERENCES nodes(id),
			timespan TEXT NOT NULL,
			PRIMARY KEY (citing, cited)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_edges_cited ON edges(cited)`,
		`CREATE TABLE IF NOT EXISTS graph_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveGraph replaces the stored graph with g in one transaction (R4.3).
func (s *Store) SaveGraph(ctx context.Context, g *graph.Graph) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM edges`, `DELETE FROM nodes`, `DELETE FROM graph_meta`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing stored graph: %w", err)
		}
	}

	directed := "0"
	if g.Directed() {
		directed = "1"
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO graph_meta (key, value) VALUES ('directed', ?)`, directed,
	); err != nil {
		return fmt.Errorf("writing graph metadata: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `INSERT INTO nodes (id, creation) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing node insert: %w", err)
	}
	defer nodeStmt.Close()

	for _, id := range g.Nodes() {
		creation, _ := g.Creation(id)
		if _, err := nodeStmt.ExecContext(ctx, id, creation); err != nil {
			return fmt.Errorf("inserting node %s: %w", id, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO edges (citing, cited, timespan) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, e := range g.Edges() {
		ts, _ := g.Timespan(e.Citing, e.Cited)
		if _, err := edgeStmt.ExecContext(ctx, e.Citing, e.Cited, ts); err != nil {
			return fmt.Errorf("inserting edge %s -> %s: %w", e.Citing, e.Cited, err)
		}
	}

	return tx.Commit()
}

// LoadGraph reads the stored graph back into memory (R4.4).
func (s *Store) LoadGraph(ctx context.Context) (*graph.Graph, error) {
	var directed string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM graph_meta WHERE key = 'directed'`,
	).Scan(&directed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("reading graph metadata: %w", err)
	}

	g := graph.NewDirected()
	if err == nil && directed == "0" {
		g = graph.NewUndirected()
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, creation FROM nodes`)
	if err != nil {
		return nil, fmt.Errorf("querying nodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, creation string
		if err := rows.Scan(&id, &creation); err != nil {
			return nil, fmt.Errorf("scanning node: %w", err)
		}
		g.AddNode(id, creation)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	edgeRows, err := s.db.QueryContext(ctx, `SELECT citing, cited, timespan FROM edges`)
	if err != nil {
		return nil, fmt.Errorf("querying edges: %w", err)
	}
	defer edgeRows.Close()

	for edgeRows.Next() {
		var citing, cited, ts string
		if err := edgeRows.Scan(&citing, &cited, &ts); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		g.AddEdge(citing, cited, ts)
	}
	return g, edgeRows.Err()
}

// Stats returns the stored node and edge counts without loading the graph.
func (s *Store) Stats(ctx context.Context) (nodes, edges int, err error) {
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM nodes`).Scan(&nodes); err != nil {
		return 0, 0, fmt.Errorf("counting nodes: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM edges`).Scan(&edges); err != nil {
		return 0, 0, fmt.Errorf("counting edges: %w", err)
	}
	return nodes, edges, nil
}
