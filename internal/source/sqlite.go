package source

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tangleview/tangle/pkg/knowledge"
)

// DB wraps a SQLite knowledge base.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite knowledge base at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			mention_count INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS edges (
			id TEXT PRIMARY KEY,
			source_id TEXT NOT NULL,
			target_id TEXT NOT NULL,
			relation TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_edges_source ON edges(source_id);
		CREATE INDEX IF NOT EXISTS idx_edges_target ON edges(target_id);
	`

	_, err := db.Exec(schema)
	return err
}

// Load reads the full graph. Rows come back in insertion order so the
// snapshot order, and with it the layout seeding, stays stable across
// reloads.
func (d *DB) Load() (knowledge.Snapshot, error) {
	var snap knowledge.Snapshot

	rows, err := d.db.Query(`SELECT id, name, type, mention_count FROM nodes ORDER BY rowid`)
	if err != nil {
		return snap, fmt.Errorf("querying nodes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n knowledge.Node
		if err := rows.Scan(&n.ID, &n.Name, &n.Type, &n.Mentions); err != nil {
			return snap, fmt.Errorf("scanning node: %w", err)
		}
		snap.Nodes = append(snap.Nodes, n)
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("reading nodes: %w", err)
	}

	erows, err := d.db.Query(`SELECT id, source_id, target_id, relation FROM edges ORDER BY rowid`)
	if err != nil {
		return snap, fmt.Errorf("querying edges: %w", err)
	}
	defer erows.Close()
	for erows.Next() {
		var e knowledge.Edge
		if err := erows.Scan(&e.ID, &e.Source, &e.Target, &e.Relation); err != nil {
			return snap, fmt.Errorf("scanning edge: %w", err)
		}
		snap.Edges = append(snap.Edges, e)
	}
	if err := erows.Err(); err != nil {
		return snap, fmt.Errorf("reading edges: %w", err)
	}

	return snap, nil
}

// Seed clears the database and fills it with the given snapshot.
// Returns the number of nodes and edges written.
func (d *DB) Seed(snap knowledge.Snapshot) (int, int, error) {
	if _, err := d.db.Exec("DELETE FROM nodes"); err != nil {
		return 0, 0, fmt.Errorf("clearing nodes: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM edges"); err != nil {
		return 0, 0, fmt.Errorf("clearing edges: %w", err)
	}

	nodeStmt, err := d.db.Prepare(`
		INSERT INTO nodes (id, name, type, mention_count) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing node insert: %w", err)
	}
	defer nodeStmt.Close()

	edgeStmt, err := d.db.Prepare(`
		INSERT INTO edges (id, source_id, target_id, relation) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, n := range snap.Nodes {
		if _, err := nodeStmt.Exec(n.ID, n.Name, n.Type, n.Mentions); err != nil {
			return 0, 0, fmt.Errorf("inserting node %s: %w", n.ID, err)
		}
	}
	for _, e := range snap.Edges {
		if _, err := edgeStmt.Exec(e.ID, e.Source, e.Target, e.Relation); err != nil {
			return 0, 0, fmt.Errorf("inserting edge %s: %w", e.ID, err)
		}
	}

	return len(snap.Nodes), len(snap.Edges), nil
}
