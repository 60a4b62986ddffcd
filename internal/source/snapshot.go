// Package source loads knowledge-graph snapshots from JSON files, SQLite
// knowledge bases and a built-in demo set, and watches file sources for
// changes so the viewer can reload live.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tangleview/tangle/pkg/knowledge"
)

// Load reads a snapshot from path, dispatching on the file extension.
// .db, .sqlite and .sqlite3 open a SQLite knowledge base; anything else
// is parsed as a JSON snapshot.
func Load(path string) (knowledge.Snapshot, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		db, err := OpenDB(path)
		if err != nil {
			return knowledge.Snapshot{}, err
		}
		defer db.Close()
		return db.Load()
	default:
		return LoadSnapshot(path)
	}
}

// LoadSnapshot reads a JSON snapshot file. Edges without an id get a
// generated one so every edge stays addressable; nodes without an id
// are an error since positions and selections key off it.
func LoadSnapshot(path string) (knowledge.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return knowledge.Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap knowledge.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return knowledge.Snapshot{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i, n := range snap.Nodes {
		if n.ID == "" {
			return knowledge.Snapshot{}, fmt.Errorf("%s: node %d has no id", path, i)
		}
	}
	for i := range snap.Edges {
		if snap.Edges[i].ID == "" {
			snap.Edges[i].ID = uuid.New().String()
		}
	}

	return snap, nil
}
