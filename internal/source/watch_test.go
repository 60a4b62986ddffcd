package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	initial := `{"nodes": [{"id": "a", "name": "Alice"}]}`
	if err := os.WriteFile(path, []byte(initial), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	w.Start()
	defer w.Stop()

	// Let the watch loop get scheduled before touching the file.
	time.Sleep(50 * time.Millisecond)

	updated := `{"nodes": [{"id": "a", "name": "Alice"}, {"id": "b", "name": "Bob"}]}`
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case snap := <-w.Snapshots():
		if len(snap.Nodes) != 2 {
			t.Errorf("reloaded snapshot has %d nodes, want 2", len(snap.Nodes))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot delivered after the file changed")
	}
}

func TestWatcherStopIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(`{"nodes": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Start()
	w.Stop()
	w.Stop()
}

func TestNewWatcherMissingFile(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope.json"), nil); err == nil {
		t.Fatal("expected an error for a missing source file")
	}
}
