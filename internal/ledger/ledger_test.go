package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/envtree/envtree/internal/document"
)

func writeStore(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenMissingStore(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "export.env"))
	if err != nil {
		t.Fatalf("missing store should not be an error: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("expected empty ledger, got %d entries", l.Len())
	}
	if l.Dirty() {
		t.Error("fresh ledger must not be dirty")
	}
}

func TestOpenParsesExportLines(t *testing.T) {
	path := writeStore(t, `export DB_HOST=prod.example.com
export QUOTED='single quoted'
export DOUBLE="double quoted"
# a comment line is skipped
export =no_name_is_skipped
not an export line
export NOEQUALS
export EMPTY=
`)

	l, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"DB_HOST": "prod.example.com",
		"QUOTED":  "single quoted",
		"DOUBLE":  "double quoted",
		"EMPTY":   "",
	}
	if diff := cmp.Diff(want, l.Values()); diff != "" {
		t.Errorf("loaded values mismatch (-want +got):\n%s", diff)
	}
}

func TestDirtyTracking(t *testing.T) {
	path := writeStore(t, "export A=1\n")
	l, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if l.Dirty() {
		t.Fatal("dirty before any edit")
	}

	l.Record("A", "2")
	if !l.Dirty() {
		t.Fatal("not dirty after a changing edit")
	}

	// Reverting to the original value clears dirtiness.
	l.Record("A", "1")
	if l.Dirty() {
		t.Fatal("dirty after reverting to the original value")
	}

	l.Record("B", "new")
	if !l.Dirty() {
		t.Fatal("not dirty after adding a new entry")
	}
}

func TestPersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.env")
	l, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	l.Record("DB_HOST", "prod.example.com")
	l.Record("db_port", "5433")
	if err := l.Persist(); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(l.Values(), reloaded.Values()); diff != "" {
		t.Errorf("round trip mismatch (-persisted +reloaded):\n%s", diff)
	}
}

func TestPersistClearsDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.env")
	l, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	l.Record("A", "1")
	if !l.Dirty() {
		t.Fatal("expected dirty after edit")
	}
	if err := l.Persist(); err != nil {
		t.Fatal(err)
	}
	if l.Dirty() {
		t.Error("dirty after persisting the current snapshot")
	}
}

func TestPersistContentStable(t *testing.T) {
	path := writeStore(t, "export A=1\nexport B=2\n")
	l, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Persist(); err != nil {
		t.Fatal(err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(before) != string(after) {
		t.Errorf("load/persist with no edits changed the store:\nbefore: %q\nafter:  %q", before, after)
	}
}

func TestRehydrate(t *testing.T) {
	src := "db:\n  host: ${DB_HOST:localhost}\n  port: 5432\n"
	root, err := document.Parse([]byte(src), ".yaml")
	if err != nil {
		t.Fatal(err)
	}

	path := writeStore(t, "export DB_HOST=prod.example.com\nexport db_port=5433\n")
	l, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	l.Rehydrate(root)

	host := root.Children[0].Children[0]
	port := root.Children[0].Children[1]
	if host.DisplayValue != "prod.example.com" {
		t.Errorf("host rehydrated to %q, want prod.example.com", host.DisplayValue)
	}
	if port.DisplayValue != "5433" {
		t.Errorf("port rehydrated to %q, want 5433", port.DisplayValue)
	}

	// Idempotence: a second rehydration changes nothing.
	l.Rehydrate(root)
	if host.DisplayValue != "prod.example.com" || port.DisplayValue != "5433" {
		t.Error("second rehydration changed display values")
	}
}

func TestRehydrateIgnoresUnknownLeaves(t *testing.T) {
	src := "db:\n  host: ${DB_HOST:localhost}\n"
	root, err := document.Parse([]byte(src), ".yaml")
	if err != nil {
		t.Fatal(err)
	}

	l, err := Open(filepath.Join(t.TempDir(), "export.env"))
	if err != nil {
		t.Fatal(err)
	}

	l.Rehydrate(root)
	host := root.Children[0].Children[0]
	if host.DisplayValue != "localhost" {
		t.Errorf("empty ledger must leave defaults alone, got %q", host.DisplayValue)
	}
}
