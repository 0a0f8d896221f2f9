package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleYAML = `db:
  host: ${DB_HOST:localhost}
  port: 5432
  tls: true
cache:
  backend: redis
  nodes:
    - a
    - b
`

func TestParseYAML(t *testing.T) {
	root, err := Parse([]byte(sampleYAML), ".yaml")
	if err != nil {
		t.Fatal(err)
	}

	db := root.Children[0]
	if db.Key != "db" || db.IsLeaf() {
		t.Fatalf("expected first child to be the db section, got %+v", db)
	}

	host := db.Children[0]
	if host.EnvVar != "DB_HOST" {
		t.Errorf("host envVar = %q, want DB_HOST", host.EnvVar)
	}
	if host.DisplayValue != "localhost" {
		t.Errorf("host display = %q, want localhost", host.DisplayValue)
	}

	port := db.Children[1]
	if port.EnvVar != "" {
		t.Errorf("port should have no env binding, got %q", port.EnvVar)
	}
	if port.DisplayValue != "5432" {
		t.Errorf("port display = %q, want 5432", port.DisplayValue)
	}

	tls := db.Children[2]
	if tls.DisplayValue != "true" {
		t.Errorf("tls display = %q, want true", tls.DisplayValue)
	}

	nodes := root.Children[1].Children[1]
	if !nodes.IsLeaf() {
		t.Fatal("sequence values should be leaves")
	}
	if nodes.DisplayValue != "[a, b]" {
		t.Errorf("nodes display = %q, want [a, b]", nodes.DisplayValue)
	}
}

func TestParsePreservesKeyOrder(t *testing.T) {
	src := "zulu: 1\nalpha: 2\nmike: 3\n"
	root, err := Parse([]byte(src), ".yaml")
	if err != nil {
		t.Fatal(err)
	}

	var keys []string
	for _, c := range root.Children {
		keys = append(keys, c.Key)
	}
	want := []string{"zulu", "alpha", "mike"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON(t *testing.T) {
	src := `{"service": {"name": "${SVC_NAME:api}", "replicas": 3}}`
	root, err := Parse([]byte(src), ".json")
	if err != nil {
		t.Fatal(err)
	}

	svc := root.Children[0]
	if svc.Children[0].EnvVar != "SVC_NAME" {
		t.Errorf("name envVar = %q, want SVC_NAME", svc.Children[0].EnvVar)
	}
	if svc.Children[1].DisplayValue != "3" {
		t.Errorf("replicas display = %q, want 3", svc.Children[1].DisplayValue)
	}
}

func TestParseTOML(t *testing.T) {
	src := "[db]\nhost = \"${DB_HOST:localhost}\"\nport = 5432\n"
	root, err := Parse([]byte(src), ".toml")
	if err != nil {
		t.Fatal(err)
	}

	db := root.Children[0]
	if db.Key != "db" {
		t.Fatalf("expected db section, got %q", db.Key)
	}
	// TOML children come back sorted by key.
	if db.Children[0].Key != "host" || db.Children[1].Key != "port" {
		t.Fatalf("unexpected child order: %q, %q", db.Children[0].Key, db.Children[1].Key)
	}
	if db.Children[0].EnvVar != "DB_HOST" {
		t.Errorf("host envVar = %q, want DB_HOST", db.Children[0].EnvVar)
	}
	if db.Children[1].DisplayValue != "5432" {
		t.Errorf("port display = %q, want 5432", db.Children[1].DisplayValue)
	}
}

func TestPathIdentity(t *testing.T) {
	root, err := Parse([]byte(sampleYAML), ".yaml")
	if err != nil {
		t.Fatal(err)
	}

	if got := root.Path(); got != "" {
		t.Errorf("root path = %q, want empty", got)
	}

	port := root.Children[0].Children[1]
	if got := port.Path(); got != "db_port" {
		t.Errorf("port path = %q, want db_port", got)
	}
	if got := port.Identity(); got != "db_port" {
		t.Errorf("port identity = %q, want db_port", got)
	}

	host := root.Children[0].Children[0]
	if got := host.Identity(); got != "DB_HOST" {
		t.Errorf("host identity = %q, want DB_HOST", got)
	}
}

func TestPathIdentityUniqueAcrossLeaves(t *testing.T) {
	root, err := Parse([]byte(sampleYAML), ".yaml")
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]string)
	root.Walk(func(n *Node) {
		if !n.IsLeaf() || n.EnvVar != "" {
			return
		}
		p := n.Path()
		if prev, ok := seen[p]; ok {
			t.Errorf("path %q produced by both %q and %q", p, prev, n.Key)
		}
		seen[p] = n.Key
	})
}

func TestPathStableAcrossReparses(t *testing.T) {
	collect := func() []string {
		root, err := Parse([]byte(sampleYAML), ".yaml")
		if err != nil {
			t.Fatal(err)
		}
		var paths []string
		root.Walk(func(n *Node) {
			if n.IsLeaf() {
				paths = append(paths, n.Path())
			}
		})
		return paths
	}

	if diff := cmp.Diff(collect(), collect()); diff != "" {
		t.Errorf("paths changed between reparses:\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	root := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	if len(root.Children) != 1 {
		t.Fatalf("expected a single error leaf, got %d children", len(root.Children))
	}
	errNode := root.Children[0]
	if errNode.Key != "error" {
		t.Errorf("fallback key = %q, want error", errNode.Key)
	}
	if errNode.DisplayValue == "" {
		t.Error("error leaf should carry the failure message")
	}
	// The fallback tree must still be navigable.
	if got := len(root.Settings()); got != 1 {
		t.Errorf("Settings() on fallback root = %d items, want 1", got)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("a:\n\tb: tabs are not yaml indentation"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := Load(path)
	if len(root.Children) != 1 || root.Children[0].Key != "error" {
		t.Fatalf("expected error fallback tree, got %+v", root)
	}
}

func TestLoadAttachesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	src := "db:\n  host: ${DB_HOST:localhost} # primary database\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	root := Load(path)
	host := root.Children[0].Children[0]
	if host.Comment != "# primary database" {
		t.Errorf("host comment = %q, want %q", host.Comment, "# primary database")
	}
}

func TestSectionsAndSettings(t *testing.T) {
	root, err := Parse([]byte(sampleYAML), ".yaml")
	if err != nil {
		t.Fatal(err)
	}

	if got := len(root.Sections()); got != 2 {
		t.Errorf("root sections = %d, want 2", got)
	}
	if got := len(root.Settings()); got != 0 {
		t.Errorf("root settings = %d, want 0", got)
	}

	db := root.Children[0]
	if got := len(db.Sections()); got != 0 {
		t.Errorf("db sections = %d, want 0", got)
	}
	if got := len(db.Settings()); got != 3 {
		t.Errorf("db settings = %d, want 3", got)
	}
}
