package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanComments(t *testing.T) {
	src := `db: # database settings
  host: ${DB_HOST:localhost} # where the db lives
  port: 5432
# a full-line comment has no key
logging:
  level: info # default level
  level: debug # repeated keys keep the last comment
`

	got := ScanComments(src)
	want := map[string]string{
		"db":    "# database settings",
		"host":  "# where the db lives",
		"level": "# repeated keys keep the last comment",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScanComments mismatch (-want +got):\n%s", diff)
	}
}

func TestScanCommentsNoComments(t *testing.T) {
	got := ScanComments("db:\n  host: localhost\n")
	if len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestAttachCommentsGlobalByKey(t *testing.T) {
	src := `primary:
  host: one # shared key
secondary:
  host: two
`
	root, err := Parse([]byte(src), ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	AttachComments(root, ScanComments(src))

	// The heuristic matches by literal key text, so both "host" leaves get
	// the comment even though only one line carries it.
	var attached []string
	root.Walk(func(n *Node) {
		if n.Key == "host" && n.Comment == "# shared key" {
			attached = append(attached, n.Path())
		}
	})
	want := []string{"primary_host", "secondary_host"}
	if diff := cmp.Diff(want, attached); diff != "" {
		t.Errorf("comment attachment mismatch (-want +got):\n%s", diff)
	}
}
