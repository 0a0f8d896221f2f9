// Package ledger tracks edited configuration values across sessions and
// materializes them as shell-exportable `export NAME=VALUE` assignments.
package ledger

import (
	"fmt"
	"maps"
	"os"
	"sort"
	"strings"

	"github.com/envtree/envtree/internal/document"
)

// Ledger is the identity→value map behind one editing session. original
// holds the state the store had when it was last read or written; current
// holds it plus this session's edits. The two diverging is what "unsaved
// changes" means.
type Ledger struct {
	path     string
	original map[string]string
	current  map[string]string
}

// Open loads the store at path. A missing store is an empty ledger, not
// an error, and malformed lines are skipped rather than failing the load.
func Open(path string) (*Ledger, error) {
	l := &Ledger{
		path:     path,
		original: make(map[string]string),
		current:  make(map[string]string),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		name, value, ok := parseExport(line)
		if !ok {
			continue
		}
		l.original[name] = value
	}
	maps.Copy(l.current, l.original)
	return l, nil
}

// Path returns the store file this ledger reads and writes.
func (l *Ledger) Path() string {
	return l.path
}

// Get looks up the current value recorded under identity.
func (l *Ledger) Get(identity string) (string, bool) {
	v, ok := l.current[identity]
	return v, ok
}

// Record upserts a value under identity. Entries are never removed.
func (l *Ledger) Record(identity, value string) {
	l.current[identity] = value
}

// Dirty reports whether the session holds values the store does not.
func (l *Ledger) Dirty() bool {
	return !maps.Equal(l.current, l.original)
}

// Len returns the number of entries in the current snapshot.
func (l *Ledger) Len() int {
	return len(l.current)
}

// Values returns a copy of the current snapshot.
func (l *Ledger) Values() map[string]string {
	out := make(map[string]string, len(l.current))
	maps.Copy(out, l.current)
	return out
}

// Rehydrate overwrites leaf display values from the ledger, so a prior
// session's edits are visible before the first render. A leaf with an
// environment-variable binding is looked up under that name, any other
// leaf under its path identity. Idempotent.
func (l *Ledger) Rehydrate(root *document.Node) {
	root.Walk(func(n *document.Node) {
		if !n.IsLeaf() {
			return
		}
		if v, ok := l.current[n.Identity()]; ok {
			n.DisplayValue = v
		}
	})
}

// Persist overwrites the store wholesale with the current snapshot, one
// export line per entry sorted by name, then re-bases the original
// snapshot to the written state. Sorted output makes a load/persist cycle
// with no edits byte-stable.
func (l *Ledger) Persist() error {
	names := make([]string, 0, len(l.current))
	for name := range l.current {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "export %s=%s\n", name, l.current[name])
	}
	if err := os.WriteFile(l.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	l.original = make(map[string]string, len(l.current))
	maps.Copy(l.original, l.current)
	return nil
}

// parseExport reads one store line. Only `export NAME=VALUE` directives
// count; one level of single or double quotes around VALUE is stripped.
func parseExport(line string) (name, value string, ok bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "export ")
	if !ok {
		return "", "", false
	}
	name, value, ok = strings.Cut(rest, "=")
	if !ok {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", false
	}
	return name, unquote(value), true
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
