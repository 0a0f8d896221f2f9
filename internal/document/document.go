// Package document builds an addressable node tree from a nested
// configuration document, extracting ${VAR:default} placeholders and
// overlaying trailing comments from the raw source text.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads and parses the document at path into a node tree. The format
// is chosen by extension: TOML goes through BurntSushi, everything else
// through the yaml.v3 node API (YAML is a JSON superset, so .json works
// too, and mapping order survives). Read and parse failures degrade to a
// synthetic root holding a single "error" leaf so the editor stays usable.
func Load(path string) *Node {
	data, err := os.ReadFile(path)
	if err != nil {
		return errorRoot(fmt.Errorf("failed to read document: %w", err))
	}
	root, err := Parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return errorRoot(err)
	}
	AttachComments(root, ScanComments(string(data)))
	return root
}

// Parse builds the node tree for raw document text. ext selects the
// parser; only ".toml" leaves the yaml/json path.
func Parse(data []byte, ext string) (*Node, error) {
	if ext == ".toml" {
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		return buildAny("root", m, nil), nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if len(doc.Content) == 0 {
		return &Node{Key: "root"}, nil
	}
	return buildYAML("root", doc.Content[0], nil), nil
}

// errorRoot is the single-node fallback tree shown when a document cannot
// be loaded at all.
func errorRoot(err error) *Node {
	root := &Node{Key: "root"}
	root.Children = []*Node{{
		Key:          "error",
		DisplayValue: err.Error(),
		Parent:       root,
	}}
	return root
}

func buildYAML(key string, val *yaml.Node, parent *Node) *Node {
	if val.Kind == yaml.AliasNode && val.Alias != nil {
		val = val.Alias
	}
	n := &Node{Key: key, Parent: parent}
	switch val.Kind {
	case yaml.MappingNode:
		// Content holds key/value node pairs in document order.
		for i := 0; i+1 < len(val.Content); i += 2 {
			n.Children = append(n.Children, buildYAML(val.Content[i].Value, val.Content[i+1], n))
		}
	case yaml.SequenceNode:
		n.DisplayValue = flowYAML(val)
	default:
		// Placeholders are only recognized in string scalars; numbers and
		// booleans keep their canonical scalar text.
		if val.Tag == "!!str" {
			if name, def, ok := ParsePlaceholder(val.Value); ok {
				n.EnvVar = name
				n.DisplayValue = def
				return n
			}
		}
		n.DisplayValue = val.Value
	}
	return n
}

// flowYAML renders a composite value in flow form, e.g. [a, b, {k: v}].
// Sequences are leaves in this tree, so their content is display text.
func flowYAML(val *yaml.Node) string {
	switch val.Kind {
	case yaml.SequenceNode:
		parts := make([]string, 0, len(val.Content))
		for _, c := range val.Content {
			parts = append(parts, flowYAML(c))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case yaml.MappingNode:
		parts := make([]string, 0, len(val.Content)/2)
		for i := 0; i+1 < len(val.Content); i += 2 {
			parts = append(parts, val.Content[i].Value+": "+flowYAML(val.Content[i+1]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return val.Value
	}
}

// buildAny builds from the map[string]any form TOML decodes into. Go maps
// carry no declaration order, so children are sorted by key; that keeps
// path identities stable across reparses, which is what the ledger needs.
func buildAny(key string, val any, parent *Node) *Node {
	n := &Node{Key: key, Parent: parent}
	switch v := val.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.Children = append(n.Children, buildAny(k, v[k], n))
		}
	case string:
		if name, def, ok := ParsePlaceholder(v); ok {
			n.EnvVar = name
			n.DisplayValue = def
			return n
		}
		n.DisplayValue = v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		n.DisplayValue = "[" + strings.Join(parts, ", ") + "]"
	default:
		n.DisplayValue = fmt.Sprintf("%v", v)
	}
	return n
}
