package document

import "strings"

// ScanComments extracts trailing-comment candidates from raw source text.
// For every line containing '#', the text before it is reduced to its
// leading key token (anything past a ':' or '=' dropped, whitespace
// trimmed) and mapped to the comment text from '#' onward. A repeated
// candidate keeps its last occurrence.
func ScanComments(src string) map[string]string {
	comments := make(map[string]string)
	for _, line := range strings.Split(src, "\n") {
		i := strings.Index(line, "#")
		if i < 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		if j := strings.IndexAny(key, ":="); j >= 0 {
			key = strings.TrimSpace(key[:j])
		}
		if key == "" {
			continue
		}
		comments[key] = strings.TrimSpace(line[i:])
	}
	return comments
}

// AttachComments overlays scanned comments onto the tree. Matching is by
// literal key text with no awareness of nesting or line position, so a
// comment attaches to every node in the tree sharing that key. The
// cross-attachment between same-named keys is a known limitation of the
// heuristic, kept rather than guessed around.
func AttachComments(root *Node, comments map[string]string) {
	if len(comments) == 0 {
		return
	}
	root.Walk(func(n *Node) {
		if c, ok := comments[n.Key]; ok {
			n.Comment = c
		}
	})
}
