package document

import "strings"

// ParsePlaceholder splits a ${VAR} or ${VAR:default} scalar into its
// variable name and default literal. The pattern must start at offset 0
// and have a closing brace; the body is split on the first colon. A body
// whose variable name is empty after trimming (`${}`, `${:x}`) is not a
// placeholder and the caller keeps the literal as-is.
func ParsePlaceholder(s string) (envVar, defaultVal string, ok bool) {
	if !strings.HasPrefix(s, "${") {
		return "", "", false
	}
	end := strings.Index(s, "}")
	if end < 0 {
		return "", "", false
	}
	name := s[2:end]
	def := ""
	if i := strings.Index(name, ":"); i >= 0 {
		name, def = name[:i], name[i+1:]
	}
	if strings.TrimSpace(name) == "" {
		return "", "", false
	}
	return name, def, true
}
