package mapcolors

import "strings"

// ParseInlineStyle parses a "prop:value;prop:value" style attribute into a
// map of trimmed property names to trimmed values. Declarations that do not
// contain exactly one colon are skipped.
func ParseInlineStyle(style string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		parts := strings.Split(decl, ":")
		if len(parts) != 2 {
			continue
		}
		props[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return props
}
