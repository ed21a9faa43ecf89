package prompt

import "strings"

// NormalizeList flattens raw list input into clean entries. Each item is
// split on commas, every fragment is trimmed, empties are dropped, and
// duplicates are removed case-insensitively while keeping the first
// occurrence's casing and position. A nil or all-blank input yields nil.
//
// The function is idempotent: feeding its output back in returns the
// same slice content.
func NormalizeList(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			key := strings.ToLower(part)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}
