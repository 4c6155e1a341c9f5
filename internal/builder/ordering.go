package builder

import "sort"

// OrderFiles merges the configured explicit ordering with the discovered
// filenames: names listed in explicit and present in discovered come first,
// in the listed order; everything else follows sorted lexicographically.
// Listed names missing from discovered are silently omitted.
func OrderFiles(discovered, explicit []string) []string {
	remaining := make(map[string]bool, len(discovered))
	for _, name := range discovered {
		remaining[name] = true
	}

	ordered := make([]string, 0, len(discovered))
	for _, name := range explicit {
		if remaining[name] {
			ordered = append(ordered, name)
			delete(remaining, name)
		}
	}

	rest := make([]string, 0, len(remaining))
	for name := range remaining {
		rest = append(rest, name)
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}
