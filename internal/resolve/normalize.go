// Package resolve matches free-text region names from third-party geometry
// sources against the canonical region keys of the statistics dataset.
package resolve

import "strings"

// adminSuffixes lists administrative suffix words stripped during region-name
// normalization. Geometry sources disagree on whether these appear.
var adminSuffixes = []string{
	" islands", " island",
	" union territory",
	" territory",
	" state",
	" ut",
}

// Normalize standardizes a region name for matching by:
//  1. Lowercasing
//  2. Collapsing "&" connectives into "and"
//  3. Stripping administrative suffix words (islands, state, UT, territory)
//  4. Removing all whitespace
//
// Normalize is idempotent: applying it to its own output is a no-op.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ""
	}

	n = strings.ReplaceAll(n, " & ", " and ")
	n = strings.ReplaceAll(n, "&", " and ")

	for _, suffix := range adminSuffixes {
		n = strings.ReplaceAll(n, suffix, "")
	}

	n = strings.Join(strings.Fields(n), "")
	return n
}
