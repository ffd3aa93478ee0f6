package run

import "strings"

// CommaSeparator is the separator used for comma-separated configuration values
// (e.g. several additional folders in one environment variable).
const CommaSeparator = ","

// SplitCSV returns the trimmed, non-empty items of a comma-separated list.
// It returns nil when no item is left.
func SplitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, CommaSeparator) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
