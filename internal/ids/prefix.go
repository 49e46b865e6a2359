package ids

import (
	"sort"
	"strings"
)

// UniquePrefixLengths returns the shortest unique prefix length for each ID.
// IDs are compared case-insensitively and keyed by their lowercase form.
func UniquePrefixLengths(ids []string) map[string]int {
	seen := make(map[string]bool, len(ids))
	sorted := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	// In sorted order the longest shared prefix is always with a neighbour.
	lengths := make(map[string]int, len(sorted))
	for i, id := range sorted {
		shared := 0
		if i > 0 {
			shared = max(shared, commonPrefixLen(id, sorted[i-1]))
		}
		if i < len(sorted)-1 {
			shared = max(shared, commonPrefixLen(id, sorted[i+1]))
		}
		lengths[id] = min(shared+1, len(id))
	}
	return lengths
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
