package reductiongraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

// overheadDedupeKey builds the string that identifies an edge for the
// "same (source descriptor, target descriptor) pair appears twice with
// identical overhead" suppression rule (spec.md §4.6 point 4). Two rules
// collapse to one edge iff this key matches exactly, which requires both
// endpoints and every (field, polynomial) pair to agree.
func overheadDedupeKey(src, dst NodeID, overhead []registry.OverheadField) (string, error) {
	fields := sortedKeys(overhead)
	parts := make([]string, 0, len(fields)+2)
	parts = append(parts, fmt.Sprintf("%d>%d", src, dst))
	for _, f := range fields {
		h, err := f.Poly.Hash()
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s=%d", f.Field, h))
	}
	sort.Strings(parts[1:]) // keep the endpoint prefix first, fields sorted after
	return strings.Join(parts, "|"), nil
}
