// Package export writes call usage records as JSON, CSV or a terminal table.
//
// Records are schema-less, so tabular formats derive their columns from the
// records themselves: the column set is the sorted union of every key seen,
// and records missing a key leave that cell empty.
package export

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/stratalabs/teamscdr-cli/internal/graph"
)

// columns returns the sorted union of keys across all records.
func columns(records []graph.CallRecord) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for key := range rec {
			seen[key] = struct{}{}
		}
	}

	cols := make([]string, 0, len(seen))
	for key := range seen {
		cols = append(cols, key)
	}
	sort.Strings(cols)
	return cols
}

// formatValue renders a decoded JSON value as a cell string.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; render integers without decimals.
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		// Nested arrays and objects stay JSON-encoded.
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
