package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/stratalabs/teamscdr-cli/internal/graph"
)

// WriteJSON writes records as a pretty-printed JSON array.
func WriteJSON(w io.Writer, records []graph.CallRecord) error {
	if records == nil {
		records = []graph.CallRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return nil
}
