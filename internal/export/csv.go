package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/stratalabs/teamscdr-cli/internal/graph"
)

// WriteCSV writes records as CSV with a header row. Columns are the sorted
// union of record keys.
func WriteCSV(w io.Writer, records []graph.CallRecord) error {
	cols := columns(records)

	writer := csv.NewWriter(w)
	if err := writer.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(cols))
	for _, rec := range records {
		for i, col := range cols {
			row[i] = formatValue(rec[col])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
