package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/stratalabs/teamscdr-cli/internal/graph"
)

// maxCellWidth keeps wide fields (record IDs, URLs) from blowing up the table.
const maxCellWidth = 36

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// WriteTable renders records as a bordered terminal table.
func WriteTable(w io.Writer, records []graph.CallRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No records.")
		return err
	}

	cols := columns(records)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(cols...)

	for _, rec := range records {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = truncate(formatValue(rec[col]), maxCellWidth)
		}
		tbl.Row(row...)
	}

	if _, err := fmt.Fprintln(w, tbl.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d record(s)\n", len(records))
	return err
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
