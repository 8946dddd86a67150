package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table renders aligned text tables. Rows are replaced wholesale with
// SetRows; there is no incremental update.
type Table struct {
	columns []Column
	rows    [][]string
	empty   string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// EmptyMessage sets the line rendered in place of rows when there are none.
func (t *Table) EmptyMessage(msg string) *Table {
	t.empty = msg
	return t
}

// SetRows discards all rows and stores rows instead. Values beyond the column
// count are ignored; missing values render empty.
func (t *Table) SetRows(rows [][]string) {
	t.rows = t.rows[:0]
	for _, r := range rows {
		t.AddRow(r...)
	}
}

// AddRow appends a row.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = bold.Sprint(pad(col.Header, widths[i], col.Align))
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, sep); err != nil {
		return err
	}

	if len(t.rows) == 0 && t.empty != "" {
		if _, err := fmt.Fprintf(w, "  %s\n", t.empty); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
		return nil
	}

	for _, row := range t.rows {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			// Padding uses the raw value length, not the ANSI-colored one.
			cell := pad(row[i], widths[i], col.Align)
			if col.Color != nil && row[i] != "" {
				cell = strings.Replace(cell, row[i], col.Color(row[i]), 1)
			}
			parts[i] = cell
		}
		if err := writeLine(w, parts); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int, align Alignment) string {
	if align == AlignRight {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}

func writeLine(w io.Writer, parts []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
