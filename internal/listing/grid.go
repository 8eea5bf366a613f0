package listing

import (
	fsutil "github.com/kk-code-lab/rls/internal/fs"
	textutil "github.com/kk-code-lab/rls/internal/textutil"
)

// Separator is the number of blank cells after every column.
const Separator = 2

// Column is one column of the grid in top-to-bottom order.
type Column struct {
	Entries []fsutil.Entry
	// Width is the widest label in the column, separator excluded.
	Width int
}

// Grid is a column-major layout: entry i lands in column i/Rows, row i%Rows.
type Grid struct {
	Rows    int
	Columns []Column
}

// Label is the text a grid cell shows for e.
func Label(e fsutil.Entry) string {
	return textutil.SanitizeTerminalText(e.Name)
}

// Plan finds the smallest row count whose column-major layout fits in width
// cells and partitions entries accordingly. One entry per row is always
// accepted, so Plan terminates for any width, including zero.
func Plan(entries []fsutil.Entry, width int) Grid {
	if len(entries) == 0 {
		return Grid{}
	}

	widths := make([]int, len(entries))
	for i, e := range entries {
		widths[i] = textutil.DisplayWidth(Label(e))
	}

	rows := 1
	for rows < len(entries) && layoutWidth(widths, rows) > width {
		rows++
	}

	return Grid{
		Rows:    rows,
		Columns: partition(entries, widths, rows),
	}
}

// layoutWidth sums column widths (separator included) for the given rows.
func layoutWidth(widths []int, rows int) int {
	total := 0
	for start := 0; start < len(widths); start += rows {
		end := min(start+rows, len(widths))
		total += maxWidth(widths[start:end]) + Separator
	}
	return total
}

func partition(entries []fsutil.Entry, widths []int, rows int) []Column {
	columns := make([]Column, 0, (len(entries)+rows-1)/rows)
	for start := 0; start < len(entries); start += rows {
		end := min(start+rows, len(entries))
		columns = append(columns, Column{
			Entries: entries[start:end:end],
			Width:   maxWidth(widths[start:end]),
		})
	}
	return columns
}

func maxWidth(widths []int) int {
	widest := 0
	for _, w := range widths {
		if w > widest {
			widest = w
		}
	}
	return widest
}
