package schedule

import "strings"

// Table is a tabular listing source. Row 0 is the header row.
type Table interface {
	Rows() [][]string
	// Text is the full visible text of the table, used to detect the
	// no-results marker.
	Text() string
}

// TextTable is an in-memory Table.
type TextTable struct {
	Cells   [][]string
	Content string
}

func (t *TextTable) Rows() [][]string {
	return t.Cells
}

func (t *TextTable) Text() string {
	if t.Content != "" {
		return t.Content
	}

	var b strings.Builder
	for _, row := range t.Cells {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}

	return b.String()
}
