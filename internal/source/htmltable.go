package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"scheduleView/internal/schedule"
)

// ParseHTMLTable reads an HTML document and extracts the first table
// matching selector. Cell text is whitespace-collapsed.
func ParseHTMLTable(r io.Reader, selector string) (schedule.Table, error) {
	const op = "source.ParseHTMLTable"

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tbl := doc.Find(selector).First()
	if tbl.Length() == 0 {
		return nil, fmt.Errorf("%s: %w: %s", op, schedule.ErrTableNotFound, selector)
	}

	var rows [][]string
	tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.ChildrenFiltered("td, th").Each(func(_ int, c *goquery.Selection) {
			cells = append(cells, collapse(c.Text()))
		})
		rows = append(rows, cells)
	})

	return &schedule.TextTable{
		Cells:   rows,
		Content: collapse(tbl.Text()),
	}, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
