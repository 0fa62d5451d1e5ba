package schedule

import (
	"errors"
	"strings"

	"scheduleView/internal/models"
)

// NoResultsMarker is shown by the listing page in place of rows when a
// search matches nothing.
const NoResultsMarker = "No results matched the criteria"

var ErrTableNotFound = errors.New("listing table not found")

// Column offsets of the listing table.
const (
	colName     = 2
	colDate     = 4
	colTime     = 5
	colLocation = 6
	colCapacity = 7
)

// Scrape converts the rows of t into event records, skipping the header row.
// A table showing the no-results marker yields no records and no error.
func Scrape(t Table) ([]models.EventRecord, error) {
	if t == nil {
		return nil, ErrTableNotFound
	}

	if strings.Contains(t.Text(), NoResultsMarker) {
		return nil, nil
	}

	rows := t.Rows()
	if len(rows) <= 1 {
		return []models.EventRecord{}, nil
	}

	records := make([]models.EventRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, models.EventRecord{
			Time:     cell(row, colTime),
			Date:     cell(row, colDate),
			Location: cell(row, colLocation),
			Name:     cell(row, colName),
			Capacity: cell(row, colCapacity),
		})
	}

	return records, nil
}

// IsNoResults reports whether t shows the no-results marker.
func IsNoResults(t Table) bool {
	return t != nil && strings.Contains(t.Text(), NoResultsMarker)
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
