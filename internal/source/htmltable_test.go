package source

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduleView/internal/schedule"
)

func TestParseHTMLTable(t *testing.T) {
	t.Parallel()

	f, err := os.Open("testdata/listings.html")
	require.NoError(t, err)
	defer f.Close()

	table, err := ParseHTMLTable(f, "#tblSearchResults")
	require.NoError(t, err)

	rows := table.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "Class", rows[0][2])
	assert.Equal(t, []string{"", "101", "Intro Yoga", "Lee", "Mon, Oct 5", "9:00 am - 10:00 am", "Studio B", "5 / 10"}, rows[1])

	records, err := schedule.Scrape(table)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Spin", records[1].Name)
	assert.Equal(t, "10:00 am - 11:30 am CDT", records[1].Time)
	assert.Equal(t, "0 / 12", records[1].Capacity)
}

func TestParseHTMLTableNoResults(t *testing.T) {
	t.Parallel()

	f, err := os.Open("testdata/no_results.html")
	require.NoError(t, err)
	defer f.Close()

	table, err := ParseHTMLTable(f, "#tblSearchResults")
	require.NoError(t, err)
	assert.True(t, schedule.IsNoResults(table))
}

func TestParseHTMLTableMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseHTMLTable(strings.NewReader("<html><body><p>nothing</p></body></html>"), "#tblSearchResults")
	assert.ErrorIs(t, err, schedule.ErrTableNotFound)
}
