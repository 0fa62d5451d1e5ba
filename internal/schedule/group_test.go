package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"scheduleView/internal/models"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	records := []models.EventRecord{
		{Date: "Tue", Location: "Gym", Name: "A", Time: "t1", Capacity: "1 / 5"},
		{Date: "Mon", Location: "Room2", Name: "B", Time: "t2", Capacity: "2 / 5"},
		{Date: "Tue", Location: "Annex", Name: "C", Time: "t3", Capacity: "3 / 5"},
		{Date: "Tue", Location: "Gym", Name: "D", Time: "t4", Capacity: "0 / 5"},
		{Date: "Mon", Location: "Room1", Name: "E", Time: "t5", Capacity: ""},
	}

	g := Group(records)

	assert.Equal(t, []string{"Tue", "Mon"}, g.Dates())
	assert.Equal(t, []string{"Gym", "Annex"}, g.Locations("Tue"))
	assert.Equal(t, []string{"Annex", "Gym"}, g.SortedLocations("Tue"))
	assert.Equal(t, []string{"Room1", "Room2"}, g.SortedLocations("Mon"))

	assert.Equal(t, []models.Entry{
		{Name: "A", Time: "t1", Capacity: "1"},
		{Name: "D", Time: "t4", Capacity: "0"},
	}, g.Entries("Tue", "Gym"))
	assert.Equal(t, []models.Entry{{Name: "E", Time: "t5", Capacity: ""}}, g.Entries("Mon", "Room1"))

	assert.Nil(t, g.Entries("Wed", "Gym"))
	assert.Nil(t, g.Locations("Wed"))
}

func TestGroupPreservesBucketOrder(t *testing.T) {
	t.Parallel()

	var records []models.EventRecord
	names := []string{"n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7"}
	for i, name := range names {
		loc := "L1"
		if i%3 == 0 {
			loc = "L2"
		}
		records = append(records, models.EventRecord{Date: "D", Location: loc, Name: name})
	}

	g := Group(records)

	var l1, l2 []string
	for _, e := range g.Entries("D", "L1") {
		l1 = append(l1, e.Name)
	}
	for _, e := range g.Entries("D", "L2") {
		l2 = append(l2, e.Name)
	}

	assert.Equal(t, []string{"n1", "n2", "n4", "n5", "n7"}, l1)
	assert.Equal(t, []string{"n0", "n3", "n6"}, l2)
}

func TestGroupedIndexYAML(t *testing.T) {
	t.Parallel()

	g := Group([]models.EventRecord{
		{Date: "Mon", Location: "Room2", Name: "A", Time: "9:00 am - 10:00 am", Capacity: "5 / 10"},
		{Date: "Mon", Location: "Room1", Name: "B", Time: "10:00 am - 11:00 am", Capacity: "3 / 10"},
	})

	out, err := yaml.Marshal(g)
	require.NoError(t, err)

	var decoded map[string]map[string][]models.Entry
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, map[string]map[string][]models.Entry{
		"Mon": {
			"Room2": {{Name: "A", Time: "9:00 am - 10:00 am", Capacity: "5"}},
			"Room1": {{Name: "B", Time: "10:00 am - 11:00 am", Capacity: "3"}},
		},
	}, decoded)

	text := string(out)
	assert.Less(t, strings.Index(text, "Room2"), strings.Index(text, "Room1"))
}

func TestCapacityNumerator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5", CapacityNumerator("5 / 10"))
	assert.Equal(t, "0", CapacityNumerator("0 / 10"))
	assert.Equal(t, "7", CapacityNumerator("7"))
	assert.Equal(t, "", CapacityNumerator(""))
}
