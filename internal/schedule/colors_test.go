package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"scheduleView/internal/models"
)

func TestAssignColorsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	palette := []string{"red", "green", "blue"}
	records := []models.EventRecord{
		{Name: "A"}, {Name: "B"}, {Name: "A"}, {Name: "C"}, {Name: "D"}, {Name: "B"},
	}

	colors := AssignColors(records, palette)

	assert.Equal(t, ColorAssignment{
		"A": "red",
		"B": "green",
		"C": "blue",
		"D": "red",
	}, colors)
}

func TestAssignColorsCancelledStillTakesSlot(t *testing.T) {
	t.Parallel()

	records := []models.EventRecord{
		{Name: "Gone", Capacity: "0 / 10"},
		{Name: "Kept", Capacity: "4 / 10"},
	}

	colors := AssignColors(records, DefaultPalette)

	assert.Equal(t, DefaultPalette[0], colors["Gone"])
	assert.Equal(t, DefaultPalette[1], colors["Kept"])
}

func TestAssignColorsCollisionsOnlyAcrossPaletteCycles(t *testing.T) {
	t.Parallel()

	var records []models.EventRecord
	for i := 0; i < 3*len(DefaultPalette)+5; i++ {
		records = append(records, models.EventRecord{Name: fmt.Sprintf("event-%d", i)})
	}

	first := AssignColors(records, DefaultPalette)
	second := AssignColors(records, DefaultPalette)
	assert.Equal(t, first, second)

	for i := range records {
		for j := range records {
			same := first[records[i].Name] == first[records[j].Name]
			assert.Equal(t, (i-j)%len(DefaultPalette) == 0, same, "names %d and %d", i, j)
		}
	}
}

func TestAssignColorsEmptyPalette(t *testing.T) {
	t.Parallel()

	colors := AssignColors([]models.EventRecord{{Name: "A"}}, nil)
	assert.Equal(t, ColorAssignment{"A": ""}, colors)
}

func TestDefaultPaletteDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, c := range DefaultPalette {
		assert.False(t, seen[c], c)
		seen[c] = true
	}
}
