package schedule

import (
	"github.com/go-playground/validator/v10"

	"scheduleView/internal/models"
)

// ColorRule accepts hex, rgb(a) and hsl(a) colors and plain color names.
const ColorRule = "hexcolor|rgb|rgba|hsl|hsla|alpha"

var colorValidate = validator.New()

// IsColor reports whether c is safe to place in a style attribute.
func IsColor(c string) bool {
	return colorValidate.Var(c, ColorRule) == nil
}

// DefaultPalette is cycled through as new event names are seen.
var DefaultPalette = []string{
	"#F8B195", "#F67280", "#C06C84", "#6C5B7B",
	"#99B898", "#E84A5F", "#999966", "#A8E6CE", "#DCEDC2", "#FFAAA6",
	"#E1F5C4", "#EC2049", "#EDE574", "#F9D423", "#F9D", "#FC913A",
	"#FF4E50", "#A7226E", "#FFA07A", "#FFB7D5", "#FFC0A8", "#FFE5D9",
}

// ColorAssignment maps an event name to its color.
type ColorAssignment map[string]string

// AssignColors binds each distinct name to the next palette entry in
// first-seen order, wrapping around once the palette is used up.
// Records excluded from layout still take their slot.
func AssignColors(records []models.EventRecord, palette []string) ColorAssignment {
	colors := make(ColorAssignment)
	next := 0

	for _, rec := range records {
		if _, ok := colors[rec.Name]; ok {
			continue
		}
		if len(palette) == 0 {
			colors[rec.Name] = ""
			continue
		}
		colors[rec.Name] = palette[next]
		next = (next + 1) % len(palette)
	}

	return colors
}
