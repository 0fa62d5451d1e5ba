package schedule

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"

	"scheduleView/internal/lib/logger/sl"
	"scheduleView/internal/models"
)

// EmptyFragment is rendered when the source shows no results.
const EmptyFragment = "<div></div>"

// Palette entries are checked with IsColor before they reach the template.
var fragmentTmpl = template.Must(template.New("schedule").Funcs(template.FuncMap{
	"css": func(c string) template.CSS { return template.CSS(c) },
}).Parse(
	`<div id="scheduleViewContainer">` +
		`{{range .Sections}}` +
		`<h3>{{.Date}}</h3><table style="border-spacing: 0 10px; width: 100%;">` +
		`<tr><th style="width:25%; text-align:center">Location</th>` +
		`{{range $.Header}}<th style="width:2%; text-align:left;">{{.}}</th>{{end}}</tr>` +
		`{{range .Rows}}<tr style="text-align:center"><td style="text-align:left;">{{.Location}}</td>` +
		`{{range .Cells}}{{if .Span}}` +
		`<td colspan={{.Span.Length}} style="background: {{css .Span.Color}}; border: 1px solid #222;">{{.Span.Label}}</td>` +
		`{{else}}<td style="width:2%"></td>{{end}}{{end}}</tr>{{end}}` +
		`</table><br/>` +
		`{{end}}` +
		`</div>`,
))

type fragmentData struct {
	Header   []string
	Sections []sectionData
}

type sectionData struct {
	Date string
	Rows []rowData
}

type rowData struct {
	Location string
	Cells    []Cell
}

// Renderer turns listing tables into schedule markup.
type Renderer struct {
	log     *slog.Logger
	palette []string
}

// NewRenderer drops palette entries that are not colors; an empty result
// falls back to DefaultPalette.
func NewRenderer(log *slog.Logger, palette []string) *Renderer {
	colors := make([]string, 0, len(palette))
	for _, c := range palette {
		if !IsColor(c) {
			log.Warn("palette entry is not a color, skipped", slog.String("color", c))
			continue
		}
		colors = append(colors, c)
	}

	palette = colors
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Renderer{
		log:     log,
		palette: palette,
	}
}

// Render scrapes t and renders the schedule. A missing table is an error;
// a table showing the no-results marker renders EmptyFragment.
func (r *Renderer) Render(t Table) (string, error) {
	const op = "schedule.Renderer.Render"

	records, err := Scrape(t)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if IsNoResults(t) {
		r.log.Debug("source shows no results", slog.String("op", op))
		return EmptyFragment, nil
	}

	return r.RenderRecords(records)
}

// RenderRecords renders already scraped records.
func (r *Renderer) RenderRecords(records []models.EventRecord) (string, error) {
	const op = "schedule.Renderer.RenderRecords"

	log := r.log.With(slog.String("op", op))

	idx := Group(records)
	colors := AssignColors(records, r.palette)
	layout := BuildLayout(idx, colors)

	for _, s := range layout.Skipped {
		log.Debug("entry skipped",
			slog.String("date", s.Date),
			slog.String("location", s.Location),
			slog.String("name", s.Entry.Name),
			slog.String("time", s.Entry.Time),
			sl.Err(s.Err),
		)
	}
	for _, o := range layout.Overwrites {
		log.Warn("overlapping events, later one kept",
			slog.String("date", o.Date),
			slog.String("location", o.Location),
			slog.String("lost", o.Lost.Label),
			slog.String("kept", o.By.Label),
		)
	}

	data := fragmentData{Header: HeaderLabels()}
	for _, sec := range layout.Sections {
		sd := sectionData{Date: sec.Date}
		for i := range sec.Rows {
			sd.Rows = append(sd.Rows, rowData{
				Location: sec.Rows[i].Location,
				Cells:    sec.Rows[i].Cells(),
			})
		}
		data.Sections = append(data.Sections, sd)
	}

	var buf bytes.Buffer
	if err := fragmentTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("schedule rendered",
		slog.Int("records", len(records)),
		slog.Int("dates", len(layout.Sections)),
	)

	return buf.String(), nil
}
