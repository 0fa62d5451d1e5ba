package page

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"scheduleView/internal/lib/api/response"
	"scheduleView/internal/lib/logger/sl"
	"scheduleView/internal/schedule"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Schedule</title>
</head>
<body>
<div><a id="toggleView" href="javascript:void(0)" onclick="fetch('/view/toggle', {method: 'POST'}).then(function () { location.reload(); })">{{.Label}}</a></div>
<table id="tblSearchResults" style="display: {{if .ShowSchedule}}none{{else}}table{{end}};">
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
<div id="scheduleView" style="display: {{if .ShowSchedule}}block{{else}}none{{end}};">{{.Fragment}}</div>
</body>
</html>
`))

type pageData struct {
	Label        string
	ShowSchedule bool
	Rows         [][]string
	Fragment     template.HTML
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ViewState
type ViewState interface {
	Mode() schedule.Mode
	Fragment() string
	TableRows() [][]string
}

// New serves the page holding the toggle control, the raw table and the
// schedule. Only one of the two representations is visible.
func New(log *slog.Logger, state ViewState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.page.New"

		log := log.With(slog.String("op", op))

		mode := state.Mode()
		data := pageData{
			Label:        mode.Label(),
			ShowSchedule: mode == schedule.ModeSchedule,
			Rows:         state.TableRows(),
			// The fragment is produced by the schedule template, which
			// escapes every scraped value.
			Fragment: template.HTML(state.Fragment()),
		}

		var buf bytes.Buffer
		if err := pageTmpl.Execute(&buf, data); err != nil {
			log.Error("failed to render page", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to render page"))
			return
		}

		render.HTML(w, r, buf.String())
	}
}
