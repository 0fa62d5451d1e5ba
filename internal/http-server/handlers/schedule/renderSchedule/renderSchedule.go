package renderSchedule

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"scheduleView/internal/lib/api/response"
	"scheduleView/internal/lib/logger/sl"
	"scheduleView/internal/models"
)

// Row mirrors one listing table row. Cells other than the name may be
// empty; entries whose time cannot be read are left off the grid.
type Row struct {
	Name     string `json:"name" validate:"required"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Capacity string `json:"capacity"`
}

type RenderRequest struct {
	Rows []Row `json:"rows" validate:"required,min=1,dive"`
}

type RenderResponse struct {
	response.Response
	HTML string `json:"html"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RecordsRenderer
type RecordsRenderer interface {
	RenderRecords(records []models.EventRecord) (string, error)
}

// New renders a schedule for the posted rows without touching the
// session's display state.
func New(log *slog.Logger, renderer RecordsRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.renderSchedule.New"

		log := log.With(slog.String("op", op))

		var req RenderRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Int("rows", len(req.Rows)))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		records := make([]models.EventRecord, 0, len(req.Rows))
		for _, row := range req.Rows {
			records = append(records, models.EventRecord{
				Time:     row.Time,
				Date:     row.Date,
				Location: row.Location,
				Name:     row.Name,
				Capacity: row.Capacity,
			})
		}

		html, err := renderer.RenderRecords(records)
		if err != nil {
			log.Error("failed to render schedule", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to render schedule"))

			return
		}

		log.Info("schedule rendered", slog.Int("bytes", len(html)))

		responseOK(w, r, html)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, html string) {
	render.JSON(w, r, RenderResponse{
		Response: response.OK(),
		HTML:     html,
	})
}
