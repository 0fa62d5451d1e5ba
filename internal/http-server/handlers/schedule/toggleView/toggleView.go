package toggleView

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"scheduleView/internal/http-server/handlers/schedule/getView"
	"scheduleView/internal/lib/api/response"
	"scheduleView/internal/lib/logger/sl"
	"scheduleView/internal/schedule"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ViewToggler
type ViewToggler interface {
	Toggle(ctx context.Context) (schedule.Mode, error)
}

// New switches between the table and the schedule. Entering the schedule
// renders it from the current table.
func New(log *slog.Logger, toggler ViewToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.toggleView.New"

		log := log.With(slog.String("op", op))

		mode, err := toggler.Toggle(r.Context())
		if err != nil {
			log.Error("failed to toggle view", sl.Err(err))

			if errors.Is(err, schedule.ErrTableNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("listing table not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to render schedule"))
			return
		}

		log.Info("view toggled", slog.String("mode", mode.String()))

		getView.ResponseOK(w, r, mode)
	}
}
