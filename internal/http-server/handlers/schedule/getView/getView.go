package getView

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"scheduleView/internal/lib/api/response"
	"scheduleView/internal/schedule"
)

type ViewResponse struct {
	response.Response
	Mode  string `json:"mode"`
	Label string `json:"label"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ModeGetter
type ModeGetter interface {
	Mode() schedule.Mode
}

func New(log *slog.Logger, modeGetter ModeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.getView.New"

		log := log.With(slog.String("op", op))

		mode := modeGetter.Mode()

		log.Debug("view mode retrieved", slog.String("mode", mode.String()))

		ResponseOK(w, r, mode)
	}
}

// ResponseOK writes the mode together with the caption of the control that
// switches away from it.
func ResponseOK(w http.ResponseWriter, r *http.Request, mode schedule.Mode) {
	render.JSON(w, r, ViewResponse{
		Response: response.OK(),
		Mode:     mode.String(),
		Label:    mode.Label(),
	})
}
