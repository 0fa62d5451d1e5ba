package getSchedule

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FragmentGetter
type FragmentGetter interface {
	Fragment() string
}

// New serves the last rendered schedule fragment as HTML.
func New(log *slog.Logger, fragmentGetter FragmentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.getSchedule.New"

		log := log.With(slog.String("op", op))

		fragment := fragmentGetter.Fragment()

		log.Debug("schedule fragment served", slog.Int("bytes", len(fragment)))

		render.HTML(w, r, fragment)
	}
}
