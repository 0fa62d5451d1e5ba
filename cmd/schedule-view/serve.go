package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"scheduleView/internal/config"
	"scheduleView/internal/http-server/handlers/schedule/getSchedule"
	"scheduleView/internal/http-server/handlers/schedule/getView"
	"scheduleView/internal/http-server/handlers/schedule/page"
	"scheduleView/internal/http-server/handlers/schedule/renderSchedule"
	"scheduleView/internal/http-server/handlers/schedule/toggleView"
	"scheduleView/internal/http-server/middleware/mwlogger"
	"scheduleView/internal/lib/logger/sl"
	"scheduleView/internal/schedule"
	"scheduleView/internal/source"
	"scheduleView/internal/watcher"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the table/schedule page and keep the schedule current",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				configPath = os.Getenv("CONFIG_PATH")
			}
			if configPath == "" {
				return errors.New("config path is not set (use --config or CONFIG_PATH)")
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the YAML config file")

	return cmd
}

type runner interface {
	Run(ctx context.Context) error
}

func serve(parent context.Context, cfg *config.Config) error {
	log := setupLogger(cfg.Env, os.Stdout)

	log.Info("Starting schedule view", slog.String("env", cfg.Env), slog.String("source", cfg.Source.Kind))
	log.Debug("Debug messages are enabled")

	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer stop()

	src, closeSource, err := source.New(ctx, log, cfg)
	if err != nil {
		log.Error("failed to init source", sl.Err(err))
		return err
	}
	defer func() {
		if err := closeSource(); err != nil {
			log.Error("failed to close source", sl.Err(err))
		}
	}()

	session := schedule.NewSession(log, src, schedule.NewRenderer(log, cfg.Palette))

	if err = session.Init(ctx); err != nil {
		log.Error("no table to observe", sl.Err(err))
		return fmt.Errorf("no table to observe: %w", err)
	}

	var w runner
	if cfg.Source.Kind == config.SourcePostgres {
		w = watcher.NewNotifier(log, cfg.Database.DSN(), cfg.Database.Channel, session)
	} else {
		w = watcher.NewPoller(log, src, cfg.Watch.Schedule, session)
	}

	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		if err := w.Run(ctx); err != nil {
			log.Error("watcher stopped", sl.Err(err))
			stop()
		}
	}()

	router := newRouter(log, session)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	<-watchDone

	log.Info("application stopped")

	return nil
}

func newRouter(log *slog.Logger, session *schedule.Session) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/", page.New(log, session))
	router.Get("/schedule", getSchedule.New(log, session))
	router.Post("/schedule/render", renderSchedule.New(log, session))
	router.Get("/view", getView.New(log, session))
	router.Post("/view/toggle", toggleView.New(log, session))

	return router
}
