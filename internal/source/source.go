// Package source provides the listing tables the schedule is built from.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"scheduleView/internal/config"
	"scheduleView/internal/schedule"
	"scheduleView/internal/storage/postgres"
)

var ErrUnsupportedKind = errors.New("unsupported source kind")

// Source fetches the current listing table.
type Source interface {
	Fetch(ctx context.Context) (schedule.Table, error)
}

// New builds the source selected by cfg. The returned close function
// releases browser or database resources and is never nil.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (Source, func() error, error) {
	const op = "source.New"

	noop := func() error { return nil }

	switch cfg.Source.Kind {
	case config.SourceFile:
		return NewFile(cfg.Source.Path, cfg.Source.Selector), noop, nil
	case config.SourceHTTP:
		return NewHTTP(cfg.Source.URL, cfg.Source.Selector, cfg.Source.Timeout), noop, nil
	case config.SourceBrowser:
		b := NewBrowser(ctx, log, cfg.Source.URL, cfg.Source.Selector, cfg.Source.Timeout)
		return b, b.Close, nil
	case config.SourcePostgres:
		storage, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", op, err)
		}
		return NewPostgres(storage, cfg.Database.Query), storage.Close, nil
	default:
		return nil, noop, fmt.Errorf("%s: %w: %q", op, ErrUnsupportedKind, cfg.Source.Kind)
	}
}
