package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"scheduleView/internal/lib/logger/sl"
	"scheduleView/internal/schedule"
)

// Poller re-reads the source on a cron schedule and reports a mutation
// whenever the table's fingerprint changes.
type Poller struct {
	log     *slog.Logger
	src     schedule.TableFetcher
	spec    string
	handler ChangeHandler

	mu   sync.Mutex
	last string
}

func NewPoller(log *slog.Logger, src schedule.TableFetcher, spec string, handler ChangeHandler) *Poller {
	return &Poller{
		log:     log.With(slog.String("component", "watcher/poller")),
		src:     src,
		spec:    spec,
		handler: handler,
	}
}

// Run polls until ctx is done. The first check only records a baseline.
func (p *Poller) Run(ctx context.Context) error {
	const op = "watcher.Poller.Run"

	logger := cronLogger{log: p.log}
	c := cron.New(cron.WithLogger(logger), cron.WithChain(cron.SkipIfStillRunning(logger)))

	if _, err := c.AddFunc(p.spec, func() {
		if _, err := p.Check(ctx); err != nil {
			p.log.Error("failed to check source", sl.Err(err))
		}
	}); err != nil {
		return fmt.Errorf("%s: invalid schedule %q: %w", op, p.spec, err)
	}

	if _, err := p.Check(ctx); err != nil {
		p.log.Error("failed to read initial source state", sl.Err(err))
	}

	p.log.Info("watching source", slog.String("schedule", p.spec))
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	p.log.Info("watcher stopped")

	return nil
}

// Check fetches the source once and notifies the handler if the table
// differs from the previous check.
func (p *Poller) Check(ctx context.Context) (bool, error) {
	const op = "watcher.Poller.Check"

	t, err := p.src.Fetch(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	fp := Fingerprint(t)

	p.mu.Lock()
	changed := p.last != "" && p.last != fp
	p.last = fp
	p.mu.Unlock()

	if changed {
		p.log.Info("table changed")
		p.handler.OnChange(ctx)
	}

	return changed, nil
}
