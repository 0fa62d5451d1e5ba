package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"scheduleView/internal/lib/logger/sl"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Notifier reports a mutation for every NOTIFY received on a channel.
type Notifier struct {
	log     *slog.Logger
	dsn     string
	channel string
	handler ChangeHandler
}

func NewNotifier(log *slog.Logger, dsn, channel string, handler ChangeHandler) *Notifier {
	return &Notifier{
		log:     log.With(slog.String("component", "watcher/notifier"), slog.String("channel", channel)),
		dsn:     dsn,
		channel: channel,
		handler: handler,
	}
}

// Run listens until ctx is done.
func (n *Notifier) Run(ctx context.Context) error {
	const op = "watcher.Notifier.Run"

	listener := pq.NewListener(n.dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			n.log.Error("listener event", slog.Int("event", int(ev)), sl.Err(err))
		}
	})
	defer listener.Close()

	if err := listener.Listen(n.channel); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n.log.Info("listening for notifications")

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	return n.dispatch(ctx, listener.Notify, ticker.C, listener.Ping)
}

// dispatch forwards notifications to the handler. A nil notification means
// the connection was re-established and changes may have been missed, so
// it counts as a mutation too.
func (n *Notifier) dispatch(ctx context.Context, notify <-chan *pq.Notification, ping <-chan time.Time, pingFn func() error) error {
	for {
		select {
		case <-ctx.Done():
			n.log.Info("notifier stopped")
			return nil
		case ev, ok := <-notify:
			if !ok {
				return nil
			}
			if ev != nil {
				n.log.Debug("notification received", slog.String("payload", ev.Extra))
			} else {
				n.log.Info("listener reconnected")
			}
			n.handler.OnChange(ctx)
		case <-ping:
			if err := pingFn(); err != nil {
				n.log.Error("listener ping failed", sl.Err(err))
			}
		}
	}
}
