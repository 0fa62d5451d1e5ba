// Package watcher observes a listing source and reports every mutation.
package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"scheduleView/internal/lib/logger/sl"
	"scheduleView/internal/schedule"
)

// ChangeHandler is notified once per observed mutation.
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChangeHandler
type ChangeHandler interface {
	OnChange(ctx context.Context)
}

// Fingerprint hashes the visible content of t.
func Fingerprint(t schedule.Table) string {
	h := sha256.New()
	for _, row := range t.Rows() {
		for _, c := range row {
			h.Write([]byte(c))
			h.Write([]byte{0x1f})
		}
		h.Write([]byte{0x1e})
	}
	h.Write([]byte(t.Text()))

	return hex.EncodeToString(h.Sum(nil))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append([]interface{}{sl.Err(err)}, keysAndValues...)...)
}
