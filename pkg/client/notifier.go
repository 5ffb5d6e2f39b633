package client

import (
	"log/slog"
	"sync/atomic"
)

// Notifier receives the user-facing outcome of session and store calls.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// LogNotifier writes notifications to a slog logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Success(message string) {
	n.Logger.Info(message)
}

func (n LogNotifier) Error(message string) {
	n.Logger.Warn(message)
}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}

	return n
}

// inflight counts calls in progress for Loading().
type inflight struct {
	n atomic.Int32
}

func (f *inflight) begin() func() {
	f.n.Add(1)

	return func() { f.n.Add(-1) }
}

func (f *inflight) active() bool {
	return f.n.Load() > 0
}
