package eventpublisher

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/avd/splitbook/internal/domain"
	"github.com/avd/splitbook/internal/infrastructure/logging"
	"github.com/avd/splitbook/internal/usecase"
)

// LogSink implements usecase.NotificationSink by writing every event
// to the structured log. It is the default sink when no external
// consumer is wired in.
type LogSink struct {
	logger *logging.Logger
}

// NewLogSink creates a new LogSink.
func NewLogSink(logger *logging.Logger) *LogSink {
	if logger == nil {
		logger = logging.New(slog.LevelInfo, "json")
	}

	return &LogSink{logger: logger}
}

// Publish logs the event. Never blocks, never fails.
func (s *LogSink) Publish(ctx context.Context, event domain.Event) {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		s.logger.ErrorCtx(ctx, "failed to marshal event payload",
			slog.String("type", event.Type),
			slog.String("transaction_id", event.TransactionID),
			slog.String("error", err.Error()))
		return
	}

	s.logger.InfoCtx(ctx, "event",
		slog.String("type", event.Type),
		slog.String("transaction_id", event.TransactionID),
		slog.String("payload", string(payload)),
		slog.Time("occurred_at", event.OccurredAt))
}

// Fanout delivers each event to every registered sink, in registration
// order.
type Fanout struct {
	sinks []usecase.NotificationSink
}

// NewFanout creates a Fanout over the given sinks.
func NewFanout(sinks ...usecase.NotificationSink) *Fanout {
	return &Fanout{sinks: sinks}
}

// Add registers another sink. Not safe to call after Publish starts.
func (f *Fanout) Add(sink usecase.NotificationSink) {
	f.sinks = append(f.sinks, sink)
}

// Publish sends the event to each sink in order.
func (f *Fanout) Publish(ctx context.Context, event domain.Event) {
	for _, sink := range f.sinks {
		sink.Publish(ctx, event)
	}
}
