package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes journal events to an slog.Logger at debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes one record for the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("invocation_id", event.InvocationID),
		slog.String("action", event.Action.String()),
	}

	if event.Name != "" {
		attrs = append(attrs, slog.String("name", event.Name))
	}
	if event.EndTime != nil {
		attrs = append(attrs, slog.Time("end_time", *event.EndTime))
	}
	if event.Duration != nil {
		attrs = append(attrs, slog.Duration("duration", *event.Duration))
	}
	if event.Count != nil {
		attrs = append(attrs, slog.Int("count", *event.Count))
	}
	if event.Error != nil {
		attrs = append(attrs,
			slog.String("error", event.Error.Message),
			slog.String("error_kind", event.Error.Kind),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "journal", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
