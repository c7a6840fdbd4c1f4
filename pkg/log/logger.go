package log

// Logger receives journal events.
type Logger interface {
	// Log records an event. Implementations must be safe for concurrent use
	// and must not report failures back to the caller.
	Log(event Event)
}

// NoopLogger discards all events. Usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
