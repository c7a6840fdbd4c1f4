// Package log provides the countdown operation journal.
//
// The journal is an append-only record of what each countdown invocation
// did: timers added, timers canceled, listings shown and failures. It is
// separate from operational logging (slog). Operational logs are meant for a
// human watching stderr, the journal is a machine-readable trace that can be
// inspected later with the countdown-log tool.
//
// # Basic Usage
//
//	// Discard events (the default)
//	cfg.Journal = log.NoopLogger{}
//
//	// Append to a file
//	fl, err := log.NewFileLogger("countdown.jlog")
//	cfg.Journal = fl
//
//	// File plus debug output on stderr
//	cfg.Journal = log.NewMultiLogger(fl, log.NewSlogAdapter(slog.Default()))
//
// # File Format
//
// Journal files are a stream of CBOR-encoded Event values with integer map
// keys. There is no header and no framing; a reader decodes events until
// EOF.
package log
