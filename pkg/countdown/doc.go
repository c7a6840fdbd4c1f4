// Package countdown implements named countdown timers.
//
// A Countdown is a name plus an absolute expiry instant. Countdowns are kept
// in a Store, keyed by name, and are loaded fresh for every read; nothing is
// cached between operations. The Controller turns a parsed Command into
// Store calls and renders the user-facing text.
//
// # Names
//
// All Store operations take the bare timer name. How a name maps onto the
// backing storage (for example a file suffix) is the Store's business.
// Names must be non-empty and must not contain path separators or NUL
// bytes; stores report invalid names on Save as a *SaveError.
//
// # Errors
//
// Store implementations return *NotFoundError, *SaveError or *IOError.
// The Controller passes them through unchanged, except Timers which
// reports an empty list on failure.
package countdown
