// Package duration parses and formats countdown durations.
//
// # Duration Strings
//
// A duration string holds up to three unit terms, each a run of decimal
// digits immediately followed by a unit letter:
//
//	h, H   hours
//	m, M   minutes
//	s, S   seconds
//
// Terms are matched independently, so order and separators do not matter:
// "2h30m", "30m 2h" and "2h,30m" all parse to 9000 seconds. Only the first
// term for each unit is used. Text that does not form a term is ignored, and
// a string with no terms parses to zero. This permissiveness is deliberate:
// the command line accepts whatever the user typed and a nonsense duration
// yields a timer that has already expired.
//
// Parse fails only when a term does not fit into a time.Duration.
//
// # Clock Format
//
// FormatClock renders a remaining duration as HH:MM:SS. Hours are not
// wrapped at 24, so 36 hours prints as "36:00:00".
package duration
