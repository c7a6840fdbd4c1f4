package countdown

import (
	"strings"
	"time"
)

// Countdown is a named timer with an absolute expiry instant.
type Countdown struct {
	// Name identifies the timer and is its storage key.
	Name string

	// EndTime is when the timer expires.
	EndTime time.Time
}

// New creates a countdown that expires d after now.
func New(name string, now time.Time, d time.Duration) Countdown {
	return Countdown{Name: name, EndTime: now.Add(d)}
}

// Remaining returns the time left until expiry, or zero once expired.
func (c Countdown) Remaining(now time.Time) time.Duration {
	if c.EndTime.After(now) {
		return c.EndTime.Sub(now)
	}
	return 0
}

// Expired reports whether the countdown has run out at now.
func (c Countdown) Expired(now time.Time) bool {
	return c.Remaining(now) == 0
}

// ValidateName checks that name can be used as a storage key.
func ValidateName(name string) error {
	switch {
	case name == "":
		return ErrMissingName
	case name == "." || name == "..":
		return ErrInvalidName
	case strings.ContainsAny(name, "/\\\x00"):
		return ErrInvalidName
	}
	return nil
}
