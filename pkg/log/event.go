package log

import (
	"encoding/json"
	"strings"
	"time"
)

// Event is one journal entry.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation completed.
	Timestamp time.Time `cbor:"1,keyasint" json:"timestamp"`

	// InvocationID identifies the process run (UUID).
	InvocationID string `cbor:"2,keyasint" json:"invocation_id"`

	// Action is the operation that was attempted.
	Action Action `cbor:"3,keyasint" json:"action"`

	// Name is the timer name. Empty for display events.
	Name string `cbor:"4,keyasint,omitempty" json:"name,omitempty"`

	// EndTime is the expiry instant of an added timer.
	EndTime *time.Time `cbor:"5,keyasint,omitempty" json:"end_time,omitempty"`

	// Duration is the requested duration of an added timer.
	Duration *time.Duration `cbor:"6,keyasint,omitempty" json:"duration_ns,omitempty"`

	// Count is the number of timers shown by a display.
	Count *int `cbor:"7,keyasint,omitempty" json:"count,omitempty"`

	// Error is set when the operation failed.
	Error *ErrorData `cbor:"8,keyasint,omitempty" json:"error,omitempty"`
}

// Failed reports whether the event records a failed operation.
func (e Event) Failed() bool {
	return e.Error != nil
}

// Action identifies a controller operation.
type Action uint8

const (
	// ActionAdd records an added or overwritten timer.
	ActionAdd Action = 0
	// ActionCancel records a deleted timer.
	ActionCancel Action = 1
	// ActionDisplay records a listing of all timers.
	ActionDisplay Action = 2
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "ADD"
	case ActionCancel:
		return "CANCEL"
	case ActionDisplay:
		return "DISPLAY"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON encodes the action by name for exports.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// ParseAction parses an action name, case-insensitively.
func ParseAction(s string) (Action, bool) {
	switch strings.ToUpper(s) {
	case "ADD":
		return ActionAdd, true
	case "CANCEL":
		return ActionCancel, true
	case "DISPLAY":
		return ActionDisplay, true
	default:
		return 0, false
	}
}

// ErrorData describes a failed operation.
type ErrorData struct {
	// Message is the error text as shown to the user.
	Message string `cbor:"1,keyasint" json:"message"`

	// Kind classifies the failure (not_found, save, io, other).
	Kind string `cbor:"2,keyasint,omitempty" json:"kind,omitempty"`
}
