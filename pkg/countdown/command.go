package countdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/mash-protocol/countdown/pkg/duration"
)

// Kind identifies a command variant.
type Kind uint8

const (
	// KindDisplayAll lists every timer with its remaining time.
	KindDisplayAll Kind = iota
	// KindAdd creates or overwrites a timer.
	KindAdd
	// KindCancel deletes a timer.
	KindCancel
)

// String returns the command keyword.
func (k Kind) String() string {
	switch k {
	case KindDisplayAll:
		return "display"
	case KindAdd:
		return "add"
	case KindCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Command is a parsed invocation.
type Command struct {
	Kind Kind

	// Name is set for KindAdd and KindCancel.
	Name string

	// Duration is set for KindAdd.
	Duration time.Duration
}

// ParseCommand maps positional arguments onto a Command.
//
// "add" takes the last argument as the duration and joins the rest with
// single spaces to form the name. "cancel" joins all remaining arguments.
// No arguments, or any other first argument, selects DisplayAll.
func ParseCommand(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{Kind: KindDisplayAll}, nil
	}

	rest := args[1:]
	switch args[0] {
	case "add":
		if len(rest) == 0 {
			return Command{}, fmt.Errorf("add: %w", ErrMissingDuration)
		}
		name := strings.Join(rest[:len(rest)-1], " ")
		if name == "" {
			return Command{}, fmt.Errorf("add: %w", ErrMissingName)
		}
		d, err := duration.Parse(rest[len(rest)-1])
		if err != nil {
			return Command{}, fmt.Errorf("add %s: %w", name, err)
		}
		return Command{Kind: KindAdd, Name: name, Duration: d}, nil

	case "cancel":
		name := strings.Join(rest, " ")
		if name == "" {
			return Command{}, fmt.Errorf("cancel: %w", ErrMissingName)
		}
		return Command{Kind: KindCancel, Name: name}, nil

	default:
		return Command{Kind: KindDisplayAll}, nil
	}
}
