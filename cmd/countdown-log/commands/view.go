// Package commands implements the countdown-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/mash-protocol/countdown/pkg/log"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// ViewFilter selects events for the view command.
type ViewFilter struct {
	Action     *log.Action
	Name       string
	FailedOnly bool
}

// ParseActionFlag parses the -action flag value.
func ParseActionFlag(s string) (log.Action, error) {
	a, ok := log.ParseAction(s)
	if !ok {
		return 0, fmt.Errorf("unknown action: %s (valid: add, cancel, display)", s)
	}
	return a, nil
}

// RunView prints the journal at path in human-readable form.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		Action:     filter.Action,
		Name:       filter.Name,
		FailedOnly: filter.FailedOnly,
	})
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes one line per event plus an indented detail line.
func formatEvent(w io.Writer, event log.Event) {
	status := "OK"
	if event.Failed() {
		status = "FAILED"
	}

	fmt.Fprintf(w, "%s [run:%s] %-7s %-6s %s\n",
		event.Timestamp.UTC().Format(timestampLayout),
		shortenID(event.InvocationID),
		event.Action.String(),
		status,
		event.Name,
	)

	switch {
	case event.Error != nil:
		fmt.Fprintf(w, "  Error: %s (%s)\n", event.Error.Message, event.Error.Kind)
	case event.Action == log.ActionAdd && event.EndTime != nil:
		fmt.Fprintf(w, "  Ends: %s", event.EndTime.UTC().Format(time.RFC3339))
		if event.Duration != nil {
			fmt.Fprintf(w, " (after %s)", *event.Duration)
		}
		fmt.Fprintln(w)
	case event.Action == log.ActionDisplay && event.Count != nil:
		fmt.Fprintf(w, "  Timers: %d\n", *event.Count)
	}
}

// shortenID returns the first 8 characters of an invocation ID.
func shortenID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
