package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mash-protocol/countdown/pkg/log"
)

// Stats holds aggregate figures for a journal.
type Stats struct {
	TotalEvents    int
	EventsByAction map[log.Action]int
	Failures       int
	FailuresByKind map[string]int
	Invocations    map[string]struct{}
	Timers         map[string]*TimerStats
	TimeRange      struct {
		Start time.Time
		End   time.Time
	}
}

// TimerStats holds per-name figures.
type TimerStats struct {
	Added    int
	Canceled int
	LastEnd  time.Time
}

// RunStats summarises the journal at path.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

// CollectStats reads the journal at path and aggregates it.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByAction: make(map[log.Action]int),
		FailuresByKind: make(map[string]int),
		Invocations:    make(map[string]struct{}),
		Timers:         make(map[string]*TimerStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByAction[event.Action]++
		stats.Invocations[event.InvocationID] = struct{}{}

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		if event.Failed() {
			stats.Failures++
			stats.FailuresByKind[event.Error.Kind]++
			continue
		}

		if event.Name == "" {
			continue
		}
		ts, ok := stats.Timers[event.Name]
		if !ok {
			ts = &TimerStats{}
			stats.Timers[event.Name] = ts
		}
		switch event.Action {
		case log.ActionAdd:
			ts.Added++
			if event.EndTime != nil {
				ts.LastEnd = *event.EndTime
			}
		case log.ActionCancel:
			ts.Canceled++
		}
	}

	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Countdown Journal Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.UTC().Format(time.RFC3339),
			stats.TimeRange.End.UTC().Format(time.RFC3339))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Invocations:  %d\n", len(stats.Invocations))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Action:")
	for _, a := range []log.Action{log.ActionAdd, log.ActionCancel, log.ActionDisplay} {
		if count := stats.EventsByAction[a]; count > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", a.String()+":", count)
		}
	}

	if len(stats.Timers) > 0 {
		names := make([]string, 0, len(stats.Timers))
		for name := range stats.Timers {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w)
		fmt.Fprintf(w, "Timers: %d\n", len(names))
		for _, name := range names {
			ts := stats.Timers[name]
			fmt.Fprintf(w, "  %s: added %d, canceled %d\n", name, ts.Added, ts.Canceled)
		}
	}

	if stats.Failures > 0 {
		kinds := make([]string, 0, len(stats.FailuresByKind))
		for k := range stats.FailuresByKind {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)

		fmt.Fprintln(w)
		fmt.Fprintf(w, "Failures: %d\n", stats.Failures)
		for _, k := range kinds {
			fmt.Fprintf(w, "  %-10s %d\n", k+":", stats.FailuresByKind[k])
		}
	}
}
