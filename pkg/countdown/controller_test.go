package countdown_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/countdown/internal/testharness/mock"
	"github.com/mash-protocol/countdown/pkg/countdown"
	"github.com/mash-protocol/countdown/pkg/log"
)

type journalSpy struct {
	mu     sync.Mutex
	events []log.Event
}

func (j *journalSpy) Log(e log.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, e)
}

var epoch = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// fixedClock returns a clock frozen at epoch plus a function that moves it.
func fixedClock() (countdown.Clock, func(time.Duration)) {
	now := epoch
	var mu sync.Mutex
	clock := countdown.ClockFunc(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	})
	advance := func(d time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(d)
	}
	return clock, advance
}

func newController(t *testing.T) (*countdown.Controller, *mock.MemoryStore, *journalSpy, func(time.Duration)) {
	t.Helper()
	store := mock.NewMemoryStore()
	journal := &journalSpy{}
	clock, advance := fixedClock()
	ctr := countdown.NewController(store, countdown.Config{
		Clock:        clock,
		Journal:      journal,
		Logger:       slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		InvocationID: "run-1",
	})
	return ctr, store, journal, advance
}

func TestAddNewCreatesCountdown(t *testing.T) {
	ctr, store, _, _ := newController(t)

	out, err := ctr.AddTimer("timer", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "Added Timer: timer", out)
	assert.Contains(t, ctr.Timers(), "timer")

	cd, err := store.Load("timer")
	require.NoError(t, err)
	assert.Equal(t, epoch.Add(30*time.Second), cd.EndTime)
}

func TestAddOverwrites(t *testing.T) {
	ctr, store, _, _ := newController(t)

	_, err := ctr.AddTimer("tea", time.Minute)
	require.NoError(t, err)
	_, err = ctr.AddTimer("tea", 5*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Len())
	out, err := ctr.DisplayTimers()
	require.NoError(t, err)
	assert.Equal(t, "tea: 00:05:00", out)
}

func TestCancelRemovesCountdown(t *testing.T) {
	ctr, _, _, _ := newController(t)

	_, err := ctr.AddTimer("timer", 30*time.Second)
	require.NoError(t, err)
	assert.Contains(t, ctr.Timers(), "timer")

	out, err := ctr.CancelTimer("timer")
	require.NoError(t, err)
	assert.Equal(t, "Canceled timer timer", out)
	assert.NotContains(t, ctr.Timers(), "timer")
}

func TestCancelUnknown(t *testing.T) {
	ctr, _, journal, _ := newController(t)

	out, err := ctr.CancelTimer("ghost")
	assert.Empty(t, out)
	assert.ErrorIs(t, err, countdown.ErrNotFound)

	require.Len(t, journal.events, 1)
	assert.Equal(t, log.ActionCancel, journal.events[0].Action)
	require.NotNil(t, journal.events[0].Error)
	assert.Equal(t, "not_found", journal.events[0].Error.Kind)
}

func TestDisplayPrintsTimers(t *testing.T) {
	ctr, _, _, advance := newController(t)

	_, err := ctr.AddTimer("timer", 30*time.Second)
	require.NoError(t, err)

	out, err := ctr.DisplayTimers()
	require.NoError(t, err)
	assert.Equal(t, "timer: 00:00:30", out)

	advance(time.Second)
	out, err = ctr.DisplayTimers()
	require.NoError(t, err)
	assert.Equal(t, "timer: 00:00:29", out)

	advance(time.Hour)
	out, err = ctr.DisplayTimers()
	require.NoError(t, err)
	assert.Equal(t, "timer: 00:00:00", out)
}

func TestDisplayWithSystemClock(t *testing.T) {
	ctr := countdown.NewController(mock.NewMemoryStore(), countdown.Config{})

	_, err := ctr.AddTimer("timer", 30*time.Second)
	require.NoError(t, err)

	out, err := ctr.DisplayTimers()
	require.NoError(t, err)
	assert.Regexp(t, `^timer: 00:00:(29|30)$`, out)
}

func TestDisplaySortedMultiLine(t *testing.T) {
	ctr, _, journal, _ := newController(t)

	_, _ = ctr.AddTimer("b", 36*time.Hour)
	_, _ = ctr.AddTimer("a", 3661*time.Second)
	_, _ = ctr.AddTimer("c", 0)

	out, err := ctr.DisplayTimers()
	require.NoError(t, err)
	assert.Equal(t, "a: 01:01:01\nb: 36:00:00\nc: 00:00:00", out)

	last := journal.events[len(journal.events)-1]
	assert.Equal(t, log.ActionDisplay, last.Action)
	require.NotNil(t, last.Count)
	assert.Equal(t, 3, *last.Count)
}

func TestDisplayEmpty(t *testing.T) {
	ctr, _, _, _ := newController(t)

	out, err := ctr.DisplayTimers()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDisplayPartialOutputOnLoadFailure(t *testing.T) {
	ctr, store, _, _ := newController(t)
	boom := &countdown.IOError{Op: "load", Name: "b", Err: errors.New("corrupt")}

	_, _ = ctr.AddTimer("a", time.Minute)
	_, _ = ctr.AddTimer("b", time.Minute)
	_, _ = ctr.AddTimer("c", time.Minute)
	store.FailOn(mock.OpLoad, "b", boom)

	out, err := ctr.DisplayTimers()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "a: 00:01:00", out)
}

func TestDisplayListFailure(t *testing.T) {
	ctr, store, _, _ := newController(t)
	boom := &countdown.IOError{Op: "list", Err: errors.New("permission denied")}
	store.FailOn(mock.OpList, "", boom)

	out, err := ctr.DisplayTimers()
	assert.Empty(t, out)
	assert.ErrorIs(t, err, boom)
}

func TestTimersSwallowsErrors(t *testing.T) {
	var logs bytes.Buffer
	store := mock.NewMemoryStore()
	store.FailOn(mock.OpList, "", errors.New("permission denied"))

	ctr := countdown.NewController(store, countdown.Config{
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	})

	names := ctr.Timers()
	assert.NotNil(t, names)
	assert.Empty(t, names)
	assert.Contains(t, logs.String(), "listing timers failed")
}

func TestAddPropagatesSaveError(t *testing.T) {
	ctr, _, journal, _ := newController(t)

	out, err := ctr.AddTimer("../escape", time.Minute)
	assert.Empty(t, out)

	var se *countdown.SaveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "../escape", se.Name)

	require.Len(t, journal.events, 1)
	assert.Equal(t, "save", journal.events[0].Error.Kind)
}

func TestExecute(t *testing.T) {
	ctr, _, journal, _ := newController(t)

	steps := []struct {
		args []string
		want string
	}{
		{[]string{"add", "pizza", "in", "oven", "20m"}, "Added Timer: pizza in oven"},
		{[]string{"add", "tea", "3m"}, "Added Timer: tea"},
		{nil, "pizza in oven: 00:20:00\ntea: 00:03:00"},
		{[]string{"cancel", "tea"}, "Canceled timer tea"},
		{[]string{"whatever"}, "pizza in oven: 00:20:00"},
	}

	for _, step := range steps {
		cmd, err := countdown.ParseCommand(step.args)
		require.NoError(t, err)
		out, err := ctr.Execute(cmd)
		require.NoError(t, err)
		assert.Equal(t, step.want, out)
	}

	require.Len(t, journal.events, 5)
	for _, e := range journal.events {
		assert.Equal(t, "run-1", e.InvocationID)
		assert.False(t, e.Failed())
	}
	add := journal.events[0]
	assert.Equal(t, log.ActionAdd, add.Action)
	assert.Equal(t, "pizza in oven", add.Name)
	require.NotNil(t, add.Duration)
	assert.Equal(t, 20*time.Minute, *add.Duration)
	require.NotNil(t, add.EndTime)
	assert.Equal(t, epoch.Add(20*time.Minute), *add.EndTime)
}

func TestExecuteUnknownKind(t *testing.T) {
	ctr, _, _, _ := newController(t)
	_, err := ctr.Execute(countdown.Command{Kind: countdown.Kind(9)})
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := countdown.DefaultConfig()
	assert.NotNil(t, cfg.Clock)
	assert.NotNil(t, cfg.Journal)
	assert.NotNil(t, cfg.Logger)
	assert.Len(t, cfg.InvocationID, 36)

	ctr := countdown.NewController(mock.NewMemoryStore(), countdown.Config{})
	assert.Len(t, ctr.InvocationID(), 36)
}

func TestFormatLine(t *testing.T) {
	cd := countdown.Countdown{Name: "tea", EndTime: epoch.Add(9000 * time.Second)}
	assert.Equal(t, "tea: 02:30:00", countdown.FormatLine(cd, epoch))
	assert.Equal(t, "tea: 00:00:00", countdown.FormatLine(cd, epoch.Add(24*time.Hour)))
}
