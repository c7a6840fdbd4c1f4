package interactive

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/countdown/internal/testharness/mock"
	"github.com/mash-protocol/countdown/pkg/countdown"
)

func testController(t *testing.T) (*countdown.Controller, *mock.MemoryStore) {
	t.Helper()
	store := mock.NewMemoryStore()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	ctr := countdown.NewController(store, countdown.Config{
		Clock:  countdown.ClockFunc(func() time.Time { return now }),
		Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})
	return ctr, store
}

func testShell(t *testing.T) (*Shell, *mock.MemoryStore) {
	t.Helper()
	ctr, store := testController(t)
	return NewWithoutTerminal(ctr), store
}

func TestHandleSession(t *testing.T) {
	sh, store := testShell(t)

	steps := []struct {
		line string
		want string
	}{
		{"", ""},
		{"list", "No timers."},
		{"add tea 3m", "Added Timer: tea"},
		{"ADD  pizza   in oven 1h", "Added Timer: pizza in oven"},
		{"ls", "pizza in oven: 01:00:00\ntea: 00:03:00"},
		{"names", "pizza in oven\ntea"},
		{"cancel tea", "Canceled timer tea"},
		{"cancel tea", "Error: tea was not found"},
		{"add", "Error: add: duration required"},
		{"dance", "Unknown command: dance (type 'help')"},
	}

	for _, step := range steps {
		out, quit := sh.Handle(step.line)
		assert.False(t, quit, step.line)
		assert.Equal(t, step.want, out, step.line)
	}

	assert.Equal(t, 1, store.Len())
}

func TestHandleHelpAndExit(t *testing.T) {
	sh, _ := testShell(t)

	out, quit := sh.Handle("help")
	assert.False(t, quit)
	assert.Contains(t, out, "cancel <name...>")

	for _, line := range []string{"exit", "quit", "q", "  EXIT  "} {
		_, quit := sh.Handle(line)
		assert.True(t, quit, line)
	}
}

func TestHandleNamesEmpty(t *testing.T) {
	sh, _ := testShell(t)
	out, _ := sh.Handle("names")
	assert.Equal(t, "No timers.", out)
}

func TestRunReturnsWhenContextCanceled(t *testing.T) {
	ctr, _ := testController(t)

	stdin, stdinW := io.Pipe()
	defer stdinW.Close()

	sh, err := newShell(ctr, &readline.Config{
		Prompt:             "countdown> ",
		Stdin:              stdin,
		Stdout:             io.Discard,
		Stderr:             io.Discard,
		FuncIsTerminal:     func() bool { return false },
		FuncGetWidth:       func() int { return 80 },
		FuncMakeRaw:        func() error { return nil },
		FuncExitRaw:        func() error { return nil },
		FuncOnWidthChanged: func(func()) {},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sh.Run(ctx)
		close(done)
	}()

	// Nothing is ever written to stdin, so Run sits in Readline.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was canceled")
	}
}
