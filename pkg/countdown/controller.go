package countdown

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mash-protocol/countdown/pkg/duration"
	"github.com/mash-protocol/countdown/pkg/log"
)

// Config configures a Controller. Zero fields take their defaults.
type Config struct {
	// Clock supplies "now" for new timers and remaining-time output.
	Clock Clock

	// Journal receives one event per operation.
	Journal log.Logger

	// Logger receives operational log records.
	Logger *slog.Logger

	// InvocationID tags journal events from this controller.
	InvocationID string
}

// DefaultConfig returns a Config using the system clock, no journal, the
// default slog logger and a fresh invocation ID.
func DefaultConfig() Config {
	return Config{
		Clock:        SystemClock,
		Journal:      log.NoopLogger{},
		Logger:       slog.Default(),
		InvocationID: uuid.NewString(),
	}
}

// Controller executes commands against a Store.
type Controller struct {
	store   Store
	clock   Clock
	journal log.Logger
	logger  *slog.Logger
	id      string
}

// NewController creates a controller backed by store.
func NewController(store Store, cfg Config) *Controller {
	def := DefaultConfig()
	if cfg.Clock == nil {
		cfg.Clock = def.Clock
	}
	if cfg.Journal == nil {
		cfg.Journal = def.Journal
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	if cfg.InvocationID == "" {
		cfg.InvocationID = def.InvocationID
	}

	return &Controller{
		store:   store,
		clock:   cfg.Clock,
		journal: cfg.Journal,
		logger:  cfg.Logger.With(slog.String("invocation_id", cfg.InvocationID)),
		id:      cfg.InvocationID,
	}
}

// InvocationID returns the ID attached to this controller's journal events.
func (c *Controller) InvocationID() string {
	return c.id
}

// Execute runs cmd and returns the text to show the user.
func (c *Controller) Execute(cmd Command) (string, error) {
	switch cmd.Kind {
	case KindAdd:
		return c.AddTimer(cmd.Name, cmd.Duration)
	case KindCancel:
		return c.CancelTimer(cmd.Name)
	case KindDisplayAll:
		return c.DisplayTimers()
	default:
		return "", fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
}

// AddTimer saves a countdown expiring d from now.
func (c *Controller) AddTimer(name string, d time.Duration) (string, error) {
	now := c.clock.Now()
	cd := New(name, now, d)

	if err := c.store.Save(cd); err != nil {
		c.fail(log.ActionAdd, name, err)
		return "", err
	}

	c.logger.Debug("timer added", slog.String("name", name), slog.Time("end_time", cd.EndTime))
	c.journal.Log(log.Event{
		Timestamp:    now,
		InvocationID: c.id,
		Action:       log.ActionAdd,
		Name:         name,
		EndTime:      &cd.EndTime,
		Duration:     &d,
	})

	return fmt.Sprintf("Added Timer: %s", name), nil
}

// CancelTimer deletes the countdown called name.
func (c *Controller) CancelTimer(name string) (string, error) {
	if err := c.store.Delete(name); err != nil {
		c.fail(log.ActionCancel, name, err)
		return "", err
	}

	c.logger.Debug("timer canceled", slog.String("name", name))
	c.journal.Log(log.Event{
		Timestamp:    c.clock.Now(),
		InvocationID: c.id,
		Action:       log.ActionCancel,
		Name:         name,
	})

	return fmt.Sprintf("Canceled timer %s", name), nil
}

// DisplayTimers renders one "name: HH:MM:SS" line per stored countdown.
// Remaining time is measured when each line is formatted. If a load fails
// part way through, the lines rendered so far are returned with the error.
func (c *Controller) DisplayTimers() (string, error) {
	names, err := c.store.List()
	if err != nil {
		c.fail(log.ActionDisplay, "", err)
		return "", err
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		cd, err := c.store.Load(name)
		if err != nil {
			c.fail(log.ActionDisplay, name, err)
			return strings.Join(lines, "\n"), err
		}
		lines = append(lines, FormatLine(cd, c.clock.Now()))
	}

	count := len(lines)
	c.logger.Debug("timers displayed", slog.Int("count", count))
	c.journal.Log(log.Event{
		Timestamp:    c.clock.Now(),
		InvocationID: c.id,
		Action:       log.ActionDisplay,
		Count:        &count,
	})

	return strings.Join(lines, "\n"), nil
}

// Timers returns the stored names, or an empty slice if listing fails.
func (c *Controller) Timers() []string {
	names, err := c.store.List()
	if err != nil {
		c.logger.Warn("listing timers failed", slog.Any("error", err))
		return []string{}
	}
	return names
}

// FormatLine renders cd as "name: HH:MM:SS" using the time remaining at now.
func FormatLine(cd Countdown, now time.Time) string {
	return fmt.Sprintf("%s: %s", cd.Name, duration.FormatClock(cd.Remaining(now)))
}

func (c *Controller) fail(action log.Action, name string, err error) {
	c.logger.Debug("operation failed",
		slog.String("action", action.String()),
		slog.String("name", name),
		slog.Any("error", err),
	)
	c.journal.Log(log.Event{
		Timestamp:    c.clock.Now(),
		InvocationID: c.id,
		Action:       action,
		Name:         name,
		Error:        &log.ErrorData{Message: err.Error(), Kind: ErrorKind(err)},
	})
}
