// Command countdown manages named countdown timers.
//
// Each timer is stored as <name>.timer in the timer directory (the working
// directory by default) and holds the UNIX timestamp at which it expires.
//
// Usage:
//
//	countdown [flags]                           Show all timers
//	countdown [flags] add <name...> <duration>  Add or replace a timer
//	countdown [flags] cancel <name...>          Delete a timer
//
// Any other first argument, including an unknown "-word", also shows all
// timers. Durations combine hours, minutes and seconds, e.g. 2h30m, 45s,
// 1h1m1s.
//
// Flags:
//
//	-config string     Config file (default $COUNTDOWN_CONFIG or .countdown.yaml)
//	-dir string        Timer directory
//	-journal string    Append a CBOR journal of operations to this file
//	-log-level string  Log level: debug, info, warn, error
//	-interactive       Start an interactive shell
//	-version           Print version and exit
//
// Examples:
//
//	# Remind me about the tea
//	countdown add tea 3m30s
//
//	# Names may contain spaces
//	countdown add pizza in oven 20m
//
//	# What is left?
//	countdown
//
//	# Never mind
//	countdown cancel pizza in oven
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mash-protocol/countdown/cmd/countdown/interactive"
	"github.com/mash-protocol/countdown/internal/config"
	"github.com/mash-protocol/countdown/pkg/countdown"
	"github.com/mash-protocol/countdown/pkg/log"
	"github.com/mash-protocol/countdown/pkg/persistence"
	"github.com/mash-protocol/countdown/pkg/version"
)

// Exit codes.
const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = `countdown - named countdown timers

Usage:
  countdown [flags]                           Show all timers
  countdown [flags] add <name...> <duration>  Add or replace a timer
  countdown [flags] cancel <name...>          Delete a timer

Durations combine <n>h, <n>m and <n>s, e.g. 2h30m, 45s, 1h1m1s.

Flags:
`

// options holds flag values. Empty strings leave the config file value.
type options struct {
	configPath  string
	dir         string
	journal     string
	logLevel    string
	interactive bool
	version     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("countdown", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.configPath, "config", "", "Config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	fs.StringVar(&opts.dir, "dir", "", "Timer directory")
	fs.StringVar(&opts.journal, "journal", "", "Append a CBOR journal of operations to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.interactive, "interactive", false, "Start an interactive shell")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	n := flagPrefix(fs, args)
	if err := fs.Parse(args[:n]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		return exitUsage
	}

	if opts.version {
		fmt.Fprintln(stdout, version.String("countdown"))
		return exitSuccess
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	journal, closeJournal, err := openJournal(cfg.Journal, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: cannot open %v\n", err)
		return exitFailure
	}
	defer closeJournal()

	store := persistence.NewFileStore(cfg.Dir)
	ccfg := countdown.DefaultConfig()
	ccfg.Journal = journal
	ccfg.Logger = logger
	ctr := countdown.NewController(store, ccfg)

	logger.Debug("starting",
		slog.String("dir", store.Dir()),
		slog.String("journal", cfg.Journal),
		slog.String("invocation_id", ctr.InvocationID()),
	)

	if opts.interactive {
		return runInteractive(ctr, stderr)
	}

	cmd, err := countdown.ParseCommand(args[n:])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fs.Usage()
		return exitUsage
	}

	out, err := ctr.Execute(cmd)
	fmt.Fprint(stdout, out)
	if err != nil {
		if out != "" {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitSuccess
}

// flagPrefix returns the number of leading args that are flags defined on
// fs, counting the values of non-boolean flags. An unknown "-word" ends the
// prefix and is handed to the command parser like any other word.
func flagPrefix(fs *flag.FlagSet, args []string) int {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			return i + 1
		}
		if len(arg) < 2 || arg[0] != '-' {
			return i
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name == "h" || name == "help" {
			i++
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			return i
		}
		i++

		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		if !hasValue && i < len(args) {
			i++
		}
	}
	return i
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if opts.dir != "" {
		cfg.Dir = opts.dir
	}
	if opts.journal != "" {
		cfg.Journal = opts.journal
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openJournal returns the journal for this run. Events always go to the
// operational logger at debug level and, if path is set, to a CBOR file.
func openJournal(path string, logger *slog.Logger) (log.Logger, func(), error) {
	adapter := log.NewSlogAdapter(logger)
	if path == "" {
		return adapter, func() {}, nil
	}

	fl, err := log.NewFileLogger(path)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if n := fl.Dropped(); n > 0 {
			logger.Warn("journal events dropped", slog.String("journal", fl.Path()), slog.Int("count", n))
		}
		if err := fl.Close(); err != nil {
			logger.Warn("closing journal failed", slog.Any("error", err))
		}
	}
	return log.NewMultiLogger(adapter, fl), closeFn, nil
}

func runInteractive(ctr *countdown.Controller, stderr io.Writer) int {
	shell, err := interactive.New(ctr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	shell.Run(ctx)
	return exitSuccess
}
