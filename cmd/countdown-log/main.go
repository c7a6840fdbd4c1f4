// Command countdown-log inspects countdown journal files.
//
// Journals are written by countdown when it runs with -journal or with
// "journal:" set in its config file.
//
// Usage:
//
//	countdown-log <command> [flags] <file.jlog>
//
// Commands:
//
//	view     Show events in human-readable form
//	export   Export events to JSON Lines or CSV
//	stats    Summarise the journal
//
// Examples:
//
//	# Everything
//	countdown-log view countdown.jlog
//
//	# Only failed cancels
//	countdown-log view -action cancel -failed countdown.jlog
//
//	# Spreadsheet
//	countdown-log export -format csv -o journal.csv countdown.jlog
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mash-protocol/countdown/cmd/countdown-log/commands"
	"github.com/mash-protocol/countdown/pkg/version"
)

const usage = `countdown-log - countdown journal viewer

Usage:
  countdown-log <command> [flags] <file.jlog>

Commands:
  view     Show events in human-readable form
  export   Export events to JSON Lines or CSV
  stats    Summarise the journal
  version  Print version

Use "countdown-log <command> -help" for more information about a command.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "view":
		return runView(rest, stdout, stderr)
	case "export":
		return runExport(rest, stdout, stderr)
	case "stats":
		return runStats(rest, stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, version.String("countdown-log"))
		return 0
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(stderr, usage)
		return 1
	}
}

// parseFlags parses fs and checks for the journal path argument.
func parseFlags(fs *flag.FlagSet, args []string, stderr io.Writer) (string, int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", 0, false
		}
		return "", 1, false
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: journal file path required")
		fs.Usage()
		return "", 1, false
	}
	return fs.Arg(0), 0, true
}

func runView(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, "countdown-log view - Show events in human-readable form\n\nUsage:\n  countdown-log view [flags] <file.jlog>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	action := fs.String("action", "", "Filter by action (add, cancel, display)")
	name := fs.String("name", "", "Filter by timer name")
	failed := fs.Bool("failed", false, "Only show failed operations")

	path, code, ok := parseFlags(fs, args, stderr)
	if !ok {
		return code
	}

	filter := commands.ViewFilter{Name: *name, FailedOnly: *failed}
	if *action != "" {
		a, err := commands.ParseActionFlag(*action)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		filter.Action = &a
	}

	if err := commands.RunView(path, filter, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runExport(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, "countdown-log export - Export events to JSON Lines or CSV\n\nUsage:\n  countdown-log export [flags] <file.jlog>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	path, code, ok := parseFlags(fs, args, stderr)
	if !ok {
		return code
	}

	if err := commands.RunExport(path, *format, *output, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runStats(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, "countdown-log stats - Summarise the journal\n\nUsage:\n  countdown-log stats <file.jlog>\n")
	}

	path, code, ok := parseFlags(fs, args, stderr)
	if !ok {
		return code
	}

	if err := commands.RunStats(path, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
