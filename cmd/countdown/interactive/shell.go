// Package interactive provides the readline shell for countdown.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mash-protocol/countdown/pkg/countdown"
)

const helpText = `Commands:
  add <name...> <duration>   Add or replace a timer (e.g. add tea 3m30s)
  cancel <name...>           Delete a timer
  list, ls                   Show all timers with remaining time
  names                      Show timer names only
  help, ?                    Show this help
  exit, quit                 Leave the shell`

// Shell runs countdown commands read line by line.
type Shell struct {
	ctr *countdown.Controller
	rl  *readline.Instance
}

// New creates a shell driving ctr. Name arguments of "cancel" complete from
// the stored timers.
func New(ctr *countdown.Controller) (*Shell, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("add"),
		readline.PcItem("cancel", readline.PcItemDynamic(func(string) []string {
			return ctr.Timers()
		})),
		readline.PcItem("list"),
		readline.PcItem("ls"),
		readline.PcItem("names"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
		readline.PcItem("quit"),
	)

	return newShell(ctr, &readline.Config{
		Prompt:          "countdown> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
}

func newShell(ctr *countdown.Controller, cfg *readline.Config) (*Shell, error) {
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{ctr: ctr, rl: rl}, nil
}

// NewWithoutTerminal creates a shell with no readline instance. Only
// Handle may be used.
func NewWithoutTerminal(ctr *countdown.Controller) *Shell {
	return &Shell{ctr: ctr}
}

// Run reads and executes lines until exit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	// Closing the instance makes a pending Readline return io.EOF.
	stop := context.AfterFunc(ctx, func() { s.rl.Close() })
	defer stop()

	fmt.Fprintln(s.rl.Stdout(), helpText)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return
		}

		out, quit := s.Handle(line)
		if out != "" {
			fmt.Fprintln(s.rl.Stdout(), out)
		}
		if quit {
			return
		}
	}
}

// Handle executes one input line and returns the text to print and whether
// the shell should exit.
func (s *Shell) Handle(line string) (string, bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", false
	}

	switch strings.ToLower(parts[0]) {
	case "help", "?":
		return helpText, false

	case "exit", "quit", "q":
		return "", true

	case "list", "ls":
		return s.execute(countdown.Command{Kind: countdown.KindDisplayAll}), false

	case "names":
		names := s.ctr.Timers()
		if len(names) == 0 {
			return "No timers.", false
		}
		return strings.Join(names, "\n"), false

	case "add", "cancel":
		parts[0] = strings.ToLower(parts[0])
		cmd, err := countdown.ParseCommand(parts)
		if err != nil {
			return "Error: " + err.Error(), false
		}
		return s.execute(cmd), false

	default:
		return fmt.Sprintf("Unknown command: %s (type 'help')", parts[0]), false
	}
}

func (s *Shell) execute(cmd countdown.Command) string {
	out, err := s.ctr.Execute(cmd)
	if err != nil {
		if out != "" {
			return out + "\nError: " + err.Error()
		}
		return "Error: " + err.Error()
	}
	if out == "" && cmd.Kind == countdown.KindDisplayAll {
		return "No timers."
	}
	return out
}
