package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"strand/internal/driver"
)

// replCmd implements the REPL command, reading lines with readline and
// executing each against one persistent driver.Session so variable
// bindings survive across lines (spec.md's core has no notion of a
// REPL; this is a development convenience grounded on the teacher's
// own cmd_repl.go, rebuilt around readline instead of bufio.Scanner).
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive strand session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive strand session.
`
}
func (*replCmd) SetFlags(*flag.FlagSet) {}

func (*replCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Println("strand interactive session — statements end with ';', Ctrl-D to exit")

	rl, err := readline.New(">>> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	sess := driver.NewSession(os.Stdout)
	defer sess.Destroy()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			if err == io.EOF {
				return subcommands.ExitSuccess
			}
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := sess.Exec(strings.NewReader(line)); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		fmt.Println()
	}
}
