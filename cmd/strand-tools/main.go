// Command strand-tools is the developer-facing counterpart to the
// strand interpreter: a subcommands.Commander dispatcher exposing
// `run` (with AST-dump support) and `repl`, grounded on the teacher's
// own main.go/cmd_run.go/cmd_repl.go dispatcher (spec.md's core leaves
// this front end unspecified — it exists to exercise the interpreter
// interactively during development, not to satisfy any spec
// invariant).
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
