package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"strand/internal/ast"
	"strand/internal/driver"
	"strand/internal/lexer"
	"strand/internal/parser"
)

// runCmd executes a program file, optionally dumping its AST first.
type runCmd struct {
	dumpAST bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Execute a strand program file" }
func (*runCmd) Usage() string {
	return `run <program-file>:
  Execute a strand program.
`
}

func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.dumpAST, "ast", false, "print the parsed AST as JSON before executing")
}

func (r *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "run: file not provided")
		return subcommands.ExitUsageError
	}
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	if r.dumpAST {
		if err := dumpAST(string(data)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	if err := driver.Run(strings.NewReader(string(data)), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// dumpAST parses all of src up front (rather than the core's
// parse-one-execute-one loop) purely so the whole tree can be printed
// at once; it does not execute anything.
func dumpAST(src string) error {
	p, err := parser.New(lexer.New(strings.NewReader(src)))
	if err != nil {
		return err
	}
	var stmts []ast.Stmt
	for !p.AtEOF() {
		s, err := p.ParseStatement()
		if err != nil {
			return err
		}
		stmts = append(stmts, s)
	}
	_, err = ast.PrintJSON(stmts)
	return err
}
