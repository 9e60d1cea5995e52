// Package driver ties the lexer, parser, and evaluator together: parse
// one top-level statement, execute it, and move to the next, rather
// than building the whole program's AST before running any of it
// (spec.md §2 "Parsing and execution are interleaved at statement
// granularity"). The file-open/CLI front end is a separate concern
// (spec.md §1 "Out of scope"); a Session only ever sees a byte-stream
// reader and an output sink.
package driver

import (
	"io"

	"strand/internal/env"
	"strand/internal/eval"
	"strand/internal/lexer"
	"strand/internal/parser"
)

// Session is a long-lived environment plus evaluator, so a caller that
// feeds it source text more than once (a REPL) keeps its variable
// bindings across calls. One-shot callers can use Run instead.
type Session struct {
	env *env.Environment
	ev  *eval.Evaluator
}

// NewSession returns a Session with a fresh, empty environment, writing
// `print` output to out.
func NewSession(out io.Writer) *Session {
	e := env.New()
	return &Session{env: e, ev: eval.New(e, out)}
}

// Destroy releases every sequence still bound in the session's
// environment. Call it once, when the session ends.
func (s *Session) Destroy() { s.env.Destroy() }

// Exec parses and executes every top-level statement in src against
// the session's environment, returning the first lexical, parse, or
// runtime error encountered (nil on a clean run to EOF).
func (s *Session) Exec(src io.Reader) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if evalErr, ok := r.(*eval.Error); ok {
				err = evalErr
				return
			}
			// Anything else is a programmer-error assertion (e.g. a
			// ref-count gone negative), not a language-level
			// diagnostic; let it propagate and crash loudly.
			panic(r)
		}
	}()

	lex := lexer.New(src)
	p, err := parser.New(lex)
	if err != nil {
		return err
	}

	for !p.AtEOF() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return err
		}
		s.ev.Exec(stmt)
	}
	return nil
}

// Run is the one-shot form: a fresh Session, one Exec call, torn down
// before returning (spec.md §4.6 "Driver").
func Run(src io.Reader, out io.Writer) error {
	s := NewSession(out)
	defer s.Destroy()
	return s.Exec(src)
}
