// Package eval walks the AST against a single variable environment,
// producing output and updating bindings. Dispatch is a type switch
// over ast.Expr/ast.Stmt (see the ast package doc comment) rather than
// the teacher's Visitor/Accept pattern.
//
// Every semantic failure — type mismatch, division by zero, an
// out-of-range index — panics with *Error. Panicking here and
// recovering once at the driver boundary (mirroring the teacher's
// TreeWalkInterpreter.Interpret) lets every Eval/Exec call stay free of
// error-return plumbing while still making every runtime error
// immediately fatal, per spec.md §7.
package eval

import (
	"fmt"
	"io"

	"strand/internal/ast"
	"strand/internal/env"
	"strand/internal/value"
)

// Evaluator walks statements and expressions against one Environment,
// writing `print` output to out.
type Evaluator struct {
	env *env.Environment
	out io.Writer
}

// New returns an Evaluator over e, writing print output to out.
func New(e *env.Environment, out io.Writer) *Evaluator {
	return &Evaluator{env: e, out: out}
}

func requireInt(v value.Value) int64 {
	if !v.IsInt() {
		panic(typeMismatch())
	}
	return v.Int
}

func requireSeq(v value.Value) *value.Sequence {
	if !v.IsSeq() {
		panic(typeMismatch())
	}
	return v.Seq
}

// Exec executes one statement for its side effects.
func (ev *Evaluator) Exec(s ast.Stmt) {
	switch n := s.(type) {
	case ast.Print:
		ev.execPrint(n)
	case ast.Compound:
		for _, sub := range n.Stmts {
			ev.Exec(sub)
		}
	case ast.If:
		if requireInt(ev.Eval(n.Cond)) != 0 {
			ev.Exec(n.Body)
		}
	case ast.While:
		for requireInt(ev.Eval(n.Cond)) != 0 {
			ev.Exec(n.Body)
		}
	case ast.Push:
		ev.execPush(n)
	case ast.Assign:
		ev.execAssign(n)
	default:
		panic(fmt.Sprintf("eval: unhandled statement type %T", s))
	}
}

func (ev *Evaluator) execPrint(n ast.Print) {
	v := ev.Eval(n.Expr)
	if v.IsInt() {
		fmt.Fprintf(ev.out, "%d", v.Int)
		return
	}
	seq := v.Seq
	bytes := make([]byte, seq.Len())
	for i, e := range seq.Elements() {
		bytes[i] = byte(e)
	}
	ev.out.Write(bytes)
}

func (ev *Evaluator) execPush(n ast.Push) {
	seqVal := requireSeq(ev.Eval(n.Seq))
	elemVal := requireInt(ev.Eval(n.Val))
	seqVal.Push(elemVal)
}

// execAssign implements both plain and indexed assignment (spec.md
// §4.5 "Statements" — Assign). For indexed assignment the evaluation
// order is rhs, then index, then the name lookup.
func (ev *Evaluator) execAssign(n ast.Assign) {
	if n.Index == nil {
		rhs := ev.Eval(n.Rhs)
		if rhs.IsSeq() {
			value.Grab(rhs.Seq)
		}
		ev.env.Set(n.Name, rhs)
		return
	}

	rhs := requireInt(ev.Eval(n.Rhs))
	idx := requireInt(ev.Eval(n.Index))
	target := requireSeq(ev.env.Get(n.Name))
	if idx < 0 || idx >= int64(target.Len()) {
		panic(indexOutOfBounds())
	}
	ev.env.SetIndex(n.Name, int(idx), rhs)
}

// Eval evaluates an expression to its Value. A Seq-valued result
// shares the producing sub-expression's handle (or is a fresh,
// ref-count-0 sequence for a constructing operator); it is the
// caller's responsibility to Grab it if it outlives this call.
func (ev *Evaluator) Eval(e ast.Expr) value.Value {
	switch n := e.(type) {
	case ast.LitInt:
		return value.Int64(n.Value)
	case ast.Var:
		return ev.env.Get(n.Name)
	case ast.Binary:
		return ev.evalBinary(n)
	case ast.Unary:
		return ev.evalUnary(n)
	case ast.SeqInit:
		return ev.evalSeqInit(n)
	default:
		panic(fmt.Sprintf("eval: unhandled expression type %T", e))
	}
}

func (ev *Evaluator) evalBinary(n ast.Binary) value.Value {
	switch n.Op {
	case ast.Add:
		return ev.evalAdd(n)
	case ast.Sub:
		l := requireInt(ev.Eval(n.Left))
		r := requireInt(ev.Eval(n.Right))
		return value.Int64(l - r)
	case ast.Mul:
		return ev.evalMul(n)
	case ast.Div:
		l := requireInt(ev.Eval(n.Left))
		r := requireInt(ev.Eval(n.Right))
		if r == 0 {
			panic(divideByZero())
		}
		return value.Int64(l / r)
	case ast.Less:
		return ev.evalLess(n)
	case ast.Equals:
		return ev.evalEquals(n)
	case ast.And:
		return ev.evalAnd(n)
	case ast.Or:
		return ev.evalOr(n)
	case ast.Index:
		return ev.evalIndex(n)
	default:
		panic(fmt.Sprintf("eval: unhandled binary operator %v", n.Op))
	}
}

// evalAdd implements the four-way overload of + (spec.md §4.5
// "Arithmetic and polymorphism"). Every sequence-producing branch
// returns a fresh, ref-count-0 sequence.
func (ev *Evaluator) evalAdd(n ast.Binary) value.Value {
	l := ev.Eval(n.Left)
	r := ev.Eval(n.Right)

	switch {
	case l.IsInt() && r.IsInt():
		return value.Int64(l.Int + r.Int)
	case l.IsSeq() && r.IsSeq():
		return value.Seq64(value.Concat(l.Seq, r.Seq))
	case l.IsSeq() && r.IsInt():
		elems := append(append([]int64(nil), l.Seq.Elements()...), r.Int)
		return value.Seq64(value.NewSequenceFrom(elems))
	case l.IsInt() && r.IsSeq():
		elems := append([]int64{l.Int}, r.Seq.Elements()...)
		return value.Seq64(value.NewSequenceFrom(elems))
	default:
		panic(typeMismatch())
	}
}

// evalMul implements Int*Int, Seq*Int, Int*Seq; Seq*Seq is a type
// mismatch (spec.md §4.5).
func (ev *Evaluator) evalMul(n ast.Binary) value.Value {
	l := ev.Eval(n.Left)
	r := ev.Eval(n.Right)

	switch {
	case l.IsInt() && r.IsInt():
		return value.Int64(l.Int * r.Int)
	case l.IsSeq() && r.IsInt():
		return value.Seq64(value.Repeat(l.Seq, r.Int))
	case l.IsInt() && r.IsSeq():
		return value.Seq64(value.Repeat(r.Seq, l.Int))
	default:
		panic(typeMismatch())
	}
}

func (ev *Evaluator) evalLess(n ast.Binary) value.Value {
	l := ev.Eval(n.Left)
	r := ev.Eval(n.Right)

	switch {
	case l.IsInt() && r.IsInt():
		return boolValue(l.Int < r.Int)
	case l.IsSeq() && r.IsSeq():
		return boolValue(value.Less(l.Seq, r.Seq))
	default:
		panic(typeMismatch())
	}
}

// evalEquals permits mixed kinds: Int vs Seq is always false, never a
// type mismatch (spec.md §4.5 "Comparisons").
func (ev *Evaluator) evalEquals(n ast.Binary) value.Value {
	l := ev.Eval(n.Left)
	r := ev.Eval(n.Right)

	switch {
	case l.IsInt() && r.IsInt():
		return boolValue(l.Int == r.Int)
	case l.IsSeq() && r.IsSeq():
		return boolValue(value.Equal(l.Seq, r.Seq))
	default:
		return value.Int64(0)
	}
}

// evalAnd and evalOr short-circuit: the right operand is evaluated
// only when the left doesn't already decide the result (spec.md §4.5
// "Logical").
func (ev *Evaluator) evalAnd(n ast.Binary) value.Value {
	left := requireInt(ev.Eval(n.Left))
	if left == 0 {
		return value.Int64(left)
	}
	right := requireInt(ev.Eval(n.Right))
	return value.Int64(right)
}

func (ev *Evaluator) evalOr(n ast.Binary) value.Value {
	left := requireInt(ev.Eval(n.Left))
	if left != 0 {
		return value.Int64(left)
	}
	right := requireInt(ev.Eval(n.Right))
	return value.Int64(right)
}

func (ev *Evaluator) evalIndex(n ast.Binary) value.Value {
	seq := requireSeq(ev.Eval(n.Left))
	idx := requireInt(ev.Eval(n.Right))
	if idx < 0 || idx >= int64(seq.Len()) {
		panic(indexOutOfBounds())
	}
	return value.Int64(seq.At(int(idx)))
}

func (ev *Evaluator) evalUnary(n ast.Unary) value.Value {
	switch n.Op {
	case ast.Len:
		seq := requireSeq(ev.Eval(n.Sub))
		return value.Int64(int64(seq.Len()))
	default:
		panic(fmt.Sprintf("eval: unhandled unary operator %v", n.Op))
	}
}

func (ev *Evaluator) evalSeqInit(n ast.SeqInit) value.Value {
	elems := make([]int64, len(n.Elems))
	for i, e := range n.Elems {
		elems[i] = requireInt(ev.Eval(e))
	}
	return value.Seq64(value.NewSequenceFrom(elems))
}

func boolValue(b bool) value.Value {
	if b {
		return value.Int64(1)
	}
	return value.Int64(0)
}
