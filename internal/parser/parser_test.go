package parser

import (
	"strings"
	"testing"

	"strand/internal/ast"
	"strand/internal/lexer"
)

func parseOne(t *testing.T, src string) ast.Stmt {
	t.Helper()
	p, err := New(lexer.New(strings.NewReader(src)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s, err := p.ParseStatement()
	if err != nil {
		t.Fatalf("ParseStatement(%q): %v", src, err)
	}
	return s
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	p, err := New(lexer.New(strings.NewReader(src)))
	if err != nil {
		return err
	}
	_, err = p.ParseStatement()
	return err
}

func TestParsePlainAssignment(t *testing.T) {
	s := parseOne(t, "x = 1 + 2;")
	assign, ok := s.(ast.Assign)
	if !ok {
		t.Fatalf("got %T, want ast.Assign", s)
	}
	if assign.Name != "x" || assign.Index != nil {
		t.Fatalf("got %+v", assign)
	}
	bin, ok := assign.Rhs.(ast.Binary)
	if !ok || bin.Op != ast.Add {
		t.Fatalf("rhs = %+v, want Add", assign.Rhs)
	}
}

func TestParseFlatPrecedenceIsLeftAssociative(t *testing.T) {
	// 1 + 2 * 3 must parse as (1 + 2) * 3, not 1 + (2 * 3), since every
	// operator shares one precedence tier.
	s := parseOne(t, "x = 1 + 2 * 3;")
	assign := s.(ast.Assign)
	outer, ok := assign.Rhs.(ast.Binary)
	if !ok || outer.Op != ast.Mul {
		t.Fatalf("outer op = %+v, want Mul at the top", assign.Rhs)
	}
	inner, ok := outer.Left.(ast.Binary)
	if !ok || inner.Op != ast.Add {
		t.Fatalf("left child = %+v, want Add", outer.Left)
	}
	lit, ok := outer.Right.(ast.LitInt)
	if !ok || lit.Value != 3 {
		t.Fatalf("right child = %+v, want LitInt(3)", outer.Right)
	}
}

func TestParseIndexedAssignment(t *testing.T) {
	s := parseOne(t, "a[0] = 5;")
	assign := s.(ast.Assign)
	if assign.Name != "a" || assign.Index == nil {
		t.Fatalf("got %+v, want indexed assignment to a", assign)
	}
	idx, ok := assign.Index.(ast.LitInt)
	if !ok || idx.Value != 0 {
		t.Fatalf("index = %+v, want LitInt(0)", assign.Index)
	}
}

func TestParseIndexExpression(t *testing.T) {
	s := parseOne(t, "x = a[1 + 1];")
	assign := s.(ast.Assign)
	bin, ok := assign.Rhs.(ast.Binary)
	if !ok || bin.Op != ast.Index {
		t.Fatalf("rhs = %+v, want Index", assign.Rhs)
	}
	if _, ok := bin.Left.(ast.Var); !ok {
		t.Fatalf("index target = %+v, want Var", bin.Left)
	}
}

func TestParseSeqLiteralEmpty(t *testing.T) {
	s := parseOne(t, "x = [];")
	assign := s.(ast.Assign)
	seq, ok := assign.Rhs.(ast.SeqInit)
	if !ok || len(seq.Elems) != 0 {
		t.Fatalf("rhs = %+v, want empty SeqInit", assign.Rhs)
	}
}

func TestParseSeqLiteralElements(t *testing.T) {
	s := parseOne(t, "x = [1, 2, 3];")
	assign := s.(ast.Assign)
	seq := assign.Rhs.(ast.SeqInit)
	if len(seq.Elems) != 3 {
		t.Fatalf("got %d elems, want 3", len(seq.Elems))
	}
}

func TestParseStringLiteralLowersToSeqOfBytes(t *testing.T) {
	s := parseOne(t, `x = "hi";`)
	assign := s.(ast.Assign)
	seq, ok := assign.Rhs.(ast.SeqInit)
	if !ok || len(seq.Elems) != 2 {
		t.Fatalf("rhs = %+v, want 2-element SeqInit", assign.Rhs)
	}
	if seq.Elems[0].(ast.LitInt).Value != int64('h') || seq.Elems[1].(ast.LitInt).Value != int64('i') {
		t.Fatalf("elems = %+v, want bytes of 'hi'", seq.Elems)
	}
}

func TestParseCharLiteralLowersToLitInt(t *testing.T) {
	s := parseOne(t, "x = 'A';")
	assign := s.(ast.Assign)
	lit, ok := assign.Rhs.(ast.LitInt)
	if !ok || lit.Value != int64('A') {
		t.Fatalf("rhs = %+v, want LitInt(65)", assign.Rhs)
	}
}

func TestParsePrint(t *testing.T) {
	s := parseOne(t, "print x;")
	p, ok := s.(ast.Print)
	if !ok {
		t.Fatalf("got %T, want ast.Print", s)
	}
	if _, ok := p.Expr.(ast.Var); !ok {
		t.Fatalf("expr = %+v, want Var", p.Expr)
	}
}

func TestParseIfAndWhile(t *testing.T) {
	s := parseOne(t, "if (x < 1) print x;")
	ifs, ok := s.(ast.If)
	if !ok {
		t.Fatalf("got %T, want ast.If", s)
	}
	if _, ok := ifs.Body.(ast.Print); !ok {
		t.Fatalf("body = %+v, want Print", ifs.Body)
	}

	s = parseOne(t, "while (x < 10) x = x + 1;")
	if _, ok := s.(ast.While); !ok {
		t.Fatalf("got %T, want ast.While", s)
	}
}

func TestParsePush(t *testing.T) {
	s := parseOne(t, "push a, 5;")
	push, ok := s.(ast.Push)
	if !ok {
		t.Fatalf("got %T, want ast.Push", s)
	}
	if _, ok := push.Seq.(ast.Var); !ok {
		t.Fatalf("seq = %+v, want Var", push.Seq)
	}
}

func TestParseBlock(t *testing.T) {
	s := parseOne(t, "{ x = 1; y = 2; }")
	c, ok := s.(ast.Compound)
	if !ok || len(c.Stmts) != 2 {
		t.Fatalf("got %+v, want 2-statement Compound", s)
	}
}

func TestParseLen(t *testing.T) {
	s := parseOne(t, "x = len a;")
	assign := s.(ast.Assign)
	u, ok := assign.Rhs.(ast.Unary)
	if !ok || u.Op != ast.Len {
		t.Fatalf("rhs = %+v, want Unary(Len)", assign.Rhs)
	}
}

func TestParseParenthesizedExpr(t *testing.T) {
	s := parseOne(t, "x = (1 + 2) * 3;")
	assign := s.(ast.Assign)
	outer, ok := assign.Rhs.(ast.Binary)
	if !ok || outer.Op != ast.Mul {
		t.Fatalf("got %+v, want Mul at top", assign.Rhs)
	}
}

func TestMissingSemicolonIsSyntaxError(t *testing.T) {
	err := parseErr(t, "x = 1")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestBareIdentifierAtStatementPositionIsSyntaxError(t *testing.T) {
	err := parseErr(t, "x;")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestTrailingJunkInSeqLiteralIsSyntaxError(t *testing.T) {
	err := parseErr(t, "x = [1 2];")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestUnterminatedBlockIsSyntaxError(t *testing.T) {
	err := parseErr(t, "{ x = 1;")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestIdentifierOver20BytesIsSyntaxError(t *testing.T) {
	err := parseErr(t, strings.Repeat("n", 21)+" = 1;")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestIdentifierAt20BytesIsAccepted(t *testing.T) {
	s := parseOne(t, strings.Repeat("n", 20)+" = 1;")
	if _, ok := s.(ast.Assign); !ok {
		t.Fatalf("got %T, want ast.Assign", s)
	}
}
