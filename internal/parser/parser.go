// Package parser implements a recursive-descent parser with exactly one
// token of lookahead, reading directly from a lexer.Lexer rather than a
// pre-scanned token slice — so that a driver can parse one top-level
// statement, execute it, and free it before parsing the next
// (spec.md §2, §4.4).
package parser

import (
	"strand/internal/ast"
	"strand/internal/env"
	"strand/internal/lexer"
	"strand/internal/token"
)

// Parser holds the single token of lookahead the grammar needs.
type Parser struct {
	lex *lexer.Lexer
	cur token.Token
}

// New constructs a Parser over lex and primes its first lookahead token.
func New(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance pulls the next token from the lexer into p.cur. A lexical
// error here is fatal, exactly like a parse error, so it is returned
// unwrapped — its Error() text already carries the "line N: ..." tag.
func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// AtEOF reports whether the lookahead token is EOF — the driver's
// per-statement loop stops once this is true.
func (p *Parser) AtEOF() bool { return p.cur.Type == token.EOF }

func (p *Parser) checkType(t token.Type) bool { return p.cur.Type == t }

// consume requires the lookahead to have type t, advancing past it; any
// mismatch is a syntax error tagged with the lookahead's line.
func (p *Parser) consume(t token.Type) (token.Token, error) {
	if !p.checkType(t) {
		return token.Token{}, newError(p.cur.Line)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// identName validates an IDENT token's lexeme against the grammar's
// length bound (spec.md §4.4 "Identifier constraints": at most 20
// bytes — the same bound env.Environment assumes for its slots) and
// returns it, or a syntax error if the name is too long.
func identName(tok token.Token) (string, error) {
	if len(tok.Lexeme) > env.MaxNameLen() {
		return "", newError(tok.Line)
	}
	return tok.Lexeme, nil
}

func isTerminator(t token.Type) bool {
	switch t {
	case token.SEMICOLON, token.RPAREN, token.RBRACKET, token.COMMA:
		return true
	default:
		return false
	}
}

func binOpFor(t token.Type) ast.BinOp {
	switch t {
	case token.PLUS:
		return ast.Add
	case token.MINUS:
		return ast.Sub
	case token.STAR:
		return ast.Mul
	case token.SLASH:
		return ast.Div
	case token.LESS:
		return ast.Less
	case token.EQEQ:
		return ast.Equals
	case token.ANDAND:
		return ast.And
	case token.OROR:
		return ast.Or
	default:
		return ast.Add // unreachable: callers only invoke this for IsInfixOperator() types other than LBRACKET
	}
}

// ParseStatement parses exactly one top-level statement. Call AtEOF
// first; calling ParseStatement at EOF is a programmer error.
func (p *Parser) ParseStatement() (ast.Stmt, error) {
	return p.statement()
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch p.cur.Type {
	case token.LBRACE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.block()

	case token.PRINT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.SEMICOLON); err != nil {
			return nil, err
		}
		return ast.Print{Expr: e}, nil

	case token.IF:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.consume(token.LPAREN); err != nil {
			return nil, err
		}
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN); err != nil {
			return nil, err
		}
		body, err := p.statement()
		if err != nil {
			return nil, err
		}
		return ast.If{Cond: cond, Body: body}, nil

	case token.WHILE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.consume(token.LPAREN); err != nil {
			return nil, err
		}
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN); err != nil {
			return nil, err
		}
		body, err := p.statement()
		if err != nil {
			return nil, err
		}
		return ast.While{Cond: cond, Body: body}, nil

	case token.PUSH:
		if err := p.advance(); err != nil {
			return nil, err
		}
		seqExpr, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COMMA); err != nil {
			return nil, err
		}
		valExpr, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.SEMICOLON); err != nil {
			return nil, err
		}
		return ast.Push{Seq: seqExpr, Val: valExpr}, nil

	case token.IDENT:
		return p.identifierStatement()

	default:
		return nil, newError(p.cur.Line)
	}
}

// identifierStatement disambiguates indexed assignment from plain
// assignment after an identifier at statement position (spec.md §4.4
// "Assignment disambiguation"): '[' means indexed assignment, '='
// means plain assignment, anything else is a syntax error.
func (p *Parser) identifierStatement() (ast.Stmt, error) {
	name, err := identName(p.cur)
	if err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.checkType(token.LBRACKET) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		idx, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RBRACKET); err != nil {
			return nil, err
		}
		if _, err := p.consume(token.ASSIGN); err != nil {
			return nil, err
		}
		rhs, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.SEMICOLON); err != nil {
			return nil, err
		}
		return ast.Assign{Name: name, Index: idx, Rhs: rhs}, nil
	}

	if p.checkType(token.ASSIGN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.SEMICOLON); err != nil {
			return nil, err
		}
		return ast.Assign{Name: name, Rhs: rhs}, nil
	}

	return nil, newError(p.cur.Line)
}

// block parses the statements of a "{ ... }" body; the opening brace
// has already been consumed by the caller.
func (p *Parser) block() (ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.checkType(token.RBRACE) {
		if p.AtEOF() {
			return nil, newError(p.cur.Line)
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.consume(token.RBRACE); err != nil {
		return nil, err
	}
	return ast.Compound{Stmts: stmts}, nil
}

// expr parses Expr := Term ( InfixOp Term )*, left-associative, all
// operators sharing one precedence tier (spec.md §4.4, §9). It stops at
// the first token that is not an infix operator, leaving that token as
// the lookahead for the caller to consume; that token must be one of
// the legal terminators (";", ")", "]", ",") or it is a syntax error.
func (p *Parser) expr() (ast.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.cur.Type.IsInfixOperator() {
		opType := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}

		if opType == token.LBRACKET {
			idx, err := p.expr()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.RBRACKET); err != nil {
				return nil, err
			}
			left = ast.Binary{Op: ast.Index, Left: left, Right: idx}
			continue
		}

		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = ast.Binary{Op: binOpFor(opType), Left: left, Right: right}
	}

	if !isTerminator(p.cur.Type) {
		return nil, newError(p.cur.Line)
	}
	return left, nil
}

// term parses Term := "(" Expr ")" | IntLiteral | CharLiteral |
// StringLiteral | "[" ... "]" | "len" Expr | Ident.
func (p *Parser) term() (ast.Expr, error) {
	switch p.cur.Type {
	case token.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN); err != nil {
			return nil, err
		}
		return e, nil

	case token.INT, token.CHAR:
		v := p.cur.Literal.(int64)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.LitInt{Value: v}, nil

	case token.STRING:
		bytes := p.cur.Literal.([]byte)
		if err := p.advance(); err != nil {
			return nil, err
		}
		elems := make([]ast.Expr, len(bytes))
		for i, b := range bytes {
			elems[i] = ast.LitInt{Value: int64(b)}
		}
		return ast.SeqInit{Elems: elems}, nil

	case token.LBRACKET:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.seqLiteral()

	case token.LEN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		sub, err := p.expr()
		if err != nil {
			return nil, err
		}
		return ast.Unary{Op: ast.Len, Sub: sub}, nil

	case token.IDENT:
		name, err := identName(p.cur)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Var{Name: name}, nil

	default:
		return nil, newError(p.cur.Line)
	}
}

// seqLiteral parses the element list of a bracketed sequence literal;
// the opening "[" has already been consumed. Accepts "[]" and a
// trailing-brace close after the last element; any token other than
// "," or "]" following an element is a syntax error. This is the
// grammar spec.md §4.4/§9 calls authoritative, deliberately not the
// double-consume the source language's own implementation had.
func (p *Parser) seqLiteral() (ast.Expr, error) {
	if p.checkType(token.RBRACKET) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.SeqInit{}, nil
	}

	var elems []ast.Expr
	for {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)

		if p.checkType(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if p.checkType(token.RBRACKET) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.SeqInit{Elems: elems}, nil
		}
		return nil, newError(p.cur.Line)
	}
}
