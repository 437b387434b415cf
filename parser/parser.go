// Package parser turns the expression surface syntax and the
// type-literal surface syntax into ast.Expr and types.Type values.
//
// The parser is an external collaborator of the inference engine: the
// engine only consumes the ast.Expr and types.Type trees this package
// produces, and never depends on parsing itself.
package parser

import (
	"fmt"
	"strconv"

	"minihm/ast"
	"minihm/lexer"
)

// ParseExpr parses a complete expression from input.
func ParseExpr(input string) (ast.Expr, error) {
	p := newParser(input)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.EOF {
		return nil, fmt.Errorf("unexpected token %q after expression", p.cur.Literal)
	}
	return expr, nil
}

type parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

func newParser(input string) *parser {
	p := &parser{l: lexer.New(input)}
	p.next()
	p.next()
	return p
}

func (p *parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *parser) expect(t lexer.Type, what string) error {
	if p.cur.Type != t {
		return fmt.Errorf("expected %s, got %q at line %d column %d", what, p.cur.Literal, p.cur.Line, p.cur.Column)
	}
	p.next()
	return nil
}

func (p *parser) parseExpr() (ast.Expr, error) {
	switch p.cur.Type {
	case lexer.LET:
		return p.parseLet()
	case lexer.IF:
		return p.parseIf()
	case lexer.BACKSLASH:
		return p.parseLambda()
	default:
		return p.parseApp()
	}
}

func (p *parser) parseLet() (ast.Expr, error) {
	p.next() // consume "let"
	if p.cur.Type != lexer.IDENT {
		return nil, fmt.Errorf("expected identifier after let, got %q", p.cur.Literal)
	}
	name := p.cur.Literal
	p.next()
	if err := p.expect(lexer.EQUAL, "'='"); err != nil {
		return nil, err
	}
	bound, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.IN, "'in'"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Let{Name: name, Bound: bound, Body: body}, nil
}

func (p *parser) parseIf() (ast.Expr, error) {
	p.next() // consume "if"
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.THEN, "'then'"); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ELSE, "'else'"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.If{Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) parseLambda() (ast.Expr, error) {
	p.next() // consume "\"
	if p.cur.Type != lexer.IDENT {
		return nil, fmt.Errorf("expected parameter name, got %q", p.cur.Literal)
	}
	param := p.cur.Literal
	p.next()
	if err := p.expect(lexer.ARROW, "'->'"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Param: param, Body: body}, nil
}

// parseApp parses left-associative application by juxtaposition:
// f x y parses as App{App{f, x}, y}.
func (p *parser) parseApp() (ast.Expr, error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		e = &ast.App{Func: e, Arg: arg}
	}
	return e, nil
}

func (p *parser) startsAtom() bool {
	switch p.cur.Type {
	case lexer.INT, lexer.STRING, lexer.TRUE, lexer.FALSE, lexer.IDENT, lexer.LPAREN:
		return true
	default:
		return false
	}
}

func (p *parser) parseAtom() (ast.Expr, error) {
	switch p.cur.Type {
	case lexer.INT:
		n, err := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal %q", p.cur.Literal)
		}
		p.next()
		return &ast.IntLit{Value: n}, nil

	case lexer.STRING:
		s := p.cur.Literal
		p.next()
		return &ast.StringLit{Value: s}, nil

	case lexer.TRUE:
		p.next()
		return &ast.BoolLit{Value: true}, nil

	case lexer.FALSE:
		p.next()
		return &ast.BoolLit{Value: false}, nil

	case lexer.IDENT:
		name := p.cur.Literal
		p.next()
		return &ast.Var{Name: name}, nil

	case lexer.LPAREN:
		p.next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return e, nil

	default:
		return nil, fmt.Errorf("unexpected token %q at line %d column %d", p.cur.Literal, p.cur.Line, p.cur.Column)
	}
}
