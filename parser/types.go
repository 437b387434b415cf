package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"minihm/lexer"
	"minihm/types"
)

// ParseType parses the type-literal surface syntax described in
// spec.md §4.1: identifiers starting uppercase are Base types, "uN" is
// Unknown(N), "A -> B" is a right-associative Func, and parentheses
// group. This is the same notation the pretty printer produces, which
// makes it convenient for tests, and it is also what the CLI driver's
// --env declaration file uses for the type on the right of each ":".
func ParseType(input string) (types.Type, error) {
	p := newTypeParser(input)
	t, err := p.parseArrow()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.EOF {
		return nil, fmt.Errorf("unexpected token %q after type", p.cur.Literal)
	}
	return t, nil
}

type typeParser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

func newTypeParser(input string) *typeParser {
	p := &typeParser{l: lexer.New(input)}
	p.next()
	p.next()
	return p
}

func (p *typeParser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// parseArrow parses a right-associative chain of arrows.
func (p *typeParser) parseArrow() (types.Type, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.ARROW {
		return left, nil
	}
	p.next() // consume "->"
	right, err := p.parseArrow()
	if err != nil {
		return nil, err
	}
	return &types.Func{Arg: left, Result: right}, nil
}

func (p *typeParser) parseAtom() (types.Type, error) {
	switch p.cur.Type {
	case lexer.IDENT:
		name := p.cur.Literal
		p.next()
		return identifierType(name)

	case lexer.LPAREN:
		p.next()
		t, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.RPAREN {
			return nil, fmt.Errorf("expected ')' in type, got %q", p.cur.Literal)
		}
		p.next()
		return t, nil

	default:
		return nil, fmt.Errorf("unexpected token %q in type", p.cur.Literal)
	}
}

// identifierType classifies a type-literal identifier as a Base type
// ("Int", "Bool", "String", ...) or an Unknown ("u1", "u2", ...).
func identifierType(name string) (types.Type, error) {
	r := []rune(name)
	if len(r) == 0 {
		return nil, fmt.Errorf("empty type identifier")
	}
	if unicode.IsUpper(r[0]) {
		return &types.Base{Name: name}, nil
	}
	if r[0] == 'u' && len(r) > 1 && isAllDigits(string(r[1:])) {
		id, err := strconv.Atoi(string(r[1:]))
		if err != nil {
			return nil, fmt.Errorf("invalid unknown id in %q", name)
		}
		return &types.Unknown{ID: id}, nil
	}
	return nil, fmt.Errorf("invalid type literal %q", name)
}

func isAllDigits(s string) bool {
	return len(s) > 0 && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) == -1
}
