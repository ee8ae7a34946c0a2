package syntax

import (
	"fmt"

	"github.com/smasher164/untyped/expr"
)

// ParseError reports where and why the input was rejected.
type ParseError struct {
	Pos       int
	Remainder string
	Msg       string
}

func (e *ParseError) Error() string {
	rest := e.Remainder
	if len(rest) > 24 {
		rest = rest[:24] + "..."
	}
	if rest == "" {
		return fmt.Sprintf("offset %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("offset %d: %s near %q", e.Pos, e.Msg, rest)
}

type parser struct {
	src    string
	tokens []token
}

// Parse parses src as exactly one expression.
func Parse(src string) (expr.Expr, error) {
	p := &parser{src: src, tokens: scan(src)}
	for _, t := range p.tokens {
		if !isPunct(t.text) && !isIdent(t.text) {
			return nil, p.errorAt(t.pos, "invalid identifier %q", t.text)
		}
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if len(p.tokens) != 0 {
		return nil, p.errorAt(p.tokens[0].pos, "expected EOF, got %q", p.tokens[0].text)
	}
	return e, nil
}

func (p *parser) errorAt(pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Remainder: p.src[pos:], Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) pos() int {
	if len(p.tokens) == 0 {
		return len(p.src)
	}
	return p.tokens[0].pos
}

func (p *parser) peek() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[0].text
}

func (p *parser) next() (token, error) {
	if len(p.tokens) == 0 {
		return token{}, p.errorAt(len(p.src), "unexpected EOF")
	}
	t := p.tokens[0]
	p.tokens = p.tokens[1:]
	return t, nil
}

func (p *parser) expect(tok string) error {
	if len(p.tokens) == 0 {
		return p.errorAt(len(p.src), "expected %q, got EOF", tok)
	}
	if p.tokens[0].text != tok {
		return p.errorAt(p.tokens[0].pos, "expected %q, got %q", tok, p.tokens[0].text)
	}
	p.tokens = p.tokens[1:]
	return nil
}

func (p *parser) parseExpr() (expr.Expr, error) {
	t, err := p.next()
	if err != nil {
		return nil, err
	}
	if t.text == "(" {
		return p.parseParen()
	}
	if isPunct(t.text) {
		return nil, p.errorAt(t.pos, "unexpected %q", t.text)
	}
	return expr.Var(t.text), nil
}

// parseParen parses what follows an opening parenthesis.
func (p *parser) parseParen() (expr.Expr, error) {
	switch p.peek() {
	case "[":
		p.tokens = p.tokens[1:]
		params, err := p.parseParams("]")
		if err != nil {
			return nil, err
		}
		return p.parseFunction(params)
	case "\\", "λ":
		p.tokens = p.tokens[1:]
		params, err := p.parseParams(".")
		if err != nil {
			return nil, err
		}
		return p.parseFunction(params)
	}
	fn, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek() == ")" {
		return nil, p.errorAt(p.pos(), "invocation needs at least one argument")
	}
	for len(p.tokens) > 0 && p.peek() != ")" {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		fn = expr.Inv(fn, arg)
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseParams reads one or more identifiers up to and including end.
func (p *parser) parseParams(end string) ([]string, error) {
	var params []string
	for len(p.tokens) > 0 && p.peek() != end {
		t := p.tokens[0]
		p.tokens = p.tokens[1:]
		if isPunct(t.text) {
			return nil, p.errorAt(t.pos, "expected identifier, got %q", t.text)
		}
		params = append(params, t.text)
	}
	if len(params) == 0 {
		return nil, p.errorAt(p.pos(), "expected identifier, got %q", end)
	}
	if err := p.expect(end); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *parser) parseFunction(params []string) (expr.Expr, error) {
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	for i := len(params) - 1; i >= 0; i-- {
		body = expr.Fun(params[i], body)
	}
	return body, nil
}
