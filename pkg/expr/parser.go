package expr

import (
	"fmt"
	"strconv"
)

// Operator precedence levels, low to high. The caret is right-associative
// and binds tighter than unary minus, so -2^2 evaluates to -(2^2).
const (
	precNone = iota
	precAdditive
	precMultiplicative
	precUnary
	precPower
)

// Parser builds an expression tree from tokens using precedence climbing.
type Parser struct {
	lexer *Lexer
	token Token // current token
	peek  Token // next token
}

// NewParser creates a Parser for the given input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	// Prime token and peek.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a complete expression. The entire input must be consumed;
// trailing tokens are a parse error.
func Parse(input string) (Node, error) {
	p := NewParser(input)
	node, err := p.parseExpression(precNone + 1)
	if err != nil {
		return nil, err
	}
	if p.token.Type != TOKEN_EOF {
		return nil, p.errorf("unexpected token %q", p.token.Literal)
	}
	return node, nil
}

func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.token.Pos, Message: fmt.Sprintf(format, args...)}
}

// parseExpression parses infix operators while their precedence is at least
// minPrecedence.
func (p *Parser) parseExpression(minPrecedence int) (Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		prec := infixPrecedence(p.token.Type)
		if prec < minPrecedence {
			return left, nil
		}

		op := p.token.Type
		p.nextToken()

		// Right-associative operators recurse at their own precedence,
		// left-associative ones at one higher.
		next := prec + 1
		if op == TOKEN_CARET {
			next = prec
		}

		right, err := p.parseExpression(next)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

// parsePrefix parses unary operators and primary expressions.
func (p *Parser) parsePrefix() (Node, error) {
	if p.token.Type == TOKEN_MINUS {
		p.nextToken()
		operand, err := p.parseExpression(precUnary)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: TOKEN_MINUS, Operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses literals, identifiers, calls and grouping.
func (p *Parser) parsePrimary() (Node, error) {
	switch p.token.Type {
	case TOKEN_NUMBER:
		v, err := strconv.ParseFloat(p.token.Literal, 64)
		if err != nil {
			return nil, p.errorf("invalid number literal %q", p.token.Literal)
		}
		p.nextToken()
		return &NumberLit{Value: v}, nil

	case TOKEN_IDENT:
		name := p.token.Literal
		if p.peek.Type == TOKEN_LPAREN {
			return p.parseCall(name)
		}
		p.nextToken()
		return &Ident{Name: name}, nil

	case TOKEN_LPAREN:
		p.nextToken()
		inner, err := p.parseExpression(precNone + 1)
		if err != nil {
			return nil, err
		}
		if p.token.Type != TOKEN_RPAREN {
			return nil, p.errorf("expected ), got %q", p.token.Literal)
		}
		p.nextToken()
		return inner, nil

	case TOKEN_EOF:
		return nil, p.errorf("unexpected end of expression")

	default:
		return nil, p.errorf("unexpected token %q", p.token.Literal)
	}
}

// parseCall parses a function invocation: name(arg, arg, ...).
func (p *Parser) parseCall(name string) (Node, error) {
	p.nextToken() // consume name
	p.nextToken() // consume (

	call := &CallExpr{Func: name}

	if p.token.Type == TOKEN_RPAREN {
		p.nextToken()
		return call, nil
	}

	for {
		arg, err := p.parseExpression(precNone + 1)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		switch p.token.Type {
		case TOKEN_COMMA:
			p.nextToken()
		case TOKEN_RPAREN:
			p.nextToken()
			return call, nil
		default:
			return nil, p.errorf("expected , or ) in call to %s, got %q", name, p.token.Literal)
		}
	}
}

func infixPrecedence(t TokenType) int {
	switch t {
	case TOKEN_PLUS, TOKEN_MINUS:
		return precAdditive
	case TOKEN_STAR, TOKEN_SLASH, TOKEN_PERCENT:
		return precMultiplicative
	case TOKEN_CARET:
		return precPower
	default:
		return precNone
	}
}
