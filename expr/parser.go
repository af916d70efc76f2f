// Copyright (c) 2026 the robdd authors
//
// MIT License

package expr

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("syntax error")

// Parse reads a Boolean expression in the usual infix syntax. The
// connectives, from lowest to highest precedence, are:
//
//	<->   bi-implication
//	->    implication
//	^     exclusive or
//	|     disjunction
//	&     conjunction
//	~     negation (prefix)
//
// Binary connectives associate to the left, negation binds tightest and is
// right-associative. Variables are names made of letters, digits and
// underscores; the keywords "true" and "false" denote the constants.
// Parentheses group in the usual way.
func Parse(input string) (Expr, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	e, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok != "" {
		return nil, fmt.Errorf("%w: unexpected %q after expression", ErrSyntax, tok)
	}
	return e, nil
}

func tokenize(input string) ([]string, error) {
	var tokens []string
	for i := 0; i < len(input); {
		ch := input[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '(' || ch == ')' || ch == '&' || ch == '|' || ch == '~' || ch == '^':
			tokens = append(tokens, string(ch))
			i++
		case ch == '-':
			if i+1 >= len(input) || input[i+1] != '>' {
				return nil, fmt.Errorf("%w: stray %q at offset %d", ErrSyntax, "-", i)
			}
			tokens = append(tokens, "->")
			i += 2
		case ch == '<':
			if i+2 >= len(input) || input[i+1] != '-' || input[i+2] != '>' {
				return nil, fmt.Errorf("%w: stray %q at offset %d", ErrSyntax, "<", i)
			}
			tokens = append(tokens, "<->")
			i += 3
		case isNameByte(ch):
			start := i
			for i < len(input) && isNameByte(input[i]) {
				i++
			}
			tokens = append(tokens, input[start:i])
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, string(ch), i)
		}
	}
	return tokens, nil
}

func isNameByte(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

type parser struct {
	tokens []string
	pos    int
}

// peek returns the current token without consuming it, or the empty string
// at the end of input.
func (p *parser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *parser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *parser) parseIff() (Expr, error) {
	left, err := p.parseImp()
	if err != nil {
		return nil, err
	}
	for p.peek() == "<->" {
		p.next()
		right, err := p.parseImp()
		if err != nil {
			return nil, err
		}
		left = Bin{Op: Iff, X: left, Y: right}
	}
	return left, nil
}

func (p *parser) parseImp() (Expr, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.peek() == "->" {
		p.next()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		left = Bin{Op: Imp, X: left, Y: right}
	}
	return left, nil
}

func (p *parser) parseXor() (Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.peek() == "^" {
		p.next()
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = Bin{Op: Xor, X: left, Y: right}
	}
	return left, nil
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek() == "|" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Bin{Op: Or, X: left, Y: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.peek() == "&" {
		p.next()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = Bin{Op: And, X: left, Y: right}
	}
	return left, nil
}

func (p *parser) parseNot() (Expr, error) {
	if p.peek() == "~" {
		p.next()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not{X: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	if tok == "" {
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	if tok == "(" {
		p.next()
		e, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.next()
		return e, nil
	}
	if isNameByte(tok[0]) {
		p.next()
		switch tok {
		case "true":
			return Const(true), nil
		case "false":
			return Const(false), nil
		}
		return Var(tok), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %q", ErrSyntax, tok)
}
