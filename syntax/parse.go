package syntax

import (
	"fmt"

	"github.com/npillmayer/tacit"
	"github.com/npillmayer/tacit/scanner"
)

// Grammar of the program notation:
//
//   Program  ::=  Expr*
//   Expr     ::=  ident  |  string  |  number  |  '{' Program '}'
//
// Comments starting with ';' are filtered by the scanner.

// SyntaxError reports a malformed program text.
type SyntaxError struct {
	Msg  string
	Span tacit.Span
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Span, e.Msg)
}

// Parse parses a program given in textual notation.
func Parse(input string) (Program, error) {
	lex, err := sharedLexer()
	if err != nil {
		return nil, fmt.Errorf("cannot create lexer: %w", err)
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{scan: scan}
	scan.SetErrorHandler(func(e error) {
		if p.err == nil {
			p.err = fmt.Errorf("cannot scan input: %w", e)
		}
	})
	p.advance()
	prog, err := p.program(nil)
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	tracer().Debugf("parsed program: %s", prog)
	return prog, nil
}

// MustParse is like Parse, but panics on malformed input. It is intended for
// program literals in code and tests.
func MustParse(input string) Program {
	prog, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return prog
}

type parser struct {
	scan scanner.Tokenizer
	tok  tacit.Token
	err  error // first scanner error
}

func (p *parser) advance() {
	p.tok = p.scan.NextToken()
}

// program parses a sequence of expressions up to a closing brace (if open is
// not nil) or end of input.
func (p *parser) program(open tacit.Token) (Program, error) {
	prog := Program{}
	for {
		switch p.tok.TokType() {
		case scanner.EOF:
			if open != nil {
				span := open.Span().Extend(p.tok.Span())
				return nil, &SyntaxError{Msg: "missing '}' for quote", Span: span}
			}
			return prog, nil
		case scanner.RBrace:
			if open == nil {
				return nil, &SyntaxError{Msg: "unbalanced '}'", Span: p.tok.Span()}
			}
			p.advance()
			return prog, nil
		case scanner.LBrace:
			brace := p.tok
			p.advance()
			body, err := p.program(brace)
			if err != nil {
				return nil, err
			}
			prog = append(prog, Quote{Body: body})
		case scanner.Ident:
			prog = append(prog, Ident(p.tok.Lexeme()))
			p.advance()
		case scanner.String:
			lexeme := p.tok.Lexeme()
			prog = append(prog, StrLit(lexeme[1:len(lexeme)-1]))
			p.advance()
		case scanner.Num:
			n, err := ParseNum(p.tok.Lexeme())
			if err != nil {
				return nil, &SyntaxError{Msg: err.Error(), Span: p.tok.Span()}
			}
			prog = append(prog, n)
			p.advance()
		default:
			return nil, &SyntaxError{
				Msg:  fmt.Sprintf("unexpected %s", scanner.TokTypeString(p.tok.TokType())),
				Span: p.tok.Span(),
			}
		}
	}
}
