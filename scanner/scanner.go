/*
Package scanner defines the token contract between tokenizers and the
program parser of package syntax.

A lexmachine-based tokenizer lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tacit"
)

// tracer traces with key 'tacit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("tacit.scanner")
}

// Token categories of the program notation. Single-character literals
// use their rune value as token type.
const (
	EOF     tacit.TokType = -1
	Ident   tacit.TokType = -2
	Num     tacit.TokType = -3
	String  tacit.TokType = -4
	Comment tacit.TokType = -5
	LBrace  tacit.TokType = '{'
	RBrace  tacit.TokType = '}'
)

// TokTypeString returns a readable name for a token category.
func TokTypeString(t tacit.TokType) string {
	switch t {
	case EOF:
		return "<eof>"
	case Ident:
		return "identifier"
	case Num:
		return "number"
	case String:
		return "string"
	case Comment:
		return "comment"
	case LBrace, RBrace:
		return fmt.Sprintf("'%c'", rune(t))
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() tacit.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// scanner.
type DefaultToken struct {
	kind   tacit.TokType
	lexeme string
	Val    interface{}
	span   tacit.Span
}

var _ tacit.Token = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ tacit.TokType, lexeme string, span tacit.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() tacit.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() tacit.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s %q %s", TokTypeString(t.kind), t.lexeme, t.span)
}
