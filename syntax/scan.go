package syntax

import (
	"fmt"
	"sync"

	"github.com/npillmayer/tacit/scanner"
	"github.com/npillmayer/tacit/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"{", "}"}

// tokenIds maps token names to their token types
var tokenIds = map[string]int{
	"COMMENT": int(scanner.Comment),
	"ID":      int(scanner.Ident),
	"NUM":     int(scanner.Num),
	"STRING":  int(scanner.String),
	"{":       int(scanner.LBrace),
	"}":       int(scanner.RBrace),
}

// Lexer creates a new lexmachine lexer for the program notation.
//
// Identifiers are runs of anything but white space, braces, double quotes
// and semicolons. Since lexmachine prefers the longest match and, on ties,
// the rule added first, "42" is a number while "2dup" is an identifier.
func Lexer() (*lexmach.LMAdapter, error) {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`;[^\n]*`), lexmach.Skip) // skip comments
		lexer.Add([]byte(`\"[^"]*\"`), makeToken("STRING"))
		lexer.Add([]byte(`[0-9]+`), makeToken("NUM"))
		lexer.Add([]byte(`[^ \t\n\r{}";]+`), makeToken("ID"))
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	}
	adapter, err := lexmach.NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}

var lexer *lexmach.LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time creation of the lexer

func sharedLexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer, lexerErr = Lexer()
	})
	return lexer, lexerErr
}
