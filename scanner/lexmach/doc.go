/*
Package lexmach adapts lexmachine (https://github.com/timtadh/lexmachine)
to the scanner.Tokenizer interface.

Clients register their token rules in an init function, together with
a list of literal lexemes which will be tokenized as themselves:

    init := func(lexer *lexmachine.Lexer) {
        lexer.Add([]byte(`;[^\n]*`), lexmach.Skip)
        lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken("NUM", int(scanner.Num)))
    }
    adapter, err := lexmach.NewLMAdapter(init, []string{"{", "}"}, tokenIds)
    scan, err := adapter.Scanner("1 { 2 }")
    for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
