/*
Package syntax implements the expression tree of programs.

A program is an ordered sequence of expressions, executed left to right.
Expressions are identifiers, string literals, number literals of arbitrary
precision, and quotes, i.e. nested sub-programs which are not executed where
they appear. Expressions are immutable once constructed.

Programs are usually built by the structural editor, one tree edit at a time.
For init files, the line-mode REPL and tests there is a textual notation as
well:

    3 4 +  "ab" "b" "c" s  { inc } map   ; a comment

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tacit.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("tacit.syntax")
}
