/*
Package shell implements the interactive front end of the structural editor:
translation of the terminal's key presses into key events, the
mode-dependent key table, and the render cycle.

After every key the program under the cursor is evaluated from scratch. The
debug view below the program line shows the stack snapshots recorded at the
cursor's position, one per visit of that position during evaluation.

Key table

    Normal  ←/→ move, ↑ enter quote, ↓ or } leave quote, ⌫ delete,
            i identifier, " string, # number, { quote
    Ident   any non-blank character is typed, blank or ⏎ commits
    StrLit  any character but " is typed, " commits
    NumLit  digits are typed, any other character commits and then
            acts as in Normal mode

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shell

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tacit.shell'.
func tracer() tracing.Trace {
	return tracing.Select("tacit.shell")
}
