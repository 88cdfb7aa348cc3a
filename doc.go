/*
Package tacit is a structural editor for a small concatenative language,
coupled to a live interpreter.

The editor never manipulates raw text. Its edit position is always a focus
inside a typed program tree (a zipper), and every edit is a tree
transformation. On every edit the whole program is re-evaluated from its
start, and for every structural position the interpreter records each stack
state it has ever observed there, including positions visited repeatedly
because they sit inside a quote executed many times (e.g. under "map").
Package structure is as follows:

■ syntax: Package syntax implements the expression tree of programs,
together with a parser for a textual program notation.

■ cursor: Package cursor implements the zipper over programs, its navigation
and splicing algebra, and structural shapes of positions.

■ runtime: Package runtime implements values, stack machines, the primitive
table, the evaluator and the position-indexed execution trace.

■ polyset: Package polyset implements a small sorted multiset.

■ pretty and shell: Packages pretty and shell describe programs, values and
machines as styled text and map key events to zipper operations.

The base package contains data types which are used throughout the scanning
and parsing packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tacit
