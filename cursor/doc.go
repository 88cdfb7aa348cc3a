/*
Package cursor implements the edit and evaluation focus over programs: a
zipper, i.e. a program with one focused hole.

A cursor is always in one of five shapes:

    Edge(head, tail)                  plain position between two program fragments
    Quote(head, inner, tail)          the focus lies inside a nested quote
    Ident(head, caret, buffer, tail)  an identifier under construction
    StrLit(head, caret, buffer, tail) a string literal under construction
    NumLit(head, accumulator, tail)   a number literal under construction

Concatenating head, the focus (in its committed form) and tail at every
nesting level, outward to the root, reconstructs the whole program.

Cursors are values. Every operation returns a new cursor and leaves its
receiver untouched; program fragments are shared between cursors but never
modified in place. Operations called on a focus they are not defined for are
contract violations and panic with a *ContractError.

A cursor's Shape replaces all contents by lengths. Shapes identify "the same
place" across differently shaped executions of a program and serve as keys of
execution traces.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cursor

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tacit.cursor'.
func tracer() tracing.Trace {
	return tracing.Select("tacit.cursor")
}

// Kind is the variant of a cursor's focus.
type Kind int8

// Kinds of cursor foci.
const (
	EdgeKind Kind = iota
	QuoteKind
	IdentKind
	StrLitKind
	NumLitKind
)

func (k Kind) String() string {
	switch k {
	case EdgeKind:
		return "Edge"
	case QuoteKind:
		return "Quote"
	case IdentKind:
		return "Ident"
	case StrLitKind:
		return "StrLit"
	case NumLitKind:
		return "NumLit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mode is the editing mode of a cursor, derived from the innermost focus.
type Mode int8

// Editing modes.
const (
	Normal Mode = iota
	IdentMode
	StrLitMode
	NumLitMode
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case IdentMode:
		return "Ident"
	case StrLitMode:
		return "StrLit"
	case NumLitMode:
		return "NumLit"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ContractError is the panic value of cursor operations called on an
// incompatible focus. It signals a broken caller invariant, not a user
// mistake.
type ContractError struct {
	Op    string
	Focus Kind
	With  Kind // kind of the fragment, for Insert only
}

func (e *ContractError) Error() string {
	if e.Op == "Insert" {
		return fmt.Sprintf("cursor contract violation: Insert of %s fragment into %s focus", e.With, e.Focus)
	}
	return fmt.Sprintf("cursor contract violation: %s on %s focus", e.Op, e.Focus)
}

func violation(op string, k Kind) {
	err := &ContractError{Op: op, Focus: k}
	tracer().Errorf(err.Error())
	panic(err)
}
