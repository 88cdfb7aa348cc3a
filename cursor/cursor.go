package cursor

import (
	"math/big"
	"strings"

	"github.com/npillmayer/tacit/syntax"
	"golang.org/x/exp/slices"
)

// Cursor is a zipper over a program. The zero value is an empty Edge cursor.
type Cursor struct {
	kind  Kind
	head  syntax.Program
	tail  syntax.Program
	inner *Cursor  // Quote only
	caret int      // Ident and StrLit only, 0 ≤ caret ≤ len(buf)
	buf   []rune   // Ident and StrLit only
	acc   *big.Int // NumLit only, nil as long as no digit has been entered
}

// Empty returns an Edge cursor over an empty program.
func Empty() Cursor {
	return Cursor{kind: EdgeKind}
}

// EmptyIdent returns a cursor for an identifier to be typed.
func EmptyIdent() Cursor {
	return Cursor{kind: IdentKind}
}

// EmptyStrLit returns a cursor for a string literal to be typed.
func EmptyStrLit() Cursor {
	return Cursor{kind: StrLitKind}
}

// EmptyNumLit returns a cursor for a number literal to be typed.
func EmptyNumLit() Cursor {
	return Cursor{kind: NumLitKind}
}

// EmptyQuote returns a cursor inside a fresh, empty quote.
func EmptyQuote() Cursor {
	inner := Empty()
	return Cursor{kind: QuoteKind, inner: &inner}
}

// Initial returns a cursor in front of a whole program. It is used to seed
// evaluation.
func Initial(program syntax.Program) Cursor {
	return Cursor{kind: EdgeKind, tail: program}
}

// At returns an Edge cursor between head and tail.
func At(head, tail syntax.Program) Cursor {
	return Cursor{kind: EdgeKind, head: head, tail: tail}
}

// Kind returns the variant of the cursor's own focus, without descending
// into quotes.
func (c Cursor) Kind() Kind {
	return c.kind
}

// Mode derives the editing mode from the innermost focus.
func (c Cursor) Mode() Mode {
	switch c.kind {
	case QuoteKind:
		return c.inner.Mode()
	case IdentKind:
		return IdentMode
	case StrLitKind:
		return StrLitMode
	case NumLitKind:
		return NumLitMode
	}
	return Normal
}

// HeadProgram is the head sequence at the cursor's own level, without
// descending into a quote focus. Clients must not modify it.
func (c Cursor) HeadProgram() syntax.Program {
	return c.head
}

// TailProgram is the tail sequence at the cursor's own level. Clients must not
// modify it.
func (c Cursor) TailProgram() syntax.Program {
	return c.tail
}

// Inner returns the focus nested inside a Quote cursor.
func (c Cursor) Inner() (Cursor, bool) {
	if c.kind != QuoteKind {
		return Cursor{}, false
	}
	return *c.inner, true
}

// Buffer returns the text of an Ident or StrLit focus under construction,
// together with the caret position.
func (c Cursor) Buffer() (string, int) {
	return string(c.buf), c.caret
}

// Accumulator returns the value typed so far into a NumLit focus. The flag is
// false as long as no digit has been entered.
func (c Cursor) Accumulator() (*big.Int, bool) {
	return c.acc, c.acc != nil
}

// Program reconstructs the whole program enclosing the cursor. It is defined
// for Edge and Quote foci only.
func (c Cursor) Program() syntax.Program {
	switch c.kind {
	case EdgeKind:
		return concat(c.head, c.tail)
	case QuoteKind:
		q := syntax.Quote{Body: c.inner.Program()}
		return concat(c.head, syntax.Program{q}, c.tail)
	}
	violation("Program", c.kind)
	return nil
}

// LocalProgram is like Program, but returns only the innermost Edge level,
// without re-wrapping the enclosing quotes.
func (c Cursor) LocalProgram() syntax.Program {
	switch c.kind {
	case EdgeKind:
		return concat(c.head, c.tail)
	case QuoteKind:
		return c.inner.LocalProgram()
	}
	violation("LocalProgram", c.kind)
	return nil
}

// NextExpr returns the expression immediately after the focus.
func (c Cursor) NextExpr() (syntax.Expr, bool) {
	if c.kind == QuoteKind {
		return c.inner.NextExpr()
	}
	if len(c.tail) == 0 {
		return nil, false
	}
	return c.tail[0], true
}

// --- Navigation ------------------------------------------------------------

// MoveLeft moves the focus one expression (or one character) to the left.
// Boundaries are no-ops.
func (c Cursor) MoveLeft() Cursor {
	switch c.kind {
	case EdgeKind:
		if len(c.head) == 0 {
			return c
		}
		last := len(c.head) - 1
		c.tail = concat(syntax.Program{c.head[last]}, c.tail)
		c.head = c.head[:last]
	case QuoteKind:
		c = c.withInner(c.inner.MoveLeft())
	case IdentKind, StrLitKind:
		if c.caret > 0 {
			c.caret--
		}
	}
	return c
}

// MoveRight moves the focus one expression (or one character) to the right.
// Boundaries are no-ops.
func (c Cursor) MoveRight() Cursor {
	switch c.kind {
	case EdgeKind:
		if len(c.tail) == 0 {
			return c
		}
		c.head = append(slices.Clip(c.head), c.tail[0])
		c.tail = c.tail[1:]
	case QuoteKind:
		c = c.withInner(c.inner.MoveRight())
	case IdentKind, StrLitKind:
		if c.caret < len(c.buf) {
			c.caret++
		}
	}
	return c
}

// MoveVeryLeft places the focus in front of everything at its own level.
func (c Cursor) MoveVeryLeft() Cursor {
	switch c.kind {
	case EdgeKind:
		if len(c.head) > 0 {
			c.tail = concat(c.head, c.tail)
			c.head = nil
		}
	case QuoteKind:
		c = c.withInner(c.inner.MoveVeryLeft())
	case IdentKind, StrLitKind:
		c.caret = 0
	}
	return c
}

// MoveUp enters the quote immediately left of an Edge focus, landing at its
// start. On a Quote focus it descends to the innermost focus first. In all
// other cases it is a no-op.
func (c Cursor) MoveUp() Cursor {
	switch c.kind {
	case EdgeKind:
		if len(c.head) == 0 {
			return c
		}
		last := len(c.head) - 1
		q, ok := c.head[last].(syntax.Quote)
		if !ok {
			return c
		}
		inner := Initial(q.Body)
		return Cursor{kind: QuoteKind, head: c.head[:last], inner: &inner, tail: c.tail}
	case QuoteKind:
		return c.withInner(c.inner.MoveUp())
	}
	return c
}

// MoveOut leaves the innermost quote, leaving the focus right behind it.
// On foci other than Quote it is a no-op.
func (c Cursor) MoveOut() Cursor {
	if c.kind != QuoteKind {
		return c
	}
	if c.inner.kind == QuoteKind {
		return c.withInner(c.inner.MoveOut())
	}
	q := syntax.Quote{Body: c.inner.Program()}
	return Cursor{kind: EdgeKind, head: append(slices.Clip(c.head), q), tail: c.tail}
}

// --- Editing ---------------------------------------------------------------

// Insert splices a fragment cursor into an Edge focus. The fragment's head is
// appended to the focus' head, its tail is prepended to the focus' tail, and
// the result takes the fragment's variant. On a Quote focus Insert descends.
func (c Cursor) Insert(fragment Cursor) Cursor {
	switch c.kind {
	case EdgeKind:
		r := fragment
		r.head = concat(c.head, fragment.head)
		r.tail = concat(fragment.tail, c.tail)
		return r
	case QuoteKind:
		return c.withInner(c.inner.Insert(fragment))
	}
	err := &ContractError{Op: "Insert", Focus: c.kind, With: fragment.kind}
	tracer().Errorf(err.Error())
	panic(err)
}

// DeleteBefore drops the expression left of an Edge focus, if any.
func (c Cursor) DeleteBefore() Cursor {
	switch c.kind {
	case EdgeKind:
		if len(c.head) > 0 {
			c.head = c.head[:len(c.head)-1]
		}
		return c
	case QuoteKind:
		return c.withInner(c.inner.DeleteBefore())
	}
	violation("DeleteBefore", c.kind)
	return c
}

// EscapeToNormal commits a literal under construction and returns to an Edge
// focus. An empty NumLit focus vanishes without leaving an expression.
func (c Cursor) EscapeToNormal() Cursor {
	switch c.kind {
	case QuoteKind:
		return c.withInner(c.inner.EscapeToNormal())
	case IdentKind:
		return At(append(slices.Clip(c.head), syntax.Ident(string(c.buf))), c.tail)
	case StrLitKind:
		return At(append(slices.Clip(c.head), syntax.StrLit(string(c.buf))), c.tail)
	case NumLitKind:
		if c.acc == nil {
			return At(c.head, c.tail)
		}
		return At(append(slices.Clip(c.head), syntax.NumLit{N: c.acc}), c.tail)
	}
	return c
}

// Input types a character. Ident and StrLit foci insert it at the caret;
// NumLit foci accept decimal digits only and ignore anything else.
func (c Cursor) Input(r rune) Cursor {
	switch c.kind {
	case QuoteKind:
		return c.withInner(c.inner.Input(r))
	case IdentKind, StrLitKind:
		c.buf = slices.Insert(slices.Clip(c.buf), c.caret, r)
		c.caret++
		return c
	case NumLitKind:
		if r < '0' || r > '9' {
			return c
		}
		acc := new(big.Int)
		if c.acc != nil {
			acc.Mul(c.acc, big.NewInt(10))
		}
		c.acc = acc.Add(acc, big.NewInt(int64(r-'0')))
		return c
	}
	violation("Input", c.kind)
	return c
}

// ---------------------------------------------------------------------------

func (c Cursor) withInner(inner Cursor) Cursor {
	c.inner = &inner
	return c
}

// String returns the program in textual notation with the focus shown as ‸.
func (c Cursor) String() string {
	var b strings.Builder
	c.write(&b)
	return b.String()
}

func (c Cursor) write(b *strings.Builder) {
	parts := make([]string, 0, 3)
	if len(c.head) > 0 {
		parts = append(parts, c.head.String())
	}
	switch c.kind {
	case EdgeKind:
		parts = append(parts, "‸")
	case QuoteKind:
		var inner strings.Builder
		c.inner.write(&inner)
		parts = append(parts, "{ "+inner.String()+" }")
	case IdentKind:
		parts = append(parts, string(c.buf[:c.caret])+"‸"+string(c.buf[c.caret:]))
	case StrLitKind:
		parts = append(parts, `"`+string(c.buf[:c.caret])+"‸"+string(c.buf[c.caret:])+`"`)
	case NumLitKind:
		if c.acc != nil {
			parts = append(parts, c.acc.String()+"‸")
		} else {
			parts = append(parts, "#‸")
		}
	}
	if len(c.tail) > 0 {
		parts = append(parts, c.tail.String())
	}
	b.WriteString(strings.Join(parts, " "))
}

// concat returns a fresh program holding all fragments in order.
func concat(fragments ...syntax.Program) syntax.Program {
	n := 0
	for _, f := range fragments {
		n += len(f)
	}
	if n == 0 {
		return nil
	}
	p := make(syntax.Program, 0, n)
	for _, f := range fragments {
		p = append(p, f...)
	}
	return p
}
