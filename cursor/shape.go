package cursor

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// Shape is the structural fingerprint of a cursor: every head, tail and
// buffer is replaced by its length, recursively through quote foci. Two
// cursors of equal shape may hold entirely different tokens.
//
// Shapes are comparable by Equal and Compare and may be used as map keys
// through Key.
type Shape struct {
	Kind   Kind
	Head   int
	Buffer int // length of the literal buffer for Ident and StrLit
	Tail   int
	Inner  *Shape // for Quote
}

// Shape computes the shape of a cursor.
func (c Cursor) Shape() Shape {
	s := Shape{Kind: c.kind, Head: len(c.head), Tail: len(c.tail)}
	switch c.kind {
	case QuoteKind:
		inner := c.inner.Shape()
		s.Inner = &inner
	case IdentKind, StrLitKind:
		s.Buffer = len(c.buf)
	}
	return s
}

// Level is one nesting level of a shape, without the link to the next level.
type Level struct {
	Kind   int
	Head   int
	Buffer int
	Tail   int
}

// Levels flattens a shape into its nesting levels, outermost first.
func (s Shape) Levels() []Level {
	var levels []Level
	for sh := &s; sh != nil; sh = sh.Inner {
		levels = append(levels, Level{
			Kind:   int(sh.Kind),
			Head:   sh.Head,
			Buffer: sh.Buffer,
			Tail:   sh.Tail,
		})
	}
	return levels
}

// Depth is the number of quote levels entered.
func (s Shape) Depth() int {
	return len(s.Levels()) - 1
}

// Equal is true if both shapes describe the same structural position.
func (s Shape) Equal(other Shape) bool {
	return s.Compare(other) == 0
}

// Compare orders shapes level by level, outermost first. A shape which is a
// prefix of another sorts first.
func (s Shape) Compare(other Shape) int {
	a, b := s.Levels(), other.Levels()
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareLevel(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a), len(b))
}

func compareLevel(a, b Level) int {
	if c := cmpInt(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmpInt(a.Head, b.Head); c != 0 {
		return c
	}
	if c := cmpInt(a.Buffer, b.Buffer); c != 0 {
		return c
	}
	return cmpInt(a.Tail, b.Tail)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Key returns a hash of the shape, suitable as a map key. Equal shapes have
// equal keys.
func (s Shape) Key() string {
	h, err := structhash.Hash(s.Levels(), 1)
	if err != nil {
		tracer().Errorf("cannot hash shape %s: %v", s, err)
		return s.String()
	}
	return h
}

func (s Shape) String() string {
	var b strings.Builder
	for i, l := range s.Levels() {
		if i > 0 {
			b.WriteString(" > ")
		}
		switch Kind(l.Kind) {
		case IdentKind, StrLitKind:
			fmt.Fprintf(&b, "%s(%d,%d,%d)", Kind(l.Kind), l.Head, l.Buffer, l.Tail)
		default:
			fmt.Fprintf(&b, "%s(%d,%d)", Kind(l.Kind), l.Head, l.Tail)
		}
	}
	return b.String()
}
