package runtime

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tacit/cursor"
	"github.com/npillmayer/tacit/polyset"
	"github.com/npillmayer/tacit/syntax"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// ValueKind is the kind of a runtime value.
type ValueKind int8

// Kinds of values, in the order values of different kinds compare.
const (
	PoisonValue ValueKind = iota
	CharValue
	NumberValue
	ListValue
	SetValue
	QuoteValue
)

func (k ValueKind) String() string {
	switch k {
	case PoisonValue:
		return "poison"
	case CharValue:
		return "char"
	case NumberValue:
		return "number"
	case ListValue:
		return "list"
	case SetValue:
		return "set"
	case QuoteValue:
		return "quote"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is an immutable runtime datum. Numbers and characters are held inline,
// composite data is shared between copies of a value.
//
// The zero value is Poison.
type Value struct {
	kind ValueKind
	n    int64      // number, or rune for chars
	ptr  *composite // lists, sets and quotes
}

type composite struct {
	list  []Value
	set   polyset.Polyset[Value]
	quote cursor.Cursor
}

// Poison returns the marker value for a failed computation step.
func Poison() Value {
	return Value{}
}

// Num creates a number value.
func Num(n int64) Value {
	return Value{kind: NumberValue, n: n}
}

// Char creates a character value.
func Char(r rune) Value {
	return Value{kind: CharValue, n: int64(r)}
}

// Bool creates a number value of 1 (true) or 0 (false).
func Bool(b bool) Value {
	if b {
		return Num(1)
	}
	return Num(0)
}

// Str creates a list of characters.
func Str(s string) Value {
	rs := []rune(s)
	list := make([]Value, len(rs))
	for i, r := range rs {
		list[i] = Char(r)
	}
	return List(list)
}

// List creates a list value. The list takes ownership of xs; clients must not
// modify it afterwards.
func List(xs []Value) Value {
	return Value{kind: ListValue, ptr: &composite{list: slices.Clip(xs)}}
}

// Set creates a multiset value.
func Set(s polyset.Polyset[Value]) Value {
	return Value{kind: SetValue, ptr: &composite{set: s}}
}

// SetOf creates a multiset from a list of values.
func SetOf(xs []Value) Value {
	return Set(polyset.FromList(Compare, xs))
}

// Quote creates a value holding a captured quote, i.e. a cursor positioned at
// the start of the quote's body.
func Quote(c cursor.Cursor) Value {
	return Value{kind: QuoteValue, ptr: &composite{quote: c}}
}

// Kind returns the kind of a value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsPoison is true for Poison.
func (v Value) IsPoison() bool {
	return v.kind == PoisonValue
}

// --- Accessors -------------------------------------------------------------

// AsNumber returns the number held by v.
func (v Value) AsNumber() (int64, bool) {
	if v.kind != NumberValue {
		return 0, false
	}
	return v.n, true
}

// AsChar returns the character held by v. A string of length 1 is accepted
// as a character, too.
func (v Value) AsChar() (rune, bool) {
	switch v.kind {
	case CharValue:
		return rune(v.n), true
	case ListValue:
		if len(v.ptr.list) == 1 && v.ptr.list[0].kind == CharValue {
			return rune(v.ptr.list[0].n), true
		}
	}
	return 0, false
}

// AsBool interprets the numbers 0 and 1 as false and true.
func (v Value) AsBool() (bool, bool) {
	n, ok := v.AsNumber()
	if !ok || (n != 0 && n != 1) {
		return false, false
	}
	return n == 1, true
}

// AsList returns the elements of a list. Clients must not modify the result.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != ListValue {
		return nil, false
	}
	return v.ptr.list, true
}

// AsString returns the text of a list of characters.
func (v Value) AsString() (string, bool) {
	if v.kind != ListValue {
		return "", false
	}
	var b strings.Builder
	for _, c := range v.ptr.list {
		if c.kind != CharValue {
			return "", false
		}
		b.WriteRune(rune(c.n))
	}
	return b.String(), true
}

// IsString is true for non-empty lists of characters.
func (v Value) IsString() bool {
	if v.kind != ListValue || len(v.ptr.list) == 0 {
		return false
	}
	return lo.EveryBy(v.ptr.list, func(c Value) bool { return c.kind == CharValue })
}

// AsSet returns the multiset held by v. Lists are converted to multisets.
func (v Value) AsSet() (polyset.Polyset[Value], bool) {
	switch v.kind {
	case SetValue:
		return v.ptr.set, true
	case ListValue:
		return polyset.FromList(Compare, v.ptr.list), true
	}
	return polyset.Polyset[Value]{}, false
}

// AsQuote returns the cursor of a captured quote.
func (v Value) AsQuote() (cursor.Cursor, bool) {
	if v.kind != QuoteValue {
		return cursor.Cursor{}, false
	}
	return v.ptr.quote, true
}

// --- Ordering --------------------------------------------------------------

// Compare is a total order over values. Values of different kinds are ordered
// by kind, lists lexicographically, sets by their entries and quotes by their
// position and program.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return int(a.kind) - int(b.kind)
	}
	switch a.kind {
	case CharValue, NumberValue:
		switch {
		case a.n < b.n:
			return -1
		case a.n > b.n:
			return 1
		}
		return 0
	case ListValue:
		return slices.CompareFunc(a.ptr.list, b.ptr.list, Compare)
	case SetValue:
		return a.ptr.set.Compare(b.ptr.set)
	case QuoteValue:
		qa, qb := a.ptr.quote, b.ptr.quote
		if c := qa.Shape().Compare(qb.Shape()); c != 0 {
			return c
		}
		return syntax.ComparePrograms(qa.Program(), qb.Program())
	}
	return 0
}

// Equal is structural equality of values.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// --- Text form -------------------------------------------------------------

// String returns a plain text form of a value, e.g. `[1 "ab" {2}]`.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.kind {
	case PoisonValue:
		b.WriteString("☠")
	case CharValue:
		fmt.Fprintf(b, "'%c'", rune(v.n))
	case NumberValue:
		fmt.Fprintf(b, "%d", v.n)
	case ListValue:
		if s, ok := v.AsString(); ok && s != "" {
			fmt.Fprintf(b, "%q", s)
			return
		}
		b.WriteByte('[')
		for i, x := range v.ptr.list {
			if i > 0 {
				b.WriteByte(' ')
			}
			x.write(b)
		}
		b.WriteByte(']')
	case SetValue:
		b.WriteByte('{')
		for i, e := range v.ptr.set.Entries() {
			if i > 0 {
				b.WriteByte(' ')
			}
			e.Elem.write(b)
			if e.N != 1 {
				fmt.Fprintf(b, ":%d", e.N)
			}
		}
		b.WriteByte('}')
	case QuoteValue:
		b.WriteString(syntax.Quote{Body: v.ptr.quote.LocalProgram()}.String())
	}
}
