package syntax

import (
	"fmt"
	"math/big"
	"strings"
)

// Expr is an expression of a program. Concrete types are Ident, StrLit,
// NumLit and Quote.
type Expr interface {
	fmt.Stringer
	kind() int
}

// Program is an ordered sequence of expressions. Order is execution order.
type Program []Expr

// Ident is an identifier, naming a primitive.
type Ident string

// StrLit is a string literal.
type StrLit string

// NumLit is an integer literal of arbitrary precision. The integer must not be
// modified after construction.
type NumLit struct {
	N *big.Int
}

// Quote is an unevaluated sub-program.
type Quote struct {
	Body Program
}

// Kind order for the total order over expressions.
const (
	identKind int = iota
	strLitKind
	numLitKind
	quoteKind
)

func (Ident) kind() int  { return identKind }
func (StrLit) kind() int { return strLitKind }
func (NumLit) kind() int { return numLitKind }
func (Quote) kind() int  { return quoteKind }

// Num creates a number literal from an int64.
func Num(n int64) NumLit {
	return NumLit{N: big.NewInt(n)}
}

// ParseNum creates a number literal from a string of decimal digits.
func ParseNum(s string) (NumLit, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return NumLit{}, fmt.Errorf("not a decimal number: %q", s)
	}
	return NumLit{N: n}, nil
}

// Int64 returns the literal as an int64, if it fits.
func (n NumLit) Int64() (int64, bool) {
	if n.N == nil {
		return 0, true
	}
	if !n.N.IsInt64() {
		return 0, false
	}
	return n.N.Int64(), true
}

func (id Ident) String() string {
	if id == "" {
		return "␣"
	}
	return string(id)
}

func (s StrLit) String() string {
	return `"` + string(s) + `"`
}

func (n NumLit) String() string {
	if n.N == nil {
		return "0"
	}
	return n.N.String()
}

func (q Quote) String() string {
	if len(q.Body) == 0 {
		return "{}"
	}
	return "{ " + q.Body.String() + " }"
}

// String returns the program in textual notation, expressions separated by
// a single space.
func (p Program) String() string {
	var b strings.Builder
	for i, expr := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(expr.String())
	}
	return b.String()
}

// Clone returns a shallow copy of a program. Expressions are immutable and
// therefore shared.
func (p Program) Clone() Program {
	if p == nil {
		return nil
	}
	c := make(Program, len(p))
	copy(c, p)
	return c
}

// --- Ordering --------------------------------------------------------------

// Compare is a total order over expressions: identifiers < string literals
// < number literals < quotes, then by content.
func Compare(a, b Expr) int {
	if a.kind() != b.kind() {
		return a.kind() - b.kind()
	}
	switch x := a.(type) {
	case Ident:
		return strings.Compare(string(x), string(b.(Ident)))
	case StrLit:
		return strings.Compare(string(x), string(b.(StrLit)))
	case NumLit:
		y := b.(NumLit)
		return bigOrZero(x.N).Cmp(bigOrZero(y.N))
	case Quote:
		return ComparePrograms(x.Body, b.(Quote).Body)
	}
	panic(fmt.Sprintf("unknown expression type %T", a))
}

// ComparePrograms orders programs lexicographically.
func ComparePrograms(a, b Program) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// Equal is true if two programs are structurally identical.
func (p Program) Equal(other Program) bool {
	return ComparePrograms(p, other) == 0
}

var zero = big.NewInt(0)

func bigOrZero(n *big.Int) *big.Int {
	if n == nil {
		return zero
	}
	return n
}
