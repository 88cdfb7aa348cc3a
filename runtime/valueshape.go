package runtime

import (
	"strings"

	"github.com/samber/lo"
)

// ShapeKind classifies value shapes.
type ShapeKind int8

// Kinds of value shapes.
const (
	AnyShape ShapeKind = iota
	PoisonShape
	CharShape
	NumShape
	StrShape   // non-empty list of characters
	ArrayShape // homogeneous list
	TupleShape // short list of mixed shapes
	SetShape
	QuoteShape
)

// maxTuple is the maximum length of a mixed list to be described element by
// element.
const maxTuple = 8

// ValueShape is a structural type descriptor of a value. It is computed for
// display only.
type ValueShape struct {
	Kind  ShapeKind
	Elems []ValueShape // element shape for arrays and sets, all elements for tuples
}

// ShapeOf computes the shape of a value.
func ShapeOf(v Value) ValueShape {
	switch v.kind {
	case PoisonValue:
		return ValueShape{Kind: PoisonShape}
	case CharValue:
		return ValueShape{Kind: CharShape}
	case NumberValue:
		return ValueShape{Kind: NumShape}
	case QuoteValue:
		return ValueShape{Kind: QuoteShape}
	case SetValue:
		keys := v.ptr.set.Keys()
		if len(keys) == 0 {
			return ValueShape{Kind: SetShape}
		}
		return ValueShape{Kind: SetShape, Elems: []ValueShape{unionOf(lo.Map(keys, shapeOfElem))}}
	}
	if v.IsString() {
		return ValueShape{Kind: StrShape}
	}
	list := v.ptr.list
	if len(list) == 0 {
		return ValueShape{Kind: ArrayShape}
	}
	elems := lo.Map(list, shapeOfElem)
	if u := unionOf(elems); u.Kind != AnyShape || len(list) > maxTuple {
		return ValueShape{Kind: ArrayShape, Elems: []ValueShape{u}}
	}
	return ValueShape{Kind: TupleShape, Elems: elems}
}

func shapeOfElem(v Value, _ int) ValueShape {
	return ShapeOf(v)
}

// Union is the least shape describing both s and t: the shape itself if both
// are equal, any otherwise.
func (s ValueShape) Union(t ValueShape) ValueShape {
	if s.Equal(t) {
		return s
	}
	return ValueShape{Kind: AnyShape}
}

func unionOf(shapes []ValueShape) ValueShape {
	return lo.Reduce(shapes[1:], func(u ValueShape, s ValueShape, _ int) ValueShape {
		return u.Union(s)
	}, shapes[0])
}

// Equal compares two shapes structurally.
func (s ValueShape) Equal(t ValueShape) bool {
	if s.Kind != t.Kind || len(s.Elems) != len(t.Elems) {
		return false
	}
	for i := range s.Elems {
		if !s.Elems[i].Equal(t.Elems[i]) {
			return false
		}
	}
	return true
}

// String renders a shape as `num`, `str`, `[num]`, `(num str)`, `{char}` etc.
func (s ValueShape) String() string {
	switch s.Kind {
	case PoisonShape:
		return "poison"
	case CharShape:
		return "char"
	case NumShape:
		return "num"
	case StrShape:
		return "str"
	case QuoteShape:
		return "quote"
	case ArrayShape:
		if len(s.Elems) == 0 {
			return "[]"
		}
		return "[" + s.Elems[0].String() + "]"
	case TupleShape:
		return "(" + strings.Join(lo.Map(s.Elems, func(e ValueShape, _ int) string {
			return e.String()
		}), " ") + ")"
	case SetShape:
		if len(s.Elems) == 0 {
			return "{}"
		}
		return "{" + s.Elems[0].String() + "}"
	}
	return "any"
}
