package runtime

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// maxRange limits the length of generated ranges.
const maxRange = 1 << 20

var listPrimitives = []primDef{
	{"split", "list sep -- [list]", primSplit},
	{"splitat", "list i -- suffix prefix", primSplitAt},
	{"take", "list n -- list'", primTake},
	{"irange", "lo hi -- [lo…hi]", primIRange},
	{"crange", "lo hi -- [lo…hi]", primCRange},
	{"iota", "n -- [0…n-1]", primIota},
	{"indexed", "list -- [(i x)]", primIndexed},
	{"append", "a b -- a++b", primAppend},
	{"find", "x list -- i", primFind},
	{"chunks", "list n -- [list]", primChunks},
	{"frames", "list n -- [list]", primFrames},
	{"len", "list -- n", primLen},
	{"sum", "[n] -- n", primSum},
	{"max", "[n] -- n", primMax},
	{"rsort", "list -- list'", primReverseSort},
	{"each", "list -- xn … x1", primEach},
}

// matches compares a list element to a value searched for. A string of
// length 1 matches the character it holds.
func matches(x, v Value) bool {
	if x.kind == CharValue {
		if r, ok := v.AsChar(); ok {
			return rune(x.n) == r
		}
	}
	return Equal(x, v)
}

func sublists(lists [][]Value) Value {
	return List(lo.Map(lists, func(l []Value, _ int) Value { return List(slices.Clone(l)) }))
}

func primSplit(m *Machine) error {
	sep, err := m.Pop()
	if err != nil {
		return err
	}
	list, err := m.PopList()
	if err != nil {
		return err
	}
	var pieces [][]Value
	start := 0
	for i, x := range list {
		if matches(x, sep) {
			pieces = append(pieces, list[start:i])
			start = i + 1
		}
	}
	pieces = append(pieces, list[start:])
	m.Push(sublists(pieces))
	return nil
}

// primSplitAt splits a list at an index. Negative indices count from the end.
// The prefix ends on top.
func primSplitAt(m *Machine) error {
	i, err := m.PopNumber()
	if err != nil {
		return err
	}
	list, err := m.PopList()
	if err != nil {
		return err
	}
	if i < 0 {
		i += int64(len(list))
	}
	if i < 0 || i > int64(len(list)) {
		return fmt.Errorf("%w: split index %d for list of length %d", ErrRange, i, len(list))
	}
	m.Push(List(slices.Clone(list[i:])), List(slices.Clone(list[:i])))
	return nil
}

// primTake keeps the first n elements. A negative n keeps all but the last |n|.
func primTake(m *Machine) error {
	n, err := m.PopNumber()
	if err != nil {
		return err
	}
	list, err := m.PopList()
	if err != nil {
		return err
	}
	if n < 0 {
		n = lo.Max([]int64{0, int64(len(list)) + n})
	}
	if n > int64(len(list)) {
		n = int64(len(list))
	}
	m.Push(List(slices.Clone(list[:n])))
	return nil
}

func rangeLen(lower, upper int64) (int, error) {
	if upper < lower {
		return 0, nil
	}
	if upper-lower >= maxRange || upper-lower < 0 {
		return 0, fmt.Errorf("%w: range %d…%d too large", ErrRange, lower, upper)
	}
	return int(upper-lower) + 1, nil
}

func primIRange(m *Machine) error {
	upper, err := m.PopNumber()
	if err != nil {
		return err
	}
	lower, err := m.PopNumber()
	if err != nil {
		return err
	}
	n, err := rangeLen(lower, upper)
	if err != nil {
		return err
	}
	m.Push(List(lo.Map(lo.RangeFrom(lower, n), func(x int64, _ int) Value { return Num(x) })))
	return nil
}

func primCRange(m *Machine) error {
	upper, err := m.PopChar()
	if err != nil {
		return err
	}
	lower, err := m.PopChar()
	if err != nil {
		return err
	}
	n, err := rangeLen(int64(lower), int64(upper))
	if err != nil {
		return err
	}
	m.Push(List(lo.Map(lo.RangeFrom(lower, n), func(r rune, _ int) Value { return Char(r) })))
	return nil
}

func primIota(m *Machine) error {
	n, err := m.PopNumber()
	if err != nil {
		return err
	}
	if n <= 0 {
		m.Push(List(nil))
		return nil
	}
	l, err := rangeLen(0, n-1)
	if err != nil {
		return err
	}
	m.Push(List(lo.Times(l, func(i int) Value { return Num(int64(i)) })))
	return nil
}

func primIndexed(m *Machine) error {
	list, err := m.PopList()
	if err != nil {
		return err
	}
	m.Push(List(lo.Map(list, func(x Value, i int) Value {
		return List([]Value{Num(int64(i)), x})
	})))
	return nil
}

func primAppend(m *Machine) error {
	b, err := m.PopList()
	if err != nil {
		return err
	}
	a, err := m.PopList()
	if err != nil {
		return err
	}
	m.Push(List(lo.Flatten([][]Value{a, b})))
	return nil
}

func primFind(m *Machine) error {
	table, err := m.PopList()
	if err != nil {
		return err
	}
	needle, err := m.Pop()
	if err != nil {
		return err
	}
	i := slices.IndexFunc(table, func(x Value) bool { return matches(x, needle) })
	if i < 0 {
		return fmt.Errorf("%w: %s not found", ErrRange, needle)
	}
	m.Push(Num(int64(i)))
	return nil
}

func popSize(m *Machine) (int, error) {
	n, err := m.PopNumber()
	if err != nil {
		return 0, err
	}
	if n <= 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: size %d", ErrRange, n)
	}
	return int(n), nil
}

func primChunks(m *Machine) error {
	size, err := popSize(m)
	if err != nil {
		return err
	}
	list, err := m.PopList()
	if err != nil {
		return err
	}
	m.Push(sublists(lo.Chunk(list, size)))
	return nil
}

// primFrames produces all windows of a given size, in order.
func primFrames(m *Machine) error {
	size, err := popSize(m)
	if err != nil {
		return err
	}
	list, err := m.PopList()
	if err != nil {
		return err
	}
	if size > len(list) {
		m.Push(List(nil))
		return nil
	}
	m.Push(sublists(lo.Times(len(list)-size+1, func(i int) []Value {
		return list[i : i+size]
	})))
	return nil
}

func primLen(m *Machine) error {
	list, err := m.PopList()
	if err != nil {
		return err
	}
	m.Push(Num(int64(len(list))))
	return nil
}

func numbers(list []Value) ([]int64, error) {
	ns := make([]int64, len(list))
	for i, x := range list {
		n, ok := x.AsNumber()
		if !ok {
			return nil, typeError("number", x)
		}
		ns[i] = n
	}
	return ns, nil
}

func primSum(m *Machine) error {
	list, err := m.PopList()
	if err != nil {
		return err
	}
	ns, err := numbers(list)
	if err != nil {
		return err
	}
	m.Push(Num(lo.Sum(ns)))
	return nil
}

// primMax of an empty list is the smallest number.
func primMax(m *Machine) error {
	list, err := m.PopList()
	if err != nil {
		return err
	}
	ns, err := numbers(list)
	if err != nil {
		return err
	}
	m.Push(Num(lo.Reduce(ns, func(mx, n int64, _ int) int64 {
		return lo.Max([]int64{mx, n})
	}, int64(math.MinInt64))))
	return nil
}

func primReverseSort(m *Machine) error {
	list, err := m.PopList()
	if err != nil {
		return err
	}
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b Value) int { return Compare(b, a) })
	m.Push(List(sorted))
	return nil
}

// primEach pushes the elements of a list such that the first one ends on top.
func primEach(m *Machine) error {
	list, err := m.PopList()
	if err != nil {
		return err
	}
	m.Push(lo.Reverse(slices.Clone(list))...)
	return nil
}
