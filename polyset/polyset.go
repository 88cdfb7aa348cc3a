/*
Package polyset implements a small multiset ("polyset"), represented as a
sorted sequence of (element, multiplicity) pairs.

Elements may be of any type, provided clients supply a total order for them.
Polysets are values: operations never modify their receiver or arguments.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package polyset

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Comparator is a total order over elements of type T. It returns a negative
// number if a < b, zero if a == b and a positive number otherwise.
type Comparator[T any] func(a, b T) int

// Entry is an element together with its multiplicity.
type Entry[T any] struct {
	Elem T
	N    int64
}

// Polyset is a multiset. Entries are strictly increasing by element order,
// and no entry has multiplicity zero unless produced by combination.
type Polyset[T any] struct {
	entries []Entry[T]
	cmp     Comparator[T]
}

// New creates an empty polyset.
func New[T any](cmp Comparator[T]) Polyset[T] {
	return Polyset[T]{cmp: cmp}
}

// FromList creates a polyset from a list of elements, counting each
// occurrence once.
func FromList[T any](cmp Comparator[T], xs []T) Polyset[T] {
	entries := make([]Entry[T], len(xs))
	for i, x := range xs {
		entries[i] = Entry[T]{Elem: x, N: 1}
	}
	return FromCounts(cmp, entries)
}

// FromCounts creates a polyset from (element, multiplicity) pairs, which
// need not be ordered. Multiplicities of equal elements are summed.
func FromCounts[T any](cmp Comparator[T], pairs []Entry[T]) Polyset[T] {
	m := treemap.NewWith(comparator(cmp))
	for _, p := range pairs {
		n := p.N
		if prev, found := m.Get(p.Elem); found {
			n += prev.(Entry[T]).N
			m.Put(p.Elem, Entry[T]{Elem: prev.(Entry[T]).Elem, N: n})
			continue
		}
		m.Put(p.Elem, p)
	}
	entries := make([]Entry[T], 0, m.Size())
	it := m.Iterator()
	for it.Next() {
		entries = append(entries, it.Value().(Entry[T]))
	}
	return Polyset[T]{entries: entries, cmp: cmp}
}

func comparator[T any](cmp Comparator[T]) utils.Comparator {
	return func(a, b interface{}) int {
		return cmp(a.(T), b.(T))
	}
}

// Len returns the number of distinct elements.
func (s Polyset[T]) Len() int {
	return len(s.entries)
}

// Entries returns the (element, multiplicity) pairs in element order.
// Clients must not modify the returned slice.
func (s Polyset[T]) Entries() []Entry[T] {
	return s.entries
}

// Keys returns the distinct elements in sorted order.
func (s Polyset[T]) Keys() []T {
	keys := make([]T, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Elem
	}
	return keys
}

// Count returns the multiplicity of x, or 0 if x is not an element.
func (s Polyset[T]) Count(x T) int64 {
	lo, hi := 0, len(s.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		c := s.cmp(s.entries[mid].Elem, x)
		if c == 0 {
			return s.entries[mid].N
		} else if c < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return 0
}

// Expand lists every element as often as its multiplicity says.
// Entries with non-positive multiplicity do not appear.
func (s Polyset[T]) Expand() []T {
	var xs []T
	for _, e := range s.entries {
		for i := int64(0); i < e.N; i++ {
			xs = append(xs, e.Elem)
		}
	}
	return xs
}

// Union is multiset addition: multiplicities of shared elements are summed.
func (s Polyset[T]) Union(that Polyset[T]) Polyset[T] {
	all := make([]Entry[T], 0, len(s.entries)+len(that.entries))
	all = append(all, s.entries...)
	all = append(all, that.entries...)
	return FromCounts(s.ordering(that), all)
}

// Join is multiset intersection with multiplicities multiplied. Elements
// present in only one of the operands do not appear in the result.
func (s Polyset[T]) Join(that Polyset[T]) Polyset[T] {
	cmp := s.ordering(that)
	var entries []Entry[T]
	i, j := 0, 0
	for i < len(s.entries) && j < len(that.entries) {
		x, y := s.entries[i], that.entries[j]
		c := cmp(x.Elem, y.Elem)
		if c == 0 {
			entries = append(entries, Entry[T]{Elem: x.Elem, N: x.N * y.N})
			i++
			j++
		} else if c < 0 {
			i++
		} else {
			j++
		}
	}
	return Polyset[T]{entries: entries, cmp: cmp}
}

// Compare orders polysets lexicographically by entries, elements first.
func (s Polyset[T]) Compare(that Polyset[T]) int {
	cmp := s.ordering(that)
	for i := 0; i < len(s.entries) && i < len(that.entries); i++ {
		if c := cmp(s.entries[i].Elem, that.entries[i].Elem); c != 0 {
			return c
		}
		if n, m := s.entries[i].N, that.entries[i].N; n != m {
			if n < m {
				return -1
			}
			return 1
		}
	}
	return len(s.entries) - len(that.entries)
}

// a zero polyset carries no comparator; take the other one's
func (s Polyset[T]) ordering(that Polyset[T]) Comparator[T] {
	if s.cmp != nil {
		return s.cmp
	}
	return that.cmp
}
