package runtime

import (
	"testing"

	"github.com/npillmayer/tacit/cursor"
	"github.com/npillmayer/tacit/syntax"
	"golang.org/x/exp/slices"
)

func TestValueOrder(t *testing.T) {
	ordered := []Value{
		Poison(),
		Char('a'),
		Char('b'),
		Num(-3),
		Num(7),
		List(nil),
		List([]Value{Num(1)}),
		List([]Value{Num(1), Num(0)}),
		List([]Value{Num(2)}),
		SetOf([]Value{Num(1)}),
		SetOf([]Value{Num(1), Num(1)}),
		Quote(cursor.Initial(syntax.MustParse("inc"))),
	}
	for i := range ordered {
		for j := range ordered {
			c := Compare(ordered[i], ordered[j])
			switch {
			case i < j && c >= 0, i > j && c <= 0, i == j && c != 0:
				t.Errorf("Compare(%s, %s) = %d", ordered[i], ordered[j], c)
			}
		}
	}
	shuffled := []Value{ordered[5], ordered[11], ordered[0], ordered[8], ordered[3]}
	slices.SortFunc(shuffled, Compare)
	if !Equal(shuffled[0], Poison()) || !Equal(shuffled[4], ordered[11]) {
		t.Errorf("unexpected order %v", shuffled)
	}
}

func TestStringsAreCharLists(t *testing.T) {
	s := Str("ab")
	if !Equal(s, List([]Value{Char('a'), Char('b')})) {
		t.Errorf("expected %s to be a list of chars", s)
	}
	if r, ok := Str("x").AsChar(); !ok || r != 'x' {
		t.Errorf("expected one-char string to be usable as char")
	}
	if _, ok := s.AsChar(); ok {
		t.Errorf("expected %s not to be a char", s)
	}
	if text, ok := Str("").AsString(); !ok || text != "" {
		t.Errorf("expected empty list to be the empty string")
	}
	if Str("").IsString() {
		t.Errorf("expected empty list not to display as string")
	}
}

func TestValueString(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		text string
	}{
		{Poison(), "☠"},
		{Char('a'), "'a'"},
		{Num(-12), "-12"},
		{Str("a\"b"), `"a\"b"`},
		{List(nil), "[]"},
		{List([]Value{Num(1), Str("ab"), Poison()}), `[1 "ab" ☠]`},
		{SetOf([]Value{Num(2), Num(1), Num(2)}), "{1 2:2}"},
		{Quote(cursor.Initial(syntax.MustParse(`1 "x" { dup }`))), `{ 1 "x" { dup } }`},
		{Bool(true), "1"},
	} {
		if s := tc.v.String(); s != tc.text {
			t.Errorf("expected %s, have %s", tc.text, s)
		}
	}
}

func TestValueShapes(t *testing.T) {
	pairs := List([]Value{
		List([]Value{Num(0), Char('a')}),
		List([]Value{Num(1), Char('b')}),
	})
	long := make([]Value, maxTuple+1)
	for i := range long {
		long[i] = Num(int64(i))
	}
	long[0] = Str("x")
	for _, tc := range []struct {
		v     Value
		shape string
	}{
		{Poison(), "poison"},
		{Num(1), "num"},
		{Char('c'), "char"},
		{Str("abc"), "str"},
		{List(nil), "[]"},
		{List([]Value{Str("a"), Str("bc")}), "[str]"},
		{pairs, "[(num char)]"},
		{List(long), "[any]"},
		{SetOf(nil), "{}"},
		{SetOf([]Value{Num(1), Char('x')}), "{any}"},
		{Quote(cursor.Initial(nil)), "quote"},
	} {
		if s := ShapeOf(tc.v).String(); s != tc.shape {
			t.Errorf("shape of %s: expected %s, have %s", tc.v, tc.shape, s)
		}
	}
}
