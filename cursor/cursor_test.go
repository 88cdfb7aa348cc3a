package cursor

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tacit/syntax"
)

func TestMoveRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	p := syntax.MustParse(`1 "two" { 3 } four`)
	c := Initial(p).MoveRight().MoveRight()
	if len(c.HeadProgram()) != 2 || len(c.TailProgram()) != 2 {
		t.Fatalf("expected split 2|2, have %s", c)
	}
	for _, r := range []Cursor{c.MoveRight().MoveLeft(), c.MoveLeft().MoveRight()} {
		if !r.HeadProgram().Equal(c.HeadProgram()) || !r.TailProgram().Equal(c.TailProgram()) {
			t.Errorf("round trip changed cursor %s into %s", c, r)
		}
	}
}

func TestMoveAtBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	p := syntax.MustParse("1 2")
	c := Initial(p)
	if l := c.MoveLeft(); l.Shape() != c.Shape() {
		t.Errorf("moving left at start should be a no-op, have %s", l)
	}
	end := c.MoveRight().MoveRight()
	if r := end.MoveRight(); !r.Shape().Equal(end.Shape()) {
		t.Errorf("moving right at end should be a no-op, have %s", r)
	}
	if v := end.MoveVeryLeft(); !v.Shape().Equal(c.Shape()) || !v.Program().Equal(p) {
		t.Errorf("expected cursor at start, have %s", v)
	}
}

func TestCursorsDoNotShareMutations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	p := syntax.MustParse("1 2 3")
	c := Initial(p).MoveRight().MoveRight().MoveLeft() // head has spare capacity
	a := c.Insert(EmptyIdent()).Input('a').EscapeToNormal()
	b := c.Insert(EmptyIdent()).Input('b').EscapeToNormal()
	if a.Program().String() != "1 a 2 3" {
		t.Errorf("expected '1 a 2 3', have %q", a.Program())
	}
	if b.Program().String() != "1 b 2 3" {
		t.Errorf("expected '1 b 2 3', have %q", b.Program())
	}
	if c.Program().String() != "1 2 3" {
		t.Errorf("original cursor changed to %q", c.Program())
	}
}

func TestShapeIgnoresContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	c1 := Initial(syntax.MustParse("1 2 3")).MoveRight().MoveRight()
	c2 := Initial(syntax.MustParse(`"a" { x y } dup`)).MoveRight().MoveRight()
	if !c1.Shape().Equal(c2.Shape()) {
		t.Errorf("expected equal shapes, have %s and %s", c1.Shape(), c2.Shape())
	}
	if c1.Shape().Key() != c2.Shape().Key() {
		t.Errorf("equal shapes must have equal keys")
	}
	if c1.Program().Equal(c2.Program()) {
		t.Errorf("programs should differ")
	}
	c3 := c2.MoveRight()
	if c3.Shape().Equal(c2.Shape()) || c3.Shape().Key() == c2.Shape().Key() {
		t.Errorf("different positions must have different shapes")
	}
	if c2.Shape().Compare(c3.Shape()) >= 0 {
		t.Errorf("expected %s < %s", c2.Shape(), c3.Shape())
	}
}

func TestShapeThroughQuotes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	c := Initial(syntax.MustParse("{ a b } c")).MoveRight().MoveUp().MoveRight()
	s := c.Shape()
	if s.Kind != QuoteKind || s.Inner == nil {
		t.Fatalf("expected quote shape, have %s", s)
	}
	if s.Head != 0 || s.Tail != 1 || s.Inner.Head != 1 || s.Inner.Tail != 1 {
		t.Errorf("unexpected shape %s", s)
	}
	if s.Depth() != 1 {
		t.Errorf("expected depth 1, have %d", s.Depth())
	}
	if c.Mode() != Normal {
		t.Errorf("expected Normal mode, have %s", c.Mode())
	}
	id := c.Insert(EmptyIdent()).Input('x')
	if id.Shape().Inner.Kind != IdentKind || id.Shape().Inner.Buffer != 1 {
		t.Errorf("unexpected shape %s", id.Shape())
	}
}

func TestMoveUpAndOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	p := syntax.MustParse("1 { 2 { 3 } } 4")
	c := Initial(p).MoveRight()
	if u := c.MoveUp(); u.Kind() != EdgeKind {
		t.Errorf("moving up behind a number should be a no-op, have %s", u)
	}
	c = c.MoveRight().MoveUp()
	if c.Kind() != QuoteKind {
		t.Fatalf("expected to be inside a quote, have %s", c)
	}
	if !c.LocalProgram().Equal(syntax.MustParse("2 { 3 }")) {
		t.Errorf("unexpected local program %s", c.LocalProgram())
	}
	if inner, _ := c.Inner(); len(inner.HeadProgram()) != 0 {
		t.Errorf("expected to land at start of quote, have %s", c)
	}
	c = c.MoveRight().MoveRight().MoveUp() // into inner quote
	if c.Shape().Depth() != 2 {
		t.Fatalf("expected depth 2, have %s", c.Shape())
	}
	if e, ok := c.NextExpr(); !ok || e.String() != "3" {
		t.Errorf("expected next expression 3, have %v", e)
	}
	if !c.Program().Equal(p) {
		t.Errorf("program changed to %s", c.Program())
	}
	c = c.MoveOut()
	if c.Shape().Depth() != 1 {
		t.Fatalf("expected depth 1 after moving out, have %s", c.Shape())
	}
	c = c.MoveOut()
	if c.Kind() != EdgeKind || len(c.HeadProgram()) != 2 || !c.Program().Equal(p) {
		t.Errorf("expected to be behind the outer quote, have %s", c)
	}
	if o := c.MoveOut(); o.Shape() != c.Shape() {
		t.Errorf("moving out on an edge should be a no-op")
	}
}

func TestInsertQuoteAndEdit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	c := Empty().Insert(EmptyQuote())
	c = c.Insert(EmptyIdent()).Input('i').Input('n').Input('c').EscapeToNormal()
	c = c.MoveOut()
	c = c.Insert(EmptyIdent())
	for _, r := range "map" {
		c = c.Input(r)
	}
	if c.Mode() != IdentMode {
		t.Errorf("expected Ident mode, have %s", c.Mode())
	}
	c = c.EscapeToNormal()
	if c.Program().String() != "{ inc } map" {
		t.Errorf("expected '{ inc } map', have %q", c.Program())
	}
	c = c.DeleteBefore()
	if c.Program().String() != "{ inc }" {
		t.Errorf("expected '{ inc }', have %q", c.Program())
	}
}

func TestInsertSplicesFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	c := At(syntax.MustParse("1"), syntax.MustParse("2"))
	edge := c.Insert(At(syntax.MustParse("a b"), syntax.MustParse("c")))
	if edge.Kind() != EdgeKind {
		t.Errorf("expected an edge focus, have %s", edge.Kind())
	}
	if h := edge.HeadProgram().String(); h != "1 a b" {
		t.Errorf("expected head '1 a b', have %q", h)
	}
	if tl := edge.TailProgram().String(); tl != "c 2" {
		t.Errorf("expected tail 'c 2', have %q", tl)
	}
	fragment := EmptyQuote().Insert(At(syntax.MustParse("x"), syntax.MustParse("y")))
	q := c.Insert(fragment)
	if q.Kind() != QuoteKind {
		t.Fatalf("expected a quote focus, have %s", q.Kind())
	}
	if h, tl := q.HeadProgram().String(), q.TailProgram().String(); h != "1" || tl != "2" {
		t.Errorf("expected quote between '1' and '2', have %q and %q", h, tl)
	}
	inner, _ := q.Inner()
	if h, tl := inner.HeadProgram().String(), inner.TailProgram().String(); h != "x" || tl != "y" {
		t.Errorf("expected focus between 'x' and 'y' inside the quote, have %q and %q", h, tl)
	}
	if p := q.Program().String(); p != "1 { x y } 2" {
		t.Errorf("expected program '1 { x y } 2', have %q", p)
	}
}

func TestStringLiteralCaret(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	c := Initial(syntax.MustParse("x")).Insert(EmptyStrLit())
	c = c.Input('a').Input('c').MoveLeft().Input('b')
	if buf, caret := c.Buffer(); buf != "abc" || caret != 2 {
		t.Errorf("expected buffer 'abc' with caret 2, have %q/%d", buf, caret)
	}
	c = c.MoveLeft().MoveLeft().MoveLeft() // clamped
	if _, caret := c.Buffer(); caret != 0 {
		t.Errorf("expected caret 0, have %d", caret)
	}
	c = c.MoveRight().MoveRight().MoveRight().MoveRight()
	if _, caret := c.Buffer(); caret != 3 {
		t.Errorf("expected caret 3, have %d", caret)
	}
	c = c.EscapeToNormal()
	if c.Program().String() != `"abc" x` {
		t.Errorf(`expected '"abc" x', have %q`, c.Program())
	}
}

func TestNumLit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	c := Empty().Insert(EmptyNumLit())
	if c.Mode() != NumLitMode {
		t.Errorf("expected NumLit mode, have %s", c.Mode())
	}
	if e := c.EscapeToNormal(); len(e.Program()) != 0 {
		t.Errorf("empty number literal should vanish, have %s", e.Program())
	}
	c = c.Input('4').Input('x').Input('2').MoveLeft()
	if n, ok := c.Accumulator(); !ok || n.Int64() != 42 {
		t.Errorf("expected accumulator 42, have %v", n)
	}
	c = c.EscapeToNormal()
	if c.Program().String() != "42" {
		t.Errorf("expected '42', have %q", c.Program())
	}
}

func TestContractViolations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.cursor")
	defer teardown()
	//
	cases := []struct {
		name string
		op   func()
	}{
		{"Program on Ident", func() { EmptyIdent().Program() }},
		{"Input on Edge", func() { Empty().Input('x') }},
		{"DeleteBefore on StrLit", func() { EmptyStrLit().DeleteBefore() }},
		{"Insert into NumLit", func() { EmptyNumLit().Insert(Empty()) }},
		{"Input on Edge inside Quote", func() { EmptyQuote().Input('x') }},
	}
	for _, tc := range cases {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				var cerr *ContractError
				if !ok || !errors.As(err, &cerr) {
					t.Errorf("%s: expected contract violation, have %v", tc.name, r)
				}
			}()
			tc.op()
		}()
	}
}
