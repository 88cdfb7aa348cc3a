package shell

import (
	"bytes"
	"strings"
	"testing"

	"atomicgo.dev/keyboard/keys"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tacit/cursor"
	"github.com/npillmayer/tacit/runtime"
	"github.com/npillmayer/tacit/syntax"
)

func testShell() *Shell {
	cfg := DefaultConfig()
	cfg.Effects = runtime.NoEffects{}
	return New(cfg)
}

func typeKeys(sh *Shell, keys string) {
	for _, r := range keys {
		sh.HandleKey(Char(r))
	}
}

func tops(t *testing.T, snapshots []*runtime.VM) []int64 {
	t.Helper()
	var ns []int64
	for _, snap := range snapshots {
		top, _ := snap.Top()
		n, ok := top.AsNumber()
		if !ok {
			t.Fatalf("expected number on top of %s", snap)
		}
		ns = append(ns, n)
	}
	return ns
}

func TestTypeProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.shell")
	defer teardown()
	//
	sh := testShell()
	typeKeys(sh, "#3 #4 i+ ")
	if sh.Mode() != cursor.Normal {
		t.Fatalf("expected normal mode, have %v", sh.Mode())
	}
	if s := sh.Cursor().Program().String(); s != "3 4 +" {
		t.Errorf("expected program 3 4 +, have %s", s)
	}
	snapshots := sh.Snapshots()
	if len(snapshots) != 1 || snapshots[0].Len() != 1 {
		t.Fatalf("expected one snapshot with one value, have %v", snapshots)
	}
	if ns := tops(t, snapshots); ns[0] != 7 {
		t.Errorf("expected 7, have %d", ns[0])
	}
}

func TestTypeQuoteAndString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.shell")
	defer teardown()
	//
	sh := testShell()
	typeKeys(sh, `"a b"{idup }`)
	if s := sh.Cursor().Program().String(); s != `"a b" { dup }` {
		t.Errorf(`expected program "a b" { dup }, have %s`, s)
	}
	sh.HandleKey(Key(KeyBackspace))
	sh.HandleKey(Key(KeyLeft))
	sh.HandleKey(Char('x')) // unbound
	if s := sh.Cursor().String(); s != `‸ "a b"` {
		t.Errorf("unexpected cursor %s", s)
	}
}

func TestNumLitMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.shell")
	defer teardown()
	//
	sh := testShell()
	typeKeys(sh, "#12")
	if sh.Mode() != cursor.NumLitMode {
		t.Fatalf("expected number mode, have %v", sh.Mode())
	}
	if vm, trace := sh.Evaluate(); vm != nil || trace != nil {
		t.Errorf("expected no evaluation while editing a literal")
	}
	if sh.Snapshots() != nil {
		t.Errorf("expected no snapshots while editing a literal")
	}
	typeKeys(sh, "x#")
	sh.HandleKey(Key(KeyEnter))
	if sh.Mode() != cursor.Normal {
		t.Fatalf("expected normal mode, have %v", sh.Mode())
	}
	if s := sh.Cursor().Program().String(); s != "12" {
		t.Errorf("expected program 12, have %s", s)
	}
}

func TestNumLitCommitKeyActs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.shell")
	defer teardown()
	//
	sh := testShell()
	typeKeys(sh, "#3{")
	if sh.Cursor().Kind() != cursor.QuoteKind || sh.Mode() != cursor.Normal {
		t.Fatalf("expected focus inside a new quote, have %s", sh.Cursor())
	}
	if s := sh.Cursor().Program().String(); s != "3 {}" {
		t.Errorf("expected program '3 {}', have %q", s)
	}
	sh = testShell()
	typeKeys(sh, "#3idup ")
	if s := sh.Cursor().Program().String(); s != "3 dup" {
		t.Errorf("expected program '3 dup', have %q", s)
	}
}

func TestPrimitivesOfShell(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.shell")
	defer teardown()
	//
	prims := testShell().Primitives()
	if prims == nil || prims.Resolve("dup") == nil {
		t.Fatalf("expected the standard primitives, have %v", prims)
	}
}

func TestModifiedKeysIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.shell")
	defer teardown()
	//
	sh := testShell()
	sh.HandleKey(KeyEvent{Code: KeyRune, Rune: 'i', Mods: ModCtrl})
	if sh.Mode() != cursor.Normal {
		t.Errorf("expected ctrl-i to be ignored")
	}
}

func TestSnapshotsInsideQuote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.shell")
	defer teardown()
	//
	sh := testShell()
	sh.Load(syntax.MustParse("3 iota { inc } map"))
	sh.HandleKey(Key(KeyLeft))
	sh.HandleKey(Key(KeyUp))
	if ns := tops(t, sh.Snapshots()); len(ns) != 3 || ns[0] != 0 || ns[1] != 1 || ns[2] != 2 {
		t.Errorf("expected tops 0 1 2 before inc, have %v", ns)
	}
	sh.HandleKey(Key(KeyRight))
	if ns := tops(t, sh.Snapshots()); len(ns) != 3 || ns[0] != 1 || ns[1] != 2 || ns[2] != 3 {
		t.Errorf("expected tops 1 2 3 after inc, have %v", ns)
	}
	sh.HandleKey(Key(KeyDown))
	if s := sh.Cursor().String(); s != "3 iota { inc } ‸ map" {
		t.Errorf("unexpected cursor %s", s)
	}
}

func TestSnapshotLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.shell")
	defer teardown()
	//
	sh := New(Config{Limit: 2})
	sh.Load(syntax.MustParse("5 iota { inc } map"))
	sh.HandleKey(Key(KeyLeft))
	sh.HandleKey(Key(KeyUp))
	if n := len(sh.Snapshots()); n != 2 {
		t.Errorf("expected 2 snapshots, have %d", n)
	}
}

func TestLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.shell")
	defer teardown()
	//
	sh := New(Config{Limit: 16, Width: 10})
	sh.Load(syntax.MustParse(`1 "abcdefghijklmn"`))
	var lines []string
	for _, line := range sh.Lines() {
		lines = append(lines, line.Plain())
	}
	expected := []string{"1 abcdefg…", "~~~~~~~~~~", "1   1", "0   abcde…"}
	if strings.Join(lines, "|") != strings.Join(expected, "|") {
		t.Errorf("expected %q, have %q", expected, lines)
	}
	typeKeys(sh, "i")
	if n := len(sh.Lines()); n != 2 {
		t.Errorf("expected no snapshots in ident mode, have %d lines", n)
	}
	var out bytes.Buffer
	if err := sh.Render(&out); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), "\r\n") != 2 {
		t.Errorf("expected 2 lines rendered, have %q", out.String())
	}
}

func TestKeyEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.shell")
	defer teardown()
	//
	for _, tc := range []struct {
		key      keys.Key
		expected []KeyEvent
	}{
		{keys.Key{Code: keys.RuneKey, Runes: []rune{'a'}}, []KeyEvent{Char('a')}},
		{keys.Key{Code: keys.RuneKey, Runes: []rune("dup")}, []KeyEvent{Char('d'), Char('u'), Char('p')}},
		{keys.Key{Code: keys.RuneKey, Runes: []rune{'x'}, AltPressed: true},
			[]KeyEvent{{Code: KeyRune, Rune: 'x', Mods: ModAlt}}},
		{keys.Key{Code: keys.Space, Runes: []rune{' '}}, []KeyEvent{Char(' ')}},
		{keys.Key{Code: keys.Tab}, []KeyEvent{Char('\t')}},
		{keys.Key{Code: keys.Up}, []KeyEvent{Key(KeyUp)}},
		{keys.Key{Code: keys.Left}, []KeyEvent{Key(KeyLeft)}},
		{keys.Key{Code: keys.CtrlRight}, []KeyEvent{{Code: KeyRight, Mods: ModCtrl}}},
		{keys.Key{Code: keys.Down, AltPressed: true}, []KeyEvent{{Code: KeyDown, Mods: ModAlt}}},
		{keys.Key{Code: keys.Backspace}, []KeyEvent{Key(KeyBackspace)}},
		{keys.Key{Code: keys.CtrlH}, []KeyEvent{Key(KeyBackspace)}},
		{keys.Key{Code: keys.Enter}, []KeyEvent{Key(KeyEnter)}},
		{keys.Key{Code: keys.Esc}, []KeyEvent{Key(KeyEscape)}},
		{keys.Key{Code: keys.CtrlC}, []KeyEvent{Key(KeyInterrupt)}},
		{keys.Key{Code: keys.CtrlD}, []KeyEvent{Key(KeyEOF)}},
		{keys.Key{}, []KeyEvent{Key(KeyEOF)}},
		{keys.Key{Code: keys.CtrlA}, []KeyEvent{{Code: KeyRune, Rune: 'a', Mods: ModCtrl}}},
		{keys.Key{Code: keys.F1}, nil},
		{keys.Key{Code: keys.ShiftTab}, nil},
	} {
		evs := Events(tc.key)
		if len(evs) != len(tc.expected) {
			t.Errorf("%s: expected %v, have %v", tc.key, tc.expected, evs)
			continue
		}
		for i, ev := range evs {
			if ev != tc.expected[i] {
				t.Errorf("%s: expected %s at %d, have %s", tc.key, tc.expected[i], i, ev)
			}
		}
	}
}
