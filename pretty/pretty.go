package pretty

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tacit/cursor"
	"github.com/npillmayer/tacit/runtime"
	"github.com/npillmayer/tacit/syntax"
	"github.com/pterm/pterm"
)

// Limits for the display of long values.
const (
	MaxStringLen = 350 // characters of a string shown
	MaxListLen   = 21  // elements of a list or set shown
)

var (
	identStyle   = pterm.NewStyle(pterm.FgRed)
	literalStyle = pterm.NewStyle(pterm.FgGreen)
	focusStyle   = pterm.NewStyle(pterm.BgBlue, pterm.FgWhite)
	caretStyle   = pterm.NewStyle(pterm.BgMagenta, pterm.FgWhite)
	depthStyle   = pterm.NewStyle(pterm.FgCyan)
	poisonStyle  = pterm.NewStyle(pterm.FgRed)
	nameStyle    = pterm.NewStyle(pterm.FgYellow)
)

// --- Programs --------------------------------------------------------------

// Expr describes a single expression. Identifiers are red, literals green.
// Empty identifiers and string literals are shown as ␣ and ε.
func Expr(e syntax.Expr) *Text {
	t := &Text{}
	writeExpr(t, e)
	return t
}

// Program describes a program, expressions separated by blanks.
func Program(p syntax.Program) *Text {
	t := &Text{}
	writeProgram(t, p)
	return t
}

func writeExpr(t *Text, e syntax.Expr) {
	switch x := e.(type) {
	case syntax.Ident:
		t.Add(x.String(), identStyle)
	case syntax.StrLit:
		if x == "" {
			t.Add("ε", literalStyle)
		} else {
			t.Add(string(x), literalStyle)
		}
	case syntax.NumLit:
		t.Add(x.String(), literalStyle)
	case syntax.Quote:
		t.Add("{", nil)
		writeProgram(t, x.Body)
		t.Add("}", nil)
	}
}

func writeProgram(t *Text, p syntax.Program) {
	for i, e := range p {
		if i > 0 {
			t.Add(" ", nil)
		}
		writeExpr(t, e)
	}
}

// --- Cursors ---------------------------------------------------------------

// Cursor describes a cursor as the program around it with the focus marked.
// The marker of a plain position is ‸ on a blue background, literals under
// construction show their caret on a magenta background.
func Cursor(c cursor.Cursor) *Text {
	t := &Text{}
	writeCursor(t, c)
	return t
}

func writeCursor(t *Text, c cursor.Cursor) {
	head, tail := c.HeadProgram(), c.TailProgram()
	writeProgram(t, head)
	switch c.Kind() {
	case cursor.EdgeKind:
		if len(head) > 0 {
			t.Add(" ", nil)
		}
		t.Add("‸", focusStyle)
	case cursor.QuoteKind:
		if len(head) > 0 {
			t.Add(" ", nil)
		}
		t.Add("{", nil)
		if inner, ok := c.Inner(); ok {
			writeCursor(t, inner)
		}
		t.Add("}", nil)
	case cursor.IdentKind, cursor.StrLitKind:
		if len(head) > 0 {
			t.Add(" ", nil)
		}
		style := identStyle
		if c.Kind() == cursor.StrLitKind {
			style = literalStyle
		}
		buf, caret := c.Buffer()
		rs := []rune(buf)
		t.Add(string(rs[:caret]), style).Add("‸", caretStyle).Add(string(rs[caret:]), style)
	case cursor.NumLitKind:
		if len(head) > 0 {
			t.Add(" ", nil)
		}
		if n, ok := c.Accumulator(); ok {
			t.Add(n.String(), literalStyle)
		} else {
			t.Add("#", literalStyle)
		}
		t.Add("‸", caretStyle)
	}
	if len(tail) > 0 {
		t.Add(" ", nil)
		writeProgram(t, tail)
	}
}

// --- Runtime state ---------------------------------------------------------

// Value describes a runtime value. Strings are shown green without quotes,
// line breaks as ⋅. Long strings, lists and sets are cut off with …
func Value(v runtime.Value) *Text {
	t := &Text{}
	writeValue(t, v)
	return t
}

func writeValue(t *Text, v runtime.Value) {
	switch v.Kind() {
	case runtime.PoisonValue:
		t.Add("☠", poisonStyle)
	case runtime.NumberValue:
		n, _ := v.AsNumber()
		t.Add(fmt.Sprintf("%d", n), literalStyle)
	case runtime.CharValue:
		r, _ := v.AsChar()
		t.Add(fmt.Sprintf("'%c'", r), literalStyle)
	case runtime.ListValue:
		if v.IsString() {
			s, _ := v.AsString()
			rs := []rune(strings.ReplaceAll(s, "\n", "⋅"))
			if len(rs) > MaxStringLen {
				rs = append(rs[:MaxStringLen:MaxStringLen], '…')
			}
			t.Add(string(rs), literalStyle)
			return
		}
		list, _ := v.AsList()
		t.Add("[", nil)
		for i, x := range list {
			if i > 0 {
				t.Add(" ", nil)
			}
			if i == MaxListLen {
				t.Add("…", nil)
				break
			}
			writeValue(t, x)
		}
		t.Add("]", nil)
	case runtime.SetValue:
		set, _ := v.AsSet()
		t.Add("[", nil)
		for i, e := range set.Entries() {
			if i > 0 {
				t.Add(" ", nil)
			}
			if i == MaxListLen {
				t.Add("…", nil)
				break
			}
			writeValue(t, e.Elem)
			if e.N != 1 {
				t.Add(fmt.Sprintf(":%d", e.N), nil)
			}
		}
		t.Add("]", nil)
	case runtime.QuoteValue:
		q, _ := v.AsQuote()
		t.Add("{", nil)
		writeProgram(t, q.LocalProgram())
		t.Add("}", nil)
	}
}

// VM describes a VM as one row per stack slot, headed by the slot's depth
// (the top of stack has depth 0). Rows of parent VMs come first, and every
// child VM is introduced by a row holding its name.
func VM(vm *runtime.VM) []*Text {
	var rows []*Text
	if !vm.IsRoot() {
		rows = append(VM(vm.Parent()), NewText("▸ "+vm.Name, nameStyle))
	}
	stack := vm.Stack()
	for i, x := range stack {
		row := NewText(fmt.Sprintf("%-4d", len(stack)-i-1), depthStyle)
		writeValue(row, x)
		rows = append(rows, row)
	}
	return rows
}

// TraceTree describes a trace as a tree: one node per recorded shape, in
// shape order, with one child per snapshot. Render it with
// pterm.DefaultTree.WithRoot(…).Render().
func TraceTree(trace *runtime.Trace) pterm.TreeNode {
	var ll pterm.LeveledList
	for _, shape := range trace.Shapes() {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: shape.String()})
		for _, snap := range trace.Lookup(shape) {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: stackLine(snap)})
		}
	}
	return pterm.NewTreeFromLeveledList(ll)
}

// stackLine is a one-line description of a stack, bottom first.
func stackLine(vm *runtime.VM) string {
	stack := vm.Stack()
	if len(stack) == 0 {
		return "⊥"
	}
	parts := make([]string, len(stack))
	for i, x := range stack {
		parts[i] = Value(x).Plain()
	}
	return strings.Join(parts, " ")
}
