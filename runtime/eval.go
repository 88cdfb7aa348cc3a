package runtime

import (
	"fmt"

	"github.com/npillmayer/tacit/cursor"
	"github.com/npillmayer/tacit/polyset"
	"github.com/npillmayer/tacit/syntax"
)

// MaxNesting limits the nesting of quote evaluations started by primitives.
const MaxNesting = 200

// Evaluator executes programs left to right and traces every stack state
// observed at every structural position.
//
// An Evaluator is not safe for concurrent use.
type Evaluator struct {
	prims   *PrimitiveTable
	effects Effects
	nesting int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithEffects sets the effect boundary. Default is OSEffects.
func WithEffects(e Effects) Option {
	return func(ev *Evaluator) {
		ev.effects = e
	}
}

// WithPrimitives sets the primitive table. Default is the standard table.
// Clients extending the standard primitives should create a table with
// Standard() as its parent.
func WithPrimitives(t *PrimitiveTable) Option {
	return func(ev *Evaluator) {
		ev.prims = t
	}
}

// NewEvaluator creates an evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := &Evaluator{
		prims:   Standard(),
		effects: OSEffects{},
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Primitives returns the primitive table of the evaluator.
func (ev *Evaluator) Primitives() *PrimitiveTable {
	return ev.prims
}

// Run evaluates a whole program on a fresh VM. It returns the final VM and
// the trace of the run.
func (ev *Evaluator) Run(program syntax.Program) (*VM, *Trace) {
	vm, trace := NewVM(), NewTrace()
	ev.EvalCursor(vm, trace, cursor.Initial(program))
	tracer().Debugf("evaluation done: %d shapes, %d snapshots, %d values on stack",
		trace.Len(), trace.Snapshots(), vm.Len())
	return vm, trace
}

// EvalCursor evaluates the expressions after the focus of c against vm.
// A snapshot of vm is recorded in trace before the first and after every
// expression, keyed by the shape of the cursor at that point.
//
// Quotes are not executed but captured as positions: the value pushed is a
// cursor at the start of the quote's body.
func (ev *Evaluator) EvalCursor(vm *VM, trace *Trace, c cursor.Cursor) {
	trace.Record(c.Shape(), vm)
	for {
		expr, ok := c.NextExpr()
		if !ok {
			break
		}
		// MoveRight copies the head. Quote values and snapshots keep cursors
		// alive, so the copy must not be replaced by aliasing.
		c = c.MoveRight()
		switch e := expr.(type) {
		case syntax.Ident:
			ev.dispatch(vm, trace, string(e))
		case syntax.StrLit:
			vm.Push(Str(string(e)))
		case syntax.NumLit:
			if n, ok := e.Int64(); ok {
				vm.Push(Num(n))
			} else {
				tracer().Debugf("number literal %s out of range", e)
				vm.Push(Poison())
			}
		case syntax.Quote:
			vm.Push(Quote(c.MoveUp().MoveVeryLeft()))
		}
		trace.Record(c.Shape(), vm)
	}
}

// dispatch runs a primitive on a working copy of vm's stack. The copy
// replaces the stack on success, otherwise a single Poison is pushed.
func (ev *Evaluator) dispatch(vm *VM, trace *Trace, name string) {
	prim := ev.prims.Resolve(name)
	if prim == nil {
		tracer().Debugf("poison: %v: %q", ErrUnknown, name)
		vm.Push(Poison())
		return
	}
	m := &Machine{ev: ev, trace: trace, vm: vm.Clone()}
	if err := prim.Rule(m); err != nil {
		tracer().P("prim", name).Debugf("poison: %v", err)
		vm.Push(Poison())
		return
	}
	vm.stack = m.vm.stack
}

// --- Machine ---------------------------------------------------------------

// Machine is the working context of a primitive rule. It holds a copy of the
// stack of the VM the primitive is applied to.
type Machine struct {
	ev    *Evaluator
	trace *Trace
	vm    *VM
}

// Len is the number of values on the working stack.
func (m *Machine) Len() int {
	return m.vm.Len()
}

// Push pushes values onto the working stack.
func (m *Machine) Push(values ...Value) {
	m.vm.Push(values...)
}

// Pop pops the topmost value.
func (m *Machine) Pop() (Value, error) {
	v, ok := m.vm.pop()
	if !ok {
		return v, ErrUnderflow
	}
	return v, nil
}

// PopNumber pops a number.
func (m *Machine) PopNumber() (int64, error) {
	v, err := m.Pop()
	if err != nil {
		return 0, err
	}
	n, ok := v.AsNumber()
	if !ok {
		return 0, typeError("number", v)
	}
	return n, nil
}

// PopChar pops a character.
func (m *Machine) PopChar() (rune, error) {
	v, err := m.Pop()
	if err != nil {
		return 0, err
	}
	r, ok := v.AsChar()
	if !ok {
		return 0, typeError("char", v)
	}
	return r, nil
}

// PopBool pops a boolean, i.e. 0 or 1.
func (m *Machine) PopBool() (bool, error) {
	v, err := m.Pop()
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, typeError("boolean", v)
	}
	return b, nil
}

// PopList pops a list. The result must not be modified.
func (m *Machine) PopList() ([]Value, error) {
	v, err := m.Pop()
	if err != nil {
		return nil, err
	}
	l, ok := v.AsList()
	if !ok {
		return nil, typeError("list", v)
	}
	return l, nil
}

// PopString pops a list of characters.
func (m *Machine) PopString() (string, error) {
	v, err := m.Pop()
	if err != nil {
		return "", err
	}
	s, ok := v.AsString()
	if !ok {
		return "", typeError("string", v)
	}
	return s, nil
}

// PopSet pops a set or a list, the latter converted to a set.
func (m *Machine) PopSet() (polyset.Polyset[Value], error) {
	v, err := m.Pop()
	if err != nil {
		return polyset.Polyset[Value]{}, err
	}
	s, ok := v.AsSet()
	if !ok {
		return s, typeError("set", v)
	}
	return s, nil
}

// PopQuote pops a captured quote.
func (m *Machine) PopQuote() (cursor.Cursor, error) {
	v, err := m.Pop()
	if err != nil {
		return cursor.Cursor{}, err
	}
	q, ok := v.AsQuote()
	if !ok {
		return q, typeError("quote", v)
	}
	return q, nil
}

// Effects returns the effect boundary of the evaluator.
func (m *Machine) Effects() Effects {
	return m.ev.effects
}

// Child creates a VM with an empty stack, parent-linked to the current
// working state.
func (m *Machine) Child(name string) *VM {
	return m.vm.NewChild(name)
}

// Eval evaluates a captured quote on vm, tracing into the current trace.
// It fails if quote evaluations are nested too deeply.
func (m *Machine) Eval(vm *VM, quote cursor.Cursor) error {
	if m.ev.nesting >= MaxNesting {
		return fmt.Errorf("%w: quotes nested deeper than %d", ErrRange, MaxNesting)
	}
	m.ev.nesting++
	defer func() { m.ev.nesting-- }()
	m.ev.EvalCursor(vm, m.trace, quote)
	return nil
}

// Split removes the top n values from the working stack and returns them,
// bottom first.
func (m *Machine) Split(n int64) ([]Value, error) {
	if n < 0 || n > int64(m.vm.Len()) {
		return nil, fmt.Errorf("%w: cannot set aside %d of %d values", ErrRange, n, m.vm.Len())
	}
	at := m.vm.Len() - int(n)
	top := m.vm.stack[at:]
	m.vm.stack = m.vm.stack[:at:at]
	return top, nil
}

func typeError(expected string, v Value) error {
	return fmt.Errorf("%w: expected %s, have %s", ErrType, expected, v.Kind())
}
