package runtime

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// VM is one evaluation instance: a stack of values (top = last pushed) and an
// optional link to a parent VM.
//
// The parent link carries no semantics. It lets nested evaluations be shown
// in the context of the stack they were started from. Parents are snapshots
// and are never modified.
type VM struct {
	Name   string
	stack  []Value
	parent *VM
}

// NewVM creates a VM with an empty stack and no parent.
func NewVM() *VM {
	return &VM{Name: "main"}
}

// NewChild creates a VM with an empty stack, linked to a snapshot of vm.
func (vm *VM) NewChild(name string) *VM {
	child := &VM{Name: name, parent: vm.Clone()}
	tracer().P("vm", name).Debugf("new child of depth %d", child.Depth())
	return child
}

// Clone returns a copy of vm. The stack is copied, values and parents are
// shared.
func (vm *VM) Clone() *VM {
	return &VM{Name: vm.Name, stack: slices.Clone(vm.stack), parent: vm.parent}
}

// Parent returns the parent VM or nil.
func (vm *VM) Parent() *VM {
	return vm.parent
}

// IsRoot is a predicate: does this VM have no parent?
func (vm *VM) IsRoot() bool {
	return vm.parent == nil
}

// Depth is the number of ancestors of vm.
func (vm *VM) Depth() int {
	d := 0
	for p := vm.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Stack returns a copy of the stack, bottom first.
func (vm *VM) Stack() []Value {
	return slices.Clone(vm.stack)
}

// Len is the number of values on the stack.
func (vm *VM) Len() int {
	return len(vm.stack)
}

// Top returns the topmost value, if any.
func (vm *VM) Top() (Value, bool) {
	if len(vm.stack) == 0 {
		return Value{}, false
	}
	return vm.stack[len(vm.stack)-1], true
}

// Push pushes values onto the stack, in order.
func (vm *VM) Push(values ...Value) {
	vm.stack = append(vm.stack, values...)
}

func (vm *VM) pop() (Value, bool) {
	if len(vm.stack) == 0 {
		return Value{}, false
	}
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v, true
}

func (vm *VM) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<vm %s [", vm.Name)
	for i, v := range vm.stack {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteString("]>")
	return b.String()
}
