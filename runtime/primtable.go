package runtime

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Rule is the stack transition of a primitive. Rules operate on a Machine
// holding a working copy of the stack. A rule returning an error has its
// stack changes discarded.
type Rule func(m *Machine) error

// --- Primitives ------------------------------------------------------------

// Primitive is a named stack transition rule.
type Primitive struct {
	name string
	Rule Rule
	Doc  string // short stack effect notation, e.g. "a b -- a+b"
}

// NewPrimitive creates a primitive.
func NewPrimitive(name string, rule Rule) *Primitive {
	return &Primitive{name: name, Rule: rule}
}

// WithDoc sets the documentation of a primitive. Use as
//
//    prim := NewPrimitive("dup", dup).WithDoc("a -- a a")
//
func (p *Primitive) WithDoc(doc string) *Primitive {
	p.Doc = doc
	return p
}

// Name gets the primitive's name.
func (p *Primitive) Name() string {
	return p.name
}

func (p *Primitive) String() string {
	return fmt.Sprintf("<prim '%s' %s>", p.name, p.Doc)
}

// === Primitive Tables ======================================================

// PrimitiveTable maps identifiers to primitives. Tables may be layered: a
// table resolves names it does not define from its parent.
type PrimitiveTable struct {
	Name   string
	Parent *PrimitiveTable
	table  map[string]*Primitive
}

// NewPrimitiveTable creates an empty primitive table.
func NewPrimitiveTable(name string, parent *PrimitiveTable) *PrimitiveTable {
	return &PrimitiveTable{
		Name:   name,
		Parent: parent,
		table:  make(map[string]*Primitive),
	}
}

// Resolve looks up a primitive, searching parent tables if necessary.
// Returns the primitive or nil.
func (t *PrimitiveTable) Resolve(name string) *Primitive {
	for ; t != nil; t = t.Parent {
		if p, ok := t.table[name]; ok {
			return p
		}
	}
	return nil
}

// Define creates a new primitive in the table. The name may not be empty.
// Overwrites an existing primitive with this name, if any.
// Returns the new primitive and the previously stored one (or nil).
//
func (t *PrimitiveTable) Define(name string, rule Rule) (*Primitive, *Primitive) {
	if len(name) == 0 {
		return nil, nil
	}
	p := NewPrimitive(name, rule)
	return p, t.Insert(p)
}

// Insert inserts a pre-created primitive.
func (t *PrimitiveTable) Insert(p *Primitive) *Primitive {
	old := t.table[p.name]
	t.table[p.name] = p
	return old
}

// Size counts the primitives defined in a table, excluding its parents.
func (t *PrimitiveTable) Size() int {
	return len(t.table)
}

// Each iterates over the primitives of the table in name order, excluding
// its parents.
func (t *PrimitiveTable) Each(mapper func(string, *Primitive)) {
	names := make([]string, 0, len(t.table))
	for k := range t.table {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		mapper(k, t.table[k])
	}
}

func (t *PrimitiveTable) String() string {
	return fmt.Sprintf("<primitives %s>", t.Name)
}
