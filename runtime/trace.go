package runtime

import (
	"github.com/npillmayer/tacit/cursor"
	"golang.org/x/exp/slices"
)

// Trace maps cursor shapes to the VM snapshots recorded at that position,
// in execution order. A trace belongs to a single evaluation run.
type Trace struct {
	entries map[string]*traceEntry
	count   int
}

type traceEntry struct {
	shape     cursor.Shape
	snapshots []*VM
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{entries: make(map[string]*traceEntry)}
}

// Record appends a snapshot of vm to the entry for shape.
func (t *Trace) Record(shape cursor.Shape, vm *VM) {
	key := shape.Key()
	e, ok := t.entries[key]
	if !ok {
		e = &traceEntry{shape: shape}
		t.entries[key] = e
	}
	e.snapshots = append(e.snapshots, vm.Clone())
	t.count++
}

// Lookup returns the snapshots recorded at shape, in execution order.
// Clients must not modify the VMs.
func (t *Trace) Lookup(shape cursor.Shape) []*VM {
	if e, ok := t.entries[shape.Key()]; ok {
		return e.snapshots
	}
	return nil
}

// Shapes returns all shapes with recorded snapshots, ordered.
func (t *Trace) Shapes() []cursor.Shape {
	shapes := make([]cursor.Shape, 0, len(t.entries))
	for _, e := range t.entries {
		shapes = append(shapes, e.shape)
	}
	slices.SortFunc(shapes, func(a, b cursor.Shape) int {
		return a.Compare(b)
	})
	return shapes
}

// Len is the number of distinct shapes in the trace.
func (t *Trace) Len() int {
	return len(t.entries)
}

// Snapshots is the total number of snapshots recorded.
func (t *Trace) Snapshots() int {
	return t.count
}
