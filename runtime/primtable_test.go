package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func nop(*Machine) error { return nil }

func TestNewPrimitiveTable(t *testing.T) {
	table := NewPrimitiveTable("test", nil)
	if table == nil || table.Size() != 0 {
		t.Error("no empty primitive table created")
	}
}

func TestDefinePrimitive(t *testing.T) {
	table := NewPrimitiveTable("test", nil)
	p, old := table.Define("new-prim", nop)
	if p == nil || old != nil {
		t.Fatal("primitive not created")
	}
	if table.Resolve("new-prim") != p {
		t.Error("cannot find stored primitive in table")
	}
	if p2, old := table.Define("new-prim", nop); old != p || table.Resolve("new-prim") != p2 {
		t.Error("primitive should have been replaced")
	}
	if p, _ := table.Define("", nop); p != nil {
		t.Error("primitive with empty name should not be created")
	}
}

func TestResolveInParent(t *testing.T) {
	parent := NewPrimitiveTable("parent", nil)
	table := NewPrimitiveTable("current", parent)
	p, _ := parent.Define("new-prim", nop)
	if table.Resolve("new-prim") != p {
		t.Error("cannot find primitive of parent table")
	}
	shadow, _ := table.Define("new-prim", nop)
	if table.Resolve("new-prim") != shadow || parent.Resolve("new-prim") != p {
		t.Error("primitive should shadow the parent's")
	}
	if table.Resolve("unknown") != nil {
		t.Error("unknown name should not resolve")
	}
}

func TestStandardPrimitives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tacit.runtime")
	defer teardown()
	//
	std := Standard()
	var names []string
	std.Each(func(name string, p *Primitive) {
		if p.Doc == "" {
			t.Errorf("primitive %s is undocumented", name)
		}
		names = append(names, name)
	})
	if len(names) != std.Size() {
		t.Errorf("expected %d primitives, iterated %d", std.Size(), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("primitives not in name order: %s, %s", names[i-1], names[i])
		}
	}
	for _, name := range []string{"dup", "drop", "swap", "map", "under", "join", "shape"} {
		if std.Resolve(name) == nil {
			t.Errorf("expected %s to be a standard primitive", name)
		}
	}
	if Standard() == std {
		t.Error("standard tables should not be shared")
	}
}
