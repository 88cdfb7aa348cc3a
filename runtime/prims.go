package runtime

// Standard creates a table holding all built-in primitives.
func Standard() *PrimitiveTable {
	t := NewPrimitiveTable("standard", nil)
	for _, family := range [][]primDef{
		stackPrimitives,
		arithPrimitives,
		stringPrimitives,
		listPrimitives,
		setPrimitives,
		higherOrderPrimitives,
	} {
		for _, def := range family {
			p, _ := t.Define(def.name, def.rule)
			p.WithDoc(def.doc)
		}
	}
	tracer().Debugf("%d standard primitives defined", t.Size())
	return t
}

type primDef struct {
	name string
	doc  string
	rule Rule
}

// --- Stack shuffling -------------------------------------------------------

var stackPrimitives = []primDef{
	{"del", "a --", primDel},
	{"drop", "a --", primDel},
	{"dup", "a -- a a", primDup},
	{"flip", "a b -- b a", primFlip},
	{"swap", "a b -- b a", primFlip},
	{"copy", "… x … n -- … x … x", primCopy},
	{"move", "… x … n -- … … x", primMove},
	{"sb", "v test new -- new|v", primSubstitute},
}

func primDel(m *Machine) error {
	_, err := m.Pop()
	return err
}

func primDup(m *Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	m.Push(v, v)
	return nil
}

func primFlip(m *Machine) error {
	b, err := m.Pop()
	if err != nil {
		return err
	}
	a, err := m.Pop()
	if err != nil {
		return err
	}
	m.Push(b, a)
	return nil
}

// depthIndex converts a depth (0 = top) into a stack index.
func depthIndex(m *Machine, depth int64) (int, error) {
	if depth < 0 || depth >= int64(m.Len()) {
		return 0, ErrRange
	}
	return m.Len() - 1 - int(depth), nil
}

func primCopy(m *Machine) error {
	n, err := m.PopNumber()
	if err != nil {
		return err
	}
	i, err := depthIndex(m, n)
	if err != nil {
		return err
	}
	m.Push(m.vm.stack[i])
	return nil
}

func primMove(m *Machine) error {
	n, err := m.PopNumber()
	if err != nil {
		return err
	}
	i, err := depthIndex(m, n)
	if err != nil {
		return err
	}
	v := m.vm.stack[i]
	m.vm.stack = append(m.vm.stack[:i], m.vm.stack[i+1:]...)
	m.Push(v)
	return nil
}

func primSubstitute(m *Machine) error {
	repl, err := m.Pop()
	if err != nil {
		return err
	}
	test, err := m.Pop()
	if err != nil {
		return err
	}
	v, err := m.Pop()
	if err != nil {
		return err
	}
	if Equal(v, test) {
		m.Push(repl)
	} else {
		m.Push(v)
	}
	return nil
}
