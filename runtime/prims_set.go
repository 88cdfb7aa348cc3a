package runtime

var setPrimitives = []primDef{
	{"set", "list -- set", primSet},
	{"nub", "set -- [x]", primNub},
	{"union", "a b -- a⊎b", primUnion},
	{"join", "a b -- a⋈b", primJoin},
}

func primSet(m *Machine) error {
	list, err := m.PopList()
	if err != nil {
		return err
	}
	m.Push(SetOf(list))
	return nil
}

// primNub lists the distinct elements of a set (or list) in order.
func primNub(m *Machine) error {
	s, err := m.PopSet()
	if err != nil {
		return err
	}
	m.Push(List(s.Keys()))
	return nil
}

// primUnion adds multiplicities.
func primUnion(m *Machine) error {
	a, err := m.PopSet()
	if err != nil {
		return err
	}
	b, err := m.PopSet()
	if err != nil {
		return err
	}
	m.Push(Set(a.Union(b)))
	return nil
}

// primJoin intersects, multiplying multiplicities.
func primJoin(m *Machine) error {
	a, err := m.PopSet()
	if err != nil {
		return err
	}
	b, err := m.PopSet()
	if err != nil {
		return err
	}
	m.Push(Set(a.Join(b)))
	return nil
}
