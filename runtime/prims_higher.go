package runtime

var higherOrderPrimitives = []primDef{
	{"collect", "q -- [results]", primCollect},
	{"map", "list q -- [results]", primMap},
	{"under", "… q n -- … results …", primUnder},
}

// primCollect evaluates a quote on an empty child VM and collects the
// resulting stack as a list.
func primCollect(m *Machine) error {
	q, err := m.PopQuote()
	if err != nil {
		return err
	}
	child := m.Child("collect")
	if err := m.Eval(child, q); err != nil {
		return err
	}
	m.Push(List(child.stack))
	return nil
}

// primMap evaluates a quote once per element of a list, each time on a child
// VM holding just the element. The resulting stacks are concatenated.
func primMap(m *Machine) error {
	q, err := m.PopQuote()
	if err != nil {
		return err
	}
	list, err := m.PopList()
	if err != nil {
		return err
	}
	var results []Value
	for _, x := range list {
		child := m.Child("map")
		child.Push(x)
		if err := m.Eval(child, q); err != nil {
			return err
		}
		results = append(results, child.stack...)
	}
	m.Push(List(results))
	return nil
}

// primUnder sets the top n values aside, evaluates a quote on the rest of
// the stack and restores the values on top of the result.
func primUnder(m *Machine) error {
	n, err := m.PopNumber()
	if err != nil {
		return err
	}
	q, err := m.PopQuote()
	if err != nil {
		return err
	}
	aside, err := m.Split(n)
	if err != nil {
		return err
	}
	sub := &VM{Name: "under", stack: m.vm.stack, parent: m.vm.parent}
	if err := m.Eval(sub, q); err != nil {
		return err
	}
	m.vm.stack = append(sub.stack, aside...)
	return nil
}
