package runtime

import "fmt"

var arithPrimitives = []primDef{
	{"+", "a b -- a+b", binaryNum(func(a, b int64) (int64, error) { return a + b, nil })},
	{"-", "a b -- a-b", binaryNum(func(a, b int64) (int64, error) { return a - b, nil })},
	{"*", "a b -- a*b", binaryNum(func(a, b int64) (int64, error) { return a * b, nil })},
	{"/", "a b -- a/b", binaryNum(divide)},
	{"inc", "a -- a+1", primInc},
	{"==", "a b -- a=b", primEqual},
	{"=<", "a b -- a≤b", compareNum(func(a, b int64) bool { return a <= b })},
	{"<=", "a b -- a≤b", compareNum(func(a, b int64) bool { return a <= b })},
	{">=", "a b -- a≥b", compareNum(func(a, b int64) bool { return a >= b })},
	{"and", "a b -- a∧b", binaryBool(func(a, b bool) bool { return a && b })},
	{"or", "a b -- a∨b", binaryBool(func(a, b bool) bool { return a || b })},
}

func divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: division by zero", ErrRange)
	}
	return a / b, nil
}

func binaryNum(op func(a, b int64) (int64, error)) Rule {
	return func(m *Machine) error {
		b, err := m.PopNumber()
		if err != nil {
			return err
		}
		a, err := m.PopNumber()
		if err != nil {
			return err
		}
		r, err := op(a, b)
		if err != nil {
			return err
		}
		m.Push(Num(r))
		return nil
	}
}

func compareNum(pred func(a, b int64) bool) Rule {
	return func(m *Machine) error {
		b, err := m.PopNumber()
		if err != nil {
			return err
		}
		a, err := m.PopNumber()
		if err != nil {
			return err
		}
		m.Push(Bool(pred(a, b)))
		return nil
	}
}

func binaryBool(op func(a, b bool) bool) Rule {
	return func(m *Machine) error {
		b, err := m.PopBool()
		if err != nil {
			return err
		}
		a, err := m.PopBool()
		if err != nil {
			return err
		}
		m.Push(Bool(op(a, b)))
		return nil
	}
}

func primInc(m *Machine) error {
	a, err := m.PopNumber()
	if err != nil {
		return err
	}
	m.Push(Num(a + 1))
	return nil
}

func primEqual(m *Machine) error {
	b, err := m.Pop()
	if err != nil {
		return err
	}
	a, err := m.Pop()
	if err != nil {
		return err
	}
	m.Push(Bool(Equal(a, b)))
	return nil
}
