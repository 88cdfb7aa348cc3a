package runtime

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

var stringPrimitives = []primDef{
	{"s", "text old new -- text'", primReplace},
	{"lines", "text -- [line]", primLines},
	{"words", "text -- [word]", primWords},
	{"num", "text -- n", primParseNum},
	{"read", "path -- text", primRead},
	{"shape", "v -- descriptor", primShape},
}

func strList(ss []string) Value {
	return List(lo.Map(ss, func(s string, _ int) Value { return Str(s) }))
}

func primReplace(m *Machine) error {
	repl, err := m.PopString()
	if err != nil {
		return err
	}
	old, err := m.PopString()
	if err != nil {
		return err
	}
	text, err := m.PopString()
	if err != nil {
		return err
	}
	m.Push(Str(strings.ReplaceAll(text, old, repl)))
	return nil
}

// primLines splits at line breaks. A single trailing empty line is dropped.
func primLines(m *Machine) error {
	text, err := m.PopString()
	if err != nil {
		return err
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	m.Push(strList(lines))
	return nil
}

// primWords splits at runs of characters which are neither letters nor digits.
func primWords(m *Machine) error {
	text, err := m.PopString()
	if err != nil {
		return err
	}
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	m.Push(strList(words))
	return nil
}

func primParseNum(m *Machine) error {
	text, err := m.PopString()
	if err != nil {
		return err
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	m.Push(Num(n))
	return nil
}

func primRead(m *Machine) error {
	path, err := m.PopString()
	if err != nil {
		return err
	}
	text, err := m.Effects().ReadFile(path)
	if err != nil {
		return err
	}
	m.Push(Str(text))
	return nil
}

func primShape(m *Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	m.Push(Str(ShapeOf(v).String()))
	return nil
}
