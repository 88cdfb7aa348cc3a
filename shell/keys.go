package shell

import (
	"fmt"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
)

// KeyCode identifies a key. Keys producing characters have code KeyRune.
type KeyCode int

// Key codes
const (
	KeyRune KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyInterrupt // ctrl-C
	KeyEOF       // ctrl-D
)

func (k KeyCode) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyBackspace:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyInterrupt:
		return "interrupt"
	case KeyEOF:
		return "eof"
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

// Modifier is a set of modifier keys.
type Modifier uint8

// Modifiers
const (
	ModCtrl Modifier = 1 << iota
	ModAlt
)

// KeyEvent is a single key press.
type KeyEvent struct {
	Code KeyCode
	Rune rune // for KeyRune
	Mods Modifier
}

// Key creates an event for a key without modifiers.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

// Char creates an event for a character key without modifiers.
func Char(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r}
}

func (ev KeyEvent) String() string {
	s := ev.Code.String()
	if ev.Code == KeyRune {
		s = fmt.Sprintf("%q", ev.Rune)
	}
	if ev.Mods&ModCtrl != 0 {
		s = "ctrl-" + s
	}
	if ev.Mods&ModAlt != 0 {
		s = "alt-" + s
	}
	return s
}

// Events translates a key reported by the keyboard listener into key
// events. Pasted text arrives as a single key with many runes and yields one
// event per rune. Keys without a counterpart (function keys, Home, …) yield
// no event.
func Events(k keys.Key) []KeyEvent {
	var mods Modifier
	if k.AltPressed {
		mods |= ModAlt
	}
	with := func(ev KeyEvent, m Modifier) []KeyEvent {
		ev.Mods |= m
		return []KeyEvent{ev}
	}
	switch k.Code {
	case keys.RuneKey:
		evs := make([]KeyEvent, len(k.Runes))
		for i, r := range k.Runes {
			evs[i] = KeyEvent{Code: KeyRune, Rune: r, Mods: mods}
		}
		return evs
	case keys.Space:
		return with(Char(' '), mods)
	case keys.Tab:
		return with(Char('\t'), mods)
	case keys.Up:
		return with(Key(KeyUp), mods)
	case keys.Down:
		return with(Key(KeyDown), mods)
	case keys.Right:
		return with(Key(KeyRight), mods)
	case keys.Left:
		return with(Key(KeyLeft), mods)
	case keys.CtrlUp:
		return with(Key(KeyUp), mods|ModCtrl)
	case keys.CtrlDown:
		return with(Key(KeyDown), mods|ModCtrl)
	case keys.CtrlRight:
		return with(Key(KeyRight), mods|ModCtrl)
	case keys.CtrlLeft:
		return with(Key(KeyLeft), mods|ModCtrl)
	case keys.Backspace, keys.CtrlH:
		return with(Key(KeyBackspace), mods)
	case keys.Enter, keys.CtrlJ:
		return with(Key(KeyEnter), mods)
	case keys.Esc:
		return with(Key(KeyEscape), mods)
	case keys.CtrlC:
		return with(Key(KeyInterrupt), mods)
	case keys.CtrlD, keys.Null: // the listener reports null keys once its input is gone
		return with(Key(KeyEOF), mods)
	}
	if k.Code > keys.Null && k.Code <= keys.CtrlUnderscore {
		return with(Char('a'+rune(k.Code)-1), mods|ModCtrl)
	}
	tracer().Debugf("ignoring key %s", k)
	return nil
}

// Listen takes over the terminal and calls handle for every key event, until
// handle returns true or an error. The terminal is put into raw mode for the
// duration of the call.
func Listen(handle func(KeyEvent) (stop bool, err error)) error {
	return keyboard.Listen(func(k keys.Key) (bool, error) {
		for _, ev := range Events(k) {
			if stop, err := handle(ev); stop || err != nil {
				return stop, err
			}
		}
		return false, nil
	})
}
