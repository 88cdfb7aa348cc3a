package shell

import (
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/tacit/cursor"
	"github.com/npillmayer/tacit/pretty"
	"github.com/npillmayer/tacit/runtime"
	"github.com/npillmayer/tacit/syntax"
)

// Config holds the settings of a shell.
type Config struct {
	Limit   int             // maximum number of snapshots displayed
	Width   int             // screen width; lines are cut off at it if > 0
	Effects runtime.Effects // file access for programs
}

// DefaultConfig shows up to 16 snapshots, does not limit the line width and
// lets programs read from the local file system.
func DefaultConfig() Config {
	return Config{
		Limit:   16,
		Effects: runtime.OSEffects{},
	}
}

// Shell is the state of an editing session: a cursor and the evaluator used
// to trace the program under edit.
type Shell struct {
	cfg    Config
	cursor cursor.Cursor
	ev     *runtime.Evaluator
}

// New creates a shell with an empty program.
func New(cfg Config) *Shell {
	if cfg.Effects == nil {
		cfg.Effects = runtime.NoEffects{}
	}
	return &Shell{
		cfg:    cfg,
		cursor: cursor.Empty(),
		ev:     runtime.NewEvaluator(runtime.WithEffects(cfg.Effects)),
	}
}

// Load replaces the program under edit. The focus is placed at its end.
func (sh *Shell) Load(program syntax.Program) {
	sh.cursor = cursor.At(program, nil)
}

// Cursor returns the current cursor.
func (sh *Shell) Cursor() cursor.Cursor {
	return sh.cursor
}

// Primitives returns the primitive table programs are evaluated with.
func (sh *Shell) Primitives() *runtime.PrimitiveTable {
	return sh.ev.Primitives()
}

// Resize sets the screen width. Lines are not cut off for widths <= 0.
func (sh *Shell) Resize(width int) {
	sh.cfg.Width = width
}

// Mode returns the editing mode of the current cursor.
func (sh *Shell) Mode() cursor.Mode {
	return sh.cursor.Mode()
}

// HandleKey applies a key event to the cursor. Keys without a binding in
// the current mode are ignored.
func (sh *Shell) HandleKey(ev KeyEvent) {
	if ev.Mods != 0 {
		return
	}
	c := sh.cursor
	switch sh.cursor.Mode() {
	case cursor.Normal:
		c = normalKey(c, ev)
	case cursor.IdentMode:
		c = identKey(c, ev)
	case cursor.StrLitMode:
		c = strLitKey(c, ev)
	case cursor.NumLitMode:
		c = numLitKey(c, ev)
	}
	tracer().P("key", ev).Debugf("%s", c)
	sh.cursor = c
}

func normalKey(c cursor.Cursor, ev KeyEvent) cursor.Cursor {
	switch ev.Code {
	case KeyLeft:
		return c.MoveLeft()
	case KeyRight:
		return c.MoveRight()
	case KeyUp:
		return c.MoveUp()
	case KeyDown:
		return c.MoveOut()
	case KeyBackspace:
		return c.DeleteBefore()
	case KeyRune:
		switch ev.Rune {
		case 'i':
			return c.Insert(cursor.EmptyIdent())
		case '"':
			return c.Insert(cursor.EmptyStrLit())
		case '#':
			return c.Insert(cursor.EmptyNumLit())
		case '{':
			return c.Insert(cursor.EmptyQuote())
		case '}':
			return c.MoveOut()
		}
	}
	return c
}

func identKey(c cursor.Cursor, ev KeyEvent) cursor.Cursor {
	switch ev.Code {
	case KeyEnter:
		return c.EscapeToNormal()
	case KeyRune:
		if unicode.IsSpace(ev.Rune) {
			return c.EscapeToNormal()
		}
		return c.Input(ev.Rune)
	}
	return c
}

func strLitKey(c cursor.Cursor, ev KeyEvent) cursor.Cursor {
	switch ev.Code {
	case KeyEnter:
		return c.Input('\n')
	case KeyRune:
		if ev.Rune == '"' {
			return c.EscapeToNormal()
		}
		return c.Input(ev.Rune)
	}
	return c
}

// numLitKey commits the number on any character other than a digit. The
// character then takes effect as in normal mode.
func numLitKey(c cursor.Cursor, ev KeyEvent) cursor.Cursor {
	switch ev.Code {
	case KeyEnter:
		return c.EscapeToNormal()
	case KeyRune:
		if ev.Rune >= '0' && ev.Rune <= '9' {
			return c.Input(ev.Rune)
		}
		return normalKey(c.EscapeToNormal(), ev)
	}
	return c
}

// Evaluate runs the program under edit from its start. While a literal is
// under construction there is no complete program and Evaluate returns nils.
func (sh *Shell) Evaluate() (*runtime.VM, *runtime.Trace) {
	if sh.cursor.Mode() != cursor.Normal {
		return nil, nil
	}
	vm, trace := sh.ev.Run(sh.cursor.Program())
	tracer().Infof("%d values on stack, %d positions traced", vm.Len(), trace.Len())
	return vm, trace
}

// Snapshots evaluates the program under edit and returns the stack snapshots
// recorded at the cursor's position, at most Limit of them.
func (sh *Shell) Snapshots() []*runtime.VM {
	_, trace := sh.Evaluate()
	if trace == nil {
		return nil
	}
	snapshots := trace.Lookup(sh.cursor.Shape())
	if sh.cfg.Limit > 0 && len(snapshots) > sh.cfg.Limit {
		snapshots = snapshots[:sh.cfg.Limit]
	}
	return snapshots
}

// Lines lays out the screen: the program line with the cursor, a separator
// and, in Normal mode, the snapshots at the cursor's position. Snapshots are
// separated by empty lines.
func (sh *Shell) Lines() []*pretty.Text {
	width := sh.cfg.Width
	sepWidth := width
	if sepWidth <= 0 {
		sepWidth = 40
	}
	lines := []*pretty.Text{
		pretty.Cursor(sh.cursor),
		pretty.NewText(strings.Repeat("~", sepWidth), nil),
	}
	for i, snap := range sh.Snapshots() {
		if i > 0 {
			lines = append(lines, &pretty.Text{})
		}
		lines = append(lines, pretty.VM(snap)...)
	}
	if width > 0 {
		for i, line := range lines {
			lines[i] = line.Truncate(width)
		}
	}
	return lines
}

// Render writes the screen to w. Lines are terminated by CR LF, as needed
// by terminals in raw mode.
func (sh *Shell) Render(w io.Writer) error {
	for _, line := range sh.Lines() {
		if _, err := io.WriteString(w, line.String()+"\r\n"); err != nil {
			return err
		}
	}
	return nil
}
