package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/tacit/cursor"
	"github.com/npillmayer/tacit/pretty"
	"github.com/npillmayer/tacit/runtime"
	"github.com/npillmayer/tacit/shell"
	"github.com/npillmayer/tacit/syntax"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'tacit.shell'.
func tracer() tracing.Trace {
	return tracing.Select("tacit.shell")
}

// main() starts tacit, a structural editor for a small concatenative
// language. By default it takes over the terminal: the program is edited
// key by key and, below it, the stack states traced at the cursor position
// are displayed. With -repl it reads whole program lines instead and prints
// the resulting stacks.
//
// An initial program may be loaded from a file (-init) or given as command
// line arguments.
//
func main() {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial program file")
	lineMode := flag.Bool("repl", false, "Line mode: read and evaluate whole program lines")
	limit := flag.Int("limit", 16, "Number of stack snapshots displayed")
	logf := flag.String("log", "", "Trace output file")
	flag.Parse()
	//
	// set up configuration and tracing
	if *logf != "" {
		if abs, err := filepath.Abs(*logf); err == nil {
			*logf = abs
		}
	}
	initConfig(newFlagConfig(*tlevel, *limit, *logf))
	initDisplay()
	tracer().Infof("Trace level is %s", *tlevel)
	//
	cfg := shell.DefaultConfig()
	cfg.Limit = gconf.GetInt("display.limit")
	sh := shell.New(cfg)
	input := loadInitFile(*initf)
	if args := strings.TrimSpace(strings.Join(flag.Args(), " ")); args != "" {
		input = strings.TrimSpace(input + "\n" + args)
	}
	if input != "" {
		program, err := syntax.Parse(input)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		sh.Load(program)
	}
	//
	var err error
	if *lineMode {
		err = repl(sh)
	} else {
		err = edit(sh)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
}

// initConfig makes the configuration globally available and configures the
// tracers from it.
func initConfig(conf flagConfig) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "tracing", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintf(os.Stderr, "cannot configure tracing: %v\n", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadInitFile returns the program text of an init file, or "".
func loadInitFile(filename string) string {
	if filename == "" {
		return ""
	}
	text, err := os.ReadFile(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return ""
	}
	return string(text)
}

// --- Editor ----------------------------------------------------------------

const clearScreen = "\x1b[H\x1b[2J"

// edit runs the structural editor on a terminal in raw mode. It returns on
// Esc in normal mode, ctrl-C, ctrl-D or end of input.
func edit(sh *shell.Shell) error {
	if !readline.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("editor needs a terminal; use -repl for line mode")
	}
	redraw := func() error {
		sh.Resize(readline.GetScreenWidth())
		io.WriteString(os.Stdout, clearScreen)
		return sh.Render(os.Stdout)
	}
	if err := redraw(); err != nil {
		return err
	}
	return shell.Listen(func(ev shell.KeyEvent) (bool, error) {
		switch ev.Code {
		case shell.KeyInterrupt, shell.KeyEOF:
			return true, nil
		case shell.KeyEscape:
			if sh.Mode() == cursor.Normal {
				return true, nil
			}
		}
		sh.HandleKey(ev)
		return false, redraw()
	})
}

// --- Line mode -------------------------------------------------------------

// repl reads program lines and prints the final stack of each. The command
// :trace prints the trace of the last program, :prims lists the primitives
// and :quit leaves.
func repl(sh *shell.Shell) error {
	rl, err := readline.New("tacit> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Welcome to tacit")
	tracer().Infof("Quit with <ctrl>D")
	vm, trace := sh.Evaluate()
	if len(sh.Cursor().Program()) > 0 {
		printStack(vm)
	}
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		switch line = strings.TrimSpace(line); line {
		case "":
			continue
		case ":quit":
			return nil
		case ":trace":
			if trace == nil {
				pterm.Info.Println("no trace")
				continue
			}
			pterm.DefaultTree.WithRoot(pretty.TraceTree(trace)).Render()
			continue
		case ":prims":
			printPrimitives(sh.Primitives())
			continue
		}
		program, err := syntax.Parse(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		sh.Load(program)
		vm, trace = sh.Evaluate()
		printStack(vm)
	}
	println("Good bye!")
	return nil
}

func printPrimitives(prims *runtime.PrimitiveTable) {
	for t := prims; t != nil; t = t.Parent {
		t.Each(func(name string, p *runtime.Primitive) {
			pterm.Println(pterm.FgYellow.Sprintf("%-8s", name) + p.Doc)
		})
	}
}

func printStack(vm *runtime.VM) {
	rows := pretty.VM(vm)
	if len(rows) == 0 {
		pterm.Info.Println("⊥")
		return
	}
	for _, row := range rows {
		pterm.Println(row.String())
	}
}
