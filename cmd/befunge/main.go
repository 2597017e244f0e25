package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/PartyWumpus/befunge-editor/debug"
	"github.com/PartyWumpus/befunge-editor/engine"
	"github.com/PartyWumpus/befunge-editor/host"
)

func main() {
	var (
		progFile    = flag.String("prog", "", "Path to Befunge source file")
		input       = flag.String("input", "", "Input characters queued for & and ~")
		ticks       = flag.Int("ticks", 10_000_000, "Tick budget for batch runs (0 = unbounded)")
		breaks      = flag.String("breaks", "", "Breakpoints as x,y specs separated by ';'")
		historyCap  = flag.Int("history", -1, "Record rewind history with this many entries (0 = unbounded, -1 = off)")
		interactive = flag.Bool("i", false, "Interactive debugger TUI")
		verbose     = flag.Bool("v", false, "Verbose engine logging")
	)
	flag.Parse()

	if *progFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: befunge -prog <file.bf> [-input chars] [-ticks n] [-breaks x,y;x,y]")
		fmt.Fprintln(os.Stderr, "       befunge -prog <file.bf> -i  (interactive debugger)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			debug.SetLogger(logger)
		}
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*progFile, *input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*progFile, *input, *breaks, *ticks, *historyCap); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(progFile, input, breakSpecs string, ticks, historyCap int) error {
	src, err := os.ReadFile(progFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	m := engine.New()
	m.Load(string(src))

	ch := host.NewBuffered()
	ch.ProvideString(input)

	ctl := debug.NewController(m, ch)
	if historyCap >= 0 {
		ctl.EnableHistory(historyCap)
	}

	if breakSpecs != "" {
		for _, spec := range strings.Split(breakSpecs, ";") {
			at, err := debug.ParseTarget(spec)
			if err != nil {
				return err
			}
			ctl.SetBreakpoint(at, false)
		}
	}

	res, n := ctl.RunUntil(ticks)

	if out := ch.Output(); out != "" {
		fmt.Print(out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Println()
		}
	}
	if fb := ch.Framebuffer(); fb != nil {
		w, h := fb.Size()
		fmt.Printf("framebuffer: %dx%d, %d frame(s) presented\n", w, h, fb.Presents())
	}

	switch res.Outcome {
	case debug.Halted:
		fmt.Printf("halted after %d ticks\n", n)
	case debug.Break:
		fmt.Printf("breakpoint at %v after %d ticks\n", res.At, n)
	case debug.AwaitingInput:
		fmt.Printf("stopped after %d ticks: program wants input (use -input)\n", n)
	case debug.LimitReached:
		fmt.Printf("tick budget of %d exhausted at %v\n", ticks, m.Position())
	}
	return nil
}
