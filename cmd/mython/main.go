// Command mython is the host program: it runs a script file (or stdin) and
// offers an interactive REPL, both built directly on the mython package's
// public Interpreter.
//
// Grounded closely on the teacher's cmd/msg/main.go: the same command
// dispatch shape, the same liner-backed REPL with a persistent history file
// and Ctrl+C/Ctrl+D handling, and the same ANSI colorize-on-print habit.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/daios-ai/mython"
)

const (
	appName     = "mython"
	historyFile = ".mython_history"
	promptMain  = ">>> "
	promptCont  = "... "
)

var banner = "Mython REPL\nCtrl+C cancels input, Ctrl+D exits."

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Mython — a small interpreted teaching language

Usage:
  %s run <file.my>   Run a script (reads stdin if <file.my> is omitted)
  %s repl            Start the interactive REPL

`, appName, appName)
}

// --- run ---------------------------------------------------------------

func cmdRun(args []string) int {
	var src []byte
	var err error
	name := "<stdin>"
	if len(args) > 0 {
		name = args[0]
		src, err = os.ReadFile(name)
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, name, err)
		return 1
	}

	ip := mython.NewInterpreter(os.Stdout)
	if _, err := ip.Run(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, red(mython.WrapErrorWithSource(err, string(src)).Error()))
		return 1
	}
	return 0
}

// --- repl ----------------------------------------------------------------

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := mython.NewInterpreter(os.Stdout)

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		v, err := ip.EvalStatement(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(mython.WrapErrorWithSource(err, code).Error()))
			continue
		}
		if !v.IsNone() {
			s, _ := mython.Format(v, mython.NewContext(os.Stdout))
			fmt.Println(green(s))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe accumulates lines until they parse as a complete
// statement, re-prompting with promptCont whenever the accumulated input is
// merely unterminated (an open class/if/method body) rather than malformed.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		b.WriteByte('\n')

		src := b.String()
		_, perr := mython.ParseProgram(src)
		if perr == nil {
			return src, true
		}
		if mython.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
