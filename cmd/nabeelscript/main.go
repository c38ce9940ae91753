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

	nabeelscript "github.com/Nabeelgit/NabeelScript"
)

const (
	appName     = "nabeelscript"
	historyFile = ".nabeelscript_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("NabeelScript %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", nabeelscript.Version)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(nabeelscript.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`NabeelScript %s (built %s)

Usage:
  %s run <file.nb>     Run a script.
  %s repl              Start the REPL.
  %s version           Print the compiled version.

`, nabeelscript.Version, nabeelscript.BuildDate, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.nb>\n", appName)
		return 2
	}

	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	ip := nabeelscript.NewInterpreter()
	if err := ip.RunSource(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, nabeelscript.WrapErrorWithName(err, file, string(src)).Error())
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
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

	ip := nabeelscript.NewInterpreter()

	ln.SetCompleter(func(line string) []string {
		word := line
		if i := strings.LastIndexAny(line, " \t=([,"); i >= 0 {
			word = line[i+1:]
		}
		prefix := line[:len(line)-len(word)]
		var out []string
		for _, cand := range append(nabeelscript.BuiltinNames(), ip.Globals.Names()...) {
			if strings.HasPrefix(cand, word) {
				out = append(out, prefix+cand)
			}
		}
		return out
	})

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.EqualFold(trimmed, ":quit") {
				return 0
			}
			fmt.Printf("unknown command. Type :quit to exit.\n")
			continue
		}

		if err := ip.RunSource(code); err != nil {
			fmt.Fprintln(os.Stderr, red(nabeelscript.WrapErrorWithSource(err, code).Error()))
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readByParseProbe accumulates lines until the input parses, or fails with an
// error that is not just "input ended too early".
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
			// Ctrl+C: drop the partial input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := nabeelscript.ParseInteractive(src); perr != nil && nabeelscript.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
