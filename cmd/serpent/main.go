// Command serpent is a minimal file-runner around the serpent package.
// It exists only so the module is runnable end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/quietloop/serpent"
	"github.com/quietloop/serpent/compiler"
	"github.com/quietloop/serpent/dis"
	"github.com/quietloop/serpent/parser"
)

func main() {
	var noColor, verbose, showDis bool
	var moduleDir string
	flag.BoolVar(&noColor, "no-color", false, "disable color output")
	flag.BoolVar(&verbose, "v", false, "enable verbose parse/compile/run tracing")
	flag.BoolVar(&showDis, "dis", false, "print the compiled bytecode instead of running it")
	flag.StringVar(&moduleDir, "moduledir", ".", "directory import statements read <name>.py from")
	flag.Parse()

	if noColor {
		color.NoColor = true
	}
	red := color.New(color.FgRed).SprintfFunc()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "%s\n", red("usage: serpent [flags] file.py"))
		os.Exit(1)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", red(err.Error()))
		os.Exit(1)
	}

	if showDis {
		mod, err := parser.Parse(string(src))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", red(err.Error()))
			os.Exit(1)
		}
		code, err := compiler.Compile(mod)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", red(err.Error()))
			os.Exit(1)
		}
		dis.Print(os.Stdout, code)
		return
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	result, err := serpent.Execute(string(src),
		serpent.WithModuleDir(moduleDir),
		serpent.WithLogger(logger),
		serpent.WithDefaultModules(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", red(err.Error()))
		os.Exit(1)
	}
	fmt.Println(result.Inspect())
}
