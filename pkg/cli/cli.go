// Package cli is the terminal front end: it parses the `run` subcommand,
// sets up the global environment, feeds programs through the pipeline, and
// renders errors.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/weave/internal/builtins"
	"github.com/funvibe/weave/internal/config"
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/modules"
	"github.com/funvibe/weave/internal/pipeline"
)

const usage = `The weave interpreter %s

Usage:
  weave run [-e <code>] [path]

Run a weave program: a file, a directory containing %s, or an
inline string passed with -e. With no path, the current directory's
project is loaded.
`

// App owns the driver's streams so tests can capture output.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Main is the entry point used by cmd/weave: real streams, real exit code.
func Main(args []string) int {
	app := &App{Stdout: os.Stdout, Stderr: os.Stderr}
	return app.Run(args)
}

// Run dispatches the subcommand and returns the process exit code.
func (app *App) Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintf(app.Stderr, usage, config.Version, config.ProjectFileName)
		return 1
	}

	switch args[0] {
	case "run":
		return app.runCommand(args[1:])
	default:
		fmt.Fprintf(app.Stderr, "unknown command %q\n", args[0])
		fmt.Fprintf(app.Stderr, usage, config.Version, config.ProjectFileName)
		return 1
	}
}

func (app *App) runCommand(args []string) int {
	var inline string
	var path string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-e":
			if i+1 >= len(args) {
				fmt.Fprintln(app.Stderr, "-e requires an argument")
				return 1
			}
			inline = args[i+1]
			i++
		default:
			if path != "" {
				fmt.Fprintf(app.Stderr, "unexpected argument %q\n", args[i])
				return 1
			}
			path = args[i]
		}
	}

	app.setup()

	stack := diagnostics.NewStack()
	if err := app.execute(inline, path, stack); err != nil {
		app.printError(err)
		return 1
	}
	return 0
}

// setup installs the standard names, the module system, and the default
// show sink on the global environment.
func (app *App) setup() {
	global := core.Global()
	builtins.Init(global)
	modules.Install(global)
	*core.Get(global, core.ShowKey) = func(text string) {
		fmt.Fprintln(app.Stdout, text)
	}
}

func (app *App) execute(inline, path string, stack diagnostics.Stack) *diagnostics.Error {
	if inline != "" {
		return app.executeInline(inline, stack)
	}

	target := path
	if target == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return diagnostics.NewError(err.Error(), stack)
		}
		target = cwd
	}

	info, err := os.Stat(target)
	if err != nil {
		return diagnostics.NewError(err.Error(), stack)
	}

	var rs *diagnostics.ReturnState
	if info.IsDir() {
		_, rs = modules.LoadProject(filepath.Join(target, config.ProjectFileName), stack)
	} else {
		modules.SetProjectRoot(core.Global(), filepath.Dir(target))
		_, rs = modules.ImportPath(target, stack)
	}
	if rs != nil {
		return rs.IntoError(stack)
	}
	return nil
}

// executeInline evaluates -e input and prints the result's Text rendering,
// when it has one.
func (app *App) executeInline(code string, stack diagnostics.Stack) *diagnostics.Error {
	env := core.ChildOf(core.Global())

	ctx := pipeline.New(pipeline.Parse{}, pipeline.Convert{}, pipeline.Evaluate{}).Run(&pipeline.Context{
		Source: code,
		Inline: true,
		Env:    env,
		Stack:  stack,
	})
	if ctx.Err != nil {
		return ctx.Err.IntoError(stack)
	}

	text, present, rs := core.GetTraitIfPresent[core.TextValue](ctx.Result, core.TextTraitID, env, stack)
	if rs != nil {
		return rs.IntoError(stack)
	}
	if present {
		fmt.Fprintln(app.Stdout, text.Text)
	}
	return nil
}

// printError renders the message and stack, red when stderr is a real
// terminal.
func (app *App) printError(err *diagnostics.Error) {
	message := err.Error()
	if f, ok := app.Stderr.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		message = "\x1b[31m" + message + "\x1b[0m"
	}
	fmt.Fprintln(app.Stderr, message)
}
