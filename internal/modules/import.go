package modules

import (
	"os"
	"path/filepath"

	"github.com/funvibe/weave/internal/config"
	"github.com/funvibe/weave/internal/convert"
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/primitives"
)

// ImportPath reads and evaluates the source file at path, returning the
// resulting Module value. The file evaluates in a child of the global
// environment whose current_file slot points at it, so relative imports
// inside the file resolve against its own directory.
func ImportPath(path string, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
	src, err := os.ReadFile(path)
	if err != nil {
		return core.Value{}, diagnostics.ErrorStatef(stack, "Error importing: %s", err)
	}

	program, rs := convert.Module(path, string(src))
	if rs != nil {
		return core.Value{}, rs
	}

	env := core.ChildOf(core.Global())
	SetCurrentFile(env, path)

	stack = stack.Add("Importing " + path)
	return core.Evaluate(program, env, stack)
}

// LoadProject sets the project root to projectFile's directory and imports
// projectFile itself (conventionally <dir>/project.wpl).
func LoadProject(projectFile string, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
	SetProjectRoot(core.Global(), filepath.Dir(projectFile))
	return ImportPath(projectFile, stack)
}

// Install binds the `import` builtin: its argument evaluates to a Text
// module name, which resolves either to a virtual module (lib/...) or,
// through the path resolver, to a source file imported on the spot.
func Install(env *core.Environment) {
	core.Define(env, "import", primitives.FunctionOf(func(argument core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		evaluated, rs := core.Evaluate(argument, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		name, rs := core.GetTrait[core.TextValue](evaluated, core.TextTraitID, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}

		if virtual, ok := VirtualModule(name.Text); ok {
			return virtual, nil
		}

		path, rs := Resolve(name.Text, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		if !config.HasSourceExt(path) {
			path += config.SourceFileExt
		}
		return ImportPath(path, stack)
	}))
}
