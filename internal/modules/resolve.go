// Package modules resolves module names to filesystem paths, imports
// source files as first-class Module values, and installs the `import`
// builtin together with the `lib/*` virtual modules.
package modules

import (
	"path/filepath"
	"strings"

	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
)

// ProjectRootKey and CurrentFileKey are the two resolver slots the driver
// sets before evaluation. Children start with their own empty slot
// (merge = take new); lookup walks the parent chain explicitly instead, so
// an inner scope that sets its own current_file shadows the outer one
// without overwriting it.
var ProjectRootKey = core.NewEnvironmentKey[string](
	func() string { return "" },
	core.TakeNew[string],
	true,
)

var CurrentFileKey = core.NewEnvironmentKey[string](
	func() string { return "" },
	core.TakeNew[string],
	true,
)

// SetProjectRoot records the project root directory in env's own slot.
func SetProjectRoot(env *core.Environment, path string) {
	*core.Get(env, ProjectRootKey) = path
}

// SetCurrentFile records the file currently being evaluated in env's own
// slot.
func SetCurrentFile(env *core.Environment, path string) {
	*core.Get(env, CurrentFileKey) = path
}

// ProjectRoot walks the scope chain for the nearest project root, raising
// when no scope has one set.
func ProjectRoot(env *core.Environment, stack diagnostics.Stack) (string, *diagnostics.ReturnState) {
	for e := env; e != nil; e = e.Parent() {
		if path := *core.Get(e, ProjectRootKey); path != "" {
			return path, nil
		}
	}
	return "", diagnostics.ErrorStatef(stack, "Project root is not set")
}

// CurrentFile walks the scope chain for the nearest current file, raising
// when no scope has one set.
func CurrentFile(env *core.Environment, stack diagnostics.Stack) (string, *diagnostics.ReturnState) {
	for e := env; e != nil; e = e.Parent() {
		if path := *core.Get(e, CurrentFileKey); path != "" {
			return path, nil
		}
	}
	return "", diagnostics.ErrorStatef(stack, "Current file is not set")
}

// Resolve turns a module name into a filesystem path. Names beginning
// with "./" or "../" resolve relative to the directory of the current
// file; everything else resolves relative to the project root.
func Resolve(moduleName string, env *core.Environment, stack diagnostics.Stack) (string, *diagnostics.ReturnState) {
	var base string
	var rs *diagnostics.ReturnState

	if strings.HasPrefix(moduleName, "./") || strings.HasPrefix(moduleName, "../") {
		var current string
		current, rs = CurrentFile(env, stack)
		if rs != nil {
			return "", rs
		}
		base = filepath.Dir(current)
	} else {
		base, rs = ProjectRoot(env, stack)
		if rs != nil {
			return "", rs
		}
	}

	path, err := filepath.Abs(filepath.Join(base, moduleName))
	if err != nil {
		return "", diagnostics.ErrorStatef(stack, "Error resolving path: %s", err)
	}
	return path, nil
}
