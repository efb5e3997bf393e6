// Package config carries the handful of constants the CLI driver and the
// module resolver share.
package config

// Version is the current weave version.
// Set at build time via -ldflags or by writing to this file.
var Version = "0.1.0"

const (
	// SourceFileExt is the extension of weave source files.
	SourceFileExt = ".wpl"

	// ProjectFileName is the entry file loaded when a directory is run.
	ProjectFileName = "project.wpl"
)

// HasSourceExt reports whether path ends with the source extension.
func HasSourceExt(path string) bool {
	return len(path) >= len(SourceFileExt) && path[len(path)-len(SourceFileExt):] == SourceFileExt
}
