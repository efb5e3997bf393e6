package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/weave/internal/core"
)

func newTestApp() (*App, *bytes.Buffer, *bytes.Buffer) {
	core.ResetGlobalForTest()
	var stdout, stderr bytes.Buffer
	return &App{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRunInlineProgram(t *testing.T) {
	app, stdout, stderr := newTestApp()

	code := app.Run([]string{"run", "-e", "1 + 2 * 3"})
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "7" {
		t.Errorf("stdout = %q, want %q", got, "7")
	}
}

func TestRunInlineShow(t *testing.T) {
	app, stdout, stderr := newTestApp()

	code := app.Run([]string{"run", "-e", `show "hi" . 0`})
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "hi") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestInlineErrorExitsNonZero(t *testing.T) {
	app, _, stderr := newTestApp()

	code := app.Run([]string{"run", "-e", "missing"})
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr.String(), "Name does not refer to a variable") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunFile(t *testing.T) {
	app, stdout, stderr := newTestApp()

	dir := t.TempDir()
	file := filepath.Join(dir, "main.wpl")
	if err := os.WriteFile(file, []byte(`show (2 * 21)`), 0o644); err != nil {
		t.Fatal(err)
	}

	code := app.Run([]string{"run", file})
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "42" {
		t.Errorf("stdout = %q, want %q", got, "42")
	}
}

func TestRunProjectDirectory(t *testing.T) {
	app, stdout, stderr := newTestApp()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "project.wpl"), []byte(`show "from project"`), 0o644); err != nil {
		t.Fatal(err)
	}

	code := app.Run([]string{"run", dir})
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "from project") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunFileCanImportSiblings(t *testing.T) {
	app, stdout, stderr := newTestApp()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "util.wpl"), []byte("answer : 42"), 0o644); err != nil {
		t.Fatal(err)
	}
	main := filepath.Join(dir, "main.wpl")
	if err := os.WriteFile(main, []byte(`u : import "./util" . show (u answer)`), 0o644); err != nil {
		t.Fatal(err)
	}

	code := app.Run([]string{"run", main})
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "42" {
		t.Errorf("stdout = %q, want %q", got, "42")
	}
}

func TestMissingPathFails(t *testing.T) {
	app, _, stderr := newTestApp()

	code := app.Run([]string{"run", filepath.Join(t.TempDir(), "absent.wpl")})
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if stderr.Len() == 0 {
		t.Error("no error printed")
	}
}

func TestUnknownCommandFails(t *testing.T) {
	app, _, stderr := newTestApp()

	if code := app.Run([]string{"frobnicate"}); code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestNoArgumentsPrintsUsage(t *testing.T) {
	app, _, stderr := newTestApp()

	if code := app.Run(nil); code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr.String(), "Usage") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
