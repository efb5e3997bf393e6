package convert

import (
	"math/big"
	"testing"

	"github.com/funvibe/weave/internal/ast"
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/primitives"
)

func TestNameNodeKeepsItsLocation(t *testing.T) {
	loc := diagnostics.AtSource("main.wpl", 2, 4)
	v, err := Node(&ast.Name{Text: "x", Location: loc})
	if err != nil {
		t.Fatal(err)
	}

	name, rs := core.GetPrimitive[primitives.Name](v, core.NewEnvironment(), diagnostics.NewStack())
	if rs != nil {
		t.Fatal(rs)
	}
	if name.Text != "x" {
		t.Errorf("text = %q", name.Text)
	}
	if name.Location == nil || name.Location.String() != "main.wpl:2:4" {
		t.Errorf("location = %v", name.Location)
	}
}

func TestNumberNode(t *testing.T) {
	v, err := Node(&ast.Number{Text: "3.25"})
	if err != nil {
		t.Fatal(err)
	}

	n, rs := core.GetPrimitive[primitives.Number](v, core.NewEnvironment(), diagnostics.NewStack())
	if rs != nil {
		t.Fatal(rs)
	}
	if n.Value.Cmp(big.NewRat(13, 4)) != 0 {
		t.Errorf("number = %s", n.Value.RatString())
	}
}

func TestInvalidNumberLiteralFails(t *testing.T) {
	if _, err := Node(&ast.Number{Text: "12..5"}); err == nil {
		t.Error("expected an error for an invalid numeral")
	}
}

func TestModuleRootConvertsToModuleBlock(t *testing.T) {
	v, rs := Module("", "x : 1")
	if rs != nil {
		t.Fatal(rs)
	}
	if _, rs := core.GetPrimitive[primitives.ModuleBlock](v, core.NewEnvironment(), diagnostics.NewStack()); rs != nil {
		t.Errorf("module root is not a ModuleBlock: %v", rs)
	}
}

func TestParseErrorSurfacesAsReturnState(t *testing.T) {
	_, rs := Module("", `"unterminated`)
	if rs == nil {
		t.Fatal("expected a parse error")
	}
	if rs.Kind != diagnostics.ReturnKindError {
		t.Errorf("kind = %d", rs.Kind)
	}
}
