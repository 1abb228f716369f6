package symtab_test

import (
	"strings"
	"testing"

	"github.com/semetekare/rust2go/internal/inherit"
	"github.com/semetekare/rust2go/internal/lexer"
	"github.com/semetekare/rust2go/internal/parser"
	"github.com/semetekare/rust2go/internal/semtree"
	"github.com/semetekare/rust2go/internal/source"
	"github.com/semetekare/rust2go/internal/symtab"
)

func buildValidated(t *testing.T, src string) *semtree.ProgramNode {
	t.Helper()
	toks := lexer.LexAll(source.NewFromString(src))
	prog, perrs := parser.ParseProgram(toks)
	if len(perrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", perrs)
	}
	sem, cerrs := semtree.Convert(prog)
	if len(cerrs) != 0 {
		t.Fatalf("unexpected conversion errors: %v", cerrs)
	}
	if errs := inherit.Validate(sem); len(errs) != 0 {
		t.Fatalf("unexpected inheritance errors: %v", errs)
	}
	return sem
}

func TestPopulateDefinesClassNamesAsTypesInGlobalScope(t *testing.T) {
	sem := buildValidated(t, "class A { };")
	table, errs := symtab.Populate(sem)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	sym, ok := table.Lookup("A")
	if !ok || sym.Type != "A" {
		t.Fatalf("expected class A registered as a type symbol, got %+v ok=%v", sym, ok)
	}
	if _, ok := table.Lookup(inherit.Object); !ok {
		t.Fatalf("expected seeded builtin Object registered as a type symbol")
	}
}

func TestPopulateDefinesAttributesAndFormals(t *testing.T) {
	sem := buildValidated(t, "class A { x : Int <- 1; f(y : Int) : Int { y }; };")
	_, errs := symtab.Populate(sem)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestPopulateDuplicateAttributeReported(t *testing.T) {
	sem := buildValidated(t, "class A { x : Int <- 1; x : Int <- 2; };")
	_, errs := symtab.Populate(sem)
	found := false
	for _, err := range errs {
		if strings.Contains(err.Error(), "already declared") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected duplicate attribute error, got %v", errs)
	}
}

func TestPopulateDuplicateFormalReported(t *testing.T) {
	sem := buildValidated(t, "class A { f(x : Int, x : Int) : Int { x }; };")
	_, errs := symtab.Populate(sem)
	found := false
	for _, err := range errs {
		if strings.Contains(err.Error(), "already declared") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected duplicate formal error, got %v", errs)
	}
}

func TestPopulateResolvesSelfTypeAttribute(t *testing.T) {
	sem := buildValidated(t, "class A { me : SELF_TYPE <- self; };")
	_, errs := symtab.Populate(sem)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors resolving SELF_TYPE attribute: %v", errs)
	}
}
