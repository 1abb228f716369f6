package semtree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/semetekare/rust2go/internal/lexer"
	"github.com/semetekare/rust2go/internal/parser"
	"github.com/semetekare/rust2go/internal/semtree"
	"github.com/semetekare/rust2go/internal/source"
)

func convertSource(t *testing.T, src string) *semtree.ProgramNode {
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
	return sem
}

// exprCmpOpts whitelists the unexported `pos` field present on every
// concrete Expr implementation so cmp.Diff can descend into expression
// trees embedded inside ClassNode/MethodNode/AttrNode.
var exprCmpOpts = cmp.Options{
	cmp.AllowUnexported(
		semtree.IdentExpr{}, semtree.SelfExpr{}, semtree.IntExpr{},
		semtree.StringExpr{}, semtree.BoolExpr{}, semtree.NewExpr{},
		semtree.UnaryExpr{}, semtree.BinaryExpr{}, semtree.AssignExpr{},
		semtree.DispatchExpr{}, semtree.ConditionalExpr{}, semtree.LoopExpr{},
		semtree.CaseExpr{}, semtree.BlockExpr{}, semtree.LetExpr{},
	),
}

func TestConvertPreservesClassShape(t *testing.T) {
	sem := convertSource(t, "class A inherits B { x : Int <- 1; f() : Int { x }; };")
	cls, ok := sem.Classes["A"]
	if !ok {
		t.Fatalf("expected class A in program")
	}
	if cls.Parent != "B" {
		t.Fatalf("expected parent B, got %q", cls.Parent)
	}
	if len(cls.Attrs) != 1 || cls.Attrs[0].Name != "x" {
		t.Fatalf("expected attribute x, got %+v", cls.Attrs)
	}
	if len(cls.Methods) != 1 || cls.Methods[0].Name != "f" {
		t.Fatalf("expected method f, got %+v", cls.Methods)
	}
}

func TestConvertInjectsSelfForImplicitDispatch(t *testing.T) {
	sem := convertSource(t, "class A { f() : Int { g() }; };")
	body := sem.Classes["A"].Methods[0].Body
	d, ok := body.(*semtree.DispatchExpr)
	if !ok {
		t.Fatalf("expected DispatchExpr, got %T", body)
	}
	if _, ok := d.Receiver.(*semtree.SelfExpr); !ok {
		t.Fatalf("expected Self receiver, got %T", d.Receiver)
	}
}

func TestConvertSelfIdentBecomesSelfExpr(t *testing.T) {
	sem := convertSource(t, "class A { f() : Object { self }; };")
	body := sem.Classes["A"].Methods[0].Body
	if _, ok := body.(*semtree.SelfExpr); !ok {
		t.Fatalf("expected SelfExpr for bare 'self', got %T", body)
	}
}

func TestConvertDuplicateClassNameReported(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString("class A { }; class A { };"))
	prog, perrs := parser.ParseProgram(toks)
	if len(perrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", perrs)
	}
	_, cerrs := semtree.Convert(prog)
	if len(cerrs) == 0 {
		t.Fatalf("expected duplicate class error")
	}
}

func TestConvertTwiceYieldsIdenticalTrees(t *testing.T) {
	a := convertSource(t, "class A { x : Int <- 1; }; ")
	b := convertSource(t, "class A { x : Int <- 1; }; ")
	if diff := cmp.Diff(a, b, exprCmpOpts); diff != "" {
		t.Fatalf("expected identical conversions of identical source, diff:\n%s", diff)
	}
}
