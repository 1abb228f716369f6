package parsetree_test

import (
	"testing"

	"github.com/semetekare/rust2go/internal/parsetree"
	"github.com/semetekare/rust2go/internal/token"
)

func pos(line, col int) token.Position { return token.Position{Line: line, Col: col} }

func TestBinaryLeftFoldShape(t *testing.T) {
	// 1 + 2 + 3 должно строиться как Plus(Plus(1,2),3), не Plus(1,Plus(2,3)).
	one := parsetree.NewIntExpr(pos(1, 1), 1)
	two := parsetree.NewIntExpr(pos(1, 5), 2)
	three := parsetree.NewIntExpr(pos(1, 9), 3)

	inner := parsetree.NewBinaryExpr(pos(1, 3), parsetree.OpPlus, one, two)
	outer := parsetree.NewBinaryExpr(pos(1, 7), parsetree.OpPlus, inner, three)

	got, ok := outer.Left.(*parsetree.BinaryExpr)
	if !ok {
		t.Fatalf("expected left child to be BinaryExpr, got %T", outer.Left)
	}
	if got != inner {
		t.Fatalf("expected left-nested tree, got different node")
	}
	if _, ok := outer.Right.(*parsetree.IntExpr); !ok {
		t.Fatalf("expected right child to be IntExpr, got %T", outer.Right)
	}
}

func TestDispatchWithCast(t *testing.T) {
	recv := parsetree.NewIdentExpr(pos(2, 1), "x")
	d := parsetree.NewDispatchExpr(pos(2, 2), recv, "B", "g", []parsetree.Expr{
		parsetree.NewIntExpr(pos(2, 8), 1),
		parsetree.NewIntExpr(pos(2, 11), 2),
	})
	if d.CastType != "B" {
		t.Fatalf("expected cast type B, got %q", d.CastType)
	}
	if d.Method != "g" || len(d.Args) != 2 {
		t.Fatalf("unexpected dispatch shape: %+v", d)
	}
}

func TestImplicitSelfDispatchHasNoCast(t *testing.T) {
	d := parsetree.NewDispatchExpr(pos(3, 1), parsetree.NewSelfExpr(pos(3, 1)), "", "g", nil)
	if d.CastType != "" {
		t.Fatalf("expected no cast type, got %q", d.CastType)
	}
	if _, ok := d.Receiver.(*parsetree.SelfExpr); !ok {
		t.Fatalf("expected Self receiver, got %T", d.Receiver)
	}
}

func TestLetBindingWithoutInitializer(t *testing.T) {
	binding := parsetree.LetBinding{Pos: pos(4, 5), Name: "x", Type: "Int", Init: nil}
	let := parsetree.NewLetExpr(pos(4, 1), []parsetree.LetBinding{binding}, parsetree.NewIdentExpr(pos(4, 20), "x"))
	if let.Bindings[0].Init != nil {
		t.Fatalf("expected nil initializer to survive construction")
	}
}

func TestBlockAndCaseShapes(t *testing.T) {
	block := parsetree.NewBlockExpr(pos(5, 1), []parsetree.Expr{parsetree.NewIntExpr(pos(5, 2), 1)})
	if len(block.Exprs) != 1 {
		t.Fatalf("expected single-expression block to be legal")
	}

	branch := parsetree.CaseBranch{Pos: pos(6, 1), Name: "v", Type: "Object", Body: parsetree.NewIntExpr(pos(6, 10), 9)}
	c := parsetree.NewCaseExpr(pos(6, 1), parsetree.NewIdentExpr(pos(6, 1), "x"), []parsetree.CaseBranch{branch})
	if len(c.Branches) != 1 {
		t.Fatalf("expected one case branch")
	}
}
