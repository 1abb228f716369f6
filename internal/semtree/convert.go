// Convert переносит разбор-фазное дерево (internal/parsetree) в
// декорированное дерево (§4.6). На этом шаге neявный self-получатель уже
// разрешён парсером (internal/parser/term.go), так что конвертация —
// структурное отображение один-в-один; единственная дополнительная
// проверка — отсутствие повторного объявления класса с тем же именем,
// поскольку ProgramNode индексирует классы по имени и не может хранить дубль.
package semtree

import (
	"fmt"

	"github.com/semetekare/rust2go/internal/parsetree"
)

// Convert строит ProgramNode из разобранной программы и список ошибок
// конвертации (дубликаты имён классов).
func Convert(prog *parsetree.Program) (*ProgramNode, []error) {
	out := &ProgramNode{Classes: make(map[string]*ClassNode, len(prog.Classes))}
	var errs []error

	for _, cls := range prog.Classes {
		if _, dup := out.Classes[cls.Name]; dup {
			errs = append(errs, fmt.Errorf("class %s redeclared at %s", cls.Name, cls.Pos))
			continue
		}
		out.Classes[cls.Name] = convertClass(cls)
	}

	return out, errs
}

func convertClass(cls parsetree.Class) *ClassNode {
	node := &ClassNode{Pos: cls.Pos, Name: cls.Name, Parent: cls.Parent}
	for _, feat := range cls.Features {
		switch f := feat.(type) {
		case *parsetree.Method:
			node.Methods = append(node.Methods, convertMethod(f))
		case *parsetree.Attr:
			node.Attrs = append(node.Attrs, convertAttr(f))
		}
	}
	return node
}

func convertMethod(m *parsetree.Method) *MethodNode {
	formals := make([]Formal, len(m.Formals))
	for i, f := range m.Formals {
		formals[i] = Formal{Pos: f.Pos, Name: f.Name, Type: f.Type}
	}
	return &MethodNode{
		Pos:     m.Pos,
		Name:    m.Name,
		Formals: formals,
		RetType: m.RetType,
		Body:    convertExpr(m.Body),
	}
}

func convertAttr(a *parsetree.Attr) *AttrNode {
	var init Expr
	if a.Init != nil {
		init = convertExpr(a.Init)
	}
	return &AttrNode{Pos: a.Pos, Name: a.Name, Type: a.Type, Init: init}
}

func convertExpr(e parsetree.Expr) Expr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *parsetree.IdentExpr:
		if n.Name == "self" {
			return NewSelfExpr(n.Pos())
		}
		return NewIdentExpr(n.Pos(), n.Name)
	case *parsetree.SelfExpr:
		return NewSelfExpr(n.Pos())
	case *parsetree.IntExpr:
		return NewIntExpr(n.Pos(), n.Val)
	case *parsetree.StringExpr:
		return NewStringExpr(n.Pos(), n.Val)
	case *parsetree.BoolExpr:
		return NewBoolExpr(n.Pos(), n.Val)
	case *parsetree.NewExpr:
		return NewNewExpr(n.Pos(), n.Type)
	case *parsetree.UnaryExpr:
		return NewUnaryExpr(n.Pos(), UnaryKind(n.Kind), convertExpr(n.Expr))
	case *parsetree.BinaryExpr:
		return NewBinaryExpr(n.Pos(), BinOp(n.Op), convertExpr(n.Left), convertExpr(n.Right))
	case *parsetree.AssignExpr:
		return NewAssignExpr(n.Pos(), n.Name, convertExpr(n.Expr))
	case *parsetree.DispatchExpr:
		args := make([]Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = convertExpr(a)
		}
		return NewDispatchExpr(n.Pos(), convertExpr(n.Receiver), n.CastType, n.Method, args)
	case *parsetree.ConditionalExpr:
		return NewConditionalExpr(n.Pos(), convertExpr(n.Pred), convertExpr(n.Then), convertExpr(n.Else))
	case *parsetree.LoopExpr:
		return NewLoopExpr(n.Pos(), convertExpr(n.Pred), convertExpr(n.Body))
	case *parsetree.CaseExpr:
		branches := make([]CaseBranch, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = CaseBranch{Pos: b.Pos, Name: b.Name, Type: b.Type, Body: convertExpr(b.Body)}
		}
		return NewCaseExpr(n.Pos(), convertExpr(n.Subject), branches)
	case *parsetree.BlockExpr:
		exprs := make([]Expr, len(n.Exprs))
		for i, sub := range n.Exprs {
			exprs[i] = convertExpr(sub)
		}
		return NewBlockExpr(n.Pos(), exprs)
	case *parsetree.LetExpr:
		bindings := make([]LetBinding, len(n.Bindings))
		for i, b := range n.Bindings {
			var init Expr
			if b.Init != nil {
				init = convertExpr(b.Init)
			}
			bindings[i] = LetBinding{Pos: b.Pos, Name: b.Name, Type: b.Type, Init: init}
		}
		return NewLetExpr(n.Pos(), bindings, convertExpr(n.Body))
	default:
		panic(fmt.Sprintf("semtree.Convert: unhandled parsetree.Expr %T", e))
	}
}
