// Package semtree определяет декорированное (semantic-phase) дерево:
// классы, особенности и выражения после привязки имён, в отличие от
// parsetree, которое хранит только синтаксическую структуру (§4.6).
//
// ClassNode хранит родителя по ИМЕНИ, а не владеющим указателем: граф
// наследования образует циклы по построению до валидации (inherit
// проверяет их и сам разрывает владение), так что указатель родитель→ребёнок
// в обе стороны создал бы утечку владения в Go и усложнил обход (design
// note §9).
package semtree

import (
	"fmt"

	"github.com/semetekare/rust2go/internal/token"
)

// Expr — декорированное выражение; структурно совпадает с parsetree.Expr,
// но принадлежит отдельному дереву, которое проходит через символьную
// таблицу и анализатор наследования.
type Expr interface {
	Pos() token.Position
	String() string
	exprNode()
}

type BinOp = int

const (
	OpPlus = iota
	OpMinus
	OpMultiply
	OpDivide
	OpLessThan
	OpLessThanOrEqual
	OpEqual
)

type UnaryKind = int

const (
	UnaryNot = iota
	UnaryNegate
	UnaryIsVoid
)

type IdentExpr struct {
	pos  token.Position
	Name string
}

func NewIdentExpr(pos token.Position, name string) *IdentExpr { return &IdentExpr{pos: pos, Name: name} }
func (e *IdentExpr) Pos() token.Position                       { return e.pos }
func (e *IdentExpr) String() string                            { return e.Name }
func (e *IdentExpr) exprNode()                                 {}

type SelfExpr struct{ pos token.Position }

func NewSelfExpr(pos token.Position) *SelfExpr { return &SelfExpr{pos: pos} }
func (e *SelfExpr) Pos() token.Position        { return e.pos }
func (e *SelfExpr) String() string             { return "self" }
func (e *SelfExpr) exprNode()                  {}

type IntExpr struct {
	pos token.Position
	Val int32
}

func NewIntExpr(pos token.Position, v int32) *IntExpr { return &IntExpr{pos: pos, Val: v} }
func (e *IntExpr) Pos() token.Position                { return e.pos }
func (e *IntExpr) String() string                     { return fmt.Sprintf("%d", e.Val) }
func (e *IntExpr) exprNode()                          {}

type StringExpr struct {
	pos token.Position
	Val string
}

func NewStringExpr(pos token.Position, v string) *StringExpr { return &StringExpr{pos: pos, Val: v} }
func (e *StringExpr) Pos() token.Position                     { return e.pos }
func (e *StringExpr) String() string                          { return fmt.Sprintf("%q", e.Val) }
func (e *StringExpr) exprNode()                                {}

type BoolExpr struct {
	pos token.Position
	Val bool
}

func NewBoolExpr(pos token.Position, v bool) *BoolExpr { return &BoolExpr{pos: pos, Val: v} }
func (e *BoolExpr) Pos() token.Position                { return e.pos }
func (e *BoolExpr) String() string                     { return fmt.Sprintf("%t", e.Val) }
func (e *BoolExpr) exprNode()                          {}

type NewExpr struct {
	pos  token.Position
	Type string
}

func NewNewExpr(pos token.Position, typ string) *NewExpr { return &NewExpr{pos: pos, Type: typ} }
func (e *NewExpr) Pos() token.Position                   { return e.pos }
func (e *NewExpr) String() string                        { return fmt.Sprintf("new %s", e.Type) }
func (e *NewExpr) exprNode()                             {}

type UnaryExpr struct {
	pos  token.Position
	Kind UnaryKind
	Expr Expr
}

func NewUnaryExpr(pos token.Position, kind UnaryKind, expr Expr) *UnaryExpr {
	return &UnaryExpr{pos: pos, Kind: kind, Expr: expr}
}
func (e *UnaryExpr) Pos() token.Position { return e.pos }
func (e *UnaryExpr) String() string      { return fmt.Sprintf("unary(%d, %s)", e.Kind, e.Expr) }
func (e *UnaryExpr) exprNode()           {}

type BinaryExpr struct {
	pos         token.Position
	Op          BinOp
	Left, Right Expr
}

func NewBinaryExpr(pos token.Position, op BinOp, left, right Expr) *BinaryExpr {
	return &BinaryExpr{pos: pos, Op: op, Left: left, Right: right}
}
func (e *BinaryExpr) Pos() token.Position { return e.pos }
func (e *BinaryExpr) String() string      { return fmt.Sprintf("(%s op%d %s)", e.Left, e.Op, e.Right) }
func (e *BinaryExpr) exprNode()           {}

type AssignExpr struct {
	pos  token.Position
	Name string
	Expr Expr
}

func NewAssignExpr(pos token.Position, name string, expr Expr) *AssignExpr {
	return &AssignExpr{pos: pos, Name: name, Expr: expr}
}
func (e *AssignExpr) Pos() token.Position { return e.pos }
func (e *AssignExpr) String() string      { return fmt.Sprintf("%s <- %s", e.Name, e.Expr) }
func (e *AssignExpr) exprNode()           {}

// DispatchExpr — вызов метода; Receiver никогда не nil в декорированном
// дереве — неявный self-вызов уже разрешён в Self (§4.6).
type DispatchExpr struct {
	pos      token.Position
	Receiver Expr
	CastType string
	Method   string
	Args     []Expr
}

func NewDispatchExpr(pos token.Position, receiver Expr, castType, method string, args []Expr) *DispatchExpr {
	return &DispatchExpr{pos: pos, Receiver: receiver, CastType: castType, Method: method, Args: args}
}
func (e *DispatchExpr) Pos() token.Position { return e.pos }
func (e *DispatchExpr) String() string {
	return fmt.Sprintf("%s.%s(%d args)", e.Receiver, e.Method, len(e.Args))
}
func (e *DispatchExpr) exprNode() {}

type ConditionalExpr struct {
	pos              token.Position
	Pred, Then, Else Expr
}

func NewConditionalExpr(pos token.Position, pred, then, els Expr) *ConditionalExpr {
	return &ConditionalExpr{pos: pos, Pred: pred, Then: then, Else: els}
}
func (e *ConditionalExpr) Pos() token.Position { return e.pos }
func (e *ConditionalExpr) String() string      { return fmt.Sprintf("if %s then %s else %s", e.Pred, e.Then, e.Else) }
func (e *ConditionalExpr) exprNode()           {}

type LoopExpr struct {
	pos        token.Position
	Pred, Body Expr
}

func NewLoopExpr(pos token.Position, pred, body Expr) *LoopExpr {
	return &LoopExpr{pos: pos, Pred: pred, Body: body}
}
func (e *LoopExpr) Pos() token.Position { return e.pos }
func (e *LoopExpr) String() string      { return fmt.Sprintf("while %s loop %s", e.Pred, e.Body) }
func (e *LoopExpr) exprNode()           {}

type CaseBranch struct {
	Pos  token.Position
	Name string
	Type string
	Body Expr
}

type CaseExpr struct {
	pos      token.Position
	Subject  Expr
	Branches []CaseBranch
}

func NewCaseExpr(pos token.Position, subject Expr, branches []CaseBranch) *CaseExpr {
	return &CaseExpr{pos: pos, Subject: subject, Branches: branches}
}
func (e *CaseExpr) Pos() token.Position { return e.pos }
func (e *CaseExpr) String() string      { return fmt.Sprintf("case %s of %d branches", e.Subject, len(e.Branches)) }
func (e *CaseExpr) exprNode()           {}

type BlockExpr struct {
	pos   token.Position
	Exprs []Expr
}

func NewBlockExpr(pos token.Position, exprs []Expr) *BlockExpr {
	return &BlockExpr{pos: pos, Exprs: exprs}
}
func (e *BlockExpr) Pos() token.Position { return e.pos }
func (e *BlockExpr) String() string      { return fmt.Sprintf("block(%d)", len(e.Exprs)) }
func (e *BlockExpr) exprNode()           {}

type LetBinding struct {
	Pos  token.Position
	Name string
	Type string
	Init Expr
}

type LetExpr struct {
	pos      token.Position
	Bindings []LetBinding
	Body     Expr
}

func NewLetExpr(pos token.Position, bindings []LetBinding, body Expr) *LetExpr {
	return &LetExpr{pos: pos, Bindings: bindings, Body: body}
}
func (e *LetExpr) Pos() token.Position { return e.pos }
func (e *LetExpr) String() string      { return fmt.Sprintf("let(%d bindings) in %s", len(e.Bindings), e.Body) }
func (e *LetExpr) exprNode()           {}

// Formal — формальный параметр метода.
type Formal struct {
	Pos  token.Position
	Name string
	Type string
}

// MethodNode — декорированное объявление метода.
type MethodNode struct {
	Pos     token.Position
	Name    string
	Formals []Formal
	RetType string
	Body    Expr
}

// AttrNode — декорированное объявление атрибута.
type AttrNode struct {
	Pos  token.Position
	Name string
	Type string
	Init Expr
}

// ClassNode — декорированное объявление класса. Parent хранится по имени;
// ClassNode не указывает на свой ClassNode-родитель напрямую (см. комментарий
// к пакету). Children заполняется анализатором наследования (internal/inherit)
// после валидации DAG.
type ClassNode struct {
	Pos      token.Position
	Name     string
	Parent   string
	Methods  []*MethodNode
	Attrs    []*AttrNode
	Children []string
}

// ProgramNode — декорированная программа: все классы, проиндексированные по
// имени (§4.6).
type ProgramNode struct {
	Classes map[string]*ClassNode
}
