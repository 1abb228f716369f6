// Пакет parsetree определяет разбор-фазное (pre-semantic) AST: классы,
// формальные параметры, особенности (features) и выражения (§3, §4.4–§4.6).
//
// Expr — запечатанный интерфейс: единственный способ получить значение,
// реализующее Expr, — через конструкторы этого пакета. Промежуточные
// "частичные" узлы (PartialBinary, PartialAssign, PartialDispatch,
// PartialCastDispatch из §3) сюда сознательно не включены: они существуют
// только внутри алгоритма редукции в internal/parser и реализуют отдельный,
// непубличный интерфейс того пакета, так что ни один Partial-узел не может
// попасть в дерево, возвращаемое парсером (инвариант §3, design note §9).
package parsetree

import "github.com/semetekare/rust2go/internal/token"

// Expr — интерфейс для всех завершённых (не частичных) выражений.
type Expr interface {
	Pos() token.Position
	exprNode()
}

// BinOp перечисляет бинарные операторы (§3).
type BinOp int

const (
	OpPlus BinOp = iota
	OpMinus
	OpMultiply
	OpDivide
	OpLessThan
	OpLessThanOrEqual
	OpEqual
)

func (op BinOp) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpLessThan:
		return "<"
	case OpLessThanOrEqual:
		return "<="
	case OpEqual:
		return "="
	default:
		return "?"
	}
}

// IdentExpr — ссылка на переменную, атрибут или параметр по имени.
type IdentExpr struct {
	pos  token.Position
	Name string
}

func NewIdentExpr(pos token.Position, name string) *IdentExpr { return &IdentExpr{pos: pos, Name: name} }
func (e *IdentExpr) Pos() token.Position                       { return e.pos }
func (e *IdentExpr) exprNode()                                 {}

// IntExpr — целочисленный литерал.
type IntExpr struct {
	pos token.Position
	Val int32
}

func NewIntExpr(pos token.Position, v int32) *IntExpr { return &IntExpr{pos: pos, Val: v} }
func (e *IntExpr) Pos() token.Position                { return e.pos }
func (e *IntExpr) exprNode()                          {}

// StringExpr — строковый литерал (уже с раскрытыми escape-последовательностями).
type StringExpr struct {
	pos token.Position
	Val string
}

func NewStringExpr(pos token.Position, v string) *StringExpr { return &StringExpr{pos: pos, Val: v} }
func (e *StringExpr) Pos() token.Position                     { return e.pos }
func (e *StringExpr) exprNode()                               {}

// BoolExpr — булев литерал true/false.
type BoolExpr struct {
	pos token.Position
	Val bool
}

func NewBoolExpr(pos token.Position, v bool) *BoolExpr { return &BoolExpr{pos: pos, Val: v} }
func (e *BoolExpr) Pos() token.Position                { return e.pos }
func (e *BoolExpr) exprNode()                          {}

// SelfExpr — литерал self.
type SelfExpr struct {
	pos token.Position
}

func NewSelfExpr(pos token.Position) *SelfExpr { return &SelfExpr{pos: pos} }
func (e *SelfExpr) Pos() token.Position        { return e.pos }
func (e *SelfExpr) exprNode()                  {}

// NewExpr — `new TYPE`.
type NewExpr struct {
	pos  token.Position
	Type string
}

func NewNewExpr(pos token.Position, typ string) *NewExpr { return &NewExpr{pos: pos, Type: typ} }
func (e *NewExpr) Pos() token.Position                   { return e.pos }
func (e *NewExpr) exprNode()                             {}

// UnaryKind различает три унарных оператора (§3).
type UnaryKind int

const (
	UnaryNot UnaryKind = iota
	UnaryNegate
	UnaryIsVoid
)

// UnaryExpr — ~e, not e, isvoid e.
type UnaryExpr struct {
	pos  token.Position
	Kind UnaryKind
	Expr Expr
}

func NewUnaryExpr(pos token.Position, kind UnaryKind, expr Expr) *UnaryExpr {
	return &UnaryExpr{pos: pos, Kind: kind, Expr: expr}
}
func (e *UnaryExpr) Pos() token.Position { return e.pos }
func (e *UnaryExpr) exprNode()           {}

// BinaryExpr — бинарная операция (§3); ассоциативность — см. §4.5/§9
// (uniform left-to-right, без приоритета).
type BinaryExpr struct {
	pos         token.Position
	Op          BinOp
	Left, Right Expr
}

func NewBinaryExpr(pos token.Position, op BinOp, left, right Expr) *BinaryExpr {
	return &BinaryExpr{pos: pos, Op: op, Left: left, Right: right}
}
func (e *BinaryExpr) Pos() token.Position { return e.pos }
func (e *BinaryExpr) exprNode()           {}

// AssignExpr — `ID <- expr`.
type AssignExpr struct {
	pos  token.Position
	Name string
	Expr Expr
}

func NewAssignExpr(pos token.Position, name string, expr Expr) *AssignExpr {
	return &AssignExpr{pos: pos, Name: name, Expr: expr}
}
func (e *AssignExpr) Pos() token.Position { return e.pos }
func (e *AssignExpr) exprNode()           {}

// DispatchExpr — вызов метода, возможно со статическим приведением
// (§3, §4.5 пункт 3): CastType == "" означает отсутствие `@TYPE`.
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
func (e *DispatchExpr) exprNode()           {}

// ConditionalExpr — `if pred then t else e fi`.
type ConditionalExpr struct {
	pos               token.Position
	Pred, Then, Else Expr
}

func NewConditionalExpr(pos token.Position, pred, then, els Expr) *ConditionalExpr {
	return &ConditionalExpr{pos: pos, Pred: pred, Then: then, Else: els}
}
func (e *ConditionalExpr) Pos() token.Position { return e.pos }
func (e *ConditionalExpr) exprNode()           {}

// LoopExpr — `while pred loop body pool`.
type LoopExpr struct {
	pos        token.Position
	Pred, Body Expr
}

func NewLoopExpr(pos token.Position, pred, body Expr) *LoopExpr {
	return &LoopExpr{pos: pos, Pred: pred, Body: body}
}
func (e *LoopExpr) Pos() token.Position { return e.pos }
func (e *LoopExpr) exprNode()           {}

// CaseBranch — один рукав `ID : TYPE => expr` внутри case/esac (§4.5).
type CaseBranch struct {
	Pos  token.Position
	Name string
	Type string
	Body Expr
}

// CaseExpr — `case expr of branch+ esac`; инвариант §3: ≥1 рукав.
type CaseExpr struct {
	pos      token.Position
	Subject  Expr
	Branches []CaseBranch
}

func NewCaseExpr(pos token.Position, subject Expr, branches []CaseBranch) *CaseExpr {
	return &CaseExpr{pos: pos, Subject: subject, Branches: branches}
}
func (e *CaseExpr) Pos() token.Position { return e.pos }
func (e *CaseExpr) exprNode()           {}

// BlockExpr — `{ expr; expr; ... }`; инвариант §3: ≥1 выражение.
type BlockExpr struct {
	pos   token.Position
	Exprs []Expr
}

func NewBlockExpr(pos token.Position, exprs []Expr) *BlockExpr {
	return &BlockExpr{pos: pos, Exprs: exprs}
}
func (e *BlockExpr) Pos() token.Position { return e.pos }
func (e *BlockExpr) exprNode()           {}

// LetBinding — один биндинг внутри let: `ID : TYPE [<- expr]`.
type LetBinding struct {
	Pos  token.Position
	Name string
	Type string
	Init Expr // nil, если инициализатор отсутствовал
}

// LetExpr — `let binding+ in body`; инвариант §3: ≥1 биндинг.
type LetExpr struct {
	pos      token.Position
	Bindings []LetBinding
	Body     Expr
}

func NewLetExpr(pos token.Position, bindings []LetBinding, body Expr) *LetExpr {
	return &LetExpr{pos: pos, Bindings: bindings, Body: body}
}
func (e *LetExpr) Pos() token.Position { return e.pos }
func (e *LetExpr) exprNode()           {}
