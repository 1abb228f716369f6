package parsetree

import "github.com/semetekare/rust2go/internal/token"

// Formal — формальный параметр метода: `ID : TYPE` (§3).
type Formal struct {
	Pos  token.Position
	Name string
	Type string
}

// Feature — общий предок Method и Attr; оба объявляются в теле класса (§3).
type Feature interface {
	FeaturePos() token.Position
	featureNode()
}

// Method — объявление метода: `ID(formal, ...) : TYPE { expr }` (§3).
type Method struct {
	Pos     token.Position
	Name    string
	Formals []Formal
	RetType string
	Body    Expr
}

func (m *Method) FeaturePos() token.Position { return m.Pos }
func (m *Method) featureNode()               {}

// Attr — объявление атрибута: `ID : TYPE [<- expr]` (§3). Init == nil, если
// инициализатор отсутствовал.
type Attr struct {
	Pos  token.Position
	Name string
	Type string
	Init Expr
}

func (a *Attr) FeaturePos() token.Position { return a.Pos }
func (a *Attr) featureNode()               {}

// Class — объявление класса: `class NAME [inherits PARENT] { feature* }`
// (§3). Parent == "", если предложение inherits отсутствовало (наследование
// от Object назначается на семантической фазе, §4.6 / internal/inherit).
type Class struct {
	Pos      token.Position
	Name     string
	Parent   string
	Features []Feature
}

// Program — корень разбор-фазного дерева: последовательность объявлений
// классов в порядке их появления в исходном тексте (§3).
type Program struct {
	Classes []Class
}
