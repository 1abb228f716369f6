// Пакет token определяет базовые типы для представления лексем (токенов),
// выделяемых сканером, а также их позиций в исходном коде.
package token

import "fmt"

// Kind — перечисление типов токенов, которые может распознать сканер.
// Каждый тип соответствует определённой категории лексем COOL-подобного
// языка, описанного в спецификации.
type Kind int

const (
	// Empty — нулевое значение Kind; не должно встречаться в выдаче сканера.
	Empty Kind = iota
	// EOF — маркер конца входного потока.
	EOF
	// Error — лексическая ошибка: сканер выдаёт токен вместо паники, парсер
	// обязан прекратить разбор при первом же встреченном Error-токене.
	Error
	// Comment — однострочный (`--`) или блочный (`(* *)`) комментарий.
	// Отфильтровывается буферизованным итератором токенов; сам сканер его
	// всё же выдаёт как обычный токен.
	Comment

	// Ident — идентификатор: имя класса, метода, атрибута или переменной.
	Ident
	// Int — целочисленный литерал (32-битный знаковый).
	Int
	// String — строковый литерал с уже раскрытыми escape-последовательностями.
	String
	// True и False — булевы литералы; регистр первой буквы значим (§4.2).
	True
	False
	// SelfType — зарезервированное имя типа SELF_TYPE.
	SelfType

	// Пунктуация.
	Dot     // .
	Comma   // ,
	At      // @
	Tilde   // ~
	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Le      // <=
	Lt      // <
	Eq      // =
	Colon   // :
	Semi    // ;
	LParen  // (
	RParen  // )
	LBrace  // {
	RBrace  // }
	Assign  // <-
	CaseArm // =>

	// Ключевые слова (регистронезависимые, кроме true/false).
	Class
	Inherits
	If
	Then
	Else
	Fi
	While
	Loop
	Pool
	Let
	In
	Case
	Of
	Esac
	NewKw
	IsVoid
	Not
)

var kindNames = map[Kind]string{
	Empty:    "EMPTY",
	EOF:      "EOF",
	Error:    "ERROR",
	Comment:  "COMMENT",
	Ident:    "IDENT",
	Int:      "INT",
	String:   "STRING",
	True:     "TRUE",
	False:    "FALSE",
	SelfType: "SELF_TYPE",
	Dot:      ".",
	Comma:    ",",
	At:       "@",
	Tilde:    "~",
	Plus:     "+",
	Minus:    "-",
	Star:     "*",
	Slash:    "/",
	Le:       "<=",
	Lt:       "<",
	Eq:       "=",
	Colon:    ":",
	Semi:     ";",
	LParen:   "(",
	RParen:   ")",
	LBrace:   "{",
	RBrace:   "}",
	Assign:   "<-",
	CaseArm:  "=>",
	Class:    "class",
	Inherits: "inherits",
	If:       "if",
	Then:     "then",
	Else:     "else",
	Fi:       "fi",
	While:    "while",
	Loop:     "loop",
	Pool:     "pool",
	Let:      "let",
	In:       "in",
	Case:     "case",
	Of:       "of",
	Esac:     "esac",
	NewKw:    "new",
	IsVoid:   "isvoid",
	Not:      "not",
}

// String возвращает человекочитаемое имя типа токена. Используется в
// диагностиках парсера; не предназначен для полноценной печати AST (§1
// явно исключает текстовый pretty-printer из ядра).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position — координаты символа в исходном тексте, отсчёт с 1.
type Position struct {
	Line int
	Col  int
}

// String отдаёт позицию в привычном виде "line:col" для сообщений об ошибках.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token — тегированное объединение результата работы сканера. В зависимости
// от Kind ровно одно из полей Ident/IntVal/Str/Msg несёт полезную нагрузку;
// остальные токены несут только Kind и позицию.
//
// Инвариант (§3): позиция токена проставляется сканером один раз в момент
// выпуска и никогда не изменяется.
type Token struct {
	Kind Kind
	Pos  Position

	Ident  string // для Kind == Ident
	IntVal int32  // для Kind == Int
	Str    string // для Kind == String (уже раскрытые escape-последовательности)
	Msg    string // для Kind == Error (человекочитаемое сообщение)
}

// Equal реализует равенство токенов по §3: "Equality of two tokens is by
// kind only; payload/position are ignored for matching." Используется
// парсером при сверке ожидаемого типа токена.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind
}

// String отдаёт отладочное представление токена, аналогичное Kind.String(),
// но с полезной нагрузкой там, где она есть — в духе teacher'овского
// Token.String(), используемого для диагностики, а не для печати программы.
func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("IDENT(%s)", t.Ident)
	case Int:
		return fmt.Sprintf("INT(%d)", t.IntVal)
	case String:
		return fmt.Sprintf("STRING(%q)", t.Str)
	case Error:
		return fmt.Sprintf("ERROR(%s)", t.Msg)
	default:
		return t.Kind.String()
	}
}

// New создаёт токен без полезной нагрузки (пунктуация, ключевые слова,
// EOF) с заданной позицией.
func New(kind Kind, pos Position) Token {
	return Token{Kind: kind, Pos: pos}
}

// NewIdent создаёт идентификаторный токен.
func NewIdent(name string, pos Position) Token {
	return Token{Kind: Ident, Ident: name, Pos: pos}
}

// NewInt создаёт целочисленный токен.
func NewInt(v int32, pos Position) Token {
	return Token{Kind: Int, IntVal: v, Pos: pos}
}

// NewString создаёт строковый токен; значение уже без экранирования.
func NewString(v string, pos Position) Token {
	return Token{Kind: String, Str: v, Pos: pos}
}

// NewError создаёт токен лексической ошибки с сообщением msg.
func NewError(msg string, pos Position) Token {
	return Token{Kind: Error, Msg: msg, Pos: pos}
}

// NewComment создаёт токен комментария. Текст сохраняется, но не несёт
// смысловой нагрузки для парсера.
func NewComment(text string, pos Position) Token {
	return Token{Kind: Comment, Str: text, Pos: pos}
}

// Keywords — таблица ключевых слов, сопоставленных их Kind. Сравнение
// производится по идентификатору, приведённому к нижнему регистру (§4.2);
// true/false обрабатываются сканером отдельно из-за их особых правил
// регистра, прежде чем дело доходит до этой таблицы.
var Keywords = map[string]Kind{
	"class":     Class,
	"inherits":  Inherits,
	"if":        If,
	"then":      Then,
	"else":      Else,
	"fi":        Fi,
	"while":     While,
	"loop":      Loop,
	"pool":      Pool,
	"let":       Let,
	"in":        In,
	"case":      Case,
	"of":        Of,
	"esac":      Esac,
	"new":       NewKw,
	"isvoid":    IsVoid,
	"not":       Not,
	"self_type": SelfType,
}
