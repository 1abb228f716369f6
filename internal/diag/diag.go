// Package diag определяет единый формат диагностики, общий для всех трёх
// фаз компиляции (§7): лексер (Error-токены), парсер (parser.ParseError) и
// семантический анализатор (обычные error) сообщают об ошибках каждый в
// своей форме, а internal/cool оборачивает их в один и тот же тип
// Diagnostic; накопление по всей программе выполняется через стандартный
// errors.Join.
package diag

import (
	"fmt"

	"github.com/semetekare/rust2go/internal/token"
)

// Kind различает фазу, на которой произошла ошибка (§7).
type Kind int

const (
	LexError Kind = iota
	ParseError
	SemanticError
	FatalInternal
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case ParseError:
		return "parse error"
	case SemanticError:
		return "semantic error"
	case FatalInternal:
		return "internal error"
	default:
		return "error"
	}
}

// Diagnostic — одно сообщение об ошибке с привязкой к позиции в исходном
// тексте и фазе, на которой оно возникло.
type Diagnostic struct {
	Kind Kind
	Msg  string
	Pos  token.Position
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s at %s: %s", d.Kind, d.Pos, d.Msg)
}

// New создаёт диагностическое сообщение заданной категории.
func New(kind Kind, pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: pos}
}
