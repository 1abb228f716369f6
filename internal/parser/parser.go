// Package parser реализует рекурсивный спуск по потоку токенов (§4.4) и
// алгоритм накопления-затем-свёртки частичных выражений без приоритета
// операторов (§4.5). Ошибки разбора накапливаются с точностью до класса:
// падение одного class-декларации не останавливает разбор всей программы.
package parser

import (
	"fmt"

	"github.com/semetekare/rust2go/internal/parsetree"
	"github.com/semetekare/rust2go/internal/token"
	"github.com/semetekare/rust2go/internal/tokstream"
)

// ParseError — ошибка разбора одного class-декларации, вместе с позицией,
// на которой она произошла.
type ParseError struct {
	Msg string
	Pos token.Position
}

func (pe ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", pe.Pos, pe.Msg)
}

func errf(pos token.Position, format string, args ...any) error {
	return ParseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// ParseProgram разбирает весь поток токенов в Program (§4.4: gen_program).
// Каждая декларация класса разбирается независимо: ошибка внутри одного
// class-а не мешает разобрать остальные — она просто исключает этот класс
// из результата и добавляется в возвращаемый список ошибок.
func ParseProgram(toks []token.Token) (*parsetree.Program, []error) {
	stream := tokstream.New(toks)
	var classes []parsetree.Class
	var errs []error

	for stream.HasNext() {
		classWindow := stream.CollectTill(token.Semi)
		cls, err := genClass(classWindow)
		if semiErr := stream.ConsumeRequired(token.Semi); semiErr != nil && err == nil {
			err = semiErr
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		classes = append(classes, cls)
	}

	return &parsetree.Program{Classes: classes}, errs
}
