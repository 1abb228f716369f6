// Package cool связывает три фазы компиляции в единую точку входа (§1, §7):
// CharSource/Scanner -> Parser -> семантический анализ (конвертация в
// semtree, проверка графа наследования, заполнение таблицы символов).
// Любая ошибка на любой фазе возвращается как diag.Diagnostic; программа
// без ошибок возвращает декорированное дерево.
package cool

import (
	"errors"
	"io"

	"github.com/semetekare/rust2go/internal/diag"
	"github.com/semetekare/rust2go/internal/inherit"
	"github.com/semetekare/rust2go/internal/lexer"
	"github.com/semetekare/rust2go/internal/parser"
	"github.com/semetekare/rust2go/internal/semtree"
	"github.com/semetekare/rust2go/internal/source"
	"github.com/semetekare/rust2go/internal/symtab"
	"github.com/semetekare/rust2go/internal/token"
)

// Compile прогоняет src через сканер, парсер и семантический анализатор,
// возвращая декорированное дерево программы (nil, если есть хотя бы одна
// ошибка на любой фазе) и накопленные диагностики.
func Compile(src io.Reader) (*semtree.ProgramNode, error) {
	cs := source.New(src)
	toks := lexer.LexAll(cs)

	var diags []error
	for _, tok := range toks {
		if tok.Kind == token.Error {
			diags = append(diags, diag.New(diag.LexError, tok.Pos, "%s", tok.Msg))
		}
	}
	if len(diags) > 0 {
		return nil, errors.Join(diags...)
	}

	parseTree, perrs := parser.ParseProgram(toks)
	for _, err := range perrs {
		var pe parser.ParseError
		if errors.As(err, &pe) {
			diags = append(diags, diag.New(diag.ParseError, pe.Pos, "%s", pe.Msg))
			continue
		}
		diags = append(diags, diag.New(diag.ParseError, token.Position{}, "%s", err.Error()))
	}
	if len(diags) > 0 {
		return nil, errors.Join(diags...)
	}

	sem, cerrs := semtree.Convert(parseTree)
	for _, err := range cerrs {
		diags = append(diags, diag.New(diag.SemanticError, token.Position{}, "%s", err.Error()))
	}
	if len(diags) > 0 {
		return nil, errors.Join(diags...)
	}

	ierrs := inherit.Validate(sem)
	for _, err := range ierrs {
		diags = append(diags, diag.New(diag.SemanticError, token.Position{}, "%s", err.Error()))
	}
	if len(diags) > 0 {
		return nil, errors.Join(diags...)
	}

	_, serrs := symtab.Populate(sem)
	for _, err := range serrs {
		diags = append(diags, diag.New(diag.SemanticError, token.Position{}, "%s", err.Error()))
	}
	if len(diags) > 0 {
		return nil, errors.Join(diags...)
	}

	return sem, nil
}
