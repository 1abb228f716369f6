// gen_expr (§4.5): разбор выражений через накопление частичных узлов и их
// последующую свёртку. Частичные варианты (partialBinary, partialAssign,
// partialDispatch, partialCastDispatch) непубличны и существуют только
// внутри этого файла — ни один из них не реализует parsetree.Expr, так что
// ни при каких обстоятельствах не может попасть в возвращаемое дерево.
//
// Свёртка выполняется единым проходом слева направо без учёта приоритета
// операторов (Open Question §9: оставлено как в исходной системе — уравнение
// "1 + 2 * 3" сворачивается равномерно, как "(1 + 2) * 3", а не по
// арифметическому приоритету).
package parser

import (
	"github.com/semetekare/rust2go/internal/parsetree"
	"github.com/semetekare/rust2go/internal/token"
	"github.com/semetekare/rust2go/internal/tokstream"
)

// partial — незавершённый фрагмент выражения, которому недостаёт левого
// операнда (получателя, цели присваивания или левой части бинарной
// операции). combine дополняет его уже накопленным first и производит
// завершённый узел parsetree.Expr.
type partial interface {
	combine(first parsetree.Expr) (parsetree.Expr, error)
}

// partialBinary — "op right", ожидает операнд слева.
type partialBinary struct {
	pos   token.Position
	op    parsetree.BinOp
	right parsetree.Expr
}

func (p partialBinary) combine(first parsetree.Expr) (parsetree.Expr, error) {
	if first == nil {
		return nil, errf(p.pos, "binary operator with no left operand")
	}
	return parsetree.NewBinaryExpr(p.pos, p.op, first, p.right), nil
}

// partialAssign — "<- expr", ожидает идентификатор слева в качестве цели.
type partialAssign struct {
	pos  token.Position
	expr parsetree.Expr
}

func (p partialAssign) combine(first parsetree.Expr) (parsetree.Expr, error) {
	ident, ok := first.(*parsetree.IdentExpr)
	if !ok {
		return nil, errf(p.pos, "left-hand side of assignment must be an identifier")
	}
	return parsetree.NewAssignExpr(p.pos, ident.Name, p.expr), nil
}

// partialDispatch — ".method(args)", ожидает получателя слева.
type partialDispatch struct {
	pos    token.Position
	method string
	args   []parsetree.Expr
}

func (p partialDispatch) combine(first parsetree.Expr) (parsetree.Expr, error) {
	if first == nil {
		return nil, errf(p.pos, "dispatch with no receiver")
	}
	return parsetree.NewDispatchExpr(p.pos, first, "", p.method, p.args), nil
}

// partialCastDispatch — "@TYPE.method(args)", ожидает получателя слева.
type partialCastDispatch struct {
	pos      token.Position
	castType string
	method   string
	args     []parsetree.Expr
}

func (p partialCastDispatch) combine(first parsetree.Expr) (parsetree.Expr, error) {
	if first == nil {
		return nil, errf(p.pos, "cast dispatch with no receiver")
	}
	return parsetree.NewDispatchExpr(p.pos, first, p.castType, p.method, p.args), nil
}

func binOpFor(kind token.Kind) (parsetree.BinOp, bool) {
	switch kind {
	case token.Plus:
		return parsetree.OpPlus, true
	case token.Minus:
		return parsetree.OpMinus, true
	case token.Star:
		return parsetree.OpMultiply, true
	case token.Slash:
		return parsetree.OpDivide, true
	case token.Lt:
		return parsetree.OpLessThan, true
	case token.Le:
		return parsetree.OpLessThanOrEqual, true
	case token.Eq:
		return parsetree.OpEqual, true
	default:
		return 0, false
	}
}

// foldExpr потребляет весь window и возвращает единое выражение, сворачивая
// последовательность термов и частичных продолжений слева направо (§4.5):
// first накапливает результат, а каждый partial сразу комбинируется с ним,
// как только встречается.
func foldExpr(w *tokstream.Stream) (parsetree.Expr, error) {
	var first parsetree.Expr

	for w.HasNext() {
		tok := w.Peek()
		var p partial

		switch tok.Kind {
		case token.Dot:
			w.Next()
			pd, err := parsePartialDispatch(w, tok.Pos)
			if err != nil {
				return nil, err
			}
			p = pd

		case token.At:
			w.Next()
			pc, err := parsePartialCastDispatch(w, tok.Pos)
			if err != nil {
				return nil, err
			}
			p = pc

		case token.Assign:
			w.Next()
			rhs, err := foldExpr(w)
			if err != nil {
				return nil, err
			}
			return partialAssign{pos: tok.Pos, expr: rhs}.combine(first)

		default:
			if op, ok := binOpFor(tok.Kind); ok {
				w.Next()
				right, err := parseTerm(w)
				if err != nil {
					return nil, err
				}
				p = partialBinary{pos: tok.Pos, op: op, right: right}
				break
			}

			if first != nil {
				return nil, errf(tok.Pos, "unexpected token %s after expression", tok.Kind)
			}
			term, err := parseTerm(w)
			if err != nil {
				return nil, err
			}
			first = term
			continue
		}

		combined, err := p.combine(first)
		if err != nil {
			return nil, err
		}
		first = combined
	}

	if first == nil {
		return nil, errf(w.Peek().Pos, "empty expression")
	}
	return first, nil
}

func parsePartialDispatch(w *tokstream.Stream, pos token.Position) (partialDispatch, error) {
	nameTok, err := w.GetRequired(token.Ident)
	if err != nil {
		return partialDispatch{}, err
	}
	if err := w.ConsumeRequired(token.LParen); err != nil {
		return partialDispatch{}, err
	}
	args, err := parseArgs(w)
	if err != nil {
		return partialDispatch{}, err
	}
	return partialDispatch{pos: pos, method: nameTok.Ident, args: args}, nil
}

func parsePartialCastDispatch(w *tokstream.Stream, pos token.Position) (partialCastDispatch, error) {
	typ, _, err := typeName(w)
	if err != nil {
		return partialCastDispatch{}, err
	}
	if err := w.ConsumeRequired(token.Dot); err != nil {
		return partialCastDispatch{}, err
	}
	nameTok, err := w.GetRequired(token.Ident)
	if err != nil {
		return partialCastDispatch{}, err
	}
	if err := w.ConsumeRequired(token.LParen); err != nil {
		return partialCastDispatch{}, err
	}
	args, err := parseArgs(w)
	if err != nil {
		return partialCastDispatch{}, err
	}
	return partialCastDispatch{pos: pos, castType: typ, method: nameTok.Ident, args: args}, nil
}

// parseArgs разбирает список аргументов вызова, уже стоя сразу после '(';
// потребляет завершающий ')'.
func parseArgs(w *tokstream.Stream) ([]parsetree.Expr, error) {
	var args []parsetree.Expr
	if w.PeekKind(token.RParen) {
		w.Next()
		return args, nil
	}
	for {
		argWindow := w.CollectTillAny(token.Comma, token.RParen)
		arg, err := foldExpr(argWindow)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok := w.Next()
		if tok.Kind == token.RParen {
			break
		}
		if tok.Kind != token.Comma {
			return nil, errf(tok.Pos, "expected ',' or ')' in argument list, got %s", tok.Kind)
		}
	}
	return args, nil
}
