// parseTerm разбирает один атомарный терм выражения: литералы, self, new,
// унарные операторы, скобочные подвыражения и управляющие конструкции
// if/while/let/case/block (§3, §4.4). Бинарные операторы, точечная
// диспетчеризация и присваивание в термах не разбираются — ими занимается
// foldExpr, продолжая разбор после того, как term вернулся.
package parser

import (
	"github.com/semetekare/rust2go/internal/parsetree"
	"github.com/semetekare/rust2go/internal/token"
	"github.com/semetekare/rust2go/internal/tokstream"
)

func parseTerm(w *tokstream.Stream) (parsetree.Expr, error) {
	tok := w.Peek()

	switch tok.Kind {
	case token.Int:
		w.Next()
		return parsetree.NewIntExpr(tok.Pos, tok.IntVal), nil

	case token.String:
		w.Next()
		return parsetree.NewStringExpr(tok.Pos, tok.Str), nil

	case token.True:
		w.Next()
		return parsetree.NewBoolExpr(tok.Pos, true), nil

	case token.False:
		w.Next()
		return parsetree.NewBoolExpr(tok.Pos, false), nil

	case token.Ident:
		w.Next()
		if tok.Ident == "self" {
			return parsetree.NewSelfExpr(tok.Pos), nil
		}
		if w.PeekKind(token.LParen) {
			w.Next()
			args, err := parseArgs(w)
			if err != nil {
				return nil, err
			}
			return parsetree.NewDispatchExpr(tok.Pos, parsetree.NewSelfExpr(tok.Pos), "", tok.Ident, args), nil
		}
		return parsetree.NewIdentExpr(tok.Pos, tok.Ident), nil

	case token.Tilde:
		w.Next()
		operand, err := parseTerm(w)
		if err != nil {
			return nil, err
		}
		return parsetree.NewUnaryExpr(tok.Pos, parsetree.UnaryNegate, operand), nil

	case token.Not:
		w.Next()
		operand, err := parseTerm(w)
		if err != nil {
			return nil, err
		}
		return parsetree.NewUnaryExpr(tok.Pos, parsetree.UnaryNot, operand), nil

	case token.IsVoid:
		w.Next()
		operand, err := parseTerm(w)
		if err != nil {
			return nil, err
		}
		return parsetree.NewUnaryExpr(tok.Pos, parsetree.UnaryIsVoid, operand), nil

	case token.NewKw:
		w.Next()
		typ, _, err := typeName(w)
		if err != nil {
			return nil, err
		}
		return parsetree.NewNewExpr(tok.Pos, typ), nil

	case token.LParen:
		w.Next()
		inner := w.CollectTill(token.RParen)
		expr, err := foldExpr(inner)
		if err != nil {
			return nil, err
		}
		if err := w.ConsumeRequired(token.RParen); err != nil {
			return nil, err
		}
		return expr, nil

	case token.LBrace:
		return parseBlock(w)

	case token.If:
		return parseConditional(w)

	case token.While:
		return parseLoop(w)

	case token.Let:
		return parseLet(w)

	case token.Case:
		return parseCase(w)

	default:
		return nil, errf(tok.Pos, "unexpected token %s in expression", tok.Kind)
	}
}

// parseBlock разбирает `{ expr; expr; ... }`; инвариант §3: минимум одно
// выражение.
func parseBlock(w *tokstream.Stream) (parsetree.Expr, error) {
	pos := w.Peek().Pos
	w.Next() // '{'

	if w.PeekKind(token.RBrace) {
		return nil, errf(pos, "block must contain at least one expression")
	}

	var exprs []parsetree.Expr
	for {
		exprWindow := w.CollectTill(token.Semi)
		expr, err := foldExpr(exprWindow)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if err := w.ConsumeRequired(token.Semi); err != nil {
			return nil, err
		}
		if w.PeekKind(token.RBrace) {
			break
		}
	}
	if err := w.ConsumeRequired(token.RBrace); err != nil {
		return nil, err
	}
	if len(exprs) == 0 {
		return nil, errf(pos, "block must contain at least one expression")
	}
	return parsetree.NewBlockExpr(pos, exprs), nil
}

// parseConditional разбирает `if pred then t else e fi`.
func parseConditional(w *tokstream.Stream) (parsetree.Expr, error) {
	pos := w.Peek().Pos
	w.Next() // 'if'

	predWindow := w.CollectTill(token.Then)
	pred, err := foldExpr(predWindow)
	if err != nil {
		return nil, err
	}
	if err := w.ConsumeRequired(token.Then); err != nil {
		return nil, err
	}

	thenWindow := w.CollectTill(token.Else)
	thenExpr, err := foldExpr(thenWindow)
	if err != nil {
		return nil, err
	}
	if err := w.ConsumeRequired(token.Else); err != nil {
		return nil, err
	}

	elseWindow := w.CollectTill(token.Fi)
	elseExpr, err := foldExpr(elseWindow)
	if err != nil {
		return nil, err
	}
	if err := w.ConsumeRequired(token.Fi); err != nil {
		return nil, err
	}

	return parsetree.NewConditionalExpr(pos, pred, thenExpr, elseExpr), nil
}

// parseLoop разбирает `while pred loop body pool`.
func parseLoop(w *tokstream.Stream) (parsetree.Expr, error) {
	pos := w.Peek().Pos
	w.Next() // 'while'

	predWindow := w.CollectTill(token.Loop)
	pred, err := foldExpr(predWindow)
	if err != nil {
		return nil, err
	}
	if err := w.ConsumeRequired(token.Loop); err != nil {
		return nil, err
	}

	bodyWindow := w.CollectTill(token.Pool)
	body, err := foldExpr(bodyWindow)
	if err != nil {
		return nil, err
	}
	if err := w.ConsumeRequired(token.Pool); err != nil {
		return nil, err
	}

	return parsetree.NewLoopExpr(pos, pred, body), nil
}

// parseLet разбирает `let binding (, binding)* in body`; инвариант §3:
// минимум один биндинг. Инициализатор биндинга необязателен.
func parseLet(w *tokstream.Stream) (parsetree.Expr, error) {
	pos := w.Peek().Pos
	w.Next() // 'let'

	var bindings []parsetree.LetBinding
	for {
		nameTok, err := w.GetRequired(token.Ident)
		if err != nil {
			return nil, err
		}
		if err := w.ConsumeRequired(token.Colon); err != nil {
			return nil, err
		}
		typ, _, err := typeName(w)
		if err != nil {
			return nil, err
		}

		var init parsetree.Expr
		if w.PeekKind(token.Assign) {
			w.Next()
			initWindow := w.CollectTillAny(token.Comma, token.In)
			init, err = foldExpr(initWindow)
			if err != nil {
				return nil, err
			}
		}

		bindings = append(bindings, parsetree.LetBinding{
			Pos:  nameTok.Pos,
			Name: nameTok.Ident,
			Type: typ,
			Init: init,
		})

		tok := w.Next()
		if tok.Kind == token.In {
			break
		}
		if tok.Kind != token.Comma {
			return nil, errf(tok.Pos, "expected ',' or 'in' in let bindings, got %s", tok.Kind)
		}
	}

	body, err := foldExpr(w)
	if err != nil {
		return nil, err
	}
	return parsetree.NewLetExpr(pos, bindings, body), nil
}

// parseCase разбирает `case subject of (ID : TYPE => expr;)+ esac`;
// инвариант §3: минимум один рукав.
func parseCase(w *tokstream.Stream) (parsetree.Expr, error) {
	pos := w.Peek().Pos
	w.Next() // 'case'

	subjWindow := w.CollectTill(token.Of)
	subject, err := foldExpr(subjWindow)
	if err != nil {
		return nil, err
	}
	if err := w.ConsumeRequired(token.Of); err != nil {
		return nil, err
	}

	var branches []parsetree.CaseBranch
	for !w.PeekKind(token.Esac) {
		nameTok, err := w.GetRequired(token.Ident)
		if err != nil {
			return nil, err
		}
		if err := w.ConsumeRequired(token.Colon); err != nil {
			return nil, err
		}
		typ, _, err := typeName(w)
		if err != nil {
			return nil, err
		}
		if err := w.ConsumeRequired(token.CaseArm); err != nil {
			return nil, err
		}
		bodyWindow := w.CollectTill(token.Semi)
		body, err := foldExpr(bodyWindow)
		if err != nil {
			return nil, err
		}
		if err := w.ConsumeRequired(token.Semi); err != nil {
			return nil, err
		}
		branches = append(branches, parsetree.CaseBranch{
			Pos:  nameTok.Pos,
			Name: nameTok.Ident,
			Type: typ,
			Body: body,
		})
	}
	if err := w.ConsumeRequired(token.Esac); err != nil {
		return nil, err
	}
	if len(branches) == 0 {
		return nil, errf(pos, "case must have at least one branch")
	}

	return parsetree.NewCaseExpr(pos, subject, branches), nil
}
