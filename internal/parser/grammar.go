// internal/parser/grammar.go

// gen_class / gen_feature / gen_formal (§4.4): разбор объявления класса,
// его особенностей (методов и атрибутов) и формальных параметров методов.
package parser

import (
	"github.com/semetekare/rust2go/internal/parsetree"
	"github.com/semetekare/rust2go/internal/token"
	"github.com/semetekare/rust2go/internal/tokstream"
)

// typeName читает токен имени типа: обычный Ident либо SELF_TYPE (§3).
func typeName(w *tokstream.Stream) (string, token.Position, error) {
	tok := w.Peek()
	switch tok.Kind {
	case token.Ident:
		w.Next()
		return tok.Ident, tok.Pos, nil
	case token.SelfType:
		w.Next()
		return "SELF_TYPE", tok.Pos, nil
	default:
		return "", tok.Pos, errf(tok.Pos, "expected type name, got %s", tok.Kind)
	}
}

// genClass разбирает `class NAME [inherits PARENT] { feature* }` из окна,
// уже ограниченного до (но не включая) завершающий ';' верхнего уровня.
func genClass(w *tokstream.Stream) (parsetree.Class, error) {
	classPos := w.Peek().Pos
	if err := w.ConsumeRequired(token.Class); err != nil {
		return parsetree.Class{}, err
	}
	nameTok, err := w.GetRequired(token.Ident)
	if err != nil {
		return parsetree.Class{}, err
	}

	parent := ""
	if w.PeekKind(token.Inherits) {
		w.Next()
		parentTok, err := w.GetRequired(token.Ident)
		if err != nil {
			return parsetree.Class{}, err
		}
		parent = parentTok.Ident
	}

	if err := w.ConsumeRequired(token.LBrace); err != nil {
		return parsetree.Class{}, err
	}

	var features []parsetree.Feature
	for !w.PeekKind(token.RBrace) {
		if !w.HasNext() {
			return parsetree.Class{}, errf(w.Peek().Pos, "unterminated class body")
		}
		featWindow := w.CollectTill(token.Semi)
		feat, err := genFeature(featWindow)
		if semiErr := w.ConsumeRequired(token.Semi); semiErr != nil && err == nil {
			err = semiErr
		}
		if err != nil {
			return parsetree.Class{}, err
		}
		features = append(features, feat)
	}
	if err := w.ConsumeRequired(token.RBrace); err != nil {
		return parsetree.Class{}, err
	}

	return parsetree.Class{Pos: classPos, Name: nameTok.Ident, Parent: parent, Features: features}, nil
}

// genFeature разбирает один Method либо Attr (§3, §4.4): после имени, `(`
// означает метод, иначе следует `:` атрибута.
func genFeature(w *tokstream.Stream) (parsetree.Feature, error) {
	nameTok, err := w.GetRequired(token.Ident)
	if err != nil {
		return nil, err
	}

	if w.PeekKind(token.LParen) {
		return genMethod(w, nameTok)
	}
	return genAttr(w, nameTok)
}

func genMethod(w *tokstream.Stream, nameTok token.Token) (*parsetree.Method, error) {
	w.Next() // '('

	var formals []parsetree.Formal
	if !w.PeekKind(token.RParen) {
		for {
			formal, err := genFormal(w)
			if err != nil {
				return nil, err
			}
			formals = append(formals, formal)

			tok := w.Next()
			if tok.Kind == token.RParen {
				break
			}
			if tok.Kind != token.Comma {
				return nil, errf(tok.Pos, "expected ',' or ')' in formal list, got %s", tok.Kind)
			}
		}
	} else {
		w.Next() // ')'
	}

	if err := w.ConsumeRequired(token.Colon); err != nil {
		return nil, err
	}
	retType, _, err := typeName(w)
	if err != nil {
		return nil, err
	}
	if err := w.ConsumeRequired(token.LBrace); err != nil {
		return nil, err
	}
	bodyWindow := w.CollectTill(token.RBrace)
	body, err := foldExpr(bodyWindow)
	if err != nil {
		return nil, err
	}
	if err := w.ConsumeRequired(token.RBrace); err != nil {
		return nil, err
	}

	return &parsetree.Method{
		Pos:     nameTok.Pos,
		Name:    nameTok.Ident,
		Formals: formals,
		RetType: retType,
		Body:    body,
	}, nil
}

func genAttr(w *tokstream.Stream, nameTok token.Token) (*parsetree.Attr, error) {
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
		init, err = foldExpr(w)
		if err != nil {
			return nil, err
		}
	} else if w.HasNext() {
		return nil, errf(w.Peek().Pos, "unexpected token %s after attribute type", w.Peek().Kind)
	}

	return &parsetree.Attr{Pos: nameTok.Pos, Name: nameTok.Ident, Type: typ, Init: init}, nil
}

// genFormal разбира `ID : TYPE` (§3, §4.4).
func genFormal(w *tokstream.Stream) (parsetree.Formal, error) {
	nameTok, err := w.GetRequired(token.Ident)
	if err != nil {
		return parsetree.Formal{}, err
	}
	if err := w.ConsumeRequired(token.Colon); err != nil {
		return parsetree.Formal{}, err
	}
	typ, _, err := typeName(w)
	if err != nil {
		return parsetree.Formal{}, err
	}
	return parsetree.Formal{Pos: nameTok.Pos, Name: nameTok.Ident, Type: typ}, nil
}
