package lexer_test

import (
	"testing"

	"github.com/semetekare/rust2go/internal/lexer"
	"github.com/semetekare/rust2go/internal/source"
	"github.com/semetekare/rust2go/internal/token"
)

func lexKinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	toks := lexer.LexAll(source.NewFromString(src))
	kinds := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == token.Comment {
			continue
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestLexKeywords(t *testing.T) {
	got := lexKinds(t, "class inherits if then else fi while loop pool")
	want := []token.Kind{
		token.Class, token.Inherits, token.If, token.Then, token.Else,
		token.Fi, token.While, token.Loop, token.Pool, token.EOF,
	}
	assertKinds(t, got, want)
}

func TestLexKeywordsCaseInsensitive(t *testing.T) {
	got := lexKinds(t, "CLASS Class ClAsS")
	want := []token.Kind{token.Class, token.Class, token.Class, token.EOF}
	assertKinds(t, got, want)
}

func TestLexBooleanCasing(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString("true false True False tRue"))
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.True, token.False, token.Ident, token.Ident, token.True, token.EOF}
	assertKinds(t, kinds, want)
}

func TestLexSelfTypeCaseInsensitive(t *testing.T) {
	got := lexKinds(t, "SELF_TYPE self_type Self_Type")
	want := []token.Kind{token.SelfType, token.SelfType, token.SelfType, token.EOF}
	assertKinds(t, got, want)
}

func TestLexOperatorsThreeWay(t *testing.T) {
	got := lexKinds(t, "< <= <-")
	want := []token.Kind{token.Lt, token.Le, token.Assign, token.EOF}
	assertKinds(t, got, want)
}

func TestLexOperatorsTwoWay(t *testing.T) {
	got := lexKinds(t, "= =>")
	want := []token.Kind{token.Eq, token.CaseArm, token.EOF}
	assertKinds(t, got, want)
}

func TestLexLineComment(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString("1 -- a comment\n2"))
	if toks[0].Kind != token.Int || toks[0].IntVal != 1 {
		t.Fatalf("expected Int(1), got %v", toks[0])
	}
	if toks[1].Kind != token.Comment {
		t.Fatalf("expected Comment, got %v", toks[1])
	}
	if toks[2].Kind != token.Int || toks[2].IntVal != 2 {
		t.Fatalf("expected Int(2), got %v", toks[2])
	}
}

func TestLexBlockCommentNotNested(t *testing.T) {
	// §9: первый "*)" закрывает комментарий, даже если внутри встречалось "(*".
	toks := lexer.LexAll(source.NewFromString("(* outer (* inner *) still_here"))
	if toks[0].Kind != token.Comment {
		t.Fatalf("expected Comment, got %v", toks[0])
	}
	if toks[1].Kind != token.Ident || toks[1].Ident != "still_here" {
		t.Fatalf("expected Ident(still_here) after premature comment close, got %v", toks[1])
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString(`"a\tb\nc\\d\"e"`))
	if toks[0].Kind != token.String {
		t.Fatalf("expected String, got %v", toks[0])
	}
	want := "a\tb\nc\\d\"e"
	if toks[0].Str != want {
		t.Fatalf("expected %q, got %q", want, toks[0].Str)
	}
}

func TestLexStringUnrecognizedEscapePreservesBackslash(t *testing.T) {
	// Неопознанный escape не поглощает '\': `\q` раскрывается в два символа
	// `\` и `q`, а не в один `q` (см. decodeEscape).
	toks := lexer.LexAll(source.NewFromString(`"a\qb"`))
	if toks[0].Kind != token.String {
		t.Fatalf("expected String, got %v", toks[0])
	}
	want := `a\qb`
	if toks[0].Str != want {
		t.Fatalf("expected %q, got %q", want, toks[0].Str)
	}
}

func TestLexStringPositionAndValue(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString("\n\n    \"a\\tb\""))
	if toks[0].Kind != token.String {
		t.Fatalf("expected String, got %v", toks[0])
	}
	if toks[0].Str != "a\tb" {
		t.Fatalf("expected %q, got %q", "a\tb", toks[0].Str)
	}
	if toks[0].Pos.Line != 3 || toks[0].Pos.Col != 5 {
		t.Fatalf("expected 3:5, got %s", toks[0].Pos)
	}
}

func TestLexStringNullCharacter(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString("\"a\\\x00b\""))
	if toks[0].Kind != token.Error {
		t.Fatalf("expected Error token, got %v", toks[0])
	}
	if toks[0].Msg != "Null Character" {
		t.Fatalf("expected Null Character error, got %q", toks[0].Msg)
	}
}

func TestLexStringUnterminated(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString(`"abc`))
	if toks[0].Kind != token.Error {
		t.Fatalf("expected Error token, got %v", toks[0])
	}
}

func TestLexStringUnescapedNewline(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString("\"abc\ndef\""))
	if toks[0].Kind != token.Error {
		t.Fatalf("expected Error token, got %v", toks[0])
	}
}

func TestLexIntOverflow(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString("99999999999999999999"))
	if toks[0].Kind != token.Error {
		t.Fatalf("expected Error for overflowing int literal, got %v", toks[0])
	}
}

func TestLexIdentifiers(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString("x my_var _leading foo2"))
	for i, want := range []string{"x", "my_var", "_leading", "foo2"} {
		if toks[i].Kind != token.Ident || toks[i].Ident != want {
			t.Fatalf("token %d: expected Ident(%s), got %v", i, want, toks[i])
		}
	}
}

func TestLexWhitespaceAllForms(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString("a \t\n\r\f\v b"))
	if toks[0].Kind != token.Ident || toks[0].Ident != "a" {
		t.Fatalf("expected Ident(a), got %v", toks[0])
	}
	if toks[1].Kind != token.Ident || toks[1].Ident != "b" {
		t.Fatalf("expected Ident(b), got %v", toks[1])
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	toks := lexer.LexAll(source.NewFromString("$"))
	if toks[0].Kind != token.Error {
		t.Fatalf("expected Error token for '$', got %v", toks[0])
	}
}

func assertKinds(t *testing.T, got, want []token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("at %d: got %v, want %v (full got=%v)", i, got[i], want[i], got)
		}
	}
}
