package tokstream_test

import (
	"testing"

	"github.com/semetekare/rust2go/internal/lexer"
	"github.com/semetekare/rust2go/internal/source"
	"github.com/semetekare/rust2go/internal/token"
	"github.com/semetekare/rust2go/internal/tokstream"
)

func streamOf(t *testing.T, src string) *tokstream.Stream {
	t.Helper()
	toks := lexer.LexAll(source.NewFromString(src))
	return tokstream.New(toks)
}

func TestStreamDropsComments(t *testing.T) {
	s := streamOf(t, "1 -- comment\n2")
	if s.Peek().Kind != token.Int || s.Peek().IntVal != 1 {
		t.Fatalf("expected Int(1) first, got %v", s.Peek())
	}
	s.Next()
	if s.Peek().Kind != token.Int || s.Peek().IntVal != 2 {
		t.Fatalf("expected Int(2) after comment skipped, got %v", s.Peek())
	}
}

func TestStreamConsumeRequired(t *testing.T) {
	s := streamOf(t, "; x")
	if err := s.ConsumeRequired(token.Semi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.ConsumeRequired(token.Semi); err == nil {
		t.Fatalf("expected error consuming ident as semi")
	}
}

func TestStreamGetRequired(t *testing.T) {
	s := streamOf(t, "foo")
	tok, err := s.GetRequired(token.Ident)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Ident != "foo" {
		t.Fatalf("expected ident 'foo', got %q", tok.Ident)
	}
}

func TestStreamGetRequiredErrorDoesNotConsume(t *testing.T) {
	s := streamOf(t, "foo")
	if _, err := s.GetRequired(token.Int); err == nil {
		t.Fatalf("expected error")
	}
	// Токен не должен был быть потреблён при ошибке.
	if s.Peek().Kind != token.Ident {
		t.Fatalf("expected ident still pending, got %v", s.Peek())
	}
}

func TestCollectTillSimple(t *testing.T) {
	s := streamOf(t, "1 + 2 ; 3")
	window := s.CollectTill(token.Semi)
	if !s.PeekKind(token.Semi) {
		t.Fatalf("expected terminator left in place, got %v", s.Peek())
	}

	var got []token.Kind
	for window.HasNext() {
		got = append(got, window.Next().Kind)
	}
	want := []token.Kind{token.Int, token.Plus, token.Int}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestCollectTillBracketAware(t *testing.T) {
	// terminator ';' inside "(" ... ")" должен не считаться границей окна.
	s := streamOf(t, "foo(1; 2); 3")
	window := s.CollectTill(token.Semi)
	if !s.PeekKind(token.Semi) {
		t.Fatalf("expected outer terminator left in place, got %v", s.Peek())
	}
	// Окно должно содержать весь вызов foo(1; 2), включая внутренний ';'.
	count := 0
	for window.HasNext() {
		window.Next()
		count++
	}
	// foo ( 1 ; 2 ) == 6 tokens
	if count != 6 {
		t.Fatalf("expected 6 tokens in window, got %d", count)
	}
}

func TestCollectTillIfFiDepth(t *testing.T) {
	s := streamOf(t, "if x then if y then 1 else 2 fi else 3 fi ; rest")
	window := s.CollectTill(token.Semi)
	if !s.PeekKind(token.Semi) {
		t.Fatalf("expected terminator left in place, got %v", s.Peek())
	}
	// The window must include both 'fi' tokens (nested if) without the
	// terminator search stopping early.
	fiCount := 0
	for window.HasNext() {
		if window.Next().Kind == token.Fi {
			fiCount++
		}
	}
	if fiCount != 2 {
		t.Fatalf("expected 2 'fi' tokens inside window, got %d", fiCount)
	}
}

func TestCollectTillAnyStopsAtFirstMatch(t *testing.T) {
	s := streamOf(t, "x : Int, y : Int in x")
	window := s.CollectTillAny(token.Comma, token.In)
	if !s.PeekKind(token.Comma) {
		t.Fatalf("expected comma left in place, got %v", s.Peek())
	}
	count := 0
	for window.HasNext() {
		window.Next()
		count++
	}
	// x : Int == 3 tokens
	if count != 3 {
		t.Fatalf("expected 3 tokens in first binding window, got %d", count)
	}
}

func TestCollectTillNoTerminatorConsumesToEOF(t *testing.T) {
	s := streamOf(t, "1 + 2")
	window := s.CollectTill(token.Semi)
	count := 0
	for window.HasNext() {
		window.Next()
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 tokens, got %d", count)
	}
	if !s.PeekKind(token.EOF) {
		t.Fatalf("expected outer stream at EOF, got %v", s.Peek())
	}
}
