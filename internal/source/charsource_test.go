package source_test

import (
	"testing"

	"github.com/semetekare/rust2go/internal/source"
)

func TestCharSourceBasic(t *testing.T) {
	cs := source.NewFromString("ab")

	ch, pos, ok := cs.Next()
	if !ok || ch != 'a' {
		t.Fatalf("expected 'a', got %q ok=%v", ch, ok)
	}
	if pos.Line != 1 || pos.Col != 1 {
		t.Fatalf("expected 1:1, got %d:%d", pos.Line, pos.Col)
	}

	ch, pos, ok = cs.Next()
	if !ok || ch != 'b' {
		t.Fatalf("expected 'b', got %q ok=%v", ch, ok)
	}
	if pos.Col != 2 {
		t.Fatalf("expected col 2, got %d", pos.Col)
	}

	if _, _, ok = cs.Next(); ok {
		t.Fatalf("expected EOF")
	}
	if !cs.IsEOF() {
		t.Fatalf("expected IsEOF true")
	}
}

func TestCharSourceNewlineNormalization(t *testing.T) {
	for _, nl := range []string{"\n", "\r\n", "\r"} {
		cs := source.NewFromString("a" + nl + "b")

		ch, pos, _ := cs.Next()
		if ch != 'a' || pos.Line != 1 || pos.Col != 1 {
			t.Fatalf("%q: expected a@1:1, got %q@%d:%d", nl, ch, pos.Line, pos.Col)
		}

		ch, pos, _ = cs.Next()
		if ch != '\n' {
			t.Fatalf("%q: expected normalized LF, got %q", nl, ch)
		}

		ch, pos, _ = cs.Next()
		if ch != 'b' || pos.Line != 2 || pos.Col != 1 {
			t.Fatalf("%q: expected b@2:1, got %q@%d:%d", nl, ch, pos.Line, pos.Col)
		}
	}
}

func TestCharSourceBOM(t *testing.T) {
	withBOM := string([]byte{0xEF, 0xBB, 0xBF}) + "x"
	cs := source.NewFromString(withBOM)

	ch, pos, ok := cs.Next()
	if !ok || ch != 'x' {
		t.Fatalf("expected 'x' after BOM strip, got %q ok=%v", ch, ok)
	}
	if pos.Line != 1 || pos.Col != 1 {
		t.Fatalf("expected 1:1 after BOM, got %d:%d", pos.Line, pos.Col)
	}
}

func TestCharSourcePeekAndNextIfEq(t *testing.T) {
	cs := source.NewFromString("<=")

	if !cs.PeekEq('<') {
		t.Fatalf("expected peek '<'")
	}
	if cs.NextIfEq('>') {
		t.Fatalf("NextIfEq should not advance on mismatch")
	}
	if !cs.NextIfEq('<') {
		t.Fatalf("NextIfEq should advance on match")
	}
	if !cs.PeekEq('=') {
		t.Fatalf("expected peek '=' after consuming '<'")
	}
}

func TestCharSourcePeekIsDigit(t *testing.T) {
	cs := source.NewFromString("9x")
	if !cs.PeekIsDigit() {
		t.Fatalf("expected digit peek")
	}
	cs.Next()
	if cs.PeekIsDigit() {
		t.Fatalf("expected non-digit peek")
	}
}
