// Пакет lexer реализует Scanner (§4.2): потребляет CharSource и выдаёт
// поток token.Token, с распознаванием ключевых слов, не вкладывающихся
// друг в друга комментариев (см. §9) и escape-последовательностей строк.
package lexer

import (
	"fmt"
	"strings"

	"github.com/semetekare/rust2go/internal/source"
	"github.com/semetekare/rust2go/internal/token"
)

// Scanner — лексический анализатор, потребляющий CharSource и выдающий по
// одному токену за вызов Next.
type Scanner struct {
	src *source.CharSource
}

// New создаёт сканер поверх уже инициализированного CharSource.
func New(src *source.CharSource) *Scanner {
	return &Scanner{src: src}
}

// LexAll прогоняет сканер до конца и возвращает полный срез токенов,
// включая завершающий EOF. Комментарии попадают в срез как обычные токены —
// их отфильтровывает tokstream.BufferedTokenIterator (§4.3), не сам сканер.
func LexAll(src *source.CharSource) []token.Token {
	sc := New(src)
	var toks []token.Token
	for {
		tok := sc.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// isWhitespace проверяет, является ли байт одним из пробельных символов,
// пропускаемых между токенами (§4.2): пробел, таб, LF, CR, form feed,
// vertical tab. CharSource уже нормализует CR/CRLF в LF, так что отдельный
// CR здесь не встретится, но проверка сохранена для полноты соответствия
// спецификации.
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }

// Next пропускает ведущие пробелы и возвращает следующий непустой токен,
// либо token.EOF при исчерпании источника.
func (s *Scanner) Next() token.Token {
	s.skipWhitespace()
	if s.src.IsEOF() {
		return token.New(token.EOF, s.src.CurPos())
	}

	pos := s.src.CurPos()
	ch, _, _ := s.src.Next()

	switch {
	case ch == '-' && s.src.PeekEq('-'):
		return s.scanLineComment(pos)
	case ch == '(' && s.src.PeekEq('*'):
		return s.scanBlockComment(pos)
	case ch == '"':
		return s.scanString(pos)
	case isDigit(ch):
		return s.scanInt(ch, pos)
	case isAlpha(ch):
		return s.scanIdentOrKeyword(ch, pos)
	default:
		return s.scanPunct(ch, pos)
	}
}

func (s *Scanner) skipWhitespace() {
	for {
		ch, ok := s.src.Peek()
		if !ok || !isWhitespace(ch) {
			return
		}
		s.src.Next()
	}
}

// scanLineComment потребляет второй '-' и всё до конца строки либо EOF.
func (s *Scanner) scanLineComment(pos token.Position) token.Token {
	s.src.Next() // второй '-'
	var sb strings.Builder
	for {
		ch, ok := s.src.Peek()
		if !ok || ch == '\n' {
			break
		}
		s.src.Next()
		sb.WriteByte(ch)
	}
	return token.NewComment(sb.String(), pos)
}

// scanBlockComment реализует (* ... *), НЕ вкладывая комментарии друг в
// друга: первый неэкранированный "*)" закрывает комментарий, даже если
// внутри встречались собственные "(*" (§4.2, §9 — источник намеренно не
// поддерживает вложенность, и эта реализация обязана повторить такое
// поведение).
func (s *Scanner) scanBlockComment(pos token.Position) token.Token {
	s.src.Next() // '*'
	var sb strings.Builder
	for {
		ch, ok := s.src.Peek()
		if !ok {
			return token.NewError("EOF in comment", pos)
		}
		if ch == '*' {
			s.src.Next()
			if s.src.NextIfEq(')') {
				return token.NewComment(sb.String(), pos)
			}
			sb.WriteByte('*')
			continue
		}
		s.src.Next()
		sb.WriteByte(ch)
	}
}

// scanString разбирает строковый литерал, раскрывая escape-последовательности
// (§4.2). Нулевой байт внутри строки — лексическая ошибка "Null Character";
// незакрытая строка (EOF или неэкранированный перевод строки) — отдельная
// ошибка.
func (s *Scanner) scanString(pos token.Position) token.Token {
	var sb strings.Builder
	for {
		ch, ok := s.src.Peek()
		if !ok {
			return token.NewError("String terminated incorrectly (EOF reached before closing quote)", pos)
		}
		if ch == '\n' {
			return token.NewError("String terminated incorrectly (unescaped newline)", pos)
		}
		s.src.Next()
		if ch == '"' {
			return token.NewString(sb.String(), pos)
		}
		if ch == 0 {
			return token.NewError("Null Character", pos)
		}
		if ch == '\\' {
			esc, ok := s.src.Peek()
			if !ok {
				return token.NewError("String terminated incorrectly (EOF reached before closing quote)", pos)
			}
			if decoded, matched := decodeEscape(esc); matched {
				s.src.Next()
				sb.WriteByte(decoded)
			} else {
				// Неопознанный escape: обратный слеш сохраняется как есть, а
				// следующий символ обрабатывается отдельной итерацией цикла
				// (включая Null Character, если это он).
				sb.WriteByte('\\')
			}
			continue
		}
		sb.WriteByte(ch)
	}
}

// decodeEscape раскрывает однобайтовый escape-код, следующий за '\\' внутри
// строкового литерала (§4.2). matched=false для любого символа вне таблицы:
// вызывающий код в этом случае не потребляет esc и сохраняет сам обратный
// слеш, а esc разбирается на следующей итерации как обычный символ строки —
// так `\q` раскрывается в два символа `\` и `q`, а не в один `q` (original_source
// lexer/src/iter/char.rs: get_string, match-ветка `x => token_str.push(x)`).
func decodeEscape(esc byte) (byte, bool) {
	switch esc {
	case 't':
		return '\t', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 'f':
		return 0x0C, true
	case 'v':
		return 0x0B, true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	default:
		return 0, false
	}
}

// scanInt читает последовательность цифр и строит 32-битное целое.
// Переполнение int32 — лексическая ошибка (SPEC_FULL.md, Open Question §9
// решён в сторону корректности, которую сам §9 допускает как улучшение).
func (s *Scanner) scanInt(first byte, pos token.Position) token.Token {
	digits := []byte{first}
	for s.src.PeekIsDigit() {
		b, _, _ := s.src.Next()
		digits = append(digits, b)
	}
	var v int64
	for _, d := range digits {
		v = v*10 + int64(d-'0')
		if v > (1<<31 - 1) {
			return token.NewError("integer literal out of range", pos)
		}
	}
	return token.NewInt(int32(v), pos)
}

// scanIdentOrKeyword читает [A-Za-z_][A-Za-z0-9_]* и решает между
// идентификатором и продвижением в ключевое слово (§4.2 keyword promotion).
func (s *Scanner) scanIdentOrKeyword(first byte, pos token.Position) token.Token {
	var sb strings.Builder
	sb.WriteByte(first)
	for {
		ch, ok := s.src.Peek()
		if !ok || !isAlnum(ch) {
			break
		}
		s.src.Next()
		sb.WriteByte(ch)
	}
	return promote(sb.String(), pos)
}

// promote реализует keyword-promotion из §4.2: сравнение с таблицей
// ключевых слов регистронезависимо, кроме true/false — они должны начинаться
// со строчной t/f соответственно; SELF_TYPE сопоставляется так же через тот
// же lower-case свод.
func promote(ident string, pos token.Position) token.Token {
	lower := strings.ToLower(ident)

	switch lower {
	case "true":
		if strings.HasPrefix(ident, "t") {
			return token.New(token.True, pos)
		}
		return token.NewIdent(ident, pos)
	case "false":
		if strings.HasPrefix(ident, "f") {
			return token.New(token.False, pos)
		}
		return token.NewIdent(ident, pos)
	}
	if kind, ok := token.Keywords[lower]; ok {
		return token.New(kind, pos)
	}
	return token.NewIdent(ident, pos)
}

// scanPunct разбирает пунктуацию и составные операторы: трёхвариантный
// выбор для `<=`/`<-`/`<`, двухвариантный для `=>`/`=`, и одиночные символы
// (§4.2).
func (s *Scanner) scanPunct(ch byte, pos token.Position) token.Token {
	switch ch {
	case '.':
		return token.New(token.Dot, pos)
	case ',':
		return token.New(token.Comma, pos)
	case '@':
		return token.New(token.At, pos)
	case '~':
		return token.New(token.Tilde, pos)
	case '+':
		return token.New(token.Plus, pos)
	case '-':
		return token.New(token.Minus, pos)
	case '*':
		return token.New(token.Star, pos)
	case '/':
		return token.New(token.Slash, pos)
	case ':':
		return token.New(token.Colon, pos)
	case ';':
		return token.New(token.Semi, pos)
	case '(':
		return token.New(token.LParen, pos)
	case ')':
		return token.New(token.RParen, pos)
	case '{':
		return token.New(token.LBrace, pos)
	case '}':
		return token.New(token.RBrace, pos)
	case '<':
		if s.src.NextIfEq('=') {
			return token.New(token.Le, pos)
		}
		if s.src.NextIfEq('-') {
			return token.New(token.Assign, pos)
		}
		return token.New(token.Lt, pos)
	case '=':
		if s.src.NextIfEq('>') {
			return token.New(token.CaseArm, pos)
		}
		return token.New(token.Eq, pos)
	default:
		return token.NewError(fmt.Sprintf("unexpected character %q", ch), pos)
	}
}
