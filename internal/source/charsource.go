// Пакет source реализует CharSource — буферизованный байтовый ридер,
// лежащий в основе сканера (§4.1). Снимает BOM, нормализует перевод строки
// и отслеживает позицию (line, col) для последующей разметки токенов.
package source

import (
	"bufio"
	"io"

	"github.com/semetekare/rust2go/internal/token"
)

// bom — три байта UTF-8 BOM, которые CharSource отбрасывает, если они
// присутствуют в начале потока.
var bom = [3]byte{0xEF, 0xBB, 0xBF}

// CharSource читает исходный текст байт за байтом (§4.2: "UTF-8 byte
// stream"), предоставляя peek/next с отслеживанием позиции. Строковые
// литералы пропускают не-ASCII байты насквозь (см. Scanner), остальной код
// CharSource работает побайтово и не декодирует руны самостоятельно.
type CharSource struct {
	r    *bufio.Reader
	line int
	col  int

	cur     byte
	haveCur bool
	atEOF   bool
}

// New оборачивает r в CharSource, снимая ведущий BOM при его наличии.
func New(r io.Reader) *CharSource {
	cs := &CharSource{r: bufio.NewReader(r), line: 1, col: 0}
	cs.stripBOM()
	cs.advance()
	return cs
}

// NewFromString — удобный конструктор для тестов и небольших блоков текста.
func NewFromString(s string) *CharSource {
	return New(stringReader(s))
}

func stringReader(s string) io.Reader {
	return &stringReaderImpl{s: s}
}

// stringReaderImpl — минимальный io.Reader поверх строки, чтобы не тянуть
// strings.NewReader ради одного вызова (сохраняет пакет зависимым только от
// io/bufio, как и у учителя).
type stringReaderImpl struct {
	s   string
	pos int
}

func (r *stringReaderImpl) Read(p []byte) (int, error) {
	if r.pos >= len(r.s) {
		return 0, io.EOF
	}
	n := copy(p, r.s[r.pos:])
	r.pos += n
	return n, nil
}

// stripBOM просматривает (Peek) первые три байта и отбрасывает их, если это
// BOM; иначе ничего не потребляет.
func (cs *CharSource) stripBOM() {
	b, err := cs.r.Peek(3)
	if err == nil && b[0] == bom[0] && b[1] == bom[1] && b[2] == bom[2] {
		cs.r.Discard(3)
	}
}

// advance читает следующий сырой байт в cs.cur, обновляя line/col согласно
// правилам нормализации перевода строки (§4.1): CR, CRLF и LF все сводятся
// к единому продвижению строки, колонка сбрасывается в 0 перед тем как
// Next() вернёт первый символ новой строки.
func (cs *CharSource) advance() {
	b, err := cs.r.ReadByte()
	if err != nil {
		cs.haveCur = false
		cs.atEOF = true
		return
	}
	if b == '\r' {
		// CRLF схлопывается в одну логическую LF.
		if nb, perr := cs.r.Peek(1); perr == nil && nb[0] == '\n' {
			cs.r.Discard(1)
		}
		b = '\n'
	}
	cs.cur = b
	cs.haveCur = true
	if b == '\n' {
		cs.line++
		cs.col = 0
	} else {
		cs.col++
	}
}

// Next возвращает текущий байт вместе с его позицией и продвигает источник.
// Второе возвращаемое значение — false, если поток исчерпан.
func (cs *CharSource) Next() (byte, token.Position, bool) {
	if !cs.haveCur {
		return 0, cs.CurPos(), false
	}
	ch := cs.cur
	pos := token.Position{Line: cs.line, Col: cs.col}
	cs.advance()
	return ch, pos, true
}

// Peek возвращает текущий байт без продвижения источника.
func (cs *CharSource) Peek() (byte, bool) {
	if !cs.haveCur {
		return 0, false
	}
	return cs.cur, true
}

// PeekEq сообщает, совпадает ли текущий байт с ch.
func (cs *CharSource) PeekEq(ch byte) bool {
	cur, ok := cs.Peek()
	return ok && cur == ch
}

// PeekIsDigit сообщает, является ли текущий байт десятичной цифрой.
func (cs *CharSource) PeekIsDigit() bool {
	cur, ok := cs.Peek()
	return ok && cur >= '0' && cur <= '9'
}

// NextIfEq продвигает источник и возвращает true, только если текущий байт
// равен ch; иначе не трогает позицию курсора.
func (cs *CharSource) NextIfEq(ch byte) bool {
	if !cs.PeekEq(ch) {
		return false
	}
	cs.advance()
	return true
}

// IsEOF сообщает, исчерпан ли источник.
func (cs *CharSource) IsEOF() bool {
	return !cs.haveCur
}

// CurPos возвращает позицию следующего символа, который будет возвращён
// Next() — используется сканером для разметки начала токена.
func (cs *CharSource) CurPos() token.Position {
	return token.Position{Line: cs.line, Col: cs.col}
}
