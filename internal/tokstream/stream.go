// Пакет tokstream реализует BufferedTokenIterator (§4.3): поток токенов с
// отбрасыванием комментариев, предпросмотром, обязательным потреблением
// (consume_required/get_required) и скобочно-зависимым окном collect_till,
// используемым парсером для рекурсивного спуска по ограниченным подпотокам.
package tokstream

import (
	"fmt"

	"github.com/semetekare/rust2go/internal/token"
)

// Stream — буферизованный, отфильтрованный от комментариев поток токенов.
// Не владеет лексером: строится один раз из целого среза токенов (либо
// лексера, либо уже выделенного CollectTill-окна) и продвигается по нему.
type Stream struct {
	toks []token.Token // без Comment-токенов
	pos  int
}

// New строит Stream из среза токенов, отфильтровывая Comment (§4.3:
// "Drops Comment tokens").
func New(toks []token.Token) *Stream {
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind == token.Comment {
			continue
		}
		filtered = append(filtered, t)
	}
	return &Stream{toks: filtered}
}

func (s *Stream) eofToken() token.Token {
	if len(s.toks) == 0 {
		return token.New(token.EOF, token.Position{Line: 1, Col: 1})
	}
	return token.New(token.EOF, s.toks[len(s.toks)-1].Pos)
}

// Peek возвращает следующий токен без продвижения курсора.
func (s *Stream) Peek() token.Token {
	if s.pos >= len(s.toks) {
		return s.eofToken()
	}
	return s.toks[s.pos]
}

// Next возвращает следующий токен и продвигает курсор.
func (s *Stream) Next() token.Token {
	tok := s.Peek()
	if s.pos < len(s.toks) {
		s.pos++
	}
	return tok
}

// HasNext сообщает, остались ли непотреблённые токены (не считая EOF).
func (s *Stream) HasNext() bool {
	return s.pos < len(s.toks) && s.toks[s.pos].Kind != token.EOF
}

// PeekKind сообщает, совпадает ли тип следующего токена с kind (§3: токены
// сравниваются только по типу).
func (s *Stream) PeekKind(kind token.Kind) bool {
	return s.Peek().Kind == kind
}

// ConsumeRequired продвигает курсор, если следующий токен имеет тип kind;
// иначе возвращает ошибку, не потребляя токен.
func (s *Stream) ConsumeRequired(kind token.Kind) error {
	_, err := s.GetRequired(kind)
	return err
}

// GetRequired — то же самое, что ConsumeRequired, но также возвращает сам
// потреблённый токен (§4.3).
func (s *Stream) GetRequired(kind token.Kind) (token.Token, error) {
	tok := s.Peek()
	if tok.Kind != kind {
		return tok, fmt.Errorf("expected %s, got %s at %s", kind, tok.Kind, tok.Pos)
	}
	return s.Next(), nil
}

// opener/closer pairs tracked for bracket-aware depth counting (§4.3):
// "(/)", "{/}", "if/fi", "loop/pool", "case/esac", "let/in".
var openers = map[token.Kind]token.Kind{
	token.LParen: token.RParen,
	token.LBrace: token.RBrace,
	token.If:     token.Fi,
	token.Loop:   token.Pool,
	token.Case:   token.Esac,
	token.Let:    token.In,
}

var closers = func() map[token.Kind]bool {
	m := make(map[token.Kind]bool, len(openers))
	for _, c := range openers {
		m[c] = true
	}
	return m
}()

// CollectTill consumes tokens up to (but not including) the next occurrence
// of kind *at the same bracket/structure depth as the call site* (§4.3),
// returning them as a new Stream window and leaving the terminator token in
// place in s for the caller to consume explicitly. Opening brackets found
// along the way push a depth counter keyed by their own kind; the matching
// closer pops it. A terminator seen while any counter is non-zero does not
// end the window.
//
// Note: multiple bracket kinds can be open simultaneously (e.g. "(" inside
// "if...fi"); CollectTill tracks one counter per opener kind independently,
// matching the per-construct depth counters described in §4.3, and only
// considers the window closed when every counter is back at zero.
func (s *Stream) CollectTill(kind token.Kind) *Stream {
	depths := make(map[token.Kind]int)
	var window []token.Token

	for {
		tok := s.Peek()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == kind && allZero(depths) {
			break
		}
		if _, isOpener := openers[tok.Kind]; isOpener {
			depths[tok.Kind]++
		} else if closers[tok.Kind] {
			decrementForCloser(depths, tok.Kind)
		}
		window = append(window, s.Next())
	}
	return New(window)
}

func allZero(depths map[token.Kind]int) bool {
	for _, d := range depths {
		if d > 0 {
			return false
		}
	}
	return true
}

// decrementForCloser finds which opener this closer matches and decrements
// its counter, guarding against an unmatched closer (depth never negative).
func decrementForCloser(depths map[token.Kind]int, closer token.Kind) {
	for opener, closes := range openers {
		if closes == closer && depths[opener] > 0 {
			depths[opener]--
			return
		}
	}
}

// CollectTillAny работает как CollectTill, но останавливается перед первым
// токеном из kinds (на нулевой глубине), каким бы из них он ни был; сам
// терминатор остаётся непотреблённым в s. Нужен там, где список завершается
// одним из двух разных токенов (например, очередной элемент биндинга let
// заканчивается либо на "," перед следующим биндингом, либо на "in").
func (s *Stream) CollectTillAny(kinds ...token.Kind) *Stream {
	depths := make(map[token.Kind]int)
	var window []token.Token

	matches := func(k token.Kind) bool {
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}

	for {
		tok := s.Peek()
		if tok.Kind == token.EOF {
			break
		}
		if matches(tok.Kind) && allZero(depths) {
			break
		}
		if _, isOpener := openers[tok.Kind]; isOpener {
			depths[tok.Kind]++
		} else if closers[tok.Kind] {
			decrementForCloser(depths, tok.Kind)
		}
		window = append(window, s.Next())
	}
	return New(window)
}

// GenIterTill — вариант CollectTill поверх уже сформированного окна: тот же
// алгоритм windowing, но применяемый рекурсивно внутри подпотока, уже
// являющегося результатом предыдущего CollectTill. Семантически совпадает с
// CollectTill; отдельный метод сохранён ради названия из §4.3 и ради мест,
// где окно передаётся подряд через несколько уровней рекурсивного спуска.
func (s *Stream) GenIterTill(kind token.Kind) *Stream {
	return s.CollectTill(kind)
}
