package aztoken

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// lexer walks a gaiji-resolved string one byte position at a time, in the
// style of flosch-pongo2's lexer (start/pos byte bookkeeping; there is no
// width field and no next/backup helpers, only advanceRune) but as a single
// flat scan rather than a state-function table — the Aozora grammar has no
// nested lexical modes.
type lexer struct {
	input  string
	start  int
	pos    int
	tokens []Token
}

// Tokenize scans resolved (a gaiji-resolved string) into the ordered token
// sequence §4.2 describes. It returns an error when a "［＃" notation or a
// "《" ruby has no closing delimiter, or when a ruby body is empty; every
// other input tokenizes without error.
func Tokenize(resolved string) ([]Token, error) {
	l := &lexer{input: resolved}
	for l.pos < len(l.input) {
		if err := l.step(); err != nil {
			return nil, err
		}
	}
	l.emitPendingText()
	return l.tokens, nil
}

func (l *lexer) step() error {
	switch {
	case strings.HasPrefix(l.input[l.pos:], "｜"):
		l.emitPendingText()
		l.emitSimple(RubyDelimiter, "｜")
	case strings.HasPrefix(l.input[l.pos:], "\n"):
		l.emitPendingText()
		l.emitSimple(LineBreak, "\n")
	case strings.HasPrefix(l.input[l.pos:], "［＃") && !l.precededByGaijiMarker():
		l.emitPendingText()
		if err := l.lexNotation(); err != nil {
			return err
		}
	case strings.HasPrefix(l.input[l.pos:], "《"):
		l.emitPendingText()
		if err := l.lexRuby(); err != nil {
			return err
		}
	case strings.HasPrefix(l.input[l.pos:], "／"):
		l.emitPendingText()
		l.lexOdoriji()
	default:
		l.advanceRune()
	}
	return nil
}

// precededByGaijiMarker reports whether the three bytes immediately before
// pos are "※": a "［＃" immediately after "※" is a gaiji escape that
// survived resolution (unresolved or malformed), not a Notation trigger
// (§4.2 "Notation | ［＃ after no preceding ※").
func (l *lexer) precededByGaijiMarker() bool {
	const marker = "※"
	return l.pos >= len(marker) && l.input[l.pos-len(marker):l.pos] == marker
}

// advanceRune moves pos forward by one rune without emitting anything,
// leaving the pending text run to grow.
func (l *lexer) advanceRune() {
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
}

// emitPendingText flushes input[start:pos] as a Text token if non-empty.
func (l *lexer) emitPendingText() {
	if l.pos > l.start {
		l.tokens = append(l.tokens, Token{
			Kind: Text,
			Span: ByteSpan{Start: l.start, End: l.pos},
			Text: l.input[l.start:l.pos],
		})
	}
	l.start = l.pos
}

// emitSimple emits a single-delimiter token (RubyDelimiter, LineBreak) and
// advances past it.
func (l *lexer) emitSimple(kind Kind, delim string) {
	l.tokens = append(l.tokens, Token{
		Kind: kind,
		Span: ByteSpan{Start: l.pos, End: l.pos + len(delim)},
	})
	l.pos += len(delim)
	l.start = l.pos
}

func (l *lexer) lexNotation() error {
	open := l.pos
	bodyStart := l.pos + len("［＃")
	end := strings.Index(l.input[bodyStart:], "］")
	if end < 0 {
		return fmt.Errorf("aztoken: unterminated notation starting at byte %d", open)
	}
	closeAt := bodyStart + end
	body := l.input[bodyStart:closeAt]
	notation := classifyNotation(body)
	l.tokens = append(l.tokens, Token{
		Kind:     NotationToken,
		Span:     ByteSpan{Start: open, End: closeAt + len("］")},
		Notation: notation,
	})
	l.pos = closeAt + len("］")
	l.start = l.pos
	return nil
}

func (l *lexer) lexRuby() error {
	open := l.pos
	bodyStart := l.pos + len("《")
	end := strings.Index(l.input[bodyStart:], "》")
	if end < 0 {
		return fmt.Errorf("aztoken: unterminated ruby starting at byte %d", open)
	}
	closeAt := bodyStart + end
	body := l.input[bodyStart:closeAt]
	if body == "" {
		return fmt.Errorf("aztoken: empty ruby body at byte %d", open)
	}
	l.tokens = append(l.tokens, Token{
		Kind: Ruby,
		Span: ByteSpan{Start: open, End: closeAt + len("》")},
		Text: body,
	})
	l.pos = closeAt + len("》")
	l.start = l.pos
	return nil
}

// lexOdoriji recognises "／" optionally followed by "″" then required "＼".
// If the trailing "＼" is absent, the "／" is folded back into plain text
// instead of being rejected.
func (l *lexer) lexOdoriji() {
	start := l.pos
	p := l.pos + len("／")
	hasDakuten := strings.HasPrefix(l.input[p:], "″")
	if hasDakuten {
		p += len("″")
	}
	if !strings.HasPrefix(l.input[p:], "＼") {
		// Not actually an odoriji; treat "／" as ordinary text and retry
		// from the next rune.
		l.advanceRune()
		return
	}
	p += len("＼")
	l.tokens = append(l.tokens, Token{
		Kind:    OdorijiToken,
		Span:    ByteSpan{Start: start, End: p},
		Odoriji: Odoriji{HasDakuten: hasDakuten},
	})
	l.pos = p
	l.start = l.pos
}
