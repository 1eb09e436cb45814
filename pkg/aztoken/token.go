// Package aztoken turns a gaiji-resolved Aozora Bunko string into a flat
// sequence of tokens (§4.2) and classifies each notation's body into one of
// the five notation shapes §4.3 names. It is modeled on the original Rust
// implementation's tokenizer.rs/tokenizer/parser.rs, scanned in a single
// forward pass the way flosch-pongo2's lexer tracks start/pos byte
// offsets — without that lexer's nested state-function dispatch, since the
// Aozora grammar never needs it.
package aztoken

// ByteSpan is a half-open [Start, End) byte range into the resolved input.
type ByteSpan struct {
	Start int
	End   int
}

// Kind identifies which of the six token shapes §4.2 names a Token is.
type Kind int

const (
	Text Kind = iota
	RubyDelimiter
	Ruby
	NotationToken
	OdorijiToken
	LineBreak
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case RubyDelimiter:
		return "RubyDelimiter"
	case Ruby:
		return "Ruby"
	case NotationToken:
		return "Notation"
	case OdorijiToken:
		return "Odoriji"
	case LineBreak:
		return "LineBreak"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit of the resolved input. The fields meaningful
// for a given Kind:
//
//	Text          -> Text
//	RubyDelimiter -> (none)
//	Ruby          -> Text (the ruby reading)
//	NotationToken -> Notation
//	OdorijiToken  -> Odoriji
//	LineBreak     -> (none)
type Token struct {
	Kind     Kind
	Span     ByteSpan
	Text     string
	Notation Notation
	Odoriji  Odoriji
}

// Odoriji records whether the 濁点 (voicing mark, ″) accompanied a ／＼
// repeat mark.
type Odoriji struct {
	HasDakuten bool
}
