package azscope

import (
	"strings"

	"github.com/japaniel/aozora/pkg/aztoken"
	"github.com/japaniel/aozora/pkg/deco"
	"github.com/japaniel/aozora/pkg/nihongo"
)

// inlineEntry is a sandwiched-begin waiting on inline_stack for a matching
// sandwiched-end; it may not cross a line-break.
type inlineEntry struct {
	Deco deco.Deco
	Span aztoken.ByteSpan
}

// multiEntry is a multiline-begin waiting on multi_stack for a matching
// multiline-end; it may cross line breaks.
type multiEntry struct {
	Deco     deco.Deco
	Category aztoken.MultilineCategory
	Span     aztoken.ByteSpan
}

// wholelineEntry is a whole-line notation waiting for the next line-break
// to close its range.
type wholelineEntry struct {
	Deco deco.Deco
	Span aztoken.ByteSpan
}

// Resolve sweeps the tokenizer's output once, producing the flat token
// stream and the byte-indexed scope map §4.4 describes, plus any
// non-fatal diagnostics raised along the way. original is accepted for
// future diagnostic excerpting; the current diagnostics carry spans only.
func Resolve(tokens []aztoken.Token, original string) ([]FlatToken, ScopeMap, []Diagnostic) {
	var flat []FlatToken
	scopes := ScopeMap{}
	var diags []Diagnostic
	var inlineStack []inlineEntry
	var multiStack []multiEntry
	var wholelineBuffer []wholelineEntry

	n := len(tokens)
	i := 0
	for i < n {
		tok := tokens[i]
		switch tok.Kind {
		case aztoken.Text:
			if i+1 < n && attachBack(tokens[i+1], tok, scopes, &diags) {
				flat = append(flat, FlatToken{Kind: FlatText, Span: tok.Span, Text: tok.Text})
				i += 2
				continue
			}
			flat = append(flat, FlatToken{Kind: FlatText, Span: tok.Span, Text: tok.Text})
			i++

		case aztoken.RubyDelimiter:
			if i+2 < n && tokens[i+1].Kind == aztoken.Text && tokens[i+2].Kind == aztoken.Ruby {
				textTok, rubyTok := tokens[i+1], tokens[i+2]
				flat = append(flat, FlatToken{Kind: FlatText, Span: textTok.Span, Text: textTok.Text})
				scopes.add(Scope{Deco: deco.NewRuby(rubyTok.Text), Span: textTok.Span})
				i += 3
				continue
			}
			diags = append(diags, Diagnostic{Kind: InvalidRubyDelimiterUsage, Span: tok.Span})
			i++

		case aztoken.NotationToken:
			i = handleNotation(tok, i, &flat, scopes, &diags, &inlineStack, &multiStack, &wholelineBuffer)

		case aztoken.Ruby:
			// An orphan ruby body: nothing preceding claimed it via Text's
			// or RubyDelimiter's lookahead.
			diags = append(diags, Diagnostic{Kind: BackrefFailed, Span: tok.Span})
			i++

		case aztoken.OdorijiToken:
			flat = append(flat, FlatToken{Kind: FlatOdoriji, Span: tok.Span, Odoriji: tok.Odoriji})
			i++

		case aztoken.LineBreak:
			flat = append(flat, FlatToken{Kind: FlatBreak, Span: tok.Span, Break: BreakLineBreak})
			if len(inlineStack) > 0 {
				first := inlineStack[0]
				for _, e := range inlineStack {
					scopes.add(Scope{Deco: e.Deco, Span: aztoken.ByteSpan{Start: e.Span.Start, End: tok.Span.Start}})
				}
				diags = append(diags, Diagnostic{
					Kind: UnclosedInlineNote,
					Span: aztoken.ByteSpan{Start: first.Span.Start, End: tok.Span.Start},
				})
				inlineStack = inlineStack[:0]
			}
			for _, e := range wholelineBuffer {
				scopes.add(Scope{Deco: e.Deco, Span: aztoken.ByteSpan{Start: e.Span.End, End: tok.Span.Start}})
			}
			wholelineBuffer = wholelineBuffer[:0]
			i++

		default:
			i++
		}
	}
	return flat, scopes, diags
}

// attachBack implements Text's back-attachment lookahead: if next is a
// Ruby body or a Backref notation, it attaches to tok's trailing run and
// reports true so the caller skips past it.
func attachBack(next aztoken.Token, tok aztoken.Token, scopes ScopeMap, diags *[]Diagnostic) bool {
	switch {
	case next.Kind == aztoken.Ruby:
		if l := trailingKanjiLen(tok.Text); l > 0 {
			scopes.add(Scope{
				Deco: deco.NewRuby(next.Text),
				Span: aztoken.ByteSpan{Start: tok.Span.End - l, End: tok.Span.End},
			})
		}
		return true

	case next.Kind == aztoken.NotationToken && next.Notation.Kind == aztoken.Backref:
		target := next.Notation.Target
		if target != "" && strings.HasSuffix(tok.Text, target) {
			scopes.add(Scope{
				Deco: next.Notation.Deco,
				Span: aztoken.ByteSpan{Start: tok.Span.End - len(target), End: tok.Span.End},
			})
		} else {
			*diags = append(*diags, Diagnostic{Kind: BackrefFailed, Span: next.Span})
		}
		return true
	}
	return false
}

// handleNotation dispatches a NotationToken by its classified shape,
// returning the index to resume scanning from (tok's own index + 1).
func handleNotation(
	tok aztoken.Token,
	i int,
	flat *[]FlatToken,
	scopes ScopeMap,
	diags *[]Diagnostic,
	inlineStack *[]inlineEntry,
	multiStack *[]multiEntry,
	wholelineBuffer *[]wholelineEntry,
) int {
	switch tok.Notation.Kind {
	case aztoken.SandwichedBegin:
		*inlineStack = append(*inlineStack, inlineEntry{Deco: tok.Notation.Deco, Span: tok.Span})

	case aztoken.SandwichedEnd:
		if len(*inlineStack) == 0 {
			*diags = append(*diags, Diagnostic{Kind: IsolatedEndNote, Span: tok.Span})
			break
		}
		for len(*inlineStack) > 0 {
			top := (*inlineStack)[len(*inlineStack)-1]
			*inlineStack = (*inlineStack)[:len(*inlineStack)-1]
			if decoCategoryMatch(top.Deco, tok.Notation.Deco) {
				scopes.add(Scope{Deco: top.Deco, Span: aztoken.ByteSpan{Start: top.Span.Start, End: tok.Span.End}})
				break
			}
			*diags = append(*diags, Diagnostic{
				Kind: CrossingNote,
				Span: aztoken.ByteSpan{Start: top.Span.Start, End: tok.Span.End},
			})
		}

	case aztoken.MultilineBegin:
		*multiStack = append(*multiStack, multiEntry{
			Deco: tok.Notation.Deco, Category: tok.Notation.Category, Span: tok.Span,
		})

	case aztoken.MultilineEnd:
		if len(*multiStack) == 0 {
			*diags = append(*diags, Diagnostic{Kind: IsolatedEndNote, Span: tok.Span})
			break
		}
		for len(*multiStack) > 0 {
			top := (*multiStack)[len(*multiStack)-1]
			*multiStack = (*multiStack)[:len(*multiStack)-1]
			if top.Category == tok.Notation.Category {
				scopes.add(Scope{Deco: top.Deco, Span: aztoken.ByteSpan{Start: top.Span.End, End: tok.Span.Start}})
				break
			}
			*diags = append(*diags, Diagnostic{
				Kind: CrossingNote,
				Span: aztoken.ByteSpan{Start: top.Span.Start, End: tok.Span.End},
			})
		}

	case aztoken.SingleBreak:
		*flat = append(*flat, FlatToken{Kind: FlatBreak, Span: tok.Span, Break: mapBreakKind(tok.Notation.Break)})

	case aztoken.SingleFigure:
		*flat = append(*flat, FlatToken{Kind: FlatFigure, Span: tok.Span, Figure: tok.Notation.Figure})

	case aztoken.WholeLine:
		*wholelineBuffer = append(*wholelineBuffer, wholelineEntry{Deco: tok.Notation.Deco, Span: tok.Span})

	case aztoken.Backref:
		*diags = append(*diags, Diagnostic{Kind: BackrefFailed, Span: tok.Span})

	case aztoken.Unknown:
		// silently dropped, per §4.4.
	}
	return i + 1
}

// decoCategoryMatch reports whether a sandwiched-begin's decoration
// matches a sandwiched-end's decoration closely enough to pair them: same
// top-level Kind, and for Boten/Bosen the same sub-kind (a "丸傍点" only
// closes with "丸傍点終わり", not an unrelated dot style). Smaller/Bigger
// ends carry no step count, so only Kind is compared for those.
func decoCategoryMatch(begin, end deco.Deco) bool {
	switch end.Kind {
	case deco.Boten:
		return begin.Kind == deco.Boten && begin.Boten == end.Boten
	case deco.Bosen:
		return begin.Kind == deco.Bosen && begin.Bosen == end.Bosen
	default:
		return begin.Kind == end.Kind
	}
}

func mapBreakKind(b aztoken.BreakKind) BreakKind {
	switch b {
	case aztoken.BreakPage:
		return BreakPage
	case aztoken.BreakRecto:
		return BreakRecto
	case aztoken.BreakColumn:
		return BreakColumn
	case aztoken.BreakSpread:
		return BreakSpread
	default:
		return BreakLineBreak
	}
}

// trailingKanjiLen returns the byte length of the longest trailing run of
// Kanji characters in s, or 0 if s does not end in a Kanji character.
func trailingKanjiLen(s string) int {
	runes := []rune(s)
	end := len(runes)
	start := end
	for start > 0 && nihongo.IsKanji(runes[start-1]) {
		start--
	}
	if start == end {
		return 0
	}
	return len(string(runes[start:end]))
}
