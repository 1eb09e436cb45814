// Package azretok walks the scope resolver's flat token stream and scope
// map into the final linear stream of decorated elements, per spec.md
// §4.5 — the Go counterpart of the original Rust implementation's
// retokenizer/definitions.rs.
package azretok

import (
	"math"
	"sort"

	"github.com/japaniel/aozora/pkg/aztoken"
	"github.com/japaniel/aozora/pkg/azscope"
	"github.com/japaniel/aozora/pkg/deco"
)

// ElementKind identifies which Retokenized element variant a value is.
type ElementKind int

const (
	ElementText ElementKind = iota
	ElementBreak
	ElementOdoriji
	ElementFigure
	ElementDecoBegin
	ElementDecoEnd
)

// Element is one item of the final retokenized stream.
type Element struct {
	Kind    ElementKind
	Text    string
	Break   azscope.BreakKind
	Odoriji aztoken.Odoriji
	Figure  deco.Figure
	Deco    deco.Deco
}

// closeQueue mirrors the original Rust source's DecoQueue: a LIFO stack of
// pending DecoEnd events keyed by the byte position they fire at.
type closeQueue map[int][]deco.Deco

func (q closeQueue) push(pos int, d deco.Deco) {
	q[pos] = append(q[pos], d)
}

// pop removes and returns the most recently pushed pending close at pos,
// or false if none remain.
func (q closeQueue) pop(pos int) (deco.Deco, bool) {
	stack := q[pos]
	if len(stack) == 0 {
		return deco.Deco{}, false
	}
	last := stack[len(stack)-1]
	q[pos] = stack[:len(stack)-1]
	return last, true
}

// walker holds the shared, monotonically-advancing state the retokenizer
// needs: the sorted list of distinct scope-start positions (with a cursor
// into it) and the pending-close queue. Both the outer token loop and the
// inner Text-token splitter advance the same cursor, so a scope is opened
// exactly once regardless of whether its start coincides with a token
// boundary or falls in the middle of a Text span.
type walker struct {
	starts []int
	si     int
	scopes azscope.ScopeMap
	closes closeQueue
	out    []Element
}

// closeUpTo drains every pending close with key <= p, in LIFO order
// within each key and in increasing key order across keys.
func (w *walker) closeUpTo(p int) {
	positions := make([]int, 0, len(w.closes))
	for pos := range w.closes {
		if pos <= p {
			positions = append(positions, pos)
		}
	}
	sort.Ints(positions)
	for _, pos := range positions {
		for {
			d, ok := w.closes.pop(pos)
			if !ok {
				break
			}
			w.out = append(w.out, Element{Kind: ElementDecoEnd, Deco: d})
		}
		delete(w.closes, pos)
	}
}

// openUpTo opens every not-yet-opened scope whose start is <= p, in
// increasing start order (and the scope map's insertion order within a
// start), registering each one's matching close.
func (w *walker) openUpTo(p int) {
	for w.si < len(w.starts) && w.starts[w.si] <= p {
		for _, s := range w.scopes[w.starts[w.si]] {
			w.out = append(w.out, Element{Kind: ElementDecoBegin, Deco: s.Deco})
			w.closes.push(s.Span.End, s.Deco)
		}
		w.si++
	}
}

// Retokenize walks flat in order, opening and closing decoration
// boundaries so that for every scope (deco, [s, e)) exactly one
// DecoBegin(deco) is emitted at s and one DecoEnd(deco) at e, with all
// boundaries strictly nested.
func Retokenize(flat []azscope.FlatToken, scopes azscope.ScopeMap) []Element {
	starts := make([]int, 0, len(scopes))
	for k := range scopes {
		starts = append(starts, k)
	}
	sort.Ints(starts)

	w := &walker{starts: starts, scopes: scopes, closes: closeQueue{}}

	for _, tok := range flat {
		w.closeUpTo(tok.Span.Start)
		w.openUpTo(tok.Span.Start)

		switch tok.Kind {
		case azscope.FlatText:
			w.emitText(tok)
		case azscope.FlatBreak:
			w.out = append(w.out, Element{Kind: ElementBreak, Break: tok.Break})
		case azscope.FlatOdoriji:
			w.out = append(w.out, Element{Kind: ElementOdoriji, Odoriji: tok.Odoriji})
		case azscope.FlatFigure:
			w.out = append(w.out, Element{Kind: ElementFigure, Figure: tok.Figure})
		}
	}

	w.openUpTo(math.MaxInt)
	w.closeUpTo(math.MaxInt)
	return w.out
}

// emitText walks tok's text one boundary at a time — at character
// boundaries, since every scope start/end is constructed from rune
// boundaries upstream — splitting it into Text elements wherever a
// decoration opens or closes inside the span, so no boundary ever lands
// inside a character.
func (w *walker) emitText(tok azscope.FlatToken) {
	start, end := tok.Span.Start, tok.Span.End
	cursor := start
	for cursor < end {
		boundary := end
		if w.si < len(w.starts) && w.starts[w.si] > cursor && w.starts[w.si] < boundary {
			boundary = w.starts[w.si]
		}
		for pos, stack := range w.closes {
			if len(stack) > 0 && pos > cursor && pos < boundary {
				boundary = pos
			}
		}

		if boundary > cursor {
			w.out = append(w.out, Element{Kind: ElementText, Text: tok.Text[cursor-start : boundary-start]})
		}
		cursor = boundary
		if cursor == end {
			break
		}

		w.closeUpTo(cursor)
		w.openUpTo(cursor)
	}
}
