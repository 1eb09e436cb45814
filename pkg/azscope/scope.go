// Package azscope resolves the token stream aztoken produces into a flat
// token stream plus a byte-indexed scope map, per spec.md §4.4 — the Go
// counterpart of the original Rust implementation's scopenizer.rs.
package azscope

import (
	"github.com/japaniel/aozora/pkg/aztoken"
	"github.com/japaniel/aozora/pkg/deco"
)

// BreakKind enumerates the five ways a document may break, carried by a
// FlatToken of kind Break.
type BreakKind int

const (
	BreakLineBreak BreakKind = iota
	BreakPage
	BreakRecto
	BreakColumn
	BreakSpread
)

// FlatKind identifies which FlatToken variant a value is.
type FlatKind int

const (
	FlatText FlatKind = iota
	FlatBreak
	FlatOdoriji
	FlatFigure
)

// FlatToken is one element of the scope resolver's linear output: either a
// span of surviving text, a line/page/column/spread break, an odoriji
// repeat mark, or an embedded figure.
type FlatToken struct {
	Kind    FlatKind
	Span    aztoken.ByteSpan
	Text    string
	Break   BreakKind
	Odoriji aztoken.Odoriji
	Figure  deco.Figure
}

// Scope pairs a decoration with the half-open byte span of resolved input
// it applies to. Invariant: Span.Start < Span.End, and both endpoints lie
// on character boundaries of the resolved input.
type Scope struct {
	Deco deco.Deco
	Span aztoken.ByteSpan
}

// ScopeMap maps a scope's start byte to the (possibly several) scopes that
// begin there, preserving insertion order within a start byte — the Go
// equivalent of the Rust source's Scopenized(HashMap<usize, Vec<ScopeKind>>).
type ScopeMap map[int][]Scope

func (m ScopeMap) add(s Scope) {
	m[s.Span.Start] = append(m[s.Span.Start], s)
}

// DiagnosticKind enumerates the non-fatal failure modes §7 names.
type DiagnosticKind int

const (
	BackrefFailed DiagnosticKind = iota
	InvalidRubyDelimiterUsage
	IsolatedEndNote
	CrossingNote
	UnclosedInlineNote
)

func (k DiagnosticKind) String() string {
	switch k {
	case BackrefFailed:
		return "BackrefFailed"
	case InvalidRubyDelimiterUsage:
		return "InvalidRubyDelimiterUsage"
	case IsolatedEndNote:
		return "IsolatedEndNote"
	case CrossingNote:
		return "CrossingNote"
	case UnclosedInlineNote:
		return "UnclosedInlineNote"
	default:
		return "Unknown"
	}
}

// Diagnostic is a single non-fatal anomaly recorded during scope
// resolution, carrying the offending span so a caller can render a
// context-annotated message from the original input.
type Diagnostic struct {
	Kind    DiagnosticKind
	Span    aztoken.ByteSpan
	Message string
}
