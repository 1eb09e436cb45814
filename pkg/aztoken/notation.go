package aztoken

import (
	"strings"

	"github.com/japaniel/aozora/pkg/deco"
	"github.com/japaniel/aozora/pkg/nihongo"
)

// NotationKind identifies which of the five §4.3 notation shapes (plus the
// Unknown fallback) a Notation value is.
type NotationKind int

const (
	Unknown NotationKind = iota
	MultilineBegin
	MultilineEnd
	SingleBreak
	SingleFigure
	Backref
	SandwichedBegin
	SandwichedEnd
	WholeLine
)

// MultilineCategory distinguishes which multi-line block kind a
// MultilineBegin/MultilineEnd pair closes: indent/hanging share the 字下げ
// closing word, low-flying closes with 字寄せ, grounded closes with 地付け.
type MultilineCategory int

const (
	CategoryIndent MultilineCategory = iota
	CategoryGrounded
	CategoryLowFlying
)

// Notation is a tagged struct over the notation bodies §4.3 enumerates.
// Only the fields relevant to Kind are meaningful.
type Notation struct {
	Kind NotationKind

	// Deco carries the decoration a Backref, SandwichedBegin/End, or
	// WholeLine/MultilineBegin notation names.
	Deco deco.Deco

	// Category distinguishes MultilineBegin/End closing-word matching.
	Category MultilineCategory

	// Break carries the Break kind for a SingleBreak notation.
	Break BreakKind

	// Figure carries the figure payload for a SingleFigure notation.
	Figure deco.Figure

	// Target is the backref's quoted target text, without its corner
	// brackets, for Kind == Backref.
	Target string

	// Literal preserves the raw notation body for Kind == Unknown.
	Literal string
}

// BreakKind enumerates the break variants a SingleBreak notation carries.
// BreakLine is the zero value; no notation produces it.
type BreakKind int

const (
	BreakLine BreakKind = iota
	BreakPage
	BreakRecto
	BreakColumn
	BreakSpread
)

// classifyNotation parses the body inside ［＃…］ (with the body already
// known not to be preceded by ※), trying each of the five shapes in the
// order §4.3 fixes: multiline begin/end, single, backref, sandwiched
// begin/end, whole-line. An unrecognised shape becomes Unknown.
func classifyNotation(body string) Notation {
	if n, ok := parseMultiline(body); ok {
		return n
	}
	if n, ok := parseSingle(body); ok {
		return n
	}
	if n, ok := parseBackref(body); ok {
		return n
	}
	if n, ok := parseSandwiched(body); ok {
		return n
	}
	if n, ok := parseWholeLine(body); ok {
		return n
	}
	return Notation{Kind: Unknown, Literal: body}
}

// --- Multiline begin/end (1) ---------------------------------------------

func parseMultiline(body string) (Notation, bool) {
	if strings.HasPrefix(body, "ここから") {
		return parseMultilineBegin(strings.TrimPrefix(body, "ここから"))
	}
	if strings.HasPrefix(body, "ここで") {
		return parseMultilineEnd(strings.TrimPrefix(body, "ここで"))
	}
	return Notation{}, false
}

func parseMultilineBegin(rest string) (Notation, bool) {
	if strings.HasPrefix(rest, "改行天付き、折り返して") {
		n, tail, ok := nihongo.ParseNumber(strings.TrimPrefix(rest, "改行天付き、折り返して"))
		if !ok || tail != "字下げ" {
			return Notation{}, false
		}
		return Notation{Kind: MultilineBegin, Category: CategoryIndent, Deco: deco.NewHanging(0, n)}, true
	}
	if n, tail, ok := nihongo.ParseNumber(rest); ok {
		switch {
		case tail == "字下げ":
			return Notation{Kind: MultilineBegin, Category: CategoryIndent, Deco: deco.NewIndent(n)}, true
		case strings.HasPrefix(tail, "字下げ、折り返して"):
			m, tail2, ok := nihongo.ParseNumber(strings.TrimPrefix(tail, "字下げ、折り返して"))
			if !ok || tail2 != "字下げ" {
				return Notation{}, false
			}
			return Notation{Kind: MultilineBegin, Category: CategoryIndent, Deco: deco.NewHanging(n, m)}, true
		}
	}
	if rest == "地付き" {
		return Notation{Kind: MultilineBegin, Category: CategoryGrounded, Deco: deco.NewGrounded()}, true
	}
	if strings.HasPrefix(rest, "地から") {
		n, tail, ok := nihongo.ParseNumber(strings.TrimPrefix(rest, "地から"))
		if !ok || tail != "字上げ" {
			return Notation{}, false
		}
		return Notation{Kind: MultilineBegin, Category: CategoryLowFlying, Deco: deco.NewLowFlying(n)}, true
	}
	return Notation{}, false
}

func parseMultilineEnd(rest string) (Notation, bool) {
	rest = trimEndingSuffix(rest)
	switch rest {
	case "字下げ":
		return Notation{Kind: MultilineEnd, Category: CategoryIndent}, true
	case "字寄せ":
		return Notation{Kind: MultilineEnd, Category: CategoryLowFlying}, true
	case "地付け":
		return Notation{Kind: MultilineEnd, Category: CategoryGrounded}, true
	}
	return Notation{}, false
}

// trimEndingSuffix strips the "終わり"/"おわり" close-word synonym so the
// preceding category name ("字下げ終わり" etc.) can be matched directly.
func trimEndingSuffix(s string) string {
	if t, ok := strings.CutSuffix(s, "終わり"); ok {
		return t
	}
	if t, ok := strings.CutSuffix(s, "おわり"); ok {
		return t
	}
	return s
}

// --- Single (2) ------------------------------------------------------------

func parseSingle(body string) (Notation, bool) {
	switch body {
	case "改ページ":
		return Notation{Kind: SingleBreak, Break: BreakPage}, true
	case "改丁":
		return Notation{Kind: SingleBreak, Break: BreakRecto}, true
	case "改段":
		return Notation{Kind: SingleBreak, Break: BreakColumn}, true
	case "改見開き":
		return Notation{Kind: SingleBreak, Break: BreakSpread}, true
	}
	if fig, ok := parseFigure(body); ok {
		return Notation{Kind: SingleFigure, Figure: fig}, true
	}
	return Notation{}, false
}

// parseFigure parses "caption（path、横N×縦M）" with the size portion
// optional: "caption（path）".
func parseFigure(body string) (deco.Figure, bool) {
	open := strings.Index(body, "（")
	if open < 0 {
		return deco.Figure{}, false
	}
	closeIdx := strings.LastIndex(body, "）")
	if closeIdx < open {
		return deco.Figure{}, false
	}
	caption := body[:open]
	inner := body[open+len("（") : closeIdx]

	path := inner
	width, height := 0, 0
	hasSize := false
	if comma := strings.Index(inner, "、"); comma >= 0 {
		path = inner[:comma]
		sizePart := inner[comma+len("、"):]
		w, h, ok := parseFigureSize(sizePart)
		if !ok {
			return deco.Figure{}, false
		}
		width, height = w, h
		hasSize = true
	}
	if path == "" {
		return deco.Figure{}, false
	}
	return deco.Figure{Path: path, Caption: caption, Width: width, Height: height, HasSize: hasSize}, true
}

// parseFigureSize parses "横N×縦M".
func parseFigureSize(s string) (w, h int, ok bool) {
	s = strings.TrimPrefix(s, "横")
	w, rest, matched := nihongo.ParseNumber(s)
	if !matched {
		return 0, 0, false
	}
	rest = strings.TrimPrefix(rest, "×")
	rest = strings.TrimPrefix(rest, "x")
	rest = strings.TrimPrefix(rest, "縦")
	h, _, matched = nihongo.ParseNumber(rest)
	if !matched {
		return 0, 0, false
	}
	return w, h, true
}

// --- Backref (3) -----------------------------------------------------------

func parseBackref(body string) (Notation, bool) {
	if !strings.HasPrefix(body, "「") {
		return Notation{}, false
	}
	closeIdx := strings.Index(body, "」")
	if closeIdx < 0 {
		return Notation{}, false
	}
	target := body[len("「"):closeIdx]
	tail := body[closeIdx+len("」"):]

	switch tail {
	case "は太字":
		return Notation{Kind: Backref, Target: target, Deco: deco.NewBold()}, true
	case "は斜体":
		return Notation{Kind: Backref, Target: target, Deco: deco.NewItalic()}, true
	case "は大見出し":
		return Notation{Kind: Backref, Target: target, Deco: deco.NewAHead()}, true
	case "は中見出し":
		return Notation{Kind: Backref, Target: target, Deco: deco.NewBHead()}, true
	case "は小見出し":
		return Notation{Kind: Backref, Target: target, Deco: deco.NewCHead()}, true
	case "はママ", "に「ママ」の注記":
		return Notation{Kind: Backref, Target: target, Deco: deco.NewMama()}, true
	case "は縦中横", "は横一列":
		return Notation{Kind: Backref, Target: target, Deco: deco.NewHinV()}, true
	}
	if strings.HasPrefix(tail, "に") {
		inner := strings.TrimPrefix(tail, "に")
		if b, ok := parseBoten(inner); ok {
			return Notation{Kind: Backref, Target: target, Deco: deco.NewBoten(b)}, true
		}
		if b, ok := parseBosen(inner); ok {
			return Notation{Kind: Backref, Target: target, Deco: deco.NewBosen(b)}, true
		}
	}
	if strings.HasPrefix(tail, "は") {
		rest := strings.TrimPrefix(tail, "は")
		if n, r, ok := nihongo.ParseNumber(rest); ok {
			switch r {
			case "段階小さな文字":
				return Notation{Kind: Backref, Target: target, Deco: deco.NewSmaller(n)}, true
			case "段階大きな文字":
				return Notation{Kind: Backref, Target: target, Deco: deco.NewBigger(n)}, true
			}
		}
		if on, variation, ok := parseVariation(rest); ok {
			return Notation{Kind: Backref, Target: target, Deco: deco.NewRuby(on + "／" + variation)}, true
		}
	}
	return Notation{}, false
}

// parseVariation parses "<on>では「<variation>」" — the character-variation
// backref form, e.g. "附では「付」".
func parseVariation(rest string) (on, variation string, ok bool) {
	idx := strings.Index(rest, "では「")
	if idx < 0 {
		return "", "", false
	}
	on = rest[:idx]
	after := rest[idx+len("では「"):]
	closeIdx := strings.Index(after, "」")
	if closeIdx < 0 || on == "" {
		return "", "", false
	}
	return on, after[:closeIdx], true
}

// --- Sandwiched begin/end (4) ----------------------------------------------

func parseSandwiched(body string) (Notation, bool) {
	if size, step, ok := parseSizedBegin(body); ok {
		if size == sizeSmall {
			return Notation{Kind: SandwichedBegin, Deco: deco.NewSmaller(step)}, true
		}
		return Notation{Kind: SandwichedBegin, Deco: deco.NewBigger(step)}, true
	}
	if size, ok := parseSizedEnd(body); ok {
		if size == sizeSmall {
			return Notation{Kind: SandwichedEnd, Deco: deco.NewSmaller(0)}, true
		}
		return Notation{Kind: SandwichedEnd, Deco: deco.NewBigger(0)}, true
	}

	switch body {
	case "大見出し":
		return Notation{Kind: SandwichedBegin, Deco: deco.NewAHead()}, true
	case "中見出し":
		return Notation{Kind: SandwichedBegin, Deco: deco.NewBHead()}, true
	case "小見出し":
		return Notation{Kind: SandwichedBegin, Deco: deco.NewCHead()}, true
	case "太字":
		return Notation{Kind: SandwichedBegin, Deco: deco.NewBold()}, true
	case "斜体":
		return Notation{Kind: SandwichedBegin, Deco: deco.NewItalic()}, true
	case "大見出し終わり":
		return Notation{Kind: SandwichedEnd, Deco: deco.NewAHead()}, true
	case "中見出し終わり":
		return Notation{Kind: SandwichedEnd, Deco: deco.NewBHead()}, true
	case "小見出し終わり":
		return Notation{Kind: SandwichedEnd, Deco: deco.NewCHead()}, true
	case "太字終わり":
		return Notation{Kind: SandwichedEnd, Deco: deco.NewBold()}, true
	case "斜体終わり":
		return Notation{Kind: SandwichedEnd, Deco: deco.NewItalic()}, true
	}

	if end, ok := strings.CutSuffix(body, "終わり"); ok {
		if b, ok := parseBoten(end); ok {
			return Notation{Kind: SandwichedEnd, Deco: deco.NewBoten(b)}, true
		}
		if b, ok := parseBosen(end); ok {
			return Notation{Kind: SandwichedEnd, Deco: deco.NewBosen(b)}, true
		}
	}
	if b, ok := parseBoten(body); ok {
		return Notation{Kind: SandwichedBegin, Deco: deco.NewBoten(b)}, true
	}
	if b, ok := parseBosen(body); ok {
		return Notation{Kind: SandwichedBegin, Deco: deco.NewBosen(b)}, true
	}
	return Notation{}, false
}

type sizeDirection int

const (
	sizeSmall sizeDirection = iota
	sizeBig
)

// parseSizedBegin parses "<N>段階(小|大)さな文字".
func parseSizedBegin(body string) (sizeDirection, int, bool) {
	n, rest, ok := nihongo.ParseNumber(body)
	if !ok {
		return 0, 0, false
	}
	rest = strings.TrimPrefix(rest, "段階")
	switch rest {
	case "小さな文字":
		return sizeSmall, n, true
	case "大きな文字":
		return sizeBig, n, true
	}
	return 0, 0, false
}

// parseSizedEnd parses "小さな文字終わり"/"大きな文字終わり".
func parseSizedEnd(body string) (sizeDirection, bool) {
	switch body {
	case "小さな文字終わり":
		return sizeSmall, true
	case "大きな文字終わり":
		return sizeBig, true
	}
	return 0, false
}

// --- Whole-line (5) ---------------------------------------------------------

func parseWholeLine(body string) (Notation, bool) {
	body = strings.TrimPrefix(body, "天から")
	if body == "地付き" {
		return Notation{Kind: WholeLine, Deco: deco.NewGrounded()}, true
	}
	if body == "ページの左右中央" {
		return Notation{Kind: WholeLine, Deco: deco.NewVHCentre()}, true
	}
	if strings.HasPrefix(body, "地から") {
		n, tail, ok := nihongo.ParseNumber(strings.TrimPrefix(body, "地から"))
		if !ok || tail != "字上げ" {
			return Notation{}, false
		}
		return Notation{Kind: WholeLine, Deco: deco.NewLowFlying(n)}, true
	}
	if n, tail, ok := nihongo.ParseNumber(body); ok && tail == "字下げ" {
		return Notation{Kind: WholeLine, Deco: deco.NewIndent(n)}, true
	}
	return Notation{}, false
}

// --- Shared boten/bosen definitions -----------------------------------------

func parseBoten(s string) (deco.BotenKind, bool) {
	names := []struct {
		prefix string
		kind   deco.BotenKind
	}{
		{"白ゴマ", deco.Sesame},
		{"白丸", deco.Circle},
		{"丸", deco.CircleFilled},
		{"白三角", deco.Triangle},
		{"黒三角", deco.TriangleFilled},
		{"二重丸", deco.DoubleCircle},
		{"蛇の目", deco.Hebinome},
		{"ばつ", deco.Crossing},
	}
	for _, n := range names {
		if rest, ok := strings.CutPrefix(s, n.prefix); ok && isBotenTail(rest) {
			return n.kind, true
		}
	}
	if isBotenTail(s) {
		return deco.Sesame, true
	}
	return 0, false
}

func isBotenTail(s string) bool {
	return s == "傍点" || s == "圏点"
}

func parseBosen(s string) (deco.BosenKind, bool) {
	switch s {
	case "傍線":
		return deco.Plain, true
	case "二重傍線":
		return deco.Double, true
	case "鎖線":
		return deco.Chain, true
	case "破線":
		return deco.Dashed, true
	case "波線":
		return deco.Wavy, true
	}
	return 0, false
}
