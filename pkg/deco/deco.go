// Package deco defines the decoration vocabulary shared by the scope resolver
// and the retokenizer: every way a span of Aozora Bunko markup can decorate
// the text it wraps.
package deco

// Kind identifies which decoration a Deco value carries. The payload fields
// on Deco that are meaningful depend on Kind.
type Kind int

const (
	Bold Kind = iota
	Italic
	Ruby
	Boten
	Bosen
	Indent
	Hanging
	Grounded
	LowFlying
	AHead
	BHead
	CHead
	HinV
	Mama
	Bigger
	Smaller
	VHCentre
)

func (k Kind) String() string {
	switch k {
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case Ruby:
		return "Ruby"
	case Boten:
		return "Boten"
	case Bosen:
		return "Bosen"
	case Indent:
		return "Indent"
	case Hanging:
		return "Hanging"
	case Grounded:
		return "Grounded"
	case LowFlying:
		return "LowFlying"
	case AHead:
		return "AHead"
	case BHead:
		return "BHead"
	case CHead:
		return "CHead"
	case HinV:
		return "HinV"
	case Mama:
		return "Mama"
	case Bigger:
		return "Bigger"
	case Smaller:
		return "Smaller"
	case VHCentre:
		return "VHCentre"
	default:
		return "Unknown"
	}
}

// BotenKind enumerates the emphasis-dot styles, per
// https://www.aozora.gr.jp/annotation/emphasis.html#boten_chuki (referenced by
// the original Rust implementation's deco.rs).
type BotenKind int

const (
	Sesame BotenKind = iota
	Circle
	CircleFilled
	Triangle
	TriangleFilled
	DoubleCircle
	Hebinome
	Crossing
)

func (b BotenKind) String() string {
	switch b {
	case Circle:
		return "白丸傍点"
	case CircleFilled:
		return "丸傍点"
	case Crossing:
		return "ばつ傍点"
	case DoubleCircle:
		return "二重丸傍点"
	case Hebinome:
		return "蛇の目傍点"
	case Sesame:
		return "白ゴマ傍点"
	case Triangle:
		return "白三角傍点"
	case TriangleFilled:
		return "黒三角傍点"
	default:
		return "傍点"
	}
}

// BosenKind enumerates the emphasis-line styles, per
// https://www.aozora.gr.jp/annotation/emphasis.html#bosen_chuki
type BosenKind int

const (
	Plain BosenKind = iota
	Double
	Chain
	Dashed
	Wavy
)

func (b BosenKind) String() string {
	switch b {
	case Chain:
		return "鎖線"
	case Dashed:
		return "破線"
	case Double:
		return "二重傍線"
	case Plain:
		return "傍線"
	case Wavy:
		return "波線"
	default:
		return "傍線"
	}
}

// Deco is a tagged union over every decoration variant spec.md §3 names. It
// is a plain comparable struct (no slices or maps) so scope-matching code can
// compare decorations with ==, the way the Rust source compares
// SandwichedBegins against SandwichedEnds via do_match.
type Deco struct {
	Kind Kind

	// Ruby holds the reading text for Kind == Ruby.
	Ruby string

	// Boten/Bosen hold the sub-kind for Kind == Boten / Kind == Bosen.
	Boten BotenKind
	Bosen BosenKind

	// N holds the single integer payload for Indent, LowFlying, Bigger and
	// Smaller.
	N int

	// HangingFirst/HangingSubsequent hold the two integer payloads for Kind
	// == Hanging.
	HangingFirst      int
	HangingSubsequent int
}

func NewBold() Deco   { return Deco{Kind: Bold} }
func NewItalic() Deco { return Deco{Kind: Italic} }
func NewRuby(body string) Deco {
	return Deco{Kind: Ruby, Ruby: body}
}
func NewBoten(k BotenKind) Deco { return Deco{Kind: Boten, Boten: k} }
func NewBosen(k BosenKind) Deco { return Deco{Kind: Bosen, Bosen: k} }
func NewIndent(n int) Deco      { return Deco{Kind: Indent, N: n} }
func NewHanging(first, subsequent int) Deco {
	return Deco{Kind: Hanging, HangingFirst: first, HangingSubsequent: subsequent}
}
func NewGrounded() Deco       { return Deco{Kind: Grounded} }
func NewLowFlying(n int) Deco { return Deco{Kind: LowFlying, N: n} }
func NewAHead() Deco          { return Deco{Kind: AHead} }
func NewBHead() Deco          { return Deco{Kind: BHead} }
func NewCHead() Deco          { return Deco{Kind: CHead} }
func NewHinV() Deco           { return Deco{Kind: HinV} }
func NewMama() Deco           { return Deco{Kind: Mama} }
func NewBigger(n int) Deco    { return Deco{Kind: Bigger, N: n} }
func NewSmaller(n int) Deco   { return Deco{Kind: Smaller, N: n} }
func NewVHCentre() Deco       { return Deco{Kind: VHCentre} }

// Figure is the payload of a FlatToken::Figure, carrying an image path, its
// caption and an optional (width, height) size in characters.
type Figure struct {
	Path    string
	Caption string
	Width   int
	Height  int
	HasSize bool
}
