// Package nihongo collects the small character-classification and
// number-parsing helpers the tokenizer and notation parsers share — the
// Go-with-x/text equivalent of the original Rust implementation's
// aozora-rs/src/nihongo.rs.
package nihongo

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// kanjiLiterals is spec.md §3's literal set: the iteration mark 々, the
// sum-up mark 〆, the ideographic zero 〇, the ケ-sized counter ヶ, and the
// "same as above" mark 仝 (仝 already falls inside the CJK Unified
// Ideographs block below; it is listed here too only to keep this set a
// direct transcription of §3 rather than a subset of it).
var kanjiLiterals = []rune{
	'々', '〆', '〇', 'ヶ', '仝',
}

// cjkBlocks is the BMP/supplementary range table for CJK Unified Ideographs,
// the Extension-A block, and CJK Compatibility Ideographs.
var cjkBlocks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1},
	},
}

// kanjiTable is the merged range table backing IsKanji: the CJK ideograph
// blocks above, unioned with the literal runes that fall outside them.
var kanjiTable = rangetable.Merge(rangetable.New(kanjiLiterals...), cjkBlocks)

// IsKanji reports whether r belongs to a CJK ideograph block or is one of
// the small set of kanji-adjacent iteration/numeral literals spec.md §3's
// character-class definition names.
func IsKanji(r rune) bool {
	return unicode.Is(kanjiTable, r)
}
