package aozora

import (
	"testing"

	"github.com/japaniel/aozora/pkg/azretok"
	"github.com/japaniel/aozora/pkg/azscope"
	"github.com/japaniel/aozora/pkg/deco"
	"github.com/japaniel/aozora/pkg/gaiji"
)

func emptyTable() *gaiji.Table {
	return gaiji.NewTable(map[string]string{}, map[gaiji.MenkutenKey]string{})
}

// scenario A: minimal bold.
func TestTransformMinimalBold(t *testing.T) {
	bag, err := Transform("これは［＃太字］強調［＃太字終わり］です。\n", emptyTable())
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	if !bag.OK() {
		t.Fatalf("expected no diagnostics, got %+v", bag.Diagnostics)
	}

	var texts []string
	var sawBold bool
	for _, e := range bag.Value {
		if e.Kind == azretok.ElementText {
			texts = append(texts, e.Text)
		}
		if e.Kind == azretok.ElementDecoBegin && e.Deco.Kind == deco.Bold {
			sawBold = true
		}
	}
	want := []string{"これは", "強調", "です。"}
	if len(texts) != len(want) {
		t.Fatalf("got texts %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("text %d = %q, want %q", i, texts[i], want[i])
		}
	}
	if !sawBold {
		t.Fatal("expected a Bold decoration in the output")
	}
}

// scenario B: ruby via backref.
func TestTransformRubyBackref(t *testing.T) {
	bag, err := Transform("青空文庫《あおぞらぶんこ》\n", emptyTable())
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	if !bag.OK() {
		t.Fatalf("expected no diagnostics, got %+v", bag.Diagnostics)
	}
	var sawRuby bool
	for _, e := range bag.Value {
		if e.Kind == azretok.ElementDecoBegin && e.Deco.Kind == deco.Ruby && e.Deco.Ruby == "あおぞらぶんこ" {
			sawRuby = true
		}
	}
	if !sawRuby {
		t.Fatalf("expected a Ruby decoration, got %+v", bag.Value)
	}
}

// scenario C: ruby with explicit delimiter over non-kanji text.
func TestTransformRubyDelimiterNonKanji(t *testing.T) {
	bag, err := Transform("｜そら《sora》\n", emptyTable())
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	if !bag.OK() {
		t.Fatalf("expected no diagnostics, got %+v", bag.Diagnostics)
	}
	var sawRuby bool
	for _, e := range bag.Value {
		if e.Kind == azretok.ElementDecoBegin && e.Deco.Kind == deco.Ruby && e.Deco.Ruby == "sora" {
			sawRuby = true
		}
	}
	if !sawRuby {
		t.Fatal("expected a Ruby decoration over そら")
	}
}

// scenario D: unclosed inline note — still emits the decoration, with a
// diagnostic recorded.
func TestTransformUnclosedInline(t *testing.T) {
	bag, err := Transform("［＃太字］強調\nつぎ\n", emptyTable())
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	if bag.OK() {
		t.Fatal("expected an UnclosedInlineNote diagnostic")
	}
	var found bool
	for _, d := range bag.Diagnostics {
		if d.Kind == azscope.UnclosedInlineNote {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected UnclosedInlineNote, got %+v", bag.Diagnostics)
	}
}

// scenario F: backref mismatch — no decoration, one diagnostic, text intact.
func TestTransformBackrefMismatch(t *testing.T) {
	bag, err := Transform("本文［＃「別語」は太字］\n", emptyTable())
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	var failed int
	for _, d := range bag.Diagnostics {
		if d.Kind == azscope.BackrefFailed {
			failed++
		}
	}
	if failed != 1 {
		t.Fatalf("expected exactly one BackrefFailed, got %d (%+v)", failed, bag.Diagnostics)
	}
	for _, e := range bag.Value {
		if e.Kind == azretok.ElementDecoBegin {
			t.Fatalf("expected no decoration on mismatch, got %+v", e)
		}
	}
}

// scenario G: crossed tags — properly nested output plus a CrossingNote.
func TestTransformCrossedTags(t *testing.T) {
	bag, err := Transform("［＃太字］A［＃斜体］B［＃太字終わり］C［＃斜体終わり］\n", emptyTable())
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	var crossing int
	for _, d := range bag.Diagnostics {
		if d.Kind == azscope.CrossingNote {
			crossing++
		}
	}
	if crossing != 1 {
		t.Fatalf("expected exactly one CrossingNote, got %d (%+v)", crossing, bag.Diagnostics)
	}

	var stack []deco.Deco
	for _, e := range bag.Value {
		switch e.Kind {
		case azretok.ElementDecoBegin:
			stack = append(stack, e.Deco)
		case azretok.ElementDecoEnd:
			if len(stack) == 0 {
				t.Fatalf("DecoEnd with nothing open: %+v", e)
			}
			top := stack[len(stack)-1]
			if top != e.Deco {
				t.Fatalf("improper nesting: closing %+v but innermost open is %+v", e.Deco, top)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		t.Fatalf("unbalanced: %d decorations still open", len(stack))
	}
}

// gaiji resolution feeds the rest of the pipeline: an escape resolved to a
// Kanji by the primary table should read as ordinary text downstream.
func TestTransformGaijiResolutionFeedsTokenizer(t *testing.T) {
	table := gaiji.NewTable(map[string]string{"土へんに成": "城"}, map[gaiji.MenkutenKey]string{})
	bag, err := Transform("柳河の※［＃土へんに成］下町。\n", table)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	var got string
	for _, e := range bag.Value {
		if e.Kind == azretok.ElementText {
			got += e.Text
		}
	}
	want := "柳河の城下町。"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTransformEmptyInput(t *testing.T) {
	bag, err := Transform("", emptyTable())
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	if !bag.OK() || len(bag.Value) != 0 {
		t.Fatalf("expected empty OK bag, got %+v", bag)
	}
}
