package azretok

import (
	"testing"

	"github.com/japaniel/aozora/pkg/aztoken"
	"github.com/japaniel/aozora/pkg/azscope"
	"github.com/japaniel/aozora/pkg/deco"
)

func runPipeline(t *testing.T, input string) ([]Element, []azscope.Diagnostic) {
	t.Helper()
	toks, err := aztoken.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	flat, scopes, diags := azscope.Resolve(toks, input)
	return Retokenize(flat, scopes), diags
}

func TestRetokenizeMinimalBold(t *testing.T) {
	elems, diags := runPipeline(t, "これは［＃太字］強調［＃太字終わり］です。\n")
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}

	var kinds []ElementKind
	for _, e := range elems {
		kinds = append(kinds, e.Kind)
	}
	want := []ElementKind{ElementText, ElementDecoBegin, ElementText, ElementDecoEnd, ElementText, ElementBreak}
	if len(kinds) != len(want) {
		t.Fatalf("got kinds %v, want %v (elems=%+v)", kinds, want, elems)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kind %d = %v, want %v", i, kinds[i], want[i])
		}
	}
	if elems[0].Text != "これは" || elems[2].Text != "強調" || elems[4].Text != "です。" {
		t.Fatalf("unexpected text content: %+v", elems)
	}
	if elems[1].Deco.Kind != deco.Bold || elems[3].Deco.Kind != deco.Bold {
		t.Fatalf("expected Bold deco begin/end, got %+v / %+v", elems[1], elems[3])
	}
}

func TestRetokenizeBalanceInvariant(t *testing.T) {
	elems, _ := runPipeline(t, "［＃太字］A［＃斜体］B［＃太字終わり］C［＃斜体終わり］\n")
	var stack []deco.Deco
	for _, e := range elems {
		switch e.Kind {
		case ElementDecoBegin:
			stack = append(stack, e.Deco)
		case ElementDecoEnd:
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

func TestRetokenizeTextByteConservation(t *testing.T) {
	input := "これは［＃太字］強調［＃太字終わり］です。\n"
	elems, _ := runPipeline(t, input)

	var got string
	for _, e := range elems {
		if e.Kind == ElementText {
			got += e.Text
		}
	}
	want := "これは強調です。"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRetokenizeNoScopesIsIdentityOverFlat(t *testing.T) {
	input := "ただのテキスト。\n"
	toks, err := aztoken.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	flat, scopes, _ := azscope.Resolve(toks, input)
	if len(scopes) != 0 {
		t.Fatalf("expected no scopes in this input, got %+v", scopes)
	}
	elems := Retokenize(flat, scopes)
	if len(elems) != len(flat) {
		t.Fatalf("got %d elements, want %d matching flat tokens", len(elems), len(flat))
	}
	for i, f := range flat {
		if f.Kind == azscope.FlatText && elems[i].Text != f.Text {
			t.Errorf("element %d text = %q, want %q", i, elems[i].Text, f.Text)
		}
	}
}

func TestRetokenizeEmptyInput(t *testing.T) {
	elems, diags := runPipeline(t, "")
	if len(elems) != 0 || len(diags) != 0 {
		t.Fatalf("expected everything empty, got elems=%+v diags=%+v", elems, diags)
	}
}
