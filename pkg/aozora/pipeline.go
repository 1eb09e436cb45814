// Package aozora wires the four pipeline stages — gaiji resolution,
// tokenization, scope resolution, and retokenization — into a single
// entry point, per spec.md §2 "Flow".
package aozora

import (
	"fmt"

	"github.com/japaniel/aozora/pkg/aztoken"
	"github.com/japaniel/aozora/pkg/azretok"
	"github.com/japaniel/aozora/pkg/azscope"
	"github.com/japaniel/aozora/pkg/errbag"
	"github.com/japaniel/aozora/pkg/gaiji"
)

// Transform runs the complete pipeline over input: gaiji escapes are
// resolved against table, the result is tokenized and scope-resolved, and
// the scope map is woven into the final linear stream of elements. Every
// non-fatal anomaly the scope resolver notices is carried in the returned
// bag's Diagnostics rather than raised; error is populated only if the
// tokenizer rejects the input (an unterminated ［＃ notation or 《 ruby, or
// an empty ruby body), and it is returned rather than panicked on, since
// nothing that touches document text should be allowed to panic.
func Transform(input string, table *gaiji.Table) (errbag.Bag[[]azretok.Element], error) {
	var collector errbag.Collector[[]azretok.Element]

	resolved := gaiji.Resolve(table, input)

	toks, err := aztoken.Tokenize(resolved)
	if err != nil {
		return collector.Finish(nil), fmt.Errorf("aozora: tokenize: %w", err)
	}

	flat, scopes, diags := azscope.Resolve(toks, resolved)
	collector.PushAll(diags)

	elems := azretok.Retokenize(flat, scopes)
	return collector.Finish(elems), nil
}
