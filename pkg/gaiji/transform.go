package gaiji

import (
	"strings"

	"golang.org/x/text/transform"
)

// Transformer adapts Resolve to golang.org/x/text/transform.Transformer so
// a caller streaming a large document through io.Reader/transform.NewReader
// never has to materialize the whole gaiji-resolved string up front — the
// same shape golang.org/x/text/width's own transform.go exposes.
type Transformer struct {
	table *Table
}

// NewTransformer returns a Transformer backed by table.
func NewTransformer(table *Table) *Transformer {
	return &Transformer{table: table}
}

var _ transform.Transformer = (*Transformer)(nil)

func (t *Transformer) Reset() {}

// Transform resolves any complete ※［＃…］ escapes found in src and copies
// the result into dst. An escape that starts before the end of src but
// whose closing "］" has not yet arrived is left unconsumed so the caller
// can supply more input; this mirrors the short-destination/short-source
// handling transform.Transformer implementations are expected to perform.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	s := string(src)
	safe := len(s)
	if idx := lastUnresolvedEscapeStart(s); idx >= 0 && !atEOF {
		safe = idx
	}
	resolved := Resolve(t.table, s[:safe])
	if len(dst) < len(resolved) {
		// Write nothing rather than a partial prefix: committing some of
		// resolved while reporting nSrc=0 would make the caller re-feed
		// s[:safe] on the next call and duplicate the bytes already
		// written here. Forcing a larger dst is the only consistent fix.
		return 0, 0, transform.ErrShortDst
	}
	n := copy(dst, resolved)
	return n, safe, nil
}

// lastUnresolvedEscapeStart returns the byte offset of a "※［＃" that has
// no matching "］" yet within s, or -1 if every opened escape is closed.
func lastUnresolvedEscapeStart(s string) int {
	const open = "※［＃"
	const closer = "］"
	pos := 0
	lastOpen := -1
	for {
		idx := indexFrom(s, open, pos)
		if idx < 0 {
			break
		}
		closeIdx := indexFrom(s, closer, idx+len(open))
		if closeIdx < 0 {
			lastOpen = idx
			break
		}
		pos = closeIdx + len(closer)
	}
	return lastOpen
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	idx := strings.Index(s[from:], substr)
	if idx < 0 {
		return -1
	}
	return from + idx
}
