// Package errbag is the Go-generic counterpart of the original Rust
// implementation's AZResult/AZResultC: a carrier for a payload plus an
// ordered list of non-fatal diagnostics the pipeline never raises as an
// error, per spec.md §4.6 and the "Language-agnostic re-architecture
// hints" recommending Go generics over a lifetime-parameterized sum type.
package errbag

import "github.com/japaniel/aozora/pkg/azscope"

// Bag holds a payload of type T alongside every diagnostic accumulated
// while producing it. The core never raises: any anomaly is appended here
// and the pipeline continues.
type Bag[T any] struct {
	Value       T
	Diagnostics []azscope.Diagnostic
}

// OK reports whether the bag accumulated no diagnostics.
func (b Bag[T]) OK() bool {
	return len(b.Diagnostics) == 0
}

// Collector accumulates diagnostics as a pipeline runs, then is finished
// into a Bag once the payload is ready.
type Collector[T any] struct {
	diagnostics []azscope.Diagnostic
}

// Push appends one diagnostic to the collector.
func (c *Collector[T]) Push(d azscope.Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// PushAll appends every diagnostic in ds, in order.
func (c *Collector[T]) PushAll(ds []azscope.Diagnostic) {
	c.diagnostics = append(c.diagnostics, ds...)
}

// Finish produces the final Bag for value, carrying every diagnostic
// pushed so far.
func (c *Collector[T]) Finish(value T) Bag[T] {
	return Bag[T]{Value: value, Diagnostics: c.diagnostics}
}
