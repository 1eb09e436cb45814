package errbag

import (
	"testing"

	"github.com/japaniel/aozora/pkg/azscope"
)

func TestCollectorFinish(t *testing.T) {
	var c Collector[[]int]
	c.Push(azscope.Diagnostic{Kind: azscope.BackrefFailed})
	c.Push(azscope.Diagnostic{Kind: azscope.CrossingNote})

	bag := c.Finish([]int{1, 2, 3})
	if bag.OK() {
		t.Fatal("expected OK() to be false with diagnostics present")
	}
	if len(bag.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(bag.Diagnostics))
	}
	if len(bag.Value) != 3 {
		t.Fatalf("got value %v", bag.Value)
	}
}

func TestBagOKWithNoDiagnostics(t *testing.T) {
	var c Collector[string]
	bag := c.Finish("done")
	if !bag.OK() {
		t.Fatal("expected OK() to be true with no diagnostics")
	}
	if bag.Value != "done" {
		t.Fatalf("got value %q", bag.Value)
	}
}

func TestCollectorPushAll(t *testing.T) {
	var c Collector[int]
	c.PushAll([]azscope.Diagnostic{
		{Kind: azscope.IsolatedEndNote},
		{Kind: azscope.UnclosedInlineNote},
	})
	bag := c.Finish(0)
	if len(bag.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(bag.Diagnostics))
	}
}
