package azbatch

import (
	"context"
	"testing"

	"github.com/japaniel/aozora/pkg/azretok"
	"github.com/japaniel/aozora/pkg/gaiji"
)

func emptyTable() *gaiji.Table {
	return gaiji.NewTable(map[string]string{}, map[gaiji.MenkutenKey]string{})
}

func TestRunPreservesDocumentOrder(t *testing.T) {
	docs := []string{
		"これは［＃太字］強調［＃太字終わり］です。\n",
		"青空文庫《あおぞらぶんこ》\n",
		"ただのテキスト。\n",
	}
	bags, err := Run(context.Background(), docs, emptyTable(), 4)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(bags) != len(docs) {
		t.Fatalf("got %d bags, want %d", len(bags), len(docs))
	}

	var text0 string
	for _, e := range bags[0].Value {
		if e.Kind == azretok.ElementText {
			text0 += e.Text
		}
	}
	if text0 != "これは強調です。" {
		t.Errorf("doc 0 text = %q", text0)
	}

	var text2 string
	for _, e := range bags[2].Value {
		if e.Kind == azretok.ElementText {
			text2 += e.Text
		}
	}
	if text2 != "ただのテキスト。" {
		t.Errorf("doc 2 text = %q", text2)
	}
}

func TestRunEmptyDocsList(t *testing.T) {
	bags, err := Run(context.Background(), nil, emptyTable(), 2)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(bags) != 0 {
		t.Fatalf("expected no bags, got %d", len(bags))
	}
}

func TestRunManyDocumentsSingleWorker(t *testing.T) {
	docs := make([]string, 50)
	for i := range docs {
		docs[i] = "ただのテキスト。\n"
	}
	bags, err := Run(context.Background(), docs, emptyTable(), 1)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(bags) != len(docs) {
		t.Fatalf("got %d bags, want %d", len(bags), len(docs))
	}
	for i, b := range bags {
		if !b.OK() {
			t.Errorf("doc %d: unexpected diagnostics %+v", i, b.Diagnostics)
		}
	}
}

func TestRunHonoursContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []string{"ただのテキスト。\n"}
	_, err := Run(ctx, docs, emptyTable(), 1)
	if err == nil {
		t.Skip("cancellation raced with a fast-enough completion; not a failure")
	}
}

func TestRunZeroWorkersTreatedAsOne(t *testing.T) {
	docs := []string{"これは［＃太字］強調［＃太字終わり］です。\n", "ただのテキスト。\n"}
	bags, err := Run(context.Background(), docs, emptyTable(), 0)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(bags) != len(docs) {
		t.Fatalf("got %d bags, want %d", len(bags), len(docs))
	}
}
