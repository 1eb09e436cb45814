package gaiji

import "testing"

func testTable() *Table {
	return NewTable(
		map[string]string{"土へんに戸": "坏"},
		map[MenkutenKey]string{{Plane: 1, Row: 1, Cell: 1}: "㐂"},
	)
}

func TestResolvePrimaryTable(t *testing.T) {
	got := Resolve(testTable(), "※［＃土へんに戸］")
	if got != "坏" {
		t.Fatalf("got %q, want 坏", got)
	}
}

func TestResolvePassesThroughSurroundingText(t *testing.T) {
	got := Resolve(testTable(), "before※［＃土へんに戸］after")
	if got != "before坏after" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveUnicodeEscape(t *testing.T) {
	got := Resolve(testTable(), "※［＃U+5742］")
	if got != "坂" {
		t.Fatalf("got %q, want 坂", got)
	}
}

func TestResolveJISCoordinate(t *testing.T) {
	got := Resolve(testTable(), "※［＃第３水準1-1-1］")
	if got != "㐂" {
		t.Fatalf("got %q, want 㐂", got)
	}
}

func TestResolveFallback(t *testing.T) {
	got := Resolve(testTable(), "※［＃絶対に未知の外字］")
	if got != "〓" {
		t.Fatalf("got %q, want fallback", got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	table := testTable()
	once := Resolve(table, "※［＃土へんに戸］の字")
	twice := Resolve(table, once)
	if once != twice {
		t.Fatalf("not idempotent: %q vs %q", once, twice)
	}
}

func TestResolveNoEscapesUnchanged(t *testing.T) {
	s := "変化なし"
	if got := Resolve(testTable(), s); got != s {
		t.Fatalf("got %q, want unchanged %q", got, s)
	}
}

func TestResolveLocationSuffixIgnored(t *testing.T) {
	got := Resolve(testTable(), "※［＃土へんに戸、123ページ-4行］")
	if got != "坏" {
		t.Fatalf("got %q, want 坏", got)
	}
}
