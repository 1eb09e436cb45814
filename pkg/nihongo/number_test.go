package nihongo

import "testing"

func TestParseNumberHalfWidth(t *testing.T) {
	n, rest, ok := ParseNumber("123ページ")
	if !ok || n != 123 || rest != "ページ" {
		t.Fatalf("got n=%d rest=%q ok=%v", n, rest, ok)
	}
}

func TestParseNumberFullWidth(t *testing.T) {
	n, rest, ok := ParseNumber("１２３ページ")
	if !ok || n != 123 || rest != "ページ" {
		t.Fatalf("got n=%d rest=%q ok=%v", n, rest, ok)
	}
}

func TestParseNumberKanji(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"十五", 15},
		{"百", 100},
		{"二十三", 23},
		{"三千四十五", 3045},
		{"二万三千四十五", 23045},
		{"〇", 0},
		{"九", 9},
	}
	for _, c := range cases {
		n, rest, ok := ParseNumber(c.in)
		if !ok || n != c.want || rest != "" {
			t.Errorf("ParseNumber(%q) = n=%d rest=%q ok=%v, want %d", c.in, n, rest, ok, c.want)
		}
	}
}

func TestParseNumberNone(t *testing.T) {
	n, rest, ok := ParseNumber("ページ")
	if ok || n != 0 || rest != "ページ" {
		t.Fatalf("got n=%d rest=%q ok=%v, want no match", n, rest, ok)
	}
}
