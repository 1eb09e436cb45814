package gaiji

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// fallback is substituted when a gaiji tag cannot be resolved by any of the
// three lookup strategies; the miss itself is never surfaced as a
// diagnostic, per spec.md §7.
const fallback = "〓"

// Resolve scans s for every ※［＃…］ escape and replaces each with the
// result of resolving its inner tag body, leaving everything else
// byte-for-byte identical. Resolving an already-resolved string (one with
// no remaining escapes) returns s unchanged.
func Resolve(table *Table, s string) string {
	if !strings.Contains(s, "※［＃") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	rest := s
	for {
		start := strings.Index(rest, "※［＃")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])
		afterOpen := rest[start+len("※［＃"):]
		end := strings.Index(afterOpen, "］")
		if end < 0 {
			// No closing delimiter: treat the rest of the string as plain
			// text rather than looping forever.
			b.WriteString(rest[start:])
			break
		}
		body := afterOpen[:end]
		b.WriteString(resolveTag(table, body))
		rest = afterOpen[end+len("］"):]
	}
	return b.String()
}

// resolveTag implements the §4.1 tag-resolution order: primary table,
// then an explicit Unicode escape, then a JIS X 0213 coordinate, then the
// fallback character.
func resolveTag(table *Table, body string) string {
	key := stripWhitespace(stripLocationSuffix(body))
	if v, ok := table.Primary[key]; ok {
		return v
	}
	if v, ok := resolveUnicodeEscape(body); ok {
		return v
	}
	if v, ok := resolveJISCoordinate(table, body); ok {
		return v
	}
	return fallback
}

// stripLocationSuffix drops a trailing locator such as "、123ページ-4行" or
// "、第3キャプション" from a tag body: the resolver recognises and ignores
// such a suffix for lookup purposes (§4.1) without requiring it. The
// locator always begins with the ideographic comma "、".
func stripLocationSuffix(body string) string {
	if idx := strings.Index(body, "、"); idx >= 0 {
		return body[:idx]
	}
	return body
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// resolveUnicodeEscape looks for "U+HHHHHH" (full- or half-width digits,
// a half- or full-width "+") anywhere in body.
func resolveUnicodeEscape(body string) (string, bool) {
	found := false
	for _, prefix := range []string{"U+", "U＋", "Ｕ＋"} {
		if idx := strings.Index(body, prefix); idx >= 0 {
			body = body[idx+len(prefix):]
			found = true
			break
		}
	}
	if !found {
		return "", false
	}
	i := 0
	runes := []rune(body)
	for i < len(runes) && isHexDigit(runes[i]) {
		i++
	}
	if i == 0 {
		return "", false
	}
	hexDigits := width.Narrow.String(string(runes[:i]))
	v, err := strconv.ParseUint(hexDigits, 16, 32)
	if err != nil {
		return "", false
	}
	return string(rune(v)), true
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return true
	case r >= '０' && r <= '９':
		return true
	}
	return false
}

// resolveJISCoordinate looks for "第N水準 F-A-P" (the level prefix is
// optional and its value is not read or checked) and looks up
// (F, A, P) in the Menkuten table. F ∈ {1,2}; A, P ∈ [1,94].
func resolveJISCoordinate(table *Table, body string) (string, bool) {
	idx := strings.Index(body, "水準")
	search := body
	if idx >= 0 {
		search = body[idx+len("水準"):]
	}
	plane, row, cell, ok := scanCoordinate(search)
	if !ok {
		// The level marker may be entirely absent; try the whole body too.
		plane, row, cell, ok = scanCoordinate(body)
		if !ok {
			return "", false
		}
	}
	if plane != 1 && plane != 2 {
		return "", false
	}
	if row < 1 || row > 94 || cell < 1 || cell > 94 {
		return "", false
	}
	v, ok := table.Menkuten[MenkutenKey{Plane: byte(plane), Row: byte(row), Cell: byte(cell)}]
	return v, ok
}

// scanCoordinate scans the first "F-A-P" triple of digit runs separated by
// ASCII or full-width hyphens.
func scanCoordinate(s string) (plane, row, cell int, ok bool) {
	runes := []rune(s)
	i := 0
	readDigits := func() (int, bool) {
		start := i
		for i < len(runes) && isDigitRune(runes[i]) {
			i++
		}
		if i == start {
			return 0, false
		}
		n, err := strconv.Atoi(width.Narrow.String(string(runes[start:i])))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	skipToDigit := func() bool {
		for i < len(runes) && !isDigitRune(runes[i]) {
			i++
		}
		return i < len(runes)
	}
	isSep := func(r rune) bool { return r == '-' || r == 'ー' || r == '－' }

	if !skipToDigit() {
		return 0, 0, 0, false
	}
	plane, ok = readDigits()
	if !ok {
		return 0, 0, 0, false
	}
	if i >= len(runes) || !isSep(runes[i]) {
		return 0, 0, 0, false
	}
	i++
	row, ok = readDigits()
	if !ok {
		return 0, 0, 0, false
	}
	if i >= len(runes) || !isSep(runes[i]) {
		return 0, 0, 0, false
	}
	i++
	cell, ok = readDigits()
	if !ok {
		return 0, 0, 0, false
	}
	return plane, row, cell, true
}

func isDigitRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if r >= '０' && r <= '９' {
		return true
	}
	return false
}
