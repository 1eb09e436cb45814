package nihongo

import (
	"strconv"

	"golang.org/x/text/width"
)

// kanjiDigits maps the nine kanji digit characters to their value; 〇 is
// included for zero, matching how it appears in dates and page numbers.
var kanjiDigits = map[rune]int{
	'〇': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

// kanjiUnits maps the three positional multiplier characters to their place
// value.
var kanjiUnits = map[rune]int{
	'十': 10, '百': 100, '千': 1000,
}

// kanjiLargeUnits maps the two large-scale multiplier characters, applied
// additively to whatever has accumulated so far (e.g. 二万三千四十五 = 23045).
var kanjiLargeUnits = map[rune]int{
	'万': 10000, '億': 100000000,
}

// ParseNumber parses a leading non-negative integer from s, trying in order:
// a full-width digit run, a half-width digit run, and a classical kanji
// numeral run. ok is false and rest equals s when no number is present at
// the very start of s.
func ParseNumber(s string) (n int, rest string, ok bool) {
	if v, r, matched := parseDigitRun(s); matched {
		return v, r, true
	}
	if v, r, matched := parseKanjiNumeral(s); matched {
		return v, r, true
	}
	return 0, s, false
}

func parseDigitRun(s string) (int, string, bool) {
	i := 0
	for i < len(s) {
		r := []rune(s[i:])[0]
		if !isDigitRune(r) {
			break
		}
		i += len(string(r))
	}
	if i == 0 {
		return 0, s, false
	}
	run := s[:i]
	narrow := width.Narrow.String(run)
	v, err := strconv.Atoi(narrow)
	if err != nil {
		return 0, s, false
	}
	return v, s[i:], true
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

// parseKanjiNumeral parses a run of kanji-numeral characters, folding
// units and large-units additively: each unit character multiplies the
// digit immediately preceding it (defaulting to 1 when no digit precedes,
// e.g. 十五 = 15, 百 alone = 100); each large-unit character multiplies
// everything accumulated since the last large-unit boundary and is added to
// a running total (二万三千四十五 = 2*10000 + (3*1000 + 4*10 + 5)).
func parseKanjiNumeral(s string) (int, string, bool) {
	runes := []rune(s)
	i := 0
	total := 0
	section := 0 // accumulates since the last large-unit boundary
	digit := -1  // pending bare digit, -1 if none
	consumed := 0

	flushDigit := func() {
		if digit >= 0 {
			section += digit
			digit = -1
		}
	}

	for i < len(runes) {
		r := runes[i]
		switch {
		case kanjiDigits[r] != 0 || r == '〇':
			flushDigit()
			digit = kanjiDigits[r]
			i++
			consumed = i
		case kanjiUnits[r] != 0:
			mult := kanjiUnits[r]
			d := digit
			if d < 0 {
				d = 1
			}
			section += d * mult
			digit = -1
			i++
			consumed = i
		case kanjiLargeUnits[r] != 0:
			flushDigit()
			mult := kanjiLargeUnits[r]
			if section == 0 {
				section = 1
			}
			total += section * mult
			section = 0
			i++
			consumed = i
		default:
			i = len(runes)
		}
	}
	flushDigit()
	total += section

	if consumed == 0 {
		return 0, s, false
	}
	return total, string(runes[consumed:]), true
}
