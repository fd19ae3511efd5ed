package relative

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	clockToken
	numberToken
	wordToken
)

var (
	whitespaceMatcher = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	clockMatcher      = parsly.NewToken(clockToken, "hh:mm[:ss]", &clock{})
	numberMatcher     = parsly.NewToken(numberToken, "[+-]number", &number{})
	wordMatcher       = parsly.NewToken(wordToken, "word", &word{})
)

// word matches a run of ASCII letters.
type word struct{}

func (w *word) Match(cursor *parsly.Cursor) (matched int) {
	for _, c := range cursor.Input[cursor.Pos:] {
		if !isLetter(c) {
			break
		}
		matched++
	}
	return matched
}

// number matches an optionally signed run of digits.
type number struct{}

func (n *number) Match(cursor *parsly.Cursor) (matched int) {
	input := cursor.Input[cursor.Pos:]
	if len(input) > 0 && (input[0] == '+' || input[0] == '-') {
		matched++
	}

	digits := countDigits(input[matched:], -1)
	if digits == 0 {
		return 0
	}
	return matched + digits
}

// clock matches H:MM or H:MM:SS.
type clock struct{}

func (c *clock) Match(cursor *parsly.Cursor) (matched int) {
	input := cursor.Input[cursor.Pos:]

	hours := countDigits(input, 2)
	if hours == 0 {
		return 0
	}
	matched = hours

	for part := 0; part < 2; part++ {
		if matched >= len(input) || input[matched] != ':' {
			break
		}
		if countDigits(input[matched+1:], 2) != 2 {
			break
		}
		matched += 3
	}

	if matched == hours {
		return 0
	}
	if matched < len(input) && isDigit(input[matched]) {
		return 0
	}
	return matched
}

func countDigits(input []byte, limit int) int {
	n := 0
	for _, c := range input {
		if !isDigit(c) || n == limit {
			break
		}
		n++
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
