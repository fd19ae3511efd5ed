package relative

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/viant/parsly"
)

var (
	// ErrEmpty is returned for a blank expression.
	ErrEmpty = errors.New("relative: empty expression")

	// ErrSyntax is returned when an expression contains an unknown or
	// misplaced token.
	ErrSyntax = errors.New("relative: invalid expression")
)

type unit int

const (
	second unit = iota
	minute
	hour
	day
	week
	fortnight
	month
	year
)

var units = map[string]unit{
	"sec":        second,
	"secs":       second,
	"second":     second,
	"seconds":    second,
	"min":        minute,
	"mins":       minute,
	"minute":     minute,
	"minutes":    minute,
	"hour":       hour,
	"hours":      hour,
	"day":        day,
	"days":       day,
	"week":       week,
	"weeks":      week,
	"fortnight":  fortnight,
	"fortnights": fortnight,
	"month":      month,
	"months":     month,
	"year":       year,
	"years":      year,
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

type token struct {
	code int
	text string
}

// Parse evaluates expr against now.
func Parse(expr string, now time.Time) (time.Time, error) {
	return Apply(now, expr)
}

// Apply evaluates expr against base and returns the resulting time. The
// location of base is preserved.
func Apply(base time.Time, expr string) (time.Time, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return time.Time{}, err
	}

	t := base
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.code {
		case clockToken:
			h, m, s, err := parseClock(tok.text)
			if err != nil {
				return time.Time{}, err
			}
			if i+1 < len(tokens) && isMeridiem(tokens[i+1]) {
				i++
				if h, err = meridiem(h, tokens[i].text); err != nil {
					return time.Time{}, err
				}
			} else if h > 23 {
				return time.Time{}, fmt.Errorf("%w: hour %d", ErrSyntax, h)
			}
			t = at(t, h, m, s)

		case numberToken:
			n, err := strconv.Atoi(tok.text)
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: %w", ErrSyntax, err)
			}
			if i+1 >= len(tokens) || tokens[i+1].code != wordToken {
				return time.Time{}, fmt.Errorf("%w: %q has no unit", ErrSyntax, tok.text)
			}
			i++
			if isMeridiem(tokens[i]) {
				h, err := meridiem(n, tokens[i].text)
				if err != nil {
					return time.Time{}, err
				}
				t = at(t, h, 0, 0)
				continue
			}
			u, ok := units[tokens[i].text]
			if !ok {
				return time.Time{}, fmt.Errorf("%w: unknown unit %q", ErrSyntax, tokens[i].text)
			}
			if i+1 < len(tokens) && tokens[i+1].text == "ago" {
				i++
				n = -n
			}
			t = add(t, u, n)

		case wordToken:
			switch tok.text {
			case "now":
			case "today", "midnight":
				t = at(t, 0, 0, 0)
			case "noon":
				t = at(t, 12, 0, 0)
			case "tomorrow":
				t = at(t, 0, 0, 0).AddDate(0, 0, 1)
			case "yesterday":
				t = at(t, 0, 0, 0).AddDate(0, 0, -1)
			case "next", "last", "previous", "this":
				if i+1 >= len(tokens) {
					return time.Time{}, fmt.Errorf("%w: %q needs a unit or weekday", ErrSyntax, tok.text)
				}
				i++
				if t, err = relativeTo(t, tok.text, tokens[i]); err != nil {
					return time.Time{}, err
				}
			default:
				wd, ok := weekdays[tok.text]
				if !ok {
					return time.Time{}, fmt.Errorf("%w: unknown word %q", ErrSyntax, tok.text)
				}
				t = weekday(t, wd, 0)
			}
		}
	}

	return t, nil
}

func tokenize(expr string) ([]token, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return nil, ErrEmpty
	}

	var tokens []token
	cursor := parsly.NewCursor("", []byte(expr), 0)
	for cursor.Pos < len(cursor.Input) {
		match := cursor.MatchAfterOptional(whitespaceMatcher, clockMatcher, numberMatcher, wordMatcher)
		switch match.Code {
		case clockToken, numberToken, wordToken:
			tokens = append(tokens, token{code: match.Code, text: match.Text(cursor)})
		default:
			return nil, fmt.Errorf("%w: unexpected input at %d in %q", ErrSyntax, cursor.Pos, expr)
		}
	}

	return tokens, nil
}

func relativeTo(t time.Time, modifier string, tok token) (time.Time, error) {
	if tok.code != wordToken {
		return time.Time{}, fmt.Errorf("%w: %q after %q", ErrSyntax, tok.text, modifier)
	}

	dir := 0
	switch modifier {
	case "next":
		dir = 1
	case "last", "previous":
		dir = -1
	}

	if u, ok := units[tok.text]; ok {
		return add(t, u, dir), nil
	}
	if wd, ok := weekdays[tok.text]; ok {
		return weekday(t, wd, dir), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q after %q", ErrSyntax, tok.text, modifier)
}

func add(t time.Time, u unit, n int) time.Time {
	switch u {
	case second:
		return t.Add(time.Duration(n) * time.Second)
	case minute:
		return t.Add(time.Duration(n) * time.Minute)
	case hour:
		return t.Add(time.Duration(n) * time.Hour)
	case day:
		return t.AddDate(0, 0, n)
	case week:
		return t.AddDate(0, 0, 7*n)
	case fortnight:
		return t.AddDate(0, 0, 14*n)
	case month:
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(n, 0, 0)
	}
}

// weekday moves t to midnight of the given day: the nearest one on or after
// t when dir is 0, strictly after when positive, strictly before when
// negative.
func weekday(t time.Time, wd time.Weekday, dir int) time.Time {
	d := at(t, 0, 0, 0)
	diff := (int(wd) - int(d.Weekday()) + 7) % 7
	switch {
	case dir > 0 && diff == 0:
		diff = 7
	case dir < 0:
		diff -= 7
	}
	return d.AddDate(0, 0, diff)
}

func at(t time.Time, h, m, s int) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, h, m, s, 0, t.Location())
}

func parseClock(text string) (h, m, s int, err error) {
	parts := strings.Split(text, ":")
	values := make([]int, 3)
	for i, p := range parts {
		if values[i], err = strconv.Atoi(p); err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
	}
	if values[1] > 59 || values[2] > 59 {
		return 0, 0, 0, fmt.Errorf("%w: clock %q out of range", ErrSyntax, text)
	}
	return values[0], values[1], values[2], nil
}

func isMeridiem(tok token) bool {
	return tok.code == wordToken && (tok.text == "am" || tok.text == "pm")
}

func meridiem(h int, suffix string) (int, error) {
	if h < 1 || h > 12 {
		return 0, fmt.Errorf("%w: hour %d with %s", ErrSyntax, h, suffix)
	}
	h %= 12
	if suffix == "pm" {
		h += 12
	}
	return h, nil
}
