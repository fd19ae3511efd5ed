package regexp

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled pattern backed by either coregex or regexp2.
type Regexp struct {
	core *coregex.Regex
	pcre *regexp2.Regexp
}

// Compile parses a pattern. Patterns that need PCRE-only constructs (see
// needsPCRE) are compiled with regexp2; everything else uses coregex.
func Compile(pattern string) (*Regexp, error) {
	if needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, err
		}
		return &Regexp{pcre: re}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{core: re}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
// It is meant for package-level pattern variables.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}
