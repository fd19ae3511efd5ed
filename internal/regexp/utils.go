package regexp

import "strings"

// pcreTokens are the constructs coregex cannot execute.
var pcreTokens = []string{
	// lookahead/lookbehind
	"(?=", "(?!", "(?<=", "(?<!",
	// atomic groups
	"(?>",
	// named backreferences
	`\k<`, `\k'`, `\k{`, "(?P=",
}

// needsPCRE reports whether the pattern uses lookaround, atomic groups,
// backreferences or .NET style named groups.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreTokens {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// \1 .. \9, skipping escaped backslashes
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// NOTE: RE2 accepts (?P<name>...) but not (?<name>...) or (?'name'...).
	return !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'"))
}
