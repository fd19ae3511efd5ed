// Package regexp compiles the literal-shape patterns used by the converters.
//
// Patterns are compiled with coregex (an accelerated RE2-compatible engine)
// unless they use lookaround, atomic groups or backreferences, in which case
// they fall back to [regexp2].
package regexp
