// Package json encodes and decodes JSON through [sonic] behind a swappable,
// frozen configuration.
//
// The default configuration leaves non-ASCII and HTML characters unescaped
// and sorts map keys. [DecodeContainer] walks arrays and objects in document
// order, which a plain map[string]any cannot preserve.
package json
