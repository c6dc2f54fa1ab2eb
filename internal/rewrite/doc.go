// Package rewrite implements ordered, immutable string rewrite tables that
// are applied in a single left-to-right scan. Every rule is matched against
// the original input, the first matching rule in table order wins, and the
// produced output is never matched again. Rules may inspect the neighbouring
// runes, optionally looking through separator runes such as syllable and
// word boundaries.
package rewrite
