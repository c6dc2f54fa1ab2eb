package rewrite

import (
	"strings"
	"unicode"
)

// Edge is the rune a Context receives when the neighbour lies outside the text.
const Edge rune = 0

// Context decides whether a rule may fire given a neighbouring rune.
type Context func(r rune) bool

// Rule replaces From with To when both of its contexts accept the
// neighbouring runes of the original input. A nil context accepts anything.
type Rule struct {
	From   string
	To     string
	Before Context
	After  Context
}

type compiledRule struct {
	Rule
	from []rune
}

// Table is an immutable ordered list of rules applied in a single
// left-to-right scan. At every position the first rule in table order that
// matches wins, so longer or more specific entries must be listed before
// their prefixes. Replacement output is never rescanned.
type Table struct {
	rules []compiledRule
	skip  string
	width int
}

// NewTable compiles rules into a table. Rules with an empty From are ignored.
func NewTable(rules ...Rule) *Table {
	t := &Table{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		if r.From == "" {
			continue
		}
		t.rules = append(t.rules, compiledRule{Rule: r, from: []rune(r.From)})
	}
	return t
}

// Transparent returns a copy of the table whose contexts look through up to
// width consecutive runes from skip when inspecting neighbours.
func (t *Table) Transparent(skip string, width int) *Table {
	return &Table{rules: t.rules, skip: skip, width: width}
}

// Apply rewrites s in one pass.
func (t *Table) Apply(s string) string {
	if s == "" || len(t.rules) == 0 {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		if to, n, ok := t.Match(runes, i); ok {
			b.WriteString(to)
			i += n
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// Match returns the replacement and the number of consumed runes for the
// first rule matching runes at position i.
func (t *Table) Match(runes []rune, i int) (string, int, bool) {
	for _, r := range t.rules {
		if !hasPrefixAt(runes, i, r.from) {
			continue
		}
		if r.Before != nil && !r.Before(t.prev(runes, i)) {
			continue
		}
		if r.After != nil && !r.After(t.next(runes, i+len(r.from))) {
			continue
		}
		return r.To, len(r.from), true
	}
	return "", 0, false
}

func (t *Table) prev(runes []rune, i int) rune {
	j := i - 1
	for skipped := 0; j >= 0 && skipped < t.width && strings.ContainsRune(t.skip, runes[j]); skipped++ {
		j--
	}
	if j < 0 {
		return Edge
	}
	return runes[j]
}

func (t *Table) next(runes []rune, i int) rune {
	j := i
	for skipped := 0; j < len(runes) && skipped < t.width && strings.ContainsRune(t.skip, runes[j]); skipped++ {
		j++
	}
	if j >= len(runes) {
		return Edge
	}
	return runes[j]
}

func hasPrefixAt(runes []rune, i int, prefix []rune) bool {
	if i+len(prefix) > len(runes) {
		return false
	}
	for k, r := range prefix {
		if runes[i+k] != r {
			return false
		}
	}
	return true
}

// In accepts runes contained in set.
func In(set string) Context {
	return func(r rune) bool {
		return r != Edge && strings.ContainsRune(set, r)
	}
}

// NotIn accepts runes outside set, including the edge of the text.
func NotIn(set string) Context {
	return func(r rune) bool {
		return r == Edge || !strings.ContainsRune(set, r)
	}
}

// Boundary accepts the edge of the text and whitespace.
func Boundary(r rune) bool {
	return r == Edge || unicode.IsSpace(r)
}

// NotBoundary accepts any rune inside a word.
func NotBoundary(r rune) bool {
	return !Boundary(r)
}

// Either accepts a rune when any of the contexts does.
func Either(contexts ...Context) Context {
	return func(r rune) bool {
		for _, c := range contexts {
			if c(r) {
				return true
			}
		}
		return false
	}
}
