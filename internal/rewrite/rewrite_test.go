package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFirstRuleWins(t *testing.T) {
	table := NewTable(
		Rule{From: "rr", To: "r"},
		Rule{From: "r", To: "ɾ"},
	)

	tests := []struct {
		in   string
		want string
	}{
		{"perro", "pero"},
		{"pero", "peɾo"},
		{"", ""},
		{"xyz", "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Apply(tt.in))
		})
	}
}

func TestApplyDoesNotRescanOutput(t *testing.T) {
	table := NewTable(
		Rule{From: "a", To: "b"},
		Rule{From: "b", To: "c"},
	)
	assert.Equal(t, "bc", table.Apply("ab"))
}

func TestContextsSeeOriginalInput(t *testing.T) {
	table := NewTable(
		Rule{From: "c", To: "θ", After: In("ei")},
		Rule{From: "c", To: "k"},
		Rule{From: "e", To: "E", Before: In("c")},
	)
	assert.Equal(t, "θEka", table.Apply("ceca"))
}

func TestBoundaryContexts(t *testing.T) {
	table := NewTable(
		Rule{From: "r", To: "R", Before: Boundary},
		Rule{From: "x", To: "s", Before: Boundary, After: NotBoundary},
	)

	tests := []struct {
		in   string
		want string
	}{
		{"rosa", "Rosa"},
		{"la rosa", "la Rosa"},
		{"caro", "caro"},
		{"xilófono", "silófono"},
		{"x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Apply(tt.in))
		})
	}
}

func TestTransparentLooksThroughSeparators(t *testing.T) {
	base := NewTable(Rule{From: "g", To: "ɣ", Before: NotIn("nm")})
	transparent := base.Transparent(" -ˈ", 3)

	assert.Equal(t, "un ɣato", base.Apply("un gato"))
	assert.Equal(t, "un gato", transparent.Apply("un gato"))
	assert.Equal(t, "un -ˈgato", transparent.Apply("un -ˈgato"))
	assert.Equal(t, "la ɣata", transparent.Apply("la gata"))
	assert.Equal(t, "gato", transparent.Apply("gato"))
}

func TestTransparentWidthIsBounded(t *testing.T) {
	table := NewTable(Rule{From: "g", To: "ɣ", Before: NotIn("n")}).Transparent("-", 1)
	assert.Equal(t, "n-g", table.Apply("n-g"))
	assert.Equal(t, "n--ɣ", table.Apply("n--g"))
}

func TestEither(t *testing.T) {
	ctx := Either(Boundary, In("nls"))
	assert.True(t, ctx(Edge))
	assert.True(t, ctx(' '))
	assert.True(t, ctx('l'))
	assert.False(t, ctx('a'))
}

func TestEmptyFromIgnored(t *testing.T) {
	table := NewTable(Rule{From: "", To: "x"}, Rule{From: "a", To: "b"})
	assert.Equal(t, "bb", table.Apply("aa"))
}
