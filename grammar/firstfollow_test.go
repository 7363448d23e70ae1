package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFirst(t *testing.T) {
	g := buildExprGrammar(t)
	first := ComputeFirst(g.Rules)

	exprSym, _ := g.SymbolTable.Reader().ToSymbol("expr")
	got, nullable := first.Of(exprSym)
	assert.False(t, nullable)

	names := map[string]bool{}
	for s := range got {
		text, _ := g.SymbolTable.Reader().ToText(s)
		names[text] = true
	}
	assert.Equal(t, map[string]bool{"id": true, "l_paren": true}, names)
}

func TestComputeFirst_NullableNonTerminal(t *testing.T) {
	// s : a b ; a : x | ; b : y ;
	b := NewBuilder("s")
	b.AddProduction("s", []string{"a", "b"})
	b.AddProduction("a", []string{"x"})
	b.AddProduction("a", []string{})
	b.AddProduction("b", []string{"y"})
	g, err := b.Build()
	require.NoError(t, err)

	first := ComputeFirst(g.Rules)

	aSym, _ := g.SymbolTable.Reader().ToSymbol("a")
	got, nullable := first.Of(aSym)
	assert.True(t, nullable)
	names := map[string]bool{}
	for s := range got {
		text, _ := g.SymbolTable.Reader().ToText(s)
		names[text] = true
	}
	assert.Equal(t, map[string]bool{"x": true}, names)

	// FIRST(s) must include FIRST(b) too, since a is nullable.
	sSym, _ := g.SymbolTable.Reader().ToSymbol("s")
	gotS, nullableS := first.Of(sSym)
	assert.False(t, nullableS)
	namesS := map[string]bool{}
	for s := range gotS {
		text, _ := g.SymbolTable.Reader().ToText(s)
		namesS[text] = true
	}
	assert.Equal(t, map[string]bool{"x": true, "y": true}, namesS)
}

func TestComputeFollow(t *testing.T) {
	g := buildExprGrammar(t)
	first := ComputeFirst(g.Rules)
	follow := ComputeFollow(g.Rules, first)

	exprSym, _ := g.SymbolTable.Reader().ToSymbol("expr")
	got, reachesEOF := follow.Of(exprSym)
	assert.True(t, reachesEOF)

	names := map[string]bool{}
	for s := range got {
		text, _ := g.SymbolTable.Reader().ToText(s)
		names[text] = true
	}
	assert.Equal(t, map[string]bool{"add": true, "r_paren": true}, names)
}
