package grammar

import (
	"testing"

	"github.com/mifune-lang/lr1gen/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosure_UsesFirstOfBetaLookahead(t *testing.T) {
	// S' -> S, S -> C C, C -> c C | d
	b := NewBuilder("s")
	b.AddProduction("s", []string{"c", "c"})
	b.AddProduction("c", []string{"lc", "c"})
	b.AddProduction("c", []string{"ld"})
	g, err := b.Build()
	require.NoError(t, err)

	first := ComputeFirst(g.Rules)

	lc, ok := g.SymbolTable.Reader().ToSymbol("lc")
	require.True(t, ok)
	ld, ok := g.SymbolTable.Reader().ToSymbol("ld")
	require.True(t, ok)
	cSym, ok := g.SymbolTable.Reader().ToSymbol("c")
	require.True(t, ok)

	seed := []Item{{Rule: StartIndex, Dot: 0, Lookahead: symbol.EOF}}
	closed := Closure(seed, g.Rules, first)

	// The first C's closure items must carry lookahead {lc, ld} (FIRST of
	// the second C, the beta that follows it), not FOLLOW(C), which would
	// also include EOF under the non-canonical FOLLOW-seeded shortcut.
	lookaheads := map[symbol.Symbol]bool{}
	for _, it := range closed.Items() {
		r := g.Rules.Get(it.Rule)
		if r.LHS == cSym && it.Dot == 0 {
			lookaheads[it.Lookahead] = true
		}
	}
	assert.True(t, lookaheads[lc])
	assert.True(t, lookaheads[ld])
	assert.False(t, lookaheads[symbol.EOF])
}

func TestGoto_AdvancesDotAndRecloses(t *testing.T) {
	g := buildExprGrammar(t)
	first := ComputeFirst(g.Rules)

	seed := []Item{{Rule: StartIndex, Dot: 0, Lookahead: symbol.EOF}}
	state0 := Closure(seed, g.Rules, first)

	exprSym, _ := g.SymbolTable.Reader().ToSymbol("expr")
	state1 := Goto(state0, exprSym, g.Rules, first)

	require.Greater(t, state1.Len(), 0)
	for _, it := range state1.Items() {
		if it.Rule == StartIndex {
			assert.Equal(t, 1, it.Dot)
		}
	}
}
