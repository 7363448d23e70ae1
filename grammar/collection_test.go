package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCollection_Deterministic(t *testing.T) {
	g := buildExprGrammar(t)
	first := ComputeFirst(g.Rules)

	col1, err := BuildCollection(g.Rules, first)
	require.NoError(t, err)
	col2, err := BuildCollection(g.Rules, first)
	require.NoError(t, err)

	require.Equal(t, len(col1.States), len(col2.States))
	for i := range col1.States {
		assert.Equal(t, col1.States[i].Items.Len(), col2.States[i].Items.Len())
	}
	assert.Equal(t, len(col1.Transitions), len(col2.Transitions))
}

func TestBuildCollection_InitialStateIsStartItem(t *testing.T) {
	g := buildExprGrammar(t)
	first := ComputeFirst(g.Rules)

	col, err := BuildCollection(g.Rules, first)
	require.NoError(t, err)
	require.NotEmpty(t, col.States)

	found := false
	for _, it := range col.States[0].Items.Items() {
		if it.Rule == StartIndex && it.Dot == 0 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildCollection_TransitionsNavigable(t *testing.T) {
	g := buildExprGrammar(t)
	first := ComputeFirst(g.Rules)

	col, err := BuildCollection(g.Rules, first)
	require.NoError(t, err)

	exprSym, _ := g.SymbolTable.Reader().ToSymbol("expr")
	to, ok := col.TransitionFrom(0, exprSym)
	assert.True(t, ok)
	assert.Greater(t, to, 0)
}
