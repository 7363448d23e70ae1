package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildExprGrammar(t *testing.T) *Grammar {
	t.Helper()
	b := NewBuilder("expr")
	b.AddProduction("expr", []string{"expr", "add", "term"})
	b.AddProduction("expr", []string{"term"})
	b.AddProduction("term", []string{"term", "mul", "factor"})
	b.AddProduction("term", []string{"factor"})
	b.AddProduction("factor", []string{"l_paren", "expr", "r_paren"})
	b.AddProduction("factor", []string{"id"})
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestBuilder_Build(t *testing.T) {
	g := buildExprGrammar(t)

	assert.Equal(t, 7, g.Rules.Len()) // augmented start rule + 6 declared rules

	start := g.Rules.Get(StartIndex)
	assert.True(t, start.LHS.IsStart())
	assert.Equal(t, 1, len(start.RHS))

	exprSym, ok := g.SymbolTable.Reader().ToSymbol("expr")
	require.True(t, ok)
	assert.True(t, exprSym.IsTerminal() == false)

	idSym, ok := g.SymbolTable.Reader().ToSymbol("id")
	require.True(t, ok)
	assert.True(t, idSym.IsTerminal())
}

func TestBuilder_Build_NoProductions(t *testing.T) {
	_, err := NewBuilder("expr").Build()
	assert.ErrorIs(t, err, ErrNoProduction)
}

func TestBuilder_Build_UndefinedStart(t *testing.T) {
	b := NewBuilder("expr")
	b.AddProduction("term", []string{"id"})
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrUndefinedSymbol)
}

func TestBuilder_Build_DuplicateRule(t *testing.T) {
	b := NewBuilder("expr")
	b.AddProduction("expr", []string{"id"})
	b.AddProduction("expr", []string{"id"})
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrDuplicateRule)
}

func TestBuilder_Build_ReservedSymbolAsLHS(t *testing.T) {
	b := NewBuilder("expr")
	b.AddProduction("expr", []string{"id"})
	b.AddProduction("error", []string{"id"})
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrReservedSymbol)
}

func TestBuilder_Build_ReservedSymbolInRHS(t *testing.T) {
	b := NewBuilder("expr")
	b.AddProduction("expr", []string{"error"})
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrReservedSymbol)
}
