package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T, g *Grammar, policy ConflictPolicy) *Table {
	t.Helper()
	first := ComputeFirst(g.Rules)
	col, err := BuildCollection(g.Rules, first)
	require.NoError(t, err)
	tab, err := BuildTable(g, col, policy)
	require.NoError(t, err)
	return tab
}

func TestBuildTable_NoConflictsOnExprGrammar(t *testing.T) {
	g := buildExprGrammar(t)
	tab := buildTable(t, g, ResolveShiftOverReduce)
	assert.Empty(t, tab.Conflicts)
}

func TestBuildTable_ShiftOnIdInInitialState(t *testing.T) {
	g := buildExprGrammar(t)
	first := ComputeFirst(g.Rules)
	col, err := BuildCollection(g.Rules, first)
	require.NoError(t, err)
	tab, err := BuildTable(g, col, ResolveShiftOverReduce)
	require.NoError(t, err)

	idSym, _ := g.SymbolTable.Reader().ToSymbol("id")
	a := tab.Action(0, idSym)
	assert.Equal(t, ActionShift, a.Kind)
}

func TestBuildTable_DanglingElseIsShiftReduceConflict(t *testing.T) {
	// stmt -> if expr stmt | if expr stmt else stmt | other
	b := NewBuilder("stmt")
	b.AddProduction("stmt", []string{"if", "expr", "stmt"})
	b.AddProduction("stmt", []string{"if", "expr", "stmt", "else", "stmt"})
	b.AddProduction("stmt", []string{"other"})
	g, err := b.Build()
	require.NoError(t, err)

	tabLoose := buildTable(t, g, ResolveShiftOverReduce)
	assert.NotEmpty(t, tabLoose.Conflicts)

	first := ComputeFirst(g.Rules)
	col, err := BuildCollection(g.Rules, first)
	require.NoError(t, err)
	_, err = BuildTable(g, col, Strict)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDescribe_IncludesFollowSets(t *testing.T) {
	g := buildExprGrammar(t)
	first := ComputeFirst(g.Rules)
	col, err := BuildCollection(g.Rules, first)
	require.NoError(t, err)
	tab, err := BuildTable(g, col, ResolveShiftOverReduce)
	require.NoError(t, err)

	out := Describe(g, col, tab)
	assert.Contains(t, out, "follow sets:")
	assert.Contains(t, out, "FOLLOW(")
}
