package lrtest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mifune-lang/lr1gen/grammar"
	"github.com/mifune-lang/lr1gen/lrtest"
)

const exprTestCase = `
id plus id
---
id:x add id:y
---
(expr
    (expr
        (term
            (factor
                (id "x"))))
    (add "add")
    (term
        (factor
            (id "y"))))
`

func buildExprGrammarAndTable(t *testing.T) (*grammar.Grammar, *grammar.Table) {
	t.Helper()
	b := grammar.NewBuilder("expr")
	b.AddProduction("expr", []string{"expr", "add", "term"})
	b.AddProduction("expr", []string{"term"})
	b.AddProduction("term", []string{"factor"})
	b.AddProduction("factor", []string{"id"})
	g, err := b.Build()
	require.NoError(t, err)
	first := grammar.ComputeFirst(g.Rules)
	col, err := grammar.BuildCollection(g.Rules, first)
	require.NoError(t, err)
	tab, err := grammar.BuildTable(g, col, grammar.ResolveShiftOverReduce)
	require.NoError(t, err)
	return g, tab
}

func TestParseTestCase(t *testing.T) {
	c, err := lrtest.ParseTestCase(strings.NewReader(exprTestCase))
	require.NoError(t, err)
	assert.Equal(t, "expr", c.Expected.Kind)
	assert.Equal(t, "id:x add id:y", c.Tokens)
}

func TestTester_Run_Passes(t *testing.T) {
	g, tab := buildExprGrammarAndTable(t)
	c, err := lrtest.ParseTestCase(strings.NewReader(exprTestCase))
	require.NoError(t, err)

	tester := &lrtest.Tester{
		Grammar: g,
		Table:   tab,
		Cases:   []*lrtest.CaseFile{{Path: "inline", Case: c}},
	}
	results := tester.Run()
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed(), results[0].String())
}

func TestTester_Run_ReportsDiff(t *testing.T) {
	g, tab := buildExprGrammarAndTable(t)
	bad := strings.Replace(exprTestCase, `(id "x")`, `(id "z")`, 1)
	c, err := lrtest.ParseTestCase(strings.NewReader(bad))
	require.NoError(t, err)

	tester := &lrtest.Tester{
		Grammar: g,
		Table:   tab,
		Cases:   []*lrtest.CaseFile{{Path: "inline", Case: c}},
	}
	results := tester.Run()
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed())
	assert.NotEmpty(t, results[0].Diffs)
}
