package codegen_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mifune-lang/lr1gen/codegen"
	"github.com/mifune-lang/lr1gen/symbol"
)

func TestEmitNodeKinds(t *testing.T) {
	tab := symbol.NewTable()
	w := tab.Writer()
	w.RegisterStartSymbol("expr")
	_, err := w.RegisterNonTerminal("term")
	require.NoError(t, err)
	_, err = w.RegisterTerminal("l_paren")
	require.NoError(t, err)
	_, err = w.RegisterTerminal("id")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codegen.EmitNodeKinds(&buf, "ast", tab))

	out := buf.String()
	assert.Contains(t, out, "package ast")
	assert.Contains(t, out, `KindTerm = "term"`)
	assert.Contains(t, out, `TermLParen = "l_paren"`)
	assert.Contains(t, out, `TermId = "id"`)
	assert.Contains(t, out, "DO NOT EDIT")
	assert.NotContains(t, out, "<eof>")
}
