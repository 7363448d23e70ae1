package driver_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mifune-lang/lr1gen/driver"
)

func TestPrintTree_RendersEveryNode(t *testing.T) {
	tree := &driver.InternalNode{
		Name: "expr",
		Children: []driver.Node{
			&driver.LeafNode{Name: "id", Lexeme: "x"},
			&driver.LeafNode{Name: "add", Lexeme: "+"},
			&driver.LeafNode{Name: "id", Lexeme: "y"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, driver.PrintTree(&buf, tree))

	out := buf.String()
	assert.Contains(t, out, "expr")
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "add")
}

func TestPrintTree_NilNodeWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, driver.PrintTree(&buf, nil))
	assert.Empty(t, buf.String())
}
