package spec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mifune-lang/lr1gen/spec"
)

func TestCompressAction(t *testing.T) {
	g, col, tab := buildExprGrammar(t)
	artifact := spec.ToArtifact(g, col, tab)

	report, err := spec.CompressAction(artifact)
	require.NoError(t, err)
	assert.Equal(t, len(artifact.Action), report.OriginalEntries)
	assert.LessOrEqual(t, report.CompressedEntries, report.OriginalEntries)
}
