package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mifune-lang/lr1gen/config"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "shift-over-reduce", cfg.ConflictPolicy)
	assert.Equal(t, "main", cfg.PackageName)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lrgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
conflict_policy = "strict"
package_name = "parsed"
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.ConflictPolicy)
	assert.Equal(t, "parsed", cfg.PackageName)
	assert.Equal(t, ".", cfg.OutputDir) // default retained where unset
}
