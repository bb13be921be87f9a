package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestPathForKind(t *testing.T) {
	path, err := pathForKind("Family")
	require.NoError(t, err)
	assert.Equal(t, "/families", path)

	path, err = pathForKind(" generatedEntry ")
	require.NoError(t, err)
	assert.Equal(t, "/generated-entries", path)

	_, err = pathForKind("widget")
	assert.Error(t, err)
}

func TestLoadResource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "family.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
kind: Family
spec:
  name: Vanne
  info:
    segment: industrial
`), 0o600))

	path, body, err := loadResource(file)
	require.NoError(t, err)
	assert.Equal(t, "/families", path)
	assert.Equal(t, "Vanne", gjson.GetBytes(body, "name").String())
	assert.Equal(t, "industrial", gjson.GetBytes(body, "info.segment").String())
}

func TestLoadResourceErrors(t *testing.T) {
	dir := t.TempDir()

	noSpec := filepath.Join(dir, "nospec.yaml")
	require.NoError(t, os.WriteFile(noSpec, []byte("kind: Family\n"), 0o600))
	_, _, err := loadResource(noSpec)
	assert.Error(t, err)

	badKind := filepath.Join(dir, "badkind.yaml")
	require.NoError(t, os.WriteFile(badKind, []byte("kind: Widget\nspec:\n  name: x\n"), 0o600))
	_, _, err = loadResource(badKind)
	assert.Error(t, err)

	_, _, err = loadResource(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
