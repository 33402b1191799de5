package colors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wakatools/wakaview/internal/core/model"
)

func TestBuiltinPalette(t *testing.T) {
	palette, err := Load("", model.CategoryLanguages)
	require.NoError(t, err)

	assert.Equal(t, "#3572A5", palette.Color("Python"))
	// Unknown labels share the fallback entry.
	assert.Equal(t, palette.Color(FallbackLabel), palette.Color("Brainfuck"))
}

func TestLoadColorFile(t *testing.T) {
	dir := t.TempDir()
	content := `
["Python"]
color = "#123456"

["Some Custom Lang"]
color = "#ABCDEF"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "languages.toml"), []byte(content), 0644))

	palette, err := Load(dir, model.CategoryLanguages)
	require.NoError(t, err)

	// File entries override built-ins; untouched built-ins survive.
	assert.Equal(t, "#123456", palette.Color("Python"))
	assert.Equal(t, "#ABCDEF", palette.Color("Some Custom Lang"))
	assert.Equal(t, "#00ADD8", palette.Color("Go"))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	palette, err := Load(t.TempDir(), model.CategoryEditors)
	require.NoError(t, err)
	assert.Equal(t, "#019733", palette.Color("Vim"))
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "editors.toml"), []byte("not [valid toml"), 0644))

	_, err := Load(dir, model.CategoryEditors)
	assert.Error(t, err)
}

func TestNewPaletteFallbackChain(t *testing.T) {
	withOther := NewPalette(map[string]string{"Other": "#111111"})
	assert.Equal(t, "#111111", withOther.Color("anything"))

	empty := NewPalette(nil)
	assert.Equal(t, defaultColor, empty.Color("anything"))
}
