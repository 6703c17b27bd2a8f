package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("scan.gear_symbol", "#"))

	val, ok := store.Get("scan.gear_symbol")
	assert.True(t, ok)
	assert.Equal(t, "#", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.format", "json"))
	require.NoError(t, store.Set("output.color", true))

	assert.Equal(t, "json", store.GetString("output.format"))
	assert.True(t, store.GetBool("output.color"))

	// Wrong types and missing keys fall back to zero values
	assert.Equal(t, "", store.GetString("output.color"))
	assert.False(t, store.GetBool("output.format"))
	assert.Equal(t, "", store.GetString("nonexistent"))
}

func TestConfigStore_PersistsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("scan.gear_symbol", "*"))
	require.NoError(t, store.Set("output.format", "text"))
	require.NoError(t, store.Set("output.color", false))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[scan]")
	assert.Contains(t, content, "[output]")
	assert.NotContains(t, content, "'scan.gear_symbol'")

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "*", reopened.GetString("scan.gear_symbol"))
	assert.Equal(t, "text", reopened.GetString("output.format"))
	assert.False(t, reopened.GetBool("output.color"))
	_, ok := reopened.Get("output.color")
	assert.True(t, ok)
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[scan]
gear_symbol = "@"

[input]
data_dir = "/srv/schematics"

[output]
format = "json"
color = false
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "@", store.GetString("scan.gear_symbol"))
	assert.Equal(t, "/srv/schematics", store.GetString("input.data_dir"))
	assert.Equal(t, "json", store.GetString("output.format"))
	assert.False(t, store.GetBool("output.color"))
}

func TestConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[scan\n"), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_SaveAndLoad(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("input.data_dir", "data"))

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, "data", store.GetString("input.data_dir"))
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"scan":   map[string]any{"gear_symbol": "*"},
		"output": map[string]any{"format": "json", "color": true},
		"top":    int64(1),
	}
	flat := map[string]any{
		"scan.gear_symbol": "*",
		"output.format":    "json",
		"output.color":     true,
		"top":              int64(1),
	}

	assert.Equal(t, flat, flattenMap(nested, ""))
	assert.Equal(t, nested, nestMap(flat))
}

func TestConfigStore_DeletePersists(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("output.format", "json"))
	require.NoError(t, store.Set("scan.gear_symbol", "#"))
	require.NoError(t, store.Delete("output.format"))
	require.NoError(t, store.Delete("not.present"))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := reloaded.Get("output.format")
	assert.False(t, ok)
	assert.Equal(t, "#", reloaded.GetString("scan.gear_symbol"))
}
