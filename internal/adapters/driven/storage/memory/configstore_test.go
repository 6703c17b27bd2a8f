package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("scan.gear_symbol", "*"))
	require.NoError(t, store.Set("output.color", true))

	assert.Equal(t, "*", store.GetString("scan.gear_symbol"))
	assert.True(t, store.GetBool("output.color"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("output.color"))
	assert.False(t, store.GetBool("scan.gear_symbol"))
}

func TestConfigStore_Delete(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("output.format", "json"))

	require.NoError(t, store.Delete("output.format"))
	require.NoError(t, store.Delete("never.set"))

	_, ok := store.Get("output.format")
	assert.False(t, ok)
}

func TestConfigStore_Path(t *testing.T) {
	assert.Equal(t, ":memory:", NewConfigStore().Path())
}
