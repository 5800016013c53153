package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewConfigStore_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "config.toml")

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	_, ok := store.Get("search.timeout")
	assert.False(t, ok)
	_, statErr := os.Stat(filepath.Dir(path))
	assert.True(t, os.IsNotExist(statErr), "store must not create directories")
}

func TestNewConfigStore_DefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(DefaultPath())))
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[search\ntimeout = ")

	store, err := NewConfigStore(path)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_NestedKeys(t *testing.T) {
	path := writeConfig(t, `
[search]
endpoint = "https://html.duckduckgo.com/html/"
user_agent = "test-agent"
timeout = "3s"
proxy = "127.0.0.1:9050"
max_body_size = 1048576

[tui]
poll_interval = "250ms"
`)

	store, err := NewConfigStore(path)
	require.NoError(t, err)

	assert.Equal(t, "https://html.duckduckgo.com/html/", store.GetString("search.endpoint"))
	assert.Equal(t, "test-agent", store.GetString("search.user_agent"))
	assert.Equal(t, 3*time.Second, store.GetDuration("search.timeout"))
	assert.Equal(t, "127.0.0.1:9050", store.GetString("search.proxy"))
	assert.Equal(t, 1048576, store.GetInt("search.max_body_size"))
	assert.Equal(t, 250*time.Millisecond, store.GetDuration("tui.poll_interval"))
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	path := writeConfig(t, `
[search]
timeout = true
endpoint = 42
max_body_size = "big"
`)

	store, err := NewConfigStore(path)
	require.NoError(t, err)

	assert.Zero(t, store.GetDuration("search.timeout"))
	assert.Empty(t, store.GetString("search.endpoint"))
	assert.Zero(t, store.GetInt("search.max_body_size"))
}

func TestConfigStore_DurationAsSeconds(t *testing.T) {
	path := writeConfig(t, "[search]\ntimeout = 7\n")

	store, err := NewConfigStore(path)
	require.NoError(t, err)

	assert.Equal(t, 7*time.Second, store.GetDuration("search.timeout"))
}

func TestConfigStore_Reload(t *testing.T) {
	path := writeConfig(t, "[search]\nproxy = \"127.0.0.1:9050\"\n")
	store, err := NewConfigStore(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[search]\nproxy = \"127.0.0.1:9150\"\n"), 0600))
	require.NoError(t, store.Load())

	assert.Equal(t, "127.0.0.1:9150", store.GetString("search.proxy"))
}

func TestFlattenMap(t *testing.T) {
	got := flattenMap(map[string]any{
		"a": map[string]any{"b": int64(1), "c": map[string]any{"d": "x"}},
		"e": true,
	}, "")

	assert.Equal(t, map[string]any{"a.b": int64(1), "a.c.d": "x", "e": true}, got)
}
