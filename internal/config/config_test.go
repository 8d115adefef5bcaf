package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at an empty temp dir and
// clears catalog keys inherited from the environment
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("REEL_TMDB_API_KEY", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	isolate(t)

	_, err := LoadConfig("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadConfigDefaultsWithEnvKey(t *testing.T) {
	home := isolate(t)
	t.Setenv("TMDB_API_KEY", "abc123")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.TMDB.APIKey)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, 5, cfg.Suggestions.Limit)
	assert.Equal(t, 3, cfg.Suggestions.TopGenres)
	if filepath.Separator == '/' {
		assert.Equal(t, filepath.Join(home, ".local", "share", "reel", "movies.json"), cfg.Storage.Path)
	}
}

func TestLoadConfigPrefixedEnvWins(t *testing.T) {
	isolate(t)
	t.Setenv("TMDB_API_KEY", "plain")
	t.Setenv("REEL_TMDB_API_KEY", "prefixed")
	t.Setenv("REEL_STORAGE_BACKEND", "bolt")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.TMDB.APIKey)
	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "reel.yaml")
	body := `
tmdb:
  api_key: from-file
  language: de-DE
  timeout: 5s
storage:
  backend: bolt
  path: ~/movies.db
suggestions:
  limit: 8
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.TMDB.APIKey)
	assert.Equal(t, "de-DE", cfg.TMDB.Language)
	assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "movies.db"), cfg.Storage.Path)
	assert.Equal(t, 8, cfg.Suggestions.Limit)
	assert.Equal(t, 3, cfg.Suggestions.TopGenres)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "reel.yaml")
	body := `
tmdb:
  api_key: k
storage:
  backend: sqlite
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Backend")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.TMDB.APIKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg.Suggestions.Limit = 0
	assert.Error(t, cfg.Validate())
}
