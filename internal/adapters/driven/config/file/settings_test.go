package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, EngineQdrant, settings.Backend.Engine)
	assert.Equal(t, "parliamentary_contributions", settings.Search.ContributionsCollection)
	assert.Equal(t, 0.3, settings.Search.MinScore)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
[backend]
engine = "meilisearch"

[meilisearch]
host = "http://search.internal:7700"
embedder = "parliament"

[search]
min_score = 0.5
`
	require.NoError(t, os.WriteFile(Path(dir), []byte(content), 0600))

	settings, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, EngineMeilisearch, settings.Backend.Engine)
	assert.Equal(t, "http://search.internal:7700", settings.Meili.Host)
	assert.Equal(t, "parliament", settings.Meili.Embedder)
	assert.Equal(t, 0.5, settings.Search.MinScore)
	// Untouched sections keep their defaults.
	assert.Equal(t, "localhost", settings.Qdrant.Host)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("not [valid toml"), 0600))

	_, err := Load(dir)

	assert.Error(t, err)
}

func TestLoad_EnvironmentOverridesSecrets(t *testing.T) {
	t.Setenv(EnvOpenAIKey, "env-openai")
	t.Setenv(EnvQdrantKey, "env-qdrant")
	dir := t.TempDir()
	content := `
[embedding]
api_key = "file-openai"
`
	require.NoError(t, os.WriteFile(Path(dir), []byte(content), 0600))

	settings, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "env-openai", settings.Embedding.APIKey)
	assert.Equal(t, "env-qdrant", settings.Qdrant.APIKey)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	settings := Default()
	settings.Embedding.APIKey = "secret"
	settings.Search.DebateGroupSize = 7

	require.NoError(t, Save(dir, settings))

	info, err := os.Stat(Path(dir))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "secret", loaded.Embedding.APIKey)
	assert.Equal(t, 7, loaded.Search.DebateGroupSize)
}
