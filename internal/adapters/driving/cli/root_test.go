package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openparl/parliament-mcp/internal/adapters/driven/config/file"
	"github.com/openparl/parliament-mcp/internal/core/services"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "parliament-mcp", rootCmd.Use)
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestBuildBackend_UnknownEngine(t *testing.T) {
	_, err := buildBackend(file.Settings{
		Backend: file.BackendSettings{Engine: "elasticsearch"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elasticsearch")
}

func TestSearchConfig_DefaultsWhenUnset(t *testing.T) {
	cfg := searchConfig(file.SearchSettings{})
	assert.Equal(t, services.DefaultSearchConfig(), cfg)
}

func TestSearchConfig_AppliesOverrides(t *testing.T) {
	cfg := searchConfig(file.SearchSettings{
		ContributionsCollection: "hansard",
		MinScore:                0.5,
		TimeoutSeconds:          5,
	})
	assert.Equal(t, "hansard", cfg.ContributionsCollection)
	assert.Equal(t, 0.5, cfg.MinScore)
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	// Untouched knobs keep their defaults
	assert.Equal(t, services.DefaultSearchConfig().QuestionsCollection, cfg.QuestionsCollection)
}
