// Package file loads the TOML settings file. Settings are read once at
// startup and shared read-only for the process lifetime; secrets can be
// supplied by environment variables instead of the file.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Engine names accepted by backend.engine.
const (
	EngineQdrant      = "qdrant"
	EngineMeilisearch = "meilisearch"
)

// Environment variables that override file-held secrets.
const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvQdrantKey = "QDRANT_API_KEY"
	EnvMeiliKey  = "MEILI_MASTER_KEY"
)

// Settings is the full configuration tree.
type Settings struct {
	Backend   BackendSettings   `toml:"backend"`
	Qdrant    QdrantSettings    `toml:"qdrant"`
	Meili     MeiliSettings     `toml:"meilisearch"`
	Embedding EmbeddingSettings `toml:"embedding"`
	Members   MembersSettings   `toml:"members"`
	Search    SearchSettings    `toml:"search"`
}

// BackendSettings selects the search engine.
type BackendSettings struct {
	// Engine is "qdrant" (default) or "meilisearch".
	Engine string `toml:"engine"`
}

// QdrantSettings configures the Qdrant connection.
type QdrantSettings struct {
	Host   string `toml:"host"`
	Port   int    `toml:"port"`
	APIKey string `toml:"api_key"`
	UseTLS bool   `toml:"use_tls"`
}

// MeiliSettings configures the Meilisearch connection.
type MeiliSettings struct {
	Host          string  `toml:"host"`
	APIKey        string  `toml:"api_key"`
	Embedder      string  `toml:"embedder"`
	SemanticRatio float64 `toml:"semantic_ratio"`
}

// EmbeddingSettings configures the dense query embedder.
type EmbeddingSettings struct {
	APIKey     string `toml:"api_key"`
	BaseURL    string `toml:"base_url"`
	Model      string `toml:"model"`
	Dimensions int    `toml:"dimensions"`
}

// MembersSettings configures the Members API client.
type MembersSettings struct {
	BaseURL           string  `toml:"base_url"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// SearchSettings tunes retrieval.
type SearchSettings struct {
	ContributionsCollection string  `toml:"contributions_collection"`
	QuestionsCollection     string  `toml:"questions_collection"`
	Overfetch               int     `toml:"overfetch"`
	MinScore                float64 `toml:"min_score"`
	DebateGroupSize         int     `toml:"debate_group_size"`
	QuestionGroupSize       int     `toml:"question_group_size"`
	TimeoutSeconds          int     `toml:"timeout_seconds"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		Backend: BackendSettings{Engine: EngineQdrant},
		Qdrant:  QdrantSettings{Host: "localhost", Port: 6334},
		Meili:   MeiliSettings{Host: "http://localhost:7700", Embedder: "default", SemanticRatio: 0.5},
		Search: SearchSettings{
			ContributionsCollection: "parliamentary_contributions",
			QuestionsCollection:     "parliamentary_questions",
			Overfetch:               2,
			MinScore:                0.3,
			DebateGroupSize:         5,
			QuestionGroupSize:       10,
			TimeoutSeconds:          30,
		},
	}
}

// DefaultDir returns the per-user config directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".parliament-mcp"), nil
}

// Path returns the settings file path within a config dir.
func Path(configDir string) string {
	return filepath.Join(configDir, "config.toml")
}

// Load reads settings from configDir, merging the file over the defaults
// and the secret environment variables over the file. A missing file is
// not an error; a malformed one is.
func Load(configDir string) (Settings, error) {
	settings := Default()

	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return settings, err
		}
		configDir = dir
	}

	data, err := os.ReadFile(Path(configDir))
	switch {
	case os.IsNotExist(err):
		// Defaults plus environment.
	case err != nil:
		return settings, fmt.Errorf("read settings: %w", err)
	default:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return settings, fmt.Errorf("parse settings: %w", err)
		}
	}

	if key := os.Getenv(EnvOpenAIKey); key != "" {
		settings.Embedding.APIKey = key
	}
	if key := os.Getenv(EnvQdrantKey); key != "" {
		settings.Qdrant.APIKey = key
	}
	if key := os.Getenv(EnvMeiliKey); key != "" {
		settings.Meili.APIKey = key
	}
	return settings, nil
}

// Save writes settings to configDir, creating the directory if needed.
// The file holds API keys so it is not group or world readable.
func Save(configDir string, settings Settings) error {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return err
		}
		configDir = dir
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(Path(configDir), data, 0600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
