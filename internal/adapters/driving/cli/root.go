// Package cli implements the parliament-mcp command line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openparl/parliament-mcp/internal/adapters/driven/backend/meili"
	"github.com/openparl/parliament-mcp/internal/adapters/driven/backend/qdrant"
	"github.com/openparl/parliament-mcp/internal/adapters/driven/config/file"
	"github.com/openparl/parliament-mcp/internal/adapters/driven/embedding/bm25"
	"github.com/openparl/parliament-mcp/internal/adapters/driven/embedding/openai"
	"github.com/openparl/parliament-mcp/internal/adapters/driven/members"
	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
	"github.com/openparl/parliament-mcp/internal/core/ports/driving"
	"github.com/openparl/parliament-mcp/internal/core/services"
	"github.com/openparl/parliament-mcp/internal/logger"
)

var version = "0.1.0"

var (
	configDir string
	verbose   bool
)

// Services shared by the commands, built once by initServices. The dense
// embedder is optional: without an API key, query-driven search degrades
// to what the engine can do natively and browsing still works.
var (
	settings      file.Settings
	searchService driving.ParliamentSearch
	memberService driving.MemberDirectory
	searchBackend driven.SearchBackend
	denseEmbedder driven.DenseEmbedder
)

var rootCmd = &cobra.Command{
	Use:   "parliament-mcp",
	Short: "Search UK Parliament debates, questions and members",
	Long: `parliament-mcp searches indexed UK Parliament data: Hansard debates and
contributions, parliamentary written questions, and the Members API
directory. It runs as an MCP server for AI assistants or directly from
the command line.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.parliament-mcp)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging to stderr")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	err := rootCmd.Execute()
	closeServices()
	if err != nil {
		os.Exit(1)
	}
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	// Already wired, by a previous command in this process or by a test.
	if searchService != nil {
		return nil
	}

	loaded, err := file.Load(configDir)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	settings = loaded

	backend, err := buildBackend(settings)
	if err != nil {
		return err
	}
	searchBackend = backend

	if settings.Embedding.APIKey != "" {
		embedder, err := openai.New(openai.Config{
			APIKey:     settings.Embedding.APIKey,
			BaseURL:    settings.Embedding.BaseURL,
			Model:      settings.Embedding.Model,
			Dimensions: settings.Embedding.Dimensions,
		})
		if err != nil {
			return fmt.Errorf("configuring embedder: %w", err)
		}
		denseEmbedder = embedder
	} else {
		logger.Debug("no embedding API key; semantic ranking limited to engine-native search")
	}

	searchService = services.NewParliamentSearchService(
		searchBackend,
		denseEmbedder,
		bm25.New(bm25.DefaultK1),
		searchConfig(settings.Search),
	)

	membersClient := members.New(members.Config{
		BaseURL:           settings.Members.BaseURL,
		RequestsPerSecond: settings.Members.RequestsPerSecond,
	})
	memberService = services.NewMemberDirectoryService(membersClient)

	return nil
}

func buildBackend(settings file.Settings) (driven.SearchBackend, error) {
	switch settings.Backend.Engine {
	case file.EngineMeilisearch:
		return meili.New(meili.Config{
			Host:          settings.Meili.Host,
			APIKey:        settings.Meili.APIKey,
			Embedder:      settings.Meili.Embedder,
			SemanticRatio: settings.Meili.SemanticRatio,
		})
	case file.EngineQdrant, "":
		return qdrant.New(qdrant.Config{
			Host:   settings.Qdrant.Host,
			Port:   settings.Qdrant.Port,
			APIKey: settings.Qdrant.APIKey,
			UseTLS: settings.Qdrant.UseTLS,
		})
	default:
		return nil, fmt.Errorf("unknown backend engine %q (expected %s or %s)",
			settings.Backend.Engine, file.EngineQdrant, file.EngineMeilisearch)
	}
}

func searchConfig(s file.SearchSettings) services.SearchConfig {
	cfg := services.DefaultSearchConfig()
	if s.ContributionsCollection != "" {
		cfg.ContributionsCollection = s.ContributionsCollection
	}
	if s.QuestionsCollection != "" {
		cfg.QuestionsCollection = s.QuestionsCollection
	}
	if s.Overfetch > 0 {
		cfg.Overfetch = s.Overfetch
	}
	if s.MinScore > 0 {
		cfg.MinScore = s.MinScore
	}
	if s.DebateGroupSize > 0 {
		cfg.DebateGroupSize = s.DebateGroupSize
	}
	if s.QuestionGroupSize > 0 {
		cfg.QuestionGroupSize = s.QuestionGroupSize
	}
	if s.TimeoutSeconds > 0 {
		cfg.BackendTimeout = time.Duration(s.TimeoutSeconds) * time.Second
	}
	return cfg
}

func closeServices() {
	if denseEmbedder != nil {
		denseEmbedder.Close() //nolint:errcheck
	}
	if searchBackend != nil {
		searchBackend.Close() //nolint:errcheck
	}
}
