package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openparl/parliament-mcp/internal/adapters/driven/config/file"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the search backend, embedding provider, and other
options. Settings live in config.toml under the config directory; API
keys can also be supplied via environment variables.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default settings file",
	Long:  `Write a config.toml with the default settings so it can be edited by hand.`,
	RunE:  runSettingsInit,
}

var settingsKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Set the embedding API key",
	Long:  `Prompt for the embedding provider API key and store it in the settings file.`,
	RunE:  runSettingsKey,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsKeyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Backend]")
	cmd.Printf("  Engine: %s\n", settings.Backend.Engine)
	switch settings.Backend.Engine {
	case file.EngineMeilisearch:
		cmd.Printf("  Host: %s\n", settings.Meili.Host)
		cmd.Printf("  Embedder: %s\n", settings.Meili.Embedder)
		cmd.Printf("  Semantic ratio: %.2f\n", settings.Meili.SemanticRatio)
		cmd.Printf("  API Key: %s\n", keyStatus(settings.Meili.APIKey))
	default:
		scheme := "grpc"
		if settings.Qdrant.UseTLS {
			scheme = "grpcs"
		}
		cmd.Printf("  Host: %s://%s:%d\n", scheme, settings.Qdrant.Host, settings.Qdrant.Port)
		cmd.Printf("  API Key: %s\n", keyStatus(settings.Qdrant.APIKey))
	}
	cmd.Println()

	cmd.Println("[Embedding]")
	if settings.Embedding.Model != "" {
		cmd.Printf("  Model: %s\n", settings.Embedding.Model)
	}
	cmd.Printf("  API Key: %s\n", keyStatus(settings.Embedding.APIKey))
	if settings.Embedding.APIKey == "" {
		cmd.Println("  Status: not configured, query ranking limited to engine-native search")
	} else {
		cmd.Println("  Status: configured")
	}
	cmd.Println()

	cmd.Println("[Members API]")
	baseURL := settings.Members.BaseURL
	if baseURL == "" {
		baseURL = "(default)"
	}
	cmd.Printf("  Base URL: %s\n", baseURL)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Contributions collection: %s\n", settings.Search.ContributionsCollection)
	cmd.Printf("  Questions collection: %s\n", settings.Search.QuestionsCollection)
	cmd.Printf("  Minimum score: %.2f\n", settings.Search.MinScore)

	return nil
}

func runSettingsInit(cmd *cobra.Command, _ []string) error {
	if err := file.Save(configDir, settings); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}

	dir := configDir
	if dir == "" {
		var err error
		dir, err = file.DefaultDir()
		if err != nil {
			return err
		}
	}
	cmd.Printf("Wrote %s\n", file.Path(dir))
	return nil
}

func runSettingsKey(cmd *cobra.Command, _ []string) error {
	cmd.Print("Embedding API key: ")
	key := readPassword()
	cmd.Println()
	if key == "" {
		return fmt.Errorf("no key entered")
	}

	settings.Embedding.APIKey = key
	if err := file.Save(configDir, settings); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	cmd.Println("API key saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read without echo first
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func keyStatus(key string) string {
	if key == "" {
		return "(not set)"
	}
	return maskAPIKey(key)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
