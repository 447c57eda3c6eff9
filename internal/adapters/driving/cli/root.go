// Package cli provides the command-line interface: the MCP server entry
// point plus direct access to catalogue operations, the author resolution
// chain and document ingestion.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/pwc-mcp/internal/logger"
	"github.com/custodia-labs/pwc-mcp/internal/observability"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services holds the driving ports the commands use.
type Services struct {
	Research driving.ResearchService
	Document driving.DocumentService
	Settings driving.SettingsService

	// Metrics and Gatherer back the MCP server's /metrics endpoint. Optional.
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer
}

// ServiceFactory builds the services for a config directory.
// An empty directory selects the default location.
type ServiceFactory func(configDir string) (*Services, error)

var (
	services       *Services
	serviceFactory ServiceFactory

	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "pwc-mcp",
	Short: "Papers With Code tools for AI assistants",
	Long: `pwc-mcp exposes the Papers With Code research API as Model Context
Protocol tools: search papers, authors, conferences and research areas,
resolve an author's papers by name, and read papers by URL.

Run "pwc-mcp mcp serve" to start the MCP server.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.pwc-mcp)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command and the MCP server.
func SetVersion(v string) {
	version = v
}

// SetServices injects ready-made services. Commands use them as is and the
// factory is not called.
func SetServices(s *Services) {
	services = s
}

// SetServiceFactory sets the function that builds services on first use.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if services != nil || serviceFactory == nil {
		return nil
	}

	s, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialise services: %w", err)
	}
	services = s
	return nil
}

func researchService() (driving.ResearchService, error) {
	if services == nil || services.Research == nil {
		return nil, errors.New("research service not configured")
	}
	return services.Research, nil
}

func documentService() (driving.DocumentService, error) {
	if services == nil || services.Document == nil {
		return nil, errors.New("document service not configured")
	}
	return services.Document, nil
}

func settingsService() (driving.SettingsService, error) {
	if services == nil || services.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return services.Settings, nil
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
