package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show the effective settings, read one key, or set one key.

Keys:
  api.base_url         research API root
  api.timeout          per-request timeout (e.g. 30s)
  document.timeout     document fetch timeout (e.g. 2m)
  document.user_agent  User-Agent sent with document fetches
  document.max_bytes   maximum document size in bytes
  server.addr          listen address for "mcp serve --http"
  log.level            debug, info, warn or error
  log.format           console or json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	settings, err := settingsService()
	if err != nil {
		return err
	}

	values, err := settings.Values()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", settings.Path())
	for _, key := range settings.Keys() {
		fmt.Fprintf(out, "%s = %s\n", key, strconv.Quote(values[key]))
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	settings, err := settingsService()
	if err != nil {
		return err
	}

	values, err := settings.Values()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	value, ok := values[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	settings, err := settingsService()
	if err != nil {
		return err
	}

	if err := settings.Set(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s updated\n", args[0])
	return nil
}
