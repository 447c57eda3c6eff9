package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

var callArgs []string

var callCmd = &cobra.Command{
	Use:   "call <operation>",
	Short: "Invoke a catalogue operation",
	Long: `Invoke one research API operation and print the JSON response.

Arguments use the same names as the MCP tool inputs. Pagination defaults
to page 1 with 20 items per page.

Examples:
  pwc-mcp call search_papers --arg title="Attention Is All You Need"
  pwc-mcp call get_paper --arg paper_id=attention-is-all-you-need
  pwc-mcp call list_research_area_tasks --arg area_id=computer-vision --arg page=2`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

var operationsJSON bool

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List catalogue operations",
	Args:  cobra.NoArgs,
	RunE:  runOperations,
}

func init() {
	callCmd.Flags().StringArrayVarP(&callArgs, "arg", "a", nil, "argument as key=value (repeatable)")
	operationsCmd.Flags().BoolVar(&operationsJSON, "json", false, "output operations as JSON")
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(operationsCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	research, err := researchService()
	if err != nil {
		return err
	}

	parsed, err := parseKeyValues(callArgs)
	if err != nil {
		return err
	}

	body, err := research.Call(cmd.Context(), args[0], parsed)
	if err != nil {
		return fmt.Errorf("%s failed: %w", args[0], err)
	}
	return printJSON(cmd, body)
}

// parseKeyValues turns key=value pairs into call arguments. Values stay
// strings; the research service converts them per parameter type.
func parseKeyValues(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: argument %q must be key=value", domain.ErrInvalidInput, pair)
		}
		out[key] = value
	}
	return out, nil
}

func runOperations(cmd *cobra.Command, _ []string) error {
	research, err := researchService()
	if err != nil {
		return err
	}

	ops := research.Operations()
	if operationsJSON {
		names := make([]map[string]any, len(ops))
		for i, op := range ops {
			names[i] = map[string]any{
				"name":        op.Name,
				"description": op.Description,
				"path":        op.Path,
				"arguments":   argumentNames(op),
			}
		}
		return printJSON(cmd, names)
	}

	out := cmd.OutOrStdout()
	for _, op := range ops {
		fmt.Fprintf(out, "%-32s %s\n", op.Name, op.Description)
		if argNames := argumentNames(op); len(argNames) > 0 {
			fmt.Fprintf(out, "%-32s   args: %s\n", "", strings.Join(argNames, ", "))
		}
	}
	return nil
}

// argumentNames lists path parameters first, marking required ones with '*'.
func argumentNames(op domain.Operation) []string {
	names := make([]string, 0, len(op.PathParams)+len(op.Query)+2)
	for _, p := range op.PathParams {
		names = append(names, p+"*")
	}
	for _, q := range op.AllQuery() {
		name := q.ArgName()
		if q.Required {
			name += "*"
		}
		names = append(names, name)
	}
	return names
}
