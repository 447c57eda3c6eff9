package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	authorPage         int
	authorItemsPerPage int
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Author lookups",
}

var authorsPapersCmd = &cobra.Command{
	Use:   "papers <full name>",
	Short: "List the papers of an author found by name",
	Long: `Search authors by full name and list the papers of the first match.
When no author matches, an empty result page is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthorsPapers,
}

func init() {
	authorsPapersCmd.Flags().IntVar(&authorPage, "page", 1, "page number")
	authorsPapersCmd.Flags().IntVar(&authorItemsPerPage, "items-per-page", 20, "items per page")
	authorsCmd.AddCommand(authorsPapersCmd)
	rootCmd.AddCommand(authorsCmd)
}

func runAuthorsPapers(cmd *cobra.Command, args []string) error {
	research, err := researchService()
	if err != nil {
		return err
	}

	var page, itemsPerPage *int
	if cmd.Flags().Changed("page") {
		page = &authorPage
	}
	if cmd.Flags().Changed("items-per-page") {
		itemsPerPage = &authorItemsPerPage
	}

	body, err := research.ListPapersByAuthorName(cmd.Context(), args[0], page, itemsPerPage)
	if err != nil {
		return fmt.Errorf("author papers failed: %w", err)
	}
	return printJSON(cmd, body)
}
