package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

var readStripHTML bool

var readCmd = &cobra.Command{
	Use:   "read <url>",
	Short: "Read a paper by URL",
	Long: `Download a document and print it as tagged JSON.

PDFs are returned as extracted text with kind "pdf"; anything else is
returned verbatim with kind "html". Failures are printed as
{"error": ..., "kind": "error"}.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readStripHTML, "strip-html", false, "add tag-stripped text for HTML pages")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}

	doc := documents.Read(cmd.Context(), args[0], domain.ReadOptions{StripHTML: readStripHTML})
	if services.Metrics != nil {
		services.Metrics.RecordDocumentRead(doc.Kind.String())
	}
	return printJSON(cmd, doc)
}
