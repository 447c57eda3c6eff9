package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/pwc-mcp/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	coreservices "github.com/custodia-labs/pwc-mcp/internal/core/services"
)

// mockResearchService is a mock implementation of driving.ResearchService.
type mockResearchService struct {
	mu       sync.Mutex
	body     any
	err      error
	name     string
	args     map[string]any
	author   string
	page     *int
	perPage  *int
	authored bool
}

func (m *mockResearchService) Operations() []domain.Operation {
	return coreservices.Catalogue()
}

func (m *mockResearchService) Operation(name string) (domain.Operation, bool) {
	for _, op := range coreservices.Catalogue() {
		if op.Name == name {
			return op, true
		}
	}
	return domain.Operation{}, false
}

func (m *mockResearchService) Call(_ context.Context, name string, args map[string]any) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.name, m.args = name, args
	return m.body, m.err
}

func (m *mockResearchService) ListPapersByAuthorName(
	_ context.Context, name string, page, itemsPerPage *int,
) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.authored = true
	m.author, m.page, m.perPage = name, page, itemsPerPage
	return m.body, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	doc  domain.IngestedDocument
	url  string
	opts domain.ReadOptions
}

func (m *mockDocumentService) Read(_ context.Context, url string, opts domain.ReadOptions) domain.IngestedDocument {
	m.url, m.opts = url, opts
	return m.doc
}

type testEnv struct {
	research *mockResearchService
	document *mockDocumentService
	settings *coreservices.SettingsService
}

// setupTestServices injects mocks for the duration of the test.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		research: &mockResearchService{},
		document: &mockDocumentService{},
		settings: coreservices.NewSettingsService(memory.NewConfigStore(nil)),
	}

	oldServices, oldFactory := services, serviceFactory
	SetServices(&Services{
		Research: env.research,
		Document: env.document,
		Settings: env.settings,
	})
	SetServiceFactory(nil)
	t.Cleanup(func() {
		services, serviceFactory = oldServices, oldFactory
	})
	return env
}

// resetFlags restores every flag to its default so package-level commands
// can be executed repeatedly.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
