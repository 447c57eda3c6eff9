package services

import "github.com/custodia-labs/pwc-mcp/internal/core/domain"

// Operation names that the author resolution chain depends on.
const (
	OpSearchAuthors        = "search_authors"
	OpListPapersByAuthorID = "list_papers_by_author_id"
	argAuthorID            = "author_id"
	argFullName            = "full_name"
)

func str(name, description string) domain.ParamSpec {
	return domain.ParamSpec{Name: name, Type: domain.ParamTypeString, Description: description}
}

func paperList(resource, description string) domain.Operation {
	return domain.Operation{
		Name:        "list_paper_" + resource,
		Description: description,
		Path:        "/papers/{paper_id}/" + resource + "/",
		PathParams:  []string{"paper_id"},
		Paginated:   true,
	}
}

// Catalogue returns the research API operations in registration order.
// Each call returns a fresh slice.
func Catalogue() []domain.Operation {
	return []domain.Operation{
		{
			Name:        "search_research_areas",
			Description: "Search for research areas that exist in Papers With Code",
			Path:        "/areas/",
			Query: []domain.ParamSpec{
				{Name: "q", Arg: "query", Type: domain.ParamTypeString, Description: "free-text search query"},
				str("name", "exact research area name"),
			},
			Paginated: true,
		},
		{
			Name:        "get_research_area",
			Description: "Get a research area by ID in Papers With Code",
			Path:        "/areas/{area_id}/",
			PathParams:  []string{"area_id"},
		},
		{
			Name:        "list_research_area_tasks",
			Description: "List the tasks for a given research area ID in Papers With Code",
			Path:        "/tasks/",
			Query: []domain.ParamSpec{
				{Name: "area", Arg: "area_id", Type: domain.ParamTypeString, Required: true, Description: "research area ID"},
			},
			Paginated: true,
		},
		{
			Name:        OpSearchAuthors,
			Description: "Search for authors by name in Papers With Code",
			Path:        "/authors/",
			Query: []domain.ParamSpec{
				str(argFullName, "author full name"),
				{Name: "q", Arg: "query", Type: domain.ParamTypeString, Description: "free-text search query"},
			},
			Paginated: true,
		},
		{
			Name:        "get_paper_author",
			Description: "Get a paper author by ID in Papers With Code",
			Path:        "/authors/{author_id}/",
			PathParams:  []string{argAuthorID},
		},
		{
			Name:        OpListPapersByAuthorID,
			Description: "List the papers written by a given author ID in Papers With Code",
			Path:        "/authors/{author_id}/papers/",
			PathParams:  []string{argAuthorID},
			Paginated:   true,
		},
		{
			Name:        "list_conferences",
			Description: "List the conferences in Papers With Code",
			Path:        "/conferences/",
			Query: []domain.ParamSpec{
				{Name: "name", Arg: "conference_name", Type: domain.ParamTypeString, Description: "exact conference name"},
				{Name: "q", Arg: "query", Type: domain.ParamTypeString, Description: "free-text search query"},
			},
			Paginated: true,
		},
		{
			Name:        "get_conference",
			Description: "Get a conference by ID in Papers With Code",
			Path:        "/conferences/{conference_id}/",
			PathParams:  []string{"conference_id"},
		},
		{
			Name:        "list_conference_proceedings",
			Description: "List the proceedings for a given conference ID in Papers With Code",
			Path:        "/conferences/{conference_id}/proceedings/",
			PathParams:  []string{"conference_id"},
			Paginated:   true,
		},
		{
			Name:        "get_conference_proceeding",
			Description: "Get a proceeding by conference ID and proceeding ID in Papers With Code",
			Path:        "/conferences/{conference_id}/proceedings/{proceeding_id}/",
			PathParams:  []string{"conference_id", "proceeding_id"},
		},
		{
			Name:        "list_conference_papers",
			Description: "List the papers for a given conference ID and proceeding ID in Papers With Code",
			Path:        "/conferences/{conference_id}/proceedings/{proceeding_id}/papers/",
			PathParams:  []string{"conference_id", "proceeding_id"},
			Paginated:   true,
		},
		{
			Name:        "search_papers",
			Description: "Search for a paper in Papers With Code",
			Path:        "/papers/",
			Query: []domain.ParamSpec{
				str("abstract", "text contained in the abstract"),
				str("title", "paper title"),
				str("arxiv_id", "arXiv identifier, e.g. 1706.03762"),
			},
			Paginated: true,
		},
		{
			Name:        "get_paper",
			Description: "Get a paper by ID in Papers With Code",
			Path:        "/papers/{paper_id}/",
			PathParams:  []string{"paper_id"},
		},
		paperList("repositories", "List the repositories for a given paper ID in Papers With Code"),
		paperList("datasets", "List the datasets for a given paper ID in Papers With Code"),
		paperList("methods", "List the methods for a given paper ID in Papers With Code"),
		paperList("results", "List the results for a given paper ID in Papers With Code"),
		paperList("tasks", "List the tasks for a given paper ID in Papers With Code"),
	}
}
