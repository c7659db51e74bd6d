package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkedin-mcp/pkg/jobfeed"
	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

const postingsUnavailable = "Unable to fetch job postings."

// PostingSearcher lists active postings from the job feed
type PostingSearcher interface {
	ActiveJobs(ctx context.Context, params jobfeed.Params) (json.RawMessage, error)
}

// SearchActiveJobsParams defines the arguments for the search_active_jobs tool
type SearchActiveJobsParams struct {
	Search          *string `json:"search,omitempty" jsonschema:"Keywords to search for in job listings (e.g. Flutter Developer)"`
	TitleSearch     *bool   `json:"title_search,omitempty" jsonschema:"Set to true to search keywords in job titles only"`
	Remote          *bool   `json:"remote,omitempty" jsonschema:"Set to true for remote jobs only or false for non-remote only"`
	Location        *string `json:"location,omitempty" jsonschema:"Filter by location(s), use semicolons for multiple (e.g. United States;London)"`
	Company         *string `json:"company,omitempty" jsonschema:"Filter by company/organization, use semicolons for multiple (e.g. Google;Microsoft)"`
	ExperienceLevel *string `json:"experience_level,omitempty" jsonschema:"Filter by experience level: 0-2, 2-5, 5-10, 10+ or combinations with semicolons"`
}

type activeJobsTool struct {
	searcher PostingSearcher
	logger   *logging.Logger
}

// WithActiveJobs registers the search_active_jobs tool
func WithActiveJobs(searcher PostingSearcher) Option {
	return func(reg *registry) {
		handler := activeJobsTool{searcher: searcher, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_active_jobs",
			Description: "Search for active job postings with various filters",
		}, handler.handle)
		reg.add("search_active_jobs")
	}
}

func (t activeJobsTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params SearchActiveJobsParams) (*sdkmcp.CallToolResult, any, error) {
	log := invocationLogger(t.logger, "search_active_jobs")

	feed := feedParamsFrom(params)
	log.Debug("search_active_jobs called", "query", feed.Values().Encode())

	if t.searcher == nil {
		log.Error("search_active_jobs: posting searcher not configured")
		return textResult(postingsUnavailable), nil, nil
	}

	data, err := t.searcher.ActiveJobs(ctx, feed)
	if err != nil || len(data) == 0 {
		logUpstreamFailure(log, err)
		return textResult(postingsUnavailable), nil, nil
	}

	log.Info("search_active_jobs completed", "bytes", len(data))
	return textResult(prettyJSON(data)), nil, nil
}

// feedParamsFrom renames tool arguments to feed filters. AI enrichment is
// always requested since the experience level filter depends on it.
func feedParamsFrom(p SearchActiveJobsParams) jobfeed.Params {
	titleSearch := false
	if p.TitleSearch != nil {
		titleSearch = *p.TitleSearch
	}
	includeAI := true

	return jobfeed.Params{
		Search:                  p.Search,
		TitleSearch:             &titleSearch,
		DescriptionType:         jobfeed.DefaultDescriptionType,
		LocationFilter:          p.Location,
		OrganizationFilter:      p.Company,
		Remote:                  p.Remote,
		IncludeAI:               &includeAI,
		AIExperienceLevelFilter: p.ExperienceLevel,
	}
}
