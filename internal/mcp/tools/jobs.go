package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkedin-mcp/pkg/linkedin"
	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

const jobsUnavailable = "Unable to fetch LinkedIn job search results."

// JobSearcher runs a LinkedIn job search
type JobSearcher interface {
	SearchJobs(ctx context.Context, params linkedin.SearchJobsParams) (json.RawMessage, error)
}

// GetJobsParams defines the arguments for the get_jobs tool
type GetJobsParams struct {
	Keywords   string  `json:"keywords" jsonschema:"Job keywords to search for (e.g. marketing or software engineer)"`
	GeoCode    *int64  `json:"geo_code,omitempty" jsonschema:"Geographic location code (default 92000000 for worldwide)"`
	DatePosted *string `json:"date_posted,omitempty" jsonschema:"Time filter for job postings: Any time, Past month, Past week or 24hr"`
	CompanyID  *int64  `json:"company_id,omitempty" jsonschema:"Optional company ID to filter jobs by specific company"`
}

type jobsTool struct {
	searcher JobSearcher
	logger   *logging.Logger
}

// WithJobs registers the get_jobs tool
func WithJobs(searcher JobSearcher) Option {
	return func(reg *registry) {
		handler := jobsTool{searcher: searcher, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get_jobs",
			Description: "Search for jobs on LinkedIn based on keywords and other filters",
		}, handler.handle)
		reg.add("get_jobs")
	}
}

func (t jobsTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetJobsParams) (*sdkmcp.CallToolResult, any, error) {
	log := invocationLogger(t.logger, "get_jobs")

	search := searchParamsFrom(params)
	log.Debug("get_jobs called",
		"keywords", search.Keywords,
		"geo_code", search.GeoCode,
		"date_posted", search.DatePosted,
		"company_ids", search.CompanyIDs,
	)

	if t.searcher == nil {
		log.Error("get_jobs: job searcher not configured")
		return textResult(jobsUnavailable), nil, nil
	}

	data, err := t.searcher.SearchJobs(ctx, search)
	if err != nil || len(data) == 0 {
		logUpstreamFailure(log, err)
		return textResult(jobsUnavailable), nil, nil
	}

	log.Info("get_jobs completed", "bytes", len(data))
	return textResult(prettyJSON(data)), nil, nil
}

// searchParamsFrom applies tool defaults and wraps the single company filter
func searchParamsFrom(p GetJobsParams) linkedin.SearchJobsParams {
	out := linkedin.SearchJobsParams{
		Keywords:   p.Keywords,
		GeoCode:    linkedin.WorldwideGeoCode,
		DatePosted: linkedin.DefaultDatePosted,
		CompanyIDs: []int64{},
	}

	if p.GeoCode != nil {
		out.GeoCode = *p.GeoCode
	}
	if p.DatePosted != nil {
		out.DatePosted = *p.DatePosted
	}
	if p.CompanyID != nil {
		out.CompanyIDs = []int64{*p.CompanyID}
	}

	return out
}
