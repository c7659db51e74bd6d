package jobfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
	"github.com/honeycarbs/linkedin-mcp/pkg/rapidapi"
)

const (
	Host = "job-posting-feed-api.p.rapidapi.com"

	DefaultDescriptionType = "html"

	activeJobsPath = "/active-ats-meili"
)

// Config defines Job Posting Feed client settings
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client queries the Job Posting Feed API
type Client struct {
	api *rapidapi.Client
}

// Params filter active postings. A nil field is left out of the query
// string entirely; it never means false or empty.
type Params struct {
	Search                  *string
	TitleSearch             *bool
	DescriptionType         string // defaults to html
	LocationFilter          *string
	OrganizationFilter      *string
	Remote                  *bool
	IncludeAI               *bool
	AIEmploymentTypeFilter  *string
	AIWorkArrangementFilter *string
	AIExperienceLevelFilter *string
	AIVisaSponsorshipFilter *bool
}

// NewClient instantiates a Job Posting Feed client
func NewClient(cfg Config) (*Client, error) {
	api, err := rapidapi.NewClient(rapidapi.Config{
		Key:        cfg.APIKey,
		Host:       Host,
		BaseURL:    cfg.BaseURL,
		HTTPClient: cfg.HTTPClient,
		Timeout:    cfg.Timeout,
		Logger:     cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("jobfeed: %w", err)
	}
	return &Client{api: api}, nil
}

// ActiveJobs lists active ATS postings matching params
func (c *Client) ActiveJobs(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.api.GetJSON(ctx, activeJobsPath, params.Values())
}

// Values encodes the filters that were provided
func (p Params) Values() url.Values {
	values := url.Values{}

	setString(values, "search", p.Search)
	setBool(values, "title_search", p.TitleSearch)

	descType := p.DescriptionType
	if descType == "" {
		descType = DefaultDescriptionType
	}
	values.Set("description_type", descType)

	// blank text filters are dropped as well as nil ones
	setNonBlank(values, "location_filter", p.LocationFilter)
	setNonBlank(values, "organization_filter", p.OrganizationFilter)
	setBool(values, "remote", p.Remote)
	setBool(values, "include_ai", p.IncludeAI)
	setNonBlank(values, "ai_employment_type_filter", p.AIEmploymentTypeFilter)
	setNonBlank(values, "ai_work_arrangement_filter", p.AIWorkArrangementFilter)
	setNonBlank(values, "ai_experience_level_filter", p.AIExperienceLevelFilter)
	setBool(values, "ai_visa_sponsorship_filter", p.AIVisaSponsorshipFilter)

	return values
}

func setString(v url.Values, key string, s *string) {
	if s != nil {
		v.Set(key, *s)
	}
}

func setNonBlank(v url.Values, key string, s *string) {
	if s != nil && *s != "" {
		v.Set(key, *s)
	}
}

func setBool(v url.Values, key string, b *bool) {
	if b != nil {
		v.Set(key, strconv.FormatBool(*b))
	}
}
