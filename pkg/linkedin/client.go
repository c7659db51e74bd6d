package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/honeycarbs/linkedin-mcp/pkg/rapidapi"
)

const (
	Host = "fresh-linkedin-profile-data.p.rapidapi.com"

	// WorldwideGeoCode is the geo_code LinkedIn uses for "worldwide"
	WorldwideGeoCode int64 = 92000000
	DefaultDatePosted      = "Any time"
	DefaultSortBy          = "Most relevant"

	profilePath    = "/get-linkedin-profile"
	searchJobsPath = "/search-jobs"
	pdfCVPath      = "/get-profile-pdf-cv"
)

// profileSections toggles which profile sections the provider includes
var profileSections = []struct {
	name    string
	include bool
}{
	{"include_skills", true},
	{"include_certifications", true},
	{"include_publications", false},
	{"include_honors", false},
	{"include_volunteers", false},
	{"include_projects", true},
	{"include_patents", false},
	{"include_courses", true},
	{"include_organizations", true},
	{"include_profile_status", false},
	{"include_company_public_url", true},
}

// NewClient instantiates a Fresh LinkedIn Profile Data client
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
		return nil, fmt.Errorf("linkedin: %w", err)
	}
	return &Client{api: api}, nil
}

// Profile fetches the profile behind linkedinURL
func (c *Client) Profile(ctx context.Context, linkedinURL string) (json.RawMessage, error) {
	return c.api.GetJSON(ctx, profilePath, profileQuery(linkedinURL))
}

// SearchJobs runs a LinkedIn job search
func (c *Client) SearchJobs(ctx context.Context, params SearchJobsParams) (json.RawMessage, error) {
	return c.api.PostJSON(ctx, searchJobsPath, buildSearchBody(params))
}

// ProfilePDF fetches the profile rendered as a PDF CV
func (c *Client) ProfilePDF(ctx context.Context, linkedinURL string) ([]byte, error) {
	return c.api.GetBytes(ctx, pdfCVPath, url.Values{"linkedin_url": {linkedinURL}})
}

func profileQuery(linkedinURL string) url.Values {
	values := url.Values{}
	values.Set("linkedin_url", linkedinURL)
	for _, s := range profileSections {
		values.Set(s.name, strconv.FormatBool(s.include))
	}
	return values
}

func buildSearchBody(p SearchJobsParams) searchJobsBody {
	body := searchJobsBody{
		Keywords:          p.Keywords,
		GeoCode:           p.GeoCode,
		DatePosted:        p.DatePosted,
		ExperienceLevels:  orEmpty(p.ExperienceLevels),
		CompanyIDs:        orEmpty(p.CompanyIDs),
		TitleIDs:          orEmpty(p.TitleIDs),
		OnsiteRemotes:     orEmpty(p.OnsiteRemotes),
		Functions:         orEmpty(p.Functions),
		Industries:        orEmpty(p.Industries),
		JobTypes:          orEmpty(p.JobTypes),
		SortBy:            p.SortBy,
		EasyApply:         "false",
		Under10Applicants: "false",
		Start:             p.Start,
	}

	if body.GeoCode == 0 {
		body.GeoCode = WorldwideGeoCode
	}
	if body.DatePosted == "" {
		body.DatePosted = DefaultDatePosted
	}
	if body.SortBy == "" {
		body.SortBy = DefaultSortBy
	}
	if p.EasyApply != nil {
		body.EasyApply = strconv.FormatBool(*p.EasyApply)
	}
	if p.Under10Applicants != nil {
		body.Under10Applicants = strconv.FormatBool(*p.Under10Applicants)
	}

	return body
}

// orEmpty keeps nil slices from encoding as JSON null
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
