package linkedin

import (
	"net/http"
	"time"

	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
	"github.com/honeycarbs/linkedin-mcp/pkg/rapidapi"
)

// Config defines Fresh LinkedIn Profile Data client settings
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client calls the Fresh LinkedIn Profile Data API
type Client struct {
	api *rapidapi.Client
}

// SearchJobsParams describe a /search-jobs request. Zero values fall back to
// the provider defaults; list filters are always sent, empty when unset.
type SearchJobsParams struct {
	Keywords          string
	GeoCode           int64
	DatePosted        string
	ExperienceLevels  []string
	CompanyIDs        []int64
	TitleIDs          []int64
	OnsiteRemotes     []string
	Functions         []string
	Industries        []int64
	JobTypes          []string
	SortBy            string
	EasyApply         *bool
	Under10Applicants *bool
	Start             int
}

type searchJobsBody struct {
	Keywords          string   `json:"keywords"`
	GeoCode           int64    `json:"geo_code"`
	DatePosted        string   `json:"date_posted"`
	ExperienceLevels  []string `json:"experience_levels"`
	CompanyIDs        []int64  `json:"company_ids"`
	TitleIDs          []int64  `json:"title_ids"`
	OnsiteRemotes     []string `json:"onsite_remotes"`
	Functions         []string `json:"functions"`
	Industries        []int64  `json:"industries"`
	JobTypes          []string `json:"job_types"`
	SortBy            string   `json:"sort_by"`
	EasyApply         string   `json:"easy_apply"`
	Under10Applicants string   `json:"under_10_applicants"`
	Start             int      `json:"start"`
}
