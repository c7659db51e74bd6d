package rapidapi

import (
	"net/http"
	"net/url"
	"time"

	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

// Config defines RapidAPI client settings for a single upstream host
type Config struct {
	Key        string
	Host       string // sent as x-rapidapi-host
	BaseURL    string // defaults to https://<Host>
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client sends authenticated requests to one RapidAPI provider
type Client struct {
	key        string
	host       string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *logging.Logger
}

// Request describes one outbound call
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any // JSON-encoded when non-nil
}

// Response holds a fully read upstream body
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
