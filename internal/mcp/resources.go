package mcp

import (
	"github.com/honeycarbs/linkedin-mcp/internal/config"
	"github.com/honeycarbs/linkedin-mcp/internal/mcp/tools"
	"github.com/honeycarbs/linkedin-mcp/pkg/jobfeed"
	"github.com/honeycarbs/linkedin-mcp/pkg/linkedin"
	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

// Resources holds the upstream clients backing the tools
type Resources struct {
	LinkedIn *linkedin.Client
	JobFeed  *jobfeed.Client
}

// The accessors keep a nil client from turning into a non-nil interface.

func (r *Resources) ProfileSource() tools.ProfileSource {
	if r.LinkedIn == nil {
		return nil
	}
	return r.LinkedIn
}

func (r *Resources) JobSearcher() tools.JobSearcher {
	if r.LinkedIn == nil {
		return nil
	}
	return r.LinkedIn
}

func (r *Resources) PDFSource() tools.ProfilePDFSource {
	if r.LinkedIn == nil {
		return nil
	}
	return r.LinkedIn
}

func (r *Resources) PostingSearcher() tools.PostingSearcher {
	if r.JobFeed == nil {
		return nil
	}
	return r.JobFeed
}

// BuildResources wires the upstream clients and logs the result
func BuildResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	res, err := InitializeResources(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		return nil, err
	}

	logger.Info("upstream clients initialized",
		"linkedin_host", linkedin.Host,
		"jobfeed_host", jobfeed.Host,
		"timeout", cfg.RapidAPI.Timeout,
	)
	return res, nil
}

func provideLinkedInConfig(cfg config.Config, logger *logging.Logger) linkedin.Config {
	return linkedin.Config{
		APIKey:  cfg.RapidAPI.Key,
		BaseURL: cfg.LinkedIn.BaseURL,
		Timeout: cfg.RapidAPI.Timeout,
		Logger:  logger.Named("linkedin"),
	}
}

func provideJobFeedConfig(cfg config.Config, logger *logging.Logger) jobfeed.Config {
	return jobfeed.Config{
		APIKey:  cfg.RapidAPI.Key,
		BaseURL: cfg.JobFeed.BaseURL,
		Timeout: cfg.RapidAPI.Timeout,
		Logger:  logger.Named("jobfeed"),
	}
}

func newResources(li *linkedin.Client, feed *jobfeed.Client) *Resources {
	return &Resources{
		LinkedIn: li,
		JobFeed:  feed,
	}
}
