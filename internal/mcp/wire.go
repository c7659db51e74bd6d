//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/honeycarbs/linkedin-mcp/internal/config"
	"github.com/honeycarbs/linkedin-mcp/pkg/jobfeed"
	"github.com/honeycarbs/linkedin-mcp/pkg/linkedin"
	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

// InitializeResources creates Resources with both upstream clients wired up
func InitializeResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - Fresh LinkedIn Profile Data
		provideLinkedInConfig,
		linkedin.NewClient,

		// Infrastructure - Job Posting Feed
		provideJobFeedConfig,
		jobfeed.NewClient,

		newResources,
	)

	return &Resources{}, nil
}
