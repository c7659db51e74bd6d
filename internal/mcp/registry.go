package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkedin-mcp/internal/mcp/tools"
	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

type ToolRegistry struct {
	logger *logging.Logger
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger}
}

// RegisterAll installs the LinkedIn and job feed tools. Nil sources still
// register; their tools answer with the failure sentence.
func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res *Resources) []string {
	if res == nil {
		res = &Resources{}
	}

	opts := []tools.Option{
		tools.WithProfile(res.ProfileSource()),
		tools.WithJobs(res.JobSearcher()),
		tools.WithPDFCV(res.PDFSource()),
		tools.WithActiveJobs(res.PostingSearcher()),
	}

	return tools.Register(server, r.logger, opts...)
}
