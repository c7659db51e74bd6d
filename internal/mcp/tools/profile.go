package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

const profileUnavailable = "Unable to fetch LinkedIn profile data."

// ProfileSource fetches a LinkedIn profile as JSON
type ProfileSource interface {
	Profile(ctx context.Context, linkedinURL string) (json.RawMessage, error)
}

// GetProfileParams defines the arguments for the get_profile tool
type GetProfileParams struct {
	LinkedInURL string `json:"linkedin_url" jsonschema:"The LinkedIn profile URL"`
}

type profileTool struct {
	source ProfileSource
	logger *logging.Logger
}

// WithProfile registers the get_profile tool
func WithProfile(source ProfileSource) Option {
	return func(reg *registry) {
		handler := profileTool{source: source, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get_profile",
			Description: "Get LinkedIn profile data for a given profile URL",
		}, handler.handle)
		reg.add("get_profile")
	}
}

func (t profileTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetProfileParams) (*sdkmcp.CallToolResult, any, error) {
	log := invocationLogger(t.logger, "get_profile")
	log.Debug("get_profile called", "linkedin_url", params.LinkedInURL)

	if t.source == nil {
		log.Error("get_profile: profile source not configured")
		return textResult(profileUnavailable), nil, nil
	}

	data, err := t.source.Profile(ctx, params.LinkedInURL)
	if err != nil || len(data) == 0 {
		logUpstreamFailure(log, err)
		return textResult(profileUnavailable), nil, nil
	}

	log.Info("get_profile completed", "bytes", len(data))
	return textResult(prettyJSON(data)), nil, nil
}
