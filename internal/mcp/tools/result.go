package tools

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
	"github.com/honeycarbs/linkedin-mcp/pkg/rapidapi"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// prettyJSON indents raw with two spaces, falling back to the raw text
func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// invocationLogger tags a logger with the tool name and a fresh request id
func invocationLogger(l *logging.Logger, tool string) *logging.Logger {
	return l.With("tool", tool, "request_id", uuid.NewString())
}

// logUpstreamFailure records why a provider call produced nothing. The
// detail stays in the logs; callers only ever see the tool's fixed sentence.
func logUpstreamFailure(l *logging.Logger, err error) {
	l.Warn("upstream call failed",
		"kind", rapidapi.KindOf(err).String(),
		"status", rapidapi.StatusCode(err),
		"err", err,
	)
}
