package tools

import (
	"context"
	"fmt"
	"os"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

const pdfUnavailable = "Unable to fetch LinkedIn profile PDF CV."

// ProfilePDFSource fetches a LinkedIn profile rendered as a PDF
type ProfilePDFSource interface {
	ProfilePDF(ctx context.Context, linkedinURL string) ([]byte, error)
}

// GetPDFCVParams defines the arguments for the get_pdf_cv tool
type GetPDFCVParams struct {
	LinkedInURL string  `json:"linkedin_url" jsonschema:"The LinkedIn profile URL"`
	OutputPath  *string `json:"output_path,omitempty" jsonschema:"Optional path to save the PDF file. If not provided the PDF won't be saved to disk"`
}

type pdfCVTool struct {
	source ProfilePDFSource
	logger *logging.Logger
}

// WithPDFCV registers the get_pdf_cv tool
func WithPDFCV(source ProfilePDFSource) Option {
	return func(reg *registry) {
		handler := pdfCVTool{source: source, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get_pdf_cv",
			Description: "Get LinkedIn profile as a PDF CV for a given profile URL, optionally saving it to a file",
		}, handler.handle)
		reg.add("get_pdf_cv")
	}
}

func (t pdfCVTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetPDFCVParams) (*sdkmcp.CallToolResult, any, error) {
	log := invocationLogger(t.logger, "get_pdf_cv")
	log.Debug("get_pdf_cv called", "linkedin_url", params.LinkedInURL, "has_output_path", params.OutputPath != nil)

	if t.source == nil {
		log.Error("get_pdf_cv: pdf source not configured")
		return textResult(pdfUnavailable), nil, nil
	}

	pdf, err := t.source.ProfilePDF(ctx, params.LinkedInURL)
	if err != nil || len(pdf) == 0 {
		logUpstreamFailure(log, err)
		return textResult(pdfUnavailable), nil, nil
	}

	if params.OutputPath == nil || *params.OutputPath == "" {
		return textResult(fmt.Sprintf(
			"PDF CV generated successfully for %s (size: %d bytes). No file was saved as no output path was provided.",
			params.LinkedInURL, len(pdf),
		)), nil, nil
	}

	path := *params.OutputPath
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		log.Warn("get_pdf_cv: write failed", "path", path, "err", err)
		return textResult(fmt.Sprintf("Error saving PDF CV: %v", err)), nil, nil
	}

	log.Info("get_pdf_cv saved", "path", path, "bytes", len(pdf))
	return textResult(fmt.Sprintf("PDF CV saved successfully to: %s", path)), nil, nil
}
