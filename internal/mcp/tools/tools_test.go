package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/linkedin-mcp/pkg/jobfeed"
	"github.com/honeycarbs/linkedin-mcp/pkg/linkedin"
	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
	"github.com/honeycarbs/linkedin-mcp/pkg/rapidapi"
)

var rateLimited = &rapidapi.Error{Kind: rapidapi.KindHTTP, StatusCode: 429, Body: "Too many requests"}

type fakeLinkedIn struct {
	profile    json.RawMessage
	pdf        []byte
	jobs       json.RawMessage
	err        error
	lastURL    string
	lastSearch linkedin.SearchJobsParams
}

func (f *fakeLinkedIn) Profile(_ context.Context, u string) (json.RawMessage, error) {
	f.lastURL = u
	return f.profile, f.err
}

func (f *fakeLinkedIn) ProfilePDF(_ context.Context, u string) ([]byte, error) {
	f.lastURL = u
	return f.pdf, f.err
}

func (f *fakeLinkedIn) SearchJobs(_ context.Context, p linkedin.SearchJobsParams) (json.RawMessage, error) {
	f.lastSearch = p
	return f.jobs, f.err
}

type fakeFeed struct {
	data json.RawMessage
	err  error
	last jobfeed.Params
}

func (f *fakeFeed) ActiveJobs(_ context.Context, p jobfeed.Params) (json.RawMessage, error) {
	f.last = p
	return f.data, f.err
}

func connect(t *testing.T, opts ...Option) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "test-server", Version: "0.0.1"}, nil)
	Register(server, logging.NewNop(), opts...)

	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })

	return cs
}

func callText(t *testing.T, cs *sdkmcp.ClientSession, name string, args map[string]any) string {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s reported an error", name)
	require.Len(t, res.Content, 1)

	txt, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return txt.Text
}

func TestRegisterListsAllTools(t *testing.T) {
	li := &fakeLinkedIn{}
	cs := connect(t, WithProfile(li), WithJobs(li), WithPDFCV(li), WithActiveJobs(&fakeFeed{}))

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"get_profile", "get_jobs", "get_pdf_cv", "search_active_jobs"}, names)
}

func TestGetProfile(t *testing.T) {
	li := &fakeLinkedIn{profile: json.RawMessage(`{"data":{"full_name":"Ada"}}`)}
	cs := connect(t, WithProfile(li))

	out := callText(t, cs, "get_profile", map[string]any{"linkedin_url": "https://www.linkedin.com/in/ada"})

	assert.Equal(t, "{\n  \"data\": {\n    \"full_name\": \"Ada\"\n  }\n}", out)
	assert.Equal(t, "https://www.linkedin.com/in/ada", li.lastURL)
}

func TestFailureSentences(t *testing.T) {
	li := &fakeLinkedIn{err: rateLimited}
	feed := &fakeFeed{err: rateLimited}
	cs := connect(t, WithProfile(li), WithJobs(li), WithPDFCV(li), WithActiveJobs(feed))

	cases := []struct {
		tool string
		args map[string]any
		want string
	}{
		{"get_profile", map[string]any{"linkedin_url": "u"}, "Unable to fetch LinkedIn profile data."},
		{"get_jobs", map[string]any{"keywords": "go"}, "Unable to fetch LinkedIn job search results."},
		{"get_pdf_cv", map[string]any{"linkedin_url": "u"}, "Unable to fetch LinkedIn profile PDF CV."},
		{"search_active_jobs", map[string]any{"search": "go"}, "Unable to fetch job postings."},
	}

	for _, tc := range cases {
		t.Run(tc.tool, func(t *testing.T) {
			out := callText(t, cs, tc.tool, tc.args)
			assert.Equal(t, tc.want, out)
			assert.NotContains(t, out, "429")
		})
	}
}

func TestEmptyPayloadIsFailure(t *testing.T) {
	li := &fakeLinkedIn{}
	cs := connect(t, WithProfile(li), WithPDFCV(li))

	assert.Equal(t, profileUnavailable, callText(t, cs, "get_profile", map[string]any{"linkedin_url": "u"}))
	assert.Equal(t, pdfUnavailable, callText(t, cs, "get_pdf_cv", map[string]any{"linkedin_url": "u"}))
}

func TestUnconfiguredSource(t *testing.T) {
	cs := connect(t, WithProfile(nil))
	assert.Equal(t, profileUnavailable, callText(t, cs, "get_profile", map[string]any{"linkedin_url": "u"}))
}

func TestGetJobsCompanyFilter(t *testing.T) {
	li := &fakeLinkedIn{jobs: json.RawMessage(`{"data":[]}`)}
	cs := connect(t, WithJobs(li))

	callText(t, cs, "get_jobs", map[string]any{"keywords": "marketing"})
	assert.Equal(t, []int64{}, li.lastSearch.CompanyIDs)
	assert.Equal(t, int64(92000000), li.lastSearch.GeoCode)
	assert.Equal(t, "Any time", li.lastSearch.DatePosted)

	callText(t, cs, "get_jobs", map[string]any{
		"keywords":    "marketing",
		"company_id":  42,
		"geo_code":    103644278,
		"date_posted": "Past week",
	})
	assert.Equal(t, []int64{42}, li.lastSearch.CompanyIDs)
	assert.Equal(t, int64(103644278), li.lastSearch.GeoCode)
	assert.Equal(t, "Past week", li.lastSearch.DatePosted)
}

func TestGetPDFCVWithoutPath(t *testing.T) {
	li := &fakeLinkedIn{pdf: []byte("%PDF-1.7 abc")}
	cs := connect(t, WithPDFCV(li))

	out := callText(t, cs, "get_pdf_cv", map[string]any{"linkedin_url": "https://www.linkedin.com/in/ada"})
	assert.Equal(t,
		"PDF CV generated successfully for https://www.linkedin.com/in/ada (size: 12 bytes). No file was saved as no output path was provided.",
		out,
	)
}

func TestGetPDFCVWritesFile(t *testing.T) {
	pdf := []byte("%PDF-1.7\x00\x01binary")
	li := &fakeLinkedIn{pdf: pdf}
	cs := connect(t, WithPDFCV(li))

	path := filepath.Join(t.TempDir(), "cv.pdf")
	out := callText(t, cs, "get_pdf_cv", map[string]any{"linkedin_url": "u", "output_path": path})

	assert.Equal(t, "PDF CV saved successfully to: "+path, out)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pdf, written)
}

func TestGetPDFCVWriteError(t *testing.T) {
	li := &fakeLinkedIn{pdf: []byte("%PDF")}
	cs := connect(t, WithPDFCV(li))

	path := filepath.Join(t.TempDir(), "missing", "cv.pdf")
	out := callText(t, cs, "get_pdf_cv", map[string]any{"linkedin_url": "u", "output_path": path})

	assert.Contains(t, out, "Error saving PDF CV: ")
}

func TestSearchActiveJobsForwarding(t *testing.T) {
	feed := &fakeFeed{data: json.RawMessage(`[{"id":"1"}]`)}
	cs := connect(t, WithActiveJobs(feed))

	out := callText(t, cs, "search_active_jobs", map[string]any{
		"search":           "Flutter Developer",
		"location":         "United States;London",
		"company":          "Google",
		"experience_level": "5-10",
	})
	assert.Equal(t, "[\n  {\n    \"id\": \"1\"\n  }\n]", out)

	v := feed.last.Values()
	assert.Equal(t, "true", v.Get("include_ai"))
	assert.Equal(t, "html", v.Get("description_type"))
	assert.Equal(t, "false", v.Get("title_search"))
	assert.Equal(t, "Flutter Developer", v.Get("search"))
	assert.Equal(t, "United States;London", v.Get("location_filter"))
	assert.Equal(t, "Google", v.Get("organization_filter"))
	assert.Equal(t, "5-10", v.Get("ai_experience_level_filter"))

	_, hasRemote := v["remote"]
	assert.False(t, hasRemote)
}

func TestSearchActiveJobsRemoteFlag(t *testing.T) {
	feed := &fakeFeed{data: json.RawMessage(`[{"id":"1"}]`)}
	cs := connect(t, WithActiveJobs(feed))

	callText(t, cs, "search_active_jobs", map[string]any{"remote": false, "title_search": true})

	v := feed.last.Values()
	assert.Equal(t, "false", v.Get("remote"))
	assert.Equal(t, "true", v.Get("title_search"))
	_, hasSearch := v["search"]
	assert.False(t, hasSearch)
}
