// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/meshintel/arxiv-harvest/pkg/types"
)

const sampleFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <entry>
    <id>http://arxiv.org/abs/2301.07041v1</id>
    <updated>2023-01-18T09:12:00Z</updated>
    <published>2023-01-17T18:58:28Z</published>
    <title> Test Paper Title
 </title>
    <summary> This is the abstract of the test paper. </summary>
    <author><name>Ada Lovelace</name></author>
    <author><name> Alan Turing </name></author>
    <arxiv:comment>14 pages, 3 figures</arxiv:comment>
    <arxiv:primary_category term="cs.CL"/>
    <category term="cs.CL"/>
    <category term="cs.AI"/>
    <link rel="alternate" type="text/html" href="httpss://arxiv.org/abs/2301.07041v1"/>
    <link title="pdf" rel="related" type="application/pdf" href="httpss://arxiv.org/pdf/2301.07041v1"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2301.99999v2</id>
    <updated>2023-01-20T00:00:00Z</updated>
    <published>2023-01-19T00:00:00Z</published>
    <title>Second Paper</title>
    <summary>Second abstract.</summary>
    <author><name>Grace Hopper</name></author>
    <category term="cs.AI"/>
    <link rel="alternate" type="text/html" href="https://arxiv.org/abs/2301.99999v2"/>
    <link title="pdf" rel="related" type="application/pdf" href="https://arxiv.org/pdf/2301.99999v2"/>
  </entry>
</feed>`

func testFetchCfg() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 10 * time.Second, UserAgent: "test/0.1"},
		MaxResults: 5,
	}
}

// withAPIBase points the package at ts for the duration of the test.
func withAPIBase(t *testing.T, ts *httptest.Server) {
	t.Helper()
	orig := apiBase
	apiBase = ts.URL
	t.Cleanup(func() { apiBase = orig })
}

func TestFetchQueryParameters(t *testing.T) {
	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(sampleFeedXML))
	}))
	defer ts.Close()
	withAPIBase(t, ts)

	c := &Client{HTTP: ts.Client()}
	if _, err := c.Fetch(context.Background(), "cat:cs.AI AND graphrag", testFetchCfg()); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	want := map[string]string{
		"search_query": "cat:cs.AI AND graphrag",
		"start":        "0",
		"max_results":  "5",
		"sortBy":       "submittedDate",
		"sortOrder":    "descending",
	}
	for k, v := range want {
		if got := gotQuery.Get(k); got != v {
			t.Errorf("query param %s = %q, want %q", k, got, v)
		}
	}
}

func TestFetchParsesEntries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeedXML))
	}))
	defer ts.Close()
	withAPIBase(t, ts)

	c := &Client{HTTP: ts.Client()}
	papers, err := c.Fetch(context.Background(), "cat:cs.CL", testFetchCfg())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}

	p := papers[0]
	if p.ID != "http://arxiv.org/abs/2301.07041v1" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Title != "Test Paper Title" {
		t.Errorf("Title = %q, want trimmed title", p.Title)
	}
	if p.Summary != "This is the abstract of the test paper." {
		t.Errorf("Summary = %q, want trimmed summary", p.Summary)
	}
	if len(p.Authors) != 2 || p.Authors[0] != "Ada Lovelace" || p.Authors[1] != "Alan Turing" {
		t.Errorf("Authors = %v", p.Authors)
	}
	if p.PrimaryCategory != "cs.CL" {
		t.Errorf("PrimaryCategory = %q, want cs.CL", p.PrimaryCategory)
	}
	if len(p.Categories) != 2 || p.Categories[1] != "cs.AI" {
		t.Errorf("Categories = %v", p.Categories)
	}
	if p.Comment == nil || *p.Comment != "14 pages, 3 figures" {
		t.Errorf("Comment = %v", p.Comment)
	}
	if p.Updated != "2023-01-18T09:12:00Z" || p.Published != "2023-01-17T18:58:28Z" {
		t.Errorf("timestamps = %q / %q", p.Updated, p.Published)
	}

	// Second entry has no arxiv:primary_category and no comment.
	q := papers[1]
	if q.PrimaryCategory != "cs.AI" {
		t.Errorf("fallback PrimaryCategory = %q, want cs.AI", q.PrimaryCategory)
	}
	if q.Comment != nil {
		t.Errorf("Comment = %v, want nil", q.Comment)
	}
}

func TestFetchNormalizesProtocolDefect(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeedXML))
	}))
	defer ts.Close()
	withAPIBase(t, ts)

	c := &Client{HTTP: ts.Client()}
	papers, err := c.Fetch(context.Background(), "cat:cs.CL", testFetchCfg())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if papers[0].PDFURL != "https://arxiv.org/pdf/2301.07041v1" {
		t.Errorf("PDFURL = %q, defect not normalized", papers[0].PDFURL)
	}
	if papers[0].HTMLURL != "https://arxiv.org/abs/2301.07041v1" {
		t.Errorf("HTMLURL = %q, defect not normalized", papers[0].HTMLURL)
	}
	for _, p := range papers {
		if strings.Contains(p.PDFURL, "httpss") || strings.Contains(p.HTMLURL, "httpss") {
			t.Errorf("URL still contains defect: %q %q", p.PDFURL, p.HTMLURL)
		}
	}
}

func TestFetchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()
	withAPIBase(t, ts)

	c := &Client{HTTP: ts.Client()}
	_, err := c.Fetch(context.Background(), "cat:cs.CL", testFetchCfg())
	if err == nil || !strings.Contains(err.Error(), "HTTP 503") {
		t.Errorf("expected HTTP 503 error, got: %v", err)
	}
}

func TestFetchMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not an atom feed"))
	}))
	defer ts.Close()
	withAPIBase(t, ts)

	c := &Client{HTTP: ts.Client()}
	_, err := c.Fetch(context.Background(), "cat:cs.CL", testFetchCfg())
	if err == nil || !strings.Contains(err.Error(), "parsing arXiv response") {
		t.Errorf("expected parse error, got: %v", err)
	}
}

func TestFetchEmptyQuery(t *testing.T) {
	c := &Client{HTTP: http.DefaultClient}
	if _, err := c.Fetch(context.Background(), "", testFetchCfg()); err == nil {
		t.Error("expected error for empty query")
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"httpss://arxiv.org/pdf/2301.07041", "https://arxiv.org/pdf/2301.07041"},
		{"https://arxiv.org/pdf/2301.07041", "https://arxiv.org/pdf/2301.07041"},
		{"http://arxiv.org/abs/2301.07041", "http://arxiv.org/abs/2301.07041"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
