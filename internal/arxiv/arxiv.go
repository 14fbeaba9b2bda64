// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv export API and parses its Atom feed
// into paper records.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/meshintel/arxiv-harvest/pkg/types"
)

// apiBase is the arXiv export endpoint. Declared as a var so tests
// can substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// Client queries the arXiv export API.
type Client struct {
	HTTP *http.Client
}

// Fetch runs the search query against the export API and returns the
// parsed records, most recently submitted first. Any transport or
// parse failure is returned as-is; nothing is retried.
func (c *Client) Fetch(ctx context.Context, query string, cfg types.FetchConfig) ([]types.Paper, error) {
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	papers := make([]types.Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		papers = append(papers, paperFromEntry(entry))
	}
	return papers, nil
}

// paperFromEntry maps one Atom entry onto a Paper record.
func paperFromEntry(e atomEntry) types.Paper {
	p := types.Paper{
		ID:         e.ID,
		Updated:    e.Updated,
		Published:  e.Published,
		Title:      strings.TrimSpace(e.Title),
		Summary:    strings.TrimSpace(e.Summary),
		Authors:    make([]string, 0, len(e.Authors)),
		Categories: make([]string, 0, len(e.Categories)),
	}

	for _, a := range e.Authors {
		p.Authors = append(p.Authors, strings.TrimSpace(a.Name))
	}

	for _, c := range e.Categories {
		p.Categories = append(p.Categories, c.Term)
	}
	p.PrimaryCategory = e.PrimaryCategory.Term
	if p.PrimaryCategory == "" && len(p.Categories) > 0 {
		p.PrimaryCategory = p.Categories[0]
	}

	for _, l := range e.Links {
		switch {
		case l.Title == "pdf" || l.Type == "application/pdf":
			p.PDFURL = NormalizeURL(l.Href)
		case l.Rel == "alternate":
			p.HTMLURL = NormalizeURL(l.Href)
		}
	}

	if c := strings.TrimSpace(e.Comment); c != "" {
		p.Comment = &c
	}
	return p
}

// NormalizeURL repairs the doubled-protocol defect ("httpss://") that
// feed links can carry.
func NormalizeURL(u string) string {
	return strings.ReplaceAll(u, "httpss", "https")
}

// arXiv Atom feed XML structures. The comment and primary_category
// elements live in the arXiv extension namespace.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID              string         `xml:"id"`
	Updated         string         `xml:"updated"`
	Published       string         `xml:"published"`
	Title           string         `xml:"title"`
	Summary         string         `xml:"summary"`
	Authors         []atomAuthor   `xml:"author"`
	Links           []atomLink     `xml:"link"`
	Categories      []atomCategory `xml:"category"`
	PrimaryCategory atomCategory   `xml:"http://arxiv.org/schemas/atom primary_category"`
	Comment         string         `xml:"http://arxiv.org/schemas/atom comment"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}
