// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for arxiv-harvest.
package types

// Paper holds one arXiv record as returned by the export API.
//
// The JSON tags define the shape of a metadata line. Summary is carried
// in memory for the summary text files but is never serialized; Comment
// serializes as null when the entry has none.
type Paper struct {
	ID              string   `json:"id"`
	Updated         string   `json:"updated"`
	Published       string   `json:"published"`
	Title           string   `json:"title"`
	Summary         string   `json:"-"`
	Authors         []string `json:"authors"`
	PrimaryCategory string   `json:"primary_category"`
	Categories      []string `json:"categories"`
	PDFURL          string   `json:"pdf_url"`
	HTMLURL         string   `json:"html_url"`
	Comment         *string  `json:"comment"`
}
