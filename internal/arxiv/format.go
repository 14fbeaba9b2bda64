// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/meshintel/arxiv-harvest/pkg/types"
)

// FormatTable writes fetched papers as a human-readable table to w.
func FormatTable(papers []types.Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-10s  %s\n",
		"Rank", "Title", "Authors", "Published", "Category")
	fmt.Fprintln(w, strings.Repeat("-", 106))

	for i, p := range papers {
		title := runewidth.Truncate(p.Title, 60, "...")
		published := p.Published
		if len(published) >= 10 {
			published = published[:10]
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-10s  %s\n",
			i+1, title, formatAuthors(p.Authors), published, p.PrimaryCategory)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return runewidth.Truncate(authors[0], 20, "...")
	default:
		return runewidth.Truncate(authors[0], 14, "...") + " et al."
	}
}
