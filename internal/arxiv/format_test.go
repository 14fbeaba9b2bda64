// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/meshintel/arxiv-harvest/pkg/types"
)

func TestFormatTable(t *testing.T) {
	papers := []types.Paper{
		{Title: "Short Title", Authors: []string{"Ada Lovelace"}, Published: "2023-01-17T18:58:28Z", PrimaryCategory: "cs.CL"},
		{Title: strings.Repeat("Very Long Title ", 10), Authors: []string{"A", "B", "C"}, Published: "2023-01-19T00:00:00Z", PrimaryCategory: "cs.AI"},
	}

	var buf bytes.Buffer
	FormatTable(papers, &buf)
	out := buf.String()

	if !strings.Contains(out, "Short Title") {
		t.Errorf("output missing title:\n%s", out)
	}
	if !strings.Contains(out, "2023-01-17") {
		t.Errorf("output missing published date:\n%s", out)
	}
	if !strings.Contains(out, "et al.") {
		t.Errorf("output missing author truncation:\n%s", out)
	}
	if !strings.Contains(out, "2 papers") {
		t.Errorf("output missing count:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Very Long Title") && !strings.Contains(line, "...") {
			t.Errorf("long title not truncated: %q", line)
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No papers found.") {
		t.Errorf("output = %q", buf.String())
	}
}
