// Package archive persists fetched paper records as line-delimited
// metadata, PDF files, and summary text files.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/meshintel/arxiv-harvest/pkg/types"
)

// Result summarizes what a run wrote.
type Result struct {
	MetadataLines int
	PDFs          int
	Summaries     int
	FullTexts     int
}

// Archive iterates papers in order and applies the enabled persistence
// steps to each: metadata lines accumulate in memory and are flushed to
// cfg.MetadataFile once after the loop; PDFs, summaries, and extracted
// full text are written per record. The first error aborts the whole
// run; nothing is retried and later records are not attempted.
func Archive(ctx context.Context, client *http.Client, papers []types.Paper, cfg types.ArchiveConfig, w io.Writer) (Result, error) {
	var res Result
	var metadata bytes.Buffer

	for _, p := range papers {
		if cfg.SaveMetadata {
			line, err := json.Marshal(p)
			if err != nil {
				return res, fmt.Errorf("marshaling metadata for %s: %w", p.ID, err)
			}
			metadata.Write(line)
			metadata.WriteByte('\n')
			res.MetadataLines++
		}

		name := baseName(p)

		if cfg.SavePDF {
			if err := os.MkdirAll(cfg.PDFDir, 0o755); err != nil {
				return res, fmt.Errorf("creating PDF directory: %w", err)
			}
			fmt.Fprintf(w, "downloading: %s\n", name)
			pdfPath, err := fetchPDF(ctx, client, p.PDFURL, filepath.Join(cfg.PDFDir, name))
			if err != nil {
				return res, fmt.Errorf("downloading PDF for %s: %w", p.ID, err)
			}
			res.PDFs++

			if cfg.ExtractText {
				if err := os.MkdirAll(cfg.FullTextDir, 0o755); err != nil {
					return res, fmt.Errorf("creating full-text directory: %w", err)
				}
				text, err := extractPlainText(pdfPath)
				if err != nil {
					return res, fmt.Errorf("extracting text for %s: %w", p.ID, err)
				}
				outPath := filepath.Join(cfg.FullTextDir, name+".txt")
				if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
					return res, fmt.Errorf("writing full text for %s: %w", p.ID, err)
				}
				res.FullTexts++
			}
		}

		if cfg.SaveSummary {
			if err := os.MkdirAll(cfg.TextDir, 0o755); err != nil {
				return res, fmt.Errorf("creating text directory: %w", err)
			}
			if err := writeSummary(filepath.Join(cfg.TextDir, name), p.Summary); err != nil {
				return res, fmt.Errorf("writing summary for %s: %w", p.ID, err)
			}
			res.Summaries++
		}
	}

	if metadata.Len() > 0 {
		if err := os.WriteFile(cfg.MetadataFile, metadata.Bytes(), 0o644); err != nil {
			return res, fmt.Errorf("writing metadata file: %w", err)
		}
	}
	return res, nil
}

// baseName returns the sanitized title, falling back to the last
// segment of the paper ID when the title sanitizes to nothing. An
// empty name would make the output paths collapse onto the output
// directory itself.
func baseName(p types.Paper) string {
	if name := SanitizeFilename(p.Title); name != "" {
		return name
	}
	if name := SanitizeFilename(path.Base(p.ID)); name != "" {
		return name
	}
	return "paper"
}

// writeSummary writes the raw summary text to outPath, appending the
// .txt extension if missing. An existing file is overwritten.
func writeSummary(outPath, summary string) error {
	if !strings.HasSuffix(outPath, ".txt") {
		outPath += ".txt"
	}
	return os.WriteFile(outPath, []byte(summary), 0o644)
}
