// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-harvest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// RequestsPerSecond caps outgoing requests per second across the
	// API call and PDF downloads. Zero disables pacing.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of papers to fetch (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ArchiveConfig holds settings for the archive stage: the output
// locations and the toggles selecting which artifacts a run writes.
// Paths are explicit configuration so the stage carries no hidden
// process-wide defaults.
type ArchiveConfig struct {
	// MetadataFile is the path of the JSON-lines metadata file.
	MetadataFile string `json:"metadata_file" yaml:"metadata_file"`

	// PDFDir is the directory for downloaded PDFs.
	PDFDir string `json:"pdf_dir" yaml:"pdf_dir"`

	// TextDir is the directory for per-paper summary text files.
	TextDir string `json:"text_dir" yaml:"text_dir"`

	// FullTextDir is the directory for text extracted from PDFs.
	FullTextDir string `json:"fulltext_dir" yaml:"fulltext_dir"`

	// SaveMetadata enables accumulating metadata lines and writing the
	// metadata file at the end of the run.
	SaveMetadata bool `json:"save_metadata" yaml:"save_metadata"`

	// SavePDF enables downloading each paper's PDF.
	SavePDF bool `json:"save_pdf" yaml:"save_pdf"`

	// SaveSummary enables writing each paper's summary text file.
	SaveSummary bool `json:"save_summary" yaml:"save_summary"`

	// ExtractText enables extracting plain text from each downloaded
	// PDF. Requires SavePDF.
	ExtractText bool `json:"extract_text" yaml:"extract_text"`
}

// HistoryConfig holds settings for the run history store.
type HistoryConfig struct {
	// DBPath is the SQLite database recording fetch runs. Empty
	// disables history entirely; no file is created.
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
	History HistoryConfig `json:"history" yaml:"history"`
}
