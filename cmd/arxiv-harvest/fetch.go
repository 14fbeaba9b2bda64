package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meshintel/arxiv-harvest/internal/archive"
	"github.com/meshintel/arxiv-harvest/internal/arxiv"
	"github.com/meshintel/arxiv-harvest/internal/history"
	"github.com/meshintel/arxiv-harvest/internal/httputil"
	"github.com/meshintel/arxiv-harvest/pkg/types"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultUserAgent    = "arxiv-harvest/0.1"
	defaultLimit        = 5
	defaultMetadataFile = "metadata.jsonl"
	defaultPDFDir       = "pdfs"
	defaultTextDir      = "texts"
	defaultFullTextDir  = "fulltext"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch recent papers and save them locally",
	Long: `Fetch builds an arXiv search query from --category and --query, retrieves
the most recently submitted matching papers, and saves metadata, PDFs, and
summaries according to the enabled toggles. At least one of --category or
--query is required.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("category", "c", "", "arXiv category (e.g. cs.AI, cs.CL)")
	fetchCmd.Flags().StringP("query", "q", "", "free-text search query (e.g. \"graphrag\")")
	fetchCmd.Flags().IntP("limit", "l", defaultLimit, "maximum number of papers to fetch")
	fetchCmd.Flags().BoolP("pdf", "p", false, "download each paper's PDF")
	fetchCmd.Flags().BoolP("summary", "s", false, "save each paper's summary as a text file")
	fetchCmd.Flags().Bool("no-metadata", false, "disable writing the JSON-lines metadata file")
	fetchCmd.Flags().Bool("text", false, "extract plain text from downloaded PDFs (requires --pdf)")
	fetchCmd.Flags().String("metadata-file", defaultMetadataFile, "path of the JSON-lines metadata file")
	fetchCmd.Flags().String("pdf-dir", defaultPDFDir, "directory for downloaded PDFs")
	fetchCmd.Flags().String("text-dir", defaultTextDir, "directory for summary text files")
	fetchCmd.Flags().String("fulltext-dir", defaultFullTextDir, "directory for extracted full text")
	fetchCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	fetchCmd.Flags().String("user-agent", defaultUserAgent, "User-Agent header for outgoing HTTP requests")
	fetchCmd.Flags().Float64("rate", 0, "maximum outgoing HTTP requests per second (0 = unlimited)")
	fetchCmd.Flags().String("history-db", "", "SQLite database recording fetch runs (empty = disabled)")
	fetchCmd.Flags().Bool("quiet", false, "suppress the results table")

	rootCmd.AddCommand(fetchCmd)
}

// validateFetchFlags checks the flag combinations that must be
// rejected before any I/O happens.
func validateFetchFlags(category, query string, savePDF, extractText bool) error {
	if category == "" && query == "" {
		return fmt.Errorf("either --category or --query must be provided")
	}
	if extractText && !savePDF {
		return fmt.Errorf("--text requires --pdf")
	}
	return nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	category := stringSetting(cmd, "category", "fetch.category")
	query := stringSetting(cmd, "query", "fetch.query")
	savePDF, _ := cmd.Flags().GetBool("pdf")
	saveSummary, _ := cmd.Flags().GetBool("summary")
	noMetadata, _ := cmd.Flags().GetBool("no-metadata")
	extractText, _ := cmd.Flags().GetBool("text")

	if err := validateFetchFlags(category, query, savePDF, extractText); err != nil {
		return err
	}

	searchQuery, err := arxiv.BuildQuery(category, query)
	if err != nil {
		return err
	}

	httpCfg := types.HTTPConfig{
		Timeout:           durationSetting(cmd, "timeout", "fetch.timeout"),
		UserAgent:         stringSetting(cmd, "user-agent", "fetch.user_agent"),
		RequestsPerSecond: float64Setting(cmd, "rate", "fetch.requests_per_second"),
	}
	client := httputil.NewClient(httpCfg)

	fetchCfg := types.FetchConfig{
		HTTPConfig: httpCfg,
		MaxResults: intSetting(cmd, "limit", "fetch.limit"),
	}

	started := time.Now()
	papers, err := (&arxiv.Client{HTTP: client}).Fetch(cmd.Context(), searchQuery, fetchCfg)
	if err != nil {
		return err
	}

	archiveCfg := types.ArchiveConfig{
		MetadataFile: stringSetting(cmd, "metadata-file", "archive.metadata_file"),
		PDFDir:       stringSetting(cmd, "pdf-dir", "archive.pdf_dir"),
		TextDir:      stringSetting(cmd, "text-dir", "archive.text_dir"),
		FullTextDir:  stringSetting(cmd, "fulltext-dir", "archive.fulltext_dir"),
		SaveMetadata: !noMetadata,
		SavePDF:      savePDF,
		SaveSummary:  saveSummary,
		ExtractText:  extractText,
	}

	result, err := archive.Archive(cmd.Context(), client, papers, archiveCfg, os.Stdout)
	if err != nil {
		return err
	}

	if dbPath := stringSetting(cmd, "history-db", "history.db_path"); dbPath != "" {
		store, err := history.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		run := history.Run{
			StartedAt:     started,
			Query:         searchQuery,
			Requested:     fetchCfg.MaxResults,
			Fetched:       len(papers),
			MetadataLines: result.MetadataLines,
			PDFs:          result.PDFs,
			Summaries:     result.Summaries,
			FullTexts:     result.FullTexts,
		}
		if _, err := store.RecordRun(run, papers); err != nil {
			return err
		}
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		arxiv.FormatTable(papers, os.Stdout)
	}
	fmt.Printf("Fetched %d papers: %d metadata lines, %d PDFs, %d summaries, %d full texts\n",
		len(papers), result.MetadataLines, result.PDFs, result.Summaries, result.FullTexts)
	return nil
}
