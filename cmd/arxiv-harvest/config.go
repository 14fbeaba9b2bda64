package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/arxiv-harvest/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the configuration the fetch command would run with after
merging built-in defaults with the config file and environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(effectiveConfig())
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// effectiveConfig layers configured viper keys over the built-in
// defaults. Command-line flags are not part of this view.
func effectiveConfig() types.PipelineConfig {
	cfg := types.PipelineConfig{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   defaultTimeout,
				UserAgent: defaultUserAgent,
			},
			MaxResults: defaultLimit,
		},
		Archive: types.ArchiveConfig{
			MetadataFile: defaultMetadataFile,
			PDFDir:       defaultPDFDir,
			TextDir:      defaultTextDir,
			FullTextDir:  defaultFullTextDir,
			SaveMetadata: true,
		},
		History: types.HistoryConfig{
			MaxResults: 20,
		},
	}

	if v := viper.GetDuration("fetch.timeout"); v > 0 {
		cfg.Fetch.Timeout = v
	}
	if v := viper.GetString("fetch.user_agent"); v != "" {
		cfg.Fetch.UserAgent = v
	}
	if v := viper.GetFloat64("fetch.requests_per_second"); v > 0 {
		cfg.Fetch.RequestsPerSecond = v
	}
	if v := viper.GetInt("fetch.limit"); v > 0 {
		cfg.Fetch.MaxResults = v
	}
	if v := viper.GetString("archive.metadata_file"); v != "" {
		cfg.Archive.MetadataFile = v
	}
	if v := viper.GetString("archive.pdf_dir"); v != "" {
		cfg.Archive.PDFDir = v
	}
	if v := viper.GetString("archive.text_dir"); v != "" {
		cfg.Archive.TextDir = v
	}
	if v := viper.GetString("archive.fulltext_dir"); v != "" {
		cfg.Archive.FullTextDir = v
	}
	if v := viper.GetString("history.db_path"); v != "" {
		cfg.History.DBPath = v
	}
	if v := viper.GetInt("history.max_results"); v > 0 {
		cfg.History.MaxResults = v
	}
	return cfg
}
