// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-harvest CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the arxiv-harvest CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-harvest",
	Short: "Download recent papers from arXiv by category or search query",
	Long: `arxiv-harvest queries the arXiv export API for the most recently submitted
papers matching a category or free-text query and saves them locally:
metadata as a JSON-lines file, PDFs, and per-paper summary text files.

Run "arxiv-harvest fetch" for the download pipeline, "history" to inspect
recorded runs, and "config" to print the effective configuration.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-harvest.yaml or ~/.config/arxiv-harvest/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-harvest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-harvest"))
		}
	}

	viper.SetEnvPrefix("ARXIV_HARVEST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
