// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/viper"
)

func TestEffectiveConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := effectiveConfig()
	if cfg.Fetch.UserAgent != defaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", cfg.Fetch.UserAgent, defaultUserAgent)
	}
	if cfg.Fetch.MaxResults != defaultLimit {
		t.Errorf("MaxResults = %d, want %d", cfg.Fetch.MaxResults, defaultLimit)
	}
	if cfg.Archive.MetadataFile != defaultMetadataFile {
		t.Errorf("MetadataFile = %q, want %q", cfg.Archive.MetadataFile, defaultMetadataFile)
	}
	if !cfg.Archive.SaveMetadata {
		t.Error("SaveMetadata should default to true")
	}
}

func TestEffectiveConfigOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("fetch.user_agent", "custom-agent/9.9")
	viper.Set("fetch.limit", 12)
	viper.Set("archive.pdf_dir", "downloads")
	viper.Set("history.db_path", "state/harvest.db")

	cfg := effectiveConfig()
	if cfg.Fetch.UserAgent != "custom-agent/9.9" {
		t.Errorf("UserAgent = %q, want configured value", cfg.Fetch.UserAgent)
	}
	if cfg.Fetch.MaxResults != 12 {
		t.Errorf("MaxResults = %d, want 12", cfg.Fetch.MaxResults)
	}
	if cfg.Archive.PDFDir != "downloads" {
		t.Errorf("PDFDir = %q, want downloads", cfg.Archive.PDFDir)
	}
	if cfg.History.DBPath != "state/harvest.db" {
		t.Errorf("DBPath = %q, want configured value", cfg.History.DBPath)
	}
}
