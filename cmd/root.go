// Package cmd provides CLI commands for grobidmeta.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "grobidmeta",
	Short: "Extract bibliographic metadata from GROBID TEI-XML",
	Long: `Grobidmeta extracts authors, affiliations, keywords, abstracts,
acknowledgments and reference DOIs from TEI-XML documents produced by GROBID.

Documents from GROBID versions outside the accepted list are rejected and
yield an empty record.

Examples:
  grobidmeta extract paper.tei.xml
  grobidmeta extract *.tei.xml -o metadata.jsonl
  cat paper.tei.xml | grobidmeta extract --format yaml
  grobidmeta check --versions 0.8.0 *.tei.xml`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(configCmd)
}
