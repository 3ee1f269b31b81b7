package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/grobidmeta/config"
	"github.com/lehigh-university-libraries/grobidmeta/grobid"
	"github.com/lehigh-university-libraries/grobidmeta/tree"

	// Register tree parsers
	_ "github.com/lehigh-university-libraries/grobidmeta/tree/soup"
	_ "github.com/lehigh-university-libraries/grobidmeta/tree/xmltree"
)

// extractFlags are the settings shared by commands that read documents.
// Flags explicitly set on the command line win over the config file.
type extractFlags struct {
	configFile string
	versions   []string
	parser     string
	workers    int
}

func (f *extractFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/grobidmeta/config.yaml)")
	cmd.Flags().StringSliceVar(&f.versions, "versions", nil, "Accepted GROBID versions (comma separated)")
	cmd.Flags().StringVar(&f.parser, "parser", "", "Tree parser: xml (strict) or html (lenient)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Documents extracted concurrently")
}

// resolve loads the config, applies flag overrides and builds the
// extraction options.
func (f *extractFlags) resolve(cmd *cobra.Command) (*config.Config, grobid.Options, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, grobid.Options{}, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("versions") {
		cfg.Versions = f.versions
	}
	if cmd.Flags().Changed("parser") {
		cfg.Parser = f.parser
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, grobid.Options{}, err
	}

	parser, err := tree.GetParser(cfg.Parser)
	if err != nil {
		return nil, grobid.Options{}, err
	}

	opts := grobid.Options{
		Versions: cfg.Versions,
		Parser:   parser,
		Logger:   slog.Default(),
	}
	return cfg, opts, nil
}
