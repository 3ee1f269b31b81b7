package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/grobidmeta/grobid"
)

var (
	checkOpts    extractFlags
	checkVerbose bool
)

var checkCmd = &cobra.Command{
	Use:   "check <files...>",
	Short: "Check that documents pass the GROBID version gate",
	Long: `Check documents without producing output.

Each document is opened, parsed and checked for an accepted GROBID version.
The command exits non-zero if any document is rejected.

Examples:
  grobidmeta check papers/*.tei.xml
  grobidmeta check --versions 0.8.0,0.8.1 paper.tei.xml --verbose`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Show what was extracted from accepted documents")
	checkOpts.register(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, opts, err := checkOpts.resolve(cmd)
	if err != nil {
		return err
	}

	results, err := grobid.ExtractBatch(cmd.Context(), args, opts, cfg.Workers)
	if err != nil {
		return fmt.Errorf("checking documents: %w", err)
	}

	out := cmd.OutOrStdout()
	rejected := 0
	for _, r := range results {
		if r.Err != nil {
			rejected++
			fmt.Fprintf(out, "✗ %s: %s\n", r.Path, describe(r.Err))
			continue
		}

		fmt.Fprintf(out, "✓ %s\n", r.Path)
		if checkVerbose {
			rec := r.Record
			fmt.Fprintf(out, "    Authors: %d\n", len(rec.Authors))
			fmt.Fprintf(out, "    Affiliations: %d\n", len(rec.Affiliations))
			fmt.Fprintf(out, "    Keywords: %d\n", len(rec.Keywords))
			fmt.Fprintf(out, "    References with DOI: %d\n", len(rec.References))
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%d of %d documents rejected", rejected, len(results))
	}
	return nil
}

func describe(err error) string {
	var le *grobid.LoadError
	if !errors.As(err, &le) {
		return err.Error()
	}
	if le.Kind == grobid.KindUnsupportedVersion {
		return fmt.Sprintf("%s (%s)", le.Kind, le.Version)
	}
	if le.Err != nil {
		return fmt.Sprintf("%s (%v)", le.Kind, le.Err)
	}
	return le.Kind.String()
}
