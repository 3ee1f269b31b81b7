package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/grobidmeta/format"
	"github.com/lehigh-university-libraries/grobidmeta/grobid"

	// Register all format plugins
	_ "github.com/lehigh-university-libraries/grobidmeta/format/csv"
	_ "github.com/lehigh-university-libraries/grobidmeta/format/json"
	_ "github.com/lehigh-university-libraries/grobidmeta/format/markdown"
	_ "github.com/lehigh-university-libraries/grobidmeta/format/proto"
	_ "github.com/lehigh-university-libraries/grobidmeta/format/yaml"
)

var (
	outputFile    string
	outputFormat  string
	columns       []string
	multiValueSep string
	pretty        bool
	extractOpts   extractFlags
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract metadata from GROBID TEI-XML documents",
	Long: `Extract bibliographic metadata from one or more GROBID TEI-XML documents.

With no files the document is read from stdin. Output defaults to stdout;
when --output is set and --format is not, the format is picked from the
output file extension.

A document that cannot be read, is not from GROBID or comes from a
version that is not accepted yields an empty record.

Examples:
  # Single document to JSON on stdout
  grobidmeta extract paper.tei.xml

  # Many documents, one JSON object per line
  grobidmeta extract papers/*.tei.xml -o metadata.jsonl

  # Lenient parsing of damaged documents
  grobidmeta extract --parser html broken.tei.xml

  # One CSV row per author
  grobidmeta extract *.tei.xml -f csv -c source,last_name,orcid`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	extractCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format (see 'grobidmeta formats')")
	extractCmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "CSV columns to output")
	extractCmd.Flags().StringVar(&multiValueSep, "separator", "|", "Multi-value field separator")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print output")
	extractOpts.register(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) (err error) {
	cfg, opts, err := extractOpts.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Pretty = pretty
	}

	serializer, err := pickSerializer(cmd, cfg.Format)
	if err != nil {
		return err
	}

	var docs []format.Document
	if len(args) == 0 {
		rec := grobid.ExtractReader(cmd.InOrStdin(), "stdin", opts)
		docs = []format.Document{{Source: "stdin", Metadata: rec}}
	} else {
		results, err := grobid.ExtractBatch(cmd.Context(), args, opts, cfg.Workers)
		if err != nil {
			return fmt.Errorf("extracting documents: %w", err)
		}
		rejected := 0
		docs = make([]format.Document, len(results))
		for i, r := range results {
			docs[i] = format.Document{Source: r.Path, Metadata: r.Record}
			if r.Err != nil {
				rejected++
			}
		}
		slog.Info("Extracted documents", "count", len(results), "rejected", rejected)
	}

	// Determine output destination
	var output io.Writer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = cmd.OutOrStdout()
	}

	serializeOpts := format.NewSerializeOptions()
	serializeOpts.Pretty = cfg.Pretty
	serializeOpts.Columns = columns
	serializeOpts.MultiValueSeparator = multiValueSep

	if err := serializer.Serialize(output, docs, serializeOpts); err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}

	return nil
}

// pickSerializer resolves the output format: --format, then the output
// file extension, then the configured default.
func pickSerializer(cmd *cobra.Command, fallback string) (format.Serializer, error) {
	name := fallback
	switch {
	case cmd.Flags().Changed("format"):
		name = outputFormat
	case outputFile != "":
		if f, err := format.DetectFormat(outputFile); err == nil {
			name = f.Name()
		}
	}

	serializer, err := format.GetSerializer(name)
	if err != nil {
		return nil, fmt.Errorf("unknown output format %q: %w", name, err)
	}
	return serializer, nil
}
