package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/grobidmeta/format"
	"github.com/lehigh-university-libraries/grobidmeta/tree"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats and tree parsers",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Output formats:")
		for _, name := range format.List() {
			f, _ := format.Get(name)
			exts := ""
			if len(f.Extensions()) > 0 {
				exts = " [." + strings.Join(f.Extensions(), ", .") + "]"
			}
			fmt.Fprintf(out, "  %-10s %s%s\n", name, f.Description(), exts)
		}

		fmt.Fprintln(out, "\nTree parsers:")
		for _, name := range tree.List() {
			p, err := tree.GetParser(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-10s %s\n", name, p.Description())
		}

		return nil
	},
}
