// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/ratemyanything/judgement"
)

func newLexiconCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Validate a lexicon file and summarize it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = os.Getenv("LEXICON_PATH")
			}

			tables, err := judgement.LoadTables(file)
			if err != nil {
				return err
			}

			source := file
			if source == "" {
				source = "built-in"
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "source\t%s\n", source)
			fmt.Fprintf(tw, "positive\t%s words\n", humanize.Comma(int64(len(tables.Lexicon.Positive))))
			fmt.Fprintf(tw, "negative\t%s words\n", humanize.Comma(int64(len(tables.Lexicon.Negative))))
			fmt.Fprintf(tw, "exaggeration\t%s words\n", humanize.Comma(int64(len(tables.Lexicon.Exaggeration))))
			for _, c := range judgement.Categories {
				fmt.Fprintf(tw, "%s\t%s flavor texts\n", c, humanize.Comma(int64(len(tables.Flavor[c]))))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Lexicon YAML file (default: $LEXICON_PATH or built-in)")

	return cmd
}
