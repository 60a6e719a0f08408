// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/ratemyanything/judgement"
	"github.com/danielhkuo/ratemyanything/models"
)

type judgeFlags struct {
	stars   int
	seed    uint64
	asJSON  bool
	lexicon string
}

func newJudgeCmd() *cobra.Command {
	f := &judgeFlags{}

	cmd := &cobra.Command{
		Use:   "judge --stars N <review text>...",
		Short: "Judge a review without storing it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.stars < models.MinStarRating || f.stars > models.MaxStarRating {
				return fmt.Errorf("--stars must be between %d and %d", models.MinStarRating, models.MaxStarRating)
			}

			tables, err := judgement.LoadTables(f.lexicon)
			if err != nil {
				return err
			}

			var picker judgement.Picker
			if cmd.Flags().Changed("seed") {
				picker = rand.New(rand.NewPCG(f.seed, f.seed))
			}

			record := judgement.NewEngine(tables, picker).Judge(strings.Join(args, " "), f.stars)
			if f.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(record)
			}
			return writeRecord(cmd.OutOrStdout(), record)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.stars, "stars", "s", 0, "Star rating 1-5 (required)")
	flags.Uint64Var(&f.seed, "seed", 0, "Seed for reproducible flavor text")
	flags.BoolVar(&f.asJSON, "json", false, "Print the judgement as JSON")
	flags.StringVar(&f.lexicon, "lexicon", "", "Lexicon YAML file (default: built-in)")
	_ = cmd.MarkFlagRequired("stars")

	return cmd
}

func writeRecord(w io.Writer, r judgement.Record) error {
	sentiment := fmt.Sprintf("%+d", r.SentimentScore)
	if r.ContradictionDetected {
		sentiment += " (contradiction detected)"
	}

	_, err := fmt.Fprintf(w, "Category:  %s\nJudgement: %s\nTags:      %s\nSentiment: %s\nStats:     %s words, %s chars, %s emoji, %s exaggerations\n",
		r.Category.Tag(),
		r.JudgementText,
		strings.Join(r.JudgementTags, ", "),
		sentiment,
		humanize.Comma(int64(r.Stats.WordCount)),
		humanize.Comma(int64(r.Stats.CharCount)),
		humanize.Comma(int64(r.Stats.EmojiCount)),
		humanize.Comma(int64(r.Stats.ExaggerationCount)),
	)
	return err
}
