// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgement

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Signals are the numeric features extracted from one review.
type Signals struct {
	StarRating            int
	PositiveCount         int
	NegativeCount         int
	SentimentScore        int
	EmojiCount            int
	ExaggerationCount     int
	WordCount             int
	CharCount             int
	ContradictionDetected bool
}

// Extract computes the signal bundle for a review. It never fails: empty
// text yields zero counts, and rating validation is the caller's job.
func (l *Lexicon) Extract(text string, starRating int) Signals {
	// Casers carry state, so each call gets its own.
	lower := cases.Lower(language.Und).String(text)

	s := Signals{
		StarRating:        starRating,
		PositiveCount:     countContained(lower, l.Positive),
		NegativeCount:     countContained(lower, l.Negative),
		ExaggerationCount: countContained(lower, l.Exaggeration),
		EmojiCount:        countEmoji(text),
		WordCount:         len(strings.Fields(lower)),
		CharCount:         utf16Len(text),
	}
	s.SentimentScore = s.PositiveCount - s.NegativeCount
	s.ContradictionDetected = (starRating >= 4 && s.SentimentScore < -1) ||
		(starRating <= 2 && s.SentimentScore > 1)

	return s
}

// countContained counts lexicon words that occur anywhere in text.
// "badminton" matches "bad"; this is intentional.
func countContained(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func countEmoji(text string) int {
	n := 0
	for _, r := range text {
		if isEmoji(r) {
			n++
		}
	}
	return n
}

func isEmoji(r rune) bool {
	return (r >= 0x1F300 && r <= 0x1F9FF) || (r >= 0x2600 && r <= 0x26FF)
}

// utf16Len measures text the way browsers report string length.
func utf16Len(text string) int {
	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}
