// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package judgement generates the satirical judgement attached to every review.

# Pipeline

A review's text and star rating go through two stages:

	signals := engine.Extract(text, stars)     // feature extraction
	category, tags := judgement.Classify(signals)

Judge runs both and adds a randomly chosen flavor text:

	record := engine.Judge("This is absolutely terrible and awful", 5)
	// record.Category == judgement.CategoryContradictory

# Signals

  - PositiveCount / NegativeCount / ExaggerationCount: distinct lexicon words
    found as substrings of the lowercased text ("amazing!" matches "amazing",
    and so does "badminton" for "bad")
  - SentimentScore: PositiveCount - NegativeCount
  - EmojiCount: code points in U+1F300–U+1F9FF or U+2600–U+26FF
  - WordCount: whitespace-separated tokens (0 for empty text)
  - CharCount: length of the original text in UTF-16 code units
  - ContradictionDetected: 4+ stars with score < -1, or 2- stars with score > 1

# Categories

Checked in this order, first match wins:

	contradictory  contradiction detected
	emoji_lord     5+ emoji
	dramatic       more than 100 words
	exaggerator    3+ exaggeration words
	hater          score <= -3 or 2 stars or fewer
	enjoyer        score >= 3 or 4 stars or more
	basic          everything else

Tags start with the category tag ("EMOJI LORD") followed by EMOJI OVERLOAD
(3+ emoji), DRAMATIC (2+ exaggeration words) and ESSAY MODE (more than 80
words), at most four in total.

# Tables

The lexicon and flavor texts are loaded once from YAML. The built-in tables
are embedded; LoadTables reads an override file:

	tables, err := judgement.LoadTables(cfg.LexiconPath)
	engine := judgement.NewEngine(tables, nil)

# Randomness

Flavor text is the only random part of a judgement. NewEngine takes a Picker
so tests can pass rand.New(rand.NewPCG(1, 2)) and get repeatable output.
*/
package judgement
