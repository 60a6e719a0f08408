// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgement

import (
	"math/rand/v2"
	"sync"
)

// Stats are the raw counts kept on a judgement for auditability.
type Stats struct {
	WordCount         int `json:"word_count"`
	CharCount         int `json:"char_count"`
	EmojiCount        int `json:"emoji_count"`
	ExaggerationCount int `json:"exaggeration_count"`
}

// Record is the judgement stored with a review. It is never modified once
// created.
type Record struct {
	Category              Category `json:"category"`
	JudgementText         string   `json:"judgement_text"`
	JudgementTags         []string `json:"judgement_tags"`
	SentimentScore        int      `json:"sentiment_score"`
	ContradictionDetected bool     `json:"contradiction_detected"`
	Stats                 Stats    `json:"stats"`
}

// Picker is the randomness source used to choose flavor text.
// *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// Engine turns review text and a star rating into a Record.
// It is safe for concurrent use.
type Engine struct {
	tables *Tables

	mu     sync.Mutex // guards picker
	picker Picker
}

// NewEngine creates an engine over a copy of tables; nil means the built-in
// tables. A nil picker uses the process-wide generator; pass a seeded
// *rand.Rand for reproducible output.
func NewEngine(tables *Tables, picker Picker) *Engine {
	if tables == nil {
		tables = defaultTables
	}
	tables = tables.Clone()
	if picker == nil {
		picker = globalPicker{}
	}
	return &Engine{tables: tables, picker: picker}
}

// Tables returns a copy of the engine's tables.
func (e *Engine) Tables() *Tables {
	return e.tables.Clone()
}

// Extract computes the signals for a review.
func (e *Engine) Extract(text string, starRating int) Signals {
	return e.tables.Lexicon.Extract(text, starRating)
}

// SelectFlavorText draws one flavor text for the category. Unknown
// categories fall back to basic; tables without basic texts yield "".
func (e *Engine) SelectFlavorText(c Category) string {
	texts := e.tables.Flavor[c]
	if len(texts) == 0 {
		texts = e.tables.Flavor[CategoryBasic]
	}
	if len(texts) == 0 {
		return ""
	}

	e.mu.Lock()
	i := e.picker.IntN(len(texts))
	e.mu.Unlock()

	return texts[i]
}

// Judge runs extraction and classification and draws the flavor text.
func (e *Engine) Judge(text string, starRating int) Record {
	s := e.Extract(text, starRating)
	category, tags := Classify(s)

	return Record{
		Category:              category,
		JudgementText:         e.SelectFlavorText(category),
		JudgementTags:         tags,
		SentimentScore:        s.SentimentScore,
		ContradictionDetected: s.ContradictionDetected,
		Stats: Stats{
			WordCount:         s.WordCount,
			CharCount:         s.CharCount,
			EmojiCount:        s.EmojiCount,
			ExaggerationCount: s.ExaggerationCount,
		},
	}
}
