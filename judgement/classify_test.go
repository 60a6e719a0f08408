// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Cascade(t *testing.T) {
	tests := []struct {
		name     string
		signals  Signals
		wantCat  Category
		wantTags []string
	}{
		{
			name:     "contradiction beats everything",
			signals:  Signals{StarRating: 5, SentimentScore: -4, EmojiCount: 9, WordCount: 300, ExaggerationCount: 5, ContradictionDetected: true},
			wantCat:  CategoryContradictory,
			wantTags: []string{"CONTRADICTORY", TagEmojiOverload, TagDramatic, TagEssayMode},
		},
		{
			name:     "emoji beats word count",
			signals:  Signals{StarRating: 3, EmojiCount: 5, WordCount: 150},
			wantCat:  CategoryEmojiLord,
			wantTags: []string{"EMOJI LORD", TagEmojiOverload, TagEssayMode},
		},
		{
			name:     "word count beats exaggeration",
			signals:  Signals{StarRating: 3, WordCount: 101, ExaggerationCount: 4},
			wantCat:  CategoryDramatic,
			wantTags: []string{"DRAMATIC", TagDramatic, TagEssayMode},
		},
		{
			name:     "exactly 100 words is not dramatic",
			signals:  Signals{StarRating: 3, WordCount: 100},
			wantCat:  CategoryBasic,
			wantTags: []string{"BASIC", TagEssayMode},
		},
		{
			name:     "exaggeration beats sentiment",
			signals:  Signals{StarRating: 1, SentimentScore: -5, ExaggerationCount: 3},
			wantCat:  CategoryExaggerator,
			wantTags: []string{"EXAGGERATOR", TagDramatic},
		},
		{
			name:     "hater by score",
			signals:  Signals{StarRating: 3, SentimentScore: -3},
			wantCat:  CategoryHater,
			wantTags: []string{"HATER"},
		},
		{
			name:     "hater by stars",
			signals:  Signals{StarRating: 2},
			wantCat:  CategoryHater,
			wantTags: []string{"HATER"},
		},
		{
			name:     "hater beats enjoyer",
			signals:  Signals{StarRating: 5, SentimentScore: -3},
			wantCat:  CategoryHater,
			wantTags: []string{"HATER"},
		},
		{
			name:     "enjoyer by score",
			signals:  Signals{StarRating: 3, SentimentScore: 3},
			wantCat:  CategoryEnjoyer,
			wantTags: []string{"ENJOYER"},
		},
		{
			name:     "enjoyer by stars",
			signals:  Signals{StarRating: 4},
			wantCat:  CategoryEnjoyer,
			wantTags: []string{"ENJOYER"},
		},
		{
			name:     "basic",
			signals:  Signals{StarRating: 3, SentimentScore: 2, EmojiCount: 3},
			wantCat:  CategoryBasic,
			wantTags: []string{"BASIC", TagEmojiOverload},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, tags := Classify(tt.signals)
			assert.Equal(t, tt.wantCat, cat)
			assert.Equal(t, tt.wantTags, tags)
		})
	}
}

func TestClassify_FromText(t *testing.T) {
	lex := DefaultTables().Lexicon

	tests := []struct {
		name  string
		text  string
		stars int
		want  Category
	}{
		{"negative words, five stars", "This is absolutely terrible and awful", 5, CategoryContradictory},
		{"positive words, one star", "amazing and wonderful", 1, CategoryContradictory},
		{"long emoji review", strings.Repeat("word ", 101) + "🎉🎉🎉🎉🎉", 3, CategoryEmojiLord},
		{"long plain review", strings.Repeat("word ", 101), 3, CategoryDramatic},
		{"exaggerations", "literally totally insanely okay", 3, CategoryExaggerator},
		{"three negative words", "terrible awful horrible", 3, CategoryHater},
		{"two stars", "it was okay", 2, CategoryHater},
		{"three positive words", "great good nice", 3, CategoryEnjoyer},
		{"four stars", "it was okay", 4, CategoryEnjoyer},
		{"middle of the road", "it was okay", 3, CategoryBasic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, _ := Classify(lex.Extract(tt.text, tt.stars))
			assert.Equal(t, tt.want, cat)
		})
	}
}

func TestClassify_TagInvariants(t *testing.T) {
	for emoji := 0; emoji <= 6; emoji += 3 {
		for words := 0; words <= 120; words += 40 {
			for exag := 0; exag <= 4; exag += 2 {
				for stars := 1; stars <= 5; stars++ {
					s := Signals{StarRating: stars, EmojiCount: emoji, WordCount: words, ExaggerationCount: exag}
					cat, tags := Classify(s)

					assert.True(t, cat.Valid())
					assert.LessOrEqual(t, len(tags), MaxTags)
					if assert.NotEmpty(t, tags) {
						assert.Equal(t, cat.Tag(), tags[0])
					}
				}
			}
		}
	}
}

func TestCategory_Tag(t *testing.T) {
	assert.Equal(t, "EMOJI LORD", CategoryEmojiLord.Tag())
	assert.Equal(t, "BASIC", CategoryBasic.Tag())
	assert.False(t, Category("snob").Valid())
	assert.Len(t, Categories, 7)
}
