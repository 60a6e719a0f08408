// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgement

// Classification thresholds
const (
	emojiLordMin       = 5
	dramaticWordsOver  = 100
	exaggeratorMin     = 3
	haterScoreMax      = -3
	haterStarsMax      = 2
	enjoyerScoreMin    = 3
	enjoyerStarsMin    = 4
	emojiOverloadMin   = 3
	dramaticTagMin     = 2
	essayModeWordsOver = 80
)

// Classify picks the category and tags for a signal bundle. It is total:
// every bundle gets a category.
func Classify(s Signals) (Category, []string) {
	c := categorize(s)
	return c, tagsFor(c, s)
}

// categorize walks the checks top to bottom and returns the first match.
// The order is significant; categories overlap.
func categorize(s Signals) Category {
	if s.ContradictionDetected {
		return CategoryContradictory
	}
	if s.EmojiCount >= emojiLordMin {
		return CategoryEmojiLord
	}
	if s.WordCount > dramaticWordsOver {
		return CategoryDramatic
	}
	if s.ExaggerationCount >= exaggeratorMin {
		return CategoryExaggerator
	}
	if s.SentimentScore <= haterScoreMax || s.StarRating <= haterStarsMax {
		return CategoryHater
	}
	if s.SentimentScore >= enjoyerScoreMin || s.StarRating >= enjoyerStarsMin {
		return CategoryEnjoyer
	}
	return CategoryBasic
}

func tagsFor(c Category, s Signals) []string {
	tags := []string{c.Tag()}
	if s.EmojiCount >= emojiOverloadMin {
		tags = append(tags, TagEmojiOverload)
	}
	if s.ExaggerationCount >= dramaticTagMin {
		tags = append(tags, TagDramatic)
	}
	if s.WordCount > essayModeWordsOver {
		tags = append(tags, TagEssayMode)
	}
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	return tags
}
