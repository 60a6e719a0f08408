// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgement

import "strings"

// Category is the satirical label attached to a review.
type Category string

const (
	CategoryContradictory Category = "contradictory"
	CategoryEmojiLord     Category = "emoji_lord"
	CategoryDramatic      Category = "dramatic"
	CategoryExaggerator   Category = "exaggerator"
	CategoryHater         Category = "hater"
	CategoryEnjoyer       Category = "enjoyer"
	CategoryBasic         Category = "basic"
)

// Categories lists every category in classification priority order.
var Categories = []Category{
	CategoryContradictory,
	CategoryEmojiLord,
	CategoryDramatic,
	CategoryExaggerator,
	CategoryHater,
	CategoryEnjoyer,
	CategoryBasic,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryContradictory, CategoryEmojiLord, CategoryDramatic,
		CategoryExaggerator, CategoryHater, CategoryEnjoyer, CategoryBasic:
		return true
	}
	return false
}

// Tag renders the category as a display tag, e.g. emoji_lord -> "EMOJI LORD".
func (c Category) Tag() string {
	return strings.ToUpper(strings.ReplaceAll(string(c), "_", " "))
}

// Bonus tags appended after the category tag.
const (
	TagEmojiOverload = "EMOJI OVERLOAD"
	TagDramatic      = "DRAMATIC"
	TagEssayMode     = "ESSAY MODE"
)

// MaxTags bounds the tag list of a judgement.
const MaxTags = 4
