// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTablesYAML = `
lexicon:
  positive: [yum]
  negative: [yuck]
  exaggeration: [very]
flavor:
  hater: [h]
  enjoyer: [e]
  contradictory: [c]
  dramatic: [d]
  emoji_lord: [l]
  exaggerator: [x]
  basic: [b]
`

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()

	require.NoError(t, tables.Validate())
	assert.Len(t, tables.Lexicon.Positive, 20)
	assert.Len(t, tables.Lexicon.Negative, 20)
	assert.Len(t, tables.Lexicon.Exaggeration, 14)
	for _, c := range Categories {
		assert.NotEmpty(t, tables.Flavor[c], "category %s", c)
	}
}

func TestLoadTables(t *testing.T) {
	t.Run("empty path uses built-in tables", func(t *testing.T) {
		tables, err := LoadTables("")
		require.NoError(t, err)
		assert.Equal(t, DefaultTables(), tables)
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validTablesYAML), 0o644))

		tables, err := LoadTables(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"yum"}, tables.Lexicon.Positive)

		engine := NewEngine(tables, scriptedPicker{})
		got := engine.Judge("yum yum", 3)
		assert.Equal(t, 1, got.SentimentScore)
		assert.Equal(t, "b", got.JudgementText)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTables("/nonexistent/tables.yaml")
		assert.Error(t, err)
	})
}

func TestParseTables_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "lexicon: [unclosed"},
		{"overlapping lexicons", `
lexicon: {positive: [bad], negative: [bad], exaggeration: [very]}
flavor: {hater: [h], enjoyer: [e], contradictory: [c], dramatic: [d], emoji_lord: [l], exaggerator: [x], basic: [b]}`},
		{"duplicate word", `
lexicon: {positive: [ok, ok], negative: [bad], exaggeration: [very]}
flavor: {hater: [h], enjoyer: [e], contradictory: [c], dramatic: [d], emoji_lord: [l], exaggerator: [x], basic: [b]}`},
		{"uppercase word", `
lexicon: {positive: [Good], negative: [bad], exaggeration: [very]}
flavor: {hater: [h], enjoyer: [e], contradictory: [c], dramatic: [d], emoji_lord: [l], exaggerator: [x], basic: [b]}`},
		{"empty lexicon", `
lexicon: {positive: [], negative: [bad], exaggeration: [very]}
flavor: {hater: [h], enjoyer: [e], contradictory: [c], dramatic: [d], emoji_lord: [l], exaggerator: [x], basic: [b]}`},
		{"missing category", `
lexicon: {positive: [good], negative: [bad], exaggeration: [very]}
flavor: {hater: [h], enjoyer: [e], contradictory: [c], dramatic: [d], emoji_lord: [l], exaggerator: [x]}`},
		{"blank flavor text", `
lexicon: {positive: [good], negative: [bad], exaggeration: [very]}
flavor: {hater: [h], enjoyer: [e], contradictory: [c], dramatic: [d], emoji_lord: [l], exaggerator: [x], basic: [b, "  "]}`},
		{"empty flavor text", `
lexicon: {positive: [good], negative: [bad], exaggeration: [very]}
flavor: {hater: [""], enjoyer: [e], contradictory: [c], dramatic: [d], emoji_lord: [l], exaggerator: [x], basic: [b]}`},
		{"unknown category", `
lexicon: {positive: [good], negative: [bad], exaggeration: [very]}
flavor: {hater: [h], enjoyer: [e], contradictory: [c], dramatic: [d], emoji_lord: [l], exaggerator: [x], basic: [b], snob: [s]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTables([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidTables)
		})
	}
}

func TestTables_CopiesAreIndependent(t *testing.T) {
	a := NewEngine(nil, scriptedPicker{})
	b := NewEngine(nil, scriptedPicker{})

	tables := a.Tables()
	tables.Lexicon.Negative[0] = "zzzz"
	tables.Flavor[CategoryBasic] = nil
	DefaultTables().Lexicon.Negative[1] = "zzzz"

	got := b.Judge("This is absolutely terrible and awful", 5)
	assert.Equal(t, CategoryContradictory, got.Category)
	assert.NotEmpty(t, b.SelectFlavorText(CategoryBasic))
	assert.NotEmpty(t, a.SelectFlavorText(CategoryBasic))
	assert.Equal(t, DefaultTables(), a.Tables())

	t.Run("caller's tables are copied", func(t *testing.T) {
		own := DefaultTables()
		engine := NewEngine(own, scriptedPicker{})
		own.Lexicon.Negative = []string{"zzzz"}
		own.Flavor[CategoryContradictory] = nil

		got := engine.Judge("This is absolutely terrible and awful", 5)
		assert.Equal(t, CategoryContradictory, got.Category)
		assert.NotEmpty(t, got.JudgementText)
	})

	t.Run("missing basic texts do not panic", func(t *testing.T) {
		engine := NewEngine(&Tables{}, scriptedPicker{})
		assert.Equal(t, "", engine.SelectFlavorText("snob"))
	})
}
