// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgement

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var builtinTables []byte

// ErrInvalidTables is returned when a lexicon/flavor file fails validation.
var ErrInvalidTables = errors.New("invalid judgement tables")

// Lexicon holds the three word lists used for substring matching.
type Lexicon struct {
	Positive     []string `yaml:"positive"`
	Negative     []string `yaml:"negative"`
	Exaggeration []string `yaml:"exaggeration"`
}

// FlavorTable maps each category to its candidate flavor texts.
type FlavorTable map[Category][]string

// Tables is the configuration of an Engine. An Engine keeps its own copy,
// so changing a Tables value after NewEngine has no effect on it.
type Tables struct {
	Lexicon Lexicon     `yaml:"lexicon"`
	Flavor  FlavorTable `yaml:"flavor"`
}

var defaultTables = mustParseTables(builtinTables)

// DefaultTables returns a copy of the built-in tables.
func DefaultTables() *Tables {
	return defaultTables.Clone()
}

// Clone returns a deep copy of t.
func (t *Tables) Clone() *Tables {
	c := &Tables{
		Lexicon: Lexicon{
			Positive:     slices.Clone(t.Lexicon.Positive),
			Negative:     slices.Clone(t.Lexicon.Negative),
			Exaggeration: slices.Clone(t.Lexicon.Exaggeration),
		},
		Flavor: make(FlavorTable, len(t.Flavor)),
	}
	for cat, texts := range t.Flavor {
		c.Flavor[cat] = slices.Clone(texts)
	}
	return c
}

// LoadTables reads tables from a YAML file. An empty path returns the
// built-in tables.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables %q: %w", path, err)
	}
	t, err := ParseTables(data)
	if err != nil {
		return nil, fmt.Errorf("tables %q: %w", path, err)
	}
	return t, nil
}

// ParseTables decodes and validates YAML table data.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTables, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that the lexicons are lowercase, duplicate-free and
// mutually disjoint, and that every category has at least one non-blank
// flavor text.
func (t *Tables) Validate() error {
	seen := make(map[string]string)
	lists := []struct {
		name  string
		words []string
	}{
		{"positive", t.Lexicon.Positive},
		{"negative", t.Lexicon.Negative},
		{"exaggeration", t.Lexicon.Exaggeration},
	}
	for _, list := range lists {
		if len(list.words) == 0 {
			return fmt.Errorf("%w: %s lexicon is empty", ErrInvalidTables, list.name)
		}
		for _, w := range list.words {
			if w == "" || strings.TrimSpace(w) != w {
				return fmt.Errorf("%w: %s lexicon has a blank or padded word %q", ErrInvalidTables, list.name, w)
			}
			if strings.ToLower(w) != w {
				return fmt.Errorf("%w: %s word %q is not lowercase", ErrInvalidTables, list.name, w)
			}
			if owner, dup := seen[w]; dup {
				if owner == list.name {
					return fmt.Errorf("%w: duplicate %s word %q", ErrInvalidTables, owner, w)
				}
				return fmt.Errorf("%w: word %q appears in both %s and %s", ErrInvalidTables, w, owner, list.name)
			}
			seen[w] = list.name
		}
	}

	for c := range t.Flavor {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidTables, c)
		}
	}
	for _, c := range Categories {
		if len(t.Flavor[c]) == 0 {
			return fmt.Errorf("%w: no flavor text for %q", ErrInvalidTables, c)
		}
		for _, text := range t.Flavor[c] {
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("%w: blank flavor text for %q", ErrInvalidTables, c)
			}
		}
	}
	return nil
}

func mustParseTables(data []byte) *Tables {
	t, err := ParseTables(data)
	if err != nil {
		panic("judgement: built-in tables: " + err.Error())
	}
	return t
}
