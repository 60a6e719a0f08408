// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/ratemyanything/auth"
	"github.com/danielhkuo/ratemyanything/judgement"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestJudge_JSON(t *testing.T) {
	out, err := run(t, "judge", "--stars", "5", "--seed", "7", "--json", "This is absolutely terrible and awful")
	require.NoError(t, err)

	var record judgement.Record
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, judgement.CategoryContradictory, record.Category)
	assert.True(t, record.ContradictionDetected)
	assert.Equal(t, 6, record.Stats.WordCount)
}

func TestJudge_SeedIsReproducible(t *testing.T) {
	first, err := run(t, "judge", "-s", "1", "--seed", "42", "worst", "thing", "ever")
	require.NoError(t, err)
	second, err := run(t, "judge", "-s", "1", "--seed", "42", "worst", "thing", "ever")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJudge_Text(t *testing.T) {
	out, err := run(t, "judge", "--stars", "3", "it", "exists")
	require.NoError(t, err)

	assert.Contains(t, out, "Category:  BASIC")
	assert.Contains(t, out, "Tags:      BASIC")
	assert.Contains(t, out, "Sentiment: +0")
	assert.Contains(t, out, "2 words, 9 chars, 0 emoji, 0 exaggerations")
	assert.NotContains(t, out, "contradiction detected")
}

func TestJudge_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"stars out of range", []string{"judge", "--stars", "6", "hello"}},
		{"stars missing", []string{"judge", "hello"}},
		{"no text", []string{"judge", "--stars", "3"}},
		{"missing lexicon file", []string{"judge", "--stars", "3", "--lexicon", "/does/not/exist.yaml", "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestToken(t *testing.T) {
	out, err := run(t, "token", "--username", "alice", "--secret", "cli-secret", "--ttl", "1h")
	require.NoError(t, err)

	username, err := auth.ParseToken(strings.TrimSpace(out), "cli-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestToken_SecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	out, err := run(t, "token", "-u", "bob")
	require.NoError(t, err)

	username, err := auth.ParseToken(strings.TrimSpace(out), "env-secret")
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
}

func TestToken_Errors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := run(t, "token", "--username", "alice")
	assert.Error(t, err, "no secret")

	_, err = run(t, "token", "--secret", "s")
	assert.Error(t, err, "no username")
}

func TestLexicon_BuiltIn(t *testing.T) {
	t.Setenv("LEXICON_PATH", "")

	out, err := run(t, "lexicon")
	require.NoError(t, err)

	assert.Contains(t, out, "built-in")
	assert.Contains(t, out, "20 words")
	assert.Contains(t, out, "14 words")
	for _, c := range judgement.Categories {
		assert.Contains(t, out, string(c))
	}
}

func TestLexicon_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lexicon:
  positive: [good]
  negative: [good]
  exaggeration: [very]
flavor:
  basic: ["ok"]
`), 0o644))

	_, err := run(t, "lexicon", "--file", path)
	assert.ErrorIs(t, err, judgement.ErrInvalidTables)
}
