package text

import (
	"context"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name             string
		table            Table
		input            string
		want             string
		wantReplacements int
	}{
		{
			name:             "simple_replacement",
			table:            Table{{From: "World", To: "Universe"}},
			input:            "Hello World",
			want:             "Hello Universe",
			wantReplacements: 1,
		},
		{
			name:             "multiple_occurrences",
			table:            Table{{From: "l", To: "L"}},
			input:            "Hello World",
			want:             "HeLLo WorLd",
			wantReplacements: 3,
		},
		{
			name:  "no_match",
			table: Table{{From: "Goodbye", To: "Hello"}},
			input: "Hello World",
			want:  "Hello World",
		},
		{
			name:  "case_sensitive",
			table: Table{{From: "world", To: "Universe"}},
			input: "Hello World",
			want:  "Hello World",
		},
		{
			name:  "regex_metacharacters_are_literal",
			table: Table{{From: "a.c", To: "x"}},
			input: "abc a.c",
			want:             "abc x",
			wantReplacements: 1,
		},
		{
			name: "later_rule_sees_earlier_output",
			table: Table{
				{From: "a", To: "xb"},
				{From: "b", To: "c"},
			},
			input:            "a",
			want:             "xc",
			wantReplacements: 2,
		},
		{
			name: "order_matters",
			table: Table{
				{From: "b", To: "c"},
				{From: "a", To: "xb"},
			},
			input:            "a",
			want:             "xb",
			wantReplacements: 1,
		},
		{
			name: "duplicate_rules_apply_twice",
			table: Table{
				{From: "ab", To: "a"},
				{From: "ab", To: "a"},
			},
			input:            "abb",
			want:             "a",
			wantReplacements: 2,
		},
		{
			name:             "non_overlapping",
			table:            Table{{From: "aa", To: "b"}},
			input:            "aaa",
			want:             "ba",
			wantReplacements: 1,
		},
		{
			name:             "extending_rule_skips_extended_text",
			table:            Table{{From: "cosmic-horizon", To: "cosmic-horizons"}},
			input:            "cosmic-horizons-api and cosmic-horizon",
			want:             "cosmic-horizons-api and cosmic-horizons",
			wantReplacements: 1,
		},
		{
			name:  "extending_rule_is_stable",
			table: Table{{From: "cosmic_horizon", To: "cosmic_horizons"}},
			input: "cosmic_horizons",
			want:  "cosmic_horizons",
		},
		{
			name:  "empty_rule_ignored",
			table: Table{{From: "", To: "x"}},
			input: "abc",
			want:  "abc",
		},
		{
			name:  "empty_content",
			table: Table{{From: "a", To: "b"}},
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.input, tt.table)
			assert.Equal(t, tt.want, got.Modified)
			assert.Equal(t, tt.input, got.Original)
			assert.Equal(t, tt.wantReplacements, got.Replacements)
			assert.Equal(t, tt.input != tt.want, got.WasModified)
		})
	}
}

func TestApplyIsIdempotentForExtendingRules(t *testing.T) {
	table := Table{
		{From: "old-name", To: "new-names"},
		{From: "new-name", To: "new-names"},
	}

	first := Apply("old-name new-name", table)
	require.Equal(t, "new-names new-names", first.Modified)

	second := Apply(first.Modified, table)
	assert.False(t, second.WasModified)
	assert.Zero(t, second.Replacements)
}

func TestReplaceText(t *testing.T) {
	r := NewSimpleReplacer()

	res, err := r.ReplaceText(context.Background(), strings.NewReader("vlass and vlass"), Table{{From: "vlass", To: "cosmic"}})
	require.NoError(t, err, "replacing text")
	assert.Equal(t, "cosmic and cosmic", res.Modified)
	assert.Equal(t, 2, res.Replacements)
	assert.True(t, res.WasModified)

	_, err = r.ReplaceText(context.Background(), iotest.ErrReader(assert.AnError), Table{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestValidateTable(t *testing.T) {
	r := NewSimpleReplacer()

	require.NoError(t, r.ValidateTable(Table{{From: "a", To: ""}}))
	require.NoError(t, r.ValidateTable(nil))

	err := r.ValidateTable(Table{{From: "a", To: "b"}, {From: "", To: "c"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule 1")
}
