package llmtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPairValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "complete pair",
			input: `{"title": "A Heading"}`,
			want:  []string{"A Heading"},
		},
		{
			name:  "multiple pairs in order",
			input: `{"title": "First", "body": "Second"}`,
			want:  []string{"First", "Second"},
		},
		{
			name:  "truncated value keeps remainder",
			input: `"title": "Partial Heading`,
			want:  []string{"Partial Heading"},
		},
		{
			name:  "truncated value sheds trailing artifact",
			input: `{"body": "cut off here,   `,
			want:  []string{"cut off here"},
		},
		{
			name:  "escaped quote does not close the value",
			input: `"k": "say \"hey\""`,
			want:  []string{`say "hey"`},
		},
		{
			name:  "unquoted values skipped",
			input: `{"count": 7, "note": "seven items"}`,
			want:  []string{"seven items"},
		},
		{
			name:  "empty values not collected",
			input: `{"a": "", "b": "   "}`,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractPairValues(tt.input)
			assert.Equal(t, len(tt.want) > 0, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPairValues_NoPairs(t *testing.T) {
	got, ok := extractPairValues("no json here at all")
	require.False(t, ok)
	assert.Empty(t, got)
}

func TestStripLeadingJSONNoise(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "leading punctuation shaved",
			input: `{ summary text`,
			want:  "summary text",
		},
		{
			name:  "key label dropped",
			input: `title: the heading`,
			want:  "the heading",
		},
		{
			name:  "tail cut at closing brace",
			input: `{ some text } leftover`,
			want:  "some text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripLeadingJSONNoise(tt.input))
		})
	}
}

func TestLongestValue(t *testing.T) {
	assert.Equal(t, "the longest entry", longestValue([]string{"short", "the longest entry", "mid value"}))
	// Ties break to the first value found.
	assert.Equal(t, "aaa", longestValue([]string{"aaa", "bbb"}))
	assert.Equal(t, "", longestValue(nil))
}
