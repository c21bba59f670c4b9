package tagging_test

import (
	"strings"
	"testing"

	"github.com/NeuralTrust/TrustTag/pkg/app/tagging"
	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags_Accepted(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "comma separated",
			raw:      "modern, minimal , poster,  blue palette",
			expected: []string{"modern", "minimal", "poster", "blue palette"},
		},
		{
			name:     "json array",
			raw:      `["vintage", "typography", "retro poster"]`,
			expected: []string{"vintage", "typography", "retro poster"},
		},
		{
			name:     "fenced json array",
			raw:      "```json\n[\"abstract\", \"geometric\"]\n```",
			expected: []string{"abstract", "geometric"},
		},
		{
			name:     "bulleted lines",
			raw:      "- organic\n- hand drawn\n* botanical",
			expected: []string{"organic", "hand drawn", "botanical"},
		},
		{
			name:     "numbered lines",
			raw:      "1. logo\n2) branding\n3. flat icon",
			expected: []string{"logo", "branding", "flat icon"},
		},
		{
			name:     "label prefix and trailing comma",
			raw:      "Tags: report, finance,",
			expected: []string{"report", "finance"},
		},
		{
			name:     "inline preamble",
			raw:      "Here are the tags: modern, minimal, poster",
			expected: []string{"modern", "minimal", "poster"},
		},
		{
			name:     "preamble on its own line",
			raw:      "Sure! Here are some tags:\n- retro\n- neon sign",
			expected: []string{"retro", "neon sign"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, err := tagging.ParseTags(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tags)
		})
	}
}

func TestParseTags_Rejected(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: "   "},
		{name: "only separators", raw: ", ,\n"},
		{name: "sentence", raw: "I am sorry but I cannot look at this image right now"},
		{name: "short refusal", raw: "I cannot see the image."},
		{name: "question", raw: "Could you share the file?"},
		{name: "colon inside a tag", raw: "modern\nnote: blurry, poster"},
		{name: "json sentence", raw: `["Unable to help."]`},
		{name: "broken json", raw: `["modern", "minimal"`},
		{name: "json with numbers", raw: `["modern", 3]`},
		{name: "too long", raw: strings.Repeat("x", 65)},
		{name: "too many tokens", raw: strings.TrimSuffix(strings.Repeat("t,", 33), ",")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tagging.ParseTags(tt.raw)
			assert.ErrorIs(t, err, domain.ErrParse)
		})
	}
}
