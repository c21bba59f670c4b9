package scoring_test

import (
	"testing"

	"github.com/NeuralTrust/TrustTag/pkg/app/scoring"
	"github.com/stretchr/testify/assert"
)

func TestTagQualityScorer_Score(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected float64
	}{
		{
			name:     "empty tag list",
			tags:     []string{},
			expected: 0.0,
		},
		{
			name:     "nil tag list",
			tags:     nil,
			expected: 0.0,
		},
		{
			name:     "full vocabulary saturates",
			tags:     []string{"modern", "minimal", "vintage", "abstract", "geometric", "organic", "x", "y"},
			expected: 1.0,
		},
		{
			name:     "two plain tags",
			tags:     []string{"a", "b"},
			expected: 0.25,
		},
		{
			name:     "quality tags match case-insensitively",
			tags:     []string{"Modern", "MINIMAL", "poster", "blue"},
			expected: 0.5 + (2.0/6.0)*0.2,
		},
		{
			name:     "more than eight tags caps base",
			tags:     []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
			expected: 1.0,
		},
		{
			name:     "repeated quality tag counts every time",
			tags:     []string{"modern", "modern", "modern"},
			expected: 3.0/8.0 + (3.0/6.0)*0.2,
		},
	}

	scorer := scoring.NewTagQualityScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scorer.Score(tt.tags), 1e-9)
		})
	}
}

func TestTagQualityScorer_Bounds(t *testing.T) {
	scorer := scoring.NewTagQualityScorer()
	inputs := [][]string{
		{"image", "design", "visual", "creative"},
		{"document", "file", "content"},
		{"organic", "organic", "organic", "organic", "organic", "organic", "organic", "organic", "organic"},
	}
	for _, tags := range inputs {
		score := scorer.Score(tags)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestTagQualityScorer_Fallbacks(t *testing.T) {
	scorer := scoring.NewTagQualityScorer()
	assert.InDelta(t, 0.5, scorer.Score([]string{"image", "design", "visual", "creative"}), 1e-9)
	assert.InDelta(t, 0.375, scorer.Score([]string{"document", "file", "content"}), 1e-9)
}

func TestTagQualityScorer_WithDedupeTags(t *testing.T) {
	scorer := scoring.NewTagQualityScorer(scoring.WithDedupeTags(true))
	assert.InDelta(t, 1.0/8.0+(1.0/6.0)*0.2, scorer.Score([]string{"modern", "modern", "modern"}), 1e-9)
}

func TestTagQualityScorer_WithQualityVocabulary(t *testing.T) {
	scorer := scoring.NewTagQualityScorer(scoring.WithQualityVocabulary([]string{"Retro", "bold"}))
	assert.InDelta(t, 2.0/8.0+0.5*0.2, scorer.Score([]string{"retro", "poster"}), 1e-9)
	assert.InDelta(t, 0.25, scorer.Score([]string{"modern", "poster"}), 1e-9)
}
