package scoring

import (
	"strings"
)

const (
	expectedTagCount   = 8.0
	qualityBoostWeight = 0.2
)

// DefaultQualityVocabulary holds the descriptive adjectives that raise tag confidence.
var DefaultQualityVocabulary = []string{"modern", "minimal", "vintage", "abstract", "geometric", "organic"}

// TagQualityScorer turns a candidate tag list into a confidence in [0,1].
type TagQualityScorer struct {
	vocabulary map[string]struct{}
	size       int
	dedupe     bool
}

type TagQualityOption func(*TagQualityScorer)

// WithDedupeTags counts each distinct tag once. Off by default: repeated tags
// may each match the vocabulary.
func WithDedupeTags(dedupe bool) TagQualityOption {
	return func(s *TagQualityScorer) {
		s.dedupe = dedupe
	}
}

func WithQualityVocabulary(words []string) TagQualityOption {
	return func(s *TagQualityScorer) {
		s.vocabulary, s.size = buildVocabulary(words)
	}
}

func NewTagQualityScorer(opts ...TagQualityOption) *TagQualityScorer {
	s := &TagQualityScorer{}
	s.vocabulary, s.size = buildVocabulary(DefaultQualityVocabulary)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TagQualityScorer) Score(tags []string) float64 {
	if s.dedupe {
		tags = distinct(tags)
	}
	base := min(float64(len(tags))/expectedTagCount, 1.0)
	if s.size == 0 {
		return base
	}

	matches := 0
	for _, tag := range tags {
		if _, ok := s.vocabulary[strings.ToLower(tag)]; ok {
			matches++
		}
	}
	quality := float64(matches) / float64(s.size)

	return min(base+quality*qualityBoostWeight, 1.0)
}

func buildVocabulary(words []string) (map[string]struct{}, int) {
	vocabulary := make(map[string]struct{}, len(words))
	for _, w := range words {
		vocabulary[strings.ToLower(w)] = struct{}{}
	}
	return vocabulary, len(vocabulary)
}

func distinct(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
