package scoring

import (
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
)

// ScoredAsset pairs an asset with a score in [0,1].
type ScoredAsset struct {
	Asset asset.Asset `json:"asset"`
	Score float64     `json:"score"`
}

// SimilarityScorer computes the Jaccard index over effective tag sets.
// Either side having no tags yields 0.
type SimilarityScorer struct {
	caseInsensitive bool
}

type SimilarityOption func(*SimilarityScorer)

// WithCaseInsensitiveTags compares tags after lower-casing. Off by default: tags
// are compared as stored.
func WithCaseInsensitiveTags(enabled bool) SimilarityOption {
	return func(s *SimilarityScorer) {
		s.caseInsensitive = enabled
	}
}

func NewSimilarityScorer(opts ...SimilarityOption) *SimilarityScorer {
	s := &SimilarityScorer{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SimilarityScorer) Score(a, b asset.Asset) float64 {
	return Jaccard(a.EffectiveTags(s.caseInsensitive), b.EffectiveTags(s.caseInsensitive))
}

// Jaccard expects both inputs to be free of duplicates.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}

	intersection := 0
	for _, t := range b {
		if _, ok := set[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}
