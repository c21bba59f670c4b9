package similarity

import (
	"fmt"
	"sort"

	"github.com/NeuralTrust/TrustTag/pkg/app/scoring"
	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
)

const assetEntity = "asset"

type Scorer interface {
	Score(a, b asset.Asset) float64
}

// Result is ordered by descending score; equal scores keep pool order.
type Result []scoring.ScoredAsset

func (r Result) Assets() []asset.Asset {
	out := make([]asset.Asset, len(r))
	for i, s := range r {
		out[i] = s.Asset
	}
	return out
}

func (r Result) Scores() []float64 {
	out := make([]float64, len(r))
	for i, s := range r {
		out[i] = s.Score
	}
	return out
}

type Ranker struct {
	scorer          Scorer
	requireFullPage bool
}

type RankerOption func(*Ranker)

// WithRequireFullPage makes a result shorter than the limit an error.
func WithRequireFullPage(required bool) RankerOption {
	return func(r *Ranker) {
		r.requireFullPage = required
	}
}

func NewRanker(scorer Scorer, opts ...RankerOption) *Ranker {
	r := &Ranker{scorer: scorer}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank locates referenceID inside pool and ranks the remaining entries against it.
func (r *Ranker) Rank(referenceID string, pool []asset.Asset, limit int) (Result, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}
	for i := range pool {
		if pool[i].ID == referenceID {
			return r.RankAgainst(pool[i], pool, limit)
		}
	}
	return nil, domain.NewNotFoundError(assetEntity, referenceID)
}

// RankAgainst scores every pool entry whose ID differs from the reference ID.
func (r *Ranker) RankAgainst(reference asset.Asset, pool []asset.Asset, limit int) (Result, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}

	scored := make(Result, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == reference.ID {
			continue
		}
		scored = append(scored, scoring.ScoredAsset{
			Asset: candidate,
			Score: r.scorer.Score(reference, candidate),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) < limit {
		if r.requireFullPage {
			return nil, fmt.Errorf("%w: requested %d, found %d", domain.ErrInsufficientCandidates, limit, len(scored))
		}
		return scored, nil
	}
	return scored[:limit], nil
}
