package similarity

import (
	"context"

	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
)

// CandidateIndex returns the assets worth scoring against a reference. The
// default implementation is a full scan; a nearest-neighbour index can replace
// it without touching the scoring contract.
type CandidateIndex interface {
	Candidates(ctx context.Context, reference asset.Asset) ([]asset.Asset, error)
}

type scanIndex struct {
	repo asset.Repository
}

func NewScanIndex(repo asset.Repository) CandidateIndex {
	return &scanIndex{repo: repo}
}

func (s *scanIndex) Candidates(ctx context.Context, _ asset.Asset) ([]asset.Asset, error) {
	return s.repo.FindAll(ctx)
}
