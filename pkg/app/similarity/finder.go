package similarity

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	"github.com/NeuralTrust/TrustTag/pkg/utils"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=finder_mock.go --case=underscore
type Finder interface {
	FindSimilar(ctx context.Context, assetID string, limit int) (Result, error)
}

type finder struct {
	logger *logrus.Logger
	repo   asset.Repository
	index  CandidateIndex
	ranker *Ranker
}

func NewFinder(logger *logrus.Logger, repo asset.Repository, index CandidateIndex, ranker *Ranker) Finder {
	return &finder{
		logger: logger,
		repo:   repo,
		index:  index,
		ranker: ranker,
	}
}

func (f *finder) FindSimilar(ctx context.Context, assetID string, limit int) (Result, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}

	reference, err := f.repo.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if reference == nil {
		return nil, domain.NewNotFoundError(assetEntity, assetID)
	}

	pool, err := f.index.Candidates(ctx, *reference)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate assets: %w", err)
	}

	result, err := f.ranker.RankAgainst(*reference, pool, limit)
	if err != nil {
		return nil, err
	}

	f.logger.WithFields(logrus.Fields{
		"asset_id":   assetID,
		"pool_size":  len(pool),
		"limit":      limit,
		"result_len": len(result),
		"trace_id":   utils.TraceID(ctx),
	}).Debug("similar assets ranked")

	return result, nil
}
