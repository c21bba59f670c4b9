package subscriber

import (
	"context"

	"github.com/NeuralTrust/TrustTag/pkg/infra/cache"
	"github.com/NeuralTrust/TrustTag/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type AssetDeletedEventSubscriber struct {
	logger      *logrus.Logger
	invalidator AssetInvalidator
}

func NewAssetDeletedEventSubscriber(
	logger *logrus.Logger,
	invalidator AssetInvalidator,
) cache.EventSubscriber[event.AssetDeletedEvent] {
	return &AssetDeletedEventSubscriber{
		logger:      logger,
		invalidator: invalidator,
	}
}

func (s AssetDeletedEventSubscriber) OnEvent(ctx context.Context, evt event.AssetDeletedEvent) error {
	s.logger.WithField("asset_id", evt.AssetID).Debug("invalidating asset cache after delete")
	if err := s.invalidator.Invalidate(ctx, evt.AssetID); err != nil {
		s.logger.WithError(err).Warn("failed to invalidate deleted asset")
		return err
	}
	return nil
}
