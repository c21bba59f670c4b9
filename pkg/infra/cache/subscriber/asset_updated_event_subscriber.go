package subscriber

import (
	"context"

	"github.com/NeuralTrust/TrustTag/pkg/infra/cache"
	"github.com/NeuralTrust/TrustTag/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type AssetUpdatedEventSubscriber struct {
	logger      *logrus.Logger
	invalidator AssetInvalidator
}

func NewAssetUpdatedEventSubscriber(
	logger *logrus.Logger,
	invalidator AssetInvalidator,
) cache.EventSubscriber[event.AssetUpdatedEvent] {
	return &AssetUpdatedEventSubscriber{
		logger:      logger,
		invalidator: invalidator,
	}
}

func (s AssetUpdatedEventSubscriber) OnEvent(ctx context.Context, evt event.AssetUpdatedEvent) error {
	s.logger.WithField("asset_id", evt.AssetID).Debug("invalidating asset cache after update")
	return s.invalidator.Invalidate(ctx, evt.AssetID)
}
