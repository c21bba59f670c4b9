package cache

import (
	"context"
)

type Channel string

const AssetEventsChannel Channel = "asset_events"

type EventListener interface {
	Listen(ctx context.Context, channels ...Channel)
	register(eventType string, handler eventHandler)
}
