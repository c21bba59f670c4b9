package subscriber

import (
	"context"
)

// AssetInvalidator drops every cached view that may contain the asset.
type AssetInvalidator interface {
	Invalidate(ctx context.Context, assetID string) error
}
