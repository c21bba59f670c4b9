package event

type Event interface {
	Type() string
}

const (
	AssetUpdatedEventType = "AssetUpdatedEvent"
	AssetDeletedEventType = "AssetDeletedEvent"
)

// AssetUpdatedEvent is published by the asset library when tags or metadata change.
type AssetUpdatedEvent struct {
	AssetID string `json:"asset_id"`
}

func (e AssetUpdatedEvent) Type() string {
	return AssetUpdatedEventType
}

type AssetDeletedEvent struct {
	AssetID string `json:"asset_id"`
}

func (e AssetDeletedEvent) Type() string {
	return AssetDeletedEventType
}
