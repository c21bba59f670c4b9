package cache

import (
	"encoding/json"
)

// RedisMessage is the envelope published on asset event channels.
type RedisMessage struct {
	Type  string          `json:"type"`
	Event json.RawMessage `json:"event"`
}
