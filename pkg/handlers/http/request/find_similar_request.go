package request

import (
	"errors"
	"strings"

	"github.com/NeuralTrust/TrustTag/pkg/domain"
)

const DefaultSimilarLimit = 10

type FindSimilarRequest struct {
	AssetID string `json:"asset_id"`
	Limit   *int   `json:"limit,omitempty"`
}

func (r *FindSimilarRequest) Validate() error {
	if strings.TrimSpace(r.AssetID) == "" {
		return errors.New("asset_id is required")
	}
	if r.Limit != nil && *r.Limit <= 0 {
		return domain.ErrInvalidLimit
	}
	return nil
}

// EffectiveLimit falls back to def, or DefaultSimilarLimit when def is not positive.
func (r *FindSimilarRequest) EffectiveLimit(def int) int {
	if r.Limit == nil {
		if def <= 0 {
			return DefaultSimilarLimit
		}
		return def
	}
	return *r.Limit
}
