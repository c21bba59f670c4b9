package request

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
)

type TagAssetsRequest struct {
	Assets []AssetRequest `json:"assets"`
}

// UnmarshalJSON accepts both {"assets": [...]} and a bare array of assets.
func (r *TagAssetsRequest) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &r.Assets)
	}
	type plain TagAssetsRequest
	return json.Unmarshal(trimmed, (*plain)(r))
}

func (r *TagAssetsRequest) Validate() error {
	if len(r.Assets) == 0 {
		return errors.New("assets must not be empty")
	}
	for i := range r.Assets {
		if err := validateAt(i, &r.Assets[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *TagAssetsRequest) ToAssets() []asset.Asset {
	out := make([]asset.Asset, len(r.Assets))
	for i := range r.Assets {
		out[i] = r.Assets[i].ToAsset()
	}
	return out
}
