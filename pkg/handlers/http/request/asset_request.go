package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
)

type AssetRequest struct {
	ID          string   `json:"id,omitempty"`
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	FileType    string   `json:"file_type"`
	Tags        []string `json:"tags,omitempty"`
	AITags      []string `json:"ai_tags,omitempty"`
}

func (r *AssetRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return errors.New("url is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.FileType) == "" {
		return errors.New("file_type is required")
	}
	return nil
}

func (r *AssetRequest) ToAsset() asset.Asset {
	return asset.Asset{
		ID:          r.ID,
		URL:         r.URL,
		Title:       r.Title,
		Description: r.Description,
		FileType:    asset.FileType(r.FileType),
		Tags:        r.Tags,
		AITags:      r.AITags,
	}
}

func validateAt(i int, r *AssetRequest) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("asset %d: %w", i, err)
	}
	return nil
}
