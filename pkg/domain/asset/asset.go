package asset

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeDocument FileType = "document"
)

// Asset is a library item as stored by the asset store. The service only reads it.
type Asset struct {
	ID           string         `json:"id" gorm:"primaryKey;type:text"`
	UserID       string         `json:"user_id,omitempty" gorm:"type:text"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	URL          string         `json:"url"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	FileType     FileType       `json:"file_type" gorm:"type:text"`
	FileSize     int64          `json:"file_size,omitempty"`
	Tags         pq.StringArray `json:"tags" gorm:"type:text[]"`
	AITags       pq.StringArray `json:"ai_tags" gorm:"column:ai_tags;type:text[]"`
	CollectionID *string        `json:"collection_id,omitempty" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (a Asset) TableName() string {
	return "assets"
}

func (a Asset) IsImage() bool {
	return a.FileType == FileTypeImage
}

// EffectiveTags returns the union of human and machine tags, first occurrence wins.
// When fold is set tags are lower-cased before deduplication.
func (a Asset) EffectiveTags(fold bool) []string {
	seen := make(map[string]struct{}, len(a.Tags)+len(a.AITags))
	out := make([]string, 0, len(a.Tags)+len(a.AITags))
	add := func(tags []string) {
		for _, t := range tags {
			if fold {
				t = strings.ToLower(t)
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	add(a.Tags)
	add(a.AITags)
	return out
}

// Key is the identifier used in API responses: the asset ID when known, the URL otherwise.
func (a Asset) Key() string {
	if a.ID != "" {
		return a.ID
	}
	return a.URL
}
