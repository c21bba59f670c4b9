package repository

import (
	"context"
	"errors"

	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	"gorm.io/gorm"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) asset.Repository {
	return &AssetRepository{
		db: db,
	}
}

func (r *AssetRepository) FindByID(ctx context.Context, id string) (*asset.Asset, error) {
	var entity asset.Asset
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("asset", id)
		}
		return nil, err
	}
	return &entity, nil
}

// FindAll returns the whole library in a stable order so equal similarity
// scores rank identically between calls.
func (r *AssetRepository) FindAll(ctx context.Context) ([]asset.Asset, error) {
	var entities []asset.Asset
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
