package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	"github.com/NeuralTrust/TrustTag/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const defaultAssetTTL = 5 * time.Minute

// CachedAssetRepository is a read-through cache in front of the asset store.
// Cache failures are logged and the store is queried directly.
type CachedAssetRepository struct {
	logger   *logrus.Logger
	next     asset.Repository
	cache    cache.Client
	assetTTL time.Duration
	poolTTL  time.Duration
	sf       singleflight.Group
	// memory keeps the pool in process for a short while; nil disables it.
	memory *cache.TTLMap[[]asset.Asset]
}

type CachedAssetRepositoryOption func(*CachedAssetRepository)

// WithMemoryPool serves the candidate pool from process memory for ttl before
// going back to redis.
func WithMemoryPool(ttl time.Duration) CachedAssetRepositoryOption {
	return func(r *CachedAssetRepository) {
		if ttl > 0 {
			r.memory = cache.NewTTLMap[[]asset.Asset](ttl)
		}
	}
}

func NewCachedAssetRepository(
	logger *logrus.Logger,
	next asset.Repository,
	c cache.Client,
	poolTTL time.Duration,
	opts ...CachedAssetRepositoryOption,
) *CachedAssetRepository {
	r := &CachedAssetRepository{
		logger:   logger,
		next:     next,
		cache:    c,
		assetTTL: defaultAssetTTL,
		poolTTL:  poolTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CachedAssetRepository) FindByID(ctx context.Context, id string) (*asset.Asset, error) {
	key := fmt.Sprintf(cache.AssetKeyPattern, id)

	var cached asset.Asset
	if r.load(ctx, key, &cached) {
		return &cached, nil
	}

	entity, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity != nil {
		r.store(ctx, key, entity, r.assetTTL)
	}
	return entity, nil
}

// FindAll collapses concurrent misses into a single store query.
func (r *CachedAssetRepository) FindAll(ctx context.Context) ([]asset.Asset, error) {
	if r.poolTTL <= 0 {
		return r.next.FindAll(ctx)
	}

	if r.memory != nil {
		if pool, ok := r.memory.Get(cache.AssetPoolKey); ok {
			return pool, nil
		}
	}

	var pool []asset.Asset
	if r.load(ctx, cache.AssetPoolKey, &pool) {
		r.remember(pool)
		return pool, nil
	}

	v, err, _ := r.sf.Do(cache.AssetPoolKey, func() (interface{}, error) {
		assets, err := r.next.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		r.store(ctx, cache.AssetPoolKey, assets, r.poolTTL)
		r.remember(assets)
		return assets, nil
	})
	if err != nil {
		return nil, err
	}
	assets, ok := v.([]asset.Asset)
	if !ok {
		return nil, fmt.Errorf("unexpected pool type %T", v)
	}
	return assets, nil
}

// Invalidate drops the cached asset and the cached pool.
func (r *CachedAssetRepository) Invalidate(ctx context.Context, assetID string) error {
	if r.memory != nil {
		r.memory.Delete(cache.AssetPoolKey)
	}
	return r.cache.Delete(ctx, fmt.Sprintf(cache.AssetKeyPattern, assetID), cache.AssetPoolKey)
}

func (r *CachedAssetRepository) remember(pool []asset.Asset) {
	if r.memory != nil {
		r.memory.Set(cache.AssetPoolKey, pool)
	}
}

func (r *CachedAssetRepository) load(ctx context.Context, key string, out any) bool {
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WithError(err).WithField("key", key).Warn("asset cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("discarding undecodable asset cache entry")
		return false
	}
	return true
}

func (r *CachedAssetRepository) store(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("failed to encode asset cache entry")
		return
	}
	if err := r.cache.Set(ctx, key, string(data), ttl); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("asset cache write failed")
	}
}
