package dependency_container

import (
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustTag/pkg/app/design"
	"github.com/NeuralTrust/TrustTag/pkg/app/scoring"
	"github.com/NeuralTrust/TrustTag/pkg/app/similarity"
	"github.com/NeuralTrust/TrustTag/pkg/app/tagging"
	"github.com/NeuralTrust/TrustTag/pkg/config"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	handlers "github.com/NeuralTrust/TrustTag/pkg/handlers/http"
	"github.com/NeuralTrust/TrustTag/pkg/infra/cache"
	"github.com/NeuralTrust/TrustTag/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustTag/pkg/infra/cache/subscriber"
	"github.com/NeuralTrust/TrustTag/pkg/infra/collaborator"
	"github.com/NeuralTrust/TrustTag/pkg/infra/database"
	"github.com/NeuralTrust/TrustTag/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	providersFactory "github.com/NeuralTrust/TrustTag/pkg/infra/providers/factory"
	"github.com/NeuralTrust/TrustTag/pkg/infra/repository"
	"github.com/NeuralTrust/TrustTag/pkg/middleware"
	"github.com/sirupsen/logrus"
)

var ErrMissingAssetStore = errors.New("either a database or an asset store is required")

type Container struct {
	Cache               cache.Client
	RedisListener       cache.EventListener
	AssetRepository     asset.Repository
	ProviderLocator     providersFactory.ProviderLocator
	Orchestrator        tagging.Orchestrator
	SimilarityFinder    similarity.Finder
	DesignAnalyzer      design.Analyzer
	HandlerTransport    *handlers.HandlerTransport
	MiddlewareTransport *middleware.Transport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
	// Cache and AssetStore override the connections built from Cfg and DB.
	Cache      cache.Client
	AssetStore asset.Repository
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg

	cacheInstance := di.Cache
	if cacheInstance == nil {
		var err error
		cacheInstance, err = cache.NewClient(cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
		}, di.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cache: %w", err)
		}
	}

	// repository
	store := di.AssetStore
	if store == nil {
		if di.DB == nil {
			return nil, ErrMissingAssetStore
		}
		store = repository.NewAssetRepository(di.DB.DB)
	}
	assetRepository := repository.NewCachedAssetRepository(
		di.Logger,
		store,
		cacheInstance,
		cfg.Redis.PoolTTL,
		repository.WithMemoryPool(cfg.Redis.LocalPoolTTL),
	)

	// cache invalidation
	redisListener := cache.NewRedisEventListener(di.Logger, cacheInstance)
	cache.RegisterEventSubscriber[event.AssetUpdatedEvent](
		redisListener,
		subscriber.NewAssetUpdatedEventSubscriber(di.Logger, assetRepository),
	)
	cache.RegisterEventSubscriber[event.AssetDeletedEvent](
		redisListener,
		subscriber.NewAssetDeletedEventSubscriber(di.Logger, assetRepository),
	)

	// scoring
	tagScorer := scoring.NewTagQualityScorer(scoring.WithDedupeTags(cfg.Scoring.DedupeTags))
	similarityScorer := scoring.NewSimilarityScorer(scoring.WithCaseInsensitiveTags(cfg.Scoring.CaseInsensitive))

	// collaborators
	imageFetcher := httpx.NewImageFetcher(httpx.WithFetchTimeout(cfg.Tagging.Timeout))
	providerLocator := providersFactory.NewProviderLocator(imageFetcher)

	taggingClient, err := providerLocator.Get(cfg.Providers.Tagging.Provider)
	if err != nil {
		return nil, fmt.Errorf("tagging provider: %w", err)
	}
	visionClient, err := providerLocator.Get(cfg.Providers.Vision.Provider)
	if err != nil {
		return nil, fmt.Errorf("vision provider: %w", err)
	}

	textGenerator := collaborator.NewTagGenerator(
		di.Logger,
		taggingClient,
		providerConfig(cfg.Providers.Tagging, false),
		collaborator.ModeText,
		newBreaker(cfg, "text_tagger"),
	)
	imageGenerator := collaborator.NewTagGenerator(
		di.Logger,
		taggingClient,
		providerConfig(cfg.Providers.Tagging, true),
		collaborator.ModeImage,
		newBreaker(cfg, "image_tagger"),
	)
	visionAnalyzer := collaborator.NewVisionAnalyzer(
		di.Logger,
		visionClient,
		providerConfig(cfg.Providers.Vision, true),
		newBreaker(cfg, "vision_analyzer"),
	)

	// services
	orchestrator := tagging.NewOrchestrator(
		di.Logger,
		textGenerator,
		imageGenerator,
		tagScorer,
		tagging.Config{
			Concurrency:        cfg.Tagging.Concurrency,
			Timeout:            cfg.Tagging.Timeout,
			RateLimitPerSecond: cfg.Tagging.RateLimitPerSecond,
			Retry: tagging.RetryPolicy{
				MaxRetries: cfg.Tagging.MaxRetries,
				BaseDelay:  cfg.Tagging.RetryBaseDelay,
			},
		},
	)
	ranker := similarity.NewRanker(similarityScorer, similarity.WithRequireFullPage(cfg.Similarity.RequireFullPage))
	finder := similarity.NewFinder(di.Logger, assetRepository, similarity.NewScanIndex(assetRepository), ranker)
	analyzer := design.NewAnalyzer(di.Logger, visionAnalyzer, cfg.Tagging.Timeout)

	handlerTransport := &handlers.HandlerTransport{
		RootHandler:          handlers.NewRootHandler(),
		HealthHandler:        handlers.NewHealthHandler(),
		VersionHandler:       handlers.NewGetVersionHandler(),
		TagAssetsHandler:     handlers.NewTagAssetsHandler(di.Logger, orchestrator),
		FindSimilarHandler:   handlers.NewFindSimilarHandler(di.Logger, finder, cfg.Similarity.DefaultLimit),
		AnalyzeDesignHandler: handlers.NewAnalyzeDesignHandler(di.Logger, analyzer),
	}

	middlewareTransport := &middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger),
		TraceMiddleware:        middleware.NewTraceMiddleware(),
		CORSMiddleware:         middleware.NewCORSMiddleware(nil),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(di.Logger),
	}

	return &Container{
		Cache:               cacheInstance,
		RedisListener:       redisListener,
		AssetRepository:     assetRepository,
		ProviderLocator:     providerLocator,
		Orchestrator:        orchestrator,
		SimilarityFinder:    finder,
		DesignAnalyzer:      analyzer,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
	}, nil
}

func newBreaker(cfg *config.Config, name string) httpx.CircuitBreaker {
	return httpx.NewCircuitBreaker(name, cfg.Tagging.BreakerTimeout, cfg.Tagging.BreakerMaxFailures)
}

// providerConfig picks the vision model for image calls when one is configured.
func providerConfig(p config.ProviderConfig, vision bool) providers.Config {
	model := p.Model
	if vision && p.VisionModel != "" {
		model = p.VisionModel
	}
	return providers.Config{
		Credentials: providers.Credentials{ApiKey: p.APIKey},
		Model:       model,
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
		Options:     p.Options,
	}
}
