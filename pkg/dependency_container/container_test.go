package dependency_container

import (
	"io"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustTag/pkg/config"
	assetMocks "github.com/NeuralTrust/TrustTag/pkg/domain/asset/mocks"
	"github.com/NeuralTrust/TrustTag/pkg/infra/cache"
	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Providers.Tagging = config.ProviderConfig{Provider: "openai", Model: "gpt-4o-mini", VisionModel: "gpt-4o", APIKey: "k"}
	cfg.Providers.Vision = config.ProviderConfig{Provider: "anthropic", Model: "claude-3-5-sonnet-latest", APIKey: "k"}
	cfg.Tagging.Concurrency = 2
	cfg.Tagging.Timeout = time.Second
	cfg.Similarity.DefaultLimit = 10
	return cfg
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewContainer(t *testing.T) {
	rdb, _ := redismock.NewClientMock()

	c, err := NewContainer(ContainerDI{
		Cfg:        testConfig(),
		Logger:     testLogger(),
		Cache:      cache.NewClientFromRedis(rdb),
		AssetStore: assetMocks.NewRepository(t),
	})

	require.NoError(t, err)
	assert.NotNil(t, c.Orchestrator)
	assert.NotNil(t, c.SimilarityFinder)
	assert.NotNil(t, c.DesignAnalyzer)
	assert.NotNil(t, c.HandlerTransport.TagAssetsHandler)
	assert.Len(t, c.MiddlewareTransport.GetMiddlewares(), 4)
}

func TestNewContainer_UnsupportedProvider(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	cfg := testConfig()
	cfg.Providers.Vision.Provider = "bedrock"

	_, err := NewContainer(ContainerDI{
		Cfg:        cfg,
		Logger:     testLogger(),
		Cache:      cache.NewClientFromRedis(rdb),
		AssetStore: assetMocks.NewRepository(t),
	})

	assert.ErrorContains(t, err, "vision provider: unsupported provider: bedrock")
}

func TestNewContainer_MissingStore(t *testing.T) {
	rdb, _ := redismock.NewClientMock()

	_, err := NewContainer(ContainerDI{
		Cfg:    testConfig(),
		Logger: testLogger(),
		Cache:  cache.NewClientFromRedis(rdb),
	})

	assert.ErrorIs(t, err, ErrMissingAssetStore)
}

func TestProviderConfig(t *testing.T) {
	p := config.ProviderConfig{Model: "text", VisionModel: "vision", APIKey: "k", MaxTokens: 50}

	assert.Equal(t, "text", providerConfig(p, false).Model)
	assert.Equal(t, "vision", providerConfig(p, true).Model)
	assert.Equal(t, "k", providerConfig(p, true).Credentials.ApiKey)

	p.VisionModel = ""
	assert.Equal(t, "text", providerConfig(p, true).Model)
}
