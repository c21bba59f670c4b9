package factory

import (
	"fmt"
	"sync"

	"github.com/NeuralTrust/TrustTag/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers/anthropic"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers/azure"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers/bedrock"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers/gemini"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers/openai"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGoogle    = "google"
	ProviderAnthropic = "anthropic"
	ProviderAzure     = "azure"
	ProviderBedrock   = "bedrock"
)

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct {
	fetcher httpx.ImageFetcher
	mu      sync.Mutex
	clients map[string]providers.Client
}

func NewProviderLocator(fetcher httpx.ImageFetcher) ProviderLocator {
	return &providerLocator{
		fetcher: fetcher,
		clients: make(map[string]providers.Client),
	}
}

// Get returns one shared client per provider so their connection pools are reused.
func (f *providerLocator) Get(provider string) (providers.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[provider]; ok {
		return c, nil
	}
	var c providers.Client
	switch provider {
	case ProviderOpenAI:
		c = openai.NewOpenaiClient()
	case ProviderGoogle:
		c = gemini.NewGeminiClient(f.fetcher)
	case ProviderAnthropic:
		c = anthropic.NewAnthropicClient()
	case ProviderAzure:
		c = azure.NewAzureClient()
	case ProviderBedrock:
		c = bedrock.NewBedrockClient(f.fetcher)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
	f.clients[provider] = c
	return c, nil
}
