package factory_test

import (
	"testing"

	"github.com/NeuralTrust/TrustTag/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderLocator_Get(t *testing.T) {
	locator := factory.NewProviderLocator(httpx.NewImageFetcher())

	for _, name := range []string{
		factory.ProviderOpenAI,
		factory.ProviderGoogle,
		factory.ProviderAnthropic,
		factory.ProviderAzure,
		factory.ProviderBedrock,
	} {
		t.Run(name, func(t *testing.T) {
			first, err := locator.Get(name)
			require.NoError(t, err)
			second, err := locator.Get(name)
			require.NoError(t, err)
			assert.Same(t, first, second)
		})
	}
}

func TestProviderLocator_Unsupported(t *testing.T) {
	locator := factory.NewProviderLocator(httpx.NewImageFetcher())

	_, err := locator.Get("mistral")

	assert.EqualError(t, err, "unsupported provider: mistral")
}
