package openai_test

import (
	"context"
	"testing"

	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers/openai"
	"github.com/stretchr/testify/assert"
)

func TestNewOpenaiClient(t *testing.T) {
	assert.NotNil(t, openai.NewOpenaiClient())
}

func TestAsk_MissingAPIKey(t *testing.T) {
	client := openai.NewOpenaiClient()

	resp, err := client.Ask(context.Background(), &providers.Config{Model: "gpt-4o-mini"}, "tags please")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, providers.ErrMissingAPIKey)
}

func TestAskWithImage_MissingModel(t *testing.T) {
	client := openai.NewOpenaiClient()
	config := &providers.Config{Credentials: providers.Credentials{ApiKey: "test-api-key"}}

	resp, err := client.AskWithImage(context.Background(), config, "describe", providers.ImageInput{URL: "https://cdn/a.png"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, providers.ErrMissingModel)
}

func TestAskWithImage_InvalidOptions(t *testing.T) {
	client := openai.NewOpenaiClient()
	config := &providers.Config{
		Model:       "gpt-4o",
		Credentials: providers.Credentials{ApiKey: "test-api-key"},
		Options:     map[string]any{"detail": map[string]int{"x": 1}},
	}

	_, err := client.AskWithImage(context.Background(), config, "describe", providers.ImageInput{URL: "u"})

	assert.ErrorContains(t, err, "invalid provider options")
}
