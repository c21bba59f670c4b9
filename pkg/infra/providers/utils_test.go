package providers_test

import (
	"testing"

	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOptions(t *testing.T) {
	opts, err := providers.DecodeOptions(map[string]any{"detail": "low", "base_url": "http://proxy.local/v1", "ignored": 1})
	require.NoError(t, err)
	assert.Equal(t, "low", opts.Detail)
	assert.Equal(t, "http://proxy.local/v1", opts.BaseURL)

	opts, err = providers.DecodeOptions(nil)
	require.NoError(t, err)
	assert.Empty(t, opts.Detail)

	_, err = providers.DecodeOptions(map[string]any{"detail": []int{1}})
	assert.Error(t, err)
}

func TestDecodeOptions_CloudCredentials(t *testing.T) {
	opts, err := providers.DecodeOptions(map[string]any{
		"endpoint":     "https://acme.openai.azure.com",
		"use_identity": "true",
		"region":       "eu-west-1",
		"role_arn":     "arn:aws:iam::123:role/tagger",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://acme.openai.azure.com", opts.Endpoint)
	assert.True(t, opts.UseIdentity)
	assert.Equal(t, "eu-west-1", opts.Region)
	assert.Equal(t, "arn:aws:iam::123:role/tagger", opts.RoleARN)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &providers.Config{Model: "gpt-4o"}
	assert.ErrorIs(t, cfg.Validate(), providers.ErrMissingAPIKey)

	cfg = &providers.Config{Credentials: providers.Credentials{ApiKey: "k"}}
	assert.ErrorIs(t, cfg.Validate(), providers.ErrMissingModel)

	cfg.Model = "gpt-4o"
	assert.NoError(t, cfg.Validate())
}
