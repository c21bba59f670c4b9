package collaborator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	"github.com/NeuralTrust/TrustTag/pkg/domain/tagging"
	"github.com/NeuralTrust/TrustTag/pkg/infra/collaborator"
	"github.com/NeuralTrust/TrustTag/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func testConfig() providers.Config {
	return providers.Config{Model: "gpt-4o-mini", Credentials: providers.Credentials{ApiKey: "k"}}
}

func TestTagGenerator_ImageModeSendsURL(t *testing.T) {
	client := mocks.NewClient(t)
	client.On("AskWithImage", mock.Anything, mock.MatchedBy(func(c *providers.Config) bool {
		return c.MaxTokens == 100
	}), mock.MatchedBy(func(p string) bool {
		return assert.Contains(t, p, "Title: Sunset") && assert.Contains(t, p, "No description provided")
	}), providers.ImageInput{URL: "https://cdn/sunset.png"}).
		Return(&providers.CompletionResponse{Response: "warm, sunset, orange"}, nil).Once()

	gen := collaborator.NewTagGenerator(testLogger(), client, testConfig(), collaborator.ModeImage,
		httpx.NewCircuitBreaker("image_tagger", time.Minute, 3))

	raw, err := gen.Generate(context.Background(), tagging.GenerationRequest{
		URL: "https://cdn/sunset.png", Title: "Sunset", FileType: asset.FileTypeImage,
	})

	require.NoError(t, err)
	assert.Equal(t, "warm, sunset, orange", raw)
}

func TestTagGenerator_TextModeUsesDescription(t *testing.T) {
	client := mocks.NewClient(t)
	client.On("Ask", mock.Anything, mock.Anything, mock.MatchedBy(func(p string) bool {
		return assert.Contains(t, p, "Description: Quarterly report") && assert.Contains(t, p, "content type")
	})).Return(&providers.CompletionResponse{Response: "report, finance"}, nil).Once()

	gen := collaborator.NewTagGenerator(testLogger(), client, testConfig(), collaborator.ModeText,
		httpx.NewCircuitBreaker("text_tagger", time.Minute, 3))

	raw, err := gen.Generate(context.Background(), tagging.GenerationRequest{
		Title: "Q3", Description: "Quarterly report", FileType: asset.FileTypeDocument,
	})

	require.NoError(t, err)
	assert.Equal(t, "report, finance", raw)
}

func TestTagGenerator_FailureIsCollaboratorError(t *testing.T) {
	client := mocks.NewClient(t)
	client.On("Ask", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("503 service unavailable")).Once()

	gen := collaborator.NewTagGenerator(testLogger(), client, testConfig(), collaborator.ModeText,
		httpx.NewCircuitBreaker("text_tagger", time.Minute, 3))

	_, err := gen.Generate(context.Background(), tagging.GenerationRequest{Title: "x"})

	assert.ErrorIs(t, err, domain.ErrCollaboratorUnavailable)
	assert.ErrorContains(t, err, "text_tagger")
}

func TestTagGenerator_OpenBreakerSkipsProvider(t *testing.T) {
	client := mocks.NewClient(t)
	client.On("Ask", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("boom")).Once()

	gen := collaborator.NewTagGenerator(testLogger(), client, testConfig(), collaborator.ModeText,
		httpx.NewCircuitBreaker("text_tagger", time.Minute, 1))

	_, err := gen.Generate(context.Background(), tagging.GenerationRequest{Title: "x"})
	require.Error(t, err)

	_, err = gen.Generate(context.Background(), tagging.GenerationRequest{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrCollaboratorUnavailable)
	assert.True(t, httpx.IsOpen(err))
	client.AssertNumberOfCalls(t, "Ask", 1)
}
