package providers

import (
	"context"
	"errors"
)

var (
	ErrMissingAPIKey = errors.New("API key is required")
	ErrMissingModel  = errors.New("model is required")
	ErrEmptyResponse = errors.New("no completions returned")
)

type Config struct {
	Credentials  Credentials    `json:"credentials"`
	Model        string         `json:"model"`
	MaxTokens    int            `json:"max_tokens,omitempty"`
	Temperature  float64        `json:"temperature,omitempty"`
	SystemPrompt string         `json:"system_prompt,omitempty"`
	Options      map[string]any `json:"options,omitempty"`
}

type Credentials struct {
	ApiKey string `json:"api_key"`
}

// ImageInput points at the image to analyse. Providers that cannot pass a
// URL through download it first.
type ImageInput struct {
	URL string
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore

type Client interface {
	Ask(ctx context.Context, config *Config, prompt string) (*CompletionResponse, error)
	AskWithImage(ctx context.Context, config *Config, prompt string, image ImageInput) (*CompletionResponse, error)
}

func (c *Config) Validate() error {
	if c.Credentials.ApiKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return ErrMissingModel
	}
	return nil
}
