package anthropic

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/sync/singleflight"
)

const defaultMaxTokens = 1024

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewAnthropicClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	return c.send(ctx, config, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))
}

func (c *client) AskWithImage(
	ctx context.Context,
	config *providers.Config,
	prompt string,
	image providers.ImageInput,
) (*providers.CompletionResponse, error) {
	return c.send(ctx, config, anthropic.NewUserMessage(
		anthropic.NewImageBlock(anthropic.URLImageSourceParam{URL: image.URL}),
		anthropic.NewTextBlock(prompt),
	))
}

func (c *client) send(
	ctx context.Context,
	config *providers.Config,
	message anthropic.MessageParam,
) (*providers.CompletionResponse, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	opts, err := providers.DecodeOptions(config.Options)
	if err != nil {
		return nil, err
	}

	anthropicClient := c.getOrCreateClient(config.Credentials.ApiKey, opts.BaseURL)

	maxTokens := int64(defaultMaxTokens)
	if config.MaxTokens > 0 {
		maxTokens = int64(config.MaxTokens)
	}
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(config.Model),
		MaxTokens: maxTokens,
		Messages:  []anthropic.MessageParam{message},
	}
	if config.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: config.SystemPrompt, Type: "text"}}
	}
	if config.Temperature > 0 {
		params.Temperature = anthropic.Float(config.Temperature)
	}

	resp, err := anthropicClient.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return nil, providers.ErrEmptyResponse
	}

	return &providers.CompletionResponse{
		ID:       resp.ID,
		Model:    string(resp.Model),
		Response: sb.String(),
		Usage: providers.Usage{
			PromptTokens:     int(resp.Usage.InputTokens),
			CompletionTokens: int(resp.Usage.OutputTokens),
			TotalTokens:      int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
	}, nil
}

func (c *client) getOrCreateClient(apiKey, baseURL string) *anthropic.Client {
	key := apiKey + "|" + baseURL
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*anthropic.Client); ok {
			return cli
		}
	}
	v, _, _ := c.sf.Do(key, func() (any, error) {
		if v, ok := c.clientPool.Load(key); ok {
			return v, nil
		}
		opts := []option.RequestOption{option.WithAPIKey(apiKey)}
		if baseURL != "" {
			opts = append(opts, option.WithBaseURL(baseURL))
		}
		cli := anthropic.NewClient(opts...)
		c.clientPool.Store(key, &cli)
		return &cli, nil
	})
	return v.(*anthropic.Client)
}
