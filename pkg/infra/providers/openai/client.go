package openai

import (
	"context"
	"fmt"
	"sync"

	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/sync/singleflight"
)

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewOpenaiClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	return c.complete(ctx, config, openai.UserMessage(prompt))
}

// AskWithImage sends the image as an image_url content part; OpenAI fetches it.
func (c *client) AskWithImage(
	ctx context.Context,
	config *providers.Config,
	prompt string,
	image providers.ImageInput,
) (*providers.CompletionResponse, error) {
	opts, err := providers.DecodeOptions(config.Options)
	if err != nil {
		return nil, err
	}
	imagePart := openai.ChatCompletionContentPartImageImageURLParam{URL: image.URL}
	if opts.Detail != "" {
		imagePart.Detail = opts.Detail
	}
	return c.complete(ctx, config, openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(prompt),
		openai.ImageContentPart(imagePart),
	}))
}

func (c *client) complete(
	ctx context.Context,
	config *providers.Config,
	user openai.ChatCompletionMessageParamUnion,
) (*providers.CompletionResponse, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	opts, err := providers.DecodeOptions(config.Options)
	if err != nil {
		return nil, err
	}

	openaiClient := c.getOrCreateClient(config.Credentials.ApiKey, opts.BaseURL)

	var messages []openai.ChatCompletionMessageParamUnion
	if config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(config.SystemPrompt))
	}
	messages = append(messages, user)

	params := openai.ChatCompletionNewParams{
		Model:    config.Model,
		Messages: messages,
	}
	if config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(config.MaxTokens))
	}
	if config.Temperature > 0 {
		params.Temperature = openai.Float(config.Temperature)
	}

	resp, err := openaiClient.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("OpenAI request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, providers.ErrEmptyResponse
	}

	return &providers.CompletionResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Response: resp.Choices[0].Message.Content,
		Usage: providers.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

func (c *client) getOrCreateClient(apiKey, baseURL string) *openai.Client {
	key := apiKey + "|" + baseURL
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*openai.Client); ok {
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
		cli := openai.NewClient(opts...)
		c.clientPool.Store(key, &cli)
		return &cli, nil
	})
	return v.(*openai.Client)
}
