package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/NeuralTrust/TrustTag/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"
)

type client struct {
	fetcher    httpx.ImageFetcher
	clientPool *sync.Map
	sf         singleflight.Group
}

// NewGeminiClient builds a Gemini client. The Gemini API takes inline image
// bytes, so images are downloaded through fetcher before the call.
func NewGeminiClient(fetcher httpx.ImageFetcher) providers.Client {
	return &client{
		fetcher:    fetcher,
		clientPool: &sync.Map{},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	return c.generate(ctx, config, genai.Text(prompt))
}

func (c *client) AskWithImage(
	ctx context.Context,
	config *providers.Config,
	prompt string,
	image providers.ImageInput,
) (*providers.CompletionResponse, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	img, err := c.fetcher.Fetch(ctx, image.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	parts := []*genai.Part{
		genai.NewPartFromBytes(img.Data, img.MIMEType),
		genai.NewPartFromText(prompt),
	}
	return c.generate(ctx, config, []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)})
}

func (c *client) generate(
	ctx context.Context,
	config *providers.Config,
	contents []*genai.Content,
) (*providers.CompletionResponse, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	genaiClient, err := c.getOrCreateClient(ctx, config.Credentials.ApiKey)
	if err != nil {
		return nil, err
	}

	var genCfg *genai.GenerateContentConfig
	if config.SystemPrompt != "" {
		genCfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(config.SystemPrompt, genai.RoleUser),
		}
	}

	result, err := genaiClient.Models.GenerateContent(ctx, config.Model, contents, genCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, providers.ErrEmptyResponse
	}

	resp := &providers.CompletionResponse{
		ID:       result.ResponseID,
		Model:    config.Model,
		Response: text,
	}
	if result.UsageMetadata != nil {
		resp.Usage = providers.Usage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}
	return resp, nil
}

func (c *client) getOrCreateClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if v, ok := c.clientPool.Load(apiKey); ok {
		if cli, ok := v.(*genai.Client); ok {
			return cli, nil
		}
	}
	v, err, _ := c.sf.Do(apiKey, func() (any, error) {
		if v, ok := c.clientPool.Load(apiKey); ok {
			return v, nil
		}
		cli, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		c.clientPool.Store(apiKey, cli)
		return cli, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*genai.Client), nil
}
