package azure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"github.com/valyala/fasthttp"
)

const (
	defaultAPIVersion = "2024-06-01"
	tokenScope        = "https://cognitiveservices.azure.com/.default"
	requestTimeout    = 60 * time.Second
	maxErrorBody      = 512
)

var ErrMissingEndpoint = errors.New("azure endpoint is required")

type Option func(*client)

// WithHTTPClient replaces the fasthttp client used for deployment calls.
func WithHTTPClient(httpClient *fasthttp.Client) Option {
	return func(c *client) {
		c.http = httpClient
	}
}

// WithTokenCredential sets the Entra ID credential used when use_identity is on.
func WithTokenCredential(cred azcore.TokenCredential) Option {
	return func(c *client) {
		c.newCredential = func() (azcore.TokenCredential, error) { return cred, nil }
	}
}

type client struct {
	http          *fasthttp.Client
	newCredential func() (azcore.TokenCredential, error)

	credOnce sync.Once
	cred     azcore.TokenCredential
	credErr  error
}

// NewAzureClient talks to Azure OpenAI chat deployments. Authentication is the
// deployment api-key, or an Entra ID token from the default credential chain
// when the use_identity option is set.
func NewAzureClient(opts ...Option) providers.Client {
	c := &client{
		http: &fasthttp.Client{
			Name:                "TrustTag",
			MaxConnsPerHost:     64,
			MaxIdleConnDuration: 30 * time.Second,
		},
		newCredential: func() (azcore.TokenCredential, error) {
			return azidentity.NewDefaultAzureCredential(nil)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	return c.complete(ctx, config, chatMessage{Role: "user", Content: prompt})
}

// AskWithImage passes the image URL through; the deployment downloads it.
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
	return c.complete(ctx, config, chatMessage{
		Role: "user",
		Content: []contentPart{
			{Type: "text", Text: prompt},
			{Type: "image_url", ImageURL: &imageURL{URL: image.URL, Detail: opts.Detail}},
		},
	})
}

func (c *client) complete(
	ctx context.Context,
	config *providers.Config,
	user chatMessage,
) (*providers.CompletionResponse, error) {
	opts, err := c.validate(config)
	if err != nil {
		return nil, err
	}

	var messages []chatMessage
	if config.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: config.SystemPrompt})
	}
	messages = append(messages, user)

	body, err := json.Marshal(chatRequest{
		Messages:    messages,
		MaxTokens:   config.MaxTokens,
		Temperature: config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(deploymentURL(opts, config.Model))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if opts.UseIdentity {
		token, err := c.token(ctx)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("api-key", config.Credentials.ApiKey)
	}

	if err := c.do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("Azure OpenAI request failed: %w", err)
	}
	if status := resp.StatusCode(); status != fasthttp.StatusOK {
		return nil, fmt.Errorf("Azure OpenAI request failed: status %d: %s", status, errorBody(resp.Body()))
	}

	var out chatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("failed to parse Azure OpenAI response: %w", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return nil, providers.ErrEmptyResponse
	}

	model := out.Model
	if model == "" {
		model = config.Model
	}
	return &providers.CompletionResponse{
		ID:       out.ID,
		Model:    model,
		Response: out.Choices[0].Message.Content,
		Usage: providers.Usage{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		},
	}, nil
}

// validate differs from Config.Validate: with use_identity no api key is needed.
func (c *client) validate(config *providers.Config) (providers.Options, error) {
	opts, err := providers.DecodeOptions(config.Options)
	if err != nil {
		return opts, err
	}
	if opts.Endpoint == "" {
		return opts, ErrMissingEndpoint
	}
	if config.Model == "" {
		return opts, providers.ErrMissingModel
	}
	if !opts.UseIdentity && config.Credentials.ApiKey == "" {
		return opts, providers.ErrMissingAPIKey
	}
	return opts, nil
}

func (c *client) token(ctx context.Context) (string, error) {
	c.credOnce.Do(func() {
		c.cred, c.credErr = c.newCredential()
	})
	if c.credErr != nil {
		return "", fmt.Errorf("failed to create Azure credential: %w", c.credErr)
	}
	tok, err := c.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{tokenScope}})
	if err != nil {
		return "", fmt.Errorf("failed to get Azure AD token: %w", err)
	}
	return tok.Token, nil
}

func (c *client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline := time.Now().Add(requestTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return context.DeadlineExceeded
		}
		return err
	}
	return nil
}

func deploymentURL(opts providers.Options, deployment string) string {
	apiVersion := opts.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(opts.Endpoint, "/"),
		url.PathEscape(deployment),
		url.QueryEscape(apiVersion),
	)
}

func errorBody(b []byte) string {
	if len(b) > maxErrorBody {
		b = b[:maxErrorBody]
	}
	return strings.TrimSpace(string(b))
}
