package bedrock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/NeuralTrust/TrustTag/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"golang.org/x/sync/singleflight"
)

const (
	defaultRegion = "us-east-1"
	sessionName   = "TrustTagBedrockSession"
)

var (
	ErrMissingSecretKey       = errors.New("aws secret key is required with an access key")
	ErrUnsupportedImageFormat = errors.New("image format not supported by Bedrock")
)

// runtimeAPI is the part of bedrockruntime.Client the provider uses.
type runtimeAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

type credentials struct {
	accessKey    string
	secretKey    string
	sessionToken string
	region       string
	roleARN      string
}

func (c credentials) key() string {
	return strings.Join([]string{c.accessKey, c.region, c.roleARN}, "|")
}

type client struct {
	fetcher    httpx.ImageFetcher
	clientPool *sync.Map
	sf         singleflight.Group
	newRuntime func(ctx context.Context, creds credentials) (runtimeAPI, error)
}

// NewBedrockClient calls models through the Bedrock Converse API, so one
// request shape serves Claude, Titan, Llama and Mistral alike. Converse only
// takes inline image bytes; images are downloaded through fetcher.
func NewBedrockClient(fetcher httpx.ImageFetcher) providers.Client {
	return &client{
		fetcher:    fetcher,
		clientPool: &sync.Map{},
		newRuntime: newRuntimeClient,
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	return c.converse(ctx, config, []types.ContentBlock{
		&types.ContentBlockMemberText{Value: prompt},
	})
}

func (c *client) AskWithImage(
	ctx context.Context,
	config *providers.Config,
	prompt string,
	image providers.ImageInput,
) (*providers.CompletionResponse, error) {
	if _, err := resolveCredentials(config); err != nil {
		return nil, err
	}
	img, err := c.fetcher.Fetch(ctx, image.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	format, err := imageFormat(img.MIMEType)
	if err != nil {
		return nil, err
	}
	return c.converse(ctx, config, []types.ContentBlock{
		&types.ContentBlockMemberImage{Value: types.ImageBlock{
			Format: format,
			Source: &types.ImageSourceMemberBytes{Value: img.Data},
		}},
		&types.ContentBlockMemberText{Value: prompt},
	})
}

func (c *client) converse(
	ctx context.Context,
	config *providers.Config,
	blocks []types.ContentBlock,
) (*providers.CompletionResponse, error) {
	creds, err := resolveCredentials(config)
	if err != nil {
		return nil, err
	}
	rt, err := c.getOrCreateClient(ctx, creds)
	if err != nil {
		return nil, err
	}

	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(config.Model),
		Messages: []types.Message{{
			Role:    types.ConversationRoleUser,
			Content: blocks,
		}},
		InferenceConfig: &types.InferenceConfiguration{},
	}
	if config.SystemPrompt != "" {
		input.System = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: config.SystemPrompt},
		}
	}
	if config.MaxTokens > 0 {
		input.InferenceConfig.MaxTokens = aws.Int32(int32(config.MaxTokens))
	}
	if config.Temperature > 0 {
		input.InferenceConfig.Temperature = aws.Float32(float32(config.Temperature))
	}

	out, err := rt.Converse(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("Bedrock request failed: %w", err)
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, providers.ErrEmptyResponse
	}
	var sb strings.Builder
	for _, block := range msg.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			sb.WriteString(text.Value)
		}
	}
	if sb.Len() == 0 {
		return nil, providers.ErrEmptyResponse
	}

	resp := &providers.CompletionResponse{
		Model:    config.Model,
		Response: sb.String(),
	}
	if id, ok := awsmiddleware.GetRequestIDMetadata(out.ResultMetadata); ok {
		resp.ID = id
	}
	if out.Usage != nil {
		resp.Usage = providers.Usage{
			PromptTokens:     int(aws.ToInt32(out.Usage.InputTokens)),
			CompletionTokens: int(aws.ToInt32(out.Usage.OutputTokens)),
			TotalTokens:      int(aws.ToInt32(out.Usage.TotalTokens)),
		}
	}
	return resp, nil
}

// resolveCredentials reads static keys from the options, falling back to the
// api_key as access key. With no keys at all the default AWS chain is used.
func resolveCredentials(config *providers.Config) (credentials, error) {
	if config.Model == "" {
		return credentials{}, providers.ErrMissingModel
	}
	opts, err := providers.DecodeOptions(config.Options)
	if err != nil {
		return credentials{}, err
	}
	creds := credentials{
		accessKey:    opts.AccessKey,
		secretKey:    opts.SecretKey,
		sessionToken: opts.SessionToken,
		region:       opts.Region,
		roleARN:      opts.RoleARN,
	}
	if creds.accessKey == "" {
		creds.accessKey = config.Credentials.ApiKey
	}
	if creds.accessKey != "" && creds.secretKey == "" {
		return credentials{}, ErrMissingSecretKey
	}
	if creds.region == "" {
		creds.region = defaultRegion
	}
	return creds, nil
}

func (c *client) getOrCreateClient(ctx context.Context, creds credentials) (runtimeAPI, error) {
	key := creds.key()
	if v, ok := c.clientPool.Load(key); ok {
		if rt, ok := v.(runtimeAPI); ok {
			return rt, nil
		}
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if v, ok := c.clientPool.Load(key); ok {
			return v, nil
		}
		rt, err := c.newRuntime(ctx, creds)
		if err != nil {
			return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
		}
		c.clientPool.Store(key, rt)
		return rt, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(runtimeAPI), nil
}

func newRuntimeClient(ctx context.Context, creds credentials) (runtimeAPI, error) {
	cfg, err := loadAWSConfig(ctx, creds.accessKey, creds.secretKey, creds.sessionToken, creds.region)
	if err != nil {
		return nil, err
	}
	if creds.roleARN != "" {
		// the cache refreshes the assumed-role session before it expires
		cfg.Credentials = aws.NewCredentialsCache(stscreds.NewAssumeRoleProvider(
			sts.NewFromConfig(cfg),
			creds.roleARN,
			func(o *stscreds.AssumeRoleOptions) { o.RoleSessionName = sessionName },
		))
	}
	return bedrockruntime.NewFromConfig(cfg), nil
}

func loadAWSConfig(ctx context.Context, accessKey, secretKey, sessionToken, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     accessKey,
					SecretAccessKey: secretKey,
					SessionToken:    sessionToken,
				}, nil
			},
		)))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return cfg, nil
}

func imageFormat(mimeType string) (types.ImageFormat, error) {
	switch strings.ToLower(mimeType) {
	case "image/png":
		return types.ImageFormatPng, nil
	case "image/jpeg", "image/jpg":
		return types.ImageFormatJpeg, nil
	case "image/gif":
		return types.ImageFormatGif, nil
	case "image/webp":
		return types.ImageFormatWebp, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedImageFormat, mimeType)
}
