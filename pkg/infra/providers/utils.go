package providers

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Options are the provider-specific knobs carried in Config.Options.
type Options struct {
	BaseURL string `mapstructure:"base_url"`
	// Detail is the OpenAI vision detail level: auto, low or high.
	Detail string `mapstructure:"detail"`

	// Azure OpenAI
	Endpoint    string `mapstructure:"endpoint"`
	APIVersion  string `mapstructure:"api_version"`
	UseIdentity bool   `mapstructure:"use_identity"`

	// AWS Bedrock
	Region       string `mapstructure:"region"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	SessionToken string `mapstructure:"session_token"`
	RoleARN      string `mapstructure:"role_arn"`
}

// DecodeOptions accepts string values for non-string fields ("true", "1")
// since options may come from environment variables.
func DecodeOptions(raw map[string]any) (Options, error) {
	var opts Options
	if len(raw) == 0 {
		return opts, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return Options{}, fmt.Errorf("invalid provider options: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return Options{}, fmt.Errorf("invalid provider options: %w", err)
	}
	return opts, nil
}
