package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Providers  ProvidersConfig  `mapstructure:"providers"`
	Tagging    TaggingConfig    `mapstructure:"tagging"`
	Scoring    ScoringConfig    `mapstructure:"scoring"`
	Similarity SimilarityConfig `mapstructure:"similarity"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Host        string `mapstructure:"host"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
	// PoolTTL bounds how long the cached candidate pool is served.
	PoolTTL time.Duration `mapstructure:"pool_ttl"`
	// LocalPoolTTL keeps a per-process copy of the pool; 0 disables it.
	LocalPoolTTL time.Duration `mapstructure:"local_pool_ttl"`
}

type ProvidersConfig struct {
	Tagging ProviderConfig `mapstructure:"tagging"`
	Vision  ProviderConfig `mapstructure:"vision"`
}

type ProviderConfig struct {
	Provider    string         `mapstructure:"provider"`
	Model       string         `mapstructure:"model"`
	VisionModel string         `mapstructure:"vision_model"`
	APIKey      string         `mapstructure:"api_key"`
	MaxTokens   int            `mapstructure:"max_tokens"`
	Temperature float64        `mapstructure:"temperature"`
	Options     map[string]any `mapstructure:"options"`
}

type TaggingConfig struct {
	Concurrency        int           `mapstructure:"concurrency"`
	Timeout            time.Duration `mapstructure:"timeout"`
	MaxRetries         int           `mapstructure:"max_retries"`
	RetryBaseDelay     time.Duration `mapstructure:"retry_base_delay"`
	RateLimitPerSecond float64       `mapstructure:"rate_limit_per_second"`
	BreakerMaxFailures uint32        `mapstructure:"breaker_max_failures"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`
}

type ScoringConfig struct {
	CaseInsensitive bool `mapstructure:"case_insensitive"`
	DedupeTags      bool `mapstructure:"dedupe_tags"`
}

type SimilarityConfig struct {
	DefaultLimit    int  `mapstructure:"default_limit"`
	RequireFullPage bool `mapstructure:"require_full_page"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"`
	Console bool   `mapstructure:"console"`
}

var globalConfig Config

// Load reads config.yaml from configPath (falling back to ./config and .),
// applies environment overrides such as PROVIDERS_TAGGING_API_KEY and validates the result.
// A missing file is not an error: defaults plus environment are used.
func Load(configPath string) error {
	v := viper.New()
	setDefaultValues(v)

	if err := loadConfigFile(v, configPath, "config"); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	globalConfig = cfg
	return nil
}

func loadConfigFile(v *viper.Viper, configPath, fileName string) error {
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return err
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}
	return nil
}

// AutomaticEnv only resolves keys viper already knows, so every key carries a default.
func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.host", "0.0.0.0")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_latency", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "trusttag")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)
	v.SetDefault("redis.pool_ttl", 30*time.Second)
	v.SetDefault("redis.local_pool_ttl", 5*time.Second)

	for _, p := range []string{"tagging", "vision"} {
		v.SetDefault("providers."+p+".provider", "openai")
		v.SetDefault("providers."+p+".api_key", "")
		v.SetDefault("providers."+p+".temperature", 0.0)
	}
	v.SetDefault("providers.tagging.model", "gpt-4o-mini")
	v.SetDefault("providers.tagging.vision_model", "gpt-4o")
	v.SetDefault("providers.tagging.max_tokens", 100)
	v.SetDefault("providers.vision.model", "gpt-4o")
	v.SetDefault("providers.vision.vision_model", "")
	v.SetDefault("providers.vision.max_tokens", 300)

	v.SetDefault("tagging.concurrency", 4)
	v.SetDefault("tagging.timeout", 30*time.Second)
	v.SetDefault("tagging.max_retries", 2)
	v.SetDefault("tagging.retry_base_delay", 200*time.Millisecond)
	v.SetDefault("tagging.rate_limit_per_second", 0.0)
	v.SetDefault("tagging.breaker_max_failures", 5)
	v.SetDefault("tagging.breaker_timeout", 30*time.Second)

	v.SetDefault("scoring.case_insensitive", false)
	v.SetDefault("scoring.dedupe_tags", false)

	v.SetDefault("similarity.default_limit", 10)
	v.SetDefault("similarity.require_full_page", false)

	v.SetDefault("log.level", "")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.console", true)
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	if c.Server.MetricsPort == c.Server.Port {
		return fmt.Errorf("server.metrics_port must differ from server.port")
	}
	if c.Tagging.Concurrency <= 0 {
		return fmt.Errorf("tagging.concurrency must be positive")
	}
	if c.Tagging.MaxRetries < 0 {
		return fmt.Errorf("tagging.max_retries must not be negative")
	}
	if c.Tagging.RateLimitPerSecond < 0 {
		return fmt.Errorf("tagging.rate_limit_per_second must not be negative")
	}
	if c.Similarity.DefaultLimit <= 0 {
		return fmt.Errorf("similarity.default_limit must be positive")
	}
	for name, p := range map[string]ProviderConfig{"tagging": c.Providers.Tagging, "vision": c.Providers.Vision} {
		if p.Provider == "" || p.Model == "" {
			return fmt.Errorf("providers.%s requires provider and model", name)
		}
	}
	return nil
}

func GetConfig() *Config {
	return &globalConfig
}
