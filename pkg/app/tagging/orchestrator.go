package tagging

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/TrustTag/pkg/app/scoring"
	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	tagdomain "github.com/NeuralTrust/TrustTag/pkg/domain/tagging"
	"github.com/NeuralTrust/TrustTag/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustTag/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	imageCollaborator = "image_tagger"
	textCollaborator  = "text_tagger"
)

type Config struct {
	Concurrency        int
	Timeout            time.Duration
	RateLimitPerSecond float64
	Retry              RetryPolicy
}

func DefaultConfig() Config {
	return Config{
		Concurrency: 4,
		Timeout:     30 * time.Second,
		Retry:       RetryPolicy{MaxRetries: 2, BaseDelay: 200 * time.Millisecond},
	}
}

//go:generate mockery --name=Orchestrator --dir=. --output=./mocks --filename=orchestrator_mock.go --case=underscore
type Orchestrator interface {
	// Tag returns exactly one result per input asset, in input order. A
	// failing collaborator degrades that asset to its fallback tags.
	Tag(ctx context.Context, assets []asset.Asset) []tagdomain.Result
}

type orchestrator struct {
	logger         *logrus.Logger
	textGenerator  tagdomain.Generator
	imageGenerator tagdomain.Generator
	scorer         *scoring.TagQualityScorer
	fallback       FallbackPolicy
	limiter        *rate.Limiter
	cfg            Config
}

type Option func(*orchestrator)

func WithFallbackPolicy(policy FallbackPolicy) Option {
	return func(o *orchestrator) {
		o.fallback = policy
	}
}

func NewOrchestrator(
	logger *logrus.Logger,
	textGenerator tagdomain.Generator,
	imageGenerator tagdomain.Generator,
	scorer *scoring.TagQualityScorer,
	cfg Config,
	opts ...Option,
) Orchestrator {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	limit := rate.Inf
	if cfg.RateLimitPerSecond > 0 {
		limit = rate.Limit(cfg.RateLimitPerSecond)
	}
	o := &orchestrator{
		logger:         logger,
		textGenerator:  textGenerator,
		imageGenerator: imageGenerator,
		scorer:         scorer,
		fallback:       DefaultFallbackPolicy(),
		limiter:        rate.NewLimiter(limit, cfg.Concurrency),
		cfg:            cfg,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *orchestrator) Tag(ctx context.Context, assets []asset.Asset) []tagdomain.Result {
	results := make([]tagdomain.Result, len(assets))

	var g errgroup.Group
	g.SetLimit(o.cfg.Concurrency)
	for i := range assets {
		g.Go(func() error {
			results[i] = o.tagOne(ctx, assets[i])
			return nil
		})
	}
	_ = g.Wait()

	prometheus.TaggedAssets.Add(float64(len(assets)))
	return results
}

func (o *orchestrator) tagOne(ctx context.Context, a asset.Asset) tagdomain.Result {
	tags, err := o.generate(ctx, a)

	source := tagdomain.SourceGenerated
	var reason FallbackReason
	if err != nil {
		reason = ClassifyFailure(err)
		source = tagdomain.SourceFallback
		tags = o.fallback.TagsFor(a.FileType)

		prometheus.FallbackTotal.WithLabelValues("tagging", string(reason)).Inc()
		o.logger.WithError(err).WithFields(logrus.Fields{
			"asset_id":  a.Key(),
			"file_type": a.FileType,
			"reason":    reason,
			"trace_id":  utils.TraceID(ctx),
		}).Warn("tag generation failed, serving fallback tags")
	}

	if len(tags) > tagdomain.MaxTags {
		tags = tags[:tagdomain.MaxTags]
	}

	return tagdomain.Result{
		AssetID:    a.Key(),
		Tags:       tags,
		Confidence: o.scorer.Score(tags),
		Source:     source,
		Reason:     string(reason),
	}
}

func (o *orchestrator) generate(ctx context.Context, a asset.Asset) ([]string, error) {
	generator, collaborator := o.textGenerator, textCollaborator
	if a.IsImage() {
		generator, collaborator = o.imageGenerator, imageCollaborator
	}

	req := tagdomain.GenerationRequest{
		URL:         a.URL,
		Title:       a.Title,
		Description: a.Description,
		FileType:    a.FileType,
	}

	var tags []string
	err := o.cfg.Retry.Do(ctx, func(ctx context.Context) error {
		if err := o.limiter.Wait(ctx); err != nil {
			return domain.NewCollaboratorError(collaborator, err)
		}

		callCtx := ctx
		if o.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
			defer cancel()
		}

		start := time.Now()
		raw, err := generator.Generate(callCtx, req)
		if prometheus.Config.EnableLatency {
			prometheus.CollaboratorLatency.WithLabelValues(collaborator).
				Observe(float64(time.Since(start).Milliseconds()))
		}
		if err != nil {
			prometheus.CollaboratorCalls.WithLabelValues(collaborator, "unavailable").Inc()
			if !errors.Is(err, domain.ErrCollaboratorUnavailable) {
				err = domain.NewCollaboratorError(collaborator, err)
			}
			return err
		}

		parsed, err := ParseTags(raw)
		if err != nil {
			prometheus.CollaboratorCalls.WithLabelValues(collaborator, "parse_error").Inc()
			return err
		}

		prometheus.CollaboratorCalls.WithLabelValues(collaborator, "success").Inc()
		tags = parsed
		return nil
	})
	return tags, err
}
