package collaborator

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/tagging"
	"github.com/NeuralTrust/TrustTag/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"github.com/NeuralTrust/TrustTag/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Mode string

const (
	ModeText  Mode = "text"
	ModeImage Mode = "image"

	defaultTagMaxTokens = 100
)

type tagGenerator struct {
	logger  *logrus.Logger
	client  providers.Client
	config  providers.Config
	mode    Mode
	breaker httpx.CircuitBreaker
}

// NewTagGenerator adapts a provider client to tagging.Generator. In image
// mode the asset URL is sent alongside the prompt.
func NewTagGenerator(
	logger *logrus.Logger,
	client providers.Client,
	config providers.Config,
	mode Mode,
	breaker httpx.CircuitBreaker,
) tagging.Generator {
	if config.MaxTokens <= 0 {
		config.MaxTokens = defaultTagMaxTokens
	}
	return &tagGenerator{
		logger:  logger,
		client:  client,
		config:  config,
		mode:    mode,
		breaker: breaker,
	}
}

func (g *tagGenerator) Generate(ctx context.Context, req tagging.GenerationRequest) (string, error) {
	name := fmt.Sprintf("%s_tagger", g.mode)
	cfg := g.config

	var resp *providers.CompletionResponse
	err := g.breaker.Execute(func() error {
		var err error
		if g.mode == ModeImage {
			resp, err = g.client.AskWithImage(ctx, &cfg, tagPrompt(imageTagPrompt, req), providers.ImageInput{URL: req.URL})
		} else {
			resp, err = g.client.Ask(ctx, &cfg, tagPrompt(textTagPrompt, req))
		}
		return err
	})
	if err != nil {
		g.logger.WithError(err).WithFields(logrus.Fields{
			"breaker_state": g.breaker.State(),
			"trace_id":      utils.TraceID(ctx),
		}).Debug("tag generation failed")
		return "", domain.NewCollaboratorError(name, err)
	}

	g.logger.WithFields(logrus.Fields{
		"model":        resp.Model,
		"total_tokens": resp.Usage.TotalTokens,
		"collaborator": name,
	}).Debug("tags generated")
	return resp.Response, nil
}
