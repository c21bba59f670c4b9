package collaborator

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/design"
	"github.com/NeuralTrust/TrustTag/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustTag/pkg/infra/providers"
	"github.com/sirupsen/logrus"
)

const defaultDesignMaxTokens = 300

var scorePattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*/\s*10\b`)

type visionAnalyzer struct {
	logger  *logrus.Logger
	client  providers.Client
	config  providers.Config
	breaker httpx.CircuitBreaker
}

func NewVisionAnalyzer(
	logger *logrus.Logger,
	client providers.Client,
	config providers.Config,
	breaker httpx.CircuitBreaker,
) design.VisionAnalyzer {
	if config.MaxTokens <= 0 {
		config.MaxTokens = defaultDesignMaxTokens
	}
	return &visionAnalyzer{
		logger:  logger,
		client:  client,
		config:  config,
		breaker: breaker,
	}
}

func (v *visionAnalyzer) Analyze(ctx context.Context, url, title string) (*design.Analysis, error) {
	cfg := v.config

	var resp *providers.CompletionResponse
	err := v.breaker.Execute(func() error {
		var err error
		resp, err = v.client.AskWithImage(ctx, &cfg, fmt.Sprintf(designPrompt, title), providers.ImageInput{URL: url})
		return err
	})
	if err != nil {
		return nil, domain.NewCollaboratorError("vision_analyzer", err)
	}

	feedback := strings.TrimSpace(resp.Response)
	if feedback == "" {
		return nil, domain.NewCollaboratorError("vision_analyzer", providers.ErrEmptyResponse)
	}
	return &design.Analysis{
		Feedback: feedback,
		Score:    extractScore(feedback),
	}, nil
}

// extractScore reads the last "X/10" in the feedback. Missing or out of range
// values yield design.DefaultScore.
func extractScore(feedback string) float64 {
	matches := scorePattern.FindAllStringSubmatch(feedback, -1)
	if len(matches) == 0 {
		return design.DefaultScore
	}
	score, err := strconv.ParseFloat(matches[len(matches)-1][1], 64)
	if err != nil || score < 0 || score > design.MaxScore {
		return design.DefaultScore
	}
	return score
}
