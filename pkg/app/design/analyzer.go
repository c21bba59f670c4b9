package design

import (
	"context"
	"time"

	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	designdomain "github.com/NeuralTrust/TrustTag/pkg/domain/design"
	"github.com/NeuralTrust/TrustTag/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustTag/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	visionCollaborator  = "vision_analyzer"
	unavailableFeedback = "Unable to analyze design at this time."
)

//go:generate mockery --name=Analyzer --dir=. --output=./mocks --filename=analyzer_mock.go --case=underscore
type Analyzer interface {
	// Analyze rejects non-image assets with domain.ErrUnsupportedAssetType
	// before contacting the vision collaborator.
	Analyze(ctx context.Context, a asset.Asset) (*designdomain.Report, error)
}

type analyzer struct {
	logger  *logrus.Logger
	vision  designdomain.VisionAnalyzer
	timeout time.Duration
}

func NewAnalyzer(logger *logrus.Logger, vision designdomain.VisionAnalyzer, timeout time.Duration) Analyzer {
	return &analyzer{
		logger:  logger,
		vision:  vision,
		timeout: timeout,
	}
}

func (a *analyzer) Analyze(ctx context.Context, item asset.Asset) (*designdomain.Report, error) {
	if !item.IsImage() {
		return nil, domain.ErrUnsupportedAssetType
	}

	report := &designdomain.Report{
		AssetID:     item.Key(),
		Suggestions: append([]string(nil), designdomain.StaticSuggestions...),
	}

	callCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	analysis, err := a.vision.Analyze(callCtx, item.URL, item.Title)
	if prometheus.Config.EnableLatency {
		prometheus.CollaboratorLatency.WithLabelValues(visionCollaborator).
			Observe(float64(time.Since(start).Milliseconds()))
	}
	if err != nil || analysis == nil {
		prometheus.CollaboratorCalls.WithLabelValues(visionCollaborator, "unavailable").Inc()
		prometheus.FallbackTotal.WithLabelValues("design", "collaborator_unavailable").Inc()
		a.logger.WithError(err).WithFields(logrus.Fields{
			"asset_id": report.AssetID,
			"trace_id": utils.TraceID(ctx),
		}).Warn("design analysis failed, serving fallback feedback")

		report.Analysis = designdomain.Analysis{Feedback: unavailableFeedback, Score: 0}
		report.Degraded = true
		return report, nil
	}

	prometheus.CollaboratorCalls.WithLabelValues(visionCollaborator, "success").Inc()
	report.Analysis = *analysis
	return report, nil
}
