package tagging_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustTag/pkg/app/scoring"
	"github.com/NeuralTrust/TrustTag/pkg/app/tagging"
	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	tagdomain "github.com/NeuralTrust/TrustTag/pkg/domain/tagging"
	"github.com/NeuralTrust/TrustTag/pkg/domain/tagging/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrchestrator(t *testing.T, cfg tagging.Config) (tagging.Orchestrator, *mocks.Generator, *mocks.Generator) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	text := mocks.NewGenerator(t)
	image := mocks.NewGenerator(t)
	return tagging.NewOrchestrator(logger, text, image, scoring.NewTagQualityScorer(), cfg), text, image
}

func byURL(url string) interface{} {
	return mock.MatchedBy(func(req tagdomain.GenerationRequest) bool { return req.URL == url })
}

func TestOrchestrator_Tag_RoutesByFileType(t *testing.T) {
	o, text, image := newTestOrchestrator(t, tagging.Config{Concurrency: 2})

	image.On("Generate", mock.Anything, byURL("https://cdn/a.png")).
		Return("modern, minimal, poster, blue, flat, clean, bold, layout", nil).Once()
	text.On("Generate", mock.Anything, byURL("https://cdn/b.pdf")).
		Return(`["report", "finance"]`, nil).Once()

	results := o.Tag(context.Background(), []asset.Asset{
		{ID: "a", URL: "https://cdn/a.png", Title: "A", FileType: asset.FileTypeImage},
		{URL: "https://cdn/b.pdf", Title: "B", FileType: asset.FileTypeDocument},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].AssetID)
	assert.Equal(t, tagdomain.SourceGenerated, results[0].Source)
	assert.Len(t, results[0].Tags, 8)
	assert.Equal(t, 1.0, results[0].Confidence)

	assert.Equal(t, "https://cdn/b.pdf", results[1].AssetID)
	assert.Equal(t, []string{"report", "finance"}, results[1].Tags)
	assert.Equal(t, 0.25, results[1].Confidence)
}

func TestOrchestrator_Tag_OneFailureKeepsBatch(t *testing.T) {
	o, text, image := newTestOrchestrator(t, tagging.Config{Concurrency: 3})

	image.On("Generate", mock.Anything, byURL("u1")).Return("abstract, texture", nil).Once()
	image.On("Generate", mock.Anything, byURL("u2")).Return("", errors.New("connection reset")).Once()
	text.On("Generate", mock.Anything, byURL("u3")).Return("manual, guide", nil).Once()

	results := o.Tag(context.Background(), []asset.Asset{
		{ID: "1", URL: "u1", FileType: asset.FileTypeImage},
		{ID: "2", URL: "u2", FileType: asset.FileTypeImage},
		{ID: "3", URL: "u3", FileType: asset.FileTypeDocument},
	})

	require.Len(t, results, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{results[0].AssetID, results[1].AssetID, results[2].AssetID})

	assert.Equal(t, []string{"image", "design", "visual", "creative"}, results[1].Tags)
	assert.Equal(t, 0.5, results[1].Confidence)
	assert.Equal(t, tagdomain.SourceFallback, results[1].Source)
	assert.Equal(t, string(tagging.ReasonUnavailable), results[1].Reason)

	assert.Equal(t, tagdomain.SourceGenerated, results[0].Source)
	assert.Equal(t, tagdomain.SourceGenerated, results[2].Source)
}

func TestOrchestrator_Tag_SlowFirstAssetKeepsInputOrder(t *testing.T) {
	o, text, image := newTestOrchestrator(t, tagging.Config{Concurrency: 3})

	image.On("Generate", mock.Anything, byURL("slow")).
		Return(func(ctx context.Context, _ tagdomain.GenerationRequest) (string, error) {
			select {
			case <-time.After(50 * time.Millisecond):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			return "slow, first", nil
		}).Once()
	image.On("Generate", mock.Anything, byURL("fast")).Return("fast, second", nil).Once()
	text.On("Generate", mock.Anything, byURL("doc")).Return("quick, third", nil).Once()

	results := o.Tag(context.Background(), []asset.Asset{
		{ID: "0", URL: "slow", FileType: asset.FileTypeImage},
		{ID: "1", URL: "fast", FileType: asset.FileTypeImage},
		{ID: "2", URL: "doc", FileType: asset.FileTypeDocument},
	})

	require.Len(t, results, 3)
	assert.Equal(t, []string{"0", "1", "2"}, []string{results[0].AssetID, results[1].AssetID, results[2].AssetID})
	assert.Equal(t, []string{"slow", "first"}, results[0].Tags)
	assert.Equal(t, []string{"fast", "second"}, results[1].Tags)
	assert.Equal(t, []string{"quick", "third"}, results[2].Tags)
}

func TestOrchestrator_Tag_ParseFailureIsNotRetried(t *testing.T) {
	o, text, _ := newTestOrchestrator(t, tagging.Config{
		Concurrency: 1,
		Retry:       tagging.RetryPolicy{MaxRetries: 3, BaseDelay: time.Millisecond},
	})

	text.On("Generate", mock.Anything, mock.Anything).
		Return("I'm sorry, I can't determine any useful tags for this file", nil).Once()

	results := o.Tag(context.Background(), []asset.Asset{{URL: "doc", FileType: asset.FileTypeDocument}})

	require.Len(t, results, 1)
	assert.Equal(t, []string{"document", "file", "content"}, results[0].Tags)
	assert.Equal(t, 0.375, results[0].Confidence)
	assert.Equal(t, string(tagging.ReasonParse), results[0].Reason)
}

func TestOrchestrator_Tag_RetriesUnavailable(t *testing.T) {
	o, text, _ := newTestOrchestrator(t, tagging.Config{
		Concurrency: 1,
		Retry:       tagging.RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond},
	})

	text.On("Generate", mock.Anything, mock.Anything).
		Return("", domain.NewCollaboratorError("text_tagger", errors.New("503"))).Once()
	text.On("Generate", mock.Anything, mock.Anything).Return("vintage, label", nil).Once()

	results := o.Tag(context.Background(), []asset.Asset{{ID: "x", URL: "doc", FileType: asset.FileTypeDocument}})

	require.Len(t, results, 1)
	assert.Equal(t, []string{"vintage", "label"}, results[0].Tags)
	assert.InDelta(t, 2.0/8.0+0.2/6.0, results[0].Confidence, 1e-9)
}

func TestOrchestrator_Tag_TimeoutFallsBack(t *testing.T) {
	o, _, image := newTestOrchestrator(t, tagging.Config{Concurrency: 1, Timeout: 10 * time.Millisecond})

	image.On("Generate", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, _ tagdomain.GenerationRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}).Once()

	results := o.Tag(context.Background(), []asset.Asset{{ID: "slow", FileType: asset.FileTypeImage}})

	require.Len(t, results, 1)
	assert.Equal(t, tagdomain.SourceFallback, results[0].Source)
	assert.Equal(t, string(tagging.ReasonTimeout), results[0].Reason)
}

func TestOrchestrator_Tag_CustomFallbackPolicy(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	text := mocks.NewGenerator(t)
	policy := tagging.FallbackPolicy{Default: []string{"misc"}}
	o := tagging.NewOrchestrator(logger, text, mocks.NewGenerator(t), scoring.NewTagQualityScorer(),
		tagging.Config{Concurrency: 1}, tagging.WithFallbackPolicy(policy))

	text.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("boom")).Once()

	results := o.Tag(context.Background(), []asset.Asset{{ID: "m", FileType: "video"}})

	assert.Equal(t, []string{"misc"}, results[0].Tags)
	assert.Equal(t, 0.125, results[0].Confidence)
}

func TestOrchestrator_Tag_Empty(t *testing.T) {
	o, _, _ := newTestOrchestrator(t, tagging.DefaultConfig())

	assert.Empty(t, o.Tag(context.Background(), nil))
}
