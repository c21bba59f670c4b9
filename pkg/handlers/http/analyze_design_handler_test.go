package http

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	designMocks "github.com/NeuralTrust/TrustTag/pkg/app/design/mocks"
	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	"github.com/NeuralTrust/TrustTag/pkg/domain/design"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyzeApp(analyzer *designMocks.Analyzer) *fiber.App {
	app := fiber.New()
	app.Post("/analyze-design", NewAnalyzeDesignHandler(logrus.New(), analyzer).Handle)
	return app
}

func TestAnalyzeDesignHandler_Success(t *testing.T) {
	analyzer := designMocks.NewAnalyzer(t)
	analyzer.On("Analyze", mock.Anything, mock.MatchedBy(func(a asset.Asset) bool {
		return a.IsImage() && a.URL == "https://cdn/poster.png"
	})).Return(&design.Report{
		AssetID:     "https://cdn/poster.png",
		Analysis:    design.Analysis{Feedback: "Good contrast", Score: 8.5},
		Suggestions: design.StaticSuggestions,
	}, nil).Once()

	req := httptest.NewRequest("POST", "/analyze-design",
		strings.NewReader(`{"url":"https://cdn/poster.png","title":"Poster","file_type":"image"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := newAnalyzeApp(analyzer).Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "https://cdn/poster.png", out["asset_id"])
	assert.Equal(t, map[string]any{"feedback": "Good contrast", "score": 8.5}, out["analysis"])
	assert.Len(t, out["suggestions"], 4)
}

func TestAnalyzeDesignHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "non image", body: `{"url":"u","title":"t","file_type":"document"}`, err: domain.ErrUnsupportedAssetType, want: fiber.StatusBadRequest},
		{name: "unexpected", body: `{"url":"u","title":"t","file_type":"image"}`, err: errors.New("boom"), want: fiber.StatusInternalServerError},
		{name: "missing title", body: `{"url":"u","file_type":"image"}`, want: fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := designMocks.NewAnalyzer(t)
			if tt.err != nil {
				analyzer.On("Analyze", mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			}

			req := httptest.NewRequest("POST", "/analyze-design", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := newAnalyzeApp(analyzer).Test(req, -1)
			require.NoError(t, err)

			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
