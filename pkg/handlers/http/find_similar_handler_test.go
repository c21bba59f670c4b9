package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NeuralTrust/TrustTag/pkg/app/scoring"
	"github.com/NeuralTrust/TrustTag/pkg/app/similarity"
	similarityMocks "github.com/NeuralTrust/TrustTag/pkg/app/similarity/mocks"
	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	"github.com/NeuralTrust/TrustTag/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doFindSimilar(t *testing.T, finder *similarityMocks.Finder, body string) (int, []byte) {
	t.Helper()
	app := fiber.New()
	app.Post("/find-similar", NewFindSimilarHandler(logrus.New(), finder, 10).Handle)

	req := httptest.NewRequest("POST", "/find-similar", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestFindSimilarHandler_Success(t *testing.T) {
	finder := similarityMocks.NewFinder(t)
	finder.On("FindSimilar", mock.Anything, "ref", 2).Return(similarity.Result{
		{Asset: asset.Asset{ID: "b", Title: "B"}, Score: 0.9},
		{Asset: asset.Asset{ID: "a", Title: "A"}, Score: 0.5},
	}, nil).Once()

	status, body := doFindSimilar(t, finder, `{"asset_id":"ref","limit":2}`)
	require.Equal(t, fiber.StatusOK, status)

	var out response.FindSimilarResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.SimilarAssets, 2)
	assert.Equal(t, "b", out.SimilarAssets[0].ID)
	assert.Equal(t, []float64{0.9, 0.5}, out.Scores)
}

func TestFindSimilarHandler_DefaultLimitAndEmptyResult(t *testing.T) {
	finder := similarityMocks.NewFinder(t)
	finder.On("FindSimilar", mock.Anything, "ref", 10).Return(similarity.Result{}, nil).Once()

	status, body := doFindSimilar(t, finder, `{"asset_id":"ref"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"similar_assets":[],"scores":[]}`, string(body))
}

func TestFindSimilarHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		called bool
		want   int
	}{
		{name: "invalid limit", body: `{"asset_id":"ref","limit":0}`, want: fiber.StatusBadRequest},
		{name: "missing asset id", body: `{"limit":3}`, want: fiber.StatusBadRequest},
		{name: "malformed body", body: `{`, want: fiber.StatusBadRequest},
		{name: "unknown asset", body: `{"asset_id":"ref"}`, err: domain.NewNotFoundError("asset", "ref"), called: true, want: fiber.StatusNotFound},
		{name: "store failure", body: `{"asset_id":"ref"}`, err: errors.New("connection reset"), called: true, want: fiber.StatusInternalServerError},
		{name: "short page", body: `{"asset_id":"ref"}`, err: domain.ErrInsufficientCandidates, called: true, want: fiber.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := similarityMocks.NewFinder(t)
			if tt.called {
				finder.On("FindSimilar", mock.Anything, "ref", 10).Return(nil, tt.err).Once()
			}

			status, _ := doFindSimilar(t, finder, tt.body)

			assert.Equal(t, tt.want, status)
		})
	}
}

func TestNewFindSimilarResponse_IndexAligned(t *testing.T) {
	result := similarity.Result{
		scoring.ScoredAsset{Asset: asset.Asset{ID: "x", Tags: []string{"red"}, AITags: []string{"bold"}}, Score: 1},
		scoring.ScoredAsset{Asset: asset.Asset{ID: "y", Tags: []string{"blue"}, AITags: []string{}}, Score: 0.25},
	}

	out := response.NewFindSimilarResponse(result)

	assert.Equal(t, result.Assets(), out.SimilarAssets)
	assert.Equal(t, result.Scores(), out.Scores)
}

func TestFindSimilarHandler_NilTagsSerializeAsLists(t *testing.T) {
	finder := similarityMocks.NewFinder(t)
	finder.On("FindSimilar", mock.Anything, "ref", 10).Return(similarity.Result{
		scoring.ScoredAsset{Asset: asset.Asset{ID: "bare", URL: "u"}, Score: 0},
	}, nil).Once()

	status, body := doFindSimilar(t, finder, `{"asset_id":"ref"}`)

	require.Equal(t, fiber.StatusOK, status)
	var out struct {
		SimilarAssets []map[string]json.RawMessage `json:"similar_assets"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.SimilarAssets, 1)
	assert.JSONEq(t, `[]`, string(out.SimilarAssets[0]["tags"]))
	assert.JSONEq(t, `[]`, string(out.SimilarAssets[0]["ai_tags"]))
}
