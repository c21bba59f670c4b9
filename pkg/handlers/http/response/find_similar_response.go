package response

import (
	"github.com/NeuralTrust/TrustTag/pkg/app/similarity"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
	"github.com/lib/pq"
)

// FindSimilarResponse keeps similar_assets and scores index-aligned.
type FindSimilarResponse struct {
	SimilarAssets []asset.Asset `json:"similar_assets"`
	Scores        []float64     `json:"scores"`
}

func NewFindSimilarResponse(result similarity.Result) FindSimilarResponse {
	resp := FindSimilarResponse{
		SimilarAssets: make([]asset.Asset, 0, len(result)),
		Scores:        make([]float64, 0, len(result)),
	}
	for _, r := range result {
		a := r.Asset
		// rows written outside this service may carry NULL arrays; clients always get a list
		if a.Tags == nil {
			a.Tags = pq.StringArray{}
		}
		if a.AITags == nil {
			a.AITags = pq.StringArray{}
		}
		resp.SimilarAssets = append(resp.SimilarAssets, a)
		resp.Scores = append(resp.Scores, r.Score)
	}
	return resp
}
