package design

import (
	"context"
)

type Analysis struct {
	Feedback string  `json:"feedback"`
	Score    float64 `json:"score"`
}

type Report struct {
	AssetID     string   `json:"asset_id"`
	Analysis    Analysis `json:"analysis"`
	Suggestions []string `json:"suggestions"`
	Degraded    bool     `json:"-"`
}

//go:generate mockery --name=VisionAnalyzer --dir=. --output=./mocks --filename=vision_analyzer_mock.go --case=underscore
type VisionAnalyzer interface {
	Analyze(ctx context.Context, url, title string) (*Analysis, error)
}

const (
	// DefaultScore is reported when the collaborator gives feedback without a readable score.
	DefaultScore = 8.5
	MaxScore     = 10.0
)

// StaticSuggestions are returned for every analysed image. They do not depend
// on the analysis yet.
var StaticSuggestions = []string{
	"Consider adjusting the color contrast for better readability",
	"Try experimenting with different layout arrangements",
	"Add more whitespace to improve visual breathing room",
	"Consider using a more consistent typography hierarchy",
}
